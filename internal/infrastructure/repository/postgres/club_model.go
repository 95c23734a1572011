package postgres

import (
	"time"

	"github.com/riskibarqy/tt-league/internal/domain/club"
)

type clubTableModel struct {
	ID   int64  `db:"id,readonly"`
	Name string `db:"name"`
}

type clubInfoTableModel struct {
	ID                 int64     `db:"id,readonly"`
	ClubID             int64     `db:"club_id"`
	Website            string    `db:"website"`
	Image              string    `db:"image"`
	ContactName        string    `db:"contact_name"`
	ContactEmail       string    `db:"contact_email"`
	ContactPhone       string    `db:"contact_phone"`
	Description        string    `db:"description"`
	SessionInfo        string    `db:"session_info"`
	Beginners          bool      `db:"beginners"`
	Intermediates      bool      `db:"intermediates"`
	Advanced           bool      `db:"advanced"`
	Kids               bool      `db:"kids"`
	Adults             bool      `db:"adults"`
	Coaching           bool      `db:"coaching"`
	League             bool      `db:"league"`
	EquipmentProvided  bool      `db:"equipment_provided"`
	MembershipRequired bool      `db:"membership_required"`
	FreeTaster         bool      `db:"free_taster"`
	CreatedOn          time.Time `db:"created_on"`
	Approved           bool      `db:"approved"`
}

type clubAdminTableModel struct {
	UserID string `db:"user_id"`
	ClubID int64  `db:"club_id"`
}

type clubReviewTableModel struct {
	ID         int64     `db:"id,readonly"`
	ClubID     int64     `db:"club_id"`
	UserID     string    `db:"user_id"`
	Score      int       `db:"score"`
	Headline   string    `db:"headline"`
	ReviewText string    `db:"review_text"`
	Approved   bool      `db:"approved"`
	CreatedOn  time.Time `db:"created_on"`
	UpdatedOn  time.Time `db:"updated_on"`
}

func clubInfoModelOf(i club.Info) clubInfoTableModel {
	return clubInfoTableModel{
		ClubID:             i.ClubID,
		Website:            i.Website,
		Image:              i.Image,
		ContactName:        i.ContactName,
		ContactEmail:       i.ContactEmail,
		ContactPhone:       i.ContactPhone,
		Description:        i.Description,
		SessionInfo:        i.SessionInfo,
		Beginners:          i.Beginners,
		Intermediates:      i.Intermediates,
		Advanced:           i.Advanced,
		Kids:               i.Kids,
		Adults:             i.Adults,
		Coaching:           i.Coaching,
		League:             i.League,
		EquipmentProvided:  i.EquipmentProvided,
		MembershipRequired: i.MembershipRequired,
		FreeTaster:         i.FreeTaster,
		CreatedOn:          i.CreatedOn,
		Approved:           i.Approved,
	}
}

func (row clubInfoTableModel) toDomain() club.Info {
	return club.Info{
		ID:           row.ID,
		ClubID:       row.ClubID,
		Website:      row.Website,
		Image:        row.Image,
		ContactName:  row.ContactName,
		ContactEmail: row.ContactEmail,
		ContactPhone: row.ContactPhone,
		Description:  row.Description,
		SessionInfo:  row.SessionInfo,
		Attributes: club.Attributes{
			Beginners:          row.Beginners,
			Intermediates:      row.Intermediates,
			Advanced:           row.Advanced,
			Kids:               row.Kids,
			Adults:             row.Adults,
			Coaching:           row.Coaching,
			League:             row.League,
			EquipmentProvided:  row.EquipmentProvided,
			MembershipRequired: row.MembershipRequired,
			FreeTaster:         row.FreeTaster,
		},
		CreatedOn: row.CreatedOn,
		Approved:  row.Approved,
	}
}

func (row clubReviewTableModel) toDomain() club.Review {
	return club.Review{
		ID:         row.ID,
		ClubID:     row.ClubID,
		UserID:     row.UserID,
		Score:      row.Score,
		Headline:   row.Headline,
		ReviewText: row.ReviewText,
		Approved:   row.Approved,
		CreatedOn:  row.CreatedOn,
		UpdatedOn:  row.UpdatedOn,
	}
}
