package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/tt-league/internal/domain/infoladder"
	"github.com/riskibarqy/tt-league/internal/domain/venue"
	"github.com/riskibarqy/tt-league/internal/platform/dberr"
	qb "github.com/riskibarqy/tt-league/internal/platform/querybuilder"
)

type VenueRepository struct {
	db *sqlx.DB
}

func NewVenueRepository(db *sqlx.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) ListVenues(ctx context.Context) ([]venue.Venue, error) {
	query, args, err := qb.Select("*").From("venues").OrderBy("LOWER(name)", "id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select venues query: %w", err)
	}

	var rows []venueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select venues: %w", err)
	}

	out := make([]venue.Venue, 0, len(rows))
	for _, row := range rows {
		out = append(out, venue.Venue{ID: row.ID, Name: row.Name})
	}
	return out, nil
}

func (r *VenueRepository) GetVenue(ctx context.Context, venueID int64) (venue.Venue, bool, error) {
	query, args, err := qb.Select("*").From("venues").Where(qb.Eq("id", venueID)).ToSQL()
	if err != nil {
		return venue.Venue{}, false, fmt.Errorf("build get venue query: %w", err)
	}

	var row venueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return venue.Venue{}, false, nil
		}
		return venue.Venue{}, false, fmt.Errorf("get venue: %w", err)
	}
	return venue.Venue{ID: row.ID, Name: row.Name}, true, nil
}

func (r *VenueRepository) CreateVenue(ctx context.Context, v venue.Venue, info venue.Info, clubID int64) (venue.Venue, venue.Info, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return venue.Venue{}, venue.Info{}, fmt.Errorf("begin tx create venue: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.InsertModel("venues", venueTableModel{Name: v.Name}, "RETURNING id")
	if err != nil {
		return venue.Venue{}, venue.Info{}, fmt.Errorf("build insert venue query: %w", err)
	}
	if err := tx.GetContext(ctx, &v.ID, query, args...); err != nil {
		return venue.Venue{}, venue.Info{}, fmt.Errorf("insert venue: %w", dberr.Classify(err))
	}

	info.VenueID = v.ID
	query, args, err = qb.InsertModel("venue_infos", venueInfoModelOf(info), "RETURNING id")
	if err != nil {
		return venue.Venue{}, venue.Info{}, fmt.Errorf("build insert venue info query: %w", err)
	}
	if err := tx.GetContext(ctx, &info.ID, query, args...); err != nil {
		return venue.Venue{}, venue.Info{}, fmt.Errorf("insert venue info: %w", dberr.Classify(err))
	}

	if clubID != 0 {
		if err := insertClubVenue(ctx, tx, venue.ClubVenue{ClubID: clubID, VenueID: v.ID}); err != nil {
			return venue.Venue{}, venue.Info{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return venue.Venue{}, venue.Info{}, fmt.Errorf("commit create venue tx: %w", err)
	}
	return v, info, nil
}

// DeleteVenue relies on the schema: infos and club links cascade, fixtures
// lose their venue and a team's home venue blocks the delete.
func (r *VenueRepository) DeleteVenue(ctx context.Context, venueID int64) error {
	query, args, err := qb.DeleteFrom("venues").Where(qb.Eq("id", venueID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete venue query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete venue: %w", dberr.Classify(err))
	}
	return nil
}

func (r *VenueRepository) ListInfos(ctx context.Context, venueID int64) ([]venue.Info, error) {
	return selectVenueInfos(ctx, r.db, qb.Eq("venue_id", venueID))
}

func (r *VenueRepository) ListAllInfos(ctx context.Context) ([]venue.Info, error) {
	return selectVenueInfos(ctx, r.db, qb.Expr("TRUE"))
}

func selectVenueInfos(ctx context.Context, q sqlx.QueryerContext, cond qb.Condition) ([]venue.Info, error) {
	query, args, err := qb.Select("*").From("venue_infos").
		Where(cond).
		OrderBy("created_on DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select venue infos query: %w", err)
	}

	var rows []venueInfoTableModel
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select venue infos: %w", err)
	}

	out := make([]venue.Info, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *VenueRepository) AppendInfo(ctx context.Context, info venue.Info) (venue.Info, []int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return venue.Info{}, nil, fmt.Errorf("begin tx append venue info: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := lockRow(ctx, tx, "venues", info.VenueID); err != nil {
		return venue.Info{}, nil, err
	}

	query, args, err := qb.InsertModel("venue_infos", venueInfoModelOf(info), "RETURNING id")
	if err != nil {
		return venue.Info{}, nil, fmt.Errorf("build insert venue info query: %w", err)
	}
	if err := tx.GetContext(ctx, &info.ID, query, args...); err != nil {
		return venue.Info{}, nil, fmt.Errorf("insert venue info: %w", dberr.Classify(err))
	}

	ladder, err := selectVenueInfos(ctx, tx, qb.Eq("venue_id", info.VenueID))
	if err != nil {
		return venue.Info{}, nil, err
	}
	purged := infoladder.Superseded(ladder, info.ID)
	if _, err := deleteByIDs(ctx, tx, "venue_infos", "venue_id", info.VenueID, purged); err != nil {
		return venue.Info{}, nil, err
	}

	if err := tx.Commit(); err != nil {
		return venue.Info{}, nil, fmt.Errorf("commit append venue info tx: %w", err)
	}
	return info, purged, nil
}

func (r *VenueRepository) ApproveInfo(ctx context.Context, infoID int64) (venue.Info, bool, error) {
	query, args, err := qb.Update("venue_infos").
		Set("approved", true).
		Where(qb.Eq("id", infoID)).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return venue.Info{}, false, fmt.Errorf("build approve venue info query: %w", err)
	}

	var row venueInfoTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return venue.Info{}, false, nil
		}
		return venue.Info{}, false, fmt.Errorf("approve venue info: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *VenueRepository) DeleteInfos(ctx context.Context, venueID int64, infoIDs []int64) (int, error) {
	return deleteByIDs(ctx, r.db, "venue_infos", "venue_id", venueID, infoIDs)
}

func (r *VenueRepository) ListLinks(ctx context.Context) ([]venue.ClubVenue, error) {
	return r.selectLinks(ctx, qb.Expr("TRUE"))
}

func (r *VenueRepository) ListLinksByClub(ctx context.Context, clubID int64) ([]venue.ClubVenue, error) {
	return r.selectLinks(ctx, qb.Eq("club_id", clubID))
}

func (r *VenueRepository) ListLinksByVenue(ctx context.Context, venueID int64) ([]venue.ClubVenue, error) {
	return r.selectLinks(ctx, qb.Eq("venue_id", venueID))
}

func (r *VenueRepository) selectLinks(ctx context.Context, cond qb.Condition) ([]venue.ClubVenue, error) {
	query, args, err := qb.Select("*").From("club_venues").Where(cond).OrderBy("club_id", "venue_id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select club venues query: %w", err)
	}

	var rows []clubVenueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select club venues: %w", err)
	}

	out := make([]venue.ClubVenue, 0, len(rows))
	for _, row := range rows {
		out = append(out, venue.ClubVenue{ClubID: row.ClubID, VenueID: row.VenueID})
	}
	return out, nil
}

func (r *VenueRepository) Assign(ctx context.Context, link venue.ClubVenue) error {
	return insertClubVenue(ctx, r.db, link)
}

func insertClubVenue(ctx context.Context, exec sqlx.ExecerContext, link venue.ClubVenue) error {
	query, args, err := qb.InsertModel("club_venues", clubVenueTableModel{ClubID: link.ClubID, VenueID: link.VenueID}, "")
	if err != nil {
		return fmt.Errorf("build insert club venue query: %w", err)
	}
	if _, err := exec.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert club venue: %w", dberr.Classify(err))
	}
	return nil
}

func (r *VenueRepository) Unassign(ctx context.Context, link venue.ClubVenue) (bool, error) {
	query, args, err := qb.DeleteFrom("club_venues").
		Where(qb.Eq("club_id", link.ClubID), qb.Eq("venue_id", link.VenueID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete club venue query: %w", err)
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete club venue: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete club venue rows: %w", err)
	}
	return n > 0, nil
}
