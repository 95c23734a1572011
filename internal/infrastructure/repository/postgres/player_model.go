package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/tt-league/internal/domain/player"
)

type playerTableModel struct {
	ID            int64         `db:"id,readonly"`
	Forename      string        `db:"forename"`
	Surname       string        `db:"surname"`
	DateOfBirth   time.Time     `db:"date_of_birth"`
	CurrentClubID sql.NullInt64 `db:"current_club_id"`
	ClubStatus    string        `db:"club_status"`
}

func playerModelOf(p player.Player) playerTableModel {
	return playerTableModel{
		Forename:      p.Forename,
		Surname:       p.Surname,
		DateOfBirth:   p.DateOfBirth,
		CurrentClubID: ptrToNullInt64(p.CurrentClubID),
		ClubStatus:    string(p.ClubStatus),
	}
}

func (row playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:            row.ID,
		Forename:      row.Forename,
		Surname:       row.Surname,
		DateOfBirth:   row.DateOfBirth,
		CurrentClubID: nullInt64ToPtr(row.CurrentClubID),
		ClubStatus:    player.ClubStatus(row.ClubStatus),
	}
}
