package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/tt-league/internal/domain/fixture"
)

type fixtureTableModel struct {
	ID         int64         `db:"id,readonly"`
	SeasonID   int64         `db:"season_id"`
	DivisionID int64         `db:"division_id"`
	WeekID     int64         `db:"week_id"`
	HomeTeamID int64         `db:"home_team_id"`
	AwayTeamID int64         `db:"away_team_id"`
	VenueID    sql.NullInt64 `db:"venue_id"`
	Datetime   time.Time     `db:"datetime"`
	Status     string        `db:"status"`
}

func fixtureModelOf(f fixture.Fixture) fixtureTableModel {
	return fixtureTableModel{
		SeasonID:   f.SeasonID,
		DivisionID: f.DivisionID,
		WeekID:     f.WeekID,
		HomeTeamID: f.HomeTeamID,
		AwayTeamID: f.AwayTeamID,
		VenueID:    ptrToNullInt64(f.VenueID),
		Datetime:   f.Datetime,
		Status:     string(f.Status),
	}
}

func (row fixtureTableModel) toDomain() fixture.Fixture {
	return fixture.Fixture{
		ID:         row.ID,
		SeasonID:   row.SeasonID,
		DivisionID: row.DivisionID,
		WeekID:     row.WeekID,
		HomeTeamID: row.HomeTeamID,
		AwayTeamID: row.AwayTeamID,
		VenueID:    nullInt64ToPtr(row.VenueID),
		Datetime:   row.Datetime,
		Status:     fixture.Status(row.Status),
	}
}
