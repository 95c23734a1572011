package postgres

import (
	"fmt"

	"github.com/riskibarqy/tt-league/internal/domain/league"
	"github.com/riskibarqy/tt-league/internal/domain/team"
)

// teamColumns renders home_time as text; lib/pq would otherwise decode a
// TIME column into a dated time.Time.
var teamColumns = []string{
	"id",
	"season_id",
	"division_id",
	"club_id",
	"home_venue_id",
	"team_name",
	"home_day",
	"to_char(home_time, 'HH24:MI:SS') AS home_time",
	"approved",
}

type teamTableModel struct {
	ID          int64  `db:"id,readonly"`
	SeasonID    int64  `db:"season_id"`
	DivisionID  int64  `db:"division_id"`
	ClubID      int64  `db:"club_id"`
	HomeVenueID int64  `db:"home_venue_id"`
	TeamName    string `db:"team_name"`
	HomeDay     string `db:"home_day"`
	HomeTime    string `db:"home_time"`
	Approved    bool   `db:"approved"`
}

type teamPlayerTableModel struct {
	ID       int64 `db:"id,readonly"`
	PlayerID int64 `db:"player_id"`
	TeamID   int64 `db:"team_id"`
	PaidFees bool  `db:"paid_fees"`
}

func teamModelOf(t team.Team) teamTableModel {
	return teamTableModel{
		SeasonID:    t.SeasonID,
		DivisionID:  t.DivisionID,
		ClubID:      t.ClubID,
		HomeVenueID: t.HomeVenueID,
		TeamName:    t.Name,
		HomeDay:     string(t.HomeDay),
		HomeTime:    t.HomeTime.String(),
		Approved:    t.Approved,
	}
}

func (row teamTableModel) toDomain() (team.Team, error) {
	homeTime, err := league.ParseTimeOfDay(row.HomeTime)
	if err != nil {
		return team.Team{}, fmt.Errorf("team %d home time: %w", row.ID, err)
	}
	return team.Team{
		ID:          row.ID,
		SeasonID:    row.SeasonID,
		DivisionID:  row.DivisionID,
		ClubID:      row.ClubID,
		HomeVenueID: row.HomeVenueID,
		Name:        row.TeamName,
		HomeDay:     team.Weekday(row.HomeDay),
		HomeTime:    homeTime,
		Approved:    row.Approved,
	}, nil
}

func (row teamPlayerTableModel) toDomain() team.Member {
	return team.Member{ID: row.ID, PlayerID: row.PlayerID, TeamID: row.TeamID, PaidFees: row.PaidFees}
}
