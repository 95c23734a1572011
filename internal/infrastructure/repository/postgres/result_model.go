package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/tt-league/internal/domain/result"
)

const (
	sideHome = "home"
	sideAway = "away"
)

type fixtureResultTableModel struct {
	ID        int64     `db:"id,readonly"`
	FixtureID int64     `db:"fixture_id"`
	HomeScore int       `db:"home_score"`
	AwayScore int       `db:"away_score"`
	Winner    string    `db:"winner"`
	Status    string    `db:"status"`
	CreatedOn time.Time `db:"created_on"`
}

type singlesMatchTableModel struct {
	ID           int64  `db:"id,readonly"`
	ResultID     int64  `db:"result_id"`
	HomePlayerID int64  `db:"home_player_id"`
	AwayPlayerID int64  `db:"away_player_id"`
	HomeSets     int    `db:"home_sets"`
	AwaySets     int    `db:"away_sets"`
	Winner       string `db:"winner"`
}

type doublesMatchTableModel struct {
	ID       int64  `db:"id,readonly"`
	ResultID int64  `db:"result_id"`
	HomeSets int    `db:"home_sets"`
	AwaySets int    `db:"away_sets"`
	Winner   string `db:"winner"`
}

type doublesPlayerTableModel struct {
	MatchID      int64  `db:"match_id"`
	TeamPlayerID int64  `db:"team_player_id"`
	Side         string `db:"side"`
	Position     int    `db:"position"`
}

type gameTableModel struct {
	ID             int64         `db:"id,readonly"`
	SinglesMatchID sql.NullInt64 `db:"singles_match_id"`
	DoublesMatchID sql.NullInt64 `db:"doubles_match_id"`
	SetNum         int           `db:"set_num"`
	HomePoints     int           `db:"home_points"`
	AwayPoints     int           `db:"away_points"`
	Winner         string        `db:"winner"`
}

func fixtureResultModelOf(r result.FixtureResult) fixtureResultTableModel {
	return fixtureResultTableModel{
		FixtureID: r.FixtureID,
		HomeScore: r.HomeScore,
		AwayScore: r.AwayScore,
		Winner:    string(r.Winner),
		Status:    string(r.Status),
		CreatedOn: r.CreatedOn,
	}
}

func (row fixtureResultTableModel) toDomain() result.FixtureResult {
	return result.FixtureResult{
		ID:        row.ID,
		FixtureID: row.FixtureID,
		HomeScore: row.HomeScore,
		AwayScore: row.AwayScore,
		Winner:    result.Winner(row.Winner),
		Status:    result.Status(row.Status),
		CreatedOn: row.CreatedOn,
	}
}

func (row gameTableModel) toDomain(matchID int64) result.Game {
	return result.Game{
		ID:         row.ID,
		MatchID:    matchID,
		SetNum:     row.SetNum,
		HomePoints: row.HomePoints,
		AwayPoints: row.AwayPoints,
		Winner:     result.Winner(row.Winner),
	}
}
