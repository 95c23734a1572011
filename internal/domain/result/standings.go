package result

import (
	"sort"

	"github.com/riskibarqy/tt-league/internal/domain/fixture"
	"github.com/riskibarqy/tt-league/internal/domain/team"
)

// Standing is one league table row. Points equal rubbers won.
type Standing struct {
	TeamID         int64  `json:"teamId"`
	TeamName       string `json:"teamName"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	RubbersFor     int    `json:"rubbersFor"`
	RubbersAgainst int    `json:"rubbersAgainst"`
	Points         int    `json:"points"`
}

func (s Standing) RubberDifference() int {
	return s.RubbersFor - s.RubbersAgainst
}

// Standings builds the table for teams from the played results of fixtures
// between them. Forfeits and fixtures involving other teams are ignored.
func Standings(teams []team.Team, fixtures []fixture.Fixture, results []FixtureResult) []Standing {
	rows := make(map[int64]*Standing, len(teams))
	for _, t := range teams {
		rows[t.ID] = &Standing{TeamID: t.ID, TeamName: t.Name}
	}

	byFixture := make(map[int64]FixtureResult, len(results))
	for _, r := range results {
		byFixture[r.FixtureID] = r
	}

	for _, f := range fixtures {
		r, ok := byFixture[f.ID]
		if !ok || r.Status != StatusPlayed {
			continue
		}
		home, homeOK := rows[f.HomeTeamID]
		away, awayOK := rows[f.AwayTeamID]
		if !homeOK || !awayOK {
			continue
		}
		record(home, r.HomeScore, r.AwayScore)
		record(away, r.AwayScore, r.HomeScore)
	}

	out := make([]Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		if out[i].RubberDifference() != out[j].RubberDifference() {
			return out[i].RubberDifference() > out[j].RubberDifference()
		}
		return out[i].TeamName < out[j].TeamName
	})
	return out
}

func record(row *Standing, scored, conceded int) {
	row.Played++
	row.RubbersFor += scored
	row.RubbersAgainst += conceded
	row.Points += scored
	switch {
	case scored > conceded:
		row.Won++
	case scored < conceded:
		row.Lost++
	default:
		row.Drawn++
	}
}
