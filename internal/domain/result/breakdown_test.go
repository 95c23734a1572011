package result

import (
	"testing"

	"github.com/riskibarqy/tt-league/internal/domain/fixture"
	"github.com/riskibarqy/tt-league/internal/domain/team"
)

func TestBreakdownOf_AbsentMeansZero(t *testing.T) {
	const (
		homePlayer1 = int64(1)
		awayPlayer1 = int64(11)
		awayPlayer2 = int64(12)
	)
	singles := []SinglesMatch{
		{HomePlayerID: homePlayer1, AwayPlayerID: awayPlayer1, HomeSets: 3, AwaySets: 0},
		{HomePlayerID: homePlayer1, AwayPlayerID: awayPlayer2, HomeSets: 1, AwaySets: 3},
	}

	b := BreakdownOf(singles)
	if len(b.HomeWins) != 1 || b.HomeWins[homePlayer1] != 1 {
		t.Fatalf("unexpected home wins: %v", b.HomeWins)
	}
	if len(b.AwayWins) != 1 || b.AwayWins[awayPlayer2] != 1 {
		t.Fatalf("unexpected away wins: %v", b.AwayWins)
	}
	if _, ok := b.AwayWins[awayPlayer1]; ok {
		t.Fatalf("expected away player 1 absent, got %v", b.AwayWins)
	}
	if _, ok := b.HomeWins[awayPlayer1]; ok {
		t.Fatalf("expected away player 1 absent from home map")
	}
}

func TestStandings(t *testing.T) {
	teams := []team.Team{
		{ID: 1, Name: "Arrows"},
		{ID: 2, Name: "Bats"},
		{ID: 3, Name: "Comets"},
	}
	fixtures := []fixture.Fixture{
		{ID: 100, HomeTeamID: 1, AwayTeamID: 2},
		{ID: 101, HomeTeamID: 3, AwayTeamID: 1},
		{ID: 102, HomeTeamID: 2, AwayTeamID: 3},
		{ID: 103, HomeTeamID: 2, AwayTeamID: 99},
	}
	results := []FixtureResult{
		{FixtureID: 100, HomeScore: 7, AwayScore: 3, Status: StatusPlayed},
		{FixtureID: 101, HomeScore: 5, AwayScore: 5, Status: StatusPlayed},
		{FixtureID: 102, HomeScore: 10, AwayScore: 0, Status: StatusForfeited},
		{FixtureID: 103, HomeScore: 10, AwayScore: 0, Status: StatusPlayed},
	}

	table := Standings(teams, fixtures, results)
	if len(table) != 3 {
		t.Fatalf("expected three rows, got %d", len(table))
	}
	first := table[0]
	if first.TeamID != 1 || first.Points != 12 || first.Played != 2 || first.Won != 1 || first.Drawn != 1 {
		t.Fatalf("unexpected leader: %+v", first)
	}
	if table[1].TeamID != 3 || table[1].Points != 5 || table[1].Played != 1 {
		t.Fatalf("unexpected second row: %+v", table[1])
	}
	if table[2].TeamID != 2 || table[2].Lost != 1 || table[2].Played != 1 {
		t.Fatalf("unexpected last row: %+v", table[2])
	}
}
