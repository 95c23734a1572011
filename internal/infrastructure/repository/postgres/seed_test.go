package postgres

import (
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/tt-league/internal/infrastructure/repository/memory"
)

const seedDoc = `
divisions:
  - {id: 1, name: Division 1, rank: 1}
seasons:
  - {id: 10, name: Winter 2025, short_name: W25, slug: winter-2025, divisions: [1], start_date: 2025-09-01, end_date: 2026-04-30, registration_opens: 2025-07-01, registration_closes: 2025-08-15}
clubs:
  - {id: 30, name: Riverside TTC}
venues:
  - {id: 40, name: Riverside Hall, clubs: [30]}
players:
  - {id: 50, forename: alice, surname: smith, date_of_birth: 1990-01-01, club_id: 30}
teams:
  - {id: 60, season_id: 10, division_id: 1, club_id: 30, home_venue_id: 40, name: riverside a, players: [50]}
`

func TestSeedStatements(t *testing.T) {
	seed, err := memory.ParseSeed([]byte(seedDoc))
	if err != nil {
		t.Fatalf("parse seed: %v", err)
	}

	statements, err := seedStatements(seed, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("build statements: %v", err)
	}

	labels := make([]string, 0, len(statements))
	for _, stmt := range statements {
		labels = append(labels, stmt.label)
	}
	want := []string{
		"division Division 1",
		"season winter-2025",
		"season winter-2025 division 1",
		"club Riverside TTC",
		"venue Riverside Hall",
		"venue Riverside Hall club 30",
		"player Alice Smith",
		"team Riverside A",
		"team Riverside A player 50",
	}
	if strings.Join(labels, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected statements:\n got=%v\nwant=%v", labels, want)
	}

	teamArgs := statements[7].args
	if teamArgs["home_time"] != "19:00" || teamArgs["home_day"] != "monday" {
		t.Fatalf("expected normalised team defaults, got %v", teamArgs)
	}
	if statements[6].args["club_status"] != "pending" {
		t.Fatalf("expected pending club status, got %v", statements[6].args["club_status"])
	}
}

func TestSeedStatements_RejectsBadHomeTime(t *testing.T) {
	seed := memory.Seed{Teams: []memory.SeedTeam{{ID: 1, Name: "A", HomeTime: "7pm"}}}
	if _, err := seedStatements(seed, time.Now()); err == nil {
		t.Fatalf("expected invalid home time to fail")
	}
}
