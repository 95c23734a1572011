package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/tt-league/internal/domain/user"
	"github.com/riskibarqy/tt-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/tt-league/internal/platform/logging"
)

const leagueSeed = `
divisions:
  - {id: 1, name: Division 1, rank: 1}
  - {id: 2, name: Division 2, rank: 2}
seasons:
  - id: 10
    name: Winter 2025
    short_name: W25
    slug: winter-2025
    divisions: [1, 2]
    start_date: 2025-09-01
    end_date: 2026-04-30
    registration_opens: 2025-07-01
    registration_closes: 2025-08-15
    is_visible: true
    is_current: true
weeks:
  - {id: 20, season_id: 10, name: Week 1, start_date: 2025-09-01}
  - {id: 21, season_id: 10, name: Week 2, start_date: 2025-09-08}
clubs:
  - id: 30
    name: Riverside TTC
    info:
      contact_name: Ann Lee
      contact_email: ann@example.com
      contact_phone: "0121 234 5678"
      description: Friendly club.
      session_info: Tuesdays.
      approved: true
  - {id: 31, name: Hillside TTC}
club_admins:
  - {user_id: user-1, club_id: 30}
  - {user_id: user-2, club_id: 31}
venues:
  - id: 40
    name: Riverside Hall
    clubs: [30]
    info:
      street_address: 1 River Road
      city: Exeter
      county: Devon
      postcode: ex1 1aa
      num_tables: 6
      parking_info: On site.
      latitude: 50.72
      longitude: -3.53
      approved: true
  - {id: 41, name: Hill Hall, clubs: [31]}
  - id: 42
    name: Shared Hall
    clubs: [30, 31]
    info:
      street_address: 2 Shared Lane
      city: Exeter
      county: Devon
      postcode: ex2 2bb
      num_tables: 4
      parking_info: Street.
      approved: true
  - {id: 43, name: Spare Hall}
players:
  - {id: 50, forename: alice, surname: smith, date_of_birth: 1990-01-01, club_id: 30, club_status: confirmed}
  - {id: 52, forename: carol, surname: white, date_of_birth: 1992-03-03, club_id: 30, club_status: confirmed}
  - {id: 51, forename: bob, surname: jones, date_of_birth: 1991-02-02, club_id: 31, club_status: confirmed}
  - {id: 53, forename: dan, surname: brown, date_of_birth: 1993-04-04, club_id: 31, club_status: confirmed}
  - {id: 54, forename: eve, surname: black, date_of_birth: 1994-05-05, club_id: 31}
teams:
  - {id: 60, season_id: 10, division_id: 1, club_id: 30, home_venue_id: 40, name: riverside a, players: [50, 52]}
  - {id: 61, season_id: 10, division_id: 1, club_id: 31, home_venue_id: 41, name: hillside a, players: [51, 53]}
fixtures:
  - {id: 70, season_id: 10, division_id: 1, week_id: 20, home_team_id: 60, away_team_id: 61, venue_id: 40, datetime: 2025-09-02T19:00:00Z}
  - {id: 71, season_id: 10, division_id: 1, week_id: 21, home_team_id: 61, away_team_id: 60, venue_id: 41, datetime: 2025-09-09T19:00:00Z}
`

var (
	riversideAdmin = user.Principal{UserID: "user-1"}
	hillsideAdmin  = user.Principal{UserID: "user-2"}
	member         = user.Principal{UserID: "user-9"}
	anonymous      = user.Principal{}
)

type memoryRepos struct {
	league  *memory.LeagueRepository
	club    *memory.ClubRepository
	venue   *memory.VenueRepository
	player  *memory.PlayerRepository
	team    *memory.TeamRepository
	fixture *memory.FixtureRepository
	result  *memory.ResultRepository
}

// fullTeamsSeed gives both teams a third player, enough for nine distinct
// singles pairings.
var fullTeamsSeed = strings.NewReplacer(
	"players: [50, 52]}", "players: [50, 52, 55]}",
	"players: [51, 53]}", "players: [51, 53, 56]}",
	"teams:\n", "  - {id: 55, forename: fay, surname: green, date_of_birth: 1995-06-06, club_id: 30, club_status: confirmed}\n"+
		"  - {id: 56, forename: gus, surname: grey, date_of_birth: 1996-07-07, club_id: 31, club_status: confirmed}\n"+
		"teams:\n",
).Replace(leagueSeed)

func newMemoryRepos(t *testing.T) memoryRepos {
	t.Helper()
	return newMemoryReposFrom(t, leagueSeed)
}

func newMemoryReposFrom(t *testing.T, raw string) memoryRepos {
	t.Helper()

	seed, err := memory.ParseSeed([]byte(raw))
	if err != nil {
		t.Fatalf("parse seed: %v", err)
	}
	s := memory.NewStore()
	if err := seed.Apply(t.Context(), s, time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("apply seed: %v", err)
	}

	return memoryRepos{
		league:  memory.NewLeagueRepository(s),
		club:    memory.NewClubRepository(s),
		venue:   memory.NewVenueRepository(s),
		player:  memory.NewPlayerRepository(s),
		team:    memory.NewTeamRepository(s),
		fixture: memory.NewFixtureRepository(s),
		result:  memory.NewResultRepository(s),
	}
}

// memberIDs maps player id to registration id for a team.
func (r memoryRepos) memberIDs(t *testing.T, teamID int64) map[int64]int64 {
	t.Helper()

	members, err := r.team.ListMembers(t.Context(), teamID)
	if err != nil {
		t.Fatalf("list members: %v", err)
	}
	out := make(map[int64]int64, len(members))
	for _, m := range members {
		out[m.PlayerID] = m.ID
	}
	return out
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func nopLogger() *logging.Logger {
	return logging.NewNop()
}
