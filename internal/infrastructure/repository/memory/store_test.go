package memory

import (
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/tt-league/internal/domain/club"
	"github.com/riskibarqy/tt-league/internal/domain/fixture"
	"github.com/riskibarqy/tt-league/internal/domain/league"
	"github.com/riskibarqy/tt-league/internal/domain/result"
	"github.com/riskibarqy/tt-league/internal/domain/team"
	"github.com/riskibarqy/tt-league/internal/domain/venue"
	"github.com/riskibarqy/tt-league/internal/platform/dberr"
)

const testSeed = `
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
clubs:
  - id: 30
    name: Riverside TTC
    info:
      contact_name: Ann Lee
      contact_email: ann@example.com
      contact_phone: "01632 960001"
      description: Friendly club.
      session_info: Tuesdays.
      approved: true
  - {id: 31, name: Hillside TTC}
club_admins:
  - {user_id: user-1, club_id: 30}
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
      approved: true
  - {id: 41, name: Hill Hall, clubs: [31]}
players:
  - {id: 50, forename: alice, surname: smith, date_of_birth: 1990-01-01, club_id: 30, club_status: confirmed}
  - {id: 51, forename: bob, surname: jones, date_of_birth: 1991-02-02, club_id: 31, club_status: confirmed}
teams:
  - {id: 60, season_id: 10, division_id: 1, club_id: 30, home_venue_id: 40, name: riverside a, home_time: "19:00", players: [50]}
  - {id: 61, season_id: 10, division_id: 1, club_id: 31, home_venue_id: 41, name: hillside a, players: [51]}
fixtures:
  - {id: 70, season_id: 10, division_id: 1, week_id: 20, home_team_id: 60, away_team_id: 61, venue_id: 40, datetime: 2025-09-02T19:00:00Z}
`

func seededStore(t *testing.T) *Store {
	t.Helper()

	seed, err := ParseSeed([]byte(testSeed))
	if err != nil {
		t.Fatalf("parse seed: %v", err)
	}
	s := NewStore()
	if err := seed.Apply(t.Context(), s, time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("apply seed: %v", err)
	}
	return s
}

func TestSeed_AppliesNormalizedRows(t *testing.T) {
	s := seededStore(t)
	ctx := t.Context()

	teams, err := NewTeamRepository(s).List(ctx, team.Filter{SeasonID: 10})
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 2 || teams[1].Name != "Riverside A" {
		t.Fatalf("unexpected teams: %+v", teams)
	}
	if teams[1].HomeDay != team.Monday {
		t.Fatalf("expected default home day, got %q", teams[1].HomeDay)
	}

	infos, err := NewVenueRepository(s).ListInfos(ctx, 41)
	if err != nil {
		t.Fatalf("list venue infos: %v", err)
	}
	if len(infos) != 0 {
		t.Fatalf("expected venue without info, got %+v", infos)
	}

	current, ok, err := NewLeagueRepository(s).GetCurrentSeason(ctx)
	if err != nil || !ok || current.ID != 10 {
		t.Fatalf("unexpected current season: %+v ok=%v err=%v", current, ok, err)
	}
}

func TestClubRepository_AppendInfoPrunesSuperseded(t *testing.T) {
	s := seededStore(t)
	ctx := t.Context()
	repo := NewClubRepository(s)

	base := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	first, _, err := repo.AppendInfo(ctx, club.Info{ClubID: 30, CreatedOn: base})
	if err != nil {
		t.Fatalf("append first: %v", err)
	}
	second, purged, err := repo.AppendInfo(ctx, club.Info{ClubID: 30, CreatedOn: base.Add(time.Hour)})
	if err != nil {
		t.Fatalf("append second: %v", err)
	}
	if len(purged) != 1 || purged[0] != first.ID {
		t.Fatalf("expected first pending snapshot purged, got %v", purged)
	}

	infos, err := repo.ListInfos(ctx, 30)
	if err != nil {
		t.Fatalf("list infos: %v", err)
	}
	if len(infos) != 2 || infos[0].ID != second.ID || !infos[1].Approved {
		t.Fatalf("expected new snapshot plus approved one, got %+v", infos)
	}

	_, again, err := repo.AppendInfo(ctx, club.Info{ClubID: 30, CreatedOn: base.Add(2 * time.Hour)})
	if err != nil {
		t.Fatalf("append third: %v", err)
	}
	if len(again) != 1 || again[0] != second.ID {
		t.Fatalf("unexpected purge: %v", again)
	}
}

func TestLeagueRepository_SingleCurrentSeason(t *testing.T) {
	s := seededStore(t)
	ctx := t.Context()
	repo := NewLeagueRepository(s)

	next, err := repo.CreateSeason(ctx, league.Season{
		Name:        "Summer 2026",
		ShortName:   "S26",
		Slug:        "summer-2026",
		DivisionIDs: []int64{1},
		IsCurrent:   true,
	})
	if err != nil {
		t.Fatalf("create season: %v", err)
	}

	seasons, err := repo.ListSeasons(ctx)
	if err != nil {
		t.Fatalf("list seasons: %v", err)
	}
	current := 0
	for _, season := range seasons {
		if season.IsCurrent {
			current++
			if season.ID != next.ID {
				t.Fatalf("expected new season current, got %d", season.ID)
			}
		}
	}
	if current != 1 {
		t.Fatalf("expected exactly one current season, got %d", current)
	}

	if err := repo.SetCurrentSeason(ctx, 10); err != nil {
		t.Fatalf("set current: %v", err)
	}
	got, _, _ := repo.GetCurrentSeason(ctx)
	if got.ID != 10 {
		t.Fatalf("expected season 10 current, got %d", got.ID)
	}
}

func TestStore_Constraints(t *testing.T) {
	s := seededStore(t)
	ctx := t.Context()

	_, err := NewFixtureRepository(s).Create(ctx, fixture.Fixture{
		SeasonID: 10, DivisionID: 1, WeekID: 20, HomeTeamID: 60, AwayTeamID: 61,
	})
	if !errors.Is(err, dberr.ErrUniqueViolation) {
		t.Fatalf("expected duplicate fixture rejected, got %v", err)
	}

	if err := NewTeamRepository(s).Delete(ctx, 60); !errors.Is(err, dberr.ErrForeignKeyViolation) {
		t.Fatalf("expected team delete protected, got %v", err)
	}
	if err := NewPlayerRepository(s).Delete(ctx, 50); !errors.Is(err, dberr.ErrForeignKeyViolation) {
		t.Fatalf("expected player delete protected, got %v", err)
	}
	if err := NewLeagueRepository(s).DeleteDivision(ctx, 2); !errors.Is(err, dberr.ErrForeignKeyViolation) {
		t.Fatalf("expected division delete protected, got %v", err)
	}
	if err := NewVenueRepository(s).Assign(ctx, venue.ClubVenue{ClubID: 30, VenueID: 40}); !errors.Is(err, dberr.ErrUniqueViolation) {
		t.Fatalf("expected duplicate link rejected, got %v", err)
	}
}

func TestResultRepository_CreateCompletesFixtureAndDeleteCascades(t *testing.T) {
	s := seededStore(t)
	ctx := t.Context()
	results := NewResultRepository(s)
	fixtures := NewFixtureRepository(s)

	res, err := results.Create(ctx, result.FixtureResult{FixtureID: 70, HomeScore: 6, AwayScore: 4, Winner: result.WinnerHome, Status: result.StatusPlayed})
	if err != nil {
		t.Fatalf("create result: %v", err)
	}
	f, _, _ := fixtures.GetByID(ctx, 70)
	if f.Status != fixture.StatusCompleted {
		t.Fatalf("expected fixture completed, got %q", f.Status)
	}
	if _, err := results.Create(ctx, result.FixtureResult{FixtureID: 70}); !errors.Is(err, dberr.ErrUniqueViolation) {
		t.Fatalf("expected second result rejected, got %v", err)
	}

	members, _ := NewTeamRepository(s).ListMembers(ctx, 60)
	away, _ := NewTeamRepository(s).ListMembers(ctx, 61)
	m, err := results.CreateSingles(ctx, result.SinglesMatch{
		ResultID:     res.ID,
		HomePlayerID: members[0].ID,
		AwayPlayerID: away[0].ID,
		HomeSets:     3,
		Games:        []result.Game{{SetNum: 1, HomePoints: 11, AwayPoints: 3}},
	})
	if err != nil {
		t.Fatalf("create singles: %v", err)
	}
	if m.Games[0].MatchID != m.ID || m.Games[0].ID == 0 {
		t.Fatalf("expected numbered games, got %+v", m.Games)
	}

	if err := NewTeamRepository(s).DeleteMember(ctx, members[0].ID); !errors.Is(err, dberr.ErrForeignKeyViolation) {
		t.Fatalf("expected member delete protected, got %v", err)
	}

	if err := fixtures.Delete(ctx, 70); err != nil {
		t.Fatalf("delete fixture: %v", err)
	}
	if _, ok, _ := results.GetByID(ctx, res.ID); ok {
		t.Fatalf("expected result removed with fixture")
	}
	singles, _ := results.ListSingles(ctx, res.ID)
	if len(singles) != 0 {
		t.Fatalf("expected singles removed, got %+v", singles)
	}
}
