package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/tt-league/internal/domain/club"
	"github.com/riskibarqy/tt-league/internal/domain/fixture"
	"github.com/riskibarqy/tt-league/internal/domain/league"
	"github.com/riskibarqy/tt-league/internal/domain/team"
	"github.com/riskibarqy/tt-league/internal/domain/validation"
	clubmock "github.com/riskibarqy/tt-league/internal/mocks/domain/club"
	fixturemock "github.com/riskibarqy/tt-league/internal/mocks/domain/fixture"
	leaguemock "github.com/riskibarqy/tt-league/internal/mocks/domain/league"
	teammock "github.com/riskibarqy/tt-league/internal/mocks/domain/team"
	"github.com/riskibarqy/tt-league/internal/platform/dberr"
	"github.com/stretchr/testify/mock"
)

type fixtureMocks struct {
	league  *leaguemock.Repository
	club    *clubmock.Repository
	team    *teammock.Repository
	fixture *fixturemock.Repository
}

func newFixtureServiceWithMocks(t *testing.T) (*FixtureService, fixtureMocks) {
	t.Helper()

	m := fixtureMocks{
		league:  leaguemock.NewRepository(t),
		club:    clubmock.NewRepository(t),
		team:    teammock.NewRepository(t),
		fixture: fixturemock.NewRepository(t),
	}
	return NewFixtureService(m.league, m.club, m.team, m.fixture, time.UTC, nil), m
}

func TestFixtureService_ListFixtures_UnknownSeasonUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, m := newFixtureServiceWithMocks(t)

	m.league.
		On("GetSeasonBySlug", mock.Anything, "nope").
		Return(league.Season{}, false, nil).
		Once()
	m.league.
		On("ListSeasons", mock.Anything).
		Return([]league.Season{
			{ID: 1, Slug: "old", IsVisible: true, StartDate: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)},
			{ID: 2, Slug: "hidden"},
			{ID: 3, Slug: "new", IsVisible: true, StartDate: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)},
		}, nil).
		Once()

	listing, err := service.ListFixtures(ctx, FixtureQuery{SeasonSlug: "nope"})
	if err != nil {
		t.Fatalf("list fixtures: %v", err)
	}
	if listing.Season != nil || len(listing.Weeks) != 0 {
		t.Fatalf("expected empty listing, got %+v", listing)
	}
	if !listing.FiltersApplied {
		t.Fatalf("expected filters applied")
	}
	if len(listing.Options.Seasons) != 2 || listing.Options.Seasons[0].ID != 3 {
		t.Fatalf("expected visible seasons newest first, got %+v", listing.Options.Seasons)
	}
	if len(listing.StatusKey) != 4 {
		t.Fatalf("expected status legend, got %+v", listing.StatusKey)
	}
}

func TestFixtureService_ListFixtures_GroupsByWeekUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, m := newFixtureServiceWithMocks(t)
	service.now = func() time.Time { return time.Date(2025, 9, 3, 12, 0, 0, 0, time.UTC) }

	season := league.Season{ID: 10, Slug: "winter-2025", IsVisible: true, DivisionIDs: []int64{1}}
	weeks := []league.Week{
		{ID: 20, SeasonID: 10, Name: "Week 1", StartDate: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 21, SeasonID: 10, Name: "Week 2", StartDate: time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC)},
	}
	teams := []team.Team{
		{ID: 60, SeasonID: 10, DivisionID: 1, ClubID: 30, Name: "Riverside A"},
		{ID: 61, SeasonID: 10, DivisionID: 1, ClubID: 31, Name: "Hillside A"},
	}

	m.league.On("GetCurrentSeason", mock.Anything).Return(season, true, nil).Once()
	m.league.On("ListSeasons", mock.Anything).Return([]league.Season{season}, nil).Once()
	m.league.On("ListDivisions", mock.Anything).Return([]league.Division{{ID: 1, Name: "Division 1", Rank: 1}, {ID: 2, Rank: 2}}, nil).Once()
	m.league.On("ListWeeks", mock.Anything, int64(10)).Return(weeks, nil).Once()
	m.team.On("List", mock.Anything, team.Filter{SeasonID: 10}).Return(teams, nil).Twice()
	m.club.On("ListClubs", mock.Anything).Return([]club.Club{{ID: 31, Name: "Hillside TTC"}, {ID: 30, Name: "Riverside TTC"}, {ID: 99, Name: "Idle TTC"}}, nil).Once()
	m.fixture.
		On("List", mock.Anything, fixture.Filter{SeasonID: 10}).
		Return([]fixture.Fixture{
			{ID: 70, SeasonID: 10, DivisionID: 1, WeekID: 20, HomeTeamID: 60, AwayTeamID: 61, Datetime: time.Date(2025, 9, 2, 19, 0, 0, 0, time.UTC), Status: fixture.StatusCompleted},
		}, nil).
		Once()

	listing, err := service.ListFixtures(ctx, FixtureQuery{})
	if err != nil {
		t.Fatalf("list fixtures: %v", err)
	}
	if listing.Season == nil || listing.Season.ID != 10 {
		t.Fatalf("expected current season, got %+v", listing.Season)
	}
	if len(listing.Weeks) != 2 || len(listing.Weeks[0].Fixtures) != 1 || len(listing.Weeks[1].Fixtures) != 0 {
		t.Fatalf("unexpected weeks: %+v", listing.Weeks)
	}
	row := listing.Weeks[0].Fixtures[0]
	if row.HomeTeam.Name != "Riverside A" || row.StatusClass != "fixture-completed" {
		t.Fatalf("unexpected row: %+v", row)
	}
	if listing.CurrentWeekID == nil || *listing.CurrentWeekID != 20 {
		t.Fatalf("expected current week 20, got %v", listing.CurrentWeekID)
	}
	if len(listing.Options.Divisions) != 1 || len(listing.Options.Clubs) != 2 {
		t.Fatalf("unexpected options: %+v", listing.Options)
	}
}

func TestFixtureService_SaveFixture_UsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	week := league.Week{ID: 20, SeasonID: 10, StartDate: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)}
	home := team.Team{ID: 60, SeasonID: 10, DivisionID: 1, HomeVenueID: 40}
	away := team.Team{ID: 61, SeasonID: 10, DivisionID: 1, HomeVenueID: 41}
	valid := fixture.Fixture{
		SeasonID:   10,
		DivisionID: 1,
		WeekID:     20,
		HomeTeamID: 60,
		AwayTeamID: 61,
		Datetime:   time.Date(2025, 9, 2, 19, 0, 0, 0, time.UTC),
	}

	t.Run("fills default venue", func(t *testing.T) {
		service, m := newFixtureServiceWithMocks(t)
		m.league.On("GetWeek", mock.Anything, int64(20)).Return(week, true, nil).Once()
		m.team.On("GetByID", mock.Anything, int64(60)).Return(home, true, nil).Once()
		m.team.On("GetByID", mock.Anything, int64(61)).Return(away, true, nil).Once()
		m.fixture.
			On("Create", mock.Anything, mock.MatchedBy(func(f fixture.Fixture) bool {
				return f.VenueID != nil && *f.VenueID == 40 && f.Status == fixture.StatusScheduled
			})).
			Return(func(_ context.Context, f fixture.Fixture) (fixture.Fixture, error) {
				f.ID = 70
				return f, nil
			}).
			Once()

		got, err := service.SaveFixture(ctx, valid)
		if err != nil {
			t.Fatalf("save fixture: %v", err)
		}
		if got.ID != 70 || got.VenueID == nil || *got.VenueID != 40 {
			t.Fatalf("unexpected fixture: %+v", got)
		}
	})

	t.Run("reports every violation", func(t *testing.T) {
		service, m := newFixtureServiceWithMocks(t)
		m.league.On("GetWeek", mock.Anything, int64(20)).Return(week, true, nil).Once()
		m.team.On("GetByID", mock.Anything, int64(60)).Return(home, true, nil).Twice()

		f := valid
		f.AwayTeamID = 60
		f.Datetime = time.Date(2025, 9, 9, 21, 0, 0, 0, time.UTC)

		_, err := service.SaveFixture(ctx, f)
		verrs, ok := validation.From(err)
		if !ok {
			t.Fatalf("expected validation errors, got %v", err)
		}
		for _, field := range []string{"away_team", "datetime"} {
			if !verrs.Has(field) {
				t.Fatalf("expected %s error, got %v", field, verrs)
			}
		}
		if got := len(verrs["datetime"]); got != 2 {
			t.Fatalf("expected window and week errors on datetime, got %v", verrs["datetime"])
		}
	})

	t.Run("repeated pairing is a conflict", func(t *testing.T) {
		service, m := newFixtureServiceWithMocks(t)
		m.league.On("GetWeek", mock.Anything, int64(20)).Return(week, true, nil).Once()
		m.team.On("GetByID", mock.Anything, int64(60)).Return(home, true, nil).Once()
		m.team.On("GetByID", mock.Anything, int64(61)).Return(away, true, nil).Once()
		m.fixture.
			On("Create", mock.Anything, mock.Anything).
			Return(fixture.Fixture{}, dberr.Unique("fixtures_season_id_home_team_id_away_team_id_key")).
			Once()

		if _, err := service.SaveFixture(ctx, valid); !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})
}

func TestFixtureService_DeleteFixture_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	service, m := newFixtureServiceWithMocks(t)
	m.fixture.On("GetByID", mock.Anything, int64(404)).Return(fixture.Fixture{}, false, nil).Once()

	if err := service.DeleteFixture(context.Background(), 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	m.fixture.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
