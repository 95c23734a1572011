package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/tt-league/internal/domain/club"
	"github.com/riskibarqy/tt-league/internal/domain/fixture"
	"github.com/riskibarqy/tt-league/internal/domain/league"
	"github.com/riskibarqy/tt-league/internal/domain/team"
	"github.com/riskibarqy/tt-league/internal/domain/validation"
	"github.com/riskibarqy/tt-league/internal/platform/logging"
)

// FixtureQuery selects fixtures by season slug, division and club.
type FixtureQuery struct {
	SeasonSlug string
	DivisionID int64
	ClubID     int64
}

func (q FixtureQuery) applied() bool {
	return strings.TrimSpace(q.SeasonSlug) != "" || q.DivisionID != 0 || q.ClubID != 0
}

// FixtureRow is a fixture with both teams resolved.
type FixtureRow struct {
	Fixture     fixture.Fixture
	HomeTeam    team.Team
	AwayTeam    team.Team
	StatusClass string
}

type FixtureWeek struct {
	Week     league.Week
	Fixtures []FixtureRow
}

// FilterOptions are the choices offered by the fixture filter panel.
type FilterOptions struct {
	Seasons   []league.Season
	Divisions []league.Division
	Clubs     []club.Club
}

type FixtureListing struct {
	Season         *league.Season
	Weeks          []FixtureWeek
	CurrentWeekID  *int64
	StatusKey      []fixture.StatusKeyItem
	FiltersApplied bool
	Options        FilterOptions
}

// FixtureViolation is a stored fixture that no longer passes validation.
type FixtureViolation struct {
	FixtureID int64
	Errors    validation.Errors
}

// checkWorkers bounds concurrent repository lookups during a season check.
const checkWorkers = 8

type FixtureService struct {
	leagueRepo  league.Repository
	clubRepo    club.Repository
	teamRepo    team.Repository
	fixtureRepo fixture.Repository
	logger      *logging.Logger
	loc         *time.Location
	now         func() time.Time
}

func NewFixtureService(
	leagueRepo league.Repository,
	clubRepo club.Repository,
	teamRepo team.Repository,
	fixtureRepo fixture.Repository,
	loc *time.Location,
	logger *logging.Logger,
) *FixtureService {
	if logger == nil {
		logger = logging.Default()
	}
	if loc == nil {
		loc = time.UTC
	}

	return &FixtureService{
		leagueRepo:  leagueRepo,
		clubRepo:    clubRepo,
		teamRepo:    teamRepo,
		fixtureRepo: fixtureRepo,
		logger:      logger,
		loc:         loc,
		now:         time.Now,
	}
}

// ListFixtures groups the selected season's fixtures by week. An unknown or
// hidden season yields a listing without a season rather than an error.
func (s *FixtureService) ListFixtures(ctx context.Context, q FixtureQuery) (FixtureListing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListFixtures")
	defer span.End()

	listing := FixtureListing{
		StatusKey:      fixture.StatusKey(),
		FiltersApplied: q.applied(),
	}

	season, ok, err := resolveSeason(ctx, s.leagueRepo, q.SeasonSlug)
	if err != nil {
		return FixtureListing{}, err
	}
	options, err := s.filterOptions(ctx, season, ok)
	if err != nil {
		return FixtureListing{}, err
	}
	listing.Options = options
	if !ok {
		return listing, nil
	}
	listing.Season = &season

	weeks, err := s.leagueRepo.ListWeeks(ctx, season.ID)
	if err != nil {
		return FixtureListing{}, fmt.Errorf("list weeks: %w", err)
	}
	fixtures, err := s.fixtureRepo.List(ctx, fixture.Filter{
		SeasonID:   season.ID,
		DivisionID: q.DivisionID,
		ClubID:     q.ClubID,
	})
	if err != nil {
		return FixtureListing{}, fmt.Errorf("list fixtures: %w", err)
	}
	teams, err := s.teamsByID(ctx, season.ID)
	if err != nil {
		return FixtureListing{}, err
	}

	for _, group := range fixture.GroupByWeek(weeks, fixtures) {
		week := FixtureWeek{Week: group.Week, Fixtures: make([]FixtureRow, 0, len(group.Fixtures))}
		for _, f := range group.Fixtures {
			week.Fixtures = append(week.Fixtures, FixtureRow{
				Fixture:     f,
				HomeTeam:    teams[f.HomeTeamID],
				AwayTeam:    teams[f.AwayTeamID],
				StatusClass: fixture.StatusClass(string(f.Status)),
			})
		}
		listing.Weeks = append(listing.Weeks, week)
	}

	if current, found := league.CurrentWeek(weeks, league.DateOf(s.now().In(s.loc))); found {
		id := current.ID
		listing.CurrentWeekID = &id
	}
	return listing, nil
}

// FilterOptions returns the filter panel choices for a season slug.
func (s *FixtureService) FilterOptions(ctx context.Context, seasonSlug string) (FilterOptions, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.FilterOptions")
	defer span.End()

	season, ok, err := resolveSeason(ctx, s.leagueRepo, seasonSlug)
	if err != nil {
		return FilterOptions{}, err
	}
	return s.filterOptions(ctx, season, ok)
}

func (s *FixtureService) filterOptions(ctx context.Context, season league.Season, ok bool) (FilterOptions, error) {
	seasons, err := s.leagueRepo.ListSeasons(ctx)
	if err != nil {
		return FilterOptions{}, fmt.Errorf("list seasons: %w", err)
	}
	var opts FilterOptions
	for _, candidate := range seasons {
		if candidate.IsVisible {
			opts.Seasons = append(opts.Seasons, candidate)
		}
	}
	sort.SliceStable(opts.Seasons, func(i, j int) bool { return opts.Seasons[i].StartDate.After(opts.Seasons[j].StartDate) })
	if !ok {
		return opts, nil
	}

	divisions, err := s.leagueRepo.ListDivisions(ctx)
	if err != nil {
		return FilterOptions{}, fmt.Errorf("list divisions: %w", err)
	}
	for _, d := range divisions {
		if season.HasDivision(d.ID) {
			opts.Divisions = append(opts.Divisions, d)
		}
	}
	sort.SliceStable(opts.Divisions, func(i, j int) bool { return opts.Divisions[i].Rank < opts.Divisions[j].Rank })

	teams, err := s.teamRepo.List(ctx, team.Filter{SeasonID: season.ID})
	if err != nil {
		return FilterOptions{}, fmt.Errorf("list teams: %w", err)
	}
	withTeams := make(map[int64]bool, len(teams))
	for _, t := range teams {
		withTeams[t.ClubID] = true
	}
	clubs, err := s.clubRepo.ListClubs(ctx)
	if err != nil {
		return FilterOptions{}, fmt.Errorf("list clubs: %w", err)
	}
	for _, c := range clubs {
		if withTeams[c.ID] {
			opts.Clubs = append(opts.Clubs, c)
		}
	}
	sort.SliceStable(opts.Clubs, func(i, j int) bool { return opts.Clubs[i].Name < opts.Clubs[j].Name })
	return opts, nil
}

func (s *FixtureService) teamsByID(ctx context.Context, seasonID int64) (map[int64]team.Team, error) {
	teams, err := s.teamRepo.List(ctx, team.Filter{SeasonID: seasonID})
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	out := make(map[int64]team.Team, len(teams))
	for _, t := range teams {
		out[t.ID] = t
	}
	return out, nil
}

func (s *FixtureService) GetFixture(ctx context.Context, fixtureID int64) (fixture.Fixture, error) {
	f, exists, err := s.fixtureRepo.GetByID(ctx, fixtureID)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("get fixture: %w", err)
	}
	if !exists {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture=%d", ErrNotFound, fixtureID)
	}
	return f, nil
}

// SaveFixture validates the schedule, fills the default venue and stores the
// fixture. A repeated home/away pairing in a season is a conflict.
func (s *FixtureService) SaveFixture(ctx context.Context, f fixture.Fixture) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.SaveFixture")
	defer span.End()

	if f.Status == "" {
		f.Status = fixture.StatusScheduled
	}
	f = s.local(f)
	if f.ID != 0 {
		if _, err := s.GetFixture(ctx, f.ID); err != nil {
			return fixture.Fixture{}, err
		}
	}

	errs, home, err := s.validate(ctx, f)
	if err != nil {
		return fixture.Fixture{}, err
	}
	if err := invalid(errs); err != nil {
		return fixture.Fixture{}, err
	}
	f = fixture.WithDefaultVenue(f, home)

	if f.ID == 0 {
		created, err := s.fixtureRepo.Create(ctx, f)
		if err != nil {
			return fixture.Fixture{}, storeErr("create fixture", err)
		}
		return created, nil
	}
	if err := s.fixtureRepo.Update(ctx, f); err != nil {
		return fixture.Fixture{}, storeErr("update fixture", err)
	}
	return f, nil
}

// local moves the kick-off into the league timezone, where the match window
// and week span are defined.
func (s *FixtureService) local(f fixture.Fixture) fixture.Fixture {
	if !f.Datetime.IsZero() {
		f.Datetime = f.Datetime.In(s.loc)
	}
	return f
}

func (s *FixtureService) validate(ctx context.Context, f fixture.Fixture) (validation.Errors, team.Team, error) {
	errs := validation.New()
	f = s.local(f)

	week, weekOK, err := s.leagueRepo.GetWeek(ctx, f.WeekID)
	if err != nil {
		return nil, team.Team{}, fmt.Errorf("get week: %w", err)
	}
	if !weekOK {
		errs.Add("week", "Select a valid week.")
	}
	home, homeOK, err := s.teamRepo.GetByID(ctx, f.HomeTeamID)
	if err != nil {
		return nil, team.Team{}, fmt.Errorf("get home team: %w", err)
	}
	if !homeOK {
		errs.Add("home_team", "Select a valid team.")
	}
	away, awayOK, err := s.teamRepo.GetByID(ctx, f.AwayTeamID)
	if err != nil {
		return nil, team.Team{}, fmt.Errorf("get away team: %w", err)
	}
	if !awayOK {
		errs.Add("away_team", "Select a valid team.")
	}

	if weekOK && homeOK && awayOK {
		errs.Merge(fixture.Validate(f, week, home, away))
	}
	return errs, home, nil
}

func (s *FixtureService) DeleteFixture(ctx context.Context, fixtureID int64) error {
	if _, err := s.GetFixture(ctx, fixtureID); err != nil {
		return err
	}
	if err := s.fixtureRepo.Delete(ctx, fixtureID); err != nil {
		return fmt.Errorf("delete fixture: %w", err)
	}
	return nil
}

// CheckSeason re-validates every stored fixture of a season. Cross-table
// rules can be broken by later team edits, so this surfaces drift.
func (s *FixtureService) CheckSeason(ctx context.Context, seasonSlug string) ([]FixtureViolation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.CheckSeason", attribute.String("season.slug", seasonSlug))
	defer span.End()

	season, ok, err := s.leagueRepo.GetSeasonBySlug(ctx, strings.TrimSpace(seasonSlug))
	if err != nil {
		return nil, fmt.Errorf("get season by slug: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: season=%s", ErrNotFound, seasonSlug)
	}

	fixtures, err := s.fixtureRepo.List(ctx, fixture.Filter{SeasonID: season.ID})
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}

	pool, err := ants.NewPool(checkWorkers)
	if err != nil {
		return nil, fmt.Errorf("create check pool: %w", err)
	}
	defer pool.Release()

	// Each slot is written by one task only; order follows the fixture list.
	found := make([]validation.Errors, len(fixtures))
	failures := make([]error, len(fixtures))
	var wg sync.WaitGroup
	for i, f := range fixtures {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			found[i], _, failures[i] = s.validate(ctx, f)
		}); err != nil {
			wg.Done()
			failures[i] = fmt.Errorf("submit fixture %d: %w", f.ID, err)
		}
	}
	wg.Wait()

	var out []FixtureViolation
	for i, f := range fixtures {
		if failures[i] != nil {
			return nil, failures[i]
		}
		if !found[i].Empty() {
			out = append(out, FixtureViolation{FixtureID: f.ID, Errors: found[i]})
		}
	}
	s.logger.InfoContext(ctx, "season fixtures checked",
		"season", season.Slug,
		"fixtures", len(fixtures),
		"violations", len(out),
	)
	return out, nil
}
