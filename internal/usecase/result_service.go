package usecase

import (
	"context"
	"fmt"
	"sort"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/tt-league/internal/domain/club"
	"github.com/riskibarqy/tt-league/internal/domain/fixture"
	"github.com/riskibarqy/tt-league/internal/domain/league"
	"github.com/riskibarqy/tt-league/internal/domain/player"
	"github.com/riskibarqy/tt-league/internal/domain/result"
	"github.com/riskibarqy/tt-league/internal/domain/team"
	"github.com/riskibarqy/tt-league/internal/domain/validation"
	"github.com/riskibarqy/tt-league/internal/domain/venue"
	"github.com/riskibarqy/tt-league/internal/platform/logging"
)

// ResultService records fixture results and builds the result read models.
type ResultService struct {
	leagueRepo  league.Repository
	clubRepo    club.Repository
	venueRepo   venue.Repository
	playerRepo  player.Repository
	teamRepo    team.Repository
	fixtureRepo fixture.Repository
	resultRepo  result.Repository
	logger      *logging.Logger
}

func NewResultService(
	leagueRepo league.Repository,
	clubRepo club.Repository,
	venueRepo venue.Repository,
	playerRepo player.Repository,
	teamRepo team.Repository,
	fixtureRepo fixture.Repository,
	resultRepo result.Repository,
	logger *logging.Logger,
) *ResultService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ResultService{
		leagueRepo:  leagueRepo,
		clubRepo:    clubRepo,
		venueRepo:   venueRepo,
		playerRepo:  playerRepo,
		teamRepo:    teamRepo,
		fixtureRepo: fixtureRepo,
		resultRepo:  resultRepo,
		logger:      logger,
	}
}

// RecordResult stores the outcome of a fixture and marks it completed.
// Updating an existing result keeps its fixture and re-checks the score
// against its matches.
func (s *ResultService) RecordResult(ctx context.Context, r result.FixtureResult) (result.FixtureResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.RecordResult")
	defer span.End()

	if r.ID != 0 {
		stored, err := s.getResult(ctx, r.ID)
		if err != nil {
			return result.FixtureResult{}, err
		}
		r.FixtureID = stored.FixtureID
		r.CreatedOn = stored.CreatedOn
	}
	if _, exists, err := s.fixtureRepo.GetByID(ctx, r.FixtureID); err != nil {
		return result.FixtureResult{}, fmt.Errorf("get fixture: %w", err)
	} else if !exists {
		return result.FixtureResult{}, fmt.Errorf("%w: fixture=%d", ErrNotFound, r.FixtureID)
	}

	r = r.Derive()
	errs := r.Validate()

	existing, exists, err := s.resultRepo.GetByFixture(ctx, r.FixtureID)
	if err != nil {
		return result.FixtureResult{}, fmt.Errorf("get result by fixture: %w", err)
	}
	if exists && existing.ID != r.ID {
		return result.FixtureResult{}, fmt.Errorf("%w: fixture %d already has a result", ErrConflict, r.FixtureID)
	}

	if r.ID != 0 {
		singles, doubles, err := s.matches(ctx, r.ID)
		if err != nil {
			return result.FixtureResult{}, err
		}
		errs.Merge(result.ValidateAgainstMatches(r, singles, doubles))
	}
	if err := invalid(errs); err != nil {
		return result.FixtureResult{}, err
	}

	if r.ID == 0 {
		created, err := s.resultRepo.Create(ctx, r)
		if err != nil {
			return result.FixtureResult{}, storeErr("create result", err)
		}
		s.logger.InfoContext(ctx, "fixture result recorded",
			"fixture_id", created.FixtureID,
			"home_score", created.HomeScore,
			"away_score", created.AwayScore,
		)
		return created, nil
	}
	if err := s.resultRepo.Update(ctx, r); err != nil {
		return result.FixtureResult{}, storeErr("update result", err)
	}
	return r, nil
}

func (s *ResultService) DeleteResult(ctx context.Context, resultID int64) error {
	if _, err := s.getResult(ctx, resultID); err != nil {
		return err
	}
	if err := s.resultRepo.Delete(ctx, resultID); err != nil {
		return fmt.Errorf("delete result: %w", err)
	}
	return nil
}

func (s *ResultService) getResult(ctx context.Context, resultID int64) (result.FixtureResult, error) {
	r, exists, err := s.resultRepo.GetByID(ctx, resultID)
	if err != nil {
		return result.FixtureResult{}, fmt.Errorf("get result: %w", err)
	}
	if !exists {
		return result.FixtureResult{}, fmt.Errorf("%w: result=%d", ErrNotFound, resultID)
	}
	return r, nil
}

func (s *ResultService) matches(ctx context.Context, resultID int64) ([]result.SinglesMatch, *result.DoublesMatch, error) {
	singles, err := s.resultRepo.ListSingles(ctx, resultID)
	if err != nil {
		return nil, nil, fmt.Errorf("list singles: %w", err)
	}
	doubles, ok, err := s.resultRepo.GetDoubles(ctx, resultID)
	if err != nil {
		return nil, nil, fmt.Errorf("get doubles: %w", err)
	}
	if !ok {
		return singles, nil, nil
	}
	return singles, &doubles, nil
}

// sides loads the fixture a result belongs to and the clubs of both teams.
func (s *ResultService) sides(ctx context.Context, r result.FixtureResult) (result.Sides, error) {
	f, exists, err := s.fixtureRepo.GetByID(ctx, r.FixtureID)
	if err != nil {
		return result.Sides{}, fmt.Errorf("get fixture: %w", err)
	}
	if !exists {
		return result.Sides{}, fmt.Errorf("%w: fixture=%d", ErrNotFound, r.FixtureID)
	}
	teams, err := s.teamRepo.GetByIDs(ctx, []int64{f.HomeTeamID, f.AwayTeamID})
	if err != nil {
		return result.Sides{}, fmt.Errorf("get fixture teams: %w", err)
	}

	sides := result.Sides{SeasonID: f.SeasonID}
	for _, t := range teams {
		if t.ID == f.HomeTeamID {
			sides.HomeClubID = t.ClubID
		}
		if t.ID == f.AwayTeamID {
			sides.AwayClubID = t.ClubID
		}
	}
	return sides, nil
}

// participants resolves registrations to their team season, club and player
// name.
func (s *ResultService) participants(ctx context.Context, memberIDs []int64) (map[int64]result.Participant, error) {
	members, err := s.teamRepo.GetMembers(ctx, memberIDs)
	if err != nil {
		return nil, fmt.Errorf("get team members: %w", err)
	}

	teamIDs := make([]int64, 0, len(members))
	playerIDs := make([]int64, 0, len(members))
	for _, m := range members {
		teamIDs = append(teamIDs, m.TeamID)
		playerIDs = append(playerIDs, m.PlayerID)
	}
	teams, err := s.teamRepo.GetByIDs(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("get teams by ids: %w", err)
	}
	players, err := s.playerRepo.GetByIDs(ctx, playerIDs)
	if err != nil {
		return nil, fmt.Errorf("get players by ids: %w", err)
	}

	teamByID := make(map[int64]team.Team, len(teams))
	for _, t := range teams {
		teamByID[t.ID] = t
	}
	playerByID := make(map[int64]player.Player, len(players))
	for _, p := range players {
		playerByID[p.ID] = p
	}

	out := make(map[int64]result.Participant, len(members))
	for _, m := range members {
		t := teamByID[m.TeamID]
		out[m.ID] = result.Participant{
			MemberID: m.ID,
			Name:     playerByID[m.PlayerID].FullName(),
			SeasonID: t.SeasonID,
			ClubID:   t.ClubID,
		}
	}
	return out, nil
}

// RecordSingles validates and stores one singles rubber with its games.
func (s *ResultService) RecordSingles(ctx context.Context, m result.SinglesMatch) (result.SinglesMatch, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.RecordSingles")
	defer span.End()

	res, err := s.getResult(ctx, m.ResultID)
	if err != nil {
		return result.SinglesMatch{}, err
	}
	sides, err := s.sides(ctx, res)
	if err != nil {
		return result.SinglesMatch{}, err
	}
	people, err := s.participants(ctx, []int64{m.HomePlayerID, m.AwayPlayerID})
	if err != nil {
		return result.SinglesMatch{}, err
	}

	errs := validation.New()
	home, homeOK := people[m.HomePlayerID]
	away, awayOK := people[m.AwayPlayerID]
	if m.HomePlayerID != 0 && !homeOK {
		errs.Add("home_player", "Select a valid choice.")
	}
	if m.AwayPlayerID != 0 && !awayOK {
		errs.Add("away_player", "Select a valid choice.")
	}
	if errs.Empty() {
		errs.Merge(result.ValidateSingles(m, sides, home, away))
	}

	existing, err := s.resultRepo.ListSingles(ctx, m.ResultID)
	if err != nil {
		return result.SinglesMatch{}, fmt.Errorf("list singles: %w", err)
	}
	errs.Merge(result.ValidateNewSingles(m, existing))

	m = result.DeriveSingles(m)
	doubles, hasDoubles, err := s.resultRepo.GetDoubles(ctx, m.ResultID)
	if err != nil {
		return result.SinglesMatch{}, fmt.Errorf("get doubles: %w", err)
	}
	var doublesPtr *result.DoublesMatch
	if hasDoubles {
		doublesPtr = &doubles
	}
	errs.Merge(result.ValidateAgainstMatches(res, append(existing, m), doublesPtr))
	if err := invalid(errs); err != nil {
		return result.SinglesMatch{}, err
	}

	created, err := s.resultRepo.CreateSingles(ctx, m)
	if err != nil {
		return result.SinglesMatch{}, storeErr("create singles match", err)
	}
	return created, nil
}

func (s *ResultService) DeleteSingles(ctx context.Context, matchID int64) error {
	if err := s.resultRepo.DeleteSingles(ctx, matchID); err != nil {
		return fmt.Errorf("delete singles match: %w", err)
	}
	return nil
}

// RecordDoubles validates the two pairs with the score and replaces the
// doubles rubber of the result.
func (s *ResultService) RecordDoubles(ctx context.Context, m result.DoublesMatch) (result.DoublesMatch, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.RecordDoubles")
	defer span.End()

	res, err := s.getResult(ctx, m.ResultID)
	if err != nil {
		return result.DoublesMatch{}, err
	}
	sides, err := s.sides(ctx, res)
	if err != nil {
		return result.DoublesMatch{}, err
	}

	homeIDs := result.DistinctPlayers(m.HomePlayerIDs)
	awayIDs := result.DistinctPlayers(m.AwayPlayerIDs)
	people, err := s.participants(ctx, append(append([]int64(nil), homeIDs...), awayIDs...))
	if err != nil {
		return result.DoublesMatch{}, err
	}

	errs := validation.New()
	home := resolveParticipants(errs, "home_players", homeIDs, people)
	away := resolveParticipants(errs, "away_players", awayIDs, people)
	errs.Merge(result.ValidateDoubles(m, sides, home, away))

	if existing, ok, err := s.resultRepo.GetDoubles(ctx, m.ResultID); err != nil {
		return result.DoublesMatch{}, fmt.Errorf("get doubles: %w", err)
	} else if ok {
		m.ID = existing.ID
	}
	m = result.DeriveDoubles(m)
	singles, err := s.resultRepo.ListSingles(ctx, m.ResultID)
	if err != nil {
		return result.DoublesMatch{}, fmt.Errorf("list singles: %w", err)
	}
	errs.Merge(result.ValidateAgainstMatches(res, singles, &m))
	if err := invalid(errs); err != nil {
		return result.DoublesMatch{}, err
	}

	saved, err := s.resultRepo.SaveDoubles(ctx, m)
	if err != nil {
		return result.DoublesMatch{}, storeErr("save doubles match", err)
	}
	return saved, nil
}

func resolveParticipants(errs validation.Errors, field string, ids []int64, people map[int64]result.Participant) []result.Participant {
	out := make([]result.Participant, 0, len(ids))
	for _, id := range ids {
		p, ok := people[id]
		if !ok {
			errs.Add(field, fmt.Sprintf("Select a valid choice. %d is not one of the available choices.", id))
			continue
		}
		out = append(out, p)
	}
	return out
}

// MatchLine is one rubber of a result breakdown with player names.
type MatchLine struct {
	Kind      string        `json:"kind"`
	HomeNames []string      `json:"homeNames"`
	AwayNames []string      `json:"awayNames"`
	HomeSets  int           `json:"homeSets"`
	AwaySets  int           `json:"awaySets"`
	Winner    result.Winner `json:"winner"`
	Games     []result.Game `json:"games"`
}

// PlayerWins is a registration's singles win count in one fixture.
type PlayerWins struct {
	MemberID int64  `json:"memberId"`
	Name     string `json:"name"`
	Wins     int    `json:"wins"`
}

type ResultBreakdown struct {
	Fixture  fixture.Fixture
	HomeTeam team.Team
	AwayTeam team.Team
	Result   result.FixtureResult
	Matches  []MatchLine
	HomeWins []PlayerWins
	AwayWins []PlayerWins
	// Counts keep the raw win maps; players without a win are absent.
	Counts result.Breakdown
}

func (s *ResultService) Breakdown(ctx context.Context, fixtureID int64) (ResultBreakdown, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.Breakdown", attribute.Int64("fixture.id", fixtureID))
	defer span.End()

	f, exists, err := s.fixtureRepo.GetByID(ctx, fixtureID)
	if err != nil {
		return ResultBreakdown{}, fmt.Errorf("get fixture: %w", err)
	}
	if !exists {
		return ResultBreakdown{}, fmt.Errorf("%w: fixture=%d", ErrNotFound, fixtureID)
	}
	r, exists, err := s.resultRepo.GetByFixture(ctx, fixtureID)
	if err != nil {
		return ResultBreakdown{}, fmt.Errorf("get result by fixture: %w", err)
	}
	if !exists {
		return ResultBreakdown{}, fmt.Errorf("%w: result for fixture=%d", ErrNotFound, fixtureID)
	}

	out := ResultBreakdown{Fixture: f, Result: r}
	teams, err := s.teamRepo.GetByIDs(ctx, []int64{f.HomeTeamID, f.AwayTeamID})
	if err != nil {
		return ResultBreakdown{}, fmt.Errorf("get fixture teams: %w", err)
	}
	for _, t := range teams {
		if t.ID == f.HomeTeamID {
			out.HomeTeam = t
		}
		if t.ID == f.AwayTeamID {
			out.AwayTeam = t
		}
	}

	singles, doubles, err := s.matches(ctx, r.ID)
	if err != nil {
		return ResultBreakdown{}, err
	}
	var ids []int64
	for _, m := range singles {
		ids = append(ids, m.HomePlayerID, m.AwayPlayerID)
	}
	if doubles != nil {
		ids = append(ids, doubles.HomePlayerIDs...)
		ids = append(ids, doubles.AwayPlayerIDs...)
	}
	people, err := s.participants(ctx, result.DistinctPlayers(ids))
	if err != nil {
		return ResultBreakdown{}, err
	}
	names := func(ids ...int64) []string {
		out := make([]string, 0, len(ids))
		for _, id := range ids {
			out = append(out, people[id].Name)
		}
		return out
	}

	for _, m := range singles {
		out.Matches = append(out.Matches, MatchLine{
			Kind:      "singles",
			HomeNames: names(m.HomePlayerID),
			AwayNames: names(m.AwayPlayerID),
			HomeSets:  m.HomeSets,
			AwaySets:  m.AwaySets,
			Winner:    result.DeriveWinner(m.HomeSets, m.AwaySets),
			Games:     m.Games,
		})
	}
	if doubles != nil {
		out.Matches = append(out.Matches, MatchLine{
			Kind:      "doubles",
			HomeNames: names(doubles.HomePlayerIDs...),
			AwayNames: names(doubles.AwayPlayerIDs...),
			HomeSets:  doubles.HomeSets,
			AwaySets:  doubles.AwaySets,
			Winner:    result.DeriveWinner(doubles.HomeSets, doubles.AwaySets),
			Games:     doubles.Games,
		})
	}

	out.Counts = result.BreakdownOf(singles)
	out.HomeWins = winLines(out.Counts.HomeWins, people)
	out.AwayWins = winLines(out.Counts.AwayWins, people)
	return out, nil
}

func winLines(wins map[int64]int, people map[int64]result.Participant) []PlayerWins {
	out := make([]PlayerWins, 0, len(wins))
	for id, n := range wins {
		out = append(out, PlayerWins{MemberID: id, Name: people[id].Name, Wins: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ResultRow is a fixture with its teams and recorded result.
type ResultRow struct {
	Fixture  fixture.Fixture
	HomeTeam team.Team
	AwayTeam team.Team
	Result   result.FixtureResult
}

type ResultListing struct {
	Season  *league.Season
	Results []ResultRow
}

// ListResults returns recorded results for the query, newest first.
func (s *ResultService) ListResults(ctx context.Context, q FixtureQuery) (ResultListing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.ListResults")
	defer span.End()

	season, ok, err := resolveSeason(ctx, s.leagueRepo, q.SeasonSlug)
	if err != nil {
		return ResultListing{}, err
	}
	if !ok {
		return ResultListing{}, nil
	}

	fixtures, err := s.fixtureRepo.List(ctx, fixture.Filter{SeasonID: season.ID, DivisionID: q.DivisionID, ClubID: q.ClubID})
	if err != nil {
		return ResultListing{}, fmt.Errorf("list fixtures: %w", err)
	}
	rows, err := s.resultRows(ctx, season.ID, fixtures)
	if err != nil {
		return ResultListing{}, err
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Fixture.Datetime.After(rows[j].Fixture.Datetime)
	})
	return ResultListing{Season: &season, Results: rows}, nil
}

func (s *ResultService) resultRows(ctx context.Context, seasonID int64, fixtures []fixture.Fixture) ([]ResultRow, error) {
	ids := make([]int64, 0, len(fixtures))
	for _, f := range fixtures {
		ids = append(ids, f.ID)
	}
	results, err := s.resultRepo.ListByFixtures(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	byFixture := make(map[int64]result.FixtureResult, len(results))
	for _, r := range results {
		byFixture[r.FixtureID] = r
	}
	teams, err := s.teamRepo.List(ctx, team.Filter{SeasonID: seasonID})
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	teamByID := make(map[int64]team.Team, len(teams))
	for _, t := range teams {
		teamByID[t.ID] = t
	}

	rows := make([]ResultRow, 0, len(results))
	for _, f := range fixtures {
		r, ok := byFixture[f.ID]
		if !ok {
			continue
		}
		rows = append(rows, ResultRow{
			Fixture:  f,
			HomeTeam: teamByID[f.HomeTeamID],
			AwayTeam: teamByID[f.AwayTeamID],
			Result:   r,
		})
	}
	return rows, nil
}

// DivisionTable is the league table of one division.
type DivisionTable struct {
	Division  league.Division
	Standings []result.Standing
}

// Tables builds a table per division of the selected season, ordered by
// division rank.
func (s *ResultService) Tables(ctx context.Context, seasonSlug string) (*league.Season, []DivisionTable, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.Tables", attribute.String("season.slug", seasonSlug))
	defer span.End()

	season, ok, err := resolveSeason(ctx, s.leagueRepo, seasonSlug)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, nil
	}

	divisions, err := s.leagueRepo.ListDivisions(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list divisions: %w", err)
	}
	sort.SliceStable(divisions, func(i, j int) bool { return divisions[i].Rank < divisions[j].Rank })

	fixtures, err := s.fixtureRepo.List(ctx, fixture.Filter{SeasonID: season.ID})
	if err != nil {
		return nil, nil, fmt.Errorf("list fixtures: %w", err)
	}
	ids := make([]int64, 0, len(fixtures))
	for _, f := range fixtures {
		ids = append(ids, f.ID)
	}
	results, err := s.resultRepo.ListByFixtures(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("list results: %w", err)
	}

	var tables []DivisionTable
	for _, d := range divisions {
		if !season.HasDivision(d.ID) {
			continue
		}
		teams, err := s.teamRepo.List(ctx, team.Filter{SeasonID: season.ID, DivisionID: d.ID})
		if err != nil {
			return nil, nil, fmt.Errorf("list division teams: %w", err)
		}
		tables = append(tables, DivisionTable{
			Division:  d,
			Standings: result.Standings(teams, fixtures, results),
		})
	}
	return &season, tables, nil
}

// TeamSummary is everything the team page shows.
type TeamSummary struct {
	Team      team.Team
	Season    league.Season
	Division  league.Division
	Club      club.Club
	HomeVenue venue.Venue
	Roster    []player.Player
	Fixtures  []fixture.Fixture
	Results   []ResultRow
}

func (s *ResultService) TeamSummary(ctx context.Context, teamID int64) (TeamSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.TeamSummary")
	defer span.End()

	t, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return TeamSummary{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return TeamSummary{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}
	out := TeamSummary{Team: t}

	if out.Season, _, err = s.leagueRepo.GetSeason(ctx, t.SeasonID); err != nil {
		return TeamSummary{}, fmt.Errorf("get season: %w", err)
	}
	if out.Division, _, err = s.leagueRepo.GetDivision(ctx, t.DivisionID); err != nil {
		return TeamSummary{}, fmt.Errorf("get division: %w", err)
	}
	if out.Club, _, err = s.clubRepo.GetClub(ctx, t.ClubID); err != nil {
		return TeamSummary{}, fmt.Errorf("get club: %w", err)
	}
	if out.HomeVenue, _, err = s.venueRepo.GetVenue(ctx, t.HomeVenueID); err != nil {
		return TeamSummary{}, fmt.Errorf("get venue: %w", err)
	}

	members, err := s.teamRepo.ListMembers(ctx, t.ID)
	if err != nil {
		return TeamSummary{}, fmt.Errorf("list team members: %w", err)
	}
	playerIDs := make([]int64, 0, len(members))
	for _, m := range members {
		playerIDs = append(playerIDs, m.PlayerID)
	}
	if out.Roster, err = s.playerRepo.GetByIDs(ctx, playerIDs); err != nil {
		return TeamSummary{}, fmt.Errorf("get players by ids: %w", err)
	}
	player.Sort(out.Roster)

	if out.Fixtures, err = s.fixtureRepo.List(ctx, fixture.Filter{SeasonID: t.SeasonID, TeamID: t.ID}); err != nil {
		return TeamSummary{}, fmt.Errorf("list team fixtures: %w", err)
	}
	if out.Results, err = s.resultRows(ctx, t.SeasonID, out.Fixtures); err != nil {
		return TeamSummary{}, err
	}
	return out, nil
}
