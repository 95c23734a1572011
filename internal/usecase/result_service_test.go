package usecase

import (
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/tt-league/internal/domain/fixture"
	"github.com/riskibarqy/tt-league/internal/domain/result"
	"github.com/riskibarqy/tt-league/internal/domain/validation"
)

func newResultService(t *testing.T) (*ResultService, memoryRepos) {
	t.Helper()

	repos := newMemoryRepos(t)
	service := NewResultService(
		repos.league,
		repos.club,
		repos.venue,
		repos.player,
		repos.team,
		repos.fixture,
		repos.result,
		nopLogger(),
	)
	return service, repos
}

func threeOne() []result.Game {
	return []result.Game{
		{SetNum: 2, HomePoints: 9, AwayPoints: 11},
		{SetNum: 1, HomePoints: 11, AwayPoints: 5},
		{SetNum: 3, HomePoints: 11, AwayPoints: 7},
		{SetNum: 4, HomePoints: 12, AwayPoints: 10},
	}
}

func resultFor(fixtureID int64) result.FixtureResult {
	return result.FixtureResult{FixtureID: fixtureID, HomeScore: 6, AwayScore: 4}
}

func singlesFor(resultID, home, away int64) result.SinglesMatch {
	return result.SinglesMatch{ResultID: resultID, HomePlayerID: home, AwayPlayerID: away, HomeSets: 3, AwaySets: 1}
}

func TestResultService_RecordResult(t *testing.T) {
	service, repos := newResultService(t)
	ctx := t.Context()

	if _, err := service.RecordResult(ctx, result.FixtureResult{FixtureID: 999, HomeScore: 5, AwayScore: 5}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	_, err := service.RecordResult(ctx, result.FixtureResult{FixtureID: 70, HomeScore: 6, AwayScore: 3})
	verrs, ok := validation.From(err)
	if !ok || !verrs.Has(validation.ObjectKey) {
		t.Fatalf("expected score sum error, got %v", err)
	}

	created, err := service.RecordResult(ctx, result.FixtureResult{FixtureID: 70, HomeScore: 5, AwayScore: 5})
	if err != nil {
		t.Fatalf("record result: %v", err)
	}
	if created.Winner != result.WinnerDraw || created.Status != result.StatusPlayed {
		t.Fatalf("expected played draw, got %+v", created)
	}
	f, _, _ := repos.fixture.GetByID(ctx, 70)
	if f.Status != fixture.StatusCompleted {
		t.Fatalf("expected fixture completed, got %q", f.Status)
	}

	if _, err := service.RecordResult(ctx, result.FixtureResult{FixtureID: 70, HomeScore: 4, AwayScore: 6}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected second result rejected, got %v", err)
	}

	created.HomeScore, created.AwayScore = 7, 3
	updated, err := service.RecordResult(ctx, created)
	if err != nil {
		t.Fatalf("update result: %v", err)
	}
	if updated.Winner != result.WinnerHome {
		t.Fatalf("expected home win after update, got %q", updated.Winner)
	}
}

func TestResultService_RecordSingles(t *testing.T) {
	service, repos := newResultService(t)
	ctx := t.Context()

	res, err := service.RecordResult(ctx, result.FixtureResult{FixtureID: 70, HomeScore: 6, AwayScore: 4})
	if err != nil {
		t.Fatalf("record result: %v", err)
	}
	home := repos.memberIDs(t, 60)
	away := repos.memberIDs(t, 61)

	m, err := service.RecordSingles(ctx, result.SinglesMatch{
		ResultID:     res.ID,
		HomePlayerID: home[50],
		AwayPlayerID: away[51],
		HomeSets:     3,
		AwaySets:     1,
		Games:        threeOne(),
	})
	if err != nil {
		t.Fatalf("record singles: %v", err)
	}
	if m.Winner != result.WinnerHome || m.Games[0].SetNum != 1 || m.Games[1].Winner != result.WinnerAway {
		t.Fatalf("expected derived winners and ordered games, got %+v", m)
	}

	_, err = service.RecordSingles(ctx, result.SinglesMatch{
		ResultID:     res.ID,
		HomePlayerID: home[50],
		AwayPlayerID: away[51],
		HomeSets:     3,
		AwaySets:     0,
	})
	verrs, ok := validation.From(err)
	if !ok || !verrs.Has(validation.ObjectKey) {
		t.Fatalf("expected repeated pairing rejected, got %v", err)
	}

	_, err = service.RecordSingles(ctx, result.SinglesMatch{
		ResultID:     res.ID,
		HomePlayerID: home[52],
		AwayPlayerID: home[50],
		HomeSets:     3,
		AwaySets:     0,
	})
	verrs, ok = validation.From(err)
	if !ok || !verrs.Has("away_player") {
		t.Fatalf("expected away club error, got %v", err)
	}
	if !strings.Contains(strings.Join(verrs["away_player"], " "), "Alice Smith does not belong to the away team's club.") {
		t.Fatalf("unexpected away player errors: %v", verrs["away_player"])
	}

	_, err = service.RecordSingles(ctx, result.SinglesMatch{
		ResultID:     res.ID,
		HomePlayerID: home[52],
		AwayPlayerID: away[53],
		HomeSets:     2,
		AwaySets:     2,
	})
	verrs, ok = validation.From(err)
	if !ok || !verrs.Has("home_sets") {
		t.Fatalf("expected drawn match rejected, got %v", err)
	}
}

func TestResultService_RecordDoubles(t *testing.T) {
	service, repos := newResultService(t)
	ctx := t.Context()

	res, err := service.RecordResult(ctx, result.FixtureResult{FixtureID: 70, HomeScore: 6, AwayScore: 4})
	if err != nil {
		t.Fatalf("record result: %v", err)
	}
	home := repos.memberIDs(t, 60)
	away := repos.memberIDs(t, 61)

	_, err = service.RecordDoubles(ctx, result.DoublesMatch{
		ResultID:      res.ID,
		HomePlayerIDs: []int64{home[50], home[50]},
		AwayPlayerIDs: []int64{away[51], home[52]},
		HomeSets:      3,
		AwaySets:      0,
	})
	verrs, ok := validation.From(err)
	if !ok {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if got := verrs["home_players"]; len(got) != 1 || got[0] != "Exactly 2 home players must be selected." {
		t.Fatalf("unexpected home pair errors: %v", got)
	}
	if !strings.Contains(strings.Join(verrs[validation.ObjectKey], " "), "Carol White does not belong to the away team's club.") {
		t.Fatalf("expected away club error, got %v", verrs)
	}

	pair := result.DoublesMatch{
		ResultID:      res.ID,
		HomePlayerIDs: []int64{home[50], home[52]},
		AwayPlayerIDs: []int64{away[51], away[53]},
		HomeSets:      1,
		AwaySets:      3,
	}
	first, err := service.RecordDoubles(ctx, pair)
	if err != nil {
		t.Fatalf("record doubles: %v", err)
	}
	if first.Winner != result.WinnerAway {
		t.Fatalf("expected away win, got %q", first.Winner)
	}

	pair.HomeSets, pair.AwaySets = 3, 2
	second, err := service.RecordDoubles(ctx, pair)
	if err != nil {
		t.Fatalf("replace doubles: %v", err)
	}
	if second.ID != first.ID || second.Winner != result.WinnerHome {
		t.Fatalf("expected doubles replaced in place, got %+v", second)
	}
}

func TestResultService_BreakdownAndTables(t *testing.T) {
	service, repos := newResultService(t)
	ctx := t.Context()

	res, err := service.RecordResult(ctx, result.FixtureResult{FixtureID: 70, HomeScore: 6, AwayScore: 4})
	if err != nil {
		t.Fatalf("record result: %v", err)
	}
	home := repos.memberIDs(t, 60)
	away := repos.memberIDs(t, 61)
	if _, err := service.RecordSingles(ctx, result.SinglesMatch{
		ResultID: res.ID, HomePlayerID: home[50], AwayPlayerID: away[51], HomeSets: 3, AwaySets: 1,
	}); err != nil {
		t.Fatalf("record singles: %v", err)
	}
	if _, err := service.RecordDoubles(ctx, result.DoublesMatch{
		ResultID:      res.ID,
		HomePlayerIDs: []int64{home[50], home[52]},
		AwayPlayerIDs: []int64{away[51], away[53]},
		HomeSets:      0,
		AwaySets:      3,
	}); err != nil {
		t.Fatalf("record doubles: %v", err)
	}

	breakdown, err := service.Breakdown(ctx, 70)
	if err != nil {
		t.Fatalf("breakdown: %v", err)
	}
	if breakdown.HomeTeam.Name != "Riverside A" || breakdown.AwayTeam.Name != "Hillside A" {
		t.Fatalf("unexpected teams: %+v %+v", breakdown.HomeTeam, breakdown.AwayTeam)
	}
	if len(breakdown.Matches) != 2 || breakdown.Matches[1].Kind != "doubles" || len(breakdown.Matches[1].AwayNames) != 2 {
		t.Fatalf("unexpected match lines: %+v", breakdown.Matches)
	}
	if len(breakdown.HomeWins) != 1 || breakdown.HomeWins[0].Name != "Alice Smith" || breakdown.HomeWins[0].Wins != 1 {
		t.Fatalf("unexpected home wins: %+v", breakdown.HomeWins)
	}
	if len(breakdown.AwayWins) != 0 || breakdown.Counts.AwayWins[away[51]] != 0 {
		t.Fatalf("expected no away singles wins, got %+v", breakdown.AwayWins)
	}

	if _, err := service.Breakdown(ctx, 71); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected fixture without result to be not found, got %v", err)
	}

	season, tables, err := service.Tables(ctx, "")
	if err != nil {
		t.Fatalf("tables: %v", err)
	}
	if season == nil || season.ID != 10 || len(tables) != 2 {
		t.Fatalf("unexpected tables: season=%v tables=%+v", season, tables)
	}
	top := tables[0].Standings
	if len(top) != 2 || top[0].TeamName != "Riverside A" || top[0].Points != 6 || top[0].Won != 1 || top[1].Lost != 1 {
		t.Fatalf("unexpected division 1 standings: %+v", top)
	}
	if len(tables[1].Standings) != 0 {
		t.Fatalf("expected empty division 2 table, got %+v", tables[1].Standings)
	}

	listing, err := service.ListResults(ctx, FixtureQuery{ClubID: 31})
	if err != nil {
		t.Fatalf("list results: %v", err)
	}
	if len(listing.Results) != 1 || listing.Results[0].Result.ID != res.ID {
		t.Fatalf("unexpected results: %+v", listing.Results)
	}

	summary, err := service.TeamSummary(ctx, 60)
	if err != nil {
		t.Fatalf("team summary: %v", err)
	}
	if len(summary.Roster) != 2 || len(summary.Fixtures) != 2 || len(summary.Results) != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.Roster[0].Surname != "Smith" || summary.HomeVenue.ID != 40 || summary.Club.ID != 30 {
		t.Fatalf("unexpected summary details: %+v", summary)
	}
}

func TestResultService_DeleteResult(t *testing.T) {
	service, _ := newResultService(t)
	ctx := t.Context()

	if err := service.DeleteResult(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	res, err := service.RecordResult(ctx, result.FixtureResult{FixtureID: 71, Status: result.StatusForfeited, HomeScore: 10})
	if err != nil {
		t.Fatalf("record forfeit: %v", err)
	}
	if err := service.DeleteResult(ctx, res.ID); err != nil {
		t.Fatalf("delete result: %v", err)
	}
	if _, err := service.Breakdown(ctx, 71); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected result gone, got %v", err)
	}
}

func TestResultService_RecordResult_UpdateKeepsStoredFixture(t *testing.T) {
	service, repos := newResultService(t)
	ctx := t.Context()

	_, err := service.RecordResult(ctx, result.FixtureResult{ID: 999, FixtureID: 71, HomeScore: 6, AwayScore: 4})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown result, got %v", err)
	}
	if _, exists, _ := repos.result.GetByFixture(ctx, 71); exists {
		t.Fatal("unknown result update must not store anything")
	}

	created, err := service.RecordResult(ctx, resultFor(70))
	if err != nil {
		t.Fatalf("record result: %v", err)
	}
	moved := created
	moved.FixtureID = 71
	moved.HomeScore, moved.AwayScore = 4, 6

	updated, err := service.RecordResult(ctx, moved)
	if err != nil {
		t.Fatalf("update result: %v", err)
	}
	if updated.FixtureID != 70 || updated.Winner != result.WinnerAway {
		t.Fatalf("expected result to stay on fixture 70, got %+v", updated)
	}
	if _, exists, _ := repos.result.GetByFixture(ctx, 71); exists {
		t.Fatal("fixture 71 must still have no result")
	}
}

func TestResultService_CompletingRubbersChecksScore(t *testing.T) {
	repos := newMemoryReposFrom(t, fullTeamsSeed)
	service := NewResultService(repos.league, repos.club, repos.venue, repos.player, repos.team, repos.fixture, repos.result, nopLogger())
	ctx := t.Context()

	res, err := service.RecordResult(ctx, result.FixtureResult{FixtureID: 70, HomeScore: 7, AwayScore: 3})
	if err != nil {
		t.Fatalf("record result: %v", err)
	}
	home := repos.memberIDs(t, 60)
	away := repos.memberIDs(t, 61)

	pair := result.DoublesMatch{
		ResultID:      res.ID,
		HomePlayerIDs: []int64{home[50], home[52]},
		AwayPlayerIDs: []int64{away[51], away[53]},
		HomeSets:      3,
		AwaySets:      1,
	}
	if _, err := service.RecordDoubles(ctx, pair); err != nil {
		t.Fatalf("record doubles: %v", err)
	}

	// Eight singles: home wins five, away wins three.
	var pairings [][2]int64
	for _, h := range []int64{50, 52, 55} {
		for _, a := range []int64{51, 53, 56} {
			pairings = append(pairings, [2]int64{home[h], away[a]})
		}
	}
	for i, p := range pairings[:8] {
		m := singlesFor(res.ID, p[0], p[1])
		if i >= 5 {
			m.HomeSets, m.AwaySets = 1, 3
		}
		if _, err := service.RecordSingles(ctx, m); err != nil {
			t.Fatalf("record singles %d: %v", i, err)
		}
	}

	last := singlesFor(res.ID, pairings[8][0], pairings[8][1])
	last.HomeSets, last.AwaySets = 0, 3
	_, err = service.RecordSingles(ctx, last)
	verrs, ok := validation.From(err)
	if !ok || !strings.Contains(strings.Join(verrs[validation.ObjectKey], " "), "(6-4)") {
		t.Fatalf("expected roll-up mismatch on the tenth rubber, got %v", err)
	}
	if singles, _ := repos.result.ListSingles(ctx, res.ID); len(singles) != 8 {
		t.Fatalf("rejected rubber must not be stored, have %d singles", len(singles))
	}

	last.HomeSets, last.AwaySets = 3, 0
	if _, err := service.RecordSingles(ctx, last); err != nil {
		t.Fatalf("matching tenth rubber: %v", err)
	}

	pair.HomeSets, pair.AwaySets = 2, 3
	_, err = service.RecordDoubles(ctx, pair)
	verrs, ok = validation.From(err)
	if !ok || !strings.Contains(strings.Join(verrs[validation.ObjectKey], " "), "(6-4)") {
		t.Fatalf("expected doubles change rejected against the score, got %v", err)
	}
	if d, _, _ := repos.result.GetDoubles(ctx, res.ID); d.Winner != result.WinnerHome {
		t.Fatalf("stored doubles must be unchanged, got %+v", d)
	}
}
