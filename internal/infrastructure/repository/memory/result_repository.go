package memory

import (
	"context"

	"github.com/riskibarqy/tt-league/internal/domain/fixture"
	"github.com/riskibarqy/tt-league/internal/domain/result"
	"github.com/riskibarqy/tt-league/internal/platform/dberr"
)

type ResultRepository struct {
	s *Store
}

func NewResultRepository(s *Store) *ResultRepository {
	return &ResultRepository{s: s}
}

func (r *ResultRepository) GetByID(_ context.Context, resultID int64) (result.FixtureResult, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res, ok := r.s.results[resultID]
	return res, ok, nil
}

func (r *ResultRepository) GetByFixture(_ context.Context, fixtureID int64) (result.FixtureResult, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, res := range r.s.results {
		if res.FixtureID == fixtureID {
			return res, true, nil
		}
	}
	return result.FixtureResult{}, false, nil
}

func (r *ResultRepository) ListByFixtures(_ context.Context, fixtureIDs []int64) ([]result.FixtureResult, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	wanted := idSet(fixtureIDs)
	return collect(r.s.results, func(res result.FixtureResult) bool {
		_, ok := wanted[res.FixtureID]
		return ok
	}, func(a, b result.FixtureResult) bool { return a.ID < b.ID }), nil
}

// Create stores the result and marks its fixture completed.
func (r *ResultRepository) Create(_ context.Context, res result.FixtureResult) (result.FixtureResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	f, ok := r.s.fixtures[res.FixtureID]
	if !ok {
		return result.FixtureResult{}, dberr.ForeignKey("fixture_results_fixture_id_fkey")
	}
	for _, other := range r.s.results {
		if other.FixtureID == res.FixtureID {
			return result.FixtureResult{}, dberr.Unique("fixture_results_fixture_id_key")
		}
	}
	res.ID = r.s.reserve(res.ID)
	r.s.results[res.ID] = res
	f.Status = fixture.StatusCompleted
	r.s.fixtures[f.ID] = f
	return res, nil
}

func (r *ResultRepository) Update(_ context.Context, res result.FixtureResult) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.results[res.ID]
	if !ok {
		return nil
	}
	res.FixtureID = existing.FixtureID
	res.CreatedOn = existing.CreatedOn
	r.s.results[res.ID] = res
	return nil
}

func (r *ResultRepository) Delete(_ context.Context, resultID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.deleteResult(resultID)
	return nil
}

func (s *Store) deleteResult(resultID int64) {
	for id, m := range s.singles {
		if m.ResultID == resultID {
			delete(s.singles, id)
		}
	}
	for id, m := range s.doubles {
		if m.ResultID == resultID {
			delete(s.doubles, id)
		}
	}
	delete(s.results, resultID)
}

func (r *ResultRepository) ListSingles(_ context.Context, resultID int64) ([]result.SinglesMatch, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := collect(r.s.singles,
		func(m result.SinglesMatch) bool { return m.ResultID == resultID },
		func(a, b result.SinglesMatch) bool { return a.ID < b.ID },
	)
	for i := range out {
		out[i] = cloneSingles(out[i])
	}
	return out, nil
}

func (r *ResultRepository) CreateSingles(_ context.Context, m result.SinglesMatch) (result.SinglesMatch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.results[m.ResultID]; !ok {
		return result.SinglesMatch{}, dberr.ForeignKey("singles_matches_result_id_fkey")
	}
	if err := r.s.checkMembers(m.HomePlayerID, m.AwayPlayerID); err != nil {
		return result.SinglesMatch{}, err
	}
	for _, other := range r.s.singles {
		if other.ResultID == m.ResultID && other.HomePlayerID == m.HomePlayerID && other.AwayPlayerID == m.AwayPlayerID {
			return result.SinglesMatch{}, dberr.Unique("singles_matches_result_id_home_player_id_away_player_id_key")
		}
	}

	m = cloneSingles(m)
	m.ID = r.s.reserve(m.ID)
	r.s.numberGames(m.ID, m.Games)
	r.s.singles[m.ID] = m
	return cloneSingles(m), nil
}

func (r *ResultRepository) DeleteSingles(_ context.Context, matchID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.singles, matchID)
	return nil
}

func (r *ResultRepository) GetDoubles(_ context.Context, resultID int64) (result.DoublesMatch, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, m := range r.s.doubles {
		if m.ResultID == resultID {
			return cloneDoubles(m), true, nil
		}
	}
	return result.DoublesMatch{}, false, nil
}

// SaveDoubles inserts or replaces the doubles rubber of a result together
// with its players and games.
func (r *ResultRepository) SaveDoubles(_ context.Context, m result.DoublesMatch) (result.DoublesMatch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.results[m.ResultID]; !ok {
		return result.DoublesMatch{}, dberr.ForeignKey("doubles_matches_result_id_fkey")
	}
	if err := r.s.checkMembers(append(append([]int64(nil), m.HomePlayerIDs...), m.AwayPlayerIDs...)...); err != nil {
		return result.DoublesMatch{}, err
	}
	for id, other := range r.s.doubles {
		if other.ResultID == m.ResultID && id != m.ID {
			return result.DoublesMatch{}, dberr.Unique("doubles_matches_result_id_key")
		}
	}

	m = cloneDoubles(m)
	m.ID = r.s.reserve(m.ID)
	r.s.numberGames(m.ID, m.Games)
	r.s.doubles[m.ID] = m
	return cloneDoubles(m), nil
}

func (r *ResultRepository) DeleteDoubles(_ context.Context, matchID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.doubles, matchID)
	return nil
}

func (s *Store) checkMembers(ids ...int64) error {
	for _, id := range ids {
		if _, ok := s.members[id]; !ok {
			return dberr.ForeignKey("matches_team_player_id_fkey")
		}
	}
	return nil
}

func (s *Store) numberGames(matchID int64, games []result.Game) {
	for i := range games {
		games[i].MatchID = matchID
		if games[i].ID == 0 {
			games[i].ID = s.nextID()
		}
	}
}
