package memory

import (
	"context"

	"github.com/riskibarqy/tt-league/internal/domain/fixture"
	"github.com/riskibarqy/tt-league/internal/platform/dberr"
)

type FixtureRepository struct {
	s *Store
}

func NewFixtureRepository(s *Store) *FixtureRepository {
	return &FixtureRepository{s: s}
}

func byKickoff(a, b fixture.Fixture) bool {
	if !a.Datetime.Equal(b.Datetime) {
		return a.Datetime.Before(b.Datetime)
	}
	return a.ID < b.ID
}

func (r *FixtureRepository) List(_ context.Context, filter fixture.Filter) ([]fixture.Fixture, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return collect(r.s.fixtures, func(f fixture.Fixture) bool {
		if filter.SeasonID != 0 && f.SeasonID != filter.SeasonID {
			return false
		}
		if filter.DivisionID != 0 && f.DivisionID != filter.DivisionID {
			return false
		}
		if filter.TeamID != 0 && f.HomeTeamID != filter.TeamID && f.AwayTeamID != filter.TeamID {
			return false
		}
		if filter.ClubID != 0 &&
			r.s.teams[f.HomeTeamID].ClubID != filter.ClubID &&
			r.s.teams[f.AwayTeamID].ClubID != filter.ClubID {
			return false
		}
		return true
	}, byKickoff), nil
}

func (r *FixtureRepository) GetByID(_ context.Context, fixtureID int64) (fixture.Fixture, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	f, ok := r.s.fixtures[fixtureID]
	return f, ok, nil
}

func (r *FixtureRepository) Create(_ context.Context, f fixture.Fixture) (fixture.Fixture, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.checkFixture(f); err != nil {
		return fixture.Fixture{}, err
	}
	f.ID = r.s.reserve(f.ID)
	r.s.fixtures[f.ID] = f
	return f, nil
}

func (r *FixtureRepository) Update(_ context.Context, f fixture.Fixture) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.fixtures[f.ID]; !ok {
		return nil
	}
	if err := r.s.checkFixture(f); err != nil {
		return err
	}
	r.s.fixtures[f.ID] = f
	return nil
}

func (s *Store) checkFixture(f fixture.Fixture) error {
	if _, ok := s.seasons[f.SeasonID]; !ok {
		return dberr.ForeignKey("fixtures_season_id_fkey")
	}
	if _, ok := s.divisions[f.DivisionID]; !ok {
		return dberr.ForeignKey("fixtures_division_id_fkey")
	}
	if _, ok := s.weeks[f.WeekID]; !ok {
		return dberr.ForeignKey("fixtures_week_id_fkey")
	}
	if _, ok := s.teams[f.HomeTeamID]; !ok {
		return dberr.ForeignKey("fixtures_home_team_id_fkey")
	}
	if _, ok := s.teams[f.AwayTeamID]; !ok {
		return dberr.ForeignKey("fixtures_away_team_id_fkey")
	}
	if f.VenueID != nil {
		if _, ok := s.venues[*f.VenueID]; !ok {
			return dberr.ForeignKey("fixtures_venue_id_fkey")
		}
	}
	for _, other := range s.fixtures {
		if other.ID != f.ID &&
			other.SeasonID == f.SeasonID &&
			other.HomeTeamID == f.HomeTeamID &&
			other.AwayTeamID == f.AwayTeamID {
			return dberr.Unique("fixtures_season_id_home_team_id_away_team_id_key")
		}
	}
	return nil
}

// Delete cascades to the fixture's result tree.
func (r *FixtureRepository) Delete(_ context.Context, fixtureID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, res := range r.s.results {
		if res.FixtureID == fixtureID {
			r.s.deleteResult(id)
		}
	}
	delete(r.s.fixtures, fixtureID)
	return nil
}
