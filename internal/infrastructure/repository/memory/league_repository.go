package memory

import (
	"context"
	"strings"

	"github.com/riskibarqy/tt-league/internal/domain/league"
	"github.com/riskibarqy/tt-league/internal/platform/dberr"
)

type LeagueRepository struct {
	s *Store
}

func NewLeagueRepository(s *Store) *LeagueRepository {
	return &LeagueRepository{s: s}
}

func (r *LeagueRepository) ListDivisions(_ context.Context) ([]league.Division, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return collect(r.s.divisions, nil, func(a, b league.Division) bool { return a.Rank < b.Rank }), nil
}

func (r *LeagueRepository) GetDivision(_ context.Context, divisionID int64) (league.Division, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.divisions[divisionID]
	return d, ok, nil
}

func (r *LeagueRepository) CreateDivision(_ context.Context, d league.Division) (league.Division, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.checkDivision(d); err != nil {
		return league.Division{}, err
	}
	d.ID = r.s.reserve(d.ID)
	r.s.divisions[d.ID] = d
	return d, nil
}

func (r *LeagueRepository) UpdateDivision(_ context.Context, d league.Division) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.divisions[d.ID]; !ok {
		return nil
	}
	if err := r.s.checkDivision(d); err != nil {
		return err
	}
	r.s.divisions[d.ID] = d
	return nil
}

func (s *Store) checkDivision(d league.Division) error {
	for _, other := range s.divisions {
		if other.ID == d.ID {
			continue
		}
		if strings.EqualFold(other.Name, d.Name) {
			return dberr.Unique("divisions_name_key")
		}
		if other.Rank == d.Rank {
			return dberr.Unique("divisions_rank_key")
		}
	}
	return nil
}

func (r *LeagueRepository) DeleteDivision(_ context.Context, divisionID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.countSeasonsFor(divisionID) > 0 {
		return dberr.ForeignKey("season_divisions_division_id_fkey")
	}
	for _, t := range r.s.teams {
		if t.DivisionID == divisionID {
			return dberr.ForeignKey("teams_division_id_fkey")
		}
	}
	delete(r.s.divisions, divisionID)
	return nil
}

func (r *LeagueRepository) CountSeasonsForDivision(_ context.Context, divisionID int64) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.countSeasonsFor(divisionID), nil
}

func (s *Store) countSeasonsFor(divisionID int64) int {
	count := 0
	for _, season := range s.seasons {
		if season.HasDivision(divisionID) {
			count++
		}
	}
	return count
}

func (r *LeagueRepository) ListSeasons(_ context.Context) ([]league.Season, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := collect(r.s.seasons, nil, func(a, b league.Season) bool { return a.StartDate.After(b.StartDate) })
	for i := range out {
		out[i] = cloneSeason(out[i])
	}
	return out, nil
}

func (r *LeagueRepository) GetSeason(_ context.Context, seasonID int64) (league.Season, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	s, ok := r.s.seasons[seasonID]
	return cloneSeason(s), ok, nil
}

func (r *LeagueRepository) GetSeasonBySlug(_ context.Context, slug string) (league.Season, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, s := range r.s.seasons {
		if s.Slug == slug {
			return cloneSeason(s), true, nil
		}
	}
	return league.Season{}, false, nil
}

func (r *LeagueRepository) GetCurrentSeason(_ context.Context) (league.Season, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, s := range r.s.seasons {
		if s.IsCurrent {
			return cloneSeason(s), true, nil
		}
	}
	return league.Season{}, false, nil
}

func (r *LeagueRepository) CreateSeason(_ context.Context, season league.Season) (league.Season, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.checkSeason(season); err != nil {
		return league.Season{}, err
	}
	season.ID = r.s.reserve(season.ID)
	r.s.putSeason(cloneSeason(season))
	return cloneSeason(season), nil
}

func (r *LeagueRepository) UpdateSeason(_ context.Context, season league.Season) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.seasons[season.ID]; !ok {
		return nil
	}
	if err := r.s.checkSeason(season); err != nil {
		return err
	}
	for _, t := range r.s.teams {
		if t.SeasonID == season.ID && !season.HasDivision(t.DivisionID) {
			return dberr.ForeignKey("teams_season_division_fkey")
		}
	}
	r.s.putSeason(cloneSeason(season))
	return nil
}

func (r *LeagueRepository) SetCurrentSeason(_ context.Context, seasonID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	season, ok := r.s.seasons[seasonID]
	if !ok {
		return nil
	}
	season.IsCurrent = true
	r.s.putSeason(season)
	return nil
}

// putSeason keeps at most one current season.
func (s *Store) putSeason(season league.Season) {
	if season.IsCurrent {
		for id, other := range s.seasons {
			if id != season.ID && other.IsCurrent {
				other.IsCurrent = false
				s.seasons[id] = other
			}
		}
	}
	s.seasons[season.ID] = season
}

func (s *Store) checkSeason(season league.Season) error {
	for _, id := range season.DivisionIDs {
		if _, ok := s.divisions[id]; !ok {
			return dberr.ForeignKey("season_divisions_division_id_fkey")
		}
	}
	for _, other := range s.seasons {
		if other.ID == season.ID {
			continue
		}
		switch {
		case other.Name == season.Name:
			return dberr.Unique("seasons_name_key")
		case other.ShortName == season.ShortName:
			return dberr.Unique("seasons_short_name_key")
		case other.Slug == season.Slug:
			return dberr.Unique("seasons_slug_key")
		}
	}
	return nil
}

func (r *LeagueRepository) ListWeeks(_ context.Context, seasonID int64) ([]league.Week, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return collect(r.s.weeks,
		func(w league.Week) bool { return w.SeasonID == seasonID },
		func(a, b league.Week) bool { return a.StartDate.Before(b.StartDate) },
	), nil
}

func (r *LeagueRepository) GetWeek(_ context.Context, weekID int64) (league.Week, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	w, ok := r.s.weeks[weekID]
	return w, ok, nil
}

func (r *LeagueRepository) CreateWeek(_ context.Context, w league.Week) (league.Week, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.seasons[w.SeasonID]; !ok {
		return league.Week{}, dberr.ForeignKey("weeks_season_id_fkey")
	}
	for _, other := range r.s.weeks {
		if other.SeasonID == w.SeasonID && other.Name == w.Name {
			return league.Week{}, dberr.Unique("weeks_season_id_name_key")
		}
	}
	w.ID = r.s.reserve(w.ID)
	r.s.weeks[w.ID] = w
	return w, nil
}
