package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/tt-league/internal/domain/league"
	basecache "github.com/riskibarqy/tt-league/internal/platform/cache"
)

const (
	divisionPrefix = "division:"
	seasonPrefix   = "season:"
	weekPrefix     = "week:"
)

// LeagueRepository serves divisions, seasons and weeks from a TTL cache.
// Every write drops the cached keys of the entity it touches.
type LeagueRepository struct {
	next  league.Repository
	cache *basecache.Store
}

func NewLeagueRepository(next league.Repository, cache *basecache.Store) *LeagueRepository {
	return &LeagueRepository{next: next, cache: cache}
}

func (r *LeagueRepository) ListDivisions(ctx context.Context) ([]league.Division, error) {
	v, err := r.cache.GetOrLoad(ctx, divisionPrefix+"list", func(ctx context.Context) (any, error) {
		items, err := r.next.ListDivisions(ctx)
		if err != nil {
			return nil, err
		}
		return append([]league.Division(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]league.Division)
	return append([]league.Division(nil), items...), nil
}

func (r *LeagueRepository) GetDivision(ctx context.Context, divisionID int64) (league.Division, bool, error) {
	key := divisionPrefix + "id:" + strconv.FormatInt(divisionID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetDivision(ctx, divisionID)
		if err != nil {
			return nil, err
		}
		return cachedDivision{value: item, exists: exists}, nil
	})
	if err != nil {
		return league.Division{}, false, err
	}

	cached, _ := v.(cachedDivision)
	return cached.value, cached.exists, nil
}

type cachedDivision struct {
	value  league.Division
	exists bool
}

func (r *LeagueRepository) CreateDivision(ctx context.Context, d league.Division) (league.Division, error) {
	defer r.cache.DeletePrefix(ctx, divisionPrefix)
	return r.next.CreateDivision(ctx, d)
}

func (r *LeagueRepository) UpdateDivision(ctx context.Context, d league.Division) error {
	defer r.cache.DeletePrefix(ctx, divisionPrefix)
	return r.next.UpdateDivision(ctx, d)
}

func (r *LeagueRepository) DeleteDivision(ctx context.Context, divisionID int64) error {
	defer r.cache.DeletePrefix(ctx, divisionPrefix)
	return r.next.DeleteDivision(ctx, divisionID)
}

// CountSeasonsForDivision guards deletes and always reads through.
func (r *LeagueRepository) CountSeasonsForDivision(ctx context.Context, divisionID int64) (int, error) {
	return r.next.CountSeasonsForDivision(ctx, divisionID)
}

func (r *LeagueRepository) ListSeasons(ctx context.Context) ([]league.Season, error) {
	v, err := r.cache.GetOrLoad(ctx, seasonPrefix+"list", func(ctx context.Context) (any, error) {
		items, err := r.next.ListSeasons(ctx)
		if err != nil {
			return nil, err
		}
		return cloneSeasons(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]league.Season)
	return cloneSeasons(items), nil
}

func (r *LeagueRepository) GetSeason(ctx context.Context, seasonID int64) (league.Season, bool, error) {
	return r.season(ctx, seasonPrefix+"id:"+strconv.FormatInt(seasonID, 10), func(ctx context.Context) (league.Season, bool, error) {
		return r.next.GetSeason(ctx, seasonID)
	})
}

func (r *LeagueRepository) GetSeasonBySlug(ctx context.Context, slug string) (league.Season, bool, error) {
	return r.season(ctx, seasonPrefix+"slug:"+slug, func(ctx context.Context) (league.Season, bool, error) {
		return r.next.GetSeasonBySlug(ctx, slug)
	})
}

func (r *LeagueRepository) GetCurrentSeason(ctx context.Context) (league.Season, bool, error) {
	return r.season(ctx, seasonPrefix+"current", r.next.GetCurrentSeason)
}

func (r *LeagueRepository) season(
	ctx context.Context,
	key string,
	load func(context.Context) (league.Season, bool, error),
) (league.Season, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return cachedSeason{value: cloneSeason(item), exists: exists}, nil
	})
	if err != nil {
		return league.Season{}, false, err
	}

	cached, _ := v.(cachedSeason)
	return cloneSeason(cached.value), cached.exists, nil
}

type cachedSeason struct {
	value  league.Season
	exists bool
}

// Season writes can move the current flag, so the whole season space is
// dropped rather than the touched id.
func (r *LeagueRepository) CreateSeason(ctx context.Context, s league.Season) (league.Season, error) {
	defer r.cache.DeletePrefix(ctx, seasonPrefix)
	return r.next.CreateSeason(ctx, s)
}

func (r *LeagueRepository) UpdateSeason(ctx context.Context, s league.Season) error {
	defer r.cache.DeletePrefix(ctx, seasonPrefix)
	return r.next.UpdateSeason(ctx, s)
}

func (r *LeagueRepository) SetCurrentSeason(ctx context.Context, seasonID int64) error {
	defer r.cache.DeletePrefix(ctx, seasonPrefix)
	return r.next.SetCurrentSeason(ctx, seasonID)
}

func (r *LeagueRepository) ListWeeks(ctx context.Context, seasonID int64) ([]league.Week, error) {
	key := weekPrefix + "season:" + strconv.FormatInt(seasonID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListWeeks(ctx, seasonID)
		if err != nil {
			return nil, err
		}
		return append([]league.Week(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]league.Week)
	return append([]league.Week(nil), items...), nil
}

func (r *LeagueRepository) GetWeek(ctx context.Context, weekID int64) (league.Week, bool, error) {
	key := weekPrefix + "id:" + strconv.FormatInt(weekID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetWeek(ctx, weekID)
		if err != nil {
			return nil, err
		}
		return cachedWeek{value: item, exists: exists}, nil
	})
	if err != nil {
		return league.Week{}, false, err
	}

	cached, _ := v.(cachedWeek)
	return cached.value, cached.exists, nil
}

type cachedWeek struct {
	value  league.Week
	exists bool
}

func (r *LeagueRepository) CreateWeek(ctx context.Context, w league.Week) (league.Week, error) {
	defer r.cache.DeletePrefix(ctx, weekPrefix)
	return r.next.CreateWeek(ctx, w)
}

func cloneSeason(s league.Season) league.Season {
	s.DivisionIDs = append([]int64(nil), s.DivisionIDs...)
	return s
}

func cloneSeasons(items []league.Season) []league.Season {
	out := make([]league.Season, 0, len(items))
	for _, s := range items {
		out = append(out, cloneSeason(s))
	}
	return out
}
