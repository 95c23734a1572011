package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/tt-league/internal/domain/league"
	leaguemock "github.com/riskibarqy/tt-league/internal/mocks/domain/league"
	basecache "github.com/riskibarqy/tt-league/internal/platform/cache"
	"github.com/stretchr/testify/mock"
)

func TestLeagueRepository_ListDivisionsIsCachedUntilWrite(t *testing.T) {
	ctx := context.Background()
	next := leaguemock.NewRepository(t)
	repo := NewLeagueRepository(next, basecache.NewStore(time.Minute))

	next.On("ListDivisions", mock.Anything).Return([]league.Division{{ID: 1, Name: "Division 1", Rank: 1}}, nil).Once()
	for i := 0; i < 3; i++ {
		items, err := repo.ListDivisions(ctx)
		if err != nil {
			t.Fatalf("list divisions: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("unexpected divisions: %+v", items)
		}
		items[0].Name = "mutated"
	}

	next.On("CreateDivision", mock.Anything, league.Division{Name: "Division 2", Rank: 2}).Return(league.Division{ID: 2, Name: "Division 2", Rank: 2}, nil).Once()
	if _, err := repo.CreateDivision(ctx, league.Division{Name: "Division 2", Rank: 2}); err != nil {
		t.Fatalf("create division: %v", err)
	}

	next.On("ListDivisions", mock.Anything).Return([]league.Division{{ID: 1, Rank: 1}, {ID: 2, Rank: 2}}, nil).Once()
	items, err := repo.ListDivisions(ctx)
	if err != nil {
		t.Fatalf("list divisions: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected reload after write, got %+v", items)
	}
}

func TestLeagueRepository_SetCurrentSeasonDropsSeasonKeys(t *testing.T) {
	ctx := context.Background()
	next := leaguemock.NewRepository(t)
	repo := NewLeagueRepository(next, basecache.NewStore(time.Minute))

	next.On("GetCurrentSeason", mock.Anything).Return(league.Season{ID: 1, DivisionIDs: []int64{1}}, true, nil).Once()
	next.On("GetSeasonBySlug", mock.Anything, "missing").Return(league.Season{}, false, nil).Once()

	first, ok, err := repo.GetCurrentSeason(ctx)
	if err != nil || !ok || first.ID != 1 {
		t.Fatalf("get current season: %+v ok=%v err=%v", first, ok, err)
	}
	first.DivisionIDs[0] = 99
	again, _, _ := repo.GetCurrentSeason(ctx)
	if again.DivisionIDs[0] != 1 {
		t.Fatalf("expected cached season isolated from callers, got %+v", again)
	}

	for i := 0; i < 2; i++ {
		if _, ok, err := repo.GetSeasonBySlug(ctx, "missing"); err != nil || ok {
			t.Fatalf("expected cached miss, ok=%v err=%v", ok, err)
		}
	}

	next.On("SetCurrentSeason", mock.Anything, int64(2)).Return(nil).Once()
	if err := repo.SetCurrentSeason(ctx, 2); err != nil {
		t.Fatalf("set current season: %v", err)
	}

	next.On("GetCurrentSeason", mock.Anything).Return(league.Season{ID: 2}, true, nil).Once()
	current, _, err := repo.GetCurrentSeason(ctx)
	if err != nil || current.ID != 2 {
		t.Fatalf("expected reloaded current season, got %+v err=%v", current, err)
	}
}

func TestLeagueRepository_CountSeasonsReadsThrough(t *testing.T) {
	ctx := context.Background()
	next := leaguemock.NewRepository(t)
	repo := NewLeagueRepository(next, basecache.NewStore(time.Minute))

	next.On("CountSeasonsForDivision", mock.Anything, int64(1)).Return(0, nil).Once()
	next.On("CountSeasonsForDivision", mock.Anything, int64(1)).Return(1, nil).Once()

	if n, _ := repo.CountSeasonsForDivision(ctx, 1); n != 0 {
		t.Fatalf("expected 0, got %d", n)
	}
	if n, _ := repo.CountSeasonsForDivision(ctx, 1); n != 1 {
		t.Fatalf("expected 1, got %d", n)
	}
}
