package app

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/tt-league/internal/config"
	"github.com/riskibarqy/tt-league/internal/domain/club"
	"github.com/riskibarqy/tt-league/internal/domain/fixture"
	"github.com/riskibarqy/tt-league/internal/domain/league"
	"github.com/riskibarqy/tt-league/internal/domain/player"
	"github.com/riskibarqy/tt-league/internal/domain/result"
	"github.com/riskibarqy/tt-league/internal/domain/team"
	"github.com/riskibarqy/tt-league/internal/domain/venue"
	cacherepo "github.com/riskibarqy/tt-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/tt-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/tt-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/tt-league/internal/platform/cache"
	"github.com/riskibarqy/tt-league/internal/platform/logging"
)

type repositories struct {
	league  league.Repository
	club    club.Repository
	venue   venue.Repository
	player  player.Repository
	team    team.Repository
	fixture fixture.Repository
	result  result.Repository
}

func openRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	var (
		repos   repositories
		closeFn = func() error { return nil }
	)

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return repositories{}, nil, err
		}
		if cfg.SeedFile != "" {
			seed, err := memory.LoadSeedFile(cfg.SeedFile)
			if err != nil {
				_ = db.Close()
				return repositories{}, nil, err
			}
			if err := postgres.BootstrapSeed(ctx, db, seed, time.Now()); err != nil {
				_ = db.Close()
				return repositories{}, nil, fmt.Errorf("bootstrap seed: %w", err)
			}
			logger.InfoContext(ctx, "seed bootstrap checked", "seed_file", cfg.SeedFile)
		}

		repos = repositories{
			league:  postgres.NewLeagueRepository(db),
			club:    postgres.NewClubRepository(db),
			venue:   postgres.NewVenueRepository(db),
			player:  postgres.NewPlayerRepository(db),
			team:    postgres.NewTeamRepository(db),
			fixture: postgres.NewFixtureRepository(db),
			result:  postgres.NewResultRepository(db),
		}
		closeFn = db.Close
		logger.InfoContext(ctx, "storage ready", "driver", cfg.StorageDriver, "db_name", dbNameFromURL(cfg.DBURL))
	default:
		store := memory.NewStore()
		if cfg.SeedFile != "" {
			seed, err := memory.LoadSeedFile(cfg.SeedFile)
			if err != nil {
				return repositories{}, nil, err
			}
			if err := seed.Apply(ctx, store, time.Now()); err != nil {
				return repositories{}, nil, fmt.Errorf("apply seed: %w", err)
			}
		}

		repos = repositories{
			league:  memory.NewLeagueRepository(store),
			club:    memory.NewClubRepository(store),
			venue:   memory.NewVenueRepository(store),
			player:  memory.NewPlayerRepository(store),
			team:    memory.NewTeamRepository(store),
			fixture: memory.NewFixtureRepository(store),
			result:  memory.NewResultRepository(store),
		}
		logger.InfoContext(ctx, "storage ready", "driver", config.StorageMemory, "seed_file", cfg.SeedFile)
	}

	if cfg.CacheEnabled {
		repos.league = cacherepo.NewLeagueRepository(repos.league, cache.NewStore(cfg.CacheTTL))
	}
	return repos, closeFn, nil
}
