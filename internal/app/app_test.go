package app

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/tt-league/internal/config"
	"github.com/riskibarqy/tt-league/internal/platform/logging"
)

const appSeed = `
divisions:
  - {id: 1, name: Division 1, rank: 1}
seasons:
  - id: 10
    name: Winter 2025
    short_name: W25
    slug: winter-2025
    divisions: [1]
    start_date: 2025-09-01
    end_date: 2026-04-30
    registration_opens: 2025-07-01
    registration_closes: 2025-08-15
    is_visible: true
    is_current: true
clubs:
  - {id: 30, name: Riverside TTC}
`

func memoryConfig(t *testing.T) config.Config {
	t.Helper()

	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(appSeed), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	return config.Config{
		AppEnv:          "dev",
		HTTPAddr:        ":0",
		StorageDriver:   config.StorageMemory,
		SeedFile:        path,
		LeagueTimezone:  time.UTC,
		CacheEnabled:    true,
		CacheTTL:        time.Minute,
		LeagueAdminRole: "league_admin",
		AnubisTimeout:   time.Second,
	}
}

func TestNewServices_MemorySeed(t *testing.T) {
	services, closeFn, err := NewServices(t.Context(), memoryConfig(t), logging.NewNop())
	if err != nil {
		t.Fatalf("NewServices: %v", err)
	}
	defer closeFn()

	seasons, err := services.League.ListSeasons(t.Context(), false)
	if err != nil {
		t.Fatalf("ListSeasons: %v", err)
	}
	if len(seasons) != 1 || seasons[0].Slug != "winter-2025" {
		t.Fatalf("unexpected seasons: %+v", seasons)
	}

	current, ok, err := services.League.CurrentSeason(t.Context())
	if err != nil || !ok || current.ID != 10 {
		t.Fatalf("unexpected current season: %+v ok=%v err=%v", current, ok, err)
	}
}

func TestNewServices_MissingSeedFile(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.SeedFile = filepath.Join(t.TempDir(), "missing.yaml")

	if _, _, err := NewServices(t.Context(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for missing seed file")
	}
}

func TestNewHTTPServer_ServesRoutes(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.ReadTimeout = 5 * time.Second

	srv, closeFn, err := NewHTTPServer(t.Context(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("NewHTTPServer: %v", err)
	}
	defer closeFn()

	if srv.ReadTimeout != 5*time.Second {
		t.Fatalf("read timeout not applied: %v", srv.ReadTimeout)
	}

	for _, path := range []string{"/healthz", "/v1/clubs", "/v1/seasons"} {
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d body=%s", path, rec.Code, rec.Body.String())
		}
	}
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.HTTPAddr = ""

	if _, _, err := NewHTTPServer(t.Context(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}
