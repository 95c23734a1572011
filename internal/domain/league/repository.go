package league

import "context"

// Repository describes division, season and week persistence.
type Repository interface {
	ListDivisions(ctx context.Context) ([]Division, error)
	GetDivision(ctx context.Context, divisionID int64) (Division, bool, error)
	CreateDivision(ctx context.Context, d Division) (Division, error)
	UpdateDivision(ctx context.Context, d Division) error
	DeleteDivision(ctx context.Context, divisionID int64) error
	CountSeasonsForDivision(ctx context.Context, divisionID int64) (int, error)

	ListSeasons(ctx context.Context) ([]Season, error)
	GetSeason(ctx context.Context, seasonID int64) (Season, bool, error)
	GetSeasonBySlug(ctx context.Context, slug string) (Season, bool, error)
	GetCurrentSeason(ctx context.Context) (Season, bool, error)
	// CreateSeason and UpdateSeason clear every other current flag in the same
	// write when s.IsCurrent is set.
	CreateSeason(ctx context.Context, s Season) (Season, error)
	UpdateSeason(ctx context.Context, s Season) error
	SetCurrentSeason(ctx context.Context, seasonID int64) error

	ListWeeks(ctx context.Context, seasonID int64) ([]Week, error)
	GetWeek(ctx context.Context, weekID int64) (Week, bool, error)
	CreateWeek(ctx context.Context, w Week) (Week, error)
}
