package player

import "context"

// Repository describes player persistence.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	ListByClub(ctx context.Context, clubID int64) ([]Player, error)
	GetByID(ctx context.Context, playerID int64) (Player, bool, error)
	GetByIDs(ctx context.Context, playerIDs []int64) ([]Player, error)
	Create(ctx context.Context, p Player) (Player, error)
	Update(ctx context.Context, p Player) error
	Delete(ctx context.Context, playerID int64) error
}
