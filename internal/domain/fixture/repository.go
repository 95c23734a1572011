package fixture

import "context"

// Repository exposes fixture persistence. List orders by datetime.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Fixture, error)
	GetByID(ctx context.Context, fixtureID int64) (Fixture, bool, error)
	Create(ctx context.Context, f Fixture) (Fixture, error)
	Update(ctx context.Context, f Fixture) error
	Delete(ctx context.Context, fixtureID int64) error
}
