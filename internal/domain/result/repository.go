package result

import "context"

// Repository persists the result tree of a fixture. Create marks the fixture
// completed in the same write; deleting a result removes its matches and
// games.
type Repository interface {
	GetByID(ctx context.Context, resultID int64) (FixtureResult, bool, error)
	GetByFixture(ctx context.Context, fixtureID int64) (FixtureResult, bool, error)
	ListByFixtures(ctx context.Context, fixtureIDs []int64) ([]FixtureResult, error)
	Create(ctx context.Context, r FixtureResult) (FixtureResult, error)
	Update(ctx context.Context, r FixtureResult) error
	Delete(ctx context.Context, resultID int64) error

	ListSingles(ctx context.Context, resultID int64) ([]SinglesMatch, error)
	CreateSingles(ctx context.Context, m SinglesMatch) (SinglesMatch, error)
	DeleteSingles(ctx context.Context, matchID int64) error

	GetDoubles(ctx context.Context, resultID int64) (DoublesMatch, bool, error)
	SaveDoubles(ctx context.Context, m DoublesMatch) (DoublesMatch, error)
	DeleteDoubles(ctx context.Context, matchID int64) error
}
