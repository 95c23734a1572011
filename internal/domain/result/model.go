package result

import "time"

const (
	BestOf          = 5
	TargetSets      = (BestOf + 1) / 2
	PointsToWin     = 11
	MinMargin       = 2
	SinglesRubbers  = 9
	TotalRubbers    = SinglesRubbers + 1
	DoublesPairSize = 2
)

type Winner string

const (
	WinnerHome Winner = "home"
	WinnerAway Winner = "away"
	WinnerDraw Winner = "draw"
)

type Status string

const (
	StatusPlayed    Status = "played"
	StatusForfeited Status = "forfeited"
)

func (s Status) Valid() bool {
	return s == StatusPlayed || s == StatusForfeited
}

// FixtureResult is the outcome of a fixture, counted in rubbers.
type FixtureResult struct {
	ID        int64
	FixtureID int64
	HomeScore int
	AwayScore int
	Winner    Winner
	Status    Status
	CreatedOn time.Time
}

// Game is one set of a singles or doubles match.
type Game struct {
	ID         int64
	MatchID    int64
	SetNum     int
	HomePoints int
	AwayPoints int
	Winner     Winner
}

// SinglesMatch references the two players through their team registrations.
type SinglesMatch struct {
	ID           int64
	ResultID     int64
	HomePlayerID int64
	AwayPlayerID int64
	HomeSets     int
	AwaySets     int
	Winner       Winner
	Games        []Game
}

// DoublesMatch is the single doubles rubber of a fixture. The four team
// registrations are part of the value so the pairs are validated together
// with the score.
type DoublesMatch struct {
	ID            int64
	ResultID      int64
	HomePlayerIDs []int64
	AwayPlayerIDs []int64
	HomeSets      int
	AwaySets      int
	Winner        Winner
	Games         []Game
}
