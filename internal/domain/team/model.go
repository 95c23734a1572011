package team

import (
	"github.com/riskibarqy/tt-league/internal/domain/league"
)

// Weekday is the evening a team plays its home matches.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
)

func (d Weekday) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday:
		return true
	default:
		return false
	}
}

var DefaultHomeTime = league.TimeOfDay{Hour: 19}

// Team is a club's entry into one division of a season.
type Team struct {
	ID          int64
	SeasonID    int64
	DivisionID  int64
	ClubID      int64
	HomeVenueID int64
	Name        string
	HomeDay     Weekday
	HomeTime    league.TimeOfDay
	Approved    bool
}

// Member registers a player to a team for the team's season.
type Member struct {
	ID       int64
	PlayerID int64
	TeamID   int64
	PaidFees bool
}

// Filter narrows team listings; zero fields are ignored.
type Filter struct {
	SeasonID   int64
	DivisionID int64
	ClubID     int64
}
