package fixture

import (
	"strings"
	"time"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusPostponed Status = "postponed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Fixture represents one scheduled match between two teams.
type Fixture struct {
	ID         int64
	SeasonID   int64
	DivisionID int64
	WeekID     int64
	HomeTeamID int64
	AwayTeamID int64
	VenueID    *int64
	Datetime   time.Time
	Status     Status
}

// Filter narrows fixture listings; zero fields are ignored. ClubID matches
// fixtures where either team belongs to the club.
type Filter struct {
	SeasonID   int64
	DivisionID int64
	ClubID     int64
	TeamID     int64
}

func NormalizeStatus(value string) Status {
	status := Status(strings.ToLower(strings.TrimSpace(value)))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusPostponed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// StatusClass returns the CSS class used to colour a fixture row.
func StatusClass(status string) string {
	if Status(status).Valid() {
		return "fixture-" + status
	}
	return "fixture-status-none"
}

// StatusKeyItem is one entry of the fixture colour legend.
type StatusKeyItem struct {
	Class string `json:"class"`
	Label string `json:"label"`
}

func StatusKey() []StatusKeyItem {
	return []StatusKeyItem{
		{Class: "fixture-scheduled", Label: "Scheduled"},
		{Class: "fixture-completed", Label: "Completed"},
		{Class: "fixture-postponed", Label: "Postponed"},
		{Class: "fixture-cancelled", Label: "Cancelled"},
	}
}
