package player

import (
	"time"
)

// ClubStatus is the club admin's confirmation that a player belongs to the
// club named on their profile.
type ClubStatus string

const (
	ClubStatusPending   ClubStatus = "pending"
	ClubStatusConfirmed ClubStatus = "confirmed"
	ClubStatusRejected  ClubStatus = "rejected"
)

func (s ClubStatus) Valid() bool {
	switch s {
	case ClubStatusPending, ClubStatusConfirmed, ClubStatusRejected:
		return true
	default:
		return false
	}
}

// Player is a registered league player.
type Player struct {
	ID            int64
	Forename      string
	Surname       string
	DateOfBirth   time.Time
	CurrentClubID *int64
	ClubStatus    ClubStatus
}

func (p Player) FullName() string {
	return p.Forename + " " + p.Surname
}

func (p Player) InClub(clubID int64) bool {
	return p.CurrentClubID != nil && *p.CurrentClubID == clubID
}
