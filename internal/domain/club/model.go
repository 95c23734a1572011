package club

import (
	"time"
)

const DefaultImage = "placeholder"

// Club is a member club of the league.
type Club struct {
	ID   int64
	Name string
}

// Attributes are the directory filter flags published with a club.
type Attributes struct {
	Beginners          bool
	Intermediates      bool
	Advanced           bool
	Kids               bool
	Adults             bool
	Coaching           bool
	League             bool
	EquipmentProvided  bool
	MembershipRequired bool
	FreeTaster         bool
}

// Info is one snapshot on a club's info ladder.
type Info struct {
	ID           int64
	ClubID       int64
	Website      string
	Image        string
	ContactName  string
	ContactEmail string
	ContactPhone string
	Description  string
	SessionInfo  string
	Attributes
	CreatedOn time.Time
	Approved  bool
}

func (i Info) VersionID() int64            { return i.ID }
func (i Info) VersionCreatedAt() time.Time { return i.CreatedOn }
func (i Info) VersionApproved() bool       { return i.Approved }

// Admin binds a user to the single club they administer.
type Admin struct {
	UserID string
	ClubID int64
}

// Review is a member's rating of a club.
type Review struct {
	ID         int64
	ClubID     int64
	UserID     string
	Score      int
	Headline   string
	ReviewText string
	Approved   bool
	CreatedOn  time.Time
	UpdatedOn  time.Time
}
