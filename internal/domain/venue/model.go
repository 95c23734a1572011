package venue

import "time"

// Venue is a hall where league matches are played.
type Venue struct {
	ID   int64
	Name string
}

// Info is one snapshot on a venue's info ladder.
type Info struct {
	ID                   int64
	VenueID              int64
	StreetAddress        string
	AddressLine2         string
	City                 string
	County               string
	Postcode             string
	NumTables            int
	ParkingInfo          string
	MeetsLeagueStandards bool
	Latitude             *float64
	Longitude            *float64
	CreatedOn            time.Time
	Approved             bool
}

func (i Info) VersionID() int64            { return i.ID }
func (i Info) VersionCreatedAt() time.Time { return i.CreatedOn }
func (i Info) VersionApproved() bool       { return i.Approved }

func (i Info) HasCoordinates() bool {
	return i.Latitude != nil && i.Longitude != nil
}

// ClubVenue links a club to a venue it uses.
type ClubVenue struct {
	ClubID  int64
	VenueID int64
}
