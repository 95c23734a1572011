package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/tt-league/internal/domain/venue"
)

type venueTableModel struct {
	ID   int64  `db:"id,readonly"`
	Name string `db:"name"`
}

type venueInfoTableModel struct {
	ID                   int64           `db:"id,readonly"`
	VenueID              int64           `db:"venue_id"`
	StreetAddress        string          `db:"street_address"`
	AddressLine2         string          `db:"address_line_2"`
	City                 string          `db:"city"`
	County               string          `db:"county"`
	Postcode             string          `db:"postcode"`
	NumTables            int             `db:"num_tables"`
	ParkingInfo          string          `db:"parking_info"`
	MeetsLeagueStandards bool            `db:"meets_league_standards"`
	Latitude             sql.NullFloat64 `db:"latitude"`
	Longitude            sql.NullFloat64 `db:"longitude"`
	CreatedOn            time.Time       `db:"created_on"`
	Approved             bool            `db:"approved"`
}

type clubVenueTableModel struct {
	ClubID  int64 `db:"club_id"`
	VenueID int64 `db:"venue_id"`
}

func venueInfoModelOf(i venue.Info) venueInfoTableModel {
	return venueInfoTableModel{
		VenueID:              i.VenueID,
		StreetAddress:        i.StreetAddress,
		AddressLine2:         i.AddressLine2,
		City:                 i.City,
		County:               i.County,
		Postcode:             i.Postcode,
		NumTables:            i.NumTables,
		ParkingInfo:          i.ParkingInfo,
		MeetsLeagueStandards: i.MeetsLeagueStandards,
		Latitude:             ptrToNullFloat64(i.Latitude),
		Longitude:            ptrToNullFloat64(i.Longitude),
		CreatedOn:            i.CreatedOn,
		Approved:             i.Approved,
	}
}

func (row venueInfoTableModel) toDomain() venue.Info {
	return venue.Info{
		ID:                   row.ID,
		VenueID:              row.VenueID,
		StreetAddress:        row.StreetAddress,
		AddressLine2:         row.AddressLine2,
		City:                 row.City,
		County:               row.County,
		Postcode:             row.Postcode,
		NumTables:            row.NumTables,
		ParkingInfo:          row.ParkingInfo,
		MeetsLeagueStandards: row.MeetsLeagueStandards,
		Latitude:             nullFloat64ToPtr(row.Latitude),
		Longitude:            nullFloat64ToPtr(row.Longitude),
		CreatedOn:            row.CreatedOn,
		Approved:             row.Approved,
	}
}
