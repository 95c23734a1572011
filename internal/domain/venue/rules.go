package venue

import (
	"strings"

	"github.com/riskibarqy/tt-league/internal/domain/validation"
)

const (
	MinTables = 1
	MaxTables = 100
)

func (v Venue) Validate() validation.Errors {
	errs := validation.New()
	if errs.Required("name", v.Name) {
		errs.MaxLength("name", v.Name, 100)
	}
	return errs
}

// Normalize trims address fields and upper-cases the postcode.
func (i Info) Normalize() Info {
	i.StreetAddress = strings.TrimSpace(i.StreetAddress)
	i.AddressLine2 = strings.TrimSpace(i.AddressLine2)
	i.City = strings.TrimSpace(i.City)
	i.County = strings.TrimSpace(i.County)
	i.Postcode = strings.ToUpper(strings.Join(strings.Fields(i.Postcode), " "))
	i.ParkingInfo = strings.TrimSpace(i.ParkingInfo)
	return i
}

func (i Info) Validate() validation.Errors {
	errs := validation.New()
	if errs.Required("street_address", i.StreetAddress) {
		errs.MaxLength("street_address", i.StreetAddress, 100)
	}
	errs.MaxLength("address_line_2", i.AddressLine2, 100)
	if errs.Required("city", i.City) {
		errs.MaxLength("city", i.City, 50)
	}
	if errs.Required("county", i.County) {
		errs.MaxLength("county", i.County, 50)
	}
	if errs.Required("postcode", i.Postcode) {
		errs.MaxLength("postcode", i.Postcode, 8)
	}
	errs.Between("num_tables", i.NumTables, MinTables, MaxTables)
	if errs.Required("parking_info", i.ParkingInfo) {
		errs.MaxLength("parking_info", i.ParkingInfo, 500)
	}

	switch {
	case (i.Latitude == nil) != (i.Longitude == nil):
		errs.AddObject("Latitude and longitude must be provided together.")
	case i.Latitude != nil:
		if *i.Latitude < -90 || *i.Latitude > 90 {
			errs.Add("latitude", "Latitude must be between -90 and 90.")
		}
		if *i.Longitude < -180 || *i.Longitude > 180 {
			errs.Add("longitude", "Longitude must be between -180 and 180.")
		}
	}
	return errs
}
