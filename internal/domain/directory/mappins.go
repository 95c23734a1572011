package directory

import (
	"sort"

	"github.com/riskibarqy/tt-league/internal/domain/club"
	"github.com/riskibarqy/tt-league/internal/domain/infoladder"
	"github.com/riskibarqy/tt-league/internal/domain/venue"
)

// MapPin is one venue marker on the public map.
type MapPin struct {
	VenueID   int64
	VenueName string
	Info      venue.Info
	Latitude  float64
	Longitude float64
	ClubNames []string
}

// MapPins walks approved venue info newest first. The first snapshot seen for
// a venue decides its pin; if that snapshot has no coordinates the venue is
// skipped. Venues not used by any club with approved info are left out.
func MapPins(src Source) []MapPin {
	clubInfos := groupClubInfos(src.ClubInfos)
	publishedClubs := make(map[int64]club.Club)
	for _, c := range src.Clubs {
		if _, ok := infoladder.LatestApproved(clubInfos[c.ID]); ok {
			publishedClubs[c.ID] = c
		}
	}

	clubsByVenue := make(map[int64][]string)
	for _, l := range src.Links {
		if c, ok := publishedClubs[l.ClubID]; ok {
			clubsByVenue[l.VenueID] = append(clubsByVenue[l.VenueID], c.Name)
		}
	}

	approved := make([]venue.Info, 0, len(src.VenueInfos))
	for _, info := range src.VenueInfos {
		if info.Approved {
			approved = append(approved, info)
		}
	}
	infoladder.SortNewestFirst(approved)

	venuesByID := indexVenues(src.Venues)
	seen := make(map[int64]struct{}, len(approved))
	out := make([]MapPin, 0, len(approved))
	for _, info := range approved {
		if _, ok := seen[info.VenueID]; ok {
			continue
		}
		seen[info.VenueID] = struct{}{}

		if !info.HasCoordinates() {
			continue
		}
		names := clubsByVenue[info.VenueID]
		if len(names) == 0 {
			continue
		}
		sort.Strings(names)

		out = append(out, MapPin{
			VenueID:   info.VenueID,
			VenueName: venuesByID[info.VenueID].Name,
			Info:      info,
			Latitude:  *info.Latitude,
			Longitude: *info.Longitude,
			ClubNames: names,
		})
	}
	return out
}
