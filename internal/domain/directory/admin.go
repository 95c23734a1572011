package directory

import (
	"sort"

	"github.com/riskibarqy/tt-league/internal/domain/club"
	"github.com/riskibarqy/tt-league/internal/domain/infoladder"
	"github.com/riskibarqy/tt-league/internal/domain/venue"
)

// AdminVenue is a venue as its club admin sees it: latest info regardless
// of approval.
type AdminVenue struct {
	Venue  venue.Venue
	Info   *venue.Info
	Shared bool
}

// AdminView is the club admin dashboard.
type AdminView struct {
	Club            club.Club
	Info            *club.Info
	Venues          []AdminVenue
	AvailableVenues []venue.Venue
	HasPendingInfo  bool
}

// BuildAdminView resolves the latest snapshots for one club. Pending means
// the latest club info, or any venue's latest info, is not approved; a
// missing snapshot is not pending.
func BuildAdminView(c club.Club, src Source) AdminView {
	view := AdminView{Club: c}

	clubInfos := groupClubInfos(src.ClubInfos)
	if latest, ok := infoladder.Latest(clubInfos[c.ID]); ok {
		view.Info = &latest
		if !latest.Approved {
			view.HasPendingInfo = true
		}
	}

	clubsPerVenue := make(map[int64]int)
	assigned := make(map[int64]struct{})
	for _, l := range src.Links {
		clubsPerVenue[l.VenueID]++
		if l.ClubID == c.ID {
			assigned[l.VenueID] = struct{}{}
		}
	}

	venueInfos := groupVenueInfos(src.VenueInfos)
	for _, v := range src.Venues {
		if _, ok := assigned[v.ID]; !ok {
			view.AvailableVenues = append(view.AvailableVenues, v)
			continue
		}

		item := AdminVenue{Venue: v, Shared: clubsPerVenue[v.ID] > 1}
		if latest, ok := infoladder.Latest(venueInfos[v.ID]); ok {
			item.Info = &latest
			if !latest.Approved {
				view.HasPendingInfo = true
			}
		}
		view.Venues = append(view.Venues, item)
	}

	sort.SliceStable(view.Venues, func(i, j int) bool {
		return lessName(view.Venues[i].Venue.Name, view.Venues[j].Venue.Name)
	})
	sort.SliceStable(view.AvailableVenues, func(i, j int) bool {
		return lessName(view.AvailableVenues[i].Name, view.AvailableVenues[j].Name)
	})
	return view
}
