// Package directory builds the public club directory and the club admin
// dashboard from club and venue info ladders.
package directory

import (
	"sort"
	"strings"

	"github.com/riskibarqy/tt-league/internal/domain/club"
	"github.com/riskibarqy/tt-league/internal/domain/infoladder"
	"github.com/riskibarqy/tt-league/internal/domain/venue"
)

// Source is everything the directory reads, loaded once per request.
type Source struct {
	Clubs      []club.Club
	ClubInfos  []club.Info
	Venues     []venue.Venue
	VenueInfos []venue.Info
	Links      []venue.ClubVenue
	Reviews    []club.Review
}

type VenueListing struct {
	Venue venue.Venue
	Info  venue.Info
}

type ClubListing struct {
	Club    club.Club
	Info    club.Info
	Venues  []VenueListing
	Reviews club.ReviewSummary
}

// Filter narrows listings by club attributes. Unset flags match everything;
// MembershipRequired is tri-state.
type Filter struct {
	Beginners          bool
	Intermediates      bool
	Advanced           bool
	Kids               bool
	Adults             bool
	Coaching           bool
	League             bool
	EquipmentProvided  bool
	FreeTaster         bool
	MembershipRequired *bool
}

func (f Filter) Match(a club.Attributes) bool {
	checks := []struct {
		want bool
		got  bool
	}{
		{f.Beginners, a.Beginners},
		{f.Intermediates, a.Intermediates},
		{f.Advanced, a.Advanced},
		{f.Kids, a.Kids},
		{f.Adults, a.Adults},
		{f.Coaching, a.Coaching},
		{f.League, a.League},
		{f.EquipmentProvided, a.EquipmentProvided},
		{f.FreeTaster, a.FreeTaster},
	}
	for _, c := range checks {
		if c.want && !c.got {
			return false
		}
	}
	if f.MembershipRequired != nil && *f.MembershipRequired != a.MembershipRequired {
		return false
	}
	return true
}

// Listings returns clubs that have approved info, sorted by name, each with
// the venues that have approved info, also sorted by name.
func Listings(src Source, filter Filter) []ClubListing {
	clubInfos := groupClubInfos(src.ClubInfos)
	venueInfos := groupVenueInfos(src.VenueInfos)
	venuesByID := indexVenues(src.Venues)
	reviewsByClub := make(map[int64][]club.Review)
	for _, r := range src.Reviews {
		reviewsByClub[r.ClubID] = append(reviewsByClub[r.ClubID], r)
	}
	linksByClub := make(map[int64][]int64)
	for _, l := range src.Links {
		linksByClub[l.ClubID] = append(linksByClub[l.ClubID], l.VenueID)
	}

	out := make([]ClubListing, 0, len(src.Clubs))
	for _, c := range src.Clubs {
		info, ok := infoladder.LatestApproved(clubInfos[c.ID])
		if !ok || !filter.Match(info.Attributes) {
			continue
		}

		venues := make([]VenueListing, 0, len(linksByClub[c.ID]))
		for _, venueID := range linksByClub[c.ID] {
			v, ok := venuesByID[venueID]
			if !ok {
				continue
			}
			vInfo, ok := infoladder.LatestApproved(venueInfos[venueID])
			if !ok {
				continue
			}
			venues = append(venues, VenueListing{Venue: v, Info: vInfo})
		}
		sort.SliceStable(venues, func(i, j int) bool {
			return lessName(venues[i].Venue.Name, venues[j].Venue.Name)
		})

		out = append(out, ClubListing{
			Club:    c,
			Info:    info,
			Venues:  venues,
			Reviews: club.Summarize(reviewsByClub[c.ID]),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return lessName(out[i].Club.Name, out[j].Club.Name)
	})
	return out
}

func lessName(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}

func groupClubInfos(infos []club.Info) map[int64][]club.Info {
	out := make(map[int64][]club.Info)
	for _, info := range infos {
		out[info.ClubID] = append(out[info.ClubID], info)
	}
	return out
}

func groupVenueInfos(infos []venue.Info) map[int64][]venue.Info {
	out := make(map[int64][]venue.Info)
	for _, info := range infos {
		out[info.VenueID] = append(out[info.VenueID], info)
	}
	return out
}

func indexVenues(venues []venue.Venue) map[int64]venue.Venue {
	out := make(map[int64]venue.Venue, len(venues))
	for _, v := range venues {
		out[v.ID] = v
	}
	return out
}
