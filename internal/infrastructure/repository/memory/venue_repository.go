package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/riskibarqy/tt-league/internal/domain/infoladder"
	"github.com/riskibarqy/tt-league/internal/domain/venue"
	"github.com/riskibarqy/tt-league/internal/platform/dberr"
)

type VenueRepository struct {
	s *Store
}

func NewVenueRepository(s *Store) *VenueRepository {
	return &VenueRepository{s: s}
}

func (r *VenueRepository) ListVenues(_ context.Context) ([]venue.Venue, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return collect(r.s.venues, nil, func(a, b venue.Venue) bool {
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	}), nil
}

func (r *VenueRepository) GetVenue(_ context.Context, venueID int64) (venue.Venue, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	v, ok := r.s.venues[venueID]
	return v, ok, nil
}

func (r *VenueRepository) CreateVenue(_ context.Context, v venue.Venue, info venue.Info, clubID int64) (venue.Venue, venue.Info, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, other := range r.s.venues {
		if strings.EqualFold(other.Name, v.Name) {
			return venue.Venue{}, venue.Info{}, dberr.Unique("venues_name_key")
		}
	}
	if clubID != 0 {
		if _, ok := r.s.clubs[clubID]; !ok {
			return venue.Venue{}, venue.Info{}, dberr.ForeignKey("club_venues_club_id_fkey")
		}
	}

	v.ID = r.s.reserve(v.ID)
	r.s.venues[v.ID] = v
	info.VenueID = v.ID
	info.ID = r.s.nextID()
	r.s.venueInfos[info.ID] = info
	if clubID != 0 {
		r.s.links[venue.ClubVenue{ClubID: clubID, VenueID: v.ID}] = struct{}{}
	}
	return v, info, nil
}

// DeleteVenue cascades to info snapshots and club links and clears the venue
// of fixtures. Teams using it as their home venue protect it.
func (r *VenueRepository) DeleteVenue(_ context.Context, venueID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, t := range r.s.teams {
		if t.HomeVenueID == venueID {
			return dberr.ForeignKey("teams_home_venue_id_fkey")
		}
	}
	for id, info := range r.s.venueInfos {
		if info.VenueID == venueID {
			delete(r.s.venueInfos, id)
		}
	}
	for link := range r.s.links {
		if link.VenueID == venueID {
			delete(r.s.links, link)
		}
	}
	for id, f := range r.s.fixtures {
		if ptrID(f.VenueID) == venueID {
			f.VenueID = nil
			r.s.fixtures[id] = f
		}
	}
	delete(r.s.venues, venueID)
	return nil
}

func (r *VenueRepository) ListInfos(_ context.Context, venueID int64) ([]venue.Info, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.venueInfosOf(venueID), nil
}

func (s *Store) venueInfosOf(venueID int64) []venue.Info {
	return collect(s.venueInfos,
		func(i venue.Info) bool { return i.VenueID == venueID },
		func(a, b venue.Info) bool { return infoladder.Newer(a, b) },
	)
}

func (r *VenueRepository) ListAllInfos(_ context.Context) ([]venue.Info, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return collect(r.s.venueInfos, nil, func(a, b venue.Info) bool { return infoladder.Newer(a, b) }), nil
}

func (r *VenueRepository) AppendInfo(_ context.Context, info venue.Info) (venue.Info, []int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.venues[info.VenueID]; !ok {
		return venue.Info{}, nil, dberr.ForeignKey("venue_infos_venue_id_fkey")
	}
	info.ID = r.s.reserve(info.ID)
	r.s.venueInfos[info.ID] = info

	purged := infoladder.Superseded(r.s.venueInfosOf(info.VenueID), info.ID)
	for _, id := range purged {
		delete(r.s.venueInfos, id)
	}
	return info, purged, nil
}

func (r *VenueRepository) ApproveInfo(_ context.Context, infoID int64) (venue.Info, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	info, ok := r.s.venueInfos[infoID]
	if !ok {
		return venue.Info{}, false, nil
	}
	info.Approved = true
	r.s.venueInfos[infoID] = info
	return info, true, nil
}

func (r *VenueRepository) DeleteInfos(_ context.Context, venueID int64, infoIDs []int64) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	deleted := 0
	for _, id := range infoIDs {
		if info, ok := r.s.venueInfos[id]; ok && info.VenueID == venueID {
			delete(r.s.venueInfos, id)
			deleted++
		}
	}
	return deleted, nil
}

func byLink(a, b venue.ClubVenue) bool {
	if a.ClubID != b.ClubID {
		return a.ClubID < b.ClubID
	}
	return a.VenueID < b.VenueID
}

func (r *VenueRepository) links(keep func(venue.ClubVenue) bool) []venue.ClubVenue {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]venue.ClubVenue, 0, len(r.s.links))
	for l := range r.s.links {
		if keep(l) {
			out = append(out, l)
		}
	}
	sortLinks(out)
	return out
}

func sortLinks(links []venue.ClubVenue) {
	sort.Slice(links, func(i, j int) bool { return byLink(links[i], links[j]) })
}

func (r *VenueRepository) ListLinks(_ context.Context) ([]venue.ClubVenue, error) {
	return r.links(func(venue.ClubVenue) bool { return true }), nil
}

func (r *VenueRepository) ListLinksByClub(_ context.Context, clubID int64) ([]venue.ClubVenue, error) {
	return r.links(func(l venue.ClubVenue) bool { return l.ClubID == clubID }), nil
}

func (r *VenueRepository) ListLinksByVenue(_ context.Context, venueID int64) ([]venue.ClubVenue, error) {
	return r.links(func(l venue.ClubVenue) bool { return l.VenueID == venueID }), nil
}

func (r *VenueRepository) Assign(_ context.Context, link venue.ClubVenue) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.clubs[link.ClubID]; !ok {
		return dberr.ForeignKey("club_venues_club_id_fkey")
	}
	if _, ok := r.s.venues[link.VenueID]; !ok {
		return dberr.ForeignKey("club_venues_venue_id_fkey")
	}
	if _, ok := r.s.links[link]; ok {
		return dberr.Unique("club_venues_club_id_venue_id_key")
	}
	r.s.links[link] = struct{}{}
	return nil
}

func (r *VenueRepository) Unassign(_ context.Context, link venue.ClubVenue) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.links[link]; !ok {
		return false, nil
	}
	delete(r.s.links, link)
	return true, nil
}
