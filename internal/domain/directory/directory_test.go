package directory

import (
	"testing"
	"time"

	"github.com/riskibarqy/tt-league/internal/domain/club"
	"github.com/riskibarqy/tt-league/internal/domain/venue"
)

var t0 = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func coords(lat, lng float64) (*float64, *float64) {
	return &lat, &lng
}

func sampleSource() Source {
	yorkLat, yorkLng := coords(53.96, -1.08)
	newLat, newLng := coords(54.97, -1.61)

	return Source{
		Clubs: []club.Club{
			{ID: 1, Name: "York Club"},
			{ID: 2, Name: "Durham Club"},
			{ID: 3, Name: "Newcastle Club"},
		},
		ClubInfos: []club.Info{
			{ID: 10, ClubID: 1, ContactName: "York", Approved: true, CreatedOn: t0},
			{ID: 11, ClubID: 2, ContactName: "Durham", Approved: false, CreatedOn: t0},
			{ID: 12, ClubID: 3, ContactName: "Newcastle", Approved: true, CreatedOn: t0, Attributes: club.Attributes{Beginners: true}},
			{ID: 13, ClubID: 3, ContactName: "Newcastle draft", Approved: false, CreatedOn: t0.Add(time.Hour)},
		},
		Venues: []venue.Venue{
			{ID: 100, Name: "York Sports Hall"},
			{ID: 101, Name: "Durham Leisure Centre"},
			{ID: 102, Name: "Newcastle Arena"},
			{ID: 103, Name: "Acomb Hall"},
		},
		VenueInfos: []venue.Info{
			{ID: 200, VenueID: 100, City: "York", Approved: true, CreatedOn: t0, Latitude: yorkLat, Longitude: yorkLng},
			{ID: 201, VenueID: 101, City: "Durham", Approved: true, CreatedOn: t0},
			{ID: 202, VenueID: 102, City: "Newcastle", Approved: true, CreatedOn: t0, Latitude: newLat, Longitude: newLng},
			{ID: 203, VenueID: 102, City: "Newcastle", Approved: true, CreatedOn: t0.Add(time.Hour)},
			{ID: 204, VenueID: 103, City: "York", Approved: false, CreatedOn: t0},
		},
		Links: []venue.ClubVenue{
			{ClubID: 1, VenueID: 100},
			{ClubID: 1, VenueID: 103},
			{ClubID: 2, VenueID: 101},
			{ClubID: 3, VenueID: 102},
		},
		Reviews: []club.Review{
			{ClubID: 1, Score: 3, Approved: true},
			{ClubID: 1, Score: 4, Approved: true},
			{ClubID: 1, Score: 1, Approved: false},
		},
	}
}

func TestListings_OnlyApprovedClubsSortedByName(t *testing.T) {
	got := Listings(sampleSource(), Filter{})

	if len(got) != 2 {
		t.Fatalf("expected 2 clubs, got %d", len(got))
	}
	if got[0].Club.Name != "Newcastle Club" || got[1].Club.Name != "York Club" {
		t.Fatalf("unexpected order: %s, %s", got[0].Club.Name, got[1].Club.Name)
	}
	if got[0].Info.ID != 12 {
		t.Fatalf("expected latest approved Newcastle info 12, got %d", got[0].Info.ID)
	}
}

func TestListings_VenuesWithoutApprovedInfoOmitted(t *testing.T) {
	got := Listings(sampleSource(), Filter{})

	york := got[1]
	if len(york.Venues) != 1 || york.Venues[0].Venue.ID != 100 {
		t.Fatalf("expected only York Sports Hall, got %+v", york.Venues)
	}
	if york.Reviews.Count != 2 || york.Reviews.Stars != 4 || york.Reviews.Rounded != 3.5 {
		t.Fatalf("unexpected review summary: %+v", york.Reviews)
	}
}

func TestListings_Filter(t *testing.T) {
	got := Listings(sampleSource(), Filter{Beginners: true})
	if len(got) != 1 || got[0].Club.ID != 3 {
		t.Fatalf("expected only Newcastle, got %+v", got)
	}

	required := true
	if got := Listings(sampleSource(), Filter{MembershipRequired: &required}); len(got) != 0 {
		t.Fatalf("expected no clubs requiring membership, got %d", len(got))
	}
	notRequired := false
	if got := Listings(sampleSource(), Filter{MembershipRequired: &notRequired}); len(got) != 2 {
		t.Fatalf("expected both clubs without membership requirement, got %d", len(got))
	}
}

func TestMapPins(t *testing.T) {
	pins := MapPins(sampleSource())

	// Newcastle's newest approved info has no coordinates, so the older one
	// with coordinates must not be used. Durham has no approved club info.
	if len(pins) != 1 {
		t.Fatalf("expected 1 pin, got %+v", pins)
	}
	if pins[0].VenueID != 100 || pins[0].ClubNames[0] != "York Club" {
		t.Fatalf("unexpected pin: %+v", pins[0])
	}
}

func TestBuildAdminView(t *testing.T) {
	src := sampleSource()

	view := BuildAdminView(src.Clubs[2], src)
	if view.Info == nil || view.Info.ID != 13 {
		t.Fatalf("expected latest info 13, got %+v", view.Info)
	}
	if !view.HasPendingInfo {
		t.Fatalf("expected pending info for Newcastle")
	}

	york := BuildAdminView(src.Clubs[0], src)
	if !york.HasPendingInfo {
		t.Fatalf("expected pending info from unapproved venue snapshot")
	}
	if len(york.Venues) != 2 || york.Venues[0].Venue.Name != "Acomb Hall" {
		t.Fatalf("unexpected venues: %+v", york.Venues)
	}
	if len(york.AvailableVenues) != 2 {
		t.Fatalf("expected 2 available venues, got %d", len(york.AvailableVenues))
	}
}

func TestBuildAdminView_MissingInfoIsNotPending(t *testing.T) {
	src := Source{
		Clubs:  []club.Club{{ID: 1, Name: "New Club"}},
		Venues: []venue.Venue{{ID: 5, Name: "Hall"}, {ID: 6, Name: "Other"}},
		Links:  []venue.ClubVenue{{ClubID: 1, VenueID: 5}, {ClubID: 2, VenueID: 5}},
	}

	view := BuildAdminView(src.Clubs[0], src)
	if view.HasPendingInfo {
		t.Fatalf("expected no pending info")
	}
	if view.Info != nil {
		t.Fatalf("expected no info")
	}
	if len(view.Venues) != 1 || !view.Venues[0].Shared {
		t.Fatalf("expected shared venue, got %+v", view.Venues)
	}
}
