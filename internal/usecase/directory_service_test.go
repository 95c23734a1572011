package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/tt-league/internal/domain/club"
	"github.com/riskibarqy/tt-league/internal/domain/directory"
)

func newDirectoryServices(t *testing.T) (*DirectoryService, *ModerationService, *ClubAdminService) {
	t.Helper()

	repos := newMemoryRepos(t)
	dir := NewDirectoryService(repos.club, repos.venue, nopLogger())
	dir.now = fixedClock(time.Date(2025, 9, 5, 10, 0, 0, 0, time.UTC))
	admin := NewClubAdminService(repos.club, repos.venue, nopLogger())
	admin.now = fixedClock(time.Date(2025, 9, 5, 11, 0, 0, 0, time.UTC))
	return dir, NewModerationService(repos.club, repos.venue, nopLogger()), admin
}

func TestDirectoryService_ClubsShowsApprovedOnly(t *testing.T) {
	service, _, _ := newDirectoryServices(t)
	ctx := t.Context()

	listings, err := service.Clubs(ctx, directory.Filter{})
	if err != nil {
		t.Fatalf("clubs: %v", err)
	}
	if len(listings) != 1 || listings[0].Club.Name != "Riverside TTC" {
		t.Fatalf("expected only the club with approved info, got %+v", listings)
	}
	venues := listings[0].Venues
	if len(venues) != 2 || venues[0].Venue.Name != "Riverside Hall" || venues[1].Venue.Name != "Shared Hall" {
		t.Fatalf("unexpected venues: %+v", venues)
	}

	filtered, err := service.Clubs(ctx, directory.Filter{Beginners: true})
	if err != nil {
		t.Fatalf("filtered clubs: %v", err)
	}
	if len(filtered) != 0 {
		t.Fatalf("expected no beginner clubs, got %+v", filtered)
	}
}

func TestDirectoryService_MapPins(t *testing.T) {
	service, _, _ := newDirectoryServices(t)

	pins, err := service.MapPins(t.Context())
	if err != nil {
		t.Fatalf("map pins: %v", err)
	}
	if len(pins) != 1 {
		t.Fatalf("expected one venue with coordinates, got %+v", pins)
	}
	if pins[0].VenueID != 40 || pins[0].Latitude != 50.72 || len(pins[0].ClubNames) != 1 {
		t.Fatalf("unexpected pin: %+v", pins[0])
	}
}

func TestDirectoryService_ReviewLifecycle(t *testing.T) {
	service, moderation, _ := newDirectoryServices(t)
	ctx := t.Context()

	review := club.Review{ClubID: 30, Score: 4, Headline: " Great club ", ReviewText: "Welcoming and well run."}

	if _, err := service.CreateReview(ctx, anonymous, review); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	missing := review
	missing.ClubID = 999
	if _, err := service.CreateReview(ctx, member, missing); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	bad := review
	bad.Score = 6
	if _, err := service.CreateReview(ctx, member, bad); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	created, err := service.CreateReview(ctx, member, review)
	if err != nil {
		t.Fatalf("create review: %v", err)
	}
	if created.Approved || created.Headline != "Great club" || created.UserID != member.UserID {
		t.Fatalf("unexpected review: %+v", created)
	}
	if _, err := service.CreateReview(ctx, member, review); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected second review rejected, got %v", err)
	}

	before, err := service.Reviews(ctx, 30)
	if err != nil {
		t.Fatalf("reviews: %v", err)
	}
	if len(before.Reviews) != 0 || before.Summary.Count != 0 {
		t.Fatalf("expected pending review hidden, got %+v", before)
	}

	queue, err := moderation.Pending(ctx)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(queue.Reviews) != 1 || queue.Reviews[0].ID != created.ID {
		t.Fatalf("expected review queued, got %+v", queue.Reviews)
	}

	if err := moderation.ApproveReview(ctx, created.ID); err != nil {
		t.Fatalf("approve review: %v", err)
	}
	if err := moderation.ApproveReview(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	after, err := service.Reviews(ctx, 30)
	if err != nil {
		t.Fatalf("reviews: %v", err)
	}
	if len(after.Reviews) != 1 || after.Summary.Count != 1 || after.Summary.Stars != 4 {
		t.Fatalf("expected approved review listed, got %+v", after)
	}
}

func TestModerationService_ApproveInfo(t *testing.T) {
	service, moderation, admin := newDirectoryServices(t)
	ctx := t.Context()

	if _, err := moderation.ApproveClubInfo(ctx, 31); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for club without info, got %v", err)
	}

	pending, _, err := admin.UpdateClubInfo(ctx, riversideAdmin, clubInfoInput())
	if err != nil {
		t.Fatalf("update club info: %v", err)
	}
	listings, _ := service.Clubs(ctx, directory.Filter{Beginners: true})
	if len(listings) != 0 {
		t.Fatalf("expected pending info unpublished, got %+v", listings)
	}

	approved, err := moderation.ApproveClubInfo(ctx, 30)
	if err != nil {
		t.Fatalf("approve club info: %v", err)
	}
	if approved.ID != pending.ID || !approved.Approved {
		t.Fatalf("expected latest snapshot approved, got %+v", approved)
	}
	listings, _ = service.Clubs(ctx, directory.Filter{Beginners: true})
	if len(listings) != 1 {
		t.Fatalf("expected approved beginner club listed, got %+v", listings)
	}

	same, err := moderation.ApproveVenueInfo(ctx, 40)
	if err != nil || !same.Approved {
		t.Fatalf("expected already approved venue info returned, got %+v err=%v", same, err)
	}
	if _, err := moderation.ApproveVenueInfo(ctx, 41); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for venue without info, got %v", err)
	}
}
