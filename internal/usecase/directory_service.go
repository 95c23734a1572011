package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/tt-league/internal/domain/club"
	"github.com/riskibarqy/tt-league/internal/domain/directory"
	"github.com/riskibarqy/tt-league/internal/domain/user"
	"github.com/riskibarqy/tt-league/internal/domain/venue"
	"github.com/riskibarqy/tt-league/internal/platform/logging"
)

// DirectoryService serves the public club directory, the venue map and club
// reviews.
type DirectoryService struct {
	clubRepo  club.Repository
	venueRepo venue.Repository
	logger    *logging.Logger
	now       func() time.Time
}

func NewDirectoryService(clubRepo club.Repository, venueRepo venue.Repository, logger *logging.Logger) *DirectoryService {
	if logger == nil {
		logger = logging.Default()
	}

	return &DirectoryService{
		clubRepo:  clubRepo,
		venueRepo: venueRepo,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *DirectoryService) source(ctx context.Context) (directory.Source, error) {
	var (
		src directory.Source
		err error
	)
	if src.Clubs, err = s.clubRepo.ListClubs(ctx); err != nil {
		return directory.Source{}, fmt.Errorf("list clubs: %w", err)
	}
	if src.ClubInfos, err = s.clubRepo.ListAllInfos(ctx); err != nil {
		return directory.Source{}, fmt.Errorf("list club infos: %w", err)
	}
	if src.Venues, err = s.venueRepo.ListVenues(ctx); err != nil {
		return directory.Source{}, fmt.Errorf("list venues: %w", err)
	}
	if src.VenueInfos, err = s.venueRepo.ListAllInfos(ctx); err != nil {
		return directory.Source{}, fmt.Errorf("list venue infos: %w", err)
	}
	if src.Links, err = s.venueRepo.ListLinks(ctx); err != nil {
		return directory.Source{}, fmt.Errorf("list club venues: %w", err)
	}
	if src.Reviews, err = s.clubRepo.ListAllReviews(ctx); err != nil {
		return directory.Source{}, fmt.Errorf("list reviews: %w", err)
	}
	return src, nil
}

// Clubs lists published clubs matching the filter.
func (s *DirectoryService) Clubs(ctx context.Context, filter directory.Filter) ([]directory.ClubListing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DirectoryService.Clubs")
	defer span.End()

	src, err := s.source(ctx)
	if err != nil {
		return nil, err
	}
	return directory.Listings(src, filter), nil
}

func (s *DirectoryService) MapPins(ctx context.Context) ([]directory.MapPin, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DirectoryService.MapPins")
	defer span.End()

	src, err := s.source(ctx)
	if err != nil {
		return nil, err
	}
	return directory.MapPins(src), nil
}

type ClubReviews struct {
	Club    club.Club
	Reviews []club.Review
	Summary club.ReviewSummary
}

// Reviews returns a club's approved reviews, most recently updated first.
func (s *DirectoryService) Reviews(ctx context.Context, clubID int64) (ClubReviews, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DirectoryService.Reviews")
	defer span.End()

	c, exists, err := s.clubRepo.GetClub(ctx, clubID)
	if err != nil {
		return ClubReviews{}, fmt.Errorf("get club: %w", err)
	}
	if !exists {
		return ClubReviews{}, fmt.Errorf("%w: club=%d", ErrNotFound, clubID)
	}
	reviews, err := s.clubRepo.ListReviews(ctx, clubID)
	if err != nil {
		return ClubReviews{}, fmt.Errorf("list reviews: %w", err)
	}

	return ClubReviews{
		Club:    c,
		Reviews: club.ApprovedReviews(reviews),
		Summary: club.Summarize(reviews),
	}, nil
}

// CreateReview stores the caller's review of a club. It stays hidden until a
// league admin approves it; a second review of the same club is a conflict.
func (s *DirectoryService) CreateReview(ctx context.Context, principal user.Principal, r club.Review) (club.Review, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DirectoryService.CreateReview")
	defer span.End()

	if principal.UserID == "" {
		return club.Review{}, fmt.Errorf("%w: authentication required", ErrUnauthorized)
	}
	if _, exists, err := s.clubRepo.GetClub(ctx, r.ClubID); err != nil {
		return club.Review{}, fmt.Errorf("get club: %w", err)
	} else if !exists {
		return club.Review{}, fmt.Errorf("%w: club=%d", ErrNotFound, r.ClubID)
	}

	now := s.now().UTC()
	r.ID = 0
	r.UserID = principal.UserID
	r.Headline = strings.TrimSpace(r.Headline)
	r.ReviewText = strings.TrimSpace(r.ReviewText)
	r.Approved = false
	r.CreatedOn = now
	r.UpdatedOn = now
	if err := invalid(r.Validate()); err != nil {
		return club.Review{}, err
	}

	existing, err := s.clubRepo.ListReviews(ctx, r.ClubID)
	if err != nil {
		return club.Review{}, fmt.Errorf("list reviews: %w", err)
	}
	for _, other := range existing {
		if other.UserID == r.UserID {
			return club.Review{}, fmt.Errorf("%w: user %s already reviewed club %d", ErrConflict, r.UserID, r.ClubID)
		}
	}

	created, err := s.clubRepo.CreateReview(ctx, r)
	if err != nil {
		return club.Review{}, storeErr("create review", err)
	}
	s.logger.InfoContext(ctx, "club review submitted", "club_id", created.ClubID, "review_id", created.ID)
	return created, nil
}
