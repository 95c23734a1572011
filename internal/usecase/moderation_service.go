package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/tt-league/internal/domain/club"
	"github.com/riskibarqy/tt-league/internal/domain/infoladder"
	"github.com/riskibarqy/tt-league/internal/domain/venue"
	"github.com/riskibarqy/tt-league/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

// ModerationService approves what club admins and members submit. Approval
// only flips the flag; superseded snapshots are pruned by the next edit.
type ModerationService struct {
	clubRepo  club.Repository
	venueRepo venue.Repository
	logger    *logging.Logger
}

func NewModerationService(clubRepo club.Repository, venueRepo venue.Repository, logger *logging.Logger) *ModerationService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ModerationService{
		clubRepo:  clubRepo,
		venueRepo: venueRepo,
		logger:    logger,
	}
}

// PendingQueue lists everything awaiting approval.
type PendingQueue struct {
	ClubInfos  []club.Info
	VenueInfos []venue.Info
	Reviews    []club.Review
}

func (s *ModerationService) Pending(ctx context.Context) (PendingQueue, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ModerationService.Pending")
	defer span.End()

	var (
		clubInfos  []club.Info
		venueInfos []venue.Info
		reviews    []club.Review
	)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) (err error) {
		if clubInfos, err = s.clubRepo.ListAllInfos(ctx); err != nil {
			return fmt.Errorf("list club infos: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) (err error) {
		if venueInfos, err = s.venueRepo.ListAllInfos(ctx); err != nil {
			return fmt.Errorf("list venue infos: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) (err error) {
		if reviews, err = s.clubRepo.ListAllReviews(ctx); err != nil {
			return fmt.Errorf("list reviews: %w", err)
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return PendingQueue{}, err
	}

	var q PendingQueue
	for _, info := range clubInfos {
		if !info.Approved {
			q.ClubInfos = append(q.ClubInfos, info)
		}
	}
	for _, info := range venueInfos {
		if !info.Approved {
			q.VenueInfos = append(q.VenueInfos, info)
		}
	}
	for _, r := range reviews {
		if !r.Approved {
			q.Reviews = append(q.Reviews, r)
		}
	}
	infoladder.SortNewestFirst(q.ClubInfos)
	infoladder.SortNewestFirst(q.VenueInfos)
	club.SortReviews(q.Reviews)
	return q, nil
}

// ApproveClubInfo approves the newest snapshot of a club's info.
func (s *ModerationService) ApproveClubInfo(ctx context.Context, clubID int64) (club.Info, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ModerationService.ApproveClubInfo")
	defer span.End()

	infos, err := s.clubRepo.ListInfos(ctx, clubID)
	if err != nil {
		return club.Info{}, fmt.Errorf("list club infos: %w", err)
	}
	latest, ok := infoladder.Latest(infos)
	if !ok {
		return club.Info{}, fmt.Errorf("%w: no info for club=%d", ErrNotFound, clubID)
	}
	if latest.Approved {
		return latest, nil
	}

	approved, exists, err := s.clubRepo.ApproveInfo(ctx, latest.ID)
	if err != nil {
		return club.Info{}, fmt.Errorf("approve club info: %w", err)
	}
	if !exists {
		return club.Info{}, fmt.Errorf("%w: club info=%d", ErrNotFound, latest.ID)
	}
	s.logger.InfoContext(ctx, "club info approved", "club_id", clubID, "info_id", approved.ID)
	return approved, nil
}

// ApproveVenueInfo approves the newest snapshot of a venue's info.
func (s *ModerationService) ApproveVenueInfo(ctx context.Context, venueID int64) (venue.Info, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ModerationService.ApproveVenueInfo")
	defer span.End()

	infos, err := s.venueRepo.ListInfos(ctx, venueID)
	if err != nil {
		return venue.Info{}, fmt.Errorf("list venue infos: %w", err)
	}
	latest, ok := infoladder.Latest(infos)
	if !ok {
		return venue.Info{}, fmt.Errorf("%w: no info for venue=%d", ErrNotFound, venueID)
	}
	if latest.Approved {
		return latest, nil
	}

	approved, exists, err := s.venueRepo.ApproveInfo(ctx, latest.ID)
	if err != nil {
		return venue.Info{}, fmt.Errorf("approve venue info: %w", err)
	}
	if !exists {
		return venue.Info{}, fmt.Errorf("%w: venue info=%d", ErrNotFound, latest.ID)
	}
	s.logger.InfoContext(ctx, "venue info approved", "venue_id", venueID, "info_id", approved.ID)
	return approved, nil
}

func (s *ModerationService) ApproveReview(ctx context.Context, reviewID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ModerationService.ApproveReview")
	defer span.End()

	exists, err := s.clubRepo.ApproveReview(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("approve review: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: review=%d", ErrNotFound, reviewID)
	}
	s.logger.InfoContext(ctx, "review approved", "review_id", reviewID)
	return nil
}
