package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/tt-league/internal/domain/club"
	"github.com/riskibarqy/tt-league/internal/domain/directory"
	"github.com/riskibarqy/tt-league/internal/domain/infoladder"
	"github.com/riskibarqy/tt-league/internal/domain/user"
	"github.com/riskibarqy/tt-league/internal/domain/validation"
	"github.com/riskibarqy/tt-league/internal/domain/venue"
	"github.com/riskibarqy/tt-league/internal/platform/logging"
)

// Delete options offered on the club admin confirmation pages.
const (
	DeleteAll        = "all"
	DeleteUnapproved = "unapproved"
)

// DashboardRedirect is where skipped club admin actions send the caller.
const DashboardRedirect = "/v1/club-admin/dashboard"

const (
	msgConfirmDeletion      = "Please tick the confirmation checkbox to confirm that you understand the implications of this action."
	msgContactLeagueAdmin   = "An error occurred. Please contact the league administrator."
	msgNoUnapprovedClubInfo = "There is no unapproved club information to delete."
	msgNoUnapprovedVenue    = "There is no unapproved venue information to delete."
	msgCannotEditVenue      = "Unable to edit venue information."
	msgCannotDeleteVenue    = "Unable to delete venue."
	msgSharedVenue          = "Cannot delete venue because it is shared with at least one other club."
	msgVenueAlreadyAssigned = "Something went wrong. Please check that the venue is not already assigned."
)

// ClubAdminService runs the club admin dashboard actions. Every method
// resolves the caller's club first.
type ClubAdminService struct {
	clubRepo  club.Repository
	venueRepo venue.Repository
	logger    *logging.Logger
	now       func() time.Time
}

func NewClubAdminService(clubRepo club.Repository, venueRepo venue.Repository, logger *logging.Logger) *ClubAdminService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ClubAdminService{
		clubRepo:  clubRepo,
		venueRepo: venueRepo,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *ClubAdminService) club(ctx context.Context, principal user.Principal) (club.Club, error) {
	admin, err := requireClubAdmin(ctx, s.clubRepo, principal)
	if err != nil {
		return club.Club{}, err
	}
	c, exists, err := s.clubRepo.GetClub(ctx, admin.ClubID)
	if err != nil {
		return club.Club{}, fmt.Errorf("get club: %w", err)
	}
	if !exists {
		return club.Club{}, fmt.Errorf("%w: club=%d", ErrNotFound, admin.ClubID)
	}
	return c, nil
}

func (s *ClubAdminService) Dashboard(ctx context.Context, principal user.Principal) (directory.AdminView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubAdminService.Dashboard")
	defer span.End()

	c, err := s.club(ctx, principal)
	if err != nil {
		return directory.AdminView{}, err
	}
	return s.dashboard(ctx, c)
}

func (s *ClubAdminService) dashboard(ctx context.Context, c club.Club) (directory.AdminView, error) {
	clubInfos, err := s.clubRepo.ListInfos(ctx, c.ID)
	if err != nil {
		return directory.AdminView{}, fmt.Errorf("list club infos: %w", err)
	}
	venues, err := s.venueRepo.ListVenues(ctx)
	if err != nil {
		return directory.AdminView{}, fmt.Errorf("list venues: %w", err)
	}
	venueInfos, err := s.venueRepo.ListAllInfos(ctx)
	if err != nil {
		return directory.AdminView{}, fmt.Errorf("list venue infos: %w", err)
	}
	links, err := s.venueRepo.ListLinks(ctx)
	if err != nil {
		return directory.AdminView{}, fmt.Errorf("list club venues: %w", err)
	}

	return directory.BuildAdminView(c, directory.Source{
		ClubInfos:  clubInfos,
		Venues:     venues,
		VenueInfos: venueInfos,
		Links:      links,
	}), nil
}

// UpdateClubInfo appends a new unapproved snapshot and prunes everything but
// it and the latest approved one.
func (s *ClubAdminService) UpdateClubInfo(ctx context.Context, principal user.Principal, info club.Info) (club.Info, Outcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubAdminService.UpdateClubInfo")
	defer span.End()

	c, err := s.club(ctx, principal)
	if err != nil {
		return club.Info{}, Outcome{}, err
	}

	info = info.Normalize()
	info.ID = 0
	info.ClubID = c.ID
	info.Approved = false
	info.CreatedOn = s.now().UTC()
	if err := invalid(info.Validate()); err != nil {
		return club.Info{}, Outcome{}, err
	}

	stored, purged, err := s.clubRepo.AppendInfo(ctx, info)
	if err != nil {
		return club.Info{}, Outcome{}, storeErr("append club info", err)
	}
	s.logger.InfoContext(ctx, "club info updated",
		"club_id", c.ID,
		"info_id", stored.ID,
		"purged", len(purged),
	)

	out := succeeded("Club info has been updated.")
	out.Redirect = DashboardRedirect
	return stored, out, nil
}

// DeleteClubInfo removes all snapshots (confirm required) or only the
// unapproved ones.
func (s *ClubAdminService) DeleteClubInfo(ctx context.Context, principal user.Principal, option string, confirm bool) (Outcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubAdminService.DeleteClubInfo")
	defer span.End()

	c, err := s.club(ctx, principal)
	if err != nil {
		return Outcome{}, err
	}

	switch option {
	case DeleteAll:
		if !confirm {
			return skipped(NoticeWarning, msgConfirmDeletion, ""), nil
		}
		infos, err := s.clubRepo.ListInfos(ctx, c.ID)
		if err != nil {
			return Outcome{}, fmt.Errorf("list club infos: %w", err)
		}
		ids := make([]int64, 0, len(infos))
		for _, info := range infos {
			ids = append(ids, info.ID)
		}
		if _, err := s.clubRepo.DeleteInfos(ctx, c.ID, ids); err != nil {
			return Outcome{}, fmt.Errorf("delete club infos: %w", err)
		}
		out := succeeded("Club info has been deleted.")
		out.Redirect = DashboardRedirect
		return out, nil

	case DeleteUnapproved:
		infos, err := s.clubRepo.ListInfos(ctx, c.ID)
		if err != nil {
			return Outcome{}, fmt.Errorf("list club infos: %w", err)
		}
		ids := infoladder.Unapproved(infos)
		if len(ids) == 0 {
			return skipped(NoticeWarning, msgNoUnapprovedClubInfo, ""), nil
		}
		if _, err := s.clubRepo.DeleteInfos(ctx, c.ID, ids); err != nil {
			return Outcome{}, fmt.Errorf("delete club infos: %w", err)
		}
		out := succeeded("Unapproved club info has been deleted.")
		out.Redirect = DashboardRedirect
		return out, nil

	default:
		return skipped(NoticeWarning, msgContactLeagueAdmin, ""), nil
	}
}

// AssignVenue links a venue that the club does not use yet.
func (s *ClubAdminService) AssignVenue(ctx context.Context, principal user.Principal, venueID int64) (Outcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubAdminService.AssignVenue")
	defer span.End()

	c, err := s.club(ctx, principal)
	if err != nil {
		return Outcome{}, err
	}
	if _, exists, err := s.venueRepo.GetVenue(ctx, venueID); err != nil {
		return Outcome{}, fmt.Errorf("get venue: %w", err)
	} else if !exists {
		errs := validation.New()
		errs.Add("venue", "Select a valid choice. That choice is not one of the available choices.")
		return Outcome{}, invalid(errs)
	}

	assigned, err := s.isAssigned(ctx, c.ID, venueID)
	if err != nil {
		return Outcome{}, err
	}
	if assigned {
		return skipped(NoticeWarning, msgVenueAlreadyAssigned, ""), nil
	}
	if err := s.venueRepo.Assign(ctx, venue.ClubVenue{ClubID: c.ID, VenueID: venueID}); err != nil {
		return Outcome{}, storeErr("assign venue", err)
	}

	out := succeeded("Venue has been assigned.")
	out.Redirect = DashboardRedirect
	return out, nil
}

// UnassignVenue drops the link and returns the refreshed dashboard. A missing
// venue or link is silently ignored.
func (s *ClubAdminService) UnassignVenue(ctx context.Context, principal user.Principal, venueID int64) (directory.AdminView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubAdminService.UnassignVenue")
	defer span.End()

	c, err := s.club(ctx, principal)
	if err != nil {
		return directory.AdminView{}, err
	}
	if _, err := s.venueRepo.Unassign(ctx, venue.ClubVenue{ClubID: c.ID, VenueID: venueID}); err != nil {
		return directory.AdminView{}, fmt.Errorf("unassign venue: %w", err)
	}
	return s.dashboard(ctx, c)
}

func (s *ClubAdminService) isAssigned(ctx context.Context, clubID, venueID int64) (bool, error) {
	links, err := s.venueRepo.ListLinksByClub(ctx, clubID)
	if err != nil {
		return false, fmt.Errorf("list club venues: %w", err)
	}
	for _, l := range links {
		if l.VenueID == venueID {
			return true, nil
		}
	}
	return false, nil
}

// UpdateVenueInfo follows the ladder protocol for a venue the club uses.
// Venues of other clubs are skipped with a warning, not an error.
func (s *ClubAdminService) UpdateVenueInfo(ctx context.Context, principal user.Principal, info venue.Info) (venue.Info, Outcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubAdminService.UpdateVenueInfo")
	defer span.End()

	c, err := s.club(ctx, principal)
	if err != nil {
		return venue.Info{}, Outcome{}, err
	}
	assigned, err := s.isAssigned(ctx, c.ID, info.VenueID)
	if err != nil {
		return venue.Info{}, Outcome{}, err
	}
	if !assigned {
		return venue.Info{}, skipped(NoticeWarning, msgCannotEditVenue, DashboardRedirect), nil
	}

	info = info.Normalize()
	info.ID = 0
	info.Approved = false
	info.CreatedOn = s.now().UTC()
	if err := invalid(info.Validate()); err != nil {
		return venue.Info{}, Outcome{}, err
	}

	stored, purged, err := s.venueRepo.AppendInfo(ctx, info)
	if err != nil {
		return venue.Info{}, Outcome{}, storeErr("append venue info", err)
	}
	s.logger.InfoContext(ctx, "venue info updated",
		"club_id", c.ID,
		"venue_id", stored.VenueID,
		"info_id", stored.ID,
		"purged", len(purged),
	)

	out := succeeded("Venue info has been updated.")
	out.Redirect = DashboardRedirect
	return stored, out, nil
}

// CreateVenue stores a venue with its first info snapshot and assigns it to
// the caller's club in one write.
func (s *ClubAdminService) CreateVenue(ctx context.Context, principal user.Principal, v venue.Venue, info venue.Info) (venue.Venue, venue.Info, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubAdminService.CreateVenue")
	defer span.End()

	c, err := s.club(ctx, principal)
	if err != nil {
		return venue.Venue{}, venue.Info{}, err
	}

	info = info.Normalize()
	info.Approved = false
	info.CreatedOn = s.now().UTC()
	errs := validation.Collect(v, info)
	if err := invalid(errs); err != nil {
		return venue.Venue{}, venue.Info{}, err
	}

	created, createdInfo, err := s.venueRepo.CreateVenue(ctx, v, info, c.ID)
	if err != nil {
		return venue.Venue{}, venue.Info{}, storeErr("create venue", err)
	}
	s.logger.InfoContext(ctx, "venue created", "club_id", c.ID, "venue_id", created.ID)
	return created, createdInfo, nil
}

// DeleteVenue deletes the venue (option all) or its unapproved snapshots.
// Venues shared with another club cannot be deleted outright.
func (s *ClubAdminService) DeleteVenue(ctx context.Context, principal user.Principal, venueID int64, option string, confirm bool) (Outcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubAdminService.DeleteVenue")
	defer span.End()

	c, err := s.club(ctx, principal)
	if err != nil {
		return Outcome{}, err
	}
	if _, exists, err := s.venueRepo.GetVenue(ctx, venueID); err != nil {
		return Outcome{}, fmt.Errorf("get venue: %w", err)
	} else if !exists {
		return skipped(NoticeWarning, msgCannotDeleteVenue, DashboardRedirect), nil
	}

	links, err := s.venueRepo.ListLinksByVenue(ctx, venueID)
	if err != nil {
		return Outcome{}, fmt.Errorf("list venue clubs: %w", err)
	}
	var assigned, shared bool
	for _, l := range links {
		if l.ClubID == c.ID {
			assigned = true
		} else {
			shared = true
		}
	}
	if !assigned {
		return skipped(NoticeWarning, msgCannotDeleteVenue, DashboardRedirect), nil
	}

	switch option {
	case DeleteAll:
		if shared {
			return skipped(NoticeWarning, msgSharedVenue, ""), nil
		}
		if !confirm {
			return skipped(NoticeWarning, msgConfirmDeletion, ""), nil
		}
		if err := s.venueRepo.DeleteVenue(ctx, venueID); err != nil {
			return Outcome{}, storeErr("delete venue", err)
		}
		s.logger.InfoContext(ctx, "venue deleted", "club_id", c.ID, "venue_id", venueID)
		out := succeeded("Venue has been deleted.")
		out.Redirect = DashboardRedirect
		return out, nil

	case DeleteUnapproved:
		infos, err := s.venueRepo.ListInfos(ctx, venueID)
		if err != nil {
			return Outcome{}, fmt.Errorf("list venue infos: %w", err)
		}
		ids := infoladder.Unapproved(infos)
		if len(ids) == 0 {
			return skipped(NoticeWarning, msgNoUnapprovedVenue, ""), nil
		}
		if _, err := s.venueRepo.DeleteInfos(ctx, venueID, ids); err != nil {
			return Outcome{}, fmt.Errorf("delete venue infos: %w", err)
		}
		out := succeeded("Unapproved venue info has been deleted.")
		out.Redirect = DashboardRedirect
		return out, nil

	default:
		return skipped(NoticeWarning, msgContactLeagueAdmin, ""), nil
	}
}
