package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/tt-league/internal/domain/league"
	"github.com/riskibarqy/tt-league/internal/domain/validation"
	"github.com/riskibarqy/tt-league/internal/platform/dberr"
	"github.com/riskibarqy/tt-league/internal/platform/logging"
)

// LeagueService manages divisions, seasons and weeks.
type LeagueService struct {
	leagueRepo league.Repository
	logger     *logging.Logger
	loc        *time.Location
	now        func() time.Time
}

func NewLeagueService(leagueRepo league.Repository, loc *time.Location, logger *logging.Logger) *LeagueService {
	if logger == nil {
		logger = logging.Default()
	}
	if loc == nil {
		loc = time.UTC
	}

	return &LeagueService{
		leagueRepo: leagueRepo,
		logger:     logger,
		loc:        loc,
		now:        time.Now,
	}
}

func (s *LeagueService) today() time.Time {
	return league.DateOf(s.now().In(s.loc))
}

func (s *LeagueService) ListDivisions(ctx context.Context) ([]league.Division, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListDivisions")
	defer span.End()

	divisions, err := s.leagueRepo.ListDivisions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list divisions: %w", err)
	}
	sort.SliceStable(divisions, func(i, j int) bool { return divisions[i].Rank < divisions[j].Rank })
	return divisions, nil
}

func (s *LeagueService) SaveDivision(ctx context.Context, d league.Division) (league.Division, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.SaveDivision")
	defer span.End()

	d.Name = strings.TrimSpace(d.Name)
	if err := invalid(d.Validate()); err != nil {
		return league.Division{}, err
	}

	if d.ID == 0 {
		created, err := s.leagueRepo.CreateDivision(ctx, d)
		if err != nil {
			return league.Division{}, storeErr("create division", err)
		}
		return created, nil
	}

	if _, err := s.getDivision(ctx, d.ID); err != nil {
		return league.Division{}, err
	}
	if err := s.leagueRepo.UpdateDivision(ctx, d); err != nil {
		return league.Division{}, storeErr("update division", err)
	}
	return d, nil
}

// DeleteDivision refuses while any season still lists the division.
func (s *LeagueService) DeleteDivision(ctx context.Context, divisionID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.DeleteDivision")
	defer span.End()

	if _, err := s.getDivision(ctx, divisionID); err != nil {
		return err
	}
	count, err := s.leagueRepo.CountSeasonsForDivision(ctx, divisionID)
	if err != nil {
		return fmt.Errorf("count seasons for division: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: %w", ErrConflict, league.ErrDivisionInUse)
	}
	if err := s.leagueRepo.DeleteDivision(ctx, divisionID); err != nil {
		if errors.Is(err, dberr.ErrForeignKeyViolation) {
			return fmt.Errorf("%w: %w", ErrConflict, league.ErrDivisionInUse)
		}
		return fmt.Errorf("delete division: %w", err)
	}
	return nil
}

func (s *LeagueService) getDivision(ctx context.Context, divisionID int64) (league.Division, error) {
	d, exists, err := s.leagueRepo.GetDivision(ctx, divisionID)
	if err != nil {
		return league.Division{}, fmt.Errorf("get division: %w", err)
	}
	if !exists {
		return league.Division{}, fmt.Errorf("%w: division=%d", ErrNotFound, divisionID)
	}
	return d, nil
}

// ListSeasons returns seasons newest first. visibleOnly drops hidden ones.
func (s *LeagueService) ListSeasons(ctx context.Context, visibleOnly bool) ([]league.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListSeasons")
	defer span.End()

	seasons, err := s.leagueRepo.ListSeasons(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	out := make([]league.Season, 0, len(seasons))
	for _, season := range seasons {
		if visibleOnly && !season.IsVisible {
			continue
		}
		out = append(out, season)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

func (s *LeagueService) GetSeason(ctx context.Context, seasonID int64) (league.Season, error) {
	season, exists, err := s.leagueRepo.GetSeason(ctx, seasonID)
	if err != nil {
		return league.Season{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return league.Season{}, fmt.Errorf("%w: season=%d", ErrNotFound, seasonID)
	}
	return season, nil
}

// CurrentSeason returns the season flagged current, if any.
func (s *LeagueService) CurrentSeason(ctx context.Context) (league.Season, bool, error) {
	season, ok, err := s.leagueRepo.GetCurrentSeason(ctx)
	if err != nil {
		return league.Season{}, false, fmt.Errorf("get current season: %w", err)
	}
	return season, ok, nil
}

// ResolveSeason maps a filter slug to a visible season. An empty slug means
// the current season; unknown or hidden slugs resolve to no season.
func (s *LeagueService) ResolveSeason(ctx context.Context, slug string) (league.Season, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ResolveSeason")
	defer span.End()

	return resolveSeason(ctx, s.leagueRepo, slug)
}

func resolveSeason(ctx context.Context, repo league.Repository, slug string) (league.Season, bool, error) {
	slug = strings.TrimSpace(slug)
	var (
		season league.Season
		ok     bool
		err    error
	)
	if slug == "" {
		season, ok, err = repo.GetCurrentSeason(ctx)
	} else {
		season, ok, err = repo.GetSeasonBySlug(ctx, slug)
	}
	if err != nil {
		return league.Season{}, false, fmt.Errorf("resolve season %q: %w", slug, err)
	}
	if !ok || !season.IsVisible {
		return league.Season{}, false, nil
	}
	return season, true, nil
}

func (s *LeagueService) SaveSeason(ctx context.Context, season league.Season) (league.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.SaveSeason")
	defer span.End()

	season.Name = strings.TrimSpace(season.Name)
	season.ShortName = strings.TrimSpace(season.ShortName)
	season.Slug = strings.TrimSpace(season.Slug)

	errs := season.Validate()
	for _, divisionID := range season.DivisionIDs {
		_, exists, err := s.leagueRepo.GetDivision(ctx, divisionID)
		if err != nil {
			return league.Season{}, fmt.Errorf("get division: %w", err)
		}
		if !exists {
			errs.Add("divisions", fmt.Sprintf("Select a valid choice. %d is not one of the available choices.", divisionID))
		}
	}
	if err := invalid(errs); err != nil {
		return league.Season{}, err
	}

	if season.ID == 0 {
		created, err := s.leagueRepo.CreateSeason(ctx, season)
		if err != nil {
			return league.Season{}, storeErr("create season", err)
		}
		s.logger.InfoContext(ctx, "season created", "season_id", created.ID, "is_current", created.IsCurrent)
		return created, nil
	}

	if _, err := s.GetSeason(ctx, season.ID); err != nil {
		return league.Season{}, err
	}
	if err := s.leagueRepo.UpdateSeason(ctx, season); err != nil {
		return league.Season{}, storeErr("update season", err)
	}
	return season, nil
}

// SetCurrentSeason makes seasonID the only current season.
func (s *LeagueService) SetCurrentSeason(ctx context.Context, seasonID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.SetCurrentSeason")
	defer span.End()

	if _, err := s.GetSeason(ctx, seasonID); err != nil {
		return err
	}
	if err := s.leagueRepo.SetCurrentSeason(ctx, seasonID); err != nil {
		return fmt.Errorf("set current season: %w", err)
	}
	s.logger.InfoContext(ctx, "current season changed", "season_id", seasonID)
	return nil
}

func (s *LeagueService) ListWeeks(ctx context.Context, seasonID int64) ([]league.Week, error) {
	weeks, err := s.leagueRepo.ListWeeks(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list weeks: %w", err)
	}
	sort.SliceStable(weeks, func(i, j int) bool { return weeks[i].StartDate.Before(weeks[j].StartDate) })
	return weeks, nil
}

func (s *LeagueService) CreateWeek(ctx context.Context, w league.Week) (league.Week, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.CreateWeek")
	defer span.End()

	w.Name = strings.TrimSpace(w.Name)
	w.Details = strings.TrimSpace(w.Details)
	season, exists, err := s.leagueRepo.GetSeason(ctx, w.SeasonID)
	if err != nil {
		return league.Week{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		errs := validation.New()
		errs.Add("season", "Select a valid season.")
		return league.Week{}, invalid(errs)
	}
	if err := invalid(league.ValidateWeek(w, season)); err != nil {
		return league.Week{}, err
	}

	created, err := s.leagueRepo.CreateWeek(ctx, w)
	if err != nil {
		return league.Week{}, storeErr("create week", err)
	}
	return created, nil
}

// CurrentWeek finds the week of seasonID that contains today.
func (s *LeagueService) CurrentWeek(ctx context.Context, seasonID int64) (league.Week, bool, error) {
	weeks, err := s.ListWeeks(ctx, seasonID)
	if err != nil {
		return league.Week{}, false, err
	}
	w, ok := league.CurrentWeek(weeks, s.today())
	return w, ok, nil
}
