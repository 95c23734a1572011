package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/tt-league/internal/domain/club"
	"github.com/riskibarqy/tt-league/internal/domain/league"
	"github.com/riskibarqy/tt-league/internal/domain/player"
	"github.com/riskibarqy/tt-league/internal/domain/team"
	"github.com/riskibarqy/tt-league/internal/domain/user"
	"github.com/riskibarqy/tt-league/internal/domain/validation"
	"github.com/riskibarqy/tt-league/internal/domain/venue"
	"github.com/riskibarqy/tt-league/internal/platform/dberr"
	"github.com/riskibarqy/tt-league/internal/platform/logging"
)

// RosterService manages players, teams and team registrations.
type RosterService struct {
	leagueRepo league.Repository
	clubRepo   club.Repository
	venueRepo  venue.Repository
	playerRepo player.Repository
	teamRepo   team.Repository
	logger     *logging.Logger
	loc        *time.Location
	now        func() time.Time
}

func NewRosterService(
	leagueRepo league.Repository,
	clubRepo club.Repository,
	venueRepo venue.Repository,
	playerRepo player.Repository,
	teamRepo team.Repository,
	loc *time.Location,
	logger *logging.Logger,
) *RosterService {
	if logger == nil {
		logger = logging.Default()
	}
	if loc == nil {
		loc = time.UTC
	}

	return &RosterService{
		leagueRepo: leagueRepo,
		clubRepo:   clubRepo,
		venueRepo:  venueRepo,
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		logger:     logger,
		loc:        loc,
		now:        time.Now,
	}
}

func (s *RosterService) today() time.Time {
	return league.DateOf(s.now().In(s.loc))
}

func (s *RosterService) ListPlayers(ctx context.Context) ([]player.Player, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	player.Sort(players)
	return players, nil
}

func (s *RosterService) SavePlayer(ctx context.Context, p player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.SavePlayer")
	defer span.End()

	p = p.Normalize()
	errs := p.ValidateAt(s.today())
	if p.CurrentClubID != nil {
		if _, exists, err := s.clubRepo.GetClub(ctx, *p.CurrentClubID); err != nil {
			return player.Player{}, fmt.Errorf("get club: %w", err)
		} else if !exists {
			errs.Add("current_club", "Select a valid club.")
		}
	}
	if err := invalid(errs); err != nil {
		return player.Player{}, err
	}

	if p.ID == 0 {
		created, err := s.playerRepo.Create(ctx, p)
		if err != nil {
			return player.Player{}, storeErr("create player", err)
		}
		return created, nil
	}

	if _, err := s.getPlayer(ctx, p.ID); err != nil {
		return player.Player{}, err
	}
	if err := s.playerRepo.Update(ctx, p); err != nil {
		return player.Player{}, storeErr("update player", err)
	}
	return p, nil
}

// DeletePlayer is refused while the player is registered to any team.
func (s *RosterService) DeletePlayer(ctx context.Context, playerID int64) error {
	if _, err := s.getPlayer(ctx, playerID); err != nil {
		return err
	}
	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		if errors.Is(err, dberr.ErrForeignKeyViolation) {
			return fmt.Errorf("%w: player %d is registered to a team", ErrConflict, playerID)
		}
		return fmt.Errorf("delete player: %w", err)
	}
	return nil
}

// SetClubStatus lets a club admin confirm or reject a player who names the
// admin's club on their profile.
func (s *RosterService) SetClubStatus(ctx context.Context, principal user.Principal, playerID int64, status player.ClubStatus) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.SetClubStatus")
	defer span.End()

	admin, err := requireClubAdmin(ctx, s.clubRepo, principal)
	if err != nil {
		return player.Player{}, err
	}
	if !status.Valid() {
		errs := validation.New()
		errs.Add("club_status", "Select a valid choice.")
		return player.Player{}, invalid(errs)
	}

	p, err := s.getPlayer(ctx, playerID)
	if err != nil {
		return player.Player{}, err
	}
	if !p.InClub(admin.ClubID) {
		return player.Player{}, fmt.Errorf("%w: player %d is not associated with club %d", ErrForbidden, playerID, admin.ClubID)
	}

	p.ClubStatus = status
	if err := s.playerRepo.Update(ctx, p); err != nil {
		return player.Player{}, storeErr("update player club status", err)
	}
	s.logger.InfoContext(ctx, "player club status changed",
		"player_id", p.ID,
		"club_id", admin.ClubID,
		"status", status,
	)
	return p, nil
}

// ListClubPlayers lists players naming the club admin's club.
func (s *RosterService) ListClubPlayers(ctx context.Context, principal user.Principal) ([]player.Player, error) {
	admin, err := requireClubAdmin(ctx, s.clubRepo, principal)
	if err != nil {
		return nil, err
	}
	players, err := s.playerRepo.ListByClub(ctx, admin.ClubID)
	if err != nil {
		return nil, fmt.Errorf("list club players: %w", err)
	}
	player.Sort(players)
	return players, nil
}

func (s *RosterService) getPlayer(ctx context.Context, playerID int64) (player.Player, error) {
	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}
	return p, nil
}

func (s *RosterService) ListTeams(ctx context.Context, filter team.Filter) ([]team.Team, error) {
	teams, err := s.teamRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func (s *RosterService) GetTeam(ctx context.Context, teamID int64) (team.Team, error) {
	t, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}
	return t, nil
}

func (s *RosterService) SaveTeam(ctx context.Context, t team.Team) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.SaveTeam")
	defer span.End()

	t = t.Normalize()
	season, exists, err := s.leagueRepo.GetSeason(ctx, t.SeasonID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get season: %w", err)
	}

	errs := validation.New()
	if !exists {
		errs.Add("season", "Select a valid season.")
	} else {
		errs.Merge(team.Validate(t, season))
	}
	if t.ClubID != 0 {
		if _, ok, err := s.clubRepo.GetClub(ctx, t.ClubID); err != nil {
			return team.Team{}, fmt.Errorf("get club: %w", err)
		} else if !ok {
			errs.Add("club", "Select a valid club.")
		}
	}
	if t.HomeVenueID != 0 {
		if _, ok, err := s.venueRepo.GetVenue(ctx, t.HomeVenueID); err != nil {
			return team.Team{}, fmt.Errorf("get venue: %w", err)
		} else if !ok {
			errs.Add("home_venue", "Select a valid venue.")
		}
	}

	if t.ID != 0 {
		existing, err := s.GetTeam(ctx, t.ID)
		if err != nil {
			return team.Team{}, err
		}
		if exists {
			errs.Merge(team.ValidateDivisionChange(existing, t, season, s.today()))
		}
	}
	if err := invalid(errs); err != nil {
		return team.Team{}, err
	}

	if t.ID == 0 {
		created, err := s.teamRepo.Create(ctx, t)
		if err != nil {
			return team.Team{}, storeErr("create team", err)
		}
		return created, nil
	}
	if err := s.teamRepo.Update(ctx, t); err != nil {
		return team.Team{}, storeErr("update team", err)
	}
	return t, nil
}

// DeleteTeam is refused while registrations or fixtures reference the team.
func (s *RosterService) DeleteTeam(ctx context.Context, teamID int64) error {
	if _, err := s.GetTeam(ctx, teamID); err != nil {
		return err
	}
	if err := s.teamRepo.Delete(ctx, teamID); err != nil {
		if errors.Is(err, dberr.ErrForeignKeyViolation) {
			return fmt.Errorf("%w: team %d has registered players or fixtures", ErrConflict, teamID)
		}
		return fmt.Errorf("delete team: %w", err)
	}
	return nil
}

func (s *RosterService) ApproveTeam(ctx context.Context, teamID int64) (team.Team, error) {
	t, err := s.GetTeam(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}
	if t.Approved {
		return t, nil
	}
	t.Approved = true
	if err := s.teamRepo.Update(ctx, t); err != nil {
		return team.Team{}, fmt.Errorf("approve team: %w", err)
	}
	return t, nil
}

// RosterEntry is a registration joined with its player.
type RosterEntry struct {
	Member team.Member
	Player player.Player
}

// ListRoster returns a team's registrations ordered by player surname.
func (s *RosterService) ListRoster(ctx context.Context, teamID int64) ([]RosterEntry, error) {
	members, err := s.teamRepo.ListMembers(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	ids := make([]int64, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.PlayerID)
	}
	players, err := s.playerRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get players by ids: %w", err)
	}
	player.Sort(players)

	byPlayer := make(map[int64]team.Member, len(members))
	for _, m := range members {
		byPlayer[m.PlayerID] = m
	}
	out := make([]RosterEntry, 0, len(players))
	for _, p := range players {
		out = append(out, RosterEntry{Member: byPlayer[p.ID], Player: p})
	}
	return out, nil
}

// SaveMember registers a player to a team after the eligibility checks.
func (s *RosterService) SaveMember(ctx context.Context, m team.Member) (team.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.SaveMember")
	defer span.End()

	if m.ID != 0 {
		if _, exists, err := s.teamRepo.GetMember(ctx, m.ID); err != nil {
			return team.Member{}, fmt.Errorf("get team member: %w", err)
		} else if !exists {
			return team.Member{}, fmt.Errorf("%w: team player=%d", ErrNotFound, m.ID)
		}
	}

	errs := validation.New()
	p, playerOK, err := s.playerRepo.GetByID(ctx, m.PlayerID)
	if err != nil {
		return team.Member{}, fmt.Errorf("get player: %w", err)
	}
	if !playerOK {
		errs.Add("player", "Select a valid player.")
	}
	t, teamOK, err := s.teamRepo.GetByID(ctx, m.TeamID)
	if err != nil {
		return team.Member{}, fmt.Errorf("get team: %w", err)
	}
	if !teamOK {
		errs.Add("team", "Select a valid team.")
	}
	if err := invalid(errs); err != nil {
		return team.Member{}, err
	}

	season, exists, err := s.leagueRepo.GetSeason(ctx, t.SeasonID)
	if err != nil {
		return team.Member{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return team.Member{}, fmt.Errorf("%w: season=%d", ErrNotFound, t.SeasonID)
	}
	registered, err := s.teamRepo.ListMembersByPlayerAndSeason(ctx, p.ID, season.ID)
	if err != nil {
		return team.Member{}, fmt.Errorf("list registrations for player: %w", err)
	}
	if err := invalid(team.ValidateMember(m, p, t, season, registered)); err != nil {
		return team.Member{}, err
	}

	if m.ID == 0 {
		created, err := s.teamRepo.CreateMember(ctx, m)
		if err != nil {
			return team.Member{}, storeErr("create team member", err)
		}
		return created, nil
	}
	if err := s.teamRepo.UpdateMember(ctx, m); err != nil {
		return team.Member{}, storeErr("update team member", err)
	}
	return m, nil
}

// DeleteMember is refused once the registration appears in a match.
func (s *RosterService) DeleteMember(ctx context.Context, memberID int64) error {
	if _, exists, err := s.teamRepo.GetMember(ctx, memberID); err != nil {
		return fmt.Errorf("get team member: %w", err)
	} else if !exists {
		return fmt.Errorf("%w: team player=%d", ErrNotFound, memberID)
	}
	if err := s.teamRepo.DeleteMember(ctx, memberID); err != nil {
		if errors.Is(err, dberr.ErrForeignKeyViolation) {
			return fmt.Errorf("%w: team player %d has recorded matches", ErrConflict, memberID)
		}
		return fmt.Errorf("delete team member: %w", err)
	}
	return nil
}

// requireClubAdmin resolves the club bound to the caller.
func requireClubAdmin(ctx context.Context, clubRepo club.Repository, principal user.Principal) (club.Admin, error) {
	if principal.UserID == "" {
		return club.Admin{}, fmt.Errorf("%w: authentication required", ErrUnauthorized)
	}
	admin, exists, err := clubRepo.GetAdmin(ctx, principal.UserID)
	if err != nil {
		return club.Admin{}, fmt.Errorf("get club admin: %w", err)
	}
	if !exists {
		return club.Admin{}, fmt.Errorf("%w: user %s is not a club admin", ErrForbidden, principal.UserID)
	}
	return admin, nil
}
