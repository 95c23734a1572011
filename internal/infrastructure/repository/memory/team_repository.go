package memory

import (
	"context"
	"strings"

	"github.com/riskibarqy/tt-league/internal/domain/team"
	"github.com/riskibarqy/tt-league/internal/platform/dberr"
)

type TeamRepository struct {
	s *Store
}

func NewTeamRepository(s *Store) *TeamRepository {
	return &TeamRepository{s: s}
}

func byTeamName(a, b team.Team) bool {
	if !strings.EqualFold(a.Name, b.Name) {
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	}
	return a.ID < b.ID
}

func (r *TeamRepository) List(_ context.Context, filter team.Filter) ([]team.Team, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return collect(r.s.teams, func(t team.Team) bool {
		return (filter.SeasonID == 0 || t.SeasonID == filter.SeasonID) &&
			(filter.DivisionID == 0 || t.DivisionID == filter.DivisionID) &&
			(filter.ClubID == 0 || t.ClubID == filter.ClubID)
	}, byTeamName), nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.teams[teamID]
	return t, ok, nil
}

func (r *TeamRepository) GetByIDs(_ context.Context, teamIDs []int64) ([]team.Team, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	wanted := idSet(teamIDs)
	return collect(r.s.teams, func(t team.Team) bool {
		_, ok := wanted[t.ID]
		return ok
	}, byTeamName), nil
}

func (r *TeamRepository) Create(_ context.Context, t team.Team) (team.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.checkTeam(t); err != nil {
		return team.Team{}, err
	}
	t.ID = r.s.reserve(t.ID)
	r.s.teams[t.ID] = t
	return t, nil
}

func (r *TeamRepository) Update(_ context.Context, t team.Team) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.teams[t.ID]; !ok {
		return nil
	}
	if err := r.s.checkTeam(t); err != nil {
		return err
	}
	r.s.teams[t.ID] = t
	return nil
}

func (s *Store) checkTeam(t team.Team) error {
	season, ok := s.seasons[t.SeasonID]
	if !ok {
		return dberr.ForeignKey("teams_season_id_fkey")
	}
	if !season.HasDivision(t.DivisionID) {
		return dberr.ForeignKey("teams_season_division_fkey")
	}
	if _, ok := s.clubs[t.ClubID]; !ok {
		return dberr.ForeignKey("teams_club_id_fkey")
	}
	if _, ok := s.venues[t.HomeVenueID]; !ok {
		return dberr.ForeignKey("teams_home_venue_id_fkey")
	}
	for _, other := range s.teams {
		if other.ID != t.ID && other.SeasonID == t.SeasonID && strings.EqualFold(other.Name, t.Name) {
			return dberr.Unique("teams_season_id_team_name_key")
		}
	}
	return nil
}

// Delete is refused while the team has registrations or fixtures.
func (r *TeamRepository) Delete(_ context.Context, teamID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, m := range r.s.members {
		if m.TeamID == teamID {
			return dberr.ForeignKey("team_players_team_id_fkey")
		}
	}
	for _, f := range r.s.fixtures {
		if f.HomeTeamID == teamID || f.AwayTeamID == teamID {
			return dberr.ForeignKey("fixtures_team_id_fkey")
		}
	}
	delete(r.s.teams, teamID)
	return nil
}

func byMemberID(a, b team.Member) bool { return a.ID < b.ID }

func (r *TeamRepository) ListMembers(_ context.Context, teamID int64) ([]team.Member, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return collect(r.s.members, func(m team.Member) bool { return m.TeamID == teamID }, byMemberID), nil
}

func (r *TeamRepository) GetMember(_ context.Context, memberID int64) (team.Member, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.members[memberID]
	return m, ok, nil
}

func (r *TeamRepository) GetMembers(_ context.Context, memberIDs []int64) ([]team.Member, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	wanted := idSet(memberIDs)
	return collect(r.s.members, func(m team.Member) bool {
		_, ok := wanted[m.ID]
		return ok
	}, byMemberID), nil
}

func (r *TeamRepository) ListMembersByPlayerAndSeason(_ context.Context, playerID, seasonID int64) ([]team.Member, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return collect(r.s.members, func(m team.Member) bool {
		return m.PlayerID == playerID && r.s.teams[m.TeamID].SeasonID == seasonID
	}, byMemberID), nil
}

func (r *TeamRepository) CreateMember(_ context.Context, m team.Member) (team.Member, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.checkMember(m); err != nil {
		return team.Member{}, err
	}
	m.ID = r.s.reserve(m.ID)
	r.s.members[m.ID] = m
	return m, nil
}

func (r *TeamRepository) UpdateMember(_ context.Context, m team.Member) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.members[m.ID]; !ok {
		return nil
	}
	if err := r.s.checkMember(m); err != nil {
		return err
	}
	r.s.members[m.ID] = m
	return nil
}

func (s *Store) checkMember(m team.Member) error {
	if _, ok := s.players[m.PlayerID]; !ok {
		return dberr.ForeignKey("team_players_player_id_fkey")
	}
	if _, ok := s.teams[m.TeamID]; !ok {
		return dberr.ForeignKey("team_players_team_id_fkey")
	}
	for _, other := range s.members {
		if other.ID != m.ID && other.PlayerID == m.PlayerID && other.TeamID == m.TeamID {
			return dberr.Unique("team_players_player_id_team_id_key")
		}
	}
	return nil
}

// DeleteMember is refused while a recorded match references the
// registration.
func (r *TeamRepository) DeleteMember(_ context.Context, memberID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, m := range r.s.singles {
		if m.HomePlayerID == memberID || m.AwayPlayerID == memberID {
			return dberr.ForeignKey("singles_matches_player_fkey")
		}
	}
	for _, m := range r.s.doubles {
		for _, id := range append(append([]int64(nil), m.HomePlayerIDs...), m.AwayPlayerIDs...) {
			if id == memberID {
				return dberr.ForeignKey("doubles_match_players_team_player_id_fkey")
			}
		}
	}
	delete(r.s.members, memberID)
	return nil
}
