package memory

import (
	"context"

	"github.com/riskibarqy/tt-league/internal/domain/player"
	"github.com/riskibarqy/tt-league/internal/platform/dberr"
)

type PlayerRepository struct {
	s *Store
}

func NewPlayerRepository(s *Store) *PlayerRepository {
	return &PlayerRepository{s: s}
}

func byPlayerName(a, b player.Player) bool {
	if a.Surname != b.Surname {
		return a.Surname < b.Surname
	}
	if a.Forename != b.Forename {
		return a.Forename < b.Forename
	}
	return a.ID < b.ID
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return collect(r.s.players, nil, byPlayerName), nil
}

func (r *PlayerRepository) ListByClub(_ context.Context, clubID int64) ([]player.Player, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return collect(r.s.players, func(p player.Player) bool { return p.InClub(clubID) }, byPlayerName), nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.players[playerID]
	return p, ok, nil
}

func (r *PlayerRepository) GetByIDs(_ context.Context, playerIDs []int64) ([]player.Player, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	wanted := idSet(playerIDs)
	return collect(r.s.players, func(p player.Player) bool {
		_, ok := wanted[p.ID]
		return ok
	}, byPlayerName), nil
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) (player.Player, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.checkPlayer(p); err != nil {
		return player.Player{}, err
	}
	p.ID = r.s.reserve(p.ID)
	r.s.players[p.ID] = p
	return p, nil
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.players[p.ID]; !ok {
		return nil
	}
	if err := r.s.checkPlayer(p); err != nil {
		return err
	}
	r.s.players[p.ID] = p
	return nil
}

func (s *Store) checkPlayer(p player.Player) error {
	if p.CurrentClubID != nil {
		if _, ok := s.clubs[*p.CurrentClubID]; !ok {
			return dberr.ForeignKey("players_current_club_id_fkey")
		}
	}
	for _, other := range s.players {
		if other.ID != p.ID &&
			other.Forename == p.Forename &&
			other.Surname == p.Surname &&
			other.DateOfBirth.Equal(p.DateOfBirth) {
			return dberr.Unique("players_forename_surname_date_of_birth_key")
		}
	}
	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, playerID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, m := range r.s.members {
		if m.PlayerID == playerID {
			return dberr.ForeignKey("team_players_player_id_fkey")
		}
	}
	delete(r.s.players, playerID)
	return nil
}
