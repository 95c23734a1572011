// Package memory keeps every table in process memory. It enforces the same
// unique keys, protected references and cascades as the Postgres schema so
// it can stand in for it in development and tests.
package memory

import (
	"slices"
	"sort"
	"sync"

	"github.com/riskibarqy/tt-league/internal/domain/club"
	"github.com/riskibarqy/tt-league/internal/domain/fixture"
	"github.com/riskibarqy/tt-league/internal/domain/league"
	"github.com/riskibarqy/tt-league/internal/domain/player"
	"github.com/riskibarqy/tt-league/internal/domain/result"
	"github.com/riskibarqy/tt-league/internal/domain/team"
	"github.com/riskibarqy/tt-league/internal/domain/venue"
)

// Store holds all tables behind one lock so cross-table checks and cascades
// happen atomically.
type Store struct {
	mu  sync.RWMutex
	seq int64

	divisions map[int64]league.Division
	seasons   map[int64]league.Season
	weeks     map[int64]league.Week

	clubs     map[int64]club.Club
	clubInfos map[int64]club.Info
	admins    map[string]club.Admin
	reviews   map[int64]club.Review

	venues     map[int64]venue.Venue
	venueInfos map[int64]venue.Info
	links      map[venue.ClubVenue]struct{}

	players map[int64]player.Player
	teams   map[int64]team.Team
	members map[int64]team.Member

	fixtures map[int64]fixture.Fixture
	results  map[int64]result.FixtureResult
	singles  map[int64]result.SinglesMatch
	doubles  map[int64]result.DoublesMatch
}

func NewStore() *Store {
	return &Store{
		divisions:  make(map[int64]league.Division),
		seasons:    make(map[int64]league.Season),
		weeks:      make(map[int64]league.Week),
		clubs:      make(map[int64]club.Club),
		clubInfos:  make(map[int64]club.Info),
		admins:     make(map[string]club.Admin),
		reviews:    make(map[int64]club.Review),
		venues:     make(map[int64]venue.Venue),
		venueInfos: make(map[int64]venue.Info),
		links:      make(map[venue.ClubVenue]struct{}),
		players:    make(map[int64]player.Player),
		teams:      make(map[int64]team.Team),
		members:    make(map[int64]team.Member),
		fixtures:   make(map[int64]fixture.Fixture),
		results:    make(map[int64]result.FixtureResult),
		singles:    make(map[int64]result.SinglesMatch),
		doubles:    make(map[int64]result.DoublesMatch),
	}
}

// nextID must be called with the write lock held.
func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

// reserve keeps the sequence ahead of ids supplied by seed data.
func (s *Store) reserve(id int64) int64 {
	if id == 0 {
		return s.nextID()
	}
	if id > s.seq {
		s.seq = id
	}
	return id
}

// collect returns the map values that pass keep, ordered by less.
func collect[K comparable, V any](m map[K]V, keep func(V) bool, less func(a, b V) bool) []V {
	out := make([]V, 0, len(m))
	for _, v := range m {
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func idSet(ids []int64) map[int64]struct{} {
	out := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

func cloneSeason(s league.Season) league.Season {
	s.DivisionIDs = slices.Clone(s.DivisionIDs)
	return s
}

func cloneSingles(m result.SinglesMatch) result.SinglesMatch {
	m.Games = slices.Clone(m.Games)
	return m
}

func cloneDoubles(m result.DoublesMatch) result.DoublesMatch {
	m.HomePlayerIDs = slices.Clone(m.HomePlayerIDs)
	m.AwayPlayerIDs = slices.Clone(m.AwayPlayerIDs)
	m.Games = slices.Clone(m.Games)
	return m
}

func ptrID(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
