package usecase

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/tt-league/internal/domain/player"
	"github.com/riskibarqy/tt-league/internal/domain/team"
	"github.com/riskibarqy/tt-league/internal/domain/validation"
)

func newRosterService(t *testing.T, now time.Time) (*RosterService, memoryRepos) {
	t.Helper()

	repos := newMemoryRepos(t)
	service := NewRosterService(repos.league, repos.club, repos.venue, repos.player, repos.team, time.UTC, nopLogger())
	service.now = fixedClock(now)
	return service, repos
}

func clubID(id int64) *int64 { return &id }

func TestRosterService_SavePlayer(t *testing.T) {
	service, _ := newRosterService(t, time.Date(2025, 9, 5, 10, 0, 0, 0, time.UTC))
	ctx := t.Context()

	created, err := service.SavePlayer(ctx, player.Player{
		Forename:      "frank  ",
		Surname:       "o'neill",
		DateOfBirth:   time.Date(2001, 6, 1, 0, 0, 0, 0, time.UTC),
		CurrentClubID: clubID(30),
	})
	if err != nil {
		t.Fatalf("save player: %v", err)
	}
	if created.ID == 0 || created.Forename != "Frank" || created.Surname != "O'Neill" || created.ClubStatus != player.ClubStatusPending {
		t.Fatalf("unexpected player: %+v", created)
	}

	tests := []struct {
		name    string
		in      player.Player
		wantErr error
		field   string
	}{
		{
			name:    "future date of birth",
			in:      player.Player{Forename: "Gina", Surname: "Hart", DateOfBirth: time.Date(2025, 9, 6, 0, 0, 0, 0, time.UTC)},
			wantErr: ErrInvalidInput,
			field:   "date_of_birth",
		},
		{
			name:    "unknown club",
			in:      player.Player{Forename: "Gina", Surname: "Hart", DateOfBirth: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), CurrentClubID: clubID(999)},
			wantErr: ErrInvalidInput,
			field:   "current_club",
		},
		{
			name:    "same person twice",
			in:      player.Player{Forename: "Alice", Surname: "Smith", DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)},
			wantErr: ErrConflict,
		},
		{
			name:    "unknown player",
			in:      player.Player{ID: 999, Forename: "Gina", Surname: "Hart", DateOfBirth: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)},
			wantErr: ErrNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.SavePlayer(ctx, tc.in)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if tc.field == "" {
				return
			}
			verrs, ok := validation.From(err)
			if !ok || !verrs.Has(tc.field) {
				t.Fatalf("expected %s error, got %v", tc.field, err)
			}
		})
	}
}

func TestRosterService_DeleteProtected(t *testing.T) {
	service, _ := newRosterService(t, time.Date(2025, 9, 5, 10, 0, 0, 0, time.UTC))
	ctx := t.Context()

	if err := service.DeletePlayer(ctx, 50); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected registered player kept, got %v", err)
	}
	if err := service.DeletePlayer(ctx, 54); err != nil {
		t.Fatalf("delete unregistered player: %v", err)
	}
	if err := service.DeleteTeam(ctx, 60); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected team with members kept, got %v", err)
	}
	if err := service.DeleteTeam(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRosterService_SetClubStatus(t *testing.T) {
	service, _ := newRosterService(t, time.Date(2025, 9, 5, 10, 0, 0, 0, time.UTC))
	ctx := t.Context()

	if _, err := service.SetClubStatus(ctx, riversideAdmin, 54, player.ClubStatusConfirmed); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for player of another club, got %v", err)
	}
	if _, err := service.SetClubStatus(ctx, hillsideAdmin, 54, "maybe"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := service.SetClubStatus(ctx, member, 54, player.ClubStatusConfirmed); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden without a binding, got %v", err)
	}

	p, err := service.SetClubStatus(ctx, hillsideAdmin, 54, player.ClubStatusConfirmed)
	if err != nil {
		t.Fatalf("set club status: %v", err)
	}
	if p.ClubStatus != player.ClubStatusConfirmed {
		t.Fatalf("expected confirmed, got %q", p.ClubStatus)
	}

	players, err := service.ListClubPlayers(ctx, hillsideAdmin)
	if err != nil {
		t.Fatalf("list club players: %v", err)
	}
	if len(players) != 3 || players[0].Surname != "Black" {
		t.Fatalf("unexpected club players: %+v", players)
	}
}

func TestRosterService_SaveTeamDivisionLocked(t *testing.T) {
	tests := []struct {
		name    string
		now     time.Time
		wantErr bool
	}{
		{name: "before season start", now: time.Date(2025, 8, 20, 10, 0, 0, 0, time.UTC)},
		{name: "on season start", now: time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC), wantErr: true},
		{name: "after season start", now: time.Date(2025, 9, 5, 10, 0, 0, 0, time.UTC), wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			service, _ := newRosterService(t, tc.now)
			ctx := t.Context()

			existing, err := service.GetTeam(ctx, 60)
			if err != nil {
				t.Fatalf("get team: %v", err)
			}
			existing.DivisionID = 2

			_, err = service.SaveTeam(ctx, existing)
			if !tc.wantErr {
				if err != nil {
					t.Fatalf("save team: %v", err)
				}
				return
			}
			verrs, ok := validation.From(err)
			if !ok || !verrs.Has("division") {
				t.Fatalf("expected division error, got %v", err)
			}
		})
	}
}

func TestRosterService_SaveMemberEligibility(t *testing.T) {
	service, _ := newRosterService(t, time.Date(2025, 8, 20, 10, 0, 0, 0, time.UTC))
	ctx := t.Context()

	second, err := service.SaveTeam(ctx, team.Team{
		SeasonID:    10,
		DivisionID:  2,
		ClubID:      31,
		HomeVenueID: 41,
		Name:        "hillside b",
		HomeTime:    team.DefaultHomeTime,
	})
	if err != nil {
		t.Fatalf("save team: %v", err)
	}
	if second.Name != "Hillside B" || second.HomeDay != team.Monday {
		t.Fatalf("expected normalised team, got %+v", second)
	}

	tests := []struct {
		name     string
		playerID int64
		want     string
	}{
		{name: "pending player", playerID: 54, want: "Club Admin must confirm"},
		{name: "other club", playerID: 52, want: "not associated with the team club"},
		{name: "already registered", playerID: 51, want: "Bob Jones is already registered with another team in Winter 2025."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.SaveMember(ctx, team.Member{TeamID: second.ID, PlayerID: tc.playerID})
			verrs, ok := validation.From(err)
			if !ok {
				t.Fatalf("expected validation errors, got %v", err)
			}
			if !strings.Contains(strings.Join(verrs[validation.ObjectKey], " "), tc.want) {
				t.Fatalf("expected %q, got %v", tc.want, verrs)
			}
		})
	}

	if _, err := service.SaveMember(ctx, team.Member{TeamID: 999, PlayerID: 51}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected unknown team rejected, got %v", err)
	}

	if _, err := service.SetClubStatus(ctx, hillsideAdmin, 54, player.ClubStatusConfirmed); err != nil {
		t.Fatalf("confirm player: %v", err)
	}
	added, err := service.SaveMember(ctx, team.Member{TeamID: second.ID, PlayerID: 54})
	if err != nil {
		t.Fatalf("save member: %v", err)
	}

	roster, err := service.ListRoster(ctx, second.ID)
	if err != nil {
		t.Fatalf("list roster: %v", err)
	}
	if len(roster) != 1 || roster[0].Member.ID != added.ID || roster[0].Player.FullName() != "Eve Black" {
		t.Fatalf("unexpected roster: %+v", roster)
	}

	if err := service.DeleteMember(ctx, added.ID); err != nil {
		t.Fatalf("delete member: %v", err)
	}
	if err := service.DeleteMember(ctx, added.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRosterService_DeleteMemberWithMatches(t *testing.T) {
	repos := newMemoryRepos(t)
	roster := NewRosterService(repos.league, repos.club, repos.venue, repos.player, repos.team, time.UTC, nopLogger())
	results := NewResultService(repos.league, repos.club, repos.venue, repos.player, repos.team, repos.fixture, repos.result, nopLogger())
	ctx := t.Context()

	res, err := results.RecordResult(ctx, resultFor(70))
	if err != nil {
		t.Fatalf("record result: %v", err)
	}
	home := repos.memberIDs(t, 60)
	away := repos.memberIDs(t, 61)
	if _, err := results.RecordSingles(ctx, singlesFor(res.ID, home[50], away[51])); err != nil {
		t.Fatalf("record singles: %v", err)
	}

	if err := roster.DeleteMember(ctx, home[50]); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if err := roster.DeleteMember(ctx, home[52]); err != nil {
		t.Fatalf("delete member without matches: %v", err)
	}
}
