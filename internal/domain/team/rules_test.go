package team

import (
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/tt-league/internal/domain/league"
	"github.com/riskibarqy/tt-league/internal/domain/player"
	"github.com/riskibarqy/tt-league/internal/domain/validation"
)

var season = league.Season{
	ID:          1,
	Name:        "Winter 2025",
	DivisionIDs: []int64{10, 11},
	StartDate:   time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
}

func validTeam() Team {
	return Team{
		ID:          5,
		SeasonID:    1,
		DivisionID:  10,
		ClubID:      3,
		HomeVenueID: 7,
		Name:        "the arrows",
		HomeDay:     Tuesday,
		HomeTime:    DefaultHomeTime,
	}
}

func TestTeamNormalize_TitleCaseStable(t *testing.T) {
	got := validTeam().Normalize()
	if got.Name != "The Arrows" {
		t.Fatalf("expected The Arrows, got %q", got.Name)
	}
	if again := got.Normalize(); again.Name != got.Name {
		t.Fatalf("title case not stable: %q", again.Name)
	}
	if (Team{}).Normalize().HomeDay != Monday {
		t.Fatalf("expected default home day monday")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(tm *Team)
		wantField string
	}{
		{name: "valid", mutate: func(_ *Team) {}},
		{name: "weekend home day", mutate: func(tm *Team) { tm.HomeDay = "saturday" }, wantField: "home_day"},
		{name: "too early", mutate: func(tm *Team) { tm.HomeTime = league.TimeOfDay{Hour: 17, Minute: 59} }, wantField: "home_time"},
		{name: "too late", mutate: func(tm *Team) { tm.HomeTime = league.TimeOfDay{Hour: 20, Minute: 1} }, wantField: "home_time"},
		{name: "division outside season", mutate: func(tm *Team) { tm.DivisionID = 99 }, wantField: "division"},
		{name: "long name", mutate: func(tm *Team) { tm.Name = strings.Repeat("a", 31) }, wantField: "team_name"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tm := validTeam()
			tc.mutate(&tm)

			errs := Validate(tm.Normalize(), season)
			if tc.wantField == "" {
				if !errs.Empty() {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}
			if !errs.Has(tc.wantField) {
				t.Fatalf("expected error on %s, got %v", tc.wantField, errs)
			}
		})
	}
}

func TestValidateDivisionChange(t *testing.T) {
	existing := validTeam()
	moved := existing
	moved.DivisionID = 11

	before := time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC)
	if errs := ValidateDivisionChange(existing, moved, season, before); !errs.Empty() {
		t.Fatalf("expected change allowed before start, got %v", errs)
	}

	onStart := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)
	errs := ValidateDivisionChange(existing, moved, season, onStart)
	if got := errs["division"]; len(got) != 1 || got[0] != msgDivisionLocked {
		t.Fatalf("expected locked division error, got %v", errs)
	}

	if errs := ValidateDivisionChange(existing, existing, season, onStart); !errs.Empty() {
		t.Fatalf("expected unchanged division allowed, got %v", errs)
	}
}

func TestValidateMember_ConfirmationGate(t *testing.T) {
	clubID := int64(3)
	p := player.Player{ID: 9, Forename: "Alice", Surname: "Smith", CurrentClubID: &clubID, ClubStatus: player.ClubStatusPending}
	tm := validTeam()
	m := Member{PlayerID: p.ID, TeamID: tm.ID}

	errs := ValidateMember(m, p, tm, season, nil)
	if got := errs[validation.ObjectKey]; len(got) != 1 || got[0] != msgNotConfirmed {
		t.Fatalf("expected confirmation error only, got %v", errs)
	}

	p.ClubStatus = player.ClubStatusConfirmed
	if errs := ValidateMember(m, p, tm, season, nil); !errs.Empty() {
		t.Fatalf("expected eligible player, got %v", errs)
	}
}

func TestValidateMember_ClubAndSeasonExclusivity(t *testing.T) {
	otherClub := int64(4)
	p := player.Player{ID: 9, Forename: "Alice", Surname: "Smith", CurrentClubID: &otherClub, ClubStatus: player.ClubStatusConfirmed}
	tm := validTeam()
	m := Member{ID: 0, PlayerID: p.ID, TeamID: tm.ID}

	errs := ValidateMember(m, p, tm, season, []Member{{ID: 40, PlayerID: p.ID, TeamID: 6}})
	msgs := errs[validation.ObjectKey]
	if len(msgs) != 2 {
		t.Fatalf("expected two object errors, got %v", errs)
	}
	if msgs[0] != msgNotInTeamClub {
		t.Fatalf("unexpected first error: %s", msgs[0])
	}
	if msgs[1] != "Alice Smith is already registered with another team in Winter 2025." {
		t.Fatalf("unexpected second error: %s", msgs[1])
	}

	// Updating the existing registration does not conflict with itself.
	p.CurrentClubID = &tm.ClubID
	self := Member{ID: 40, PlayerID: p.ID, TeamID: tm.ID}
	if errs := ValidateMember(self, p, tm, season, []Member{{ID: 40, PlayerID: p.ID, TeamID: 6}}); !errs.Empty() {
		t.Fatalf("expected no errors updating own registration, got %v", errs)
	}
}
