package result

import (
	"testing"

	"github.com/riskibarqy/tt-league/internal/domain/validation"
)

var sides = Sides{SeasonID: 1, HomeClubID: 10, AwayClubID: 20}

func TestValidateSingles(t *testing.T) {
	home := Participant{MemberID: 1, Name: "Alice Smith", SeasonID: 1, ClubID: 10}
	away := Participant{MemberID: 2, Name: "Bob Jones", SeasonID: 1, ClubID: 20}
	m := SinglesMatch{HomePlayerID: 1, AwayPlayerID: 2, HomeSets: 3, AwaySets: 1}

	if errs := ValidateSingles(m, sides, home, away); !errs.Empty() {
		t.Fatalf("expected valid singles, got %v", errs)
	}

	// A reserve from the same club on another team is allowed.
	reserve := Participant{MemberID: 3, Name: "Cara Reed", SeasonID: 1, ClubID: 10}
	m.HomePlayerID = 3
	if errs := ValidateSingles(m, sides, reserve, away); !errs.Empty() {
		t.Fatalf("expected reserve allowed, got %v", errs)
	}

	wrongClub := Participant{MemberID: 4, Name: "Dan Wood", SeasonID: 2, ClubID: 99}
	m.HomePlayerID = 4
	errs := ValidateSingles(m, sides, wrongClub, away)
	got := errs["home_player"]
	if len(got) != 2 {
		t.Fatalf("expected season and club errors, got %v", errs)
	}
	if got[1] != "Dan Wood does not belong to the home team's club." {
		t.Fatalf("unexpected club message: %s", got[1])
	}
}

func TestValidateSingles_SamePlayer(t *testing.T) {
	p := Participant{MemberID: 1, Name: "Alice Smith", SeasonID: 1, ClubID: 10}
	errs := ValidateSingles(SinglesMatch{HomePlayerID: 1, AwayPlayerID: 1, HomeSets: 3}, sides, p, p)
	if !errs.Has("away_player") {
		t.Fatalf("expected away_player error, got %v", errs)
	}
}

func TestValidateDoubles_CollectsAllErrors(t *testing.T) {
	m := DoublesMatch{
		HomePlayerIDs: []int64{1, 2},
		AwayPlayerIDs: []int64{2, 3, 4},
		HomeSets:      3,
		AwaySets:      0,
	}
	home := []Participant{
		{MemberID: 1, Name: "Alice Smith", SeasonID: 1, ClubID: 10},
		{MemberID: 2, Name: "Bob Jones", SeasonID: 2, ClubID: 10},
	}
	away := []Participant{
		{MemberID: 2, Name: "Bob Jones", SeasonID: 2, ClubID: 10},
		{MemberID: 3, Name: "Cara Reed", SeasonID: 1, ClubID: 20},
		{MemberID: 4, Name: "Dan Wood", SeasonID: 1, ClubID: 20},
	}

	errs := ValidateDoubles(m, sides, home, away)
	if !errs.Has("away_players") || errs.Has("home_players") {
		t.Fatalf("unexpected count errors: %v", errs)
	}

	want := map[string]bool{
		"A player cannot be on both teams.":                         false,
		"Home players must be from the same season as the fixture.": false,
		"Away players must be from the same season as the fixture.": false,
		"Bob Jones does not belong to the away team's club.":        false,
	}
	for _, msg := range errs[validation.ObjectKey] {
		if _, ok := want[msg]; ok {
			want[msg] = true
		}
	}
	for msg, seen := range want {
		if !seen {
			t.Fatalf("missing error %q in %v", msg, errs)
		}
	}
}

func TestDeriveDoubles(t *testing.T) {
	m := DeriveDoubles(DoublesMatch{
		HomePlayerIDs: []int64{1, 1, 2},
		AwayPlayerIDs: []int64{3, 4},
		HomeSets:      1,
		AwaySets:      3,
		Games:         []Game{{SetNum: 2, HomePoints: 5, AwayPoints: 11}, {SetNum: 1, HomePoints: 11, AwayPoints: 9}},
	})
	if len(m.HomePlayerIDs) != 2 || m.Winner != WinnerAway {
		t.Fatalf("unexpected derived doubles: %+v", m)
	}
	if m.Games[0].SetNum != 1 || m.Games[0].Winner != WinnerHome || m.Games[1].Winner != WinnerAway {
		t.Fatalf("unexpected derived games: %+v", m.Games)
	}
}

func TestValidateNewSingles(t *testing.T) {
	existing := []SinglesMatch{{ID: 7, HomePlayerID: 1, AwayPlayerID: 2}}
	if errs := ValidateNewSingles(SinglesMatch{HomePlayerID: 1, AwayPlayerID: 2}, existing); errs.Empty() {
		t.Fatalf("expected duplicate pairing error")
	}
	if errs := ValidateNewSingles(SinglesMatch{HomePlayerID: 1, AwayPlayerID: 3}, existing); !errs.Empty() {
		t.Fatalf("expected new pairing allowed, got %v", errs)
	}
}
