package fixture

import (
	"testing"
	"time"

	"github.com/riskibarqy/tt-league/internal/domain/league"
	"github.com/riskibarqy/tt-league/internal/domain/team"
)

var (
	week = league.Week{ID: 3, SeasonID: 1, Name: "Week 1", StartDate: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)}
	home = team.Team{ID: 10, SeasonID: 1, DivisionID: 2, ClubID: 5, HomeVenueID: 42}
	away = team.Team{ID: 11, SeasonID: 1, DivisionID: 2, ClubID: 6, HomeVenueID: 43}
)

func fixtureAt(t time.Time) Fixture {
	return Fixture{
		SeasonID:   1,
		DivisionID: 2,
		WeekID:     week.ID,
		HomeTeamID: home.ID,
		AwayTeamID: away.ID,
		Datetime:   t,
		Status:     StatusScheduled,
	}
}

func TestValidate_DateAndTimeWindow(t *testing.T) {
	tests := []struct {
		name   string
		at     time.Time
		wantOK bool
	}{
		{name: "one day past the week", at: time.Date(2025, 9, 8, 19, 0, 0, 0, time.UTC), wantOK: false},
		{name: "inside the week", at: time.Date(2025, 9, 6, 19, 0, 0, 0, time.UTC), wantOK: true},
		{name: "before window", at: time.Date(2025, 9, 1, 17, 59, 0, 0, time.UTC), wantOK: false},
		{name: "after window", at: time.Date(2025, 9, 1, 20, 1, 0, 0, time.UTC), wantOK: false},
		{name: "window start", at: time.Date(2025, 9, 1, 18, 0, 0, 0, time.UTC), wantOK: true},
		{name: "window end", at: time.Date(2025, 9, 7, 20, 0, 0, 0, time.UTC), wantOK: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := Validate(fixtureAt(tc.at), week, home, away)
			if tc.wantOK && !errs.Empty() {
				t.Fatalf("expected valid fixture, got %v", errs)
			}
			if !tc.wantOK && !errs.Has("datetime") {
				t.Fatalf("expected datetime error, got %v", errs)
			}
		})
	}
}

func TestValidate_AccumulatesTeamErrors(t *testing.T) {
	f := fixtureAt(time.Date(2025, 9, 9, 17, 0, 0, 0, time.UTC))
	f.AwayTeamID = f.HomeTeamID
	other := team.Team{ID: home.ID, SeasonID: 9, DivisionID: 7}

	errs := Validate(f, week, home, other)
	for _, field := range []string{"away_team", "division", "season"} {
		if !errs.Has(field) {
			t.Fatalf("expected error on %s, got %v", field, errs)
		}
	}
	if got := len(errs["datetime"]); got != 2 {
		t.Fatalf("expected both datetime errors, got %v", errs["datetime"])
	}
}

func TestWithDefaultVenue(t *testing.T) {
	f := WithDefaultVenue(fixtureAt(time.Date(2025, 9, 2, 19, 0, 0, 0, time.UTC)), home)
	if f.VenueID == nil || *f.VenueID != 42 {
		t.Fatalf("expected home venue 42, got %v", f.VenueID)
	}

	again := WithDefaultVenue(f, away)
	if *again.VenueID != 42 {
		t.Fatalf("expected explicit venue kept, got %d", *again.VenueID)
	}
}

func TestStatusClass(t *testing.T) {
	cases := map[string]string{
		"scheduled": "fixture-scheduled",
		"completed": "fixture-completed",
		"postponed": "fixture-postponed",
		"cancelled": "fixture-cancelled",
		"abandoned": "fixture-status-none",
		"":          "fixture-status-none",
	}
	for in, want := range cases {
		if got := StatusClass(in); got != want {
			t.Fatalf("StatusClass(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGroupByWeek(t *testing.T) {
	w2 := league.Week{ID: 4, SeasonID: 1, StartDate: week.StartDate.AddDate(0, 0, 7)}
	late := fixtureAt(time.Date(2025, 9, 2, 20, 0, 0, 0, time.UTC))
	late.ID = 1
	early := fixtureAt(time.Date(2025, 9, 2, 18, 30, 0, 0, time.UTC))
	early.ID = 2

	groups := GroupByWeek([]league.Week{w2, week}, []Fixture{late, early})
	if len(groups) != 2 || groups[0].Week.ID != week.ID {
		t.Fatalf("unexpected week order: %+v", groups)
	}
	if len(groups[0].Fixtures) != 2 || groups[0].Fixtures[0].ID != 2 {
		t.Fatalf("expected fixtures ordered by datetime, got %+v", groups[0].Fixtures)
	}
	if len(groups[1].Fixtures) != 0 {
		t.Fatalf("expected empty second week, got %+v", groups[1].Fixtures)
	}
}
