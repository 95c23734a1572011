package fixture

import (
	"fmt"
	"sort"

	"github.com/riskibarqy/tt-league/internal/domain/league"
	"github.com/riskibarqy/tt-league/internal/domain/team"
	"github.com/riskibarqy/tt-league/internal/domain/validation"
)

const (
	msgSameTeams      = "Home and away teams must be different."
	msgDivisionTeams  = "Both teams must play in the fixture's division."
	msgSeasonTeams    = "Both teams must be entered in the fixture's season."
	msgWeekSeason     = "The week does not belong to the fixture's season."
	msgOutsideWeekFmt = "Fixture date must fall between %s and %s."
)

// Validate runs every scheduling check and reports all violations.
func Validate(f Fixture, week league.Week, home, away team.Team) validation.Errors {
	errs := validation.New()

	if !f.Status.Valid() {
		errs.Add("status", "Select a valid choice.")
	}
	if f.Datetime.IsZero() {
		errs.Add("datetime", "This field is required.")
	} else {
		if !league.ClockOf(f.Datetime).InMatchWindow() {
			errs.Add("datetime", league.MatchWindowMessage)
		}
		if !week.Contains(f.Datetime) {
			errs.Add("datetime", fmt.Sprintf(msgOutsideWeekFmt,
				league.DateOf(week.StartDate).Format("2 Jan 2006"),
				week.EndDate().Format("2 Jan 2006")))
		}
	}
	if week.SeasonID != f.SeasonID {
		errs.Add("week", msgWeekSeason)
	}
	if f.HomeTeamID == f.AwayTeamID {
		errs.Add("away_team", msgSameTeams)
	}
	if home.DivisionID != f.DivisionID || away.DivisionID != f.DivisionID {
		errs.Add("division", msgDivisionTeams)
	}
	if home.SeasonID != f.SeasonID || away.SeasonID != f.SeasonID {
		errs.Add("season", msgSeasonTeams)
	}
	return errs
}

// WithDefaultVenue fills an unset venue with the home team's home venue.
func WithDefaultVenue(f Fixture, home team.Team) Fixture {
	if f.VenueID == nil && home.HomeVenueID != 0 {
		venueID := home.HomeVenueID
		f.VenueID = &venueID
	}
	return f
}

// WeekFixtures is one week of a season with the fixtures scheduled in it.
type WeekFixtures struct {
	Week     league.Week
	Fixtures []Fixture
}

// GroupByWeek orders weeks by start date and attaches each fixture, sorted by
// datetime, to its week. Weeks without fixtures are kept.
func GroupByWeek(weeks []league.Week, fixtures []Fixture) []WeekFixtures {
	ordered := append([]league.Week(nil), weeks...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StartDate.Before(ordered[j].StartDate)
	})

	byWeek := make(map[int64][]Fixture, len(ordered))
	for _, f := range fixtures {
		byWeek[f.WeekID] = append(byWeek[f.WeekID], f)
	}

	out := make([]WeekFixtures, 0, len(ordered))
	for _, w := range ordered {
		items := byWeek[w.ID]
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Datetime.Equal(items[j].Datetime) {
				return items[i].ID < items[j].ID
			}
			return items[i].Datetime.Before(items[j].Datetime)
		})
		out = append(out, WeekFixtures{Week: w, Fixtures: items})
	}
	return out
}
