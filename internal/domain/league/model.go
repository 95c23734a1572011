package league

import (
	"time"
)

// Division is a playing tier; Rank orders divisions for display (1 = top).
type Division struct {
	ID   int64
	Name string
	Rank int
}

// Season groups divisions, weeks and teams for one playing year.
type Season struct {
	ID                 int64
	Name               string
	ShortName          string
	Slug               string
	DivisionIDs        []int64
	StartDate          time.Time
	EndDate            time.Time
	RegistrationOpens  time.Time
	RegistrationCloses time.Time
	IsVisible          bool
	IsCurrent          bool
}

func (s Season) HasDivision(divisionID int64) bool {
	for _, id := range s.DivisionIDs {
		if id == divisionID {
			return true
		}
	}
	return false
}

// Week is a seven day block of a season that fixtures are scheduled into.
type Week struct {
	ID        int64
	SeasonID  int64
	Name      string
	Details   string
	StartDate time.Time
}

func (w Week) EndDate() time.Time {
	return DateOf(w.StartDate).AddDate(0, 0, 6)
}

// Contains reports whether the calendar date of t lies in the week.
func (w Week) Contains(t time.Time) bool {
	d := DateOf(t)
	return !d.Before(DateOf(w.StartDate)) && !d.After(w.EndDate())
}

// DateOf drops the clock part of t, keeping the calendar date as seen in t's
// own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CurrentWeek picks the week whose span contains today.
func CurrentWeek(weeks []Week, today time.Time) (Week, bool) {
	for _, w := range weeks {
		if w.Contains(today) {
			return w, true
		}
	}
	return Week{}, false
}
