package result

import (
	"fmt"

	"github.com/riskibarqy/tt-league/internal/domain/validation"
)

func (r FixtureResult) Validate() validation.Errors {
	errs := validation.New()
	if r.HomeScore < 0 {
		errs.Add("home_score", "Ensure this value is greater than or equal to 0.")
	}
	if r.AwayScore < 0 {
		errs.Add("away_score", "Ensure this value is greater than or equal to 0.")
	}
	if r.HomeScore+r.AwayScore != TotalRubbers {
		errs.AddObject(fmt.Sprintf("Home and away scores must add up to %d.", TotalRubbers))
	}
	if !r.Status.Valid() {
		errs.Add("status", "Select a valid choice.")
	}
	return errs
}

// Derive fills the winner and the default status.
func (r FixtureResult) Derive() FixtureResult {
	if r.Status == "" {
		r.Status = StatusPlayed
	}
	r.Winner = DeriveResultWinner(r.HomeScore, r.AwayScore)
	return r
}

// Tally counts rubbers won by each side across the recorded matches.
func Tally(singles []SinglesMatch, doubles *DoublesMatch) (home, away int) {
	for _, m := range singles {
		if DeriveWinner(m.HomeSets, m.AwaySets) == WinnerHome {
			home++
		} else {
			away++
		}
	}
	if doubles != nil {
		if DeriveWinner(doubles.HomeSets, doubles.AwaySets) == WinnerHome {
			home++
		} else {
			away++
		}
	}
	return home, away
}

// ValidateAgainstMatches compares the score with the match roll-up once
// every rubber of a played fixture has been recorded.
func ValidateAgainstMatches(r FixtureResult, singles []SinglesMatch, doubles *DoublesMatch) validation.Errors {
	errs := validation.New()
	if r.Status != StatusPlayed || len(singles) != SinglesRubbers || doubles == nil {
		return errs
	}
	home, away := Tally(singles, doubles)
	if home != r.HomeScore || away != r.AwayScore {
		errs.AddObject(fmt.Sprintf("The score does not match the recorded matches (%d-%d).", home, away))
	}
	return errs
}

// ValidateNewSingles rejects a second singles match between the same two
// registrations within one result.
func ValidateNewSingles(m SinglesMatch, existing []SinglesMatch) validation.Errors {
	errs := validation.New()
	for _, other := range existing {
		if other.ID == m.ID {
			continue
		}
		if other.HomePlayerID == m.HomePlayerID && other.AwayPlayerID == m.AwayPlayerID {
			errs.AddObject("A singles match between these players has already been recorded.")
			break
		}
	}
	if len(existing) >= SinglesRubbers && m.ID == 0 {
		errs.AddObject(fmt.Sprintf("A fixture cannot have more than %d singles matches.", SinglesRubbers))
	}
	return errs
}
