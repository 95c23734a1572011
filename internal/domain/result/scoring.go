package result

import (
	"fmt"
	"sort"

	"github.com/riskibarqy/tt-league/internal/domain/validation"
)

// DeriveWinner picks the side with the higher score. Sets and games never
// draw; validation rejects equal scores before this runs.
func DeriveWinner(home, away int) Winner {
	if home > away {
		return WinnerHome
	}
	return WinnerAway
}

// DeriveResultWinner is DeriveWinner for fixture results, where equal scores
// are a draw.
func DeriveResultWinner(home, away int) Winner {
	if home == away {
		return WinnerDraw
	}
	return DeriveWinner(home, away)
}

// ValidateSets checks a best-of-five set score.
func ValidateSets(homeSets, awaySets int) validation.Errors {
	errs := validation.New()
	if homeSets < 0 {
		errs.Add("home_sets", "Ensure this value is greater than or equal to 0.")
	}
	if awaySets < 0 {
		errs.Add("away_sets", "Ensure this value is greater than or equal to 0.")
	}
	if homeSets == awaySets {
		errs.Add("home_sets", "A match cannot end in a draw.")
		return errs
	}
	exceeded := false
	if homeSets > TargetSets {
		errs.Add("home_sets", fmt.Sprintf("A side cannot have more than %d sets.", TargetSets))
		exceeded = true
	}
	if awaySets > TargetSets {
		errs.Add("away_sets", fmt.Sprintf("A side cannot have more than %d sets.", TargetSets))
		exceeded = true
	}
	if !exceeded && homeSets != TargetSets && awaySets != TargetSets {
		errs.AddObject(fmt.Sprintf("At least one side must win %d sets.", TargetSets))
	}
	return errs
}

// ValidateGamePoints checks an eleven point game with the deuce rule.
func ValidateGamePoints(homePoints, awayPoints int) validation.Errors {
	errs := validation.New()
	if homePoints < 0 || awayPoints < 0 {
		errs.AddObject("Points cannot be negative.")
		return errs
	}

	high, low := homePoints, awayPoints
	if low > high {
		high, low = low, high
	}
	margin := high - low

	if high < PointsToWin {
		errs.AddObject(fmt.Sprintf("The winner must score at least %d points.", PointsToWin))
	}
	if margin < MinMargin {
		errs.AddObject(fmt.Sprintf("A game must be won by at least %d points.", MinMargin))
	} else if high > PointsToWin && margin != MinMargin {
		errs.AddObject(fmt.Sprintf("A game that goes past %d points must be won by exactly %d points.", PointsToWin, MinMargin))
	}
	return errs
}

// ValidateGames checks every game of a match and their set numbers. Errors
// are reported under games[i].
func ValidateGames(games []Game) validation.Errors {
	errs := validation.New()
	if len(games) > BestOf {
		errs.Add("games", fmt.Sprintf("A match cannot have more than %d games.", BestOf))
	}

	seen := make(map[int]bool, len(games))
	for i, g := range games {
		key := fmt.Sprintf("games[%d]", i)
		if g.SetNum < 1 || g.SetNum > BestOf {
			errs.Add(key+".set_num", fmt.Sprintf("Set number must be between 1 and %d.", BestOf))
		} else if seen[g.SetNum] {
			errs.Add(key+".set_num", fmt.Sprintf("Set %d is recorded more than once.", g.SetNum))
		}
		seen[g.SetNum] = true
		errs.MergePrefixed(key, ValidateGamePoints(g.HomePoints, g.AwayPoints))
	}
	return errs
}

// DeriveGames fills game winners and orders games by set number.
func DeriveGames(games []Game) []Game {
	out := make([]Game, len(games))
	for i, g := range games {
		g.Winner = DeriveWinner(g.HomePoints, g.AwayPoints)
		out[i] = g
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SetNum < out[j].SetNum })
	return out
}
