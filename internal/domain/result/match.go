package result

import (
	"fmt"

	"github.com/riskibarqy/tt-league/internal/domain/validation"
)

// Participant is a team registration resolved to the facts match checks
// need: the registration's team season and club, and the player's name.
type Participant struct {
	MemberID int64
	Name     string
	SeasonID int64
	ClubID   int64
}

// Sides describes the fixture a match belongs to.
type Sides struct {
	SeasonID   int64
	HomeClubID int64
	AwayClubID int64
}

// ValidateSingles checks the score, the games and both players.
func ValidateSingles(m SinglesMatch, sides Sides, home, away Participant) validation.Errors {
	errs := ValidateSets(m.HomeSets, m.AwaySets)
	errs.Merge(ValidateGames(m.Games))

	if m.HomePlayerID == 0 {
		errs.Add("home_player", "This field is required.")
	}
	if m.AwayPlayerID == 0 {
		errs.Add("away_player", "This field is required.")
	}
	if m.HomePlayerID != 0 && m.HomePlayerID == m.AwayPlayerID {
		errs.Add("away_player", "A player cannot play against themselves.")
	}

	if m.HomePlayerID != 0 {
		checkSide(errs, "home_player", "Home", "home", home, sides.SeasonID, sides.HomeClubID)
	}
	if m.AwayPlayerID != 0 {
		checkSide(errs, "away_player", "Away", "away", away, sides.SeasonID, sides.AwayClubID)
	}
	return errs
}

func checkSide(errs validation.Errors, field, label, side string, p Participant, seasonID, clubID int64) {
	if p.SeasonID != seasonID {
		errs.Add(field, fmt.Sprintf("%s player must be from the same season as the fixture.", label))
	}
	if p.ClubID != clubID {
		errs.Add(field, fmt.Sprintf("%s does not belong to the %s team's club.", p.Name, side))
	}
}

// ValidateDoubles checks the pairs, the score and the games. home and away
// hold the resolved participants for the match's player ids.
func ValidateDoubles(m DoublesMatch, sides Sides, home, away []Participant) validation.Errors {
	errs := ValidateSets(m.HomeSets, m.AwaySets)
	errs.Merge(ValidateGames(m.Games))

	homeIDs := DistinctPlayers(m.HomePlayerIDs)
	awayIDs := DistinctPlayers(m.AwayPlayerIDs)
	if len(homeIDs) != DoublesPairSize {
		errs.Add("home_players", "Exactly 2 home players must be selected.")
	}
	if len(awayIDs) != DoublesPairSize {
		errs.Add("away_players", "Exactly 2 away players must be selected.")
	}

	onHome := make(map[int64]bool, len(homeIDs))
	for _, id := range homeIDs {
		onHome[id] = true
	}
	for _, id := range awayIDs {
		if onHome[id] {
			errs.AddObject("A player cannot be on both teams.")
			break
		}
	}

	checkPair(errs, "Home", "home", home, sides.SeasonID, sides.HomeClubID)
	checkPair(errs, "Away", "away", away, sides.SeasonID, sides.AwayClubID)
	return errs
}

func checkPair(errs validation.Errors, label, side string, players []Participant, seasonID, clubID int64) {
	seasonReported := false
	for _, p := range players {
		if p.SeasonID != seasonID && !seasonReported {
			errs.AddObject(fmt.Sprintf("%s players must be from the same season as the fixture.", label))
			seasonReported = true
		}
		if p.ClubID != clubID {
			errs.AddObject(fmt.Sprintf("%s does not belong to the %s team's club.", p.Name, side))
		}
	}
}

// DistinctPlayers returns the ids without zero values or repeats.
func DistinctPlayers(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// DeriveSingles fills the match and game winners.
func DeriveSingles(m SinglesMatch) SinglesMatch {
	m.Winner = DeriveWinner(m.HomeSets, m.AwaySets)
	m.Games = DeriveGames(m.Games)
	return m
}

// DeriveDoubles fills the match and game winners and drops repeated players.
func DeriveDoubles(m DoublesMatch) DoublesMatch {
	m.HomePlayerIDs = DistinctPlayers(m.HomePlayerIDs)
	m.AwayPlayerIDs = DistinctPlayers(m.AwayPlayerIDs)
	m.Winner = DeriveWinner(m.HomeSets, m.AwaySets)
	m.Games = DeriveGames(m.Games)
	return m
}
