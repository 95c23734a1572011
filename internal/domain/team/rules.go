package team

import (
	"fmt"
	"time"

	"github.com/riskibarqy/tt-league/internal/domain/league"
	"github.com/riskibarqy/tt-league/internal/domain/player"
	"github.com/riskibarqy/tt-league/internal/domain/validation"
	"github.com/riskibarqy/tt-league/internal/platform/textnorm"
)

const (
	msgDivisionLocked  = "Division cannot be changed after the season has started."
	msgNotConfirmed    = "Club Admin must confirm that the player is associated with their club before proceeding."
	msgNotInTeamClub   = "The player's profile states that they are not associated with the team club."
	msgAlreadyInSeason = "%s is already registered with another team in %s."
)

// Normalize title-cases the team name and fills the default home day.
func (t Team) Normalize() Team {
	t.Name = textnorm.Title(t.Name)
	if t.HomeDay == "" {
		t.HomeDay = Monday
	}
	return t
}

// Validate checks the team on its own and against its season.
func Validate(t Team, season league.Season) validation.Errors {
	errs := validation.New()
	if errs.Required("team_name", t.Name) {
		errs.MaxLength("team_name", t.Name, 30)
	}
	if !t.HomeDay.Valid() {
		errs.Add("home_day", "Select a valid choice.")
	}
	if !t.HomeTime.InMatchWindow() {
		errs.Add("home_time", league.MatchWindowMessage)
	}
	if t.SeasonID != season.ID {
		errs.Add("season", "Select a valid season.")
	}
	if !season.HasDivision(t.DivisionID) {
		errs.Add("division", "The division is not part of the selected season.")
	}
	if t.ClubID == 0 {
		errs.Add("club", "This field is required.")
	}
	if t.HomeVenueID == 0 {
		errs.Add("home_venue", "This field is required.")
	}
	return errs
}

// ValidateDivisionChange rejects moving a team to another division once its
// season has started.
func ValidateDivisionChange(existing, updated Team, season league.Season, today time.Time) validation.Errors {
	errs := validation.New()
	if existing.DivisionID == updated.DivisionID {
		return errs
	}
	if !league.DateOf(season.StartDate).After(league.DateOf(today)) {
		errs.Add("division", msgDivisionLocked)
	}
	return errs
}

// ValidateMember checks roster eligibility. registered holds the player's
// existing registrations in the team's season.
func ValidateMember(m Member, p player.Player, t Team, season league.Season, registered []Member) validation.Errors {
	errs := validation.New()
	if p.ClubStatus != player.ClubStatusConfirmed {
		errs.AddObject(msgNotConfirmed)
	}
	if !p.InClub(t.ClubID) {
		errs.AddObject(msgNotInTeamClub)
	}
	for _, other := range registered {
		if other.ID != m.ID {
			errs.AddObject(fmt.Sprintf(msgAlreadyInSeason, p.FullName(), season.Name))
			break
		}
	}
	return errs
}
