package player

import (
	"sort"
	"time"

	"github.com/riskibarqy/tt-league/internal/domain/validation"
	"github.com/riskibarqy/tt-league/internal/platform/textnorm"
)

// Normalize title-cases the name and defaults the club status.
func (p Player) Normalize() Player {
	p.Forename = textnorm.Title(p.Forename)
	p.Surname = textnorm.Title(p.Surname)
	if p.ClubStatus == "" {
		p.ClubStatus = ClubStatusPending
	}
	return p
}

// ValidateAt checks the player against the given date for date of birth.
func (p Player) ValidateAt(today time.Time) validation.Errors {
	errs := validation.New()
	if errs.Required("forename", p.Forename) {
		errs.MaxLength("forename", p.Forename, 50)
	}
	if errs.Required("surname", p.Surname) {
		errs.MaxLength("surname", p.Surname, 50)
	}
	switch {
	case p.DateOfBirth.IsZero():
		errs.Add("date_of_birth", "This field is required.")
	case p.DateOfBirth.After(today):
		errs.Add("date_of_birth", "Date of birth cannot be in the future.")
	}
	if !p.ClubStatus.Valid() {
		errs.Add("club_status", "Select a valid choice.")
	}
	return errs
}

func (p Player) Validate() validation.Errors {
	return p.ValidateAt(time.Now())
}

// Sort orders players by surname then forename.
func Sort(players []Player) {
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].Surname != players[j].Surname {
			return players[i].Surname < players[j].Surname
		}
		return players[i].Forename < players[j].Forename
	})
}
