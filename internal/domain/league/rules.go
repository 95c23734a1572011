package league

import (
	"errors"

	"github.com/riskibarqy/tt-league/internal/domain/validation"
)

var ErrDivisionInUse = errors.New("This division cannot be deleted because it is linked to season data.")

func (d Division) Validate() validation.Errors {
	errs := validation.New()
	if errs.Required("name", d.Name) {
		errs.MaxLength("name", d.Name, 50)
	}
	if d.Rank < 1 {
		errs.Add("rank", "Ensure this value is greater than or equal to 1.")
	}
	return errs
}

func (s Season) Validate() validation.Errors {
	errs := validation.New()
	if errs.Required("name", s.Name) {
		errs.MaxLength("name", s.Name, 100)
	}
	if errs.Required("short_name", s.ShortName) {
		errs.MaxLength("short_name", s.ShortName, 20)
	}
	if errs.Required("slug", s.Slug) && errs.MaxLength("slug", s.Slug, 20) {
		errs.Slug("slug", s.Slug)
	}
	if len(s.DivisionIDs) == 0 {
		errs.Add("divisions", "At least one division is required.")
	}

	if s.StartDate.IsZero() {
		errs.Add("start_date", "This field is required.")
	}
	if s.EndDate.IsZero() {
		errs.Add("end_date", "This field is required.")
	}
	if s.RegistrationOpens.IsZero() {
		errs.Add("registration_opens", "This field is required.")
	}
	if s.RegistrationCloses.IsZero() {
		errs.Add("registration_closes", "This field is required.")
	}

	if !s.StartDate.IsZero() && !s.EndDate.IsZero() && !DateOf(s.StartDate).Before(DateOf(s.EndDate)) {
		errs.Add("start_date", "Start date must be earlier than end date.")
	}
	if !s.RegistrationOpens.IsZero() && !s.RegistrationCloses.IsZero() && !s.RegistrationOpens.Before(s.RegistrationCloses) {
		errs.Add("registration_opens", "Registration opens must be before registration closes.")
	}
	if !s.RegistrationCloses.IsZero() && !s.StartDate.IsZero() && DateOf(s.RegistrationCloses).After(DateOf(s.StartDate)) {
		errs.Add("registration_closes", "Registration closes must be before the season start date.")
	}

	return errs
}

// ValidateWeek checks a week against its season.
func ValidateWeek(w Week, season Season) validation.Errors {
	errs := validation.New()
	if errs.Required("name", w.Name) {
		errs.MaxLength("name", w.Name, 50)
	}
	errs.MaxLength("details", w.Details, 100)
	if w.StartDate.IsZero() {
		errs.Add("start_date", "This field is required.")
	}
	if w.SeasonID != season.ID {
		errs.Add("season", "Select a valid season.")
	}
	return errs
}
