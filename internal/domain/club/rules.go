package club

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
	"github.com/riskibarqy/tt-league/internal/domain/validation"
)

const (
	MinReviewScore = 1
	MaxReviewScore = 5

	phoneRegion = "GB"
)

func (c Club) Validate() validation.Errors {
	errs := validation.New()
	if errs.Required("name", c.Name) {
		errs.MaxLength("name", c.Name, 100)
	}
	return errs
}

// Normalize trims free text, fills the default image and rewrites a
// parseable phone number in E.164 form.
func (i Info) Normalize() Info {
	i.Website = strings.TrimSpace(i.Website)
	i.Image = strings.TrimSpace(i.Image)
	if i.Image == "" {
		i.Image = DefaultImage
	}
	i.ContactName = strings.TrimSpace(i.ContactName)
	i.ContactEmail = strings.TrimSpace(i.ContactEmail)
	i.Description = strings.TrimSpace(i.Description)
	i.SessionInfo = strings.TrimSpace(i.SessionInfo)
	if formatted, ok := formatPhone(i.ContactPhone); ok {
		i.ContactPhone = formatted
	} else {
		i.ContactPhone = strings.TrimSpace(i.ContactPhone)
	}
	return i
}

func (i Info) Validate() validation.Errors {
	errs := validation.New()
	errs.MaxLength("website", i.Website, 200)
	errs.URL("website", i.Website)
	if errs.Required("contact_name", i.ContactName) {
		errs.MaxLength("contact_name", i.ContactName, 100)
	}
	if errs.Required("contact_email", i.ContactEmail) {
		errs.Email("contact_email", i.ContactEmail)
	}
	if errs.Required("contact_phone", i.ContactPhone) {
		if _, ok := formatPhone(i.ContactPhone); !ok {
			errs.Add("contact_phone", "Enter a valid phone number.")
		}
	}
	if errs.Required("description", i.Description) {
		errs.MaxLength("description", i.Description, 500)
	}
	if errs.Required("session_info", i.SessionInfo) {
		errs.MaxLength("session_info", i.SessionInfo, 500)
	}
	return errs
}

func (r Review) Validate() validation.Errors {
	errs := validation.New()
	errs.Between("score", r.Score, MinReviewScore, MaxReviewScore)
	if errs.Required("headline", r.Headline) {
		errs.MaxLength("headline", r.Headline, 100)
	}
	if errs.Required("review_text", r.ReviewText) {
		errs.MaxLength("review_text", r.ReviewText, 1000)
	}
	if strings.TrimSpace(r.UserID) == "" {
		errs.AddObject("A review must belong to a user.")
	}
	return errs
}

func formatPhone(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	num, err := phonenumbers.Parse(raw, phoneRegion)
	if err != nil {
		return "", false
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", false
	}
	return phonenumbers.Format(num, phonenumbers.E164), true
}
