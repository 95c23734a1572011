package validation

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var (
	formatValidatorOnce sync.Once
	formatValidator     *validator.Validate
)

func formats() *validator.Validate {
	formatValidatorOnce.Do(func() {
		formatValidator = validator.New()
	})
	return formatValidator
}

// Required reports a blank value.
func (e Errors) Required(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		e.Add(field, "This field is required.")
		return false
	}
	return true
}

func (e Errors) MaxLength(field, value string, limit int) bool {
	if n := utf8.RuneCountInString(value); n > limit {
		e.Add(field, fmt.Sprintf("Ensure this value has at most %d characters (it has %d).", limit, n))
		return false
	}
	return true
}

func (e Errors) Between(field string, value, lo, hi int) bool {
	if value < lo {
		e.Add(field, fmt.Sprintf("Ensure this value is greater than or equal to %d.", lo))
		return false
	}
	if value > hi {
		e.Add(field, fmt.Sprintf("Ensure this value is less than or equal to %d.", hi))
		return false
	}
	return true
}

func (e Errors) Email(field, value string) bool {
	if value == "" {
		return true
	}
	if err := formats().Var(value, "email"); err != nil {
		e.Add(field, "Enter a valid email address.")
		return false
	}
	return true
}

func (e Errors) URL(field, value string) bool {
	if value == "" {
		return true
	}
	if err := formats().Var(value, "http_url"); err != nil {
		e.Add(field, "Enter a valid URL.")
		return false
	}
	return true
}

func (e Errors) Slug(field, value string) bool {
	if value == "" {
		return true
	}
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			e.Add(field, "Enter a valid slug consisting of letters, numbers, underscores or hyphens.")
			return false
		}
	}
	return true
}
