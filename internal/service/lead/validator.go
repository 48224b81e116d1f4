package lead

import (
	"fmt"
	"regexp"
	"strings"

	model "github.com/oakfield/london-property-agent/backend/internal/model/lead"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	// UK outward+inward grammar: one or two letters, a digit, an optional
	// letter or digit, optional whitespace, then a digit and two letters.
	postcodePattern = regexp.MustCompile(`^[A-Z]{1,2}[0-9][A-Z0-9]?\s*[0-9][A-Z]{2}$`)
)

// ValidEmail reports whether s has the conventional local@domain.tld
// shape. Syntactic only; no DNS or mailbox verification.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidUKPostcode reports whether s matches the UK postcode grammar after
// upper-casing and trimming, e.g. "SW1A 1AA" or "e14 5ab".
func ValidUKPostcode(s string) bool {
	return postcodePattern.MatchString(strings.ToUpper(strings.TrimSpace(s)))
}

// Validation classifies a lead's email and postcode. Reasons are ordered
// and human-readable, one per failing field.
type Validation struct {
	EmailValid    bool
	PostcodeValid bool
	Reasons       []string
}

// OK reports whether every checked field passed.
func (v Validation) OK() bool {
	return v.EmailValid && v.PostcodeValid
}

// Validate checks the two format-constrained fields. It never fails the
// request: the outcome only annotates the stored row and is returned to
// the caller as warnings.
func Validate(l model.Lead) Validation {
	v := Validation{
		EmailValid:    ValidEmail(l.Email),
		PostcodeValid: ValidUKPostcode(l.Postcode),
	}
	if !v.EmailValid {
		v.Reasons = append(v.Reasons, fmt.Sprintf("invalid email: %q", l.Email))
	}
	if !v.PostcodeValid {
		v.Reasons = append(v.Reasons, fmt.Sprintf("invalid postcode: %q (expected format like SW1A 1AA)", l.Postcode))
	}
	return v
}
