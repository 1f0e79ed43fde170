package password

import (
	"fmt"
	"strings"
	"unicode"

	apperrors "github.com/dygo/dykit/errors"
)

// ValidateStrength checks a password against the default rules:
// at least 8 characters, with at least one uppercase letter, one lowercase
// letter, and one digit. It returns a VALIDATION_ERROR naming the first
// violated rule.
func ValidateStrength(password string) error {
	if len(password) < 8 {
		return apperrors.Validation("Password must be at least 8 characters long")
	}
	if !containsFunc(password, unicode.IsUpper) {
		return apperrors.Validation("Password must contain at least one uppercase letter")
	}
	if !containsFunc(password, unicode.IsLower) {
		return apperrors.Validation("Password must contain at least one lowercase letter")
	}
	if !containsFunc(password, isASCIIDigit) {
		return apperrors.Validation("Password must contain at least one digit")
	}
	return nil
}

// Validator checks password strength with configurable rules. All violated
// rules are reported together, joined with "; ".
type Validator struct {
	minLength        int
	requireUppercase bool
	requireLowercase bool
	requireDigit     bool
	requireSpecial   bool
}

// NewValidator returns a Validator with the default rules: minimum length 8,
// uppercase, lowercase, and digit required, special character not required.
func NewValidator() *Validator {
	return &Validator{
		minLength:        8,
		requireUppercase: true,
		requireLowercase: true,
		requireDigit:     true,
	}
}

// MinLength sets the minimum password length.
func (v *Validator) MinLength(length int) *Validator {
	v.minLength = length
	return v
}

// RequireUppercase toggles the uppercase letter requirement.
func (v *Validator) RequireUppercase(required bool) *Validator {
	v.requireUppercase = required
	return v
}

// RequireLowercase toggles the lowercase letter requirement.
func (v *Validator) RequireLowercase(required bool) *Validator {
	v.requireLowercase = required
	return v
}

// RequireDigit toggles the digit requirement.
func (v *Validator) RequireDigit(required bool) *Validator {
	v.requireDigit = required
	return v
}

// RequireSpecial toggles the non-alphanumeric character requirement.
func (v *Validator) RequireSpecial(required bool) *Validator {
	v.requireSpecial = required
	return v
}

// Validate checks the password against the configured rules.
func (v *Validator) Validate(password string) error {
	var violations []string

	if len(password) < v.minLength {
		violations = append(violations,
			fmt.Sprintf("Password must be at least %d characters long", v.minLength))
	}
	if v.requireUppercase && !containsFunc(password, unicode.IsUpper) {
		violations = append(violations, "Password must contain at least one uppercase letter")
	}
	if v.requireLowercase && !containsFunc(password, unicode.IsLower) {
		violations = append(violations, "Password must contain at least one lowercase letter")
	}
	if v.requireDigit && !containsFunc(password, isASCIIDigit) {
		violations = append(violations, "Password must contain at least one digit")
	}
	if v.requireSpecial && !containsFunc(password, isSpecial) {
		violations = append(violations, "Password must contain at least one special character")
	}

	if len(violations) == 0 {
		return nil
	}
	return apperrors.Validation(strings.Join(violations, "; "))
}

func containsFunc(s string, f func(rune) bool) bool {
	for _, r := range s {
		if f(r) {
			return true
		}
	}
	return false
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSpecial(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
