package password

import (
	"strings"
	"testing"

	apperrors "github.com/dygo/dykit/errors"
)

func TestValidateStrength(t *testing.T) {
	cases := []struct {
		password string
		valid    bool
	}{
		{"SecurePass1", true},
		{"StrongPass1", true},
		{"short", false},
		{"nouppercase1", false},
		{"NOLOWERCASE1", false},
		{"NoDigitsHere", false},
		{"", false},
	}

	for _, tc := range cases {
		err := ValidateStrength(tc.password)
		if tc.valid && err != nil {
			t.Errorf("%q: expected valid, got %v", tc.password, err)
		}
		if !tc.valid && err == nil {
			t.Errorf("%q: expected validation failure", tc.password)
		}
	}
}

func TestValidateStrength_ErrorKind(t *testing.T) {
	err := ValidateStrength("weak")
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != apperrors.ErrCodeValidation {
		t.Errorf("expected VALIDATION_ERROR, got %s", appErr.Code)
	}
	if appErr.HTTPStatus != 422 {
		t.Errorf("expected 422, got %d", appErr.HTTPStatus)
	}
}

func TestValidator_CustomRules(t *testing.T) {
	v := NewValidator().MinLength(12).RequireSpecial(true)

	if err := v.Validate("SecurePass1!"); err != nil {
		t.Errorf("expected valid, got %v", err)
	}
	if err := v.Validate("SecurePass1"); err == nil {
		t.Error("expected failure: no special character and too short")
	}
}

func TestValidator_JoinsAllViolations(t *testing.T) {
	err := NewValidator().Validate("x")
	if err == nil {
		t.Fatal("expected validation failure")
	}
	appErr, _ := apperrors.AsAppError(err)
	parts := strings.Split(appErr.Message, "; ")
	// Too short, no uppercase, no digit.
	if len(parts) != 3 {
		t.Fatalf("expected 3 violations joined with '; ', got %d: %s", len(parts), appErr.Message)
	}
}

func TestValidator_TogglesOff(t *testing.T) {
	v := NewValidator().
		RequireUppercase(false).
		RequireLowercase(false).
		RequireDigit(false)

	if err := v.Validate("aaaaaaaa"); err != nil {
		t.Errorf("only length should be checked, got %v", err)
	}
}
