package errors

import (
	stderrors "errors"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestConstructors_StatusAndCode(t *testing.T) {
	cases := []struct {
		err    *AppError
		status int
		code   ErrorCode
	}{
		{NotFound("User not found"), http.StatusNotFound, ErrCodeNotFound},
		{BadRequest("Email already registered"), http.StatusBadRequest, ErrCodeBadRequest},
		{Unauthorized(), http.StatusUnauthorized, ErrCodeUnauthorized},
		{MissingToken(), http.StatusUnauthorized, ErrCodeMissingToken},
		{InvalidToken(), http.StatusUnauthorized, ErrCodeInvalidToken},
		{Forbidden("Role 'admin' required"), http.StatusForbidden, ErrCodeForbidden},
		{Validation("password: too short"), http.StatusUnprocessableEntity, ErrCodeValidation},
		{Internal("boom"), http.StatusInternalServerError, ErrCodeInternal},
		{Database(stderrors.New("conn refused")), http.StatusInternalServerError, ErrCodeDatabase},
		{AuthConfig("Auth not configured"), http.StatusInternalServerError, ErrCodeAuth},
	}

	for _, tc := range cases {
		if tc.err.HTTPStatus != tc.status {
			t.Errorf("%s: expected status %d, got %d", tc.code, tc.status, tc.err.HTTPStatus)
		}
		if tc.err.Code != tc.code {
			t.Errorf("expected code %s, got %s", tc.code, tc.err.Code)
		}
	}
}

func TestToBody_OmitsEmptyDetails(t *testing.T) {
	b, err := json.Marshal(NotFound("User not found").ToBody())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "details") {
		t.Fatalf("expected no details key, got %s", b)
	}
}

func TestToBody_NeverLeaksCause(t *testing.T) {
	appErr := Database(stderrors.New("password for db user leaked"))
	b, err := json.Marshal(appErr.ToBody())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "leaked") {
		t.Fatalf("cause must not be serialized, got %s", b)
	}
}

func TestWithDetails(t *testing.T) {
	appErr := Validation("invalid").WithDetails("email: must be a valid email address")
	body := appErr.ToBody()
	if body.Details == "" {
		t.Fatal("expected details to be set")
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("underlying")
	appErr := Internal("wrapped").WithCause(cause)
	if !stderrors.Is(appErr, cause) {
		t.Fatal("expected errors.Is to find the cause")
	}

	var target *AppError
	if !stderrors.As(error(appErr), &target) {
		t.Fatal("expected errors.As to match *AppError")
	}
}

func TestAsAppError(t *testing.T) {
	if _, ok := AsAppError(stderrors.New("plain")); ok {
		t.Fatal("plain error should not convert")
	}
	appErr, ok := AsAppError(Unauthorized())
	if !ok || appErr.Code != ErrCodeUnauthorized {
		t.Fatalf("expected UNAUTHORIZED AppError, got %v", appErr)
	}
}
