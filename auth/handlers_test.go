package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/dygo/dykit/auth/jwt"
	"github.com/dygo/dykit/auth/password"
)

func testConfig() jwt.Config {
	return jwt.Config{
		Secret:                 "handlers-test-secret",
		AccessTokenExpirySecs:  900,
		RefreshTokenExpirySecs: 3600,
	}
}

// fastHasher keeps argon2 cheap enough for tests.
func fastHasher() password.Hasher {
	return password.NewArgon2Hasher(
		password.WithMemory(8192),
		password.WithTime(1),
		password.WithParallelism(1),
	)
}

func newTestAPI(t *testing.T) (*gin.Engine, *InMemoryUserStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := NewInMemoryUserStore()
	handler := NewHandler(testConfig(), store, WithHasher(fastHasher()))
	router := gin.New()
	handler.RegisterRoutes(router)
	return router, store
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func registerUser(t *testing.T, router *gin.Engine, email string) AuthResponse {
	t.Helper()
	body := `{"email":"` + email + `","password":"SecurePass1","name":"Test User"}`
	rec := doRequest(t, router, http.MethodPost, "/auth/register", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("register: decode response: %v", err)
	}
	return resp
}

func TestRegisterThenMe(t *testing.T) {
	router, _ := newTestAPI(t)
	resp := registerUser(t, router, "alice@example.com")

	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("register must return both tokens")
	}
	if resp.TokenType != "Bearer" {
		t.Errorf("expected Bearer, got %s", resp.TokenType)
	}
	if resp.ExpiresIn != 900 {
		t.Errorf("expected expires_in 900, got %d", resp.ExpiresIn)
	}
	if resp.User.Email != "alice@example.com" || resp.User.Name != "Test User" {
		t.Errorf("unexpected user: %+v", resp.User)
	}
	if len(resp.User.Roles) != 1 || resp.User.Roles[0] != "user" {
		t.Errorf("expected default role, got %v", resp.User.Roles)
	}

	rec := doRequest(t, router, http.MethodGet, "/auth/me", "", resp.AccessToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var me AuthUserInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &me); err != nil {
		t.Fatalf("me: decode: %v", err)
	}
	if me.ID != resp.User.ID || me.Email != "alice@example.com" {
		t.Errorf("me mismatch: %+v", me)
	}
}

func TestLoginThenRefresh(t *testing.T) {
	router, _ := newTestAPI(t)
	registerUser(t, router, "bob@example.com")

	rec := doRequest(t, router, http.MethodPost, "/auth/login",
		`{"email":"bob@example.com","password":"SecurePass1"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var loginResp AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &loginResp); err != nil {
		t.Fatalf("login: decode: %v", err)
	}

	rec = doRequest(t, router, http.MethodPost, "/auth/refresh",
		`{"refresh_token":"`+loginResp.RefreshToken+`"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("refresh: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var refreshResp AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &refreshResp); err != nil {
		t.Fatalf("refresh: decode: %v", err)
	}
	if refreshResp.AccessToken == "" || refreshResp.RefreshToken == "" {
		t.Error("refresh must return a full pair")
	}
	if refreshResp.User.Email != "bob@example.com" {
		t.Errorf("unexpected user after refresh: %+v", refreshResp.User)
	}
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	router, _ := newTestAPI(t)
	resp := registerUser(t, router, "carol@example.com")

	rec := doRequest(t, router, http.MethodPost, "/auth/refresh",
		`{"refresh_token":"`+resp.AccessToken+`"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for access token in refresh, got %d", rec.Code)
	}
}

func TestRefresh_PicksUpRoleChanges(t *testing.T) {
	router, store := newTestAPI(t)
	resp := registerUser(t, router, "dave@example.com")

	if err := store.SetRoles(resp.User.ID, []string{"user", "admin"}); err != nil {
		t.Fatalf("set roles: %v", err)
	}

	rec := doRequest(t, router, http.MethodPost, "/auth/refresh",
		`{"refresh_token":"`+resp.RefreshToken+`"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("refresh: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var refreshResp AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &refreshResp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	claims, err := jwt.VerifyAccessToken(refreshResp.AccessToken, testConfig())
	if err != nil {
		t.Fatalf("verify rotated access token: %v", err)
	}
	if !claims.HasRole("admin") {
		t.Errorf("rotated token should carry fresh roles, got %v", claims.Roles)
	}
}

func TestRegister_WeakPassword(t *testing.T) {
	router, _ := newTestAPI(t)

	rec := doRequest(t, router, http.MethodPost, "/auth/register",
		`{"email":"weak@example.com","password":"weakpassword","name":"Weak"}`, "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "VALIDATION_ERROR") {
		t.Errorf("expected VALIDATION_ERROR code, got %s", rec.Body.String())
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	router, _ := newTestAPI(t)
	registerUser(t, router, "dup@example.com")

	rec := doRequest(t, router, http.MethodPost, "/auth/register",
		`{"email":"dup@example.com","password":"SecurePass1","name":"Other"}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Email already registered") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestLogin_EnumerationResistance(t *testing.T) {
	router, _ := newTestAPI(t)
	registerUser(t, router, "real@example.com")

	unknownEmail := doRequest(t, router, http.MethodPost, "/auth/login",
		`{"email":"ghost@example.com","password":"SecurePass1"}`, "")
	wrongPassword := doRequest(t, router, http.MethodPost, "/auth/login",
		`{"email":"real@example.com","password":"WrongPass99"}`, "")

	if unknownEmail.Code != http.StatusUnauthorized || wrongPassword.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", unknownEmail.Code, wrongPassword.Code)
	}
	if unknownEmail.Body.String() != wrongPassword.Body.String() {
		t.Errorf("login failures must be indistinguishable:\n%s\n%s",
			unknownEmail.Body.String(), wrongPassword.Body.String())
	}
}

func TestLogout(t *testing.T) {
	router, _ := newTestAPI(t)

	for i := 0; i < 2; i++ {
		rec := doRequest(t, router, http.MethodPost, "/auth/logout", "", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var msg MessageResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &msg); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if msg.Message != "Successfully logged out" {
			t.Errorf("unexpected message: %s", msg.Message)
		}
	}
}

func TestMe_TokenFailures(t *testing.T) {
	router, _ := newTestAPI(t)

	rec := doRequest(t, router, http.MethodGet, "/auth/me", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "MISSING_TOKEN") {
		t.Errorf("expected MISSING_TOKEN, got %s", rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodGet, "/auth/me", "", "not-a-token")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bad token, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "INVALID_TOKEN") {
		t.Errorf("expected INVALID_TOKEN, got %s", rec.Body.String())
	}
}

func TestMe_DeletedUser(t *testing.T) {
	router, store := newTestAPI(t)
	resp := registerUser(t, router, "gone@example.com")

	store.Delete(resp.User.ID)

	rec := doRequest(t, router, http.MethodGet, "/auth/me", "", resp.AccessToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for deleted user, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "NOT_FOUND") {
		t.Errorf("expected NOT_FOUND, got %s", rec.Body.String())
	}
}

func TestRegister_InvalidBody(t *testing.T) {
	router, _ := newTestAPI(t)

	rec := doRequest(t, router, http.MethodPost, "/auth/register", `{not json`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed JSON, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodPost, "/auth/register",
		`{"email":"not-an-email","password":"SecurePass1","name":"N"}`, "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for field violations, got %d: %s", rec.Code, rec.Body.String())
	}
}
