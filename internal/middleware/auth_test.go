package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/meeplehub/api/pkg/jwt"
)

func newAuthTestService(t *testing.T) *jwt.Service {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	return jwt.NewTestService(key, "api.meeplehub.io", time.Hour)
}

func TestAuth_ValidToken_SetsContext(t *testing.T) {
	t.Parallel()

	svc := newAuthTestService(t)
	token, err := svc.Sign(jwt.Claims{UserID: "user:alice", Nickname: "meeple_alice"})
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	var gotUserID, gotNickname string
	handler := Auth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = GetUserID(r.Context())
		gotNickname = GetNickname(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/board/list", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotUserID != "user:alice" {
		t.Errorf("expected user id user:alice, got %s", gotUserID)
	}
	if gotNickname != "meeple_alice" {
		t.Errorf("expected nickname meeple_alice, got %s", gotNickname)
	}
}

func TestAuth_MissingHeader_Unauthorized(t *testing.T) {
	t.Parallel()

	svc := newAuthTestService(t)
	handler := Auth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/board/list", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_MalformedHeader_Unauthorized(t *testing.T) {
	t.Parallel()

	svc := newAuthTestService(t)
	handler := Auth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/board/list", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}
