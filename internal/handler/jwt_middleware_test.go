package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, userID int, role string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  exp.Unix(),
	})
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("firmando token: %v", err)
	}
	return s
}

func echoUserID(w http.ResponseWriter, r *http.Request) {
	if UserIDFromContext(r.Context()) == 0 {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func TestJWTAuthValid(t *testing.T) {
	h := JWTAuth(testSecret)(http.HandlerFunc(echoUserID))

	req := httptest.NewRequest("GET", "/me/ratings", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, 7, "user", time.Now().Add(time.Hour)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperaba 200", rec.Code)
	}
}

func TestJWTAuthMissingHeader(t *testing.T) {
	h := JWTAuth(testSecret)(http.HandlerFunc(echoUserID))

	req := httptest.NewRequest("GET", "/me/ratings", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, esperaba 401", rec.Code)
	}
}

func TestJWTAuthWrongSecret(t *testing.T) {
	h := JWTAuth(testSecret)(http.HandlerFunc(echoUserID))

	req := httptest.NewRequest("GET", "/me/ratings", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "otro-secret", 7, "user", time.Now().Add(time.Hour)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, esperaba 401", rec.Code)
	}
}

func TestJWTAuthExpired(t *testing.T) {
	h := JWTAuth(testSecret)(http.HandlerFunc(echoUserID))

	req := httptest.NewRequest("GET", "/me/ratings", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, 7, "user", time.Now().Add(-time.Hour)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, esperaba 401", rec.Code)
	}
}

func TestOptionalJWT(t *testing.T) {
	h := OptionalJWT(testSecret)(http.HandlerFunc(echoUserID))

	// sin token pasa igual (el handler ve userId 0)
	req := httptest.NewRequest("GET", "/movies/1", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTeapot {
		t.Fatalf("sin token: status = %d, esperaba 418", rec.Code)
	}

	// con token válido el contexto trae el userId
	req = httptest.NewRequest("GET", "/movies/1", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, 7, "user", time.Now().Add(time.Hour)))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("con token: status = %d, esperaba 200", rec.Code)
	}

	// token inválido no corta el request, solo lo trata como anónimo
	req = httptest.NewRequest("GET", "/movies/1", nil)
	req.Header.Set("Authorization", "Bearer basura")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTeapot {
		t.Fatalf("token inválido: status = %d, esperaba 418", rec.Code)
	}
}

func TestAdminOnly(t *testing.T) {
	h := JWTAuth(testSecret)(AdminOnly()(http.HandlerFunc(echoUserID)))

	req := httptest.NewRequest("GET", "/users", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, 7, "user", time.Now().Add(time.Hour)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("user normal: status = %d, esperaba 403", rec.Code)
	}

	req = httptest.NewRequest("GET", "/users", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, 1, "admin", time.Now().Add(time.Hour)))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin: status = %d, esperaba 200", rec.Code)
	}
}
