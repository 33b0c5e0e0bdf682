package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("test-secret")

func makeToken(t *testing.T, username string, isAdmin bool) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"isAdmin":  isAdmin,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(testSecret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func testEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Authenticate(testSecret))
	r.GET("/admin", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/login", RequireLogin(), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/users/:username", RequireSelfOrAdmin("username"), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func doRequest(r *gin.Engine, target, token string) int {
	req := httptest.NewRequest("GET", target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRequireLogin(t *testing.T) {
	r := testEngine()

	if code := doRequest(r, "/login", ""); code != http.StatusUnauthorized {
		t.Fatalf("anonymous should be 401, got %d", code)
	}
	if code := doRequest(r, "/login", makeToken(t, "alice", false)); code != http.StatusOK {
		t.Fatalf("logged-in should be 200, got %d", code)
	}
}

func TestRequireAdmin(t *testing.T) {
	r := testEngine()

	if code := doRequest(r, "/admin", makeToken(t, "alice", false)); code != http.StatusUnauthorized {
		t.Fatalf("non-admin should be 401, got %d", code)
	}
	if code := doRequest(r, "/admin", makeToken(t, "root", true)); code != http.StatusOK {
		t.Fatalf("admin should be 200, got %d", code)
	}
}

func TestRequireSelfOrAdmin(t *testing.T) {
	r := testEngine()

	if code := doRequest(r, "/users/alice", makeToken(t, "alice", false)); code != http.StatusOK {
		t.Fatalf("self should be 200, got %d", code)
	}
	if code := doRequest(r, "/users/alice", makeToken(t, "bob", false)); code != http.StatusUnauthorized {
		t.Fatalf("other non-admin should be 401, got %d", code)
	}
	if code := doRequest(r, "/users/alice", makeToken(t, "root", true)); code != http.StatusOK {
		t.Fatalf("admin should be 200, got %d", code)
	}
}

func TestAuthenticateIgnoresGarbageToken(t *testing.T) {
	r := testEngine()

	if code := doRequest(r, "/login", "not-a-token"); code != http.StatusUnauthorized {
		t.Fatalf("garbage token should stay anonymous, got %d", code)
	}
}

func TestAuthenticateRejectsWrongSecret(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "alice",
		"isAdmin":  true,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	r := testEngine()
	if code := doRequest(r, "/admin", signed); code != http.StatusUnauthorized {
		t.Fatalf("foreign-signed token should stay anonymous, got %d", code)
	}
}
