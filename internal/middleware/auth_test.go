package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fieldserve/backoffice/internal/auth"
	"github.com/fieldserve/backoffice/internal/models"
	"github.com/fieldserve/backoffice/internal/store/memstore"
)

func newAuthRig(t *testing.T) (*gin.Engine, *auth.Tokens, *models.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := memstore.New()
	user := &models.User{Name: "Dana Ortiz", Email: "dana@example.com", PasswordHash: "x"}
	if err := st.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	tokens := auth.NewTokens("test-secret", time.Hour)

	r := gin.New()
	r.Use(AuthContext(tokens, st))
	r.GET("/whoami", func(c *gin.Context) {
		if u := auth.UserFrom(c.Request.Context()); u != nil {
			c.String(http.StatusOK, u.Email)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})

	return r, tokens, user
}

func whoami(t *testing.T, r *gin.Engine, header string) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	return w.Body.String()
}

func TestAuthContextResolvesUser(t *testing.T) {
	r, tokens, user := newAuthRig(t)

	token, err := tokens.Sign(user)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if got := whoami(t, r, "Bearer "+token); got != "dana@example.com" {
		t.Fatalf("whoami = %q", got)
	}
	// The scheme is matched case-insensitively.
	if got := whoami(t, r, "bearer "+token); got != "dana@example.com" {
		t.Fatalf("whoami = %q", got)
	}
}

func TestAuthContextStaysAnonymous(t *testing.T) {
	r, tokens, user := newAuthRig(t)

	stale, err := tokens.Sign(&models.User{ID: "deleted-user"})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	forged, err := auth.NewTokens("other-secret", time.Hour).Sign(user)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	cases := map[string]string{
		"no header":       "",
		"not bearer":      "Basic dXNlcjpwdw==",
		"malformed":       "Bearer",
		"garbage token":   "Bearer not-a-token",
		"wrong secret":    "Bearer " + forged,
		"deleted subject": "Bearer " + stale,
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			if got := whoami(t, r, header); got != "anonymous" {
				t.Fatalf("whoami = %q", got)
			}
		})
	}
}
