package graph

import (
	"context"
	"errors"
	"testing"

	"github.com/fieldserve/backoffice/internal/auth"
	"github.com/fieldserve/backoffice/internal/store"
)

func TestCreateUserAndLogin(t *testing.T) {
	s, st := newTestSchema(t)
	ctx := context.Background()

	data := exec(t, s, ctx, `
		mutation {
			createUser(name: "Dana Ortiz", email: "dana@example.com", password: "hunter22") {
				id
				name
				email
			}
		}`, nil)
	created := data["createUser"].(map[string]interface{})
	if created["email"] != "dana@example.com" {
		t.Fatalf("createUser = %v", created)
	}

	// The stored credential is a hash, never the password.
	user, err := st.UserByEmail(ctx, "dana@example.com")
	if err != nil {
		t.Fatalf("UserByEmail: %v", err)
	}
	if user.PasswordHash == "hunter22" || user.PasswordHash == "" {
		t.Fatalf("bad stored credential: %q", user.PasswordHash)
	}

	data = exec(t, s, ctx, `
		mutation { login(email: "dana@example.com", password: "hunter22") { value } }`, nil)
	token := data["login"].(map[string]interface{})["value"].(string)
	if token == "" {
		t.Fatal("empty token")
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != user.ID || claims.Email != "dana@example.com" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestCreateUserValidation(t *testing.T) {
	s, st := newTestSchema(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		query string
	}{
		{"missing name", `mutation { createUser(email: "dana@example.com", password: "hunter22") { id } }`},
		{"short name", `mutation { createUser(name: "Bo", email: "dana@example.com", password: "hunter22") { id } }`},
		{"short email", `mutation { createUser(name: "Dana Ortiz", email: "a@b.c", password: "hunter22") { id } }`},
		{"empty password", `mutation { createUser(name: "Dana Ortiz", email: "dana@example.com", password: "") { id } }`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ext := execErr(t, s, ctx, tc.query, nil)
			if ext["code"] != "BAD_USER_INPUT" {
				t.Fatalf("code = %v", ext["code"])
			}
			// The rejected arguments must not echo the password.
			if invalidArgs, ok := ext["invalidArgs"].(map[string]interface{}); ok {
				if _, leaked := invalidArgs["password"]; leaked {
					t.Fatalf("password echoed in invalidArgs: %v", invalidArgs)
				}
			}
		})
	}

	// Rejected input never reaches the store.
	if _, err := st.UserByEmail(ctx, "dana@example.com"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("rejected user persisted: %v", err)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s, _ := newTestSchema(t)
	ctx := context.Background()

	exec(t, s, ctx, `
		mutation { createUser(name: "Dana Ortiz", email: "dana@example.com", password: "hunter22") { id } }`, nil)

	_, ext := execErr(t, s, ctx, `
		mutation { createUser(name: "Dana Clone", email: "dana@example.com", password: "other-pw") { id } }`, nil)
	if ext["code"] != "BAD_USER_INPUT" {
		t.Fatalf("code = %v", ext["code"])
	}
}

func TestLoginFailuresAreUniform(t *testing.T) {
	s, _ := newTestSchema(t)
	ctx := context.Background()

	exec(t, s, ctx, `
		mutation { createUser(name: "Dana Ortiz", email: "dana@example.com", password: "hunter22") { id } }`, nil)

	unknownMsg, unknownExt := execErr(t, s, ctx, `
		mutation { login(email: "nobody@example.com", password: "hunter22") { value } }`, nil)
	wrongMsg, wrongExt := execErr(t, s, ctx, `
		mutation { login(email: "dana@example.com", password: "wrong") { value } }`, nil)

	if unknownMsg != wrongMsg {
		t.Fatalf("messages diverge: %q vs %q", unknownMsg, wrongMsg)
	}
	if unknownExt["code"] != "INVALID_CREDENTIALS" || wrongExt["code"] != "INVALID_CREDENTIALS" {
		t.Fatalf("codes = %v / %v", unknownExt["code"], wrongExt["code"])
	}
}

func TestLoginTokenAuthenticatesContext(t *testing.T) {
	s, st := newTestSchema(t)
	ctx := context.Background()

	exec(t, s, ctx, `
		mutation { createUser(name: "Dana Ortiz", email: "dana@example.com", password: "hunter22") { id } }`, nil)
	data := exec(t, s, ctx, `
		mutation { login(email: "dana@example.com", password: "hunter22") { value } }`, nil)
	token := data["login"].(map[string]interface{})["value"].(string)

	claims, err := s.tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	user, err := st.UserByID(ctx, claims.Subject)
	if err != nil {
		t.Fatalf("UserByID: %v", err)
	}

	data = exec(t, s, auth.WithUser(ctx, user), `{ me { email } }`, nil)
	if data["me"].(map[string]interface{})["email"] != "dana@example.com" {
		t.Fatalf("me = %v", data["me"])
	}
}
