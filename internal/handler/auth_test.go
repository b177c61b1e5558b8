package handler_test

import (
	"net/http"
	"testing"
)

type authResponse struct {
	Token string `json:"token"`
	User  struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	} `json:"user"`
}

func TestAuthHandlers_Register(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "fresh", "email": "fresh@example.com", "password": "password123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	body := decode[authResponse](t, w)
	if body.Token == "" {
		t.Fatal("expected a token in the response")
	}
	if body.User.Username != "fresh" || body.User.ID == 0 {
		t.Fatalf("unexpected user: %+v", body.User)
	}
}

func TestAuthHandlers_Register_Conflict(t *testing.T) {
	r, _ := newTestRouter(t)

	payload := map[string]string{
		"username": "taken", "email": "taken@example.com", "password": "password123",
	}
	if w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", payload); w.Code != http.StatusCreated {
		t.Fatalf("first register: expected 201, got %d", w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", payload)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestAuthHandlers_Register_Invalid(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "nopass", "email": "nopass@example.com",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
}

func TestAuthHandlers_LoginAndMe(t *testing.T) {
	r, _ := newTestRouter(t)

	if w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "session", "email": "session@example.com", "password": "password123",
	}); w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "session@example.com", "password": "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", w.Code)
	}
	body := decode[authResponse](t, w)
	if body.Token == "" {
		t.Fatal("expected a token from login")
	}

	w = doJSON(t, r, http.MethodGet, "/api/auth/me", body.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", w.Code)
	}
	me := decode[authResponse](t, w)
	if me.User.Email != "session@example.com" {
		t.Fatalf("unexpected identity: %+v", me.User)
	}
}

func TestAuthHandlers_Login_BadCredentials(t *testing.T) {
	r, _ := newTestRouter(t)

	if w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "locked", "email": "locked@example.com", "password": "password123",
	}); w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "locked@example.com", "password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthHandlers_Me_RequiresToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
