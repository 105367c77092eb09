package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"blog_service/internal/models"
	"blog_service/internal/service"
)

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
	}
	return m
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		signUpErr   error
		wantCode    int
		wantSignUps int
	}{
		{
			name:        "success",
			body:        `{"username":"alice","email":"alice@example.com","password":"s3cr3t"}`,
			wantCode:    http.StatusOK,
			wantSignUps: 1,
		},
		{
			name:        "missing username",
			body:        `{"email":"alice@example.com","password":"s3cr3t"}`,
			wantCode:    http.StatusBadRequest,
			wantSignUps: 0,
		},
		{
			name:        "missing email",
			body:        `{"username":"alice","password":"s3cr3t"}`,
			wantCode:    http.StatusBadRequest,
			wantSignUps: 0,
		},
		{
			name:        "missing password",
			body:        `{"username":"alice","email":"alice@example.com"}`,
			wantCode:    http.StatusBadRequest,
			wantSignUps: 0,
		},
		{
			name:        "store failure",
			body:        `{"username":"alice","email":"alice@example.com","password":"s3cr3t"}`,
			signUpErr:   errors.New("db down"),
			wantCode:    http.StatusInternalServerError,
			wantSignUps: 1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuth{signUpID: 1, signUpErr: tt.signUpErr}
			r := newTestRouter(&service.Service{Authorization: auth})

			w := doJSON(t, r, http.MethodPost, "/users", tt.body)
			if w.Code != tt.wantCode {
				t.Fatalf("status=%d want %d, body=%s", w.Code, tt.wantCode, w.Body.String())
			}
			if auth.signUpCalls != tt.wantSignUps {
				t.Fatalf("SignUp calls=%d want %d", auth.signUpCalls, tt.wantSignUps)
			}
			m := decodeBody(t, w)
			if _, ok := m["message"]; !ok {
				t.Fatalf("response missing message field: %s", w.Body.String())
			}
			if tt.wantCode == http.StatusOK && m["message"] != msgUserCreated {
				t.Fatalf("message=%v want %q", m["message"], msgUserCreated)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	t.Run("success returns user id", func(t *testing.T) {
		auth := &mockAuth{loginID: 7}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := doJSON(t, r, http.MethodPost, "/login", `{"username":"alice","password":"s3cr3t"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		m := decodeBody(t, w)
		if m["message"] != msgLoginOK {
			t.Fatalf("message=%v want %q", m["message"], msgLoginOK)
		}
		if int(m["userId"].(float64)) != 7 {
			t.Fatalf("userId=%v want 7", m["userId"])
		}
	})

	t.Run("missing fields is 400", func(t *testing.T) {
		auth := &mockAuth{}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := doJSON(t, r, http.MethodPost, "/login", `{"username":"alice"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		if auth.loginCalls != 0 {
			t.Fatalf("Login should not be called, got %d calls", auth.loginCalls)
		}
	})

	t.Run("unknown user and wrong password share one message", func(t *testing.T) {
		var messages []string
		for _, loginErr := range []error{service.ErrUserNotFound, service.ErrInvalidPassword} {
			auth := &mockAuth{loginErr: loginErr}
			r := newTestRouter(&service.Service{Authorization: auth})

			w := doJSON(t, r, http.MethodPost, "/login", `{"username":"alice","password":"nope"}`)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status=%d for %v, body=%s", w.Code, loginErr, w.Body.String())
			}
			m := decodeBody(t, w)
			messages = append(messages, m["message"].(string))
		}
		if messages[0] != messages[1] {
			t.Fatalf("401 messages differ: %q vs %q", messages[0], messages[1])
		}
	})

	t.Run("store failure is 500", func(t *testing.T) {
		auth := &mockAuth{loginErr: errors.New("db down")}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := doJSON(t, r, http.MethodPost, "/login", `{"username":"alice","password":"s3cr3t"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
	})
}

func TestGetUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		users := &mockUsers{getUser: &models.User{ID: 3, Username: "alice", Email: "alice@example.com"}}
		r := newTestRouter(&service.Service{Users: users})

		w := doJSON(t, r, http.MethodGet, "/users/3", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		m := decodeBody(t, w)
		if m["username"] != "alice" {
			t.Fatalf("username=%v want alice", m["username"])
		}
		if users.lastGetID != 3 {
			t.Fatalf("queried id=%d want 3", users.lastGetID)
		}
	})

	t.Run("miss returns empty object, not 404", func(t *testing.T) {
		users := &mockUsers{}
		r := newTestRouter(&service.Service{Users: users})

		w := doJSON(t, r, http.MethodGet, "/users/99", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		m := decodeBody(t, w)
		if len(m) != 0 {
			t.Fatalf("expected empty object, got %s", w.Body.String())
		}
	})

	t.Run("non-numeric id is 400", func(t *testing.T) {
		r := newTestRouter(&service.Service{Users: &mockUsers{}})

		w := doJSON(t, r, http.MethodGet, "/users/abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("store failure is 500", func(t *testing.T) {
		users := &mockUsers{getErr: errors.New("db down")}
		r := newTestRouter(&service.Service{Users: users})

		w := doJSON(t, r, http.MethodGet, "/users/3", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
	})
}

func TestListUsers(t *testing.T) {
	users := &mockUsers{listResp: []models.User{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "bob"},
	}}
	r := newTestRouter(&service.Service{Users: users})

	w := doJSON(t, r, http.MethodGet, "/users", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var got []models.User
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if len(got) != 2 || got[0].Username != "alice" || got[1].Username != "bob" {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestUpdateUser(t *testing.T) {
	t.Run("passes only present fields", func(t *testing.T) {
		users := &mockUsers{}
		r := newTestRouter(&service.Service{Users: users})

		w := doJSON(t, r, http.MethodPut, "/users/5", `{"username":"alice2","picture":"p.png"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		if users.lastUpdateID != 5 {
			t.Fatalf("update id=%d want 5", users.lastUpdateID)
		}
		upd := users.lastUpdate
		if upd.Username == nil || *upd.Username != "alice2" {
			t.Fatalf("username not passed: %+v", upd)
		}
		if upd.Picture == nil || *upd.Picture != "p.png" {
			t.Fatalf("picture not passed: %+v", upd)
		}
		if upd.Email != nil || upd.Description != nil || upd.Firstname != nil || upd.Surname != nil {
			t.Fatalf("absent fields should stay nil: %+v", upd)
		}
	})

	t.Run("store failure is 500", func(t *testing.T) {
		users := &mockUsers{updateErr: errors.New("db down")}
		r := newTestRouter(&service.Service{Users: users})

		w := doJSON(t, r, http.MethodPut, "/users/5", `{"username":"x"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
	})
}

func TestDeleteUser(t *testing.T) {
	// Delete succeeds whether or not the row existed.
	users := &mockUsers{}
	r := newTestRouter(&service.Service{Users: users})

	w := doJSON(t, r, http.MethodDelete, "/users/42", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	m := decodeBody(t, w)
	if m["message"] != msgUserDeleted {
		t.Fatalf("message=%v want %q", m["message"], msgUserDeleted)
	}
	if users.deleteCalls != 1 || users.lastDeleteID != 42 {
		t.Fatalf("delete calls=%d lastID=%d", users.deleteCalls, users.lastDeleteID)
	}
}
