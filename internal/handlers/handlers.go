package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/therealfuntimeswithdanny/notes-app/internal/auth"
	"github.com/therealfuntimeswithdanny/notes-app/internal/identity"
	"github.com/therealfuntimeswithdanny/notes-app/internal/notes"
	"github.com/therealfuntimeswithdanny/notes-app/internal/session"
	"github.com/therealfuntimeswithdanny/notes-app/internal/views"
)

type Handlers struct {
	identity *identity.Service
	sessions *session.Service
	notes    *notes.Service
	views    *views.Views
}

func New(i *identity.Service, s *session.Service, n *notes.Service, v *views.Views) *Handlers {
	return &Handlers{
		identity: i,
		sessions: s,
		notes:    n,
		views:    v,
	}
}

type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func (h *Handlers) respond(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// fail reports a user-correctable failure. The HTTP status stays 200; the
// success flag and message carry the outcome.
func (h *Handlers) fail(w http.ResponseWriter, message string) {
	h.respond(w, response{Success: false, Message: message}, http.StatusOK)
}

func (h *Handlers) ok(w http.ResponseWriter) {
	h.respond(w, response{Success: true}, http.StatusOK)
}

func (h *Handlers) methodNotAllowed(w http.ResponseWriter) {
	h.respond(w, response{Success: false, Message: "Method not allowed"}, http.StatusMethodNotAllowed)
}

func (h *Handlers) storageError(w http.ResponseWriter, err error, message string) {
	log.Error(message, "error", err)
	h.respond(w, response{Success: false, Message: message}, http.StatusInternalServerError)
}

// Landing serves the app page or the sign-in page depending on whether the
// request carries a valid session.
func (h *Handlers) Landing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var err error
	if username, ok := auth.UserFrom(r.Context()); ok {
		err = h.views.RenderApp(w, username)
	} else {
		err = h.views.RenderSignIn(w)
	}
	if err != nil {
		log.Error("Failed to render landing page", "error", err)
	}
}

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, "Invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		h.fail(w, "Username and password required")
		return
	}

	if err := h.identity.Create(req.Username, req.Password); err != nil {
		if errors.Is(err, identity.ErrUserExists) {
			h.fail(w, "User already exists")
			return
		}
		h.storageError(w, err, "Failed to create user")
		return
	}

	h.ok(w)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, "Invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		h.fail(w, "Username and password required")
		return
	}

	user, err := h.identity.Verify(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			h.fail(w, "Invalid credentials")
			return
		}
		h.storageError(w, err, "Failed to verify credentials")
		return
	}

	token, err := h.sessions.Create(user.Username)
	if err != nil {
		h.storageError(w, err, "Failed to create session")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})

	h.ok(w)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.CookieName); err == nil {
		if err := h.sessions.Revoke(cookie.Value); err != nil {
			log.Warn("Failed to revoke session", "error", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	h.ok(w)
}

func (h *Handlers) ListNotes(w http.ResponseWriter, r *http.Request) {
	username, _ := auth.UserFrom(r.Context())

	list, err := h.notes.List(username)
	if err != nil {
		h.storageError(w, err, "Failed to get notes")
		return
	}

	h.respond(w, list, http.StatusOK)
}

func (h *Handlers) CreateNote(w http.ResponseWriter, r *http.Request) {
	username, _ := auth.UserFrom(r.Context())

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, "Invalid request body")
		return
	}

	note, err := h.notes.Create(username, req.Text)
	if err != nil {
		if errors.Is(err, notes.ErrEmptyText) {
			h.fail(w, "Note text required")
			return
		}
		h.storageError(w, err, "Failed to create note")
		return
	}

	h.respond(w, note, http.StatusOK)
}

func (h *Handlers) UpdateNote(w http.ResponseWriter, r *http.Request) {
	username, _ := auth.UserFrom(r.Context())

	var req struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, "Invalid request body")
		return
	}

	if err := h.notes.Update(username, req.ID, req.Text); err != nil {
		if errors.Is(err, notes.ErrEmptyID) || errors.Is(err, notes.ErrEmptyText) {
			h.fail(w, "Id and text required")
			return
		}
		h.storageError(w, err, "Failed to update note")
		return
	}

	h.ok(w)
}

func (h *Handlers) DeleteNote(w http.ResponseWriter, r *http.Request) {
	username, _ := auth.UserFrom(r.Context())

	if err := h.notes.Delete(username, r.URL.Query().Get("id")); err != nil {
		h.storageError(w, err, "Failed to delete note")
		return
	}

	h.ok(w)
}
