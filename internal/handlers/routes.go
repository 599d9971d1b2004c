package handlers

import (
	"net/http"

	"github.com/therealfuntimeswithdanny/notes-app/internal/auth"
)

// NewRouter wires the HTTP surface. Note operations sit behind the auth
// gate; signup, login and logout do not.
func NewRouter(a *auth.Auth, h *Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/signup", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			h.Signup(w, r)
		} else {
			h.methodNotAllowed(w)
		}
	})

	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			h.Login(w, r)
		} else {
			h.methodNotAllowed(w)
		}
	})

	mux.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			h.Logout(w, r)
		} else {
			h.methodNotAllowed(w)
		}
	})

	mux.HandleFunc("/notes", a.Middleware(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.ListNotes(w, r)
		case http.MethodPost:
			h.CreateNote(w, r)
		case http.MethodPut:
			h.UpdateNote(w, r)
		case http.MethodDelete:
			h.DeleteNote(w, r)
		default:
			h.methodNotAllowed(w)
		}
	}, true))

	mux.HandleFunc("/", a.Middleware(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodGet {
			h.methodNotAllowed(w)
			return
		}
		h.Landing(w, r)
	}, false))

	return mux
}
