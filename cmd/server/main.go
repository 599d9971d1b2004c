package main

import (
	"flag"
	"net/http"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/therealfuntimeswithdanny/notes-app/internal/auth"
	"github.com/therealfuntimeswithdanny/notes-app/internal/cache"
	"github.com/therealfuntimeswithdanny/notes-app/internal/config"
	"github.com/therealfuntimeswithdanny/notes-app/internal/handlers"
	"github.com/therealfuntimeswithdanny/notes-app/internal/identity"
	"github.com/therealfuntimeswithdanny/notes-app/internal/kv"
	"github.com/therealfuntimeswithdanny/notes-app/internal/notes"
	"github.com/therealfuntimeswithdanny/notes-app/internal/session"
	"github.com/therealfuntimeswithdanny/notes-app/internal/views"
)

func main() {
	configFile := flag.String("config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	setLogLevel(cfg.LogLevel)

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	store, err := kv.NewSqlite(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	v, err := views.New()
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	identities := identity.New(store)
	sessions := session.New(store)
	noteStore := notes.New(store, cache.New())
	gate := auth.New(sessions)
	h := handlers.New(identities, sessions, noteStore, v)

	mux := handlers.NewRouter(gate, h)

	log.Info("Starting notes server", "listen", cfg.Listen)
	if err := http.ListenAndServe(cfg.Listen, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.Warnf("unknown log level %s, defaulting to info", level)
		log.SetLevel(log.InfoLevel)
	}
}
