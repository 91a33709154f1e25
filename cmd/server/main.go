package main

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/event-rsvp/app/internal/config"
	"github.com/event-rsvp/app/internal/database"
	"github.com/event-rsvp/app/internal/deadline"
	"github.com/event-rsvp/app/internal/handlers"
	"github.com/event-rsvp/app/internal/rsvp"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		logrus.WithError(err).Fatal("initializing database")
	}
	defer db.Close()

	gate := deadline.NewGate(cfg.TZName, cfg.TZOffsetHours)
	svc := rsvp.NewService(db, gate)

	mux := http.NewServeMux()

	mux.HandleFunc("/events", handlers.CreateEvent(svc, cfg))
	mux.HandleFunc("/events/", routeDynamicEventPaths(svc))

	logrus.WithField("port", cfg.Port).Info("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, mux); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

// routeDynamicEventPaths dispatches /events/{id} and /events/{id}/action
// paths. /events itself is handled separately above.
func routeDynamicEventPaths(svc *rsvp.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/events/"), "/")

		if len(parts) == 0 || parts[0] == "" {
			http.NotFound(w, r)
			return
		}

		switch {
		case len(parts) == 1:
			if r.Method != http.MethodGet {
				http.Error(w, "only GET is allowed for event details", http.StatusMethodNotAllowed)
				return
			}
			handlers.GetEvent(svc)(w, r)
		case len(parts) == 2 && parts[1] == "rsvp":
			if r.Method != http.MethodPost {
				http.Error(w, "only POST is allowed for rsvp", http.StatusMethodNotAllowed)
				return
			}
			handlers.SubmitRSVP(svc)(w, r)
		case len(parts) == 2 && parts[1] == "summary":
			if r.Method != http.MethodGet {
				http.Error(w, "only GET is allowed for summary", http.StatusMethodNotAllowed)
				return
			}
			handlers.EventSummary(svc)(w, r)
		case len(parts) == 2 && parts[1] == "responses":
			if r.Method != http.MethodGet {
				http.Error(w, "only GET is allowed for responses", http.StatusMethodNotAllowed)
				return
			}
			handlers.EventGuestList(svc)(w, r)
		default:
			http.NotFound(w, r)
		}
	}
}
