package handlers

import (
	"net/http"
	"time"

	"github.com/event-rsvp/app/internal/rsvp"
)

type guestEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Comment   string    `json:"comment,omitempty"`
	Status    string    `json:"status"`
	Total     int       `json:"total_people"`
	Adults    int       `json:"adults"`
	Children  int       `json:"children"`
	AnsweredAt time.Time `json:"answered_at"`
}

// EventSummary handles GET /events/{id}/summary?key=K. The host key is
// required; aggregates are recomputed from the live responses on every
// call.
func EventSummary(svc *rsvp.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := eventIDFromPath(r.URL.Path)
		if err := svc.AuthorizeHost(eventID, r.URL.Query().Get("key")); err != nil {
			renderServiceError(w, err)
			return
		}

		summary, err := svc.Summarize(eventID)
		if err != nil {
			renderServiceError(w, err)
			return
		}
		renderJSON(w, http.StatusOK, summary)
	}
}

// EventGuestList handles GET /events/{id}/responses?key=K: the host
// panel's guest list, newest answer first.
func EventGuestList(svc *rsvp.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := eventIDFromPath(r.URL.Path)
		if err := svc.AuthorizeHost(eventID, r.URL.Query().Get("key")); err != nil {
			renderServiceError(w, err)
			return
		}

		responses, err := svc.GuestList(eventID)
		if err != nil {
			renderServiceError(w, err)
			return
		}

		guests := make([]guestEntry, 0, len(responses))
		for _, resp := range responses {
			guests = append(guests, guestEntry{
				ID:        resp.ID,
				Name:      resp.GuestName,
				Email:     resp.Email,
				Comment:   resp.Comment,
				Status:    resp.Status,
				Total:     resp.TotalPeople,
				Adults:    resp.Adults(),
				Children:  resp.Children,
				AnsweredAt: resp.CreatedAt,
			})
		}
		renderJSON(w, http.StatusOK, map[string]interface{}{"guests": guests})
	}
}
