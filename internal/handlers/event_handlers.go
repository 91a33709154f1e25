package handlers

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/event-rsvp/app/internal/config"
	"github.com/event-rsvp/app/internal/rsvp"
)

// createEventForm is the host-facing creation form. Deadline fields are
// optional; when absent the deadline falls back to 24h before the event.
type createEventForm struct {
	Title    string `schema:"title"`
	HostName string `schema:"host_name"`
	Date     string `schema:"date"`
	Time     string `schema:"time"`
	Timezone string `schema:"timezone"`
	Location string `schema:"location"`
	Notes    string `schema:"notes"`

	DeadlineDate   string `schema:"deadline_date"`
	DeadlineTime   string `schema:"deadline_time"`
	DeadlineLegacy string `schema:"deadline"`

	ThemeColor     string `schema:"theme_color"`
	ThemeImage     string `schema:"theme_image"`
	ConfirmMessage string `schema:"confirm_message"`

	AskEmail             bool `schema:"ask_email"`
	IncludeMaybeInCounts bool `schema:"include_maybe_in_counts"`
}

type createEventResponse struct {
	ID       string    `json:"id"`
	HostKey  string    `json:"host_key"`
	Deadline time.Time `json:"rsvp_deadline"`
	ShareURL string    `json:"share_url"`
}

type eventResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	HostName       string    `json:"host_name"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Timezone       string    `json:"timezone"`
	Location       string    `json:"location"`
	Notes          string    `json:"notes"`
	Deadline       time.Time `json:"rsvp_deadline"`
	ThemeColor     string    `json:"theme_color"`
	ThemeImage     string    `json:"theme_image"`
	ConfirmMessage string    `json:"confirm_message"`
	AskEmail       bool      `json:"ask_email"`
}

// CreateEvent handles POST /events. The host key in the response is the
// only time the plaintext key is ever available.
func CreateEvent(svc *rsvp.Service, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			renderError(w, http.StatusMethodNotAllowed, "validation", "only POST is allowed")
			return
		}

		if err := r.ParseForm(); err != nil {
			renderError(w, http.StatusBadRequest, "validation", "malformed form body")
			return
		}

		var form createEventForm
		if err := formDecoder.Decode(&form, r.PostForm); err != nil {
			logrus.WithError(err).Warn("decoding event creation form")
			renderError(w, http.StatusBadRequest, "validation", "malformed form body")
			return
		}

		event, hostKey, err := svc.CreateEvent(rsvp.CreateInput{
			Title:                form.Title,
			HostName:             form.HostName,
			Date:                 form.Date,
			Time:                 form.Time,
			Timezone:             form.Timezone,
			Location:             form.Location,
			Notes:                form.Notes,
			DeadlineDate:         form.DeadlineDate,
			DeadlineTime:         form.DeadlineTime,
			DeadlineLegacy:       form.DeadlineLegacy,
			ThemeColor:           form.ThemeColor,
			ThemeImage:           form.ThemeImage,
			ConfirmMessage:       form.ConfirmMessage,
			AskEmail:             form.AskEmail,
			IncludeMaybeInCounts: form.IncludeMaybeInCounts,
		})
		if err != nil {
			renderServiceError(w, err)
			return
		}

		renderJSON(w, http.StatusCreated, createEventResponse{
			ID:       event.ID,
			HostKey:  hostKey,
			Deadline: event.Deadline,
			ShareURL: cfg.BaseURL + "/events/" + event.ID,
		})
	}
}

// GetEvent handles GET /events/{id}: the public invite view. The host
// key hash never leaves the store.
func GetEvent(svc *rsvp.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event, err := svc.GetEvent(eventIDFromPath(r.URL.Path))
		if err != nil {
			renderServiceError(w, err)
			return
		}

		renderJSON(w, http.StatusOK, eventResponse{
			ID:             event.ID,
			Title:          event.Title,
			HostName:       event.HostName,
			Date:           event.EventDate,
			Time:           event.EventTime,
			Timezone:       event.Timezone,
			Location:       event.Location,
			Notes:          event.Notes,
			Deadline:       event.Deadline,
			ThemeColor:     event.ThemeColor,
			ThemeImage:     event.ThemeImage,
			ConfirmMessage: event.ConfirmMessage,
			AskEmail:       event.AskEmail,
		})
	}
}
