package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/schema"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/event-rsvp/app/internal/rsvp"
)

// formDecoder decodes posted forms into request structs. Unknown keys
// are ignored so extra fields from older clients don't fail requests.
var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func renderJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("encoding response")
	}
}

func renderError(w http.ResponseWriter, status int, code, message string) {
	renderJSON(w, status, errorResponse{Error: message, Code: code})
}

// renderServiceError maps the service error taxonomy onto the wire.
// Anything unrecognized is an internal failure and is reported opaquely;
// the service already logged the details.
func renderServiceError(w http.ResponseWriter, err error) {
	var verr *rsvp.ValidationError
	if errors.As(err, &verr) {
		renderError(w, http.StatusBadRequest, "validation", verr.Error())
		return
	}
	var closed *rsvp.ClosedError
	if errors.As(err, &closed) {
		renderError(w, http.StatusForbidden, "rsvp_closed",
			"RSVPs closed on "+closed.Deadline.Format(time.RFC3339))
		return
	}
	if errors.Is(err, rsvp.ErrEventNotFound) {
		renderError(w, http.StatusNotFound, "not_found", "event not found")
		return
	}
	if errors.Is(err, rsvp.ErrBadHostKey) {
		renderError(w, http.StatusUnauthorized, "unauthorized", "missing or invalid access key")
		return
	}
	renderError(w, http.StatusInternalServerError, "internal", "something went wrong")
}

// eventIDFromPath pulls the event id out of paths shaped like
// /events/{id} or /events/{id}/action.
func eventIDFromPath(path string) string {
	parts := strings.Split(strings.TrimPrefix(path, "/events/"), "/")
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}
