package handlers

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/event-rsvp/app/internal/rsvp"
)

// rsvpForm is the guest submission body. The "website" field is the
// honeypot: hidden in the real form, so anything filling it is a bot.
type rsvpForm struct {
	Name        string `schema:"name"`
	Phone       string `schema:"phone"`
	Email       string `schema:"email"`
	Comment     string `schema:"comment"`
	Status      string `schema:"status"`
	TotalPeople string `schema:"total_people"`
	Children    string `schema:"children"`
	Website     string `schema:"website"`
}

type rsvpResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Adults    int       `json:"adults"`
	EditUntil time.Time `json:"edit_until"`
}

// SubmitRSVP handles POST /events/{id}/rsvp.
func SubmitRSVP(svc *rsvp.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			renderError(w, http.StatusBadRequest, "validation", "malformed form body")
			return
		}

		var form rsvpForm
		if err := formDecoder.Decode(&form, r.PostForm); err != nil {
			logrus.WithError(err).Warn("decoding rsvp form")
			renderError(w, http.StatusBadRequest, "validation", "malformed form body")
			return
		}

		result, err := svc.Submit(rsvp.SubmitInput{
			EventID:     eventIDFromPath(r.URL.Path),
			Name:        form.Name,
			Phone:       form.Phone,
			Email:       form.Email,
			Comment:     form.Comment,
			Status:      form.Status,
			TotalPeople: form.TotalPeople,
			Children:    form.Children,
			Honeypot:    form.Website,
		})
		if err != nil {
			renderServiceError(w, err)
			return
		}

		renderJSON(w, http.StatusOK, rsvpResponse{
			ID:        result.ID,
			Status:    result.Status,
			Adults:    result.Adults,
			EditUntil: result.EditUntil,
		})
	}
}
