// Package rsvp holds the business rules of the RSVP lifecycle: event
// creation with deadline resolution, deadline-gated submission with
// idempotent replacement by normalized identity, and the attendance
// rollup. Handlers stay thin; everything with an invariant lives here.
package rsvp

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/event-rsvp/app/internal/database"
	"github.com/event-rsvp/app/internal/deadline"
	"github.com/event-rsvp/app/internal/identity"
	"github.com/event-rsvp/app/internal/models"
)

// ErrEventNotFound is returned when the referenced event does not exist.
var ErrEventNotFound = errors.New("event not found")

// ErrBadHostKey is returned when the supplied host key does not match
// the event's key.
var ErrBadHostKey = errors.New("host key does not match")

// ValidationError rejects a submission synchronously; nothing was
// persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ClosedError signals that the event's RSVP deadline has passed. It
// carries the deadline so callers can explain the closure.
type ClosedError struct {
	Deadline time.Time
}

func (e *ClosedError) Error() string {
	return fmt.Sprintf("rsvp closed since %s", e.Deadline.Format(time.RFC3339))
}

// Service implements the RSVP lifecycle over the database and the
// deadline gate. now is injectable for deadline boundary tests.
type Service struct {
	db   *sql.DB
	gate *deadline.Gate
	now  func() time.Time
}

func NewService(db *sql.DB, gate *deadline.Gate) *Service {
	return &Service{db: db, gate: gate, now: time.Now}
}

// CreateInput carries the host-supplied fields for a new event.
type CreateInput struct {
	Title    string
	HostName string
	Date     string // deadline.DateLayout
	Time     string // deadline.TimeLayout
	Timezone string
	Location string
	Notes    string

	// Deadline resolution inputs, in priority order. When all three
	// are unusable, creation fails; a missing deadline is never
	// silently defaulted away.
	DeadlineDate   string
	DeadlineTime   string
	DeadlineLegacy string // RFC 3339

	ThemeColor     string
	ThemeImage     string
	ConfirmMessage string

	AskEmail             bool
	IncludeMaybeInCounts bool
}

// CreateEvent resolves the deadline, issues the host key and persists
// the event. The plaintext host key is returned exactly once; only its
// bcrypt hash is stored.
func (s *Service) CreateEvent(in CreateInput) (*models.Event, string, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, "", &ValidationError{Field: "title", Reason: "required"}
	}
	if strings.TrimSpace(in.HostName) == "" {
		return nil, "", &ValidationError{Field: "host_name", Reason: "required"}
	}

	// The event start is also the fallback deadline input, so a
	// malformed start only fails creation when the deadline needs it.
	start, startErr := s.gate.EventStart(in.Date, in.Time)

	resolveIn := deadline.ResolveInput{
		Date:   in.DeadlineDate,
		Time:   in.DeadlineTime,
		Legacy: in.DeadlineLegacy,
	}
	if startErr == nil {
		resolveIn.Start = start
	}
	dl, err := s.gate.Resolve(resolveIn)
	if err != nil {
		return nil, "", &ValidationError{Field: "rsvp_deadline", Reason: err.Error()}
	}
	if startErr != nil {
		return nil, "", &ValidationError{Field: "event_date", Reason: startErr.Error()}
	}

	hostKey := uuid.NewString()
	hash, err := bcrypt.GenerateFromPassword([]byte(hostKey), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", errors.Wrap(err, "hashing host key")
	}

	event := &models.Event{
		ID:                   uuid.NewString(),
		Title:                strings.TrimSpace(in.Title),
		HostName:             strings.TrimSpace(in.HostName),
		EventDate:            in.Date,
		EventTime:            in.Time,
		Timezone:             in.Timezone,
		Location:             in.Location,
		Notes:                in.Notes,
		StartsAt:             start,
		Deadline:             dl,
		ThemeColor:           in.ThemeColor,
		ThemeImage:           in.ThemeImage,
		ConfirmMessage:       in.ConfirmMessage,
		AskEmail:             in.AskEmail,
		IncludeMaybeInCounts: in.IncludeMaybeInCounts,
		HostKeyHash:          string(hash),
	}

	created, err := database.CreateEvent(s.db, event)
	if err != nil {
		logrus.WithError(err).WithField("event_id", event.ID).Error("creating event")
		return nil, "", errors.Wrap(err, "storing event")
	}
	return created, hostKey, nil
}

// SubmitInput carries one guest submission. TotalPeople and Children
// arrive as raw strings so "required and numeric" can be validated in
// order with the other fields.
type SubmitInput struct {
	EventID     string
	Name        string
	Phone       string
	Email       string
	Comment     string
	Status      string
	TotalPeople string
	Children    string

	// Honeypot is the hidden anti-spam field. Non-empty means a bot
	// filled the form; the call succeeds without persisting anything.
	Honeypot string
}

// SubmitResult echoes what the guest needs after an accepted
// submission. EditUntil is informational: editing is resubmission,
// gated only by the deadline.
type SubmitResult struct {
	ID        string
	Status    string
	Adults    int
	EditUntil time.Time
}

// Submit runs the validation chain in order (first failure wins),
// normalizes the guest identity and replaces any prior response for it.
func (s *Service) Submit(in SubmitInput) (*SubmitResult, error) {
	if strings.TrimSpace(in.Honeypot) != "" {
		return s.trapResult(in), nil
	}

	if strings.TrimSpace(in.Name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "required"}
	}
	if strings.TrimSpace(in.Phone) == "" {
		return nil, &ValidationError{Field: "phone", Reason: "required"}
	}
	if in.Status == "" {
		return nil, &ValidationError{Field: "status", Reason: "required"}
	}
	total, err := strconv.Atoi(strings.TrimSpace(in.TotalPeople))
	if err != nil {
		return nil, &ValidationError{Field: "total_people", Reason: "must be a number"}
	}
	children, err := strconv.Atoi(strings.TrimSpace(in.Children))
	if err != nil {
		return nil, &ValidationError{Field: "children", Reason: "must be a number"}
	}
	if !models.ValidStatus(in.Status) {
		return nil, &ValidationError{Field: "status", Reason: "must be going, maybe or not_going"}
	}
	if total < 1 {
		return nil, &ValidationError{Field: "total_people", Reason: "must be at least 1"}
	}
	if children < 0 || children > total {
		return nil, &ValidationError{Field: "children", Reason: "must be between 0 and total_people"}
	}

	event, err := database.GetEventByID(s.db, in.EventID)
	if err == sql.ErrNoRows {
		return nil, ErrEventNotFound
	}
	if err != nil {
		logrus.WithError(err).WithField("event_id", in.EventID).Error("loading event for submission")
		return nil, errors.Wrap(err, "loading event")
	}

	if !s.gate.Accepting(s.now(), event.Deadline) {
		return nil, &ClosedError{Deadline: event.Deadline}
	}

	resp := &models.Response{
		ID:              uuid.NewString(),
		EventID:         event.ID,
		GuestName:       strings.TrimSpace(in.Name),
		NormalizedName:  identity.Normalize(in.Name),
		NormalizedPhone: identity.NormalizeDigits(in.Phone),
		Email:           strings.TrimSpace(in.Email),
		Comment:         strings.TrimSpace(in.Comment),
		Status:          in.Status,
		TotalPeople:     total,
		Children:        children,
	}

	if err := database.ReplaceResponse(s.db, resp); err != nil {
		logrus.WithError(err).WithField("event_id", event.ID).Error("replacing response")
		return nil, errors.Wrap(err, "storing response")
	}

	return &SubmitResult{
		ID:        resp.ID,
		Status:    resp.Status,
		Adults:    resp.Adults(),
		EditUntil: s.gate.EditUntil(event.StartsAt),
	}, nil
}

// trapResult fabricates a success for a honeypot hit. The shape must be
// indistinguishable from a persisted submission, so the id comes from
// the same generator and the echoed fields are computed best-effort
// from the (untrusted) input.
func (s *Service) trapResult(in SubmitInput) *SubmitResult {
	res := &SubmitResult{ID: uuid.NewString(), Status: in.Status}

	total, terr := strconv.Atoi(strings.TrimSpace(in.TotalPeople))
	children, cerr := strconv.Atoi(strings.TrimSpace(in.Children))
	if terr == nil && cerr == nil && total >= children {
		res.Adults = total - children
	}

	if event, err := database.GetEventByID(s.db, in.EventID); err == nil {
		res.EditUntil = s.gate.EditUntil(event.StartsAt)
	}

	logrus.WithField("event_id", in.EventID).Debug("honeypot tripped, dropping submission")
	return res
}

// Summarize recomputes the attendance rollup from the live responses.
// Read-only; no caching.
func (s *Service) Summarize(eventID string) (*models.Summary, error) {
	event, err := database.GetEventByID(s.db, eventID)
	if err == sql.ErrNoRows {
		return nil, ErrEventNotFound
	}
	if err != nil {
		logrus.WithError(err).WithField("event_id", eventID).Error("loading event for summary")
		return nil, errors.Wrap(err, "loading event")
	}

	responses, err := database.GetResponsesForEvent(s.db, eventID)
	if err != nil {
		logrus.WithError(err).WithField("event_id", eventID).Error("loading responses for summary")
		return nil, errors.Wrap(err, "loading responses")
	}

	summary := models.Summarize(responses, event.IncludeMaybeInCounts)
	return &summary, nil
}

// GetEvent loads an event for public display.
func (s *Service) GetEvent(eventID string) (*models.Event, error) {
	event, err := database.GetEventByID(s.db, eventID)
	if err == sql.ErrNoRows {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "loading event")
	}
	return event, nil
}

// GuestList returns every live response for the host panel.
func (s *Service) GuestList(eventID string) ([]*models.Response, error) {
	if _, err := s.GetEvent(eventID); err != nil {
		return nil, err
	}
	responses, err := database.GetResponsesForEvent(s.db, eventID)
	if err != nil {
		logrus.WithError(err).WithField("event_id", eventID).Error("loading guest list")
		return nil, errors.Wrap(err, "loading responses")
	}
	return responses, nil
}

// AuthorizeHost checks the supplied key against the event's stored
// hash. Host-only routes call this before serving.
func (s *Service) AuthorizeHost(eventID, key string) error {
	event, err := s.GetEvent(eventID)
	if err != nil {
		return err
	}
	if key == "" {
		return ErrBadHostKey
	}
	if bcrypt.CompareHashAndPassword([]byte(event.HostKeyHash), []byte(key)) != nil {
		return ErrBadHostKey
	}
	return nil
}
