// Package deadline decides whether an event still accepts RSVP responses
// and resolves the deadline instant at event-creation time.
package deadline

import (
	"time"

	"github.com/pkg/errors"
)

const (
	// DateLayout and TimeLayout are the wall-clock formats accepted in
	// the split date/time fields of event creation.
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	// editWindow is how long before the event start guests may still
	// expect to edit their response. Informational only; the deadline
	// is the sole enforcement point.
	editWindow = 24 * time.Hour
)

// ErrUnresolvable is returned when neither the split fields, the legacy
// timestamp, nor the event start can produce a deadline. Event creation
// must fail in that case rather than default to "no deadline".
var ErrUnresolvable = errors.New("deadline: no usable deadline input")

// Gate evaluates deadlines against a single fixed UTC offset. Wall-clock
// inputs are interpreted at that offset; daylight saving and per-event
// timezones are deliberately not handled.
type Gate struct {
	loc *time.Location
}

// NewGate builds a Gate for the given fixed offset. The name is only a
// label for formatting, e.g. "America/Sao_Paulo".
func NewGate(name string, offsetHours int) *Gate {
	return &Gate{loc: time.FixedZone(name, offsetHours*3600)}
}

// ResolveInput carries the creation-time fields a deadline can be derived
// from, in priority order: split date+time, legacy absolute timestamp,
// then 24 hours before the event start.
type ResolveInput struct {
	Date   string // DateLayout, paired with Time
	Time   string // TimeLayout, paired with Date
	Legacy string // pre-formatted RFC 3339 instant
	Start  time.Time
}

// Resolve computes the deadline instant once, at creation. It is never
// recomputed later.
func (g *Gate) Resolve(in ResolveInput) (time.Time, error) {
	if in.Date != "" && in.Time != "" {
		t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, in.Date+" "+in.Time, g.loc)
		if err != nil {
			return time.Time{}, errors.Wrap(err, "deadline: parsing split date/time")
		}
		return t, nil
	}
	if in.Legacy != "" {
		t, err := time.Parse(time.RFC3339, in.Legacy)
		if err != nil {
			return time.Time{}, errors.Wrap(err, "deadline: parsing legacy timestamp")
		}
		return t, nil
	}
	if !in.Start.IsZero() {
		return in.Start.Add(-editWindow), nil
	}
	return time.Time{}, ErrUnresolvable
}

// EventStart parses the event's own date and time fields into an instant
// at the gate's fixed offset.
func (g *Gate) EventStart(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+clock, g.loc)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "deadline: parsing event start")
	}
	return t, nil
}

// Accepting reports whether a response submitted at now may still be
// taken. The boundary is inclusive: a submission at exactly the deadline
// is accepted.
func (g *Gate) Accepting(now, deadline time.Time) bool {
	return !now.After(deadline)
}

// EditUntil is the instant guests are told they can edit their response
// until: 24 hours before the event starts. Nothing enforces it; editing
// is just resubmission, gated by Accepting.
func (g *Gate) EditUntil(start time.Time) time.Time {
	return start.Add(-editWindow)
}
