package models

import "time"

const (
	StatusGoing    = "going"
	StatusMaybe    = "maybe"
	StatusNotGoing = "not_going"
)

// ValidStatus reports whether s is one of the three RSVP statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusGoing, StatusMaybe, StatusNotGoing:
		return true
	}
	return false
}

// Response is a guest's answer for one event. At most one live Response
// exists per (event, normalized name, normalized phone); a resubmission
// for the same identity replaces the prior row entirely.
type Response struct {
	ID              string
	EventID         string
	GuestName       string
	NormalizedName  string
	NormalizedPhone string
	Email           string
	Comment         string
	Status          string
	TotalPeople     int
	Children        int
	CreatedAt       time.Time
}

// Adults is derived, never stored, so it cannot drift from its formula.
func (r *Response) Adults() int {
	return r.TotalPeople - r.Children
}
