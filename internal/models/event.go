package models

import "time"

// Event is created once by a host and is read-only afterwards. The
// resolved RSVP deadline is fixed at creation and never recomputed.
type Event struct {
	ID        string
	Title     string
	HostName  string
	EventDate string // "2006-01-02", wall clock at the configured offset
	EventTime string // "15:04"
	Timezone  string // informational label, not used in arithmetic
	Location  string
	Notes     string
	StartsAt  time.Time
	Deadline  time.Time

	// Theming and messaging fields are opaque to the core logic.
	ThemeColor     string
	ThemeImage     string
	ConfirmMessage string

	AskEmail             bool
	IncludeMaybeInCounts bool

	// HostKeyHash is the bcrypt hash of the host access key. The
	// plaintext key is issued exactly once, in the creation response.
	HostKeyHash string

	CreatedAt time.Time
}
