package database

import (
	"database/sql"

	"github.com/pkg/errors"

	"github.com/event-rsvp/app/internal/models"
)

const eventColumns = `id, title, host_name, event_date, event_time, timezone, location, notes,
	starts_at, rsvp_deadline, theme_color, theme_image, confirm_message,
	ask_email, include_maybe_in_counts, host_key_hash, created_at`

// CreateEvent inserts a new event. The caller supplies the id, the
// resolved deadline and the bcrypt hash of the host key; nothing about
// an event is mutable after this call.
func CreateEvent(db *sql.DB, event *models.Event) (*models.Event, error) {
	stmt, err := db.Prepare(`
		INSERT INTO events (id, title, host_name, event_date, event_time, timezone, location, notes,
			starts_at, rsvp_deadline, theme_color, theme_image, confirm_message,
			ask_email, include_maybe_in_counts, host_key_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, errors.Wrap(err, "preparing event insert")
	}
	defer stmt.Close()

	_, err = stmt.Exec(event.ID, event.Title, event.HostName, event.EventDate, event.EventTime,
		event.Timezone, event.Location, event.Notes, event.StartsAt, event.Deadline,
		event.ThemeColor, event.ThemeImage, event.ConfirmMessage,
		event.AskEmail, event.IncludeMaybeInCounts, event.HostKeyHash)
	if err != nil {
		return nil, errors.Wrap(err, "inserting event")
	}

	// Read it back so DB defaults like created_at are populated.
	return GetEventByID(db, event.ID)
}

// GetEventByID retrieves an event by its id. Returns sql.ErrNoRows when
// the event does not exist.
func GetEventByID(db *sql.DB, id string) (*models.Event, error) {
	event := &models.Event{}
	row := db.QueryRow("SELECT "+eventColumns+" FROM events WHERE id = ?", id)
	err := row.Scan(&event.ID, &event.Title, &event.HostName, &event.EventDate, &event.EventTime,
		&event.Timezone, &event.Location, &event.Notes, &event.StartsAt, &event.Deadline,
		&event.ThemeColor, &event.ThemeImage, &event.ConfirmMessage,
		&event.AskEmail, &event.IncludeMaybeInCounts, &event.HostKeyHash, &event.CreatedAt)
	if err != nil {
		return nil, err
	}
	return event, nil
}
