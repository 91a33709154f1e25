package database

import (
	"database/sql"

	"github.com/pkg/errors"

	"github.com/event-rsvp/app/internal/models"
)

// ReplaceResponse atomically replaces any existing response for the
// same (event, normalized name, normalized phone) identity with resp.
// The delete and insert run in one transaction so two concurrent
// submissions for the same identity either serialize cleanly or one
// fails on the unique constraint; neither can leave zero or two live
// rows for the identity.
func ReplaceResponse(db *sql.DB, resp *models.Response) error {
	tx, err := db.Begin()
	if err != nil {
		return errors.Wrap(err, "beginning replace transaction")
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		DELETE FROM responses
		WHERE event_id = ? AND normalized_name = ? AND normalized_phone = ?
	`, resp.EventID, resp.NormalizedName, resp.NormalizedPhone)
	if err != nil {
		return errors.Wrap(err, "deleting superseded response")
	}

	_, err = tx.Exec(`
		INSERT INTO responses (id, event_id, guest_name, normalized_name, normalized_phone,
			email, comment, status, total_people, children)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, resp.ID, resp.EventID, resp.GuestName, resp.NormalizedName, resp.NormalizedPhone,
		resp.Email, resp.Comment, resp.Status, resp.TotalPeople, resp.Children)
	if err != nil {
		return errors.Wrap(err, "inserting response")
	}

	return errors.Wrap(tx.Commit(), "committing replace transaction")
}

// GetResponsesForEvent retrieves every live response for an event,
// newest first.
func GetResponsesForEvent(db *sql.DB, eventID string) ([]*models.Response, error) {
	rows, err := db.Query(`
		SELECT id, event_id, guest_name, normalized_name, normalized_phone,
			email, comment, status, total_people, children, created_at
		FROM responses
		WHERE event_id = ?
		ORDER BY created_at DESC, id
	`, eventID)
	if err != nil {
		return nil, errors.Wrap(err, "querying responses")
	}
	defer rows.Close()

	var responses []*models.Response
	for rows.Next() {
		resp := &models.Response{}
		err := rows.Scan(&resp.ID, &resp.EventID, &resp.GuestName, &resp.NormalizedName,
			&resp.NormalizedPhone, &resp.Email, &resp.Comment, &resp.Status,
			&resp.TotalPeople, &resp.Children, &resp.CreatedAt)
		if err != nil {
			return nil, errors.Wrap(err, "scanning response")
		}
		responses = append(responses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating responses")
	}
	return responses, nil
}

// GetResponseByIdentity retrieves the live response for one identity
// key, or sql.ErrNoRows.
func GetResponseByIdentity(db *sql.DB, eventID, normalizedName, normalizedPhone string) (*models.Response, error) {
	resp := &models.Response{}
	row := db.QueryRow(`
		SELECT id, event_id, guest_name, normalized_name, normalized_phone,
			email, comment, status, total_people, children, created_at
		FROM responses
		WHERE event_id = ? AND normalized_name = ? AND normalized_phone = ?
	`, eventID, normalizedName, normalizedPhone)

	err := row.Scan(&resp.ID, &resp.EventID, &resp.GuestName, &resp.NormalizedName,
		&resp.NormalizedPhone, &resp.Email, &resp.Comment, &resp.Status,
		&resp.TotalPeople, &resp.Children, &resp.CreatedAt)
	if err != nil {
		return nil, err
	}
	return resp, nil
}
