package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/event-rsvp/app/internal/models"
)

func setupTestDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()
	db, err := InitDB(":memory:")
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	// Every pool connection to ":memory:" would get its own empty
	// database; pin the pool to one connection.
	db.SetMaxOpenConns(1)
	teardown := func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	}
	return db, teardown
}

func createTestEvent(t *testing.T, db *sql.DB, title string) *models.Event {
	t.Helper()
	starts := time.Date(2026, 9, 12, 20, 0, 0, 0, time.UTC)
	event := &models.Event{
		ID:          uuid.NewString(),
		Title:       title,
		HostName:    "Ana",
		EventDate:   "2026-09-12",
		EventTime:   "20:00",
		Timezone:    "America/Sao_Paulo",
		Location:    "Salão 2",
		StartsAt:    starts,
		Deadline:    starts.Add(-24 * time.Hour),
		HostKeyHash: "not-a-real-hash",
	}
	created, err := CreateEvent(db, event)
	if err != nil {
		t.Fatalf("Failed to create test event %s: %v", title, err)
	}
	return created
}

func TestCreateAndGetEvent(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()

	created := createTestEvent(t, db, "Aniversário da Ana")

	got, err := GetEventByID(db, created.ID)
	if err != nil {
		t.Fatalf("GetEventByID failed: %v", err)
	}
	if got.Title != "Aniversário da Ana" || got.HostName != "Ana" {
		t.Errorf("unexpected event: %+v", got)
	}
	if !got.Deadline.Equal(created.Deadline) {
		t.Errorf("deadline changed across round trip: %v vs %v", got.Deadline, created.Deadline)
	}
	if got.CreatedAt.IsZero() {
		t.Error("created_at was not populated")
	}
}

func TestGetEventByIDNotFound(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()

	_, err := GetEventByID(db, uuid.NewString())
	if err != sql.ErrNoRows {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}
