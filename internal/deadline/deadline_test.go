package deadline

import (
	"errors"
	"testing"
	"time"
)

func testGate() *Gate {
	return NewGate("America/Sao_Paulo", -3)
}

func TestResolveSplitFields(t *testing.T) {
	g := testGate()

	got, err := g.Resolve(ResolveInput{Date: "2026-09-10", Time: "18:30"})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	want := time.Date(2026, 9, 10, 18, 30, 0, 0, time.FixedZone("America/Sao_Paulo", -3*3600))
	if !got.Equal(want) {
		t.Errorf("Resolve = %v, want %v", got, want)
	}
}

func TestResolveSplitFieldsTakePriority(t *testing.T) {
	g := testGate()
	start := time.Date(2026, 9, 12, 20, 0, 0, 0, time.UTC)

	got, err := g.Resolve(ResolveInput{
		Date:   "2026-09-10",
		Time:   "18:30",
		Legacy: "2026-09-01T00:00:00Z",
		Start:  start,
	})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got.UTC().Day() != 10 {
		t.Errorf("expected split fields to win, got %v", got)
	}
}

func TestResolveLegacyTimestamp(t *testing.T) {
	g := testGate()

	got, err := g.Resolve(ResolveInput{Legacy: "2026-09-01T12:00:00-03:00"})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !got.Equal(time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)) {
		t.Errorf("Resolve = %v", got)
	}
}

func TestResolveFallback24hBeforeStart(t *testing.T) {
	g := testGate()
	start := time.Date(2026, 9, 12, 20, 0, 0, 0, time.UTC)

	got, err := g.Resolve(ResolveInput{Start: start})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !got.Equal(start.Add(-24 * time.Hour)) {
		t.Errorf("Resolve = %v, want %v", got, start.Add(-24*time.Hour))
	}
}

func TestResolveNoInputsFails(t *testing.T) {
	g := testGate()

	_, err := g.Resolve(ResolveInput{})
	if !errors.Is(err, ErrUnresolvable) {
		t.Fatalf("expected ErrUnresolvable, got %v", err)
	}
}

func TestResolveMalformedSplitFieldsFail(t *testing.T) {
	g := testGate()

	if _, err := g.Resolve(ResolveInput{Date: "10/09/2026", Time: "18:30"}); err == nil {
		t.Fatal("expected error for malformed date")
	}
	if _, err := g.Resolve(ResolveInput{Legacy: "next friday"}); err == nil {
		t.Fatal("expected error for malformed legacy timestamp")
	}
}

func TestAcceptingBoundary(t *testing.T) {
	g := testGate()
	deadline := time.Date(2026, 9, 10, 21, 30, 0, 0, time.UTC)

	if !g.Accepting(deadline.Add(-time.Hour), deadline) {
		t.Error("should accept well before the deadline")
	}
	if !g.Accepting(deadline, deadline) {
		t.Error("should accept at exactly the deadline")
	}
	if g.Accepting(deadline.Add(time.Microsecond), deadline) {
		t.Error("should reject one microsecond after the deadline")
	}
}

func TestEditUntil(t *testing.T) {
	g := testGate()
	start := time.Date(2026, 9, 12, 20, 0, 0, 0, time.UTC)

	if got := g.EditUntil(start); !got.Equal(start.Add(-24 * time.Hour)) {
		t.Errorf("EditUntil = %v", got)
	}
}

func TestEventStart(t *testing.T) {
	g := testGate()

	got, err := g.EventStart("2026-09-12", "20:00")
	if err != nil {
		t.Fatalf("EventStart returned error: %v", err)
	}
	if !got.Equal(time.Date(2026, 9, 12, 23, 0, 0, 0, time.UTC)) {
		t.Errorf("EventStart = %v", got)
	}

	if _, err := g.EventStart("", ""); err == nil {
		t.Fatal("expected error for empty start fields")
	}
}
