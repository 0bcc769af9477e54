package settings

import (
	"path/filepath"
	"testing"
)

func tempStore(t *testing.T) *SQLStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetIntDefault(t *testing.T) {
	s := tempStore(t)
	if got := s.GetInt(0, "live_display_hinted", -3); got != -3 {
		t.Fatalf("expected default -3, got %d", got)
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	s := tempStore(t)
	if err := s.PutInt(0, "display_temperature_mode", 2); err != nil {
		t.Fatalf("PutInt: %v", err)
	}
	if got := s.GetInt(0, "display_temperature_mode", 0); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}

	// Overwrite
	if err := s.PutInt(0, "display_temperature_mode", 4); err != nil {
		t.Fatalf("PutInt overwrite: %v", err)
	}
	if got := s.GetInt(0, "display_temperature_mode", 0); got != 4 {
		t.Fatalf("expected 4 after overwrite, got %d", got)
	}
}

func TestPerUserIsolation(t *testing.T) {
	s := tempStore(t)
	if err := s.PutInt(0, "live_display_hinted", 1); err != nil {
		t.Fatalf("PutInt user 0: %v", err)
	}
	if err := s.PutInt(10, "live_display_hinted", -2); err != nil {
		t.Fatalf("PutInt user 10: %v", err)
	}
	if got := s.GetInt(0, "live_display_hinted", -3); got != 1 {
		t.Fatalf("user 0: expected 1, got %d", got)
	}
	if got := s.GetInt(10, "live_display_hinted", -3); got != -2 {
		t.Fatalf("user 10: expected -2, got %d", got)
	}
	if got := s.GetInt(11, "live_display_hinted", -3); got != -3 {
		t.Fatalf("user 11: expected default -3, got %d", got)
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory()
	if got := m.GetInt(0, "k", 7); got != 7 {
		t.Fatalf("expected default 7, got %d", got)
	}
	if err := m.PutInt(0, "k", -1); err != nil {
		t.Fatalf("PutInt: %v", err)
	}
	if got := m.GetInt(0, "k", 7); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}
