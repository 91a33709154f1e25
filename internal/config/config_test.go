package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("TZ_OFFSET_HOURS", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.TZOffsetHours != -3 {
		t.Errorf("TZOffsetHours = %d, want -3", cfg.TZOffsetHours)
	}
	if cfg.BaseURL == "" || cfg.DatabasePath == "" || cfg.TZName == "" {
		t.Errorf("missing defaults: %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("TZ_OFFSET_HOURS", "2")
	t.Setenv("BASE_URL", "https://rsvp.example.com")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.TZOffsetHours != 2 {
		t.Errorf("TZOffsetHours = %d, want 2", cfg.TZOffsetHours)
	}
	if cfg.BaseURL != "https://rsvp.example.com" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
}
