package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	t.Run("sqlite backend", func(t *testing.T) {
		cfg := Config{Backend: BackendSQLite}
		if err := cfg.Validate(); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("file backend", func(t *testing.T) {
		cfg := Config{Backend: BackendFile, DataDir: "/tmp/x"}
		if err := cfg.Validate(); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("empty backend", func(t *testing.T) {
		cfg := Config{}
		if err := cfg.Validate(); !errors.Is(err, ErrBackendEmpty) {
			t.Fatalf("expected ErrBackendEmpty, got %v", err)
		}
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := Config{Backend: "redis"}
		if err := cfg.Validate(); !errors.Is(err, ErrBackendUnknown) {
			t.Fatalf("expected ErrBackendUnknown, got %v", err)
		}
	})
}
