package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.StoreDriver != "postgres" {
		t.Fatalf("StoreDriver = %q", cfg.StoreDriver)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("TokenTTL = %v", cfg.TokenTTL)
	}
	if cfg.OpenCreates {
		t.Fatal("OpenCreates defaulted true")
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("Addr = %q", cfg.Addr())
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("TOKEN_TTL", "15m")
	t.Setenv("OPEN_CREATES", "true")
	t.Setenv("SERVER_PORT", "9090")

	cfg := Load()
	if cfg.StoreDriver != "memory" {
		t.Fatalf("StoreDriver = %q", cfg.StoreDriver)
	}
	if cfg.TokenTTL != 15*time.Minute {
		t.Fatalf("TokenTTL = %v", cfg.TokenTTL)
	}
	if !cfg.OpenCreates {
		t.Fatal("OpenCreates = false")
	}
	if cfg.Addr() != ":9090" {
		t.Fatalf("Addr = %q", cfg.Addr())
	}
}

func TestBadValuesFallBack(t *testing.T) {
	t.Setenv("TOKEN_TTL", "soon")
	t.Setenv("OPEN_CREATES", "maybe")

	cfg := Load()
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("TokenTTL = %v", cfg.TokenTTL)
	}
	if cfg.OpenCreates {
		t.Fatal("OpenCreates = true")
	}
}
