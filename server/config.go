// ABOUTME: Server configuration loaded from CLASSDECK_* environment variables.
// ABOUTME: Refuses non-loopback binds unless remote access is explicitly enabled.
package server

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
)

// ErrNonLoopbackBind is returned when CLASSDECK_BIND names a non-loopback
// address without CLASSDECK_ALLOW_REMOTE being set.
var ErrNonLoopbackBind = errors.New(
	"CLASSDECK_BIND is a non-loopback address but CLASSDECK_ALLOW_REMOTE is not true; set CLASSDECK_ALLOW_REMOTE=true to allow remote access",
)

// Config holds server configuration loaded from environment variables.
type Config struct {
	Bind        string // Socket address (CLASSDECK_BIND, default: 127.0.0.1:7788)
	DBPath      string // SQLite database path (CLASSDECK_DB, default: ~/.classdeck/classdeck.db)
	SeedDir     string // Directory of seed JSON files loaded at startup (CLASSDECK_SEED_DIR, optional)
	AllowRemote bool   // Allow non-loopback connections (CLASSDECK_ALLOW_REMOTE, default: false)
}

// ConfigFromEnv loads configuration from CLASSDECK_* environment variables
// with sensible defaults.
func ConfigFromEnv() (*Config, error) {
	dbPath := os.Getenv("CLASSDECK_DB")
	if dbPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "/tmp"
		}
		dbPath = filepath.Join(homeDir, ".classdeck", "classdeck.db")
	}

	bind := os.Getenv("CLASSDECK_BIND")
	if bind == "" {
		bind = "127.0.0.1:7788"
	}

	allowRemote := false
	if v := os.Getenv("CLASSDECK_ALLOW_REMOTE"); v == "true" || v == "1" || v == "yes" {
		allowRemote = true
	}

	// Refuse non-loopback binds unless explicitly opting into remote access.
	// Checks both IP literals and hostnames; only 127.0.0.0/8, ::1, and
	// "localhost" are considered safe.
	if !allowRemote {
		if host, _, err := net.SplitHostPort(bind); err == nil && host != "" {
			ip := net.ParseIP(host)
			switch {
			case ip != nil && ip.IsLoopback():
				// Safe: 127.x.x.x or ::1
			case ip != nil:
				return nil, fmt.Errorf("%w: CLASSDECK_BIND=%s", ErrNonLoopbackBind, bind)
			case host == "localhost":
				// Safe: conventional loopback hostname
			default:
				return nil, fmt.Errorf("%w: CLASSDECK_BIND=%s", ErrNonLoopbackBind, bind)
			}
		}
	}

	return &Config{
		Bind:        bind,
		DBPath:      dbPath,
		SeedDir:     os.Getenv("CLASSDECK_SEED_DIR"),
		AllowRemote: allowRemote,
	}, nil
}
