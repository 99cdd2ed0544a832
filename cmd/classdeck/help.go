// ABOUTME: Help display for the classdeck CLI with grouped flags, examples, and environment status.
// ABOUTME: Provides printHelp for usage output and envStatus for environment variable detection.
package main

import (
	"fmt"
	"io"
	"os"
)

// printHelp writes a formatted help message to w, including usage patterns,
// grouped flags, examples, and environment status.
func printHelp(w io.Writer, ver string) {
	fmt.Fprintf(w, "classdeck %s — class schedule configuration panel\n", ver)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  classdeck                           Open the interactive panel")
	fmt.Fprintln(w, "  classdeck -base-url <url>           Open the panel against a specific backend")
	fmt.Fprintln(w, "  classdeck -server [-bind <addr>]    Start the REST backend")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Panel Flags:")
	fmt.Fprintln(w, "  -base-url <url>       Backend URL (default: http://127.0.0.1:7788)")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Server Flags:")
	fmt.Fprintln(w, "  -server               Start backend server mode")
	fmt.Fprintln(w, "  -bind <addr>          Bind address (default: 127.0.0.1:7788)")
	fmt.Fprintln(w, "  -db <path>            SQLite database path (default: ~/.classdeck/classdeck.db)")
	fmt.Fprintln(w, "  -seed <dir>           Load seed JSON files at startup")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -verbose              Verbose output")
	fmt.Fprintln(w, "  -version              Print version and exit")
	fmt.Fprintln(w, "  -help                 Show this help")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  classdeck -server -seed ./seed")
	fmt.Fprintln(w, "  classdeck -base-url http://127.0.0.1:9000")
	fmt.Fprintln(w, "  classdeck -server -bind 127.0.0.1:9000 -db ./dev.db")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment:")
	fmt.Fprintf(w, "  CLASSDECK_BASE_URL    %s\n", envStatus("CLASSDECK_BASE_URL"))
	fmt.Fprintf(w, "  CLASSDECK_BIND        %s\n", envStatus("CLASSDECK_BIND"))
	fmt.Fprintf(w, "  CLASSDECK_DB          %s\n", envStatus("CLASSDECK_DB"))
	fmt.Fprintf(w, "  CLASSDECK_SEED_DIR    %s\n", envStatus("CLASSDECK_SEED_DIR"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Config file: ~/.config/classdeck/config.yaml (base_url)")
}

// envStatus returns "[set]" if the named environment variable is non-empty,
// or "[not set]" otherwise.
func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "[set]"
	}
	return "[not set]"
}
