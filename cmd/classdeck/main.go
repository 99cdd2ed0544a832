// ABOUTME: CLI entrypoint for the classdeck configuration panel with panel and server modes.
// ABOUTME: Wires together the TUI, REST client, SQLite-backed server, seeding, and signal handling.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/classkit/classdeck/client"
	"github.com/classkit/classdeck/server"
	"github.com/classkit/classdeck/tui"
)

var version = "dev"

// cliConfig holds all CLI configuration parsed from flags.
type cliConfig struct {
	serverMode  bool
	bind        string
	dbPath      string
	seedDir     string
	baseURL     string
	verbose     bool
	showVersion bool
}

func main() {
	loadDotEnv(".env")

	cfg := parseFlags()

	if cfg.showVersion {
		fmt.Printf("classdeck %s\n", version)
		os.Exit(0)
	}

	os.Exit(run(cfg))
}

// parseFlags parses command-line flags and returns a populated cliConfig.
func parseFlags() cliConfig {
	var cfg cliConfig

	fs := flag.NewFlagSet("classdeck", flag.ContinueOnError)
	fs.BoolVar(&cfg.serverMode, "server", false, "Start backend server mode")
	fs.StringVar(&cfg.bind, "bind", "", "Server bind address (default: 127.0.0.1:7788)")
	fs.StringVar(&cfg.dbPath, "db", "", "SQLite database path (default: ~/.classdeck/classdeck.db)")
	fs.StringVar(&cfg.seedDir, "seed", "", "Directory of seed JSON files loaded at server startup")
	fs.StringVar(&cfg.baseURL, "base-url", "", "Backend URL for panel mode (default: http://127.0.0.1:7788)")
	fs.BoolVar(&cfg.verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.showVersion, "version", false, "Print version and exit")

	fs.Usage = func() {
		printHelp(os.Stderr, version)
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	return cfg
}

// run dispatches to the appropriate mode based on the config.
// Returns an exit code: 0 for success, 1 for failure.
func run(cfg cliConfig) int {
	if cfg.serverMode {
		return runServer(cfg)
	}
	return runPanel(cfg)
}

// runPanel starts the interactive configuration panel against the backend.
func runPanel(cfg cliConfig) int {
	baseURL := resolveBaseURL(cfg.baseURL)
	if cfg.verbose {
		fmt.Fprintf(os.Stderr, "[panel] backend %s\n", baseURL)
	}

	var opts []client.Option
	if timeout := resolveTimeout(); timeout > 0 {
		opts = append(opts, client.WithTimeout(timeout))
	}
	api := client.New(baseURL, opts...)

	// Quitting the TUI cancels any in-flight requests.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model := tui.NewAppModel(ctx, api)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

// runServer starts the REST backend.
func runServer(cfg cliConfig) int {
	srvCfg, err := server.ConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	// Flags override the environment.
	if cfg.bind != "" {
		srvCfg.Bind = cfg.bind
	}
	if cfg.dbPath != "" {
		srvCfg.DBPath = cfg.dbPath
	}
	if cfg.seedDir != "" {
		srvCfg.SeedDir = cfg.seedDir
	}

	if err := os.MkdirAll(dirOf(srvCfg.DBPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	store, err := server.Open(srvCfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer store.Close()

	if srvCfg.SeedDir != "" {
		n, err := server.Seed(store, srvCfg.SeedDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: seed: %v\n", err)
			return 1
		}
		if cfg.verbose {
			fmt.Fprintf(os.Stderr, "[seed] loaded %d resources from %s\n", n, srvCfg.SeedDir)
		}
	}

	srv := server.NewServer(store)

	// Set up context with signal handling for graceful shutdown.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nInterrupted, shutting down...")
		cancel()
	}()

	httpServer := &http.Server{
		Addr:    srvCfg.Bind,
		Handler: srv,
	}

	go func() {
		<-ctx.Done()
		httpServer.Close()
	}()

	fmt.Fprintf(os.Stderr, "listening on %s (db: %s)\n", srvCfg.Bind, srvCfg.DBPath)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	return 0
}
