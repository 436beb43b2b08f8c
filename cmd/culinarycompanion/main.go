// Culinary Companion — a personal kitchen manager for the terminal.
//
// Usage:
//
//	culinarycompanion [-verbose] [-quiet] [-data-dir DIR] [-seed]
package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/culinarycompanion/internal/display"
	"github.com/hammamikhairi/culinarycompanion/internal/domain"
	"github.com/hammamikhairi/culinarycompanion/internal/engine"
	"github.com/hammamikhairi/culinarycompanion/internal/logger"
	"github.com/hammamikhairi/culinarycompanion/internal/storage"
)

func main() {
	_ = godotenv.Load()

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", filepath.Join(dataDirDefault(), "culinary.log"), "file to write logs to (use \"stderr\" to log to console)")
	dataDir := flag.String("data-dir", dataDirDefault(), "directory for the state file and exports")
	seed := flag.Bool("seed", false, "load sample recipes and pantry items when the state is empty")
	flag.Parse()

	// Configure logger.
	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the TUI stays clean.
	logOut, closeLog, err := logger.OpenFile(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (falling back to stderr)\n", err)
		logOut = os.Stderr
		closeLog = func() {}
	}
	defer closeLog()

	// Redirect Go's default log package to the same output so third-party
	// libs don't write over the terminal.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire dependencies.
	statePath := filepath.Join(*dataDir, "state.json")
	store := storage.NewFileStore(statePath, log)

	eng, err := engine.New(ctx, store, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *seed {
		state := eng.State()
		if len(state.Recipes) == 0 && len(state.Inventory) == 0 {
			eng.ReplaceState(ctx, domain.SampleState())
			log.Info("seeded sample state")
		} else {
			log.Info("seed requested but state is not empty, skipping")
		}
	}

	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render("  Recipes, pantry, and shopping lists. Press 'q' to quit."))
	fmt.Println()

	ui := display.NewUI(eng, log, *dataDir)
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// dataDirDefault keeps state under the user's home directory, falling
// back to a local dot-directory when home cannot be resolved.
func dataDirDefault() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".culinary"
	}
	return filepath.Join(home, ".culinary")
}
