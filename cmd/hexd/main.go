package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/charmbracelet/x/term"

	"github.com/andyrewlee/hexd/internal/cli"
	"github.com/andyrewlee/hexd/internal/logging"
)

// Version info set by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if os.Getenv("HEXD_DEBUG") != "" {
		home, _ := os.UserHomeDir()
		logDir := filepath.Join(home, ".hexd", "logs")
		if err := logging.Initialize(logDir, logging.LevelDebug); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not initialize logging: %v\n", err)
		}
	}

	// An interrupted dump is not a failure; leave the terminal on a clean
	// line and exit normally.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		fmt.Println()
		logging.Close()
		os.Exit(0)
	}()

	code := cli.Run(
		os.Stdout,
		os.Stderr,
		os.Stdin,
		term.IsTerminal(os.Stdin.Fd()),
		os.Args[1:],
		version, commit, date,
	)
	logging.Close()
	os.Exit(code)
}
