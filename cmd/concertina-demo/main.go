package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/tinytelemetry/concertina/accordion"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	var configPath string
	var deckPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/concertina/config.yml)")
	flag.StringVar(&deckPath, "deck", "", "deck file describing the cards to show")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("Concertina - Collapsible Panels Demo\n")
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Built:   %s\n", buildTime)
		return
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if deckPath != "" {
		cfg.DeckPath = deckPath
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg cliConfig) error {
	logger, cleanup, err := newLogger(cfg.DebugLog)
	if err != nil {
		return err
	}
	defer cleanup()

	spec, err := cfg.transitionSpec()
	if err != nil {
		return err
	}

	title, cards, feed, err := buildDeck(cfg)
	if err != nil {
		return err
	}

	acc := accordion.New(
		accordion.WithTransition(spec),
		accordion.WithFPS(cfg.FPS),
		accordion.WithLogger(logger),
	)
	defer acc.Close()

	app := newApp(cfg, acc, spec, title, cards, feed)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil {
			if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
				return fmt.Errorf("the demo requires a real terminal")
			}
			return fmt.Errorf("error running program: %w", err)
		}
		return nil
	})

	// Feed goroutine: streams synthetic samples into the program until the
	// UI exits.
	g.Go(func() error {
		gen := newSampleGen(time.Now().UnixNano())
		ticker := time.NewTicker(cfg.FeedInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case t := <-ticker.C:
				p.Send(sampleMsg{sample: gen.next(t)})
			}
		}
	})

	return g.Wait()
}

// newLogger opens the debug log sink. Interaction decode failures and other
// diagnostics land there; without a path they are discarded, since stderr
// belongs to the TUI.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening debug log: %w", err)
	}
	logger := log.New(f)
	logger.SetLevel(log.DebugLevel)
	logger.SetReportTimestamp(true)
	return logger, func() { f.Close() }, nil
}
