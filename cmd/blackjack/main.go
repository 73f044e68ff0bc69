package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/console"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
)

// version is set by ldflags during build
var version = "dev"

const (
	exitOK       = 0
	exitFatal    = 1
	exitSetupErr = 2
)

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `short:"c" help:"Path to HCL configuration file" default:"blackjack.hcl"`
	Seed    int64            `help:"RNG seed for the shuffle (0 for random)" default:"0"`
	Debug   bool             `help:"Enable debug logging"`
	LogFile string           `help:"Write logs to this file instead of stderr"`
	NoColor bool             `help:"Disable coloured output"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Console Blackjack against the house dealer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	ctx.Exit(run(cli, os.Stdin, os.Stdout, os.Stderr, quartz.NewReal()))
}

func run(cli CLI, stdin io.Reader, stdout, stderr io.Writer, clock quartz.Clock) int {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return exitSetupErr
	}
	if cli.LogFile != "" {
		cfg.Log.File = cli.LogFile
	}
	if cli.Debug {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid config: %v\n", err)
		return exitSetupErr
	}

	logger, closeLog, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to set up logging: %v\n", err)
		return exitSetupErr
	}
	defer closeLog()

	rules, err := cfg.Rules()
	if err != nil {
		logger.Error("Invalid rules", "error", err)
		return exitSetupErr
	}

	seed := randutil.ResolveSeed(cli.Seed, clock)
	logger.Info("Starting session", "seed", seed, "version", version)

	d := deck.New(randutil.New(seed), deck.WithLogger(logger))
	d.Shuffle()

	var consoleOpts []console.Option
	consoleOpts = append(consoleOpts, console.WithLogger(logger))
	if cli.NoColor {
		consoleOpts = append(consoleOpts, console.WithColorProfile(termenv.Ascii))
	}
	con := console.New(stdin, stdout, consoleOpts...)

	session := game.NewSession(d, con, con,
		game.WithRules(rules),
		game.WithLogger(logger),
		game.WithClock(clock),
	)

	if err := session.Run(); err != nil {
		if errors.Is(err, deck.ErrExhausted) {
			fmt.Fprintln(stdout, "Both deck and discard pile are empty!")
			logger.Error("Deck exhausted", "error", err)
			return exitFatal
		}
		logger.Error("Session failed", "error", err)
		return exitFatal
	}
	return exitOK
}

// newLogger writes to the configured log file, or stderr when none is set
func newLogger(cfg *config.Config, stderr io.Writer) (*log.Logger, func(), error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}

	w := stderr
	closeFn := func() {}
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o666)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create log file: %w", err)
		}
		w = f
		closeFn = func() {
			if err := f.Close(); err != nil {
				log.Error("Failed to close log file", "error", err)
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "blackjack",
		Level:           level,
	})
	return logger, closeFn, nil
}
