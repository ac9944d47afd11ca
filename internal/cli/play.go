package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"trivia/internal/app"
	"trivia/internal/game"
	"trivia/internal/ui/play"
)

// playInput is the keyboard and mouse source of the play command.
var playInput io.Reader

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .trivia/config.yml)")
		uiMode := flags.String("ui", "auto", "UI mode: auto|live|plain")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		decision, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if !decision.useLive {
			if decision.warning != "" {
				fmt.Fprintln(stderr, decision.warning)
			}
			fmt.Fprintln(stderr, "trivia play needs an interactive terminal; use \"trivia fetch\" for plain output.")
			return ExitError
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Play failed:\n%v\n", err)
			return ExitError
		}
		logger, err := newLogger(cfg)
		if err != nil {
			fmt.Fprintf(stderr, "Play failed: %v\n", err)
			return ExitError
		}
		defer func() { _ = logger.Sync() }()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		ctrl := app.New(app.Options{
			Source:  newSource(cfg, logger),
			Context: ctx,
			Logger:  logger,
			Game: game.Options{
				Tokens:          cfg.Game.Tokens,
				HighlightPeriod: cfg.Game.HighlightPeriod,
				HighlightTicks:  cfg.Game.HighlightTicks,
				Layout:          play.ComputeLayout(play.MinWidth, play.MinHeight, cfg.Game.Tokens),
			},
		})

		in := playInput
		if in == nil {
			in = os.Stdin
		}
		logger.Info("play started", zap.String("base_url", cfg.API.BaseURL), zap.Int("tokens", cfg.Game.Tokens))
		err = play.Run(ctx, ctrl, play.Options{
			NoColor:      noColor(cfg),
			TickInterval: cfg.Game.TickInterval,
			Tokens:       cfg.Game.Tokens,
		}, in, stdout)
		if err != nil {
			logger.Error("ui stopped", zap.Error(err))
			fmt.Fprintf(stderr, "Play failed: %v\n", err)
			return ExitError
		}
		logger.Info("play finished", zap.Int("final_score", ctrl.FinalScore()))
		return ExitOK
	}
}
