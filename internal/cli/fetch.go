package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"trivia/internal/opentdb"
	"trivia/internal/trivia"
)

// runFetch builds the handler for the fetch command.
func runFetch(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .trivia/config.yml)")
		amount := flags.Int("amount", 0, "Number of questions (default: api.amount from config)")
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
		if *amount < 0 || *amount > 50 {
			fmt.Fprintf(stderr, "invalid arguments: --amount must be between 1 and 50\n")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Fetch failed:\n%v\n", err)
			return ExitError
		}
		if *amount > 0 {
			cfg.API.Amount = *amount
		}
		logger, err := newLogger(cfg)
		if err != nil {
			fmt.Fprintf(stderr, "Fetch failed: %v\n", err)
			return ExitError
		}
		defer func() { _ = logger.Sync() }()

		ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.API.Timeout)
		defer cancel()
		batch, err := newSource(cfg, logger).Fetch(ctx, "")
		if err != nil {
			fmt.Fprintf(stderr, "Fetch failed: %v\n", err)
			return ExitError
		}
		printRounds(stdout, batch)
		return ExitOK
	}
}

// printRounds lists each question with its answers, marking the correct one.
func printRounds(w io.Writer, batch opentdb.Batch) {
	fmt.Fprintf(w, "Session: %s\n", batch.Session)
	for i, q := range batch.Rounds.Questions {
		fmt.Fprintf(w, "\n%d. %s\n", i+1, q.Text)
		if q.Category != "" || q.Difficulty != "" {
			fmt.Fprintf(w, "   [%s, %s]\n", q.Category, q.Difficulty)
		}
		for slot, answer := range q.Answers {
			mark := " "
			if answer.Truth {
				mark = "*"
			}
			fmt.Fprintf(w, "   %s %c) %s\n", mark, answerLabel(slot), answer.Text)
		}
	}
}

func answerLabel(slot int) rune {
	if slot < 0 || slot >= trivia.AnswerCount {
		return '?'
	}
	return rune('a' + slot)
}
