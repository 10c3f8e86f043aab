package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SscSPs/currency_calculator/internal/calculator"
	"github.com/SscSPs/currency_calculator/internal/platform/app"
	"github.com/SscSPs/currency_calculator/internal/platform/config"
	"github.com/fatih/color"
)

func main() {
	// Logs go to stderr so they do not interleave with the calculator output.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		color.Red("Failed to load config: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, os.Stdin, color.Output, logger)
	stop()
	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
}

// run drives the calculator until the user quits, input ends or ctx is done.
// Everything it opens is closed before it returns.
func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, logger *slog.Logger) error {
	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer application.Close()

	session := calculator.NewSession(
		application.Services.Currency,
		application.Services.Quote,
		calculator.WithDebounce(cfg.CalcDebounce),
		calculator.WithLogger(logger),
	)
	defer session.Close()

	console := calculator.NewConsole(session, out)
	if err := console.Start(ctx); err != nil {
		return fmt.Errorf("failed to load data: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		console.Prompt()
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok || console.Handle(line) {
				return nil
			}
		}
	}
}
