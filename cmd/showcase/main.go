package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	oteltrace "go.opentelemetry.io/otel/trace"

	"uikit/internal/catalog"
	"uikit/internal/config"
	"uikit/internal/logging"
	"uikit/internal/schedule"
	"uikit/internal/telemetry"
	"uikit/internal/ui"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "showcase: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, closer, err := logging.Init("showcase", cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx := context.Background()
	provider, err := telemetry.NewProvider(ctx, telemetry.Config{
		Endpoint:    cfg.Telemetry.Endpoint,
		ServiceName: cfg.Telemetry.ServiceName,
		Insecure:    cfg.Telemetry.Insecure,
	})
	if err != nil {
		return err
	}
	var tp oteltrace.TracerProvider
	if provider != nil {
		tp = provider
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			if err := provider.Shutdown(shutdownCtx); err != nil {
				logger.Warn().Err(err).Msg("telemetry shutdown")
			}
		}()
	}
	rec := telemetry.NewRecorder(tp)
	defer rec.Close()

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return err
	}

	loop := schedule.NewLoop(logger)
	app := ui.NewApp(cfg, cat,
		ui.WithLoop(loop),
		ui.WithLogger(logger),
		ui.WithRecorder(rec),
	)
	defer app.Close()

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(app, opts...)
	loop.SetSender(p.Send)

	logger.Info().Str("catalog", cfg.Catalog.Path).Msg("showcase starting")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
