package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"golang.org/x/sync/errgroup"

	"github.com/llehouerou/sheet/internal/app"
	"github.com/llehouerou/sheet/internal/config"
	"github.com/llehouerou/sheet/internal/errmsg"
	"github.com/llehouerou/sheet/internal/logging"
	"github.com/llehouerou/sheet/internal/scroll"
	"github.com/llehouerou/sheet/internal/sheet"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	logger, logFile, err := logging.Open(cfg.Demo.LogFile, cfg.Demo.LogLevel)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpLogOpen, cfg.Demo.LogFile, err))
	}
	defer logFile.Close()

	opts, err := cfg.Sheet.Options(logger)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	s, err := sheet.New(opts, scroll.NewCoordinator(logger))
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}

	zones := zone.New()
	defer zones.Close()

	model := app.New(app.Deps{
		Sheet:      s,
		Config:     cfg,
		Zones:      zones,
		Logger:     logger,
		LoadConfig: config.Load,
	})
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.Run(ctx)
	})

	watcher, err := config.NewWatcher(func(c *config.Config, err error) {
		p.Send(app.ConfigReloadedMsg{Config: c, Err: err})
	})
	if err != nil {
		logger.Warn("config watch disabled", "error", err)
	} else {
		defer watcher.Close()
		g.Go(func() error {
			if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				p.Send(app.ConfigWatchErrorMsg{Err: err})
			}
			return nil
		})
	}

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})

	// Stop the program if another goroutine fails first.
	g.Go(func() error {
		<-ctx.Done()
		p.Quit()
		return nil
	})

	logger.Info("sheet demo started", "snap_points", len(opts.SnapPoints))
	if err := g.Wait(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
