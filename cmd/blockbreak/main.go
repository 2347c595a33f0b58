package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockbreak/config"
	"github.com/lixenwraith/blockbreak/core"
	"github.com/lixenwraith/blockbreak/frame"
	"github.com/lixenwraith/blockbreak/terminal"
)

var (
	configPath = flag.String("config", "", "Path to a TOML config file, defaults apply when empty")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/blockbreak.log")
	fpsFlag    = flag.Int("fps", 0, "Frame rate, 0 keeps the configured value")
)

func main() {
	flag.Parse()

	if logFile := core.SetupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "blockbreak: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *fpsFlag > 0 {
		cfg.Frame.FPS = *fpsFlag
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panics on this goroutine and core.Go workers restore the screen first
	core.SetCrashCleanup(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.Default()
	driver := frame.New(cfg, frame.WithLogger(logger))
	host := terminal.NewHost(screen, driver, cfg.Frame.FPS, logger)

	logger.Info("starting", "config", *configPath, "fps", cfg.Frame.FPS)
	err = host.Run(ctx)
	logger.Info("exiting", driver.Metrics().Attrs()...)
	return err
}
