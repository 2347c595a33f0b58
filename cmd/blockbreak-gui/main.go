package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/blockbreak/config"
	"github.com/lixenwraith/blockbreak/core"
	"github.com/lixenwraith/blockbreak/frame"
	"github.com/lixenwraith/blockbreak/gui"
)

var (
	configPath = flag.String("config", "", "Path to a TOML config file, defaults apply when empty")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/blockbreak.log")
	fpsFlag    = flag.Int("fps", 0, "Ticks per second, 0 keeps the configured value")
)

func main() {
	flag.Parse()

	if logFile := core.SetupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "blockbreak-gui: %v\n", err)
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

	logger := slog.Default()
	driver := frame.New(cfg, frame.WithLogger(logger))

	ebiten.SetWindowTitle("Block Break")
	ebiten.SetWindowSize(int(cfg.Canvas.Width), int(cfg.Canvas.Height))
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(cfg.Frame.FPS)

	logger.Info("starting", "config", *configPath, "tps", cfg.Frame.FPS)
	if err := ebiten.RunGame(gui.NewGame(driver, logger)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	logger.Info("exiting", driver.Metrics().Attrs()...)
	return nil
}
