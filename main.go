package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/galaxy-generator/internal/asset"
	"github.com/iburimskiy/galaxy-generator/internal/config"
	"github.com/iburimskiy/galaxy-generator/internal/game"
	"github.com/iburimskiy/galaxy-generator/internal/panel"
)

var (
	configPath  = flag.String("config", "", "TOML file with [galaxy] parameters")
	seed        = flag.Uint64("seed", 0, "Random seed (0 picks one from the clock)")
	texturePath = flag.String("texture", "", "Point sprite image (defaults to the built-in soft circle)")
	logLevel    = flag.String("log-level", "info", "Log level: debug|info|warn|error")
)

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}

func main() {
	flag.Parse()

	level, err := parseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	params, err := config.Load(*configPath)
	if err != nil {
		logger.Error("loading config", "err", err)
		os.Exit(1)
	}

	sprite, err := asset.LoadSprite(*texturePath)
	if err != nil {
		logger.Error("loading sprite", "err", err)
		os.Exit(1)
	}

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Galaxy Generator - drag to orbit, wheel to zoom, H: panel, R: reseed, Esc/Q: quit")

	g := game.New(game.Options{
		Params: &params,
		Sprite: sprite,
		Seed:   s,
		Picker: panel.ZenityPicker,
		Logger: logger,
	})
	defer g.Close()

	logger.Info("starting", "count", params.Count, "branches", params.Branches, "seed", s)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop", "err", err)
		os.Exit(1)
	}
}
