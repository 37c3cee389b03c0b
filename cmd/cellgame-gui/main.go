//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"cellgame/internal/app"
	"cellgame/internal/logging"
	"cellgame/pkg/cell"
)

func main() {
	cfg, err := app.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := logging.New(logging.ParseLevel(cfg.LogLevel))
	defer func() { _ = logger.Sync() }()

	kind, ok := cell.Lookup(cfg.Kind)
	if !ok {
		logger.Fatal("unknown cell kind", zap.String("kind", cfg.Kind))
	}

	game := app.New(cfg, kind, logger)

	ebiten.SetWindowTitle("cellgame — " + kind.Name)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Cols*cfg.Scale, cfg.Rows*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("run game", zap.Error(err))
	}
}
