// dungeon-crawler is a turn-based terminal dungeon crawler. Build:
//
//	go build -o dungeon-crawler .
//
// Usage:
//
//	./dungeon-crawler [-config crawler.toml] [-seed 42] [-monsters monsters.yaml]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/data"
	"dungeon-crawler/internal/game"

	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to a TOML config file (defaults are used when empty)")
	monstersPath := flag.String("monsters", "", "Path to a YAML monster table (the built-in table is used when empty)")
	seed := flag.Int64("seed", 0, "Level seed; 0 uses the config seed, or the clock when that is 0 too")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	if *seed != 0 {
		cfg.Session.Seed = *seed
	}
	if cfg.Session.Seed == 0 {
		cfg.Session.Seed = time.Now().UnixNano()
	}

	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	monsters, err := loadMonsters(*monstersPath)
	if err != nil {
		return err
	}

	g, err := game.New(cfg, monsters, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting", zap.Int64("seed", cfg.Session.Seed), zap.Duration("tick_rate", cfg.Session.TickRate))
	return g.Run(ctx)
}

func loadMonsters(path string) (*data.MonsterTable, error) {
	if path == "" {
		return data.LoadMonsters()
	}
	return data.LoadMonsterFile(path)
}
