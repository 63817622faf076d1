// mapgen prints generated levels as ASCII and checks them for overlapping
// rooms and unreachable room centers. Build:
//
//	go build -o mapgen ./cmd/mapgen
//
// Usage:
//
//	./mapgen [-config crawler.toml] [-seed 42] [-check 500]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/gamemap"
	"dungeon-crawler/internal/generate"
	"dungeon-crawler/internal/rng"

	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("mapgen", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to a TOML config file")
	seed := fs.Int64("seed", 0, "Seed of the level to print")
	check := fs.Int("check", 0, "Validate this many consecutive seeds starting at -seed instead of printing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	// The terminal is free here, so logs go to stderr.
	cfg.Logging.File = "stderr"
	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	if *check > 0 {
		return checkSeeds(cfg.Generation(), *seed, *check, log, out)
	}

	res, err := generate.Build(cfg.Generation(), rng.New(*seed), log)
	if err != nil {
		return err
	}
	fmt.Fprint(out, renderASCII(res))
	fmt.Fprintf(out, "seed %d  rooms %d  start %v  floor %d\n",
		*seed, len(res.Rooms), res.PlayerStart, res.Map.CountFloor())
	return generate.Validate(res)
}

// checkSeeds builds and validates n levels and reports every failing seed.
func checkSeeds(cfg generate.Config, first int64, n int, log *zap.Logger, out io.Writer) error {
	var errs []error
	for s := first; s < first+int64(n); s++ {
		res, err := generate.Build(cfg, rng.New(s), log)
		if err == nil {
			err = generate.Validate(res)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("seed %d: %w", s, err))
		}
	}
	fmt.Fprintf(out, "checked %d seeds, %d failed\n", n, len(errs))
	return errors.Join(errs...)
}

// renderASCII draws walls as '#', floor as '.', the player start as '@' and
// monster spawn points as 'M'.
func renderASCII(res *generate.Result) string {
	marks := map[gamemap.Point]byte{res.PlayerStart: '@'}
	for _, p := range generate.SpawnPoints(res.Rooms) {
		marks[p] = 'M'
	}

	var b strings.Builder
	b.Grow((res.Map.Width + 1) * res.Map.Height)
	for y := 0; y < res.Map.Height; y++ {
		for x := 0; x < res.Map.Width; x++ {
			p := gamemap.Pt(x, y)
			switch {
			case marks[p] != 0:
				b.WriteByte(marks[p])
			case res.Map.At(p) == gamemap.TileFloor:
				b.WriteByte('.')
			default:
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
