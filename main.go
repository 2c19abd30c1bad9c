// space-trader is a turn-based space combat roguelike for the terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"space-trader/internal/config"
	"space-trader/internal/game"
	"space-trader/internal/generate"
	"space-trader/internal/logger"
)

func main() {
	cfgPath := flag.String("config", "", "YAML file overriding the built-in ship and map settings")
	seed := flag.Int64("seed", 0, "RNG seed (0 picks one from the clock)")
	builder := flag.String("builder", "", "sector builder: space, room, bsp or random (default from config)")
	flag.Parse()

	if err := run(*cfgPath, *seed, *builder); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath string, seed int64, builderName string) error {
	closer, err := logger.Init(logger.Options{})
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	opts := game.Options{Config: cfg, Seed: seed}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if builderName != "" {
		if opts.Builder, err = generate.ByName(builderName); err != nil {
			return err
		}
	}

	g, err := game.NewTerminal(opts)
	if err != nil {
		return err
	}
	logger.For("main").WithField("seed", opts.Seed).Info("starting")
	return g.Run()
}
