// Package main is the entry point for the raybench tracer: it loads a
// bench description, propagates the configured rays through it and writes
// the traced paths to a PNG.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/opticsim/raybench/internal/canvas"
	"github.com/opticsim/raybench/internal/config"
	"github.com/opticsim/raybench/internal/logger"
	"github.com/opticsim/raybench/pkg/optics"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("trace failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	variants, err := cfg.Bench.ScanVariants()
	if err != nil {
		return err
	}

	xlim := [2]float64{cfg.Canvas.XLim[0], cfg.Canvas.XLim[1]}
	ylim := [2]float64{cfg.Canvas.YLim[0], cfg.Canvas.YLim[1]}
	cv := canvas.New(xlim, ylim, cfg.Canvas.Width, cfg.Canvas.Height)
	rng := rand.New(rand.NewSource(cfg.Canvas.Seed))

	start := time.Now()
	traced := 0
	for _, bench := range variants {
		elements, err := bench.BuildElements()
		if err != nil {
			return err
		}
		rays, err := bench.BuildRays()
		if err != nil {
			return err
		}

		bundles := optics.PropagateRays(elements, rays, bench.Wavelength)
		traced += len(bundles)

		if cfg.Canvas.DrawElements {
			cv.DrawElements(elements)
		}

		specs := make([]string, len(bench.Rays))
		for i, rc := range bench.Rays {
			specs[i] = rc.Color
		}
		colors, err := canvas.RayColors(specs, rng)
		if err != nil {
			return err
		}
		if err := cv.DrawRays(bundles, colors); err != nil {
			return err
		}
	}

	if err := cv.SavePNG(cfg.Canvas.Output); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Canvas.Output, err)
	}

	logger.Info("bench traced",
		zap.Int("passes", len(variants)),
		zap.Int("rays", traced),
		zap.Duration("took", time.Since(start)),
		zap.String("output", cfg.Canvas.Output),
	)
	return nil
}
