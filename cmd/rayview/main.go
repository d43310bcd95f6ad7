// Package main is the interactive counterpart of raybench: it traces the
// configured bench and shows the result in an SDL2 window instead of
// writing a file.
package main

import (
	"fmt"
	"image/color"
	"math/rand"
	"os"

	"go.uber.org/zap"

	"github.com/opticsim/raybench/internal/canvas"
	"github.com/opticsim/raybench/internal/config"
	"github.com/opticsim/raybench/internal/logger"
	"github.com/opticsim/raybench/internal/viewer"
	"github.com/opticsim/raybench/pkg/optics"
)

func main() {
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
		logger.Error("viewer failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	variants, err := cfg.Bench.ScanVariants()
	if err != nil {
		return err
	}

	// Elements of the base bench are what gets drawn; every scan variant
	// contributes its traced rays.
	elements, err := cfg.Bench.BuildElements()
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Canvas.Seed))
	var bundles [][]optics.Ray
	var colors []color.Color
	for _, bench := range variants {
		velems, err := bench.BuildElements()
		if err != nil {
			return err
		}
		rays, err := bench.BuildRays()
		if err != nil {
			return err
		}
		bundles = append(bundles, optics.PropagateRays(velems, rays, bench.Wavelength)...)

		specs := make([]string, len(bench.Rays))
		for i, rc := range bench.Rays {
			specs[i] = rc.Color
		}
		cs, err := canvas.RayColors(specs, rng)
		if err != nil {
			return err
		}
		colors = append(colors, cs...)
	}

	v, err := viewer.New(viewer.Config{
		Title:  "raybench",
		Width:  cfg.Canvas.Width,
		Height: cfg.Canvas.Height,
		XLim:   [2]float64{cfg.Canvas.XLim[0], cfg.Canvas.XLim[1]},
		YLim:   [2]float64{cfg.Canvas.YLim[0], cfg.Canvas.YLim[1]},
	})
	if err != nil {
		return err
	}
	defer v.Close()

	return v.Run(elements, bundles, colors)
}
