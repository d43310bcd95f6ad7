// Package viewer shows a traced bench in an SDL2 window.
package viewer

import (
	"fmt"
	"image/color"
	"math"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/opticsim/raybench/internal/logger"
	"github.com/opticsim/raybench/pkg/optics"
)

func init() {
	// SDL calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration. XLim/YLim are the bench window the
// view covers, in bench units.
type Config struct {
	Title  string
	Width  int
	Height int
	XLim   [2]float64
	YLim   [2]float64
}

// Viewer wraps the SDL2 window and its 2D renderer.
type Viewer struct {
	config   Config
	window   *sdl.Window
	renderer *sdl.Renderer
}

// New creates the viewer window.
func New(cfg Config) (*Viewer, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	window, err := sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	logger.Info("viewer window created")
	return &Viewer{config: cfg, window: window, renderer: renderer}, nil
}

// Close destroys the window and shuts SDL2 down.
func (v *Viewer) Close() {
	if v.renderer != nil {
		v.renderer.Destroy()
	}
	if v.window != nil {
		v.window.Destroy()
	}
	sdl.Quit()
}

// Run draws the traced bench and blocks until the window is closed or ESC
// is pressed. colors must hold one entry per bundle.
func (v *Viewer) Run(elements []optics.Element, bundles [][]optics.Ray, colors []color.Color) error {
	if len(bundles) != len(colors) {
		return fmt.Errorf("need one color per ray bundle: %d bundles, %d colors", len(bundles), len(colors))
	}

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
					return nil
				}
			}
		}

		v.renderer.SetDrawColor(18, 18, 22, 255)
		v.renderer.Clear()
		v.drawElements(elements)
		v.drawRays(bundles, colors)
		v.renderer.Present()
		sdl.Delay(16)
	}
}

func (v *Viewer) toPixel(x, y float64) (int32, int32) {
	cfg := v.config
	px := (x - cfg.XLim[0]) / (cfg.XLim[1] - cfg.XLim[0]) * float64(cfg.Width)
	py := (cfg.YLim[1] - y) / (cfg.YLim[1] - cfg.YLim[0]) * float64(cfg.Height)
	return int32(px), int32(py)
}

func (v *Viewer) drawElements(elements []optics.Element) {
	v.renderer.SetDrawColor(200, 200, 210, 255)
	for _, e := range elements {
		x1, y1, x2, y2 := e.Endpoints()
		px1, py1 := v.toPixel(x1, y1)
		px2, py2 := v.toPixel(x2, y2)
		v.renderer.DrawLine(px1, py1, px2, py2)
	}
}

// drawRays follows the same polyline semantics as the PNG canvas: one
// segment per crossing, stop at the termination sentinel, extend a
// surviving ray out of the window along its exit angle.
func (v *Viewer) drawRays(bundles [][]optics.Ray, colors []color.Color) {
	for i, bundle := range bundles {
		if len(bundle) == 0 {
			continue
		}
		r, g, b, a := colors[i].RGBA()
		v.renderer.SetDrawColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))

		for j := 0; j+1 < len(bundle); j++ {
			p, q := bundle[j], bundle[j+1]
			if math.IsNaN(p.X) || math.IsNaN(q.X) {
				break
			}
			x1, y1 := v.toPixel(p.X, p.Y)
			x2, y2 := v.toPixel(q.X, q.Y)
			v.renderer.DrawLine(x1, y1, x2, y2)
		}

		last := bundle[len(bundle)-1]
		if !math.IsNaN(last.X) && !math.IsNaN(last.Theta) {
			dist := math.Hypot(v.config.XLim[1]-v.config.XLim[0], v.config.YLim[1]-v.config.YLim[0])
			x1, y1 := v.toPixel(last.X, last.Y)
			x2, y2 := v.toPixel(last.X+dist*math.Cos(last.Theta), last.Y+dist*math.Sin(last.Theta))
			v.renderer.DrawLine(x1, y1, x2, y2)
		}
	}
}
