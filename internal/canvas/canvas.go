// Package canvas renders traced ray bundles to an image.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/opticsim/raybench/pkg/optics"
)

// Canvas maps a window of the bench plane onto a raster image.
type Canvas struct {
	dc            *gg.Context
	xmin, xmax    float64
	ymin, ymax    float64
	width, height int
}

// New creates a blank white canvas covering the bench window
// [xlim[0],xlim[1]] x [ylim[0],ylim[1]].
func New(xlim, ylim [2]float64, width, height int) *Canvas {
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	return &Canvas{
		dc:   dc,
		xmin: xlim[0], xmax: xlim[1],
		ymin: ylim[0], ymax: ylim[1],
		width: width, height: height,
	}
}

// toPixel maps bench coordinates to raster coordinates; raster Y grows
// downward.
func (c *Canvas) toPixel(x, y float64) (float64, float64) {
	px := (x - c.xmin) / (c.xmax - c.xmin) * float64(c.width)
	py := (c.ymax - y) / (c.ymax - c.ymin) * float64(c.height)
	return px, py
}

// DrawElements draws each element as its aperture segment, labelled when
// the element carries a name.
func (c *Canvas) DrawElements(elements []optics.Element) {
	c.dc.SetLineWidth(3)
	c.dc.SetRGB(0.2, 0.2, 0.2)
	for _, e := range elements {
		x1, y1, x2, y2 := e.Endpoints()
		px1, py1 := c.toPixel(x1, y1)
		px2, py2 := c.toPixel(x2, y2)
		c.dc.DrawLine(px1, py1, px2, py2)
		c.dc.Stroke()

		if name := e.Name(); name != "" {
			px, py := c.toPixel(e.Position())
			c.dc.DrawStringAnchored(name, px, py-8, 0.5, 1)
		}
	}
}

// DrawRays draws one polyline per traced ray: a segment per element
// crossing, stopping at the termination sentinel, and for a ray that
// survives the whole bench a final segment extended past the last element
// by the window diagonal along its exit angle.
//
// colors must hold exactly one entry per bundle; a mismatch is a caller
// error, not a drawing outcome.
func (c *Canvas) DrawRays(bundles [][]optics.Ray, colors []color.Color) error {
	if len(bundles) != len(colors) {
		return fmt.Errorf("need one color per ray bundle: %d bundles, %d colors", len(bundles), len(colors))
	}

	c.dc.SetLineWidth(1.5)
	for i, bundle := range bundles {
		if len(bundle) == 0 {
			continue
		}
		c.dc.SetColor(colors[i])

		for j := 0; j+1 < len(bundle); j++ {
			a, b := bundle[j], bundle[j+1]
			if math.IsNaN(a.X) || math.IsNaN(b.X) {
				break
			}
			x1, y1 := c.toPixel(a.X, a.Y)
			x2, y2 := c.toPixel(b.X, b.Y)
			c.dc.DrawLine(x1, y1, x2, y2)
		}

		last := bundle[len(bundle)-1]
		if !math.IsNaN(last.X) && !math.IsNaN(last.Theta) {
			dist := math.Hypot(c.xmax-c.xmin, c.ymax-c.ymin)
			x1, y1 := c.toPixel(last.X, last.Y)
			x2, y2 := c.toPixel(last.X+dist*math.Cos(last.Theta), last.Y+dist*math.Sin(last.Theta))
			c.dc.DrawLine(x1, y1, x2, y2)
		}
		c.dc.Stroke()
	}
	return nil
}

// Image returns the rendered image.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}
