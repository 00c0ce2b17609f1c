// Package plot draws the spotter, friend and target as seen from above, with
// north at the top.
package plot

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/spotter/polar"
	"github.com/pkg/errors"
)

// Padding around the drawing so labels near the edge stay visible
const padding = 40

const markerRadius = 5

// Offset in pixels from the spotter for a vector, with y pointing down as it
// does in images.
func Project(v polar.Vector, scale float64) (dx, dy float64) {
	r := polar.ToRadians(v.Bearing)
	return scale * v.Distance * math.Sin(r), -scale * v.Distance * math.Cos(r)
}

// Pixels per unit of distance that fit both points in a square image.
func Scale(friend, target polar.Vector, size int) float64 {
	radius := float64(size)/2 - padding
	farthest := math.Max(friend.Distance, target.Distance)
	if radius <= 0 || farthest <= 0 || math.IsNaN(farthest) || math.IsInf(farthest, 0) {
		return 1
	}
	return radius / farthest
}

// Draw the scene into a new square context.
func Render(friend, target polar.Vector, size int) *gg.Context {
	c := gg.NewContext(size, size)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(size), float64(size))
	c.Fill()

	scale := Scale(friend, target, size)
	cx, cy := float64(size)/2, float64(size)/2
	fx, fy := Project(friend, scale)
	tx, ty := Project(target, scale)
	fx, fy = cx+fx, cy+fy
	tx, ty = cx+tx, cy+ty

	// North marker
	c.SetRGB(0.4, 0.4, 0.4)
	c.DrawStringAnchored("N", cx, padding/2, 0.5, 0.5)

	// Sight lines from the spotter
	c.SetLineWidth(1)
	c.DrawLine(cx, cy, fx, fy)
	c.DrawLine(cx, cy, tx, ty)
	c.Stroke()

	// The leg we actually computed
	c.SetLineWidth(2)
	c.SetRGB(1, 1, 0)
	c.DrawLine(fx, fy, tx, ty)
	c.Stroke()

	drawMarker(c, cx, cy, "S", 1, 1, 1)
	drawMarker(c, fx, fy, "F", 0, 1, 1)
	drawMarker(c, tx, ty, "T", 1, 0.2, 0.2)
	return c
}

func drawMarker(c *gg.Context, x, y float64, label string, r, g, b float64) {
	c.SetRGB(r, g, b)
	c.DrawCircle(x, y, markerRadius)
	c.Fill()
	c.DrawStringAnchored(label, x+markerRadius*2, y-markerRadius*2, 0, 0.5)
}

func SavePNG(path string, friend, target polar.Vector, size int) error {
	c := Render(friend, target, size)
	return errors.Wrapf(c.SavePNG(path), "saving plot to %s", path)
}

func EncodePNG(w io.Writer, friend, target polar.Vector, size int) error {
	c := Render(friend, target, size)
	return errors.Wrap(c.EncodePNG(w), "encoding plot")
}

// Print a saved plot inline. Only terminals that understand the iTerm image
// protocol will show anything useful.
func Show(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}
