// Package render draws diagnostic PNG snapshots of packed containers: a
// top-down footprint view and a side elevation. It repurposes the same
// atlas-compositing approach (disintegration/imaging for canvas creation,
// image/draw for blitting filled rectangles) for an entirely different
// picture — there is no sprite atlas here, just a packing diagram — and
// uses maruel/natural so a directory of per-container PNGs sorts the way a
// human expects ("container-2" before "container-10").
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/maruel/natural"

	"github.com/91xusir/boxpacker3d/internal/model"
)

// Options controls how a snapshot is rendered.
type Options struct {
	// PixelsPerUnit scales cavity coordinates to pixels. Defaults to 4 if
	// zero or negative.
	PixelsPerUnit float64
	// Margin is the blank border, in pixels, around the drawn cavity.
	Margin int
}

func (o Options) scale() float64 {
	if o.PixelsPerUnit <= 0 {
		return 4
	}
	return o.PixelsPerUnit
}

func (o Options) margin() int {
	if o.Margin <= 0 {
		return 10
	}
	return o.Margin
}

var palette = []color.NRGBA{
	{230, 126, 34, 255},
	{52, 152, 219, 255},
	{46, 204, 113, 255},
	{155, 89, 182, 255},
	{241, 196, 15, 255},
	{231, 76, 60, 255},
	{26, 188, 156, 255},
}

func colorFor(id uint64) color.NRGBA {
	return palette[int(id)%len(palette)]
}

// TopDown renders the container's footprint: each placed item drawn as a
// filled rectangle at its (x, y) extent, later placements drawn over
// earlier ones (matching insertion order, the same order the driver
// observes placements in).
func TopDown(c *model.Container, opts Options) *image.NRGBA {
	scale := opts.scale()
	margin := opts.margin()
	w := int(c.Cavity.X*scale) + margin*2
	h := int(c.Cavity.Y*scale) + margin*2

	img := imaging.New(w, h, color.NRGBA{245, 245, 245, 255})
	drawCavityBorder(img, margin, margin, int(c.Cavity.X*scale), int(c.Cavity.Y*scale))

	for _, p := range c.Placed {
		x0 := margin + int(p.Origin.X*scale)
		y0 := margin + int(p.Origin.Y*scale)
		x1 := margin + int((p.Origin.X+p.OrientedDims.X)*scale)
		y1 := margin + int((p.Origin.Y+p.OrientedDims.Y)*scale)
		fillRect(img, x0, y0, x1, y1, colorFor(p.Item.ID))
	}
	return img
}

// SideElevation renders the container's XZ profile, looking along the Y
// axis: each placed item drawn at its (x, z) extent.
func SideElevation(c *model.Container, opts Options) *image.NRGBA {
	scale := opts.scale()
	margin := opts.margin()
	w := int(c.Cavity.X*scale) + margin*2
	h := int(c.Cavity.Z*scale) + margin*2

	img := imaging.New(w, h, color.NRGBA{245, 245, 245, 255})
	drawCavityBorder(img, margin, margin, int(c.Cavity.X*scale), int(c.Cavity.Z*scale))

	for _, p := range c.Placed {
		x0 := margin + int(p.Origin.X*scale)
		x1 := margin + int((p.Origin.X+p.OrientedDims.X)*scale)
		// Flip vertically: z=0 (floor) belongs at the bottom of the image.
		top := c.Cavity.Z - (p.Origin.Z + p.OrientedDims.Z)
		bottom := c.Cavity.Z - p.Origin.Z
		y0 := margin + int(top*scale)
		y1 := margin + int(bottom*scale)
		fillRect(img, x0, y0, x1, y1, colorFor(p.Item.ID))
	}
	return img
}

func drawCavityBorder(img *image.NRGBA, x0, y0, w, h int) {
	border := color.NRGBA{120, 120, 120, 255}
	outline := image.Rect(x0, y0, x0+w, y0+h)
	draw.Draw(img, image.Rect(outline.Min.X, outline.Min.Y, outline.Max.X, outline.Min.Y+1), image.NewUniform(border), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(outline.Min.X, outline.Max.Y-1, outline.Max.X, outline.Max.Y), image.NewUniform(border), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(outline.Min.X, outline.Min.Y, outline.Min.X+1, outline.Max.Y), image.NewUniform(border), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(outline.Max.X-1, outline.Min.Y, outline.Max.X, outline.Max.Y), image.NewUniform(border), image.Point{}, draw.Src)
}

func fillRect(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	draw.Draw(img, image.Rect(x0, y0, x1, y1), image.NewUniform(c), image.Point{}, draw.Src)
}

// WriteSnapshots renders both views for every container and saves them
// under dir, using a naming scheme that sorts naturally by container index.
func WriteSnapshots(containers []*model.Container, dir string, opts Options) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: creating output directory: %w", err)
	}

	var written []string
	for i, c := range containers {
		topPath := filepath.Join(dir, fmt.Sprintf("container-%d-top.png", i+1))
		if err := imaging.Save(TopDown(c, opts), topPath); err != nil {
			return written, fmt.Errorf("render: saving %s: %w", topPath, err)
		}
		written = append(written, topPath)

		sidePath := filepath.Join(dir, fmt.Sprintf("container-%d-side.png", i+1))
		if err := imaging.Save(SideElevation(c, opts), sidePath); err != nil {
			return written, fmt.Errorf("render: saving %s: %w", sidePath, err)
		}
		written = append(written, sidePath)
	}

	sort.Sort(natural.StringSlice(written))
	return written, nil
}
