// Package placer searches a container for a stable position to accept a
// single oriented item. It implements the z-level/XY-grid candidate
// generation and the seven stability gates from the source implementation's
// find_stable_position, preserving its first-passing-candidate-wins
// semantics rather than scoring and minimising across candidates.
package placer

import (
	"github.com/91xusir/boxpacker3d/internal/geom"
	"github.com/91xusir/boxpacker3d/internal/model"
	"github.com/91xusir/boxpacker3d/internal/packconfig"
)

// Placement is a found origin for an oriented item inside a container.
type Placement struct {
	Origin geom.Vec3
}

// Find searches container c for a stable position to place an item with
// mass itemMass and oriented dimensions dims, in the candidate order
// documented by the engine: z ascending, then y ascending, then x
// ascending. It returns the first candidate that passes every gate.
func Find(c *model.Container, dims geom.Vec3, itemMass float64, cfg packconfig.Config) (Placement, bool) {
	zLevels := candidateZLevels(c, dims, cfg)
	for _, z := range zLevels {
		freeX := c.Cavity.X - dims.X
		freeY := c.Cavity.Y - dims.Y
		for _, y := range axisCandidates(freeY, cfg.GridStep) {
			for _, x := range axisCandidates(freeX, cfg.GridStep) {
				origin := geom.NewVec3(x, y, z)
				if passesAllGates(c, origin, dims, itemMass, cfg) {
					return Placement{Origin: origin}, true
				}
			}
		}
	}
	return Placement{}, false
}

// candidateZLevels returns the floor plus the top of every existing
// placement, deduplicated within HeightEpsilon, filtered to levels that
// leave room for the item's height, sorted ascending.
func candidateZLevels(c *model.Container, dims geom.Vec3, cfg packconfig.Config) []float64 {
	levels := []float64{0}
	for _, p := range c.Placed {
		levels = append(levels, p.TopZ())
	}

	levels = dedupeSorted(levels, cfg.HeightEpsilon)

	out := levels[:0:0]
	for _, z := range levels {
		if z+dims.Z <= c.Cavity.Z+cfg.GeneralEpsilon {
			out = append(out, z)
		}
	}
	return out
}

// axisCandidates returns {0, g, 2g, ...} strictly less than free, plus free
// itself, so the far edge of the cavity is always probed. If free <= 0 the
// only candidate is 0.
func axisCandidates(free, step float64) []float64 {
	if free <= 0 {
		return []float64{0}
	}
	var out []float64
	for v := 0.0; v < free; v += step {
		out = append(out, v)
	}
	out = append(out, free)
	return out
}

func dedupeSorted(vs []float64, eps float64) []float64 {
	sorted := append([]float64(nil), vs...)
	insertionSort(sorted)

	out := sorted[:0:0]
	for _, v := range sorted {
		if len(out) == 0 || v-out[len(out)-1] > eps {
			out = append(out, v)
		}
	}
	return out
}

func insertionSort(vs []float64) {
	for i := 1; i < len(vs); i++ {
		for j := i; j > 0 && vs[j] < vs[j-1]; j-- {
			vs[j], vs[j-1] = vs[j-1], vs[j]
		}
	}
}
