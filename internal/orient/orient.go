// Package orient enumerates the axis-aligned orientations an item may be
// placed in. It mirrors the rotation handling in the source implementation's
// geometry module, where a box's dimensions are permuted onto the three
// axes rather than rotated through arbitrary angles.
package orient

import "github.com/91xusir/boxpacker3d/internal/geom"

// Policy selects how many orientations an item is considered in.
type Policy int

const (
	// Fixed keeps an item in its declared (width, depth, height)
	// orientation only.
	Fixed Policy = iota
	// AxisAligned enumerates every distinct permutation of the item's
	// three dimensions onto the (X, Y, Z) axes.
	AxisAligned
)

// Enumerate returns the set of oriented dimension triples an item may be
// placed in under policy, with duplicates removed (within eps) so that
// items with repeated dimensions — cubes, square-based cuboids — don't
// generate redundant candidates.
func Enumerate(dims geom.Vec3, policy Policy, eps float64) []geom.Vec3 {
	if policy == Fixed {
		return []geom.Vec3{dims}
	}

	perms := [][3]int{
		{0, 1, 2}, {0, 2, 1},
		{1, 0, 2}, {1, 2, 0},
		{2, 0, 1}, {2, 1, 0},
	}
	comps := [3]float64{dims.X, dims.Y, dims.Z}

	out := make([]geom.Vec3, 0, 6)
	for _, perm := range perms {
		v := geom.NewVec3(comps[perm[0]], comps[perm[1]], comps[perm[2]])
		if !containsApprox(out, v, eps) {
			out = append(out, v)
		}
	}
	return out
}

func containsApprox(vs []geom.Vec3, v geom.Vec3, eps float64) bool {
	for _, existing := range vs {
		if approxEqual(existing.X, v.X, eps) &&
			approxEqual(existing.Y, v.Y, eps) &&
			approxEqual(existing.Z, v.Z, eps) {
			return true
		}
	}
	return false
}

func approxEqual(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
