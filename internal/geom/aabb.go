package geom

// AABB is an axis-aligned bounding box described by its minimum and maximum
// corners.
type AABB struct {
	Min, Max Vec3
}

// NewAABBFromOrigin builds the AABB of an item placed with its minimum
// corner at origin and the given oriented dimensions.
func NewAABBFromOrigin(origin, dims Vec3) AABB {
	return AABB{Min: origin, Max: origin.Add(dims)}
}

// Dims returns the box's extent on each axis.
func (b AABB) Dims() Vec3 {
	return b.Max.Sub(b.Min)
}

// TopZ returns the maximum Z face, i.e. the height at which anything
// resting on this box would sit.
func (b AABB) TopZ() float64 {
	return b.Max.Z
}

// CenterXY returns the XY projection of the box's geometric centre.
func (b AABB) CenterXY() (float64, float64) {
	return (b.Min.X + b.Max.X) / 2, (b.Min.Y + b.Max.Y) / 2
}

// Intersects reports whether a and b overlap with positive measure on all
// three axes, using the separating-axis test. Touching faces (shared
// boundary planes) do not count as intersection — the comparison is strict
// within eps.
func Intersects(a, b AABB, eps float64) bool {
	return !(a.Max.X <= b.Min.X+eps ||
		b.Max.X <= a.Min.X+eps ||
		a.Max.Y <= b.Min.Y+eps ||
		b.Max.Y <= a.Min.Y+eps ||
		a.Max.Z <= b.Min.Z+eps ||
		b.Max.Z <= a.Min.Z+eps)
}

// Overlap1D returns the length of the overlap between intervals [a1,a2] and
// [b1,b2], or 0 if they don't overlap.
func Overlap1D(a1, a2, b1, b2 float64) float64 {
	o := min(a2, b2) - max(a1, b1)
	if o < 0 {
		return 0
	}
	return o
}

// OverlapAreaXY returns the overlap area of a and b's footprints.
func OverlapAreaXY(a, b AABB) float64 {
	ox := Overlap1D(a.Min.X, a.Max.X, b.Min.X, b.Max.X)
	oy := Overlap1D(a.Min.Y, a.Max.Y, b.Min.Y, b.Max.Y)
	return ox * oy
}

// PointInside reports whether p lies within b, closed on every face. No
// epsilon is applied here; callers that need tolerance inflate b first.
func PointInside(p Vec3, b AABB) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// WithinBounds reports whether b lies entirely inside the box
// [0, bound] x [0, bound] x [0, bound] (per-axis), within eps, and that b's
// own minimum corner is non-negative within eps.
func WithinBounds(b AABB, bound Vec3, eps float64) bool {
	if b.Min.X < -eps || b.Min.Y < -eps || b.Min.Z < -eps {
		return false
	}
	return b.Max.X <= bound.X+eps && b.Max.Y <= bound.Y+eps && b.Max.Z <= bound.Z+eps
}
