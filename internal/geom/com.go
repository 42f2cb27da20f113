package geom

// CenterOfMassAccumulator accumulates weighted XY points and reports their
// mass-weighted centroid. The zero value is ready to use.
type CenterOfMassAccumulator struct {
	weightedX, weightedY float64
	totalMass            float64
}

// Add folds in a point of the given mass at (x, y).
func (c *CenterOfMassAccumulator) Add(x, y, mass float64) {
	c.weightedX += x * mass
	c.weightedY += y * mass
	c.totalMass += mass
}

// Compute returns the accumulated centroid. ok is false when the total mass
// seen so far is at or below eps — there is no meaningful centre of mass for
// an empty or massless accumulation.
func (c *CenterOfMassAccumulator) Compute(eps float64) (x, y float64, ok bool) {
	if c.totalMass <= eps {
		return 0, 0, false
	}
	return c.weightedX / c.totalMass, c.weightedY / c.totalMass, true
}

// TotalMass returns the mass accumulated so far.
func (c *CenterOfMassAccumulator) TotalMass() float64 {
	return c.totalMass
}
