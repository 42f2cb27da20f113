package placer

import (
	"math"

	"github.com/91xusir/boxpacker3d/internal/geom"
	"github.com/91xusir/boxpacker3d/internal/model"
	"github.com/91xusir/boxpacker3d/internal/packconfig"
)

// passesAllGates runs every stability gate against a candidate origin, in
// the documented order, short-circuiting on the first failure.
func passesAllGates(c *model.Container, origin, dims geom.Vec3, itemMass float64, cfg packconfig.Config) bool {
	candidate := geom.NewAABBFromOrigin(origin, dims)

	if !withinBoundsGate(candidate, c.Cavity, cfg.GeneralEpsilon) {
		return false
	}
	if !noCollisionGate(c, candidate, cfg.GeneralEpsilon) {
		return false
	}
	if !massCapGate(c, itemMass, cfg.GeneralEpsilon) {
		return false
	}

	supporters := coplanarSupporters(c, origin.Z, cfg.HeightEpsilon)

	if !supportRatioGate(candidate, origin.Z, supporters, cfg) {
		return false
	}
	if !weightHierarchyGate(candidate, itemMass, supporters, cfg.GeneralEpsilon) {
		return false
	}
	if !overhangGate(candidate, origin.Z, supporters, cfg) {
		return false
	}
	if !balanceGate(c, candidate, itemMass, cfg) {
		return false
	}
	return true
}

// withinBoundsGate is gate 1.
func withinBoundsGate(candidate geom.AABB, cavity geom.Vec3, eps float64) bool {
	return geom.WithinBounds(candidate, cavity, eps)
}

// noCollisionGate is gate 2.
func noCollisionGate(c *model.Container, candidate geom.AABB, eps float64) bool {
	for _, p := range c.Placed {
		if geom.Intersects(candidate, p.AABB(), eps) {
			return false
		}
	}
	return true
}

// massCapGate is gate 3.
func massCapGate(c *model.Container, itemMass, eps float64) bool {
	return c.TotalMass()+itemMass <= c.MaxMass+eps
}

// coplanarSupporters returns the existing placements whose top face sits
// within HeightEpsilon of z. An empty result with z essentially on the
// floor is expected and handled by callers.
func coplanarSupporters(c *model.Container, z, heightEps float64) []model.PlacedItem {
	var out []model.PlacedItem
	for _, p := range c.Placed {
		if math.Abs(p.TopZ()-z) < heightEps {
			out = append(out, p)
		}
	}
	return out
}

func onFloor(z, heightEps float64) bool {
	return z < heightEps
}

// supportRatioGate is gate 4. Items resting on the floor are exempt.
func supportRatioGate(candidate geom.AABB, z float64, supporters []model.PlacedItem, cfg packconfig.Config) bool {
	if onFloor(z, cfg.HeightEpsilon) {
		return true
	}
	dims := candidate.Dims()
	required := cfg.SupportRatio * dims.X * dims.Y

	var actual float64
	for _, p := range supporters {
		actual += geom.OverlapAreaXY(candidate, p.AABB())
	}
	return actual >= required-cfg.GeneralEpsilon
}

// weightHierarchyGate is gate 5: no heavier item may rest on a lighter one.
func weightHierarchyGate(candidate geom.AABB, itemMass float64, supporters []model.PlacedItem, eps float64) bool {
	for _, p := range supporters {
		if geom.OverlapAreaXY(candidate, p.AABB()) > eps {
			if itemMass > p.Item.Mass+eps {
				return false
			}
		}
	}
	return true
}

// overhangGate is gate 6: the item's XY centre must be on the floor or
// inside the footprint of at least one coplanar supporter.
func overhangGate(candidate geom.AABB, z float64, supporters []model.PlacedItem, cfg packconfig.Config) bool {
	if onFloor(z, cfg.HeightEpsilon) {
		return true
	}
	cx, cy := candidate.CenterXY()
	center := geom.NewVec3(cx, cy, z)
	for _, p := range supporters {
		if geom.PointInside(center, p.AABB()) {
			return true
		}
	}
	return false
}

// balanceGate is gate 7: the post-insertion centre of mass must stay within
// the configured fraction of the cavity's base diagonal from its centre.
func balanceGate(c *model.Container, candidate geom.AABB, itemMass float64, cfg packconfig.Config) bool {
	var acc geom.CenterOfMassAccumulator
	for _, p := range c.Placed {
		x, y := p.CenterXY()
		acc.Add(x, y, p.Item.Mass)
	}
	cx, cy := candidate.CenterXY()
	acc.Add(cx, cy, itemMass)

	x, y, ok := acc.Compute(cfg.GeneralEpsilon)
	if !ok {
		return true
	}

	baseCenterX, baseCenterY := c.Cavity.X/2, c.Cavity.Y/2
	dist := geom.NewVec3(x, y, 0).Distance2D(geom.NewVec3(baseCenterX, baseCenterY, 0))

	diag := math.Sqrt(c.Cavity.X*c.Cavity.X + c.Cavity.Y*c.Cavity.Y)
	limit := cfg.BalanceLimitRatio*diag + cfg.GeneralEpsilon
	return dist <= limit
}
