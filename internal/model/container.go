package model

import (
	"fmt"

	"github.com/91xusir/boxpacker3d/internal/geom"
)

// PlacedItem is an Item that has been given a position and an orientation
// inside some container.
type PlacedItem struct {
	Item         Item
	Origin       geom.Vec3
	OrientedDims geom.Vec3
}

// AABB returns the placed item's bounding box.
func (p PlacedItem) AABB() geom.AABB {
	return geom.NewAABBFromOrigin(p.Origin, p.OrientedDims)
}

// TopZ returns the height of the placed item's top face.
func (p PlacedItem) TopZ() float64 {
	return p.Origin.Z + p.OrientedDims.Z
}

// CenterXY returns the XY centre of the item's footprint.
func (p PlacedItem) CenterXY() (float64, float64) {
	return p.AABB().CenterXY()
}

// ContainerTemplate describes a kind of container a request may open any
// number of instances of. It mirrors the source implementation's
// ContainerBlueprint.
type ContainerTemplate struct {
	ID      uint64
	Label   string
	Cavity  geom.Vec3
	MaxMass float64
}

// NewContainerTemplate validates and constructs a ContainerTemplate.
func NewContainerTemplate(id uint64, label string, cavity geom.Vec3, maxMass float64) (ContainerTemplate, error) {
	if !cavity.IsValidDimension(0) {
		return ContainerTemplate{}, &ValidationError{Kind: InvalidDimension, Detail: fmt.Sprintf("container template %d: cavity %v is not all finite and positive", id, cavity)}
	}
	if !geom.IsValidMagnitude(maxMass, 0) {
		return ContainerTemplate{}, &ValidationError{Kind: InvalidMass, Detail: fmt.Sprintf("container template %d: max mass %v is not finite and positive", id, maxMass)}
	}
	return ContainerTemplate{ID: id, Label: label, Cavity: cavity, MaxMass: maxMass}, nil
}

// Volume returns the cavity's volume.
func (t ContainerTemplate) Volume() float64 {
	return t.Cavity.Volume()
}

// Instantiate opens a new, empty Container from this template.
func (t ContainerTemplate) Instantiate() Container {
	return Container{
		TemplateID: t.ID,
		Label:      t.Label,
		Cavity:     t.Cavity,
		MaxMass:    t.MaxMass,
	}
}

// Container is an opened instance of a ContainerTemplate, holding whatever
// has been placed in it so far. It mirrors the source implementation's
// Container.
type Container struct {
	TemplateID uint64
	Label      string
	Cavity     geom.Vec3
	MaxMass    float64
	Placed     []PlacedItem
}

// TotalMass returns the sum of the mass of everything placed so far.
func (c *Container) TotalMass() float64 {
	var total float64
	for _, p := range c.Placed {
		total += p.Item.Mass
	}
	return total
}

// RemainingMass returns the mass capacity left before MaxMass is reached.
// It can go negative only if callers bypass the engine's own mass gate.
func (c *Container) RemainingMass() float64 {
	return c.MaxMass - c.TotalMass()
}

// VolumeUtilization returns the fraction of the cavity's volume occupied by
// placed items, ignoring any gaps between them.
func (c *Container) VolumeUtilization() float64 {
	cavityVolume := c.Cavity.Volume()
	if cavityVolume <= 0 {
		return 0
	}
	var used float64
	for _, p := range c.Placed {
		used += p.Item.Volume()
	}
	return used / cavityVolume
}

// Place appends a placed item to the container. Callers are responsible for
// having already verified the placement is valid; Container does not
// re-check collisions or stability.
func (c *Container) Place(p PlacedItem) {
	c.Placed = append(c.Placed, p)
}
