// Package model defines the domain types the packing engine operates on:
// items to be packed, placed items, containers, and container templates,
// along with the validation and failure-classification types every other
// package reports through. It mirrors the Box3D/PlacedBox/Container family
// from the source implementation's model module, translated into validated
// Go constructors rather than a constructor-plus-separate-validate split.
package model

import (
	"fmt"

	"github.com/91xusir/boxpacker3d/internal/geom"
)

// Item is an unplaced object awaiting packing: its footprint dimensions (in
// the orientation supplied by the caller) and its mass.
type Item struct {
	ID   uint64
	Dims geom.Vec3
	Mass float64
}

// NewItem validates and constructs an Item. Dimensions and mass must both
// be finite and strictly positive.
func NewItem(id uint64, dims geom.Vec3, mass float64) (Item, error) {
	if !dims.IsValidDimension(0) {
		return Item{}, &ValidationError{Kind: InvalidDimension, Detail: fmt.Sprintf("item %d: dimensions %v are not all finite and positive", id, dims)}
	}
	if !geom.IsValidMagnitude(mass, 0) {
		return Item{}, &ValidationError{Kind: InvalidMass, Detail: fmt.Sprintf("item %d: mass %v is not finite and strictly positive", id, mass)}
	}
	return Item{ID: id, Dims: dims, Mass: mass}, nil
}

// Volume returns the item's volume at its declared dimensions.
func (it Item) Volume() float64 {
	return it.Dims.Volume()
}

// BaseArea returns the item's footprint area at its declared dimensions.
func (it Item) BaseArea() float64 {
	return it.Dims.BaseArea()
}
