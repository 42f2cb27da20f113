// Package diagnostics computes the per-container and aggregated balance and
// support metrics the driver recomputes after every placement. There is no
// upstream source file for this component — the source implementation's
// API layer references diagnostics types that are not present in its
// optimizer module — so the shapes here were designed directly, built in
// the style of the rest of the engine.
package diagnostics

import (
	"math"

	"github.com/91xusir/boxpacker3d/internal/geom"
	"github.com/91xusir/boxpacker3d/internal/model"
	"github.com/91xusir/boxpacker3d/internal/packconfig"
)

// SupportSample records one placed item's support percentage.
type SupportSample struct {
	ObjectID       uint64  `json:"object_id"`
	SupportPercent float64 `json:"support_percent"`
	RestsOnFloor   bool    `json:"rests_on_floor"`
}

// ContainerDiagnostics summarizes one container's balance and support
// state, recomputed after every successful placement into it.
type ContainerDiagnostics struct {
	CenterOfMassOffset    float64         `json:"center_of_mass_offset"`
	BalanceLimit          float64         `json:"balance_limit"`
	ImbalanceRatio        float64         `json:"imbalance_ratio"`
	AverageSupportPercent float64         `json:"average_support_percent"`
	MinimumSupportPercent float64         `json:"minimum_support_percent"`
	SupportSamples        []SupportSample `json:"support_samples"`
}

// Compute derives the diagnostics for a container as it currently stands.
func Compute(c *model.Container, cfg packconfig.Config) ContainerDiagnostics {
	diag := math.Sqrt(c.Cavity.X*c.Cavity.X + c.Cavity.Y*c.Cavity.Y)
	balanceLimit := cfg.BalanceLimitRatio * diag

	var acc geom.CenterOfMassAccumulator
	for _, p := range c.Placed {
		x, y := p.CenterXY()
		acc.Add(x, y, p.Item.Mass)
	}

	var offset float64
	if x, y, ok := acc.Compute(cfg.GeneralEpsilon); ok {
		baseX, baseY := c.Cavity.X/2, c.Cavity.Y/2
		offset = geom.NewVec3(x, y, 0).Distance2D(geom.NewVec3(baseX, baseY, 0))
	}

	var imbalance float64
	if balanceLimit > 0 {
		imbalance = offset / balanceLimit
	}

	samples := supportSamples(c, cfg)

	avg, min := summarizeSupport(samples)

	return ContainerDiagnostics{
		CenterOfMassOffset:    offset,
		BalanceLimit:          balanceLimit,
		ImbalanceRatio:        imbalance,
		AverageSupportPercent: avg,
		MinimumSupportPercent: min,
		SupportSamples:        samples,
	}
}

func supportSamples(c *model.Container, cfg packconfig.Config) []SupportSample {
	samples := make([]SupportSample, 0, len(c.Placed))
	for _, p := range c.Placed {
		samples = append(samples, sampleFor(c, p, cfg))
	}
	return samples
}

func sampleFor(c *model.Container, p model.PlacedItem, cfg packconfig.Config) SupportSample {
	if p.Origin.Z < cfg.HeightEpsilon {
		return SupportSample{ObjectID: p.Item.ID, SupportPercent: 100, RestsOnFloor: true}
	}

	baseArea := p.OrientedDims.BaseArea()
	var supported float64
	for _, other := range c.Placed {
		if other.Item.ID == p.Item.ID {
			continue
		}
		if math.Abs(other.TopZ()-p.Origin.Z) < cfg.HeightEpsilon {
			supported += geom.OverlapAreaXY(p.AABB(), other.AABB())
		}
	}

	var percent float64
	if baseArea > 0 {
		percent = supported / baseArea * 100
	}
	return SupportSample{ObjectID: p.Item.ID, SupportPercent: percent, RestsOnFloor: false}
}

func summarizeSupport(samples []SupportSample) (average, minimum float64) {
	if len(samples) == 0 {
		return 0, 0
	}
	minimum = math.Inf(1)
	var total float64
	for _, s := range samples {
		total += s.SupportPercent
		if s.SupportPercent < minimum {
			minimum = s.SupportPercent
		}
	}
	return total / float64(len(samples)), minimum
}

// Summary aggregates diagnostics across every container opened during a
// packing run.
type Summary struct {
	MaxImbalanceRatio     float64 `json:"max_imbalance_ratio"`
	WorstSupportPercent   float64 `json:"worst_support_percent"`
	AverageSupportPercent float64 `json:"average_support_percent"`
}

// Aggregate rolls up every container's diagnostics into a single summary.
// Support percentages are averaged across every individual placement
// (unweighted), not per-container.
func Aggregate(perContainer []ContainerDiagnostics) Summary {
	if len(perContainer) == 0 {
		return Summary{}
	}

	var maxImbalance float64
	worstSupport := math.Inf(1)
	var totalSupport float64
	var sampleCount int

	for _, d := range perContainer {
		if d.ImbalanceRatio > maxImbalance {
			maxImbalance = d.ImbalanceRatio
		}
		for _, s := range d.SupportSamples {
			if s.SupportPercent < worstSupport {
				worstSupport = s.SupportPercent
			}
			totalSupport += s.SupportPercent
			sampleCount++
		}
	}

	if sampleCount == 0 {
		return Summary{MaxImbalanceRatio: maxImbalance}
	}

	return Summary{
		MaxImbalanceRatio:     maxImbalance,
		WorstSupportPercent:   worstSupport,
		AverageSupportPercent: totalSupport / float64(sampleCount),
	}
}
