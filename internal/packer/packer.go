// Package packer drives the packing engine end to end: it takes inputs
// already validated by the model constructors, orders items, tries every
// live container before opening a new
// one, classifies what cannot be placed, and recomputes diagnostics and
// emits events after every placement. It mirrors pack_objects_with_progress
// from the source implementation's optimizer module, translated into a
// single-pass, irrevocable Go driver.
package packer

import (
	"sort"

	"github.com/91xusir/boxpacker3d/internal/cluster"
	"github.com/91xusir/boxpacker3d/internal/diagnostics"
	"github.com/91xusir/boxpacker3d/internal/events"
	"github.com/91xusir/boxpacker3d/internal/geom"
	"github.com/91xusir/boxpacker3d/internal/model"
	"github.com/91xusir/boxpacker3d/internal/orient"
	"github.com/91xusir/boxpacker3d/internal/packconfig"
	"github.com/91xusir/boxpacker3d/internal/placer"
)

// Result is the outcome of a complete packing run.
type Result struct {
	Containers         []*model.Container
	Unplaced           []model.UnplacedItem
	DiagnosticsByIndex []diagnostics.ContainerDiagnostics
	Summary            diagnostics.Summary
}

// Pack runs the engine over items against templates using cfg, reporting
// progress to sink. sink may be events.NullSink{} if no observer is
// needed.
func Pack(templates []model.ContainerTemplate, items []model.Item, cfg packconfig.Config, sink events.Sink) Result {
	if sink == nil {
		sink = events.NullSink{}
	}

	policy := orient.Fixed
	if cfg.AllowItemRotation {
		policy = orient.AxisAligned
	}

	if len(items) == 0 {
		emitFinished(sink, nil, nil, cfg)
		return Result{}
	}

	sortedTemplates := sortedTemplatesByVolumeThenMass(templates)
	orderedItems := orderItems(items, cfg)

	var containers []*model.Container
	var unplaced []model.UnplacedItem

	for _, item := range orderedItems {
		if tryExistingContainers(containers, item, policy, cfg, sink) {
			continue
		}
		if tryNewContainer(&containers, sortedTemplates, item, policy, cfg, sink) {
			continue
		}
		reason := classify(sortedTemplates, item, policy, cfg)
		unplaced = append(unplaced, model.UnplacedItem{Item: item, Reason: reason})
		emitRejected(sink, item, reason)
	}

	emitFinished(sink, containers, unplaced, cfg)
	return buildResult(containers, unplaced, cfg)
}

// orderItems sorts items by (mass, volume) descending, tie-broken by
// identifier ascending, then applies footprint clustering. Clustering never
// reorders the sequence; it is metadata only (see the cluster package), so
// the returned order is exactly the primary sort's order.
func orderItems(items []model.Item, cfg packconfig.Config) []model.Item {
	sorted := append([]model.Item(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Mass != b.Mass {
			return a.Mass > b.Mass
		}
		if a.Volume() != b.Volume() {
			return a.Volume() > b.Volume()
		}
		return a.ID < b.ID
	})

	footprints := make([]cluster.Footprint, len(sorted))
	for i, it := range sorted {
		footprints[i] = cluster.Footprint{Index: i, Area: it.BaseArea()}
	}
	cluster.Cluster(footprints, cfg.FootprintClusterTolerance)

	return sorted
}

// sortedTemplatesByVolumeThenMass sorts templates ascending by (cavity
// volume, mass cap), so the first template able to fit a rejected item is
// the tightest reasonable choice.
func sortedTemplatesByVolumeThenMass(templates []model.ContainerTemplate) []model.ContainerTemplate {
	sorted := append([]model.ContainerTemplate(nil), templates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Volume() != b.Volume() {
			return a.Volume() < b.Volume()
		}
		return a.MaxMass < b.MaxMass
	})
	return sorted
}

// fitsSomeOrientation reports whether dims fits within cavity in at least
// one orientation permitted by policy, and returns that orientation.
func fitsSomeOrientation(dims, cavity geom.Vec3, policy orient.Policy, eps float64) (geom.Vec3, bool) {
	for _, o := range orient.Enumerate(dims, policy, eps) {
		if o.FitsWithin(cavity, eps) {
			return o, true
		}
	}
	return geom.Vec3{}, false
}

func tryExistingContainers(containers []*model.Container, item model.Item, policy orient.Policy, cfg packconfig.Config, sink events.Sink) bool {
	for i, c := range containers {
		if c.RemainingMass() < item.Mass-cfg.GeneralEpsilon {
			continue
		}
		if _, ok := fitsSomeOrientation(item.Dims, c.Cavity, policy, cfg.GeneralEpsilon); !ok {
			continue
		}
		if placeFirstFit(c, item, policy, cfg) {
			emitPlacementEvents(sink, i, c, cfg)
			return true
		}
	}
	return false
}

func tryNewContainer(containers *[]*model.Container, templates []model.ContainerTemplate, item model.Item, policy orient.Policy, cfg packconfig.Config, sink events.Sink) bool {
	for _, tmpl := range templates {
		if tmpl.MaxMass < item.Mass-cfg.GeneralEpsilon {
			continue
		}
		if _, ok := fitsSomeOrientation(item.Dims, tmpl.Cavity, policy, cfg.GeneralEpsilon); !ok {
			continue
		}
		fresh := tmpl.Instantiate()
		if placeFirstFit(&fresh, item, policy, cfg) {
			*containers = append(*containers, &fresh)
			index := len(*containers) - 1
			emitContainerStarted(sink, index, &fresh)
			emitPlacementEvents(sink, index, &fresh, cfg)
			return true
		}
	}
	return false
}

// placeFirstFit tries every orientation C3 offers, in C3's generation
// order, and accepts the first orientation/position pair the placement
// finder approves.
func placeFirstFit(c *model.Container, item model.Item, policy orient.Policy, cfg packconfig.Config) bool {
	for _, dims := range orient.Enumerate(item.Dims, policy, cfg.GeneralEpsilon) {
		p, ok := placer.Find(c, dims, item.Mass, cfg)
		if !ok {
			continue
		}
		c.Place(model.PlacedItem{Item: item, Origin: p.Origin, OrientedDims: dims})
		return true
	}
	return false
}

func classify(templates []model.ContainerTemplate, item model.Item, policy orient.Policy, cfg packconfig.Config) model.UnplacedReason {
	if len(templates) == 0 {
		return model.ExceedsDims
	}

	exceedsMassEverywhere := true
	fitsDimsSomewhere := false

	for _, tmpl := range templates {
		if tmpl.MaxMass >= item.Mass-cfg.GeneralEpsilon {
			exceedsMassEverywhere = false
		}
		if _, ok := fitsSomeOrientation(item.Dims, tmpl.Cavity, policy, cfg.GeneralEpsilon); ok {
			fitsDimsSomewhere = true
		}
	}

	if exceedsMassEverywhere {
		return model.ExceedsMass
	}
	if !fitsDimsSomewhere {
		return model.ExceedsDims
	}
	return model.NoStablePosition
}
