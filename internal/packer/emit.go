package packer

import (
	"github.com/91xusir/boxpacker3d/internal/diagnostics"
	"github.com/91xusir/boxpacker3d/internal/events"
	"github.com/91xusir/boxpacker3d/internal/model"
	"github.com/91xusir/boxpacker3d/internal/packconfig"
)

func emitContainerStarted(sink events.Sink, containerIndex int, c *model.Container) {
	var label *string
	if c.Label != "" {
		l := c.Label
		label = &l
	}
	sink.Emit(events.ContainerStarted{
		ID:         uint64(containerIndex + 1),
		Dims:       [3]float64{c.Cavity.X, c.Cavity.Y, c.Cavity.Z},
		MaxWeight:  c.MaxMass,
		Label:      label,
		TemplateID: c.TemplateID,
	})
}

// emitPlacementEvents emits ObjectPlaced for the most recently placed item
// in c, followed immediately by ContainerDiagnostics for c, per the
// ordering contract every placement must satisfy.
func emitPlacementEvents(sink events.Sink, containerIndex int, c *model.Container, cfg packconfig.Config) {
	if len(c.Placed) == 0 {
		return
	}
	last := c.Placed[len(c.Placed)-1]
	containerID := uint64(containerIndex + 1)

	sink.Emit(events.ObjectPlaced{
		ContainerID: containerID,
		ID:          last.Item.ID,
		Pos:         [3]float64{last.Origin.X, last.Origin.Y, last.Origin.Z},
		Weight:      last.Item.Mass,
		Dims:        [3]float64{last.OrientedDims.X, last.OrientedDims.Y, last.OrientedDims.Z},
		TotalWeight: c.TotalMass(),
	})

	sink.Emit(events.ContainerDiagnosticsEvent{
		ContainerID: containerID,
		Diagnostics: diagnostics.Compute(c, cfg),
	})
}

func emitRejected(sink events.Sink, item model.Item, reason model.UnplacedReason) {
	sink.Emit(events.ObjectRejected{
		ID:         item.ID,
		Weight:     item.Mass,
		Dims:       [3]float64{item.Dims.X, item.Dims.Y, item.Dims.Z},
		ReasonCode: reason.Code(),
		ReasonText: reason.String(),
	})
}

func emitFinished(sink events.Sink, containers []*model.Container, unplaced []model.UnplacedItem, cfg packconfig.Config) {
	perContainer := make([]diagnostics.ContainerDiagnostics, len(containers))
	for i, c := range containers {
		perContainer[i] = diagnostics.Compute(c, cfg)
	}
	sink.Emit(events.Finished{
		Containers:         len(containers),
		Unplaced:           len(unplaced),
		DiagnosticsSummary: diagnostics.Aggregate(perContainer),
	})
}

func buildResult(containers []*model.Container, unplaced []model.UnplacedItem, cfg packconfig.Config) Result {
	perContainer := make([]diagnostics.ContainerDiagnostics, len(containers))
	for i, c := range containers {
		perContainer[i] = diagnostics.Compute(c, cfg)
	}
	return Result{
		Containers:         containers,
		Unplaced:           unplaced,
		DiagnosticsByIndex: perContainer,
		Summary:            diagnostics.Aggregate(perContainer),
	}
}
