package httpapi

import (
	"github.com/91xusir/boxpacker3d/internal/model"
	"github.com/91xusir/boxpacker3d/internal/packer"
)

// BuildResponse translates an engine Result into the wire-facing
// PackResponse shape.
func BuildResponse(result packer.Result) PackResponse {
	results := make([]ContainerResult, 0, len(result.Containers))
	for i, c := range result.Containers {
		results = append(results, containerResult(i, c))
	}

	unplaced := make([]UnplacedResponse, 0, len(result.Unplaced))
	for _, u := range result.Unplaced {
		unplaced = append(unplaced, UnplacedResponse{ID: u.Item.ID, Reason: u.Reason.Code()})
	}

	return PackResponse{
		Results:  results,
		Unplaced: unplaced,
		DiagnosticsSummary: DiagnosticsSummaryResponse{
			MaxImbalanceRatio:     result.Summary.MaxImbalanceRatio,
			WorstSupportPercent:   result.Summary.WorstSupportPercent,
			AverageSupportPercent: result.Summary.AverageSupportPercent,
		},
	}
}

func containerResult(index int, c *model.Container) ContainerResult {
	var label *string
	if c.Label != "" {
		l := c.Label
		label = &l
	}
	templateID := c.TemplateID

	placed := make([]PlacedObjectResponse, 0, len(c.Placed))
	for _, p := range c.Placed {
		placed = append(placed, PlacedObjectResponse{
			ID:     p.Item.ID,
			Pos:    [3]float64{p.Origin.X, p.Origin.Y, p.Origin.Z},
			Weight: p.Item.Mass,
			Dims:   [3]float64{p.OrientedDims.X, p.OrientedDims.Y, p.OrientedDims.Z},
		})
	}

	return ContainerResult{
		ID:          index + 1,
		TemplateID:  &templateID,
		Label:       label,
		Dims:        [3]float64{c.Cavity.X, c.Cavity.Y, c.Cavity.Z},
		MaxWeight:   c.MaxMass,
		TotalWeight: c.TotalMass(),
		Placed:      placed,
	}
}
