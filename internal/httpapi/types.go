// Package httpapi exposes the packing engine over HTTP: a batch endpoint,
// a server-sent-events streaming endpoint, and a health check. It mirrors
// the request/response contract in the source implementation's api module,
// rebuilt on labstack/echo/v4 the way chazu-lignin and piwi3910-cnc-calculator
// carry it in their own dependency graphs, with google/uuid correlation IDs
// and sirupsen/logrus request logging filling in the ambient concerns the
// engine itself stays silent about.
package httpapi

// ContainerRequest is one container template in an incoming pack request.
type ContainerRequest struct {
	Name      *string    `json:"name"`
	Dims      [3]float64 `json:"dims"`
	MaxWeight float64    `json:"max_weight"`
}

// ObjectRequest is one item in an incoming pack request.
type ObjectRequest struct {
	ID     uint64     `json:"id"`
	Dims   [3]float64 `json:"dims"`
	Weight float64    `json:"weight"`
}

// PackRequest is the full body of a pack request.
type PackRequest struct {
	Containers      []ContainerRequest `json:"containers"`
	Objects         []ObjectRequest    `json:"objects"`
	AllowRotations  *bool              `json:"allow_rotations"`
}

// PlacedObjectResponse is one placed item in the batch response.
type PlacedObjectResponse struct {
	ID     uint64     `json:"id"`
	Pos    [3]float64 `json:"pos"`
	Weight float64    `json:"weight"`
	Dims   [3]float64 `json:"dims"`
}

// ContainerResult is one opened container and its placements in the batch
// response.
type ContainerResult struct {
	ID          int                     `json:"id"`
	TemplateID  *uint64                 `json:"template_id"`
	Label       *string                 `json:"label"`
	Dims        [3]float64              `json:"dims"`
	MaxWeight   float64                 `json:"max_weight"`
	TotalWeight float64                 `json:"total_weight"`
	Placed      []PlacedObjectResponse  `json:"placed"`
}

// UnplacedResponse is one rejected item in the batch response.
type UnplacedResponse struct {
	ID     uint64 `json:"id"`
	Reason string `json:"reason"`
}

// DiagnosticsSummaryResponse is the aggregated diagnostics block of the
// batch response. It has the same JSON shape as the diagnostics.Summary
// carried by the Finished stream event.
type DiagnosticsSummaryResponse struct {
	MaxImbalanceRatio     float64 `json:"max_imbalance_ratio"`
	WorstSupportPercent   float64 `json:"worst_support_percent"`
	AverageSupportPercent float64 `json:"average_support_percent"`
}

// PackResponse is the full batch response body.
type PackResponse struct {
	Results            []ContainerResult          `json:"results"`
	Unplaced           []UnplacedResponse         `json:"unplaced"`
	DiagnosticsSummary DiagnosticsSummaryResponse `json:"diagnostics_summary"`
}
