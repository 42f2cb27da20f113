package httpapi

import (
	"fmt"

	"github.com/91xusir/boxpacker3d/internal/geom"
	"github.com/91xusir/boxpacker3d/internal/model"
	"github.com/91xusir/boxpacker3d/internal/packconfig"
)

// ValidationFailure reports that an incoming request was rejected before
// the engine ever ran, mirroring the source implementation's
// PackRequestValidationError.
type ValidationFailure struct {
	Code    string
	Message string
}

func (f *ValidationFailure) Error() string {
	return fmt.Sprintf("%s: %s", f.Code, f.Message)
}

// Validated holds a request that has passed every structural check and is
// ready for the engine.
type Validated struct {
	Templates      []model.ContainerTemplate
	Items          []model.Item
	AllowRotations bool
}

// IntoValidated validates req against defaultAllowRotations, failing the
// whole request on the first structural problem: an empty container list
// fails before the algorithm ever runs.
func IntoValidated(req PackRequest, defaultAllowRotations bool) (Validated, error) {
	if len(req.Containers) == 0 {
		return Validated{}, &ValidationFailure{Code: "missing_templates", Message: "containers must not be empty"}
	}

	templates := make([]model.ContainerTemplate, 0, len(req.Containers))
	for i, cr := range req.Containers {
		label := ""
		if cr.Name != nil {
			label = *cr.Name
		}
		tmpl, err := model.NewContainerTemplate(uint64(i+1), label, geom.NewVec3(cr.Dims[0], cr.Dims[1], cr.Dims[2]), cr.MaxWeight)
		if err != nil {
			return Validated{}, &ValidationFailure{Code: "invalid_container", Message: err.Error()}
		}
		templates = append(templates, tmpl)
	}

	items := make([]model.Item, 0, len(req.Objects))
	for _, or := range req.Objects {
		it, err := model.NewItem(or.ID, geom.NewVec3(or.Dims[0], or.Dims[1], or.Dims[2]), or.Weight)
		if err != nil {
			return Validated{}, &ValidationFailure{Code: "invalid_object", Message: err.Error()}
		}
		items = append(items, it)
	}

	allowRotations := defaultAllowRotations
	if req.AllowRotations != nil {
		allowRotations = *req.AllowRotations
	}

	return Validated{Templates: templates, Items: items, AllowRotations: allowRotations}, nil
}

// ConfigFor builds the packconfig.Config a validated request should run
// with, overriding the process default's rotation policy with the
// request's own choice.
func ConfigFor(base packconfig.Config, v Validated) packconfig.Config {
	cfg := base
	cfg.AllowItemRotation = v.AllowRotations
	return cfg
}
