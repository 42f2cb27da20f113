package model

// ValidationErrorKind tags the category of a ValidationError, mirroring the
// variants of the source implementation's ValidationError enum.
type ValidationErrorKind int

const (
	// InvalidDimension marks a width/depth/height that is not finite and
	// strictly positive.
	InvalidDimension ValidationErrorKind = iota
	// InvalidMass marks a mass that is not finite and strictly positive.
	InvalidMass
	// InvalidConfiguration marks a packing configuration whose tolerances or
	// ratios fall outside their documented ranges.
	InvalidConfiguration
	// MissingTemplates marks a request with no container templates at all.
	MissingTemplates
)

func (k ValidationErrorKind) String() string {
	switch k {
	case InvalidDimension:
		return "invalid_dimension"
	case InvalidMass:
		return "invalid_mass"
	case InvalidConfiguration:
		return "invalid_configuration"
	case MissingTemplates:
		return "missing_templates"
	default:
		return "unknown"
	}
}

// ValidationError reports that an input to the engine failed validation
// before any packing was attempted.
type ValidationError struct {
	Kind   ValidationErrorKind
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Kind.String() + ": " + e.Detail
}

// UnplacedReason classifies why an item could not be placed anywhere,
// mirroring the source implementation's UnplacedReason enum.
type UnplacedReason int

const (
	// ExceedsDims means the item does not fit inside any container template
	// in any allowed orientation.
	ExceedsDims UnplacedReason = iota
	// ExceedsMass means the item's mass alone exceeds every template's mass
	// capacity.
	ExceedsMass
	// NoStablePosition means the item fits and is light enough somewhere,
	// but no candidate position satisfied the stability gates in any
	// existing or freshly opened container.
	NoStablePosition
)

// Code returns the stable, wire-facing snake_case identifier for the
// reason, used in API responses and CLI reports.
func (r UnplacedReason) Code() string {
	switch r {
	case ExceedsDims:
		return "dimensions_exceed_container"
	case ExceedsMass:
		return "too_heavy_for_container"
	case NoStablePosition:
		return "no_stable_position"
	default:
		return "unknown"
	}
}

func (r UnplacedReason) String() string {
	switch r {
	case ExceedsDims:
		return "item exceeds the dimensions of every container template"
	case ExceedsMass:
		return "item exceeds the mass capacity of every container template"
	case NoStablePosition:
		return "no stable position could be found in any container"
	default:
		return "unknown reason"
	}
}

// UnplacedItem pairs an item that could not be packed with why.
type UnplacedItem struct {
	Item   Item
	Reason UnplacedReason
}
