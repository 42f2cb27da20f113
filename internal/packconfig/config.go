// Package packconfig holds the tolerances and tunables that govern every
// stage of the packing engine. It is the Go counterpart of the builder in
// the source implementation's optimizer module, built with the same
// chained-setter style used elsewhere in this codebase (configuring
// behaviour through setter calls rather than a struct literal).
package packconfig

// Config holds every tunable of the packing engine. Its zero value is not
// usable directly; always start from Default().
type Config struct {
	// GridStep is the XY grid spacing used by the placement finder's
	// candidate generation (C5).
	GridStep float64
	// SupportRatio is the minimum fraction of an item's base area that must
	// be covered by coplanar supporters before it is considered stable.
	SupportRatio float64
	// HeightEpsilon governs coplanarity tests ("rests on") between a
	// candidate's Z and the top of existing placements.
	HeightEpsilon float64
	// GeneralEpsilon governs dimension, position, mass, and collision
	// comparisons everywhere else.
	GeneralEpsilon float64
	// BalanceLimitRatio bounds how far a container's post-insertion centre
	// of mass may drift from its base centre, expressed as a fraction of
	// the base diagonal.
	BalanceLimitRatio float64
	// FootprintClusterTolerance is the relative base-area difference under
	// which two sort-adjacent items are considered part of the same
	// footprint cluster (C4).
	FootprintClusterTolerance float64
	// AllowItemRotation selects the orientation policy: false pins items to
	// their input (w, d, h); true enumerates axis-aligned permutations.
	AllowItemRotation bool
}

const (
	DefaultGridStep                  = 5.0
	DefaultSupportRatio               = 0.60
	DefaultHeightEpsilon              = 1e-3
	DefaultGeneralEpsilon             = 1e-6
	DefaultBalanceLimitRatio          = 0.45
	DefaultFootprintClusterTolerance = 0.15
	DefaultAllowItemRotation          = false
)

// Default returns the documented default configuration.
func Default() Config {
	return Config{
		GridStep:                  DefaultGridStep,
		SupportRatio:              DefaultSupportRatio,
		HeightEpsilon:             DefaultHeightEpsilon,
		GeneralEpsilon:            DefaultGeneralEpsilon,
		BalanceLimitRatio:         DefaultBalanceLimitRatio,
		FootprintClusterTolerance: DefaultFootprintClusterTolerance,
		AllowItemRotation:         DefaultAllowItemRotation,
	}
}

// Builder incrementally assembles a Config, mirroring the source
// implementation's PackingConfigBuilder.
type Builder struct {
	cfg Config
}

// NewBuilder starts a builder from the documented defaults.
func NewBuilder() *Builder {
	return &Builder{cfg: Default()}
}

func (b *Builder) GridStep(v float64) *Builder {
	b.cfg.GridStep = v
	return b
}

func (b *Builder) SupportRatio(v float64) *Builder {
	b.cfg.SupportRatio = v
	return b
}

func (b *Builder) HeightEpsilon(v float64) *Builder {
	b.cfg.HeightEpsilon = v
	return b
}

func (b *Builder) GeneralEpsilon(v float64) *Builder {
	b.cfg.GeneralEpsilon = v
	return b
}

func (b *Builder) BalanceLimitRatio(v float64) *Builder {
	b.cfg.BalanceLimitRatio = v
	return b
}

func (b *Builder) FootprintClusterTolerance(v float64) *Builder {
	b.cfg.FootprintClusterTolerance = v
	return b
}

func (b *Builder) AllowItemRotation(v bool) *Builder {
	b.cfg.AllowItemRotation = v
	return b
}

// Build returns the assembled configuration.
func (b *Builder) Build() Config {
	return b.cfg
}
