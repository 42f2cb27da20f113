package diagnostics

import (
	"testing"

	"github.com/91xusir/boxpacker3d/internal/geom"
	"github.com/91xusir/boxpacker3d/internal/model"
	"github.com/91xusir/boxpacker3d/internal/packconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiagContainer(t *testing.T, cavity geom.Vec3, maxMass float64) model.Container {
	tmpl, err := model.NewContainerTemplate(1, "test", cavity, maxMass)
	require.NoError(t, err)
	return tmpl.Instantiate()
}

func TestComputeEmptyContainer(t *testing.T) {
	c := newDiagContainer(t, geom.NewVec3(100, 100, 100), 1000)
	cfg := packconfig.Default()

	d := Compute(&c, cfg)
	assert.Equal(t, 0.0, d.CenterOfMassOffset)
	assert.Equal(t, 0.0, d.ImbalanceRatio)
	assert.Len(t, d.SupportSamples, 0)
}

func TestComputeFloorItemIsFullySupported(t *testing.T) {
	c := newDiagContainer(t, geom.NewVec3(100, 100, 100), 1000)
	it, err := model.NewItem(1, geom.NewVec3(30, 30, 10), 50)
	require.NoError(t, err)
	c.Place(model.PlacedItem{Item: it, Origin: geom.Zero(), OrientedDims: it.Dims})

	d := Compute(&c, packconfig.Default())
	require.Len(t, d.SupportSamples, 1)
	assert.InDelta(t, 100.0, d.SupportSamples[0].SupportPercent, 1e-9)
	assert.True(t, d.SupportSamples[0].RestsOnFloor)
}

func TestComputeStackedItemSupportPercent(t *testing.T) {
	c := newDiagContainer(t, geom.NewVec3(40, 40, 100), 1000)
	lower, err := model.NewItem(1, geom.NewVec3(40, 40, 40), 100)
	require.NoError(t, err)
	c.Place(model.PlacedItem{Item: lower, Origin: geom.Zero(), OrientedDims: lower.Dims})

	upper, err := model.NewItem(2, geom.NewVec3(20, 20, 10), 5)
	require.NoError(t, err)
	c.Place(model.PlacedItem{Item: upper, Origin: geom.NewVec3(0, 0, 40), OrientedDims: upper.Dims})

	d := Compute(&c, packconfig.Default())
	require.Len(t, d.SupportSamples, 2)
	assert.InDelta(t, 100.0, d.SupportSamples[1].SupportPercent, 1e-9)
	assert.False(t, d.SupportSamples[1].RestsOnFloor)
}

func TestComputeCenteredLoadHasNoOffset(t *testing.T) {
	c := newDiagContainer(t, geom.NewVec3(100, 100, 100), 1000)
	it, err := model.NewItem(1, geom.NewVec3(100, 100, 10), 50)
	require.NoError(t, err)
	c.Place(model.PlacedItem{Item: it, Origin: geom.Zero(), OrientedDims: it.Dims})

	d := Compute(&c, packconfig.Default())
	assert.InDelta(t, 0.0, d.CenterOfMassOffset, 1e-9)
	assert.InDelta(t, 0.0, d.ImbalanceRatio, 1e-9)
}

func TestAggregateAcrossContainers(t *testing.T) {
	d1 := ContainerDiagnostics{
		ImbalanceRatio: 0.2,
		SupportSamples: []SupportSample{{ObjectID: 1, SupportPercent: 100}},
	}
	d2 := ContainerDiagnostics{
		ImbalanceRatio: 0.5,
		SupportSamples: []SupportSample{{ObjectID: 2, SupportPercent: 60}},
	}

	summary := Aggregate([]ContainerDiagnostics{d1, d2})
	assert.InDelta(t, 0.5, summary.MaxImbalanceRatio, 1e-9)
	assert.InDelta(t, 60.0, summary.WorstSupportPercent, 1e-9)
	assert.InDelta(t, 80.0, summary.AverageSupportPercent, 1e-9)
}

func TestAggregateEmpty(t *testing.T) {
	summary := Aggregate(nil)
	assert.Equal(t, Summary{}, summary)
}
