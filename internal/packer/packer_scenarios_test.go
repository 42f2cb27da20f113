package packer

import (
	"testing"

	"github.com/91xusir/boxpacker3d/internal/events"
	"github.com/91xusir/boxpacker3d/internal/geom"
	"github.com/91xusir/boxpacker3d/internal/model"
	"github.com/91xusir/boxpacker3d/internal/packconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTemplate(t *testing.T, id uint64, label string, cavity geom.Vec3, maxMass float64) model.ContainerTemplate {
	tmpl, err := model.NewContainerTemplate(id, label, cavity, maxMass)
	require.NoError(t, err)
	return tmpl
}

func mustItem(t *testing.T, id uint64, dims geom.Vec3, mass float64) model.Item {
	it, err := model.NewItem(id, dims, mass)
	require.NoError(t, err)
	return it
}

func TestSnapToCorner(t *testing.T) {
	templates := []model.ContainerTemplate{mustTemplate(t, 1, "", geom.NewVec3(100, 100, 70), 500)}
	items := []model.Item{mustItem(t, 1, geom.NewVec3(30, 30, 10), 50)}

	result := Pack(templates, items, packconfig.Default(), events.NullSink{})

	require.Len(t, result.Containers, 1)
	require.Len(t, result.Containers[0].Placed, 1)
	placed := result.Containers[0].Placed[0]
	assert.Equal(t, geom.Zero(), placed.Origin)
	assert.Equal(t, geom.NewVec3(30, 30, 10), placed.OrientedDims)
}

func TestHeavyItemPlacedBelowLightItem(t *testing.T) {
	templates := []model.ContainerTemplate{mustTemplate(t, 1, "", geom.NewVec3(100, 100, 100), 1000)}
	items := []model.Item{
		mustItem(t, 1, geom.NewVec3(40, 40, 40), 100),
		mustItem(t, 2, geom.NewVec3(40, 40, 40), 10),
	}

	result := Pack(templates, items, packconfig.Default(), events.NullSink{})

	require.Len(t, result.Containers, 1)
	require.Len(t, result.Containers[0].Placed, 2)

	byID := map[uint64]model.PlacedItem{}
	for _, p := range result.Containers[0].Placed {
		byID[p.Item.ID] = p
	}
	assert.InDelta(t, 0.0, byID[1].Origin.Z, 1e-9)
	assert.InDelta(t, 40.0, byID[2].Origin.Z, 1e-9)
}

func TestHeavyItemOrderIsStableRegardlessOfInputOrder(t *testing.T) {
	templates := []model.ContainerTemplate{mustTemplate(t, 1, "", geom.NewVec3(100, 100, 100), 1000)}
	items := []model.Item{
		mustItem(t, 1, geom.NewVec3(40, 40, 40), 10),
		mustItem(t, 2, geom.NewVec3(40, 40, 40), 100),
	}

	result := Pack(templates, items, packconfig.Default(), events.NullSink{})

	byID := map[uint64]model.PlacedItem{}
	for _, p := range result.Containers[0].Placed {
		byID[p.Item.ID] = p
	}
	assert.InDelta(t, 0.0, byID[2].Origin.Z, 1e-9)
	assert.InDelta(t, 40.0, byID[1].Origin.Z, 1e-9)
}

func TestMultiContainerWhenMassCapIsReached(t *testing.T) {
	templates := []model.ContainerTemplate{mustTemplate(t, 1, "", geom.NewVec3(100, 100, 100), 100)}
	items := []model.Item{
		mustItem(t, 1, geom.NewVec3(30, 30, 30), 60),
		mustItem(t, 2, geom.NewVec3(30, 30, 30), 60),
		mustItem(t, 3, geom.NewVec3(30, 30, 30), 60),
	}

	result := Pack(templates, items, packconfig.Default(), events.NullSink{})

	require.Len(t, result.Containers, 3)
	for _, c := range result.Containers {
		assert.Len(t, c.Placed, 1)
	}
}

func TestDimensionRejectionWithoutRotation(t *testing.T) {
	templates := []model.ContainerTemplate{mustTemplate(t, 1, "", geom.NewVec3(50, 50, 50), 1000)}
	items := []model.Item{mustItem(t, 1, geom.NewVec3(60, 20, 20), 5)}

	cfg := packconfig.Default()
	cfg.AllowItemRotation = false
	result := Pack(templates, items, cfg, events.NullSink{})

	require.Len(t, result.Unplaced, 1)
	assert.Equal(t, model.ExceedsDims, result.Unplaced[0].Reason)
}

func TestDimensionRejectionStillFailsWithRotation(t *testing.T) {
	templates := []model.ContainerTemplate{mustTemplate(t, 1, "", geom.NewVec3(50, 50, 50), 1000)}
	items := []model.Item{mustItem(t, 1, geom.NewVec3(60, 20, 20), 5)}

	cfg := packconfig.Default()
	cfg.AllowItemRotation = true
	result := Pack(templates, items, cfg, events.NullSink{})

	require.Len(t, result.Unplaced, 1)
	assert.Equal(t, model.ExceedsDims, result.Unplaced[0].Reason)
}

func TestRotationEnablesFit(t *testing.T) {
	templates := []model.ContainerTemplate{mustTemplate(t, 1, "", geom.NewVec3(60, 20, 20), 100)}
	items := []model.Item{mustItem(t, 1, geom.NewVec3(20, 60, 20), 10)}

	cfgNoRotate := packconfig.Default()
	cfgNoRotate.AllowItemRotation = false
	result := Pack(templates, items, cfgNoRotate, events.NullSink{})
	require.Len(t, result.Unplaced, 1)
	assert.Equal(t, model.ExceedsDims, result.Unplaced[0].Reason)

	cfgRotate := packconfig.Default()
	cfgRotate.AllowItemRotation = true
	result = Pack(templates, items, cfgRotate, events.NullSink{})
	require.Len(t, result.Containers, 1)
	require.Len(t, result.Containers[0].Placed, 1)
	placed := result.Containers[0].Placed[0]
	assert.Equal(t, geom.Zero(), placed.Origin)
	assert.Equal(t, geom.NewVec3(60, 20, 20), placed.OrientedDims)
}

func TestTooHeavyForEveryTemplate(t *testing.T) {
	templates := []model.ContainerTemplate{mustTemplate(t, 1, "", geom.NewVec3(100, 100, 100), 10)}
	items := []model.Item{mustItem(t, 1, geom.NewVec3(10, 10, 10), 50)}

	result := Pack(templates, items, packconfig.Default(), events.NullSink{})

	require.Len(t, result.Unplaced, 1)
	assert.Equal(t, model.ExceedsMass, result.Unplaced[0].Reason)
	assert.Len(t, result.Containers, 0)
}

func TestOverhangRejectsOffCenterStacking(t *testing.T) {
	templates := []model.ContainerTemplate{mustTemplate(t, 1, "", geom.NewVec3(40, 40, 100), 1000)}
	items := []model.Item{
		mustItem(t, 1, geom.NewVec3(40, 40, 40), 100),
		mustItem(t, 2, geom.NewVec3(40, 40, 40), 10),
	}

	result := Pack(templates, items, packconfig.Default(), events.NullSink{})

	require.Len(t, result.Containers, 1)
	require.Len(t, result.Containers[0].Placed, 2)
	upper := result.Containers[0].Placed[1]
	cx := upper.Origin.X + upper.OrientedDims.X/2
	cy := upper.Origin.Y + upper.OrientedDims.Y/2
	assert.True(t, cx >= 0 && cx <= 40)
	assert.True(t, cy >= 0 && cy <= 40)
}

func TestEmptyItemsProducesEmptySuccess(t *testing.T) {
	templates := []model.ContainerTemplate{mustTemplate(t, 1, "", geom.NewVec3(100, 100, 100), 100)}
	result := Pack(templates, nil, packconfig.Default(), events.NullSink{})

	assert.Len(t, result.Containers, 0)
	assert.Len(t, result.Unplaced, 0)
}

func TestEmptyTemplatesClassifiesEveryItemAsExceedsDims(t *testing.T) {
	items := []model.Item{mustItem(t, 1, geom.NewVec3(1, 1, 1), 1)}
	result := Pack(nil, items, packconfig.Default(), events.NullSink{})

	require.Len(t, result.Unplaced, 1)
	assert.Equal(t, model.ExceedsDims, result.Unplaced[0].Reason)
}

func TestEventOrderingContract(t *testing.T) {
	templates := []model.ContainerTemplate{mustTemplate(t, 1, "", geom.NewVec3(100, 100, 100), 1000)}
	items := []model.Item{
		mustItem(t, 1, geom.NewVec3(10, 10, 10), 5),
		mustItem(t, 2, geom.NewVec3(200, 200, 200), 5),
	}

	var sink events.SliceSink
	Pack(templates, items, packconfig.Default(), &sink)

	require.NotEmpty(t, sink.Events)

	// Whatever interleaving the driver chooses, every ObjectPlaced must be
	// immediately followed by a ContainerDiagnostics for the same
	// container, and Finished must be the last event exactly once.
	finishedCount := 0
	for i, e := range sink.Events {
		if e.Kind() == "finished" {
			finishedCount++
			assert.Equal(t, len(sink.Events)-1, i, "finished must be the last event")
		}
		if e.Kind() == "object_placed" {
			require.Less(t, i+1, len(sink.Events))
			assert.Equal(t, "container_diagnostics", sink.Events[i+1].Kind())
		}
	}
	assert.Equal(t, 1, finishedCount)

	// item 2 doesn't fit any template in any orientation.
	foundRejection := false
	for _, e := range sink.Events {
		if r, ok := e.(events.ObjectRejected); ok && r.ID == 2 {
			foundRejection = true
			assert.Equal(t, "dimensions_exceed_container", r.ReasonCode)
		}
	}
	assert.True(t, foundRejection)
}
