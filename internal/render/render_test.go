package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/91xusir/boxpacker3d/internal/geom"
	"github.com/91xusir/boxpacker3d/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderContainer(t *testing.T) model.Container {
	tmpl, err := model.NewContainerTemplate(1, "demo", geom.NewVec3(100, 100, 50), 1000)
	require.NoError(t, err)
	c := tmpl.Instantiate()

	it, err := model.NewItem(1, geom.NewVec3(30, 30, 10), 50)
	require.NoError(t, err)
	c.Place(model.PlacedItem{Item: it, Origin: geom.Zero(), OrientedDims: it.Dims})
	return c
}

func TestTopDownDimensionsMatchCavity(t *testing.T) {
	c := newRenderContainer(t)
	img := TopDown(&c, Options{PixelsPerUnit: 2, Margin: 5})

	bounds := img.Bounds()
	assert.Equal(t, int(c.Cavity.X*2)+10, bounds.Dx())
	assert.Equal(t, int(c.Cavity.Y*2)+10, bounds.Dy())
}

func TestSideElevationDimensionsMatchCavity(t *testing.T) {
	c := newRenderContainer(t)
	img := SideElevation(&c, Options{PixelsPerUnit: 2, Margin: 5})

	bounds := img.Bounds()
	assert.Equal(t, int(c.Cavity.X*2)+10, bounds.Dx())
	assert.Equal(t, int(c.Cavity.Z*2)+10, bounds.Dy())
}

func TestWriteSnapshotsWritesBothViewsPerContainer(t *testing.T) {
	c := newRenderContainer(t)
	dir := t.TempDir()

	written, err := WriteSnapshots([]*model.Container{&c}, dir, Options{})
	require.NoError(t, err)
	require.Len(t, written, 2)

	for _, path := range written {
		_, err := os.Stat(filepath.Join(dir, filepath.Base(path)))
		assert.NoError(t, err)
	}
}

func TestColorForIsDeterministic(t *testing.T) {
	assert.Equal(t, colorFor(5), colorFor(5))
}
