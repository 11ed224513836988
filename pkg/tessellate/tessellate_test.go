package tessellate_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/veneer/pkg/geom"
	"github.com/chazu/veneer/pkg/stl"
	"github.com/chazu/veneer/pkg/tessellate"
)

// testCells keeps marching cubes cheap in tests.
const testCells = 16

func testBox(t *testing.T) sdf.SDF3 {
	t.Helper()
	box, err := sdf.Box3D(v3.Vec{X: 10, Y: 10, Z: 10}, 0)
	require.NoError(t, err)
	return box
}

func TestTrianglesRendersBox(t *testing.T) {
	tris := tessellate.Triangles(testBox(t), testCells)
	require.NotEmpty(t, tris)

	var total float32
	for _, tri := range tris {
		total += tri.Area()
	}
	// A 10×10×10 box has 600 units of surface; the rendered surface
	// should land in that neighbourhood.
	assert.Greater(t, total, float32(400))
}

// TestRenderedTrianglesRoundTrip pushes rendered geometry through the
// binary encoder and back: the codec must preserve every rendered
// triangle bit for bit.
func TestRenderedTrianglesRoundTrip(t *testing.T) {
	tris := tessellate.Triangles(testBox(t), testCells)
	require.NotEmpty(t, tris)

	var buf bytes.Buffer
	require.NoError(t, stl.Write(&buf, tris))

	r, err := stl.NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	var decoded []geom.Triangle
	for {
		tri, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		decoded = append(decoded, tri)
	}
	assert.Equal(t, tris, decoded)
}

func TestWriteSTL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, tessellate.WriteSTL(&buf, testBox(t), testCells))

	br, err := stl.NewBinaryReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Positive(t, br.Len())
	assert.Equal(t, 84+50*br.Len(), buf.Len())
}
