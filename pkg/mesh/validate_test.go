package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/veneer/pkg/geom"
	"github.com/chazu/veneer/pkg/mesh"
)

// tetrahedron returns a closed tetrahedron with consistent outward
// winding: every directed edge is matched by its reverse on exactly one
// neighbouring face. Normals are irrelevant to validation and left zero.
func tetrahedron() *mesh.IndexedMesh {
	return &mesh.IndexedMesh{
		Vertices: []geom.Vec3{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1},
		},
		Faces: []mesh.IndexedTriangle{
			{V: [3]int{0, 2, 1}},
			{V: [3]int{0, 1, 3}},
			{V: [3]int{0, 3, 2}},
			{V: [3]int{1, 2, 3}},
		},
	}
}

func TestValidateClosedTetrahedron(t *testing.T) {
	m := tetrahedron()
	require.NoError(t, m.Validate())

	// Validation is read-only; a second pass gives the same verdict.
	assert.NoError(t, m.Validate())
}

func TestValidateHole(t *testing.T) {
	m := tetrahedron()
	m.Faces = m.Faces[:3] // open the surface

	err := m.Validate()
	require.Error(t, err)

	var unmatched *mesh.UnmatchedEdgeError
	require.ErrorAs(t, err, &unmatched)
	// Which of the three boundary edges is reported is unspecified, but
	// it must belong to a surviving face.
	assert.Less(t, unmatched.Face, 3)
	assert.GreaterOrEqual(t, unmatched.Edge, 0)
	assert.Less(t, unmatched.Edge, 3)
}

func TestValidateInconsistentWinding(t *testing.T) {
	m := tetrahedron()
	// Flip one face: its edges now run the same direction as its
	// neighbours' instead of opposite.
	f := m.Faces[3]
	m.Faces[3] = mesh.IndexedTriangle{V: [3]int{f.V[2], f.V[1], f.V[0]}}

	var unmatched *mesh.UnmatchedEdgeError
	assert.ErrorAs(t, m.Validate(), &unmatched)
}

func TestValidateDegenerateFace(t *testing.T) {
	m := tetrahedron()
	// A face with a repeated vertex has zero area; it is rejected by
	// the area check before edge matching can complain.
	m.Faces = append(m.Faces, mesh.IndexedTriangle{V: [3]int{0, 1, 1}})

	err := m.Validate()
	require.Error(t, err)

	var degenerate *mesh.DegenerateFaceError
	require.ErrorAs(t, err, &degenerate)
	assert.Equal(t, 4, degenerate.Face)
	assert.Zero(t, degenerate.Area)
}

func TestValidateEmptyMesh(t *testing.T) {
	// No faces, no unmatched edges: vacuously closed.
	m := &mesh.IndexedMesh{}
	assert.NoError(t, m.Validate())
}

func TestValidationErrorMessages(t *testing.T) {
	assert.Equal(t, "mesh: face #4 is degenerate (area 0)",
		(&mesh.DegenerateFaceError{Face: 4}).Error())
	assert.Equal(t, "mesh: no facing edge for face #2, edge #1",
		(&mesh.UnmatchedEdgeError{Face: 2, Edge: 1}).Error())
}
