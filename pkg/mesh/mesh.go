// Package mesh provides the indexed triangle-mesh representation, the
// indexer that folds a triangle stream into it, and the manifold
// validator.
package mesh

import "github.com/chazu/veneer/pkg/geom"

// IndexedTriangle is a mesh face: a normal plus three indices into the
// owning mesh's vertex list. Indices are valid by construction; Build
// is the only producer.
type IndexedTriangle struct {
	Normal geom.Vec3
	V      [3]int
}

// IndexedMesh is a triangle mesh with a shared, deduplicated vertex
// list. Faces reference vertices by index, so shared corners are stored
// once. A mesh is built by Build and not mutated afterwards; callers
// wanting a mutable mesh own a copy.
type IndexedMesh struct {
	Vertices []geom.Vec3
	Faces    []IndexedTriangle
}

// VertexCount returns the number of distinct vertices.
func (m *IndexedMesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of faces.
func (m *IndexedMesh) FaceCount() int {
	return len(m.Faces)
}

// Triangle resolves face i back to an unindexed triangle.
func (m *IndexedMesh) Triangle(i int) geom.Triangle {
	f := m.Faces[i]
	return geom.Triangle{
		Normal: f.Normal,
		V: [3]geom.Vec3{
			m.Vertices[f.V[0]],
			m.Vertices[f.V[1]],
			m.Vertices[f.V[2]],
		},
	}
}
