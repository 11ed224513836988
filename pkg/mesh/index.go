package mesh

import (
	"io"

	"github.com/chazu/veneer/pkg/geom"
)

// TriangleSource yields successive triangles. Next returns io.EOF after
// the final triangle; any other error aborts the stream. Sources are
// stateful cursors and must not be shared between goroutines.
type TriangleSource interface {
	Next() (geom.Triangle, error)
}

// Build consumes src to completion and folds it into an indexed mesh.
//
// Vertices are deduplicated on exact bit identity (geom.VertexKey), so
// two corners merge only when all three float components match bit for
// bit. Distinct vertices keep their first-occurrence order and faces
// keep arrival order. If src fails, the error is returned as-is and the
// partially built mesh is discarded.
func Build(src TriangleSource) (*IndexedMesh, error) {
	m := &IndexedMesh{}
	index := make(map[geom.VertexKey]int)

	for {
		t, err := src.Next()
		if err == io.EOF {
			return m, nil
		}
		if err != nil {
			return nil, err
		}

		face := IndexedTriangle{Normal: t.Normal}
		for i, v := range t.V {
			idx, ok := index[v.Key()]
			if !ok {
				idx = len(m.Vertices)
				m.Vertices = append(m.Vertices, v)
				index[v.Key()] = idx
			}
			face.V[i] = idx
		}
		m.Faces = append(m.Faces, face)
	}
}
