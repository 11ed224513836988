package mesh

import (
	"fmt"

	"github.com/chazu/veneer/pkg/geom"
)

// minFaceArea is the degeneracy threshold, the machine epsilon of
// float32. A face this small cannot participate in edge matching in any
// meaningful way.
const minFaceArea = 1.1920929e-07

// DegenerateFaceError reports a face whose area is below the degeneracy
// threshold, typically one with two or three coincident vertices.
type DegenerateFaceError struct {
	Face int // index into Faces
	Area float32
}

func (e *DegenerateFaceError) Error() string {
	return fmt.Sprintf("mesh: face #%d is degenerate (area %g)", e.Face, e.Area)
}

// UnmatchedEdgeError reports a directed edge with no opposing partner:
// either a hole in the surface, or an adjacent face that traverses the
// shared edge in the same direction because its winding is flipped.
type UnmatchedEdgeError struct {
	Face int // face owning the unmatched edge
	Edge int // local edge position: 0 is v0→v1, 1 is v1→v2, 2 is v2→v0
}

func (e *UnmatchedEdgeError) Error() string {
	return fmt.Sprintf("mesh: no facing edge for face #%d, edge #%d", e.Face, e.Edge)
}

// edge is a directed edge between two vertex indices.
type edge struct {
	from, to int
}

// edgeRef remembers which face and local edge position inserted a
// still-unmatched edge.
type edgeRef struct {
	face, pos int
}

// Validate checks that the mesh is a closed, consistently oriented
// 2-manifold surface: every face has non-zero area and every directed
// edge is cancelled by the opposite directed edge of exactly one
// adjacent face. It returns nil on success, a *DegenerateFaceError for
// the first zero-area face encountered, or an *UnmatchedEdgeError if
// any edge is left without a partner. When several edges are
// unmatched, which one is reported is unspecified; callers should rely
// only on the failure itself. Validate never mutates the mesh, and a
// failed mesh remains usable.
func (m *IndexedMesh) Validate() error {
	pending := make(map[edge]edgeRef)

	for fi, face := range m.Faces {
		a := m.Vertices[face.V[0]]
		b := m.Vertices[face.V[1]]
		c := m.Vertices[face.V[2]]
		if area := geom.Area(a, b, c); area < minFaceArea {
			return &DegenerateFaceError{Face: fi, Area: area}
		}

		for i := 0; i < 3; i++ {
			u := face.V[i]
			v := face.V[(i+1)%3]
			// A correctly wound neighbour walked this edge the other
			// way; the pair cancels.
			if _, ok := pending[edge{v, u}]; ok {
				delete(pending, edge{v, u})
			} else {
				pending[edge{u, v}] = edgeRef{face: fi, pos: i}
			}
		}
	}

	for _, ref := range pending {
		return &UnmatchedEdgeError{Face: ref.face, Edge: ref.pos}
	}
	return nil
}
