// Package tessellate renders signed-distance-field solids from the
// github.com/deadsy/sdfx CAD library into codec triangles, bridging
// SDF-modeled geometry to the STL encoder.
package tessellate

import (
	"io"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"

	"github.com/chazu/veneer/pkg/geom"
	"github.com/chazu/veneer/pkg/stl"
)

// DefaultCells is the marching-cubes resolution used when callers pass
// cells <= 0.
const DefaultCells = 200

// Triangles renders s with a uniform marching-cubes pass and converts
// the result to codec triangles. sdfx renders in float64; the narrowing
// to float32 here is the same narrowing the STL wire format imposes.
func Triangles(s sdf.SDF3, cells int) []geom.Triangle {
	if cells <= 0 {
		cells = DefaultCells
	}
	renderer := render.NewMarchingCubesUniform(cells)
	src := render.ToTriangles(s, renderer)

	tris := make([]geom.Triangle, 0, len(src))
	for _, tri := range src {
		n := tri.Normal()
		t := geom.Triangle{
			Normal: geom.Vec3{X: float32(n.X), Y: float32(n.Y), Z: float32(n.Z)},
		}
		for j := 0; j < 3; j++ {
			v := tri[j]
			t.V[j] = geom.Vec3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
		}
		tris = append(tris, t)
	}
	return tris
}

// WriteSTL renders s at the given resolution and writes the result to w
// as binary STL.
func WriteSTL(w io.Writer, s sdf.SDF3, cells int) error {
	return stl.Write(w, Triangles(s, cells))
}
