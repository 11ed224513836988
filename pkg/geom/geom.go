// Package geom provides the geometric primitives the STL codec is built
// on: single-precision 3-vectors and unindexed triangles.
package geom

import "math"

// Vec3 is a point or direction in 3-space. Components are single
// precision to match the STL wire format, which stores every value as a
// 4-byte IEEE-754 float.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// ApproxEqual reports whether every component of v is within eps of the
// corresponding component of o. This is the comparison callers and
// tests usually want. It is deliberately not the identity the indexer
// deduplicates on; that is the exact bit identity of VertexKey, which
// stays hashable and transitive where a tolerance cannot.
func (v Vec3) ApproxEqual(o Vec3, eps float32) bool {
	return abs(v.X-o.X) < eps && abs(v.Y-o.Y) < eps && abs(v.Z-o.Z) < eps
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

// VertexKey is the exact bit-pattern identity of a Vec3, usable as a
// map key. Two vectors share a key only if all three components are
// bit-identical: 0 and -0 are distinct keys, as are NaNs with different
// payloads. Keying on bits makes vertex deduplication deterministic and
// independent of arrival order.
type VertexKey [3]uint32

// Key returns the exact-identity key for v.
func (v Vec3) Key() VertexKey {
	return VertexKey{
		math.Float32bits(v.X),
		math.Float32bits(v.Y),
		math.Float32bits(v.Z),
	}
}

// Triangle is one unindexed STL facet: a normal and three vertices in
// winding order.
type Triangle struct {
	Normal Vec3
	V      [3]Vec3
}

// Area returns the area of the triangle spanned by a, b and c.
func Area(a, b, c Vec3) float32 {
	return c.Sub(b).Cross(a.Sub(b)).Length() / 2
}

// Area returns the triangle's area.
func (t Triangle) Area() float32 {
	return Area(t.V[0], t.V[1], t.V[2])
}
