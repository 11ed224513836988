package stl

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"

	"github.com/chazu/veneer/pkg/geom"
	"github.com/chazu/veneer/pkg/mesh"
)

// Write encodes tris as binary STL: 80 zero header bytes, the triangle
// count as a little-endian uint32, then one 50-byte record per
// triangle with a zero attribute field. The count field precedes the
// records, which is why this takes a slice rather than a stream: the
// exact length must be known before any triangle is written.
//
// Output is buffered and flushed before returning. A write failure
// aborts the encode and is returned verbatim; bytes already written
// stay written.
func Write(w io.Writer, tris []geom.Triangle) error {
	bw := bufio.NewWriter(w)

	var header [headerSize]byte
	if _, err := bw.Write(header[:]); err != nil {
		return err
	}
	var count [4]byte
	binary.LittleEndian.PutUint32(count[:], uint32(len(tris)))
	if _, err := bw.Write(count[:]); err != nil {
		return err
	}

	var rec [recordSize]byte
	for i := range tris {
		t := &tris[i]
		putVec3(rec[:], 0, t.Normal)
		for j, v := range t.V {
			putVec3(rec[:], 12+12*j, v)
		}
		// rec[48:50] stays zero: the attribute byte count.
		if _, err := bw.Write(rec[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteMesh encodes m as binary STL, resolving each face through the
// vertex list.
func WriteMesh(w io.Writer, m *mesh.IndexedMesh) error {
	tris := make([]geom.Triangle, m.FaceCount())
	for i := range tris {
		tris[i] = m.Triangle(i)
	}
	return Write(w, tris)
}

// putVec3 encodes v as three little-endian float32s at byte off.
func putVec3(b []byte, off int, v geom.Vec3) {
	binary.LittleEndian.PutUint32(b[off:], math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(b[off+4:], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(b[off+8:], math.Float32bits(v.Z))
}
