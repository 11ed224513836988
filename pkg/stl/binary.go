package stl

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/chazu/veneer/pkg/geom"
)

const (
	headerSize = 80
	recordSize = 50 // 12 float32s plus the uint16 attribute field
)

// BinaryReader decodes the binary STL layout: an 80-byte opaque header,
// a little-endian uint32 triangle count, then one 50-byte record per
// triangle.
type BinaryReader struct {
	r      io.Reader
	header [headerSize]byte
	count  uint32
	read   uint32 // records produced so far
}

// NewBinaryReader reads the header and triangle count from r and
// returns a reader that decodes one triangle record per Next call.
func NewBinaryReader(r io.Reader) (*BinaryReader, error) {
	br := &BinaryReader{r: r}
	if _, err := io.ReadFull(r, br.header[:]); err != nil {
		return nil, fmt.Errorf("stl: reading binary header: %w", eof(err))
	}
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, fmt.Errorf("stl: reading triangle count: %w", eof(err))
	}
	br.count = binary.LittleEndian.Uint32(buf[:])
	return br, nil
}

// eof converts a bare io.EOF into io.ErrUnexpectedEOF: inside a fixed
// layout, running out of bytes is always a truncation.
func eof(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// Header returns the raw 80-byte file header. The format treats it as
// opaque; exporters often leave a text banner in it.
func (br *BinaryReader) Header() [headerSize]byte {
	return br.header
}

// Len returns the number of triangles not yet produced, per the count
// field. The count is taken at face value; a lying file surfaces as a
// truncation error from Next instead.
func (br *BinaryReader) Len() int {
	return int(br.count - br.read)
}

// Next decodes one triangle record. It returns io.EOF once the declared
// count has been produced, and an error wrapping io.ErrUnexpectedEOF if
// the stream ends mid-record.
func (br *BinaryReader) Next() (geom.Triangle, error) {
	var t geom.Triangle
	if br.read == br.count {
		return t, io.EOF
	}
	var rec [recordSize]byte
	if _, err := io.ReadFull(br.r, rec[:]); err != nil {
		return t, fmt.Errorf("stl: triangle record %d: %w", br.read, eof(err))
	}
	br.read++

	t.Normal = vec3At(rec[:], 0)
	for i := range t.V {
		t.V[i] = vec3At(rec[:], 12+12*i)
	}
	// rec[48:50] is the attribute byte count, ignored.
	return t, nil
}

// vec3At decodes three little-endian float32s starting at byte off.
func vec3At(b []byte, off int) geom.Vec3 {
	return geom.Vec3{
		X: math.Float32frombits(binary.LittleEndian.Uint32(b[off:])),
		Y: math.Float32frombits(binary.LittleEndian.Uint32(b[off+4:])),
		Z: math.Float32frombits(binary.LittleEndian.Uint32(b[off+8:])),
	}
}
