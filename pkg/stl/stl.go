// Package stl reads and writes the STL triangle-mesh file format. Both
// the binary and the ASCII variant decode through the same pull-based
// Reader; encoding targets the binary variant only.
//
// Decoding never materializes the whole file: each Next call produces
// one triangle, so arbitrarily large inputs stream in constant memory.
package stl

import (
	"bufio"
	"io"
	"strings"

	"github.com/chazu/veneer/pkg/geom"
	"github.com/chazu/veneer/pkg/mesh"
)

// Reader yields successive triangles decoded from an STL byte stream.
// Next returns io.EOF once the stream is exhausted. Readers are
// stateful forward cursors: they are not safe for concurrent use, and a
// decode error does not invalidate triangles already returned.
type Reader interface {
	Next() (geom.Triangle, error)
}

// Compile-time interface checks.
var (
	_ Reader              = (*BinaryReader)(nil)
	_ Reader              = (*ASCIIReader)(nil)
	_ mesh.TriangleSource = Reader(nil)
)

// asciiPrefix begins every ASCII STL file. The trailing space matters:
// a binary file whose header happens to start with "solidx" must not
// probe as ASCII.
const asciiPrefix = "solid "

// NewReader probes rs for which STL variant it holds and returns the
// matching decoder, reading from the start of the stream.
//
// The probe reads the first line: if it begins with "solid " the source
// decodes as ASCII, otherwise as binary. A probe read failure also
// falls through to binary, whose own decode error is more precise. The
// read offset is restored to the start of the stream before either
// decoder is constructed; a failure to restore it is returned
// immediately, since neither decoder can start from an unknown offset.
func NewReader(rs io.ReadSeeker) (Reader, error) {
	ascii, err := probe(rs)
	if err != nil {
		return nil, err
	}
	if ascii {
		return NewASCIIReader(rs)
	}
	return NewBinaryReader(rs)
}

// probe peeks at the first line of rs and seeks back to the start.
// The seek is attempted before any read error is considered.
func probe(rs io.ReadSeeker) (ascii bool, err error) {
	line, readErr := bufio.NewReader(rs).ReadString('\n')
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return false, err
	}
	if readErr != nil && readErr != io.EOF {
		return false, nil
	}
	return strings.HasPrefix(line, asciiPrefix), nil
}

// ReadMesh decodes whichever STL variant rs contains and folds the
// triangles into an indexed mesh.
func ReadMesh(rs io.ReadSeeker) (*mesh.IndexedMesh, error) {
	r, err := NewReader(rs)
	if err != nil {
		return nil, err
	}
	return mesh.Build(r)
}
