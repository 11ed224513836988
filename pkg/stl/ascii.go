package stl

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/chazu/veneer/pkg/geom"
)

// ASCIIReader decodes the textual STL grammar:
//
//	solid <name>
//	facet normal <f32> <f32> <f32>
//	  outer loop
//	    vertex <f32> <f32> <f32>   (three times)
//	  endloop
//	endfacet                       (repeated)
//	endsolid <name>
//
// Tokenization is whitespace-driven, blank lines are skipped, and one
// facet block is consumed per Next call. The solid and endsolid names
// are not cross-checked.
type ASCIIReader struct {
	sc   *bufio.Scanner
	done bool // endsolid seen
}

// NewASCIIReader validates that r starts with a "solid " line and
// returns a reader that decodes one facet per Next call.
func NewASCIIReader(r io.Reader) (*ASCIIReader, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("stl: empty input: %w", io.ErrUnexpectedEOF)
	}
	if !strings.HasPrefix(sc.Text(), asciiPrefix) {
		return nil, fmt.Errorf("%w: ascii STL does not start with %q", ErrFormat, asciiPrefix)
	}
	return &ASCIIReader{sc: sc}, nil
}

// Next consumes one facet block, or recognizes "endsolid" and returns
// io.EOF. Calls after endsolid keep returning io.EOF.
func (ar *ASCIIReader) Next() (geom.Triangle, error) {
	var t geom.Triangle
	if ar.done {
		return t, io.EOF
	}

	header, err := ar.line()
	if err == io.ErrUnexpectedEOF {
		return t, fmt.Errorf("stl: EOF while expecting facet or endsolid: %w", io.ErrUnexpectedEOF)
	}
	if err != nil {
		return t, err
	}
	if header[0] == "endsolid" {
		ar.done = true
		return t, io.EOF
	}
	if len(header) != 5 || header[0] != "facet" || header[1] != "normal" {
		return t, fmt.Errorf("%w: invalid facet header %q", ErrFormat, strings.Join(header, " "))
	}
	if t.Normal, err = parseVec3(header[2:5]); err != nil {
		return t, err
	}

	if err := ar.expect("outer", "loop"); err != nil {
		return t, err
	}
	for i := range t.V {
		line, err := ar.line()
		if err == io.ErrUnexpectedEOF {
			return t, fmt.Errorf("stl: EOF while expecting vertex: %w", io.ErrUnexpectedEOF)
		}
		if err != nil {
			return t, err
		}
		if len(line) != 4 || line[0] != "vertex" {
			return t, fmt.Errorf(`%w: expected "vertex f32 f32 f32", got %q`, ErrFormat, strings.Join(line, " "))
		}
		if t.V[i], err = parseVec3(line[1:4]); err != nil {
			return t, err
		}
	}
	if err := ar.expect("endloop"); err != nil {
		return t, err
	}
	if err := ar.expect("endfacet"); err != nil {
		return t, err
	}
	return t, nil
}

// line returns the tokens of the next non-blank line, or a bare
// io.ErrUnexpectedEOF when the stream is exhausted. Underlying read
// errors pass through verbatim.
func (ar *ASCIIReader) line() ([]string, error) {
	for ar.sc.Scan() {
		if fields := strings.Fields(ar.sc.Text()); len(fields) > 0 {
			return fields, nil
		}
	}
	if err := ar.sc.Err(); err != nil {
		return nil, err
	}
	return nil, io.ErrUnexpectedEOF
}

// expect consumes one line and requires its tokens to equal want.
func (ar *ASCIIReader) expect(want ...string) error {
	tokens, err := ar.line()
	if err == io.ErrUnexpectedEOF {
		return fmt.Errorf("stl: EOF while expecting %q: %w", strings.Join(want, " "), io.ErrUnexpectedEOF)
	}
	if err != nil {
		return err
	}
	if len(tokens) != len(want) {
		return fmt.Errorf("%w: expected %q, got %q", ErrFormat, strings.Join(want, " "), strings.Join(tokens, " "))
	}
	for i := range tokens {
		if tokens[i] != want[i] {
			return fmt.Errorf("%w: expected %q, got %q", ErrFormat, strings.Join(want, " "), strings.Join(tokens, " "))
		}
	}
	return nil
}

// parseVec3 parses three tokens as finite float32 components.
func parseVec3(tokens []string) (geom.Vec3, error) {
	var c [3]float32
	for i, tok := range tokens {
		f, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return geom.Vec3{}, fmt.Errorf("%w: %q", ErrNumber, tok)
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return geom.Vec3{}, fmt.Errorf("%w: %q is not finite", ErrNumber, tok)
		}
		c[i] = float32(f)
	}
	return geom.Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}
