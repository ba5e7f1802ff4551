package stl

import (
	"strconv"
	"strings"

	"github.com/cjfreeze/stl/pkg/geometry"
)

// parseState is the position of the streaming machine inside the STL
// grammar. Together with the vertex/coordinate counters it fully
// determines which field is legal next, so an illegal state/payload
// combination cannot be represented.
type parseState uint8

const (
	stateSolid        parseState = iota // expecting the "solid" keyword
	stateNameOrFacet                    // after "solid": optional name, "facet" or "endsolid"
	stateFacetOrEnd                     // between facets: "facet" or "endsolid"
	stateNormal                         // inside a facet: expecting "normal"
	stateNormalScalar                   // reading the 3 normal coordinates
	stateOuter                          // expecting "outer"
	stateLoop                           // expecting "loop"
	stateVertex                         // expecting "vertex"
	stateVertexScalar                   // reading the 3 coordinates of the current vertex
	stateEndLoop                        // expecting "endloop"
	stateEndFacet                       // expecting "endfacet"
	stateDone                           // document materialized; trailing input is unexamined
)

// Parser is the streaming STL parser: a single-pass state machine that
// consumes input chunk by chunk and folds the geometric aggregates into
// the same pass that builds the document. Chunk boundaries may fall
// anywhere, including mid-field or mid-keyword.
//
// A Parser is single-use. It holds no shared state, so any number of
// independent parses may run concurrently, but one Parser must not be
// fed from multiple goroutines.
type Parser struct {
	scan  fieldScanner
	state parseState

	doc documentBuilder

	facet       Facet      // facet under construction
	coords      [3]float64 // scalar triple under construction
	coordIndex  int
	vertexIndex int

	finishing bool // set while flushing the final partial field
	result    *Document
	err       error
}

// NewParser creates a parser positioned before the "solid" keyword.
func NewParser() *Parser {
	return &Parser{}
}

// Feed consumes the next chunk of input. It returns nil both when the
// chunk was fully consumed and when the machine suspended mid-field
// awaiting more input; errors are terminal and make every further call
// return the same error. Chunks arriving after the document completed
// are ignored.
func (p *Parser) Feed(chunk []byte) error {
	if p.err != nil {
		return p.err
	}
	if p.state == stateDone {
		return nil
	}
	p.scan.setChunk(chunk)
	for p.state != stateDone {
		field, offset, ok := p.scan.next()
		if !ok {
			return nil
		}
		if err := p.step(field, offset); err != nil {
			p.err = err
			return err
		}
	}
	return nil
}

// Done reports whether the document has been completed. Once done,
// further input is unexamined and Finish returns the document.
func (p *Parser) Done() bool {
	return p.state == stateDone
}

// Finish signals end of input. A pending partial field is flushed as the
// final field first; if the machine still has not reached "endsolid" the
// parse fails with ErrTruncatedInput.
func (p *Parser) Finish() (*Document, error) {
	if p.err != nil {
		return nil, p.err
	}
	if p.state != stateDone {
		if field, offset, ok := p.scan.flush(); ok {
			p.finishing = true
			if err := p.step(field, offset); err != nil {
				p.err = err
				return nil, err
			}
		}
	}
	if p.state != stateDone {
		p.err = truncated(p.scan.offset, p.expecting())
		return nil, p.err
	}
	return p.result, nil
}

// step advances the machine by one field.
func (p *Parser) step(field string, offset int) error {
	switch p.state {
	case stateSolid:
		if err := p.keyword(field, offset, "solid"); err != nil {
			return err
		}
		p.state = stateNameOrFacet

	case stateNameOrFacet:
		// The structural keywords win over a name, so a nameless solid
		// still parses; any other field becomes the name.
		switch field {
		case "facet":
			p.state = stateNormal
		case "endsolid":
			p.materialize()
		default:
			p.doc.name = field
			p.state = stateFacetOrEnd
		}

	case stateFacetOrEnd:
		switch field {
		case "facet":
			p.state = stateNormal
		case "endsolid":
			p.materialize()
		default:
			if p.finishing && (strings.HasPrefix("facet", field) || strings.HasPrefix("endsolid", field)) {
				return truncated(offset, p.expecting())
			}
			return unexpectedToken(field, offset, p.expecting())
		}

	case stateNormal:
		if err := p.keyword(field, offset, "normal"); err != nil {
			return err
		}
		p.state = stateNormalScalar

	case stateNormalScalar:
		value, err := parseScalar(field, offset)
		if err != nil {
			return err
		}
		p.coords[p.coordIndex] = value
		p.coordIndex++
		if p.coordIndex == 3 {
			p.facet.Normal = geometry.NewPoint(p.coords[0], p.coords[1], p.coords[2])
			p.coordIndex = 0
			p.state = stateOuter
		}

	case stateOuter:
		if err := p.keyword(field, offset, "outer"); err != nil {
			return err
		}
		p.state = stateLoop

	case stateLoop:
		if err := p.keyword(field, offset, "loop"); err != nil {
			return err
		}
		p.state = stateVertex

	case stateVertex:
		if err := p.keyword(field, offset, "vertex"); err != nil {
			return err
		}
		p.state = stateVertexScalar

	case stateVertexScalar:
		value, err := parseScalar(field, offset)
		if err != nil {
			return err
		}
		p.coords[p.coordIndex] = value
		p.coordIndex++
		if p.coordIndex == 3 {
			p.facet.Vertices[p.vertexIndex] = geometry.NewPoint(p.coords[0], p.coords[1], p.coords[2])
			p.coordIndex = 0
			p.vertexIndex++
			if p.vertexIndex == 3 {
				// Third vertex completes the facet: invoke the geometry
				// kernel and fold the aggregates in right here, not in a
				// deferred pass.
				p.doc.add(p.facet)
				p.facet = Facet{}
				p.vertexIndex = 0
				p.state = stateEndLoop
			} else {
				p.state = stateVertex
			}
		}

	case stateEndLoop:
		if err := p.keyword(field, offset, "endloop"); err != nil {
			return err
		}
		p.state = stateEndFacet

	case stateEndFacet:
		if err := p.keyword(field, offset, "endfacet"); err != nil {
			return err
		}
		p.state = stateFacetOrEnd
	}
	return nil
}

// keyword checks field against the single keyword the state allows.
// While finishing, a field that is a strict prefix of the wanted keyword
// means the input was cut off inside it, which is truncation rather than
// a grammar violation.
func (p *Parser) keyword(field string, offset int, want string) error {
	if field == want {
		return nil
	}
	if p.finishing && strings.HasPrefix(want, field) {
		return truncated(offset, strconv.Quote(want))
	}
	return unexpectedToken(field, offset, strconv.Quote(want))
}

// materialize builds the final Document in one terminal transition. No
// partially-populated document is ever visible to a caller.
func (p *Parser) materialize() {
	p.result = p.doc.document()
	p.state = stateDone
}

// expecting names what the grammar allows in the current state, for
// error messages.
func (p *Parser) expecting() string {
	switch p.state {
	case stateSolid:
		return `"solid"`
	case stateNameOrFacet:
		return `a solid name, "facet" or "endsolid"`
	case stateFacetOrEnd:
		return `"facet" or "endsolid"`
	case stateNormal:
		return `"normal"`
	case stateNormalScalar, stateVertexScalar:
		return "a floating-point value"
	case stateOuter:
		return `"outer"`
	case stateLoop:
		return `"loop"`
	case stateVertex:
		return `"vertex"`
	case stateEndLoop:
		return `"endloop"`
	case stateEndFacet:
		return `"endfacet"`
	}
	return ""
}

// parseScalar parses one coordinate field. Decimal and exponential ASCII
// forms are accepted, per strconv.
func parseScalar(field string, offset int) (float64, error) {
	value, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, malformedNumber(field, offset)
	}
	return value, nil
}
