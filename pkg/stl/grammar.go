package stl

import (
	"io"
	"strconv"
	"strings"

	"github.com/cjfreeze/stl/pkg/geometry"
)

// grammarImpl is the two-phase implementation: it tokenizes the whole
// input, then walks the token list with one routine per grammar
// production. Unlike the streaming machine it requires the entire input
// in memory, and it holds solid names to a stricter rule.
type grammarImpl struct{}

func (grammarImpl) Parse(input []byte) (*Document, error) {
	tokens, end := tokenize(input)
	g := &grammarParser{tokens: tokens, end: end}
	return g.parseSolid()
}

func (grammarImpl) ParseStream(r io.Reader) (*Document, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, sourceUnavailable(err)
	}
	return grammarImpl{}.Parse(input)
}

// token is one whitespace-delimited field and the offset it began at.
type token struct {
	text   string
	offset int
}

// tokenize splits input into fields. The returned end offset is the
// position just past the consumed input, used to report where truncated
// input gave out.
func tokenize(input []byte) ([]token, int) {
	var scan fieldScanner
	scan.setChunk(input)
	var tokens []token
	for {
		field, offset, ok := scan.next()
		if !ok {
			break
		}
		tokens = append(tokens, token{text: field, offset: offset})
	}
	if field, offset, ok := scan.flush(); ok {
		tokens = append(tokens, token{text: field, offset: offset})
	}
	return tokens, scan.offset
}

type grammarParser struct {
	tokens []token
	pos    int
	end    int
	doc    documentBuilder
}

// take consumes the next token, failing with ErrTruncatedInput when the
// input ran out where expected names what should have been there.
func (g *grammarParser) take(expected string) (token, error) {
	if g.pos >= len(g.tokens) {
		return token{}, truncated(g.end, expected)
	}
	tok := g.tokens[g.pos]
	g.pos++
	return tok, nil
}

// atLastToken reports whether the token just consumed was the final one.
func (g *grammarParser) atLastToken() bool {
	return g.pos == len(g.tokens)
}

// expect consumes the next token and checks it against a keyword. A
// final token that is a strict prefix of the keyword means the input was
// cut off inside it.
func (g *grammarParser) expect(want string) error {
	tok, err := g.take(strconv.Quote(want))
	if err != nil {
		return err
	}
	if tok.text != want {
		if g.atLastToken() && strings.HasPrefix(want, tok.text) {
			return truncated(tok.offset, strconv.Quote(want))
		}
		return unexpectedToken(tok.text, tok.offset, strconv.Quote(want))
	}
	return nil
}

func (g *grammarParser) scalar() (float64, error) {
	tok, err := g.take("a floating-point value")
	if err != nil {
		return 0, err
	}
	return parseScalar(tok.text, tok.offset)
}

func (g *grammarParser) point() (geometry.Point, error) {
	var coords [3]float64
	for i := range coords {
		value, err := g.scalar()
		if err != nil {
			return geometry.Point{}, err
		}
		coords[i] = value
	}
	return geometry.NewPoint(coords[0], coords[1], coords[2]), nil
}

func (g *grammarParser) parseSolid() (*Document, error) {
	if err := g.expect("solid"); err != nil {
		return nil, err
	}

	tok, err := g.take(`a solid name, "facet" or "endsolid"`)
	if err != nil {
		return nil, err
	}
	if tok.text != "facet" && tok.text != "endsolid" {
		if !isName(tok.text) {
			return nil, unexpectedToken(tok.text, tok.offset, `a solid name, "facet" or "endsolid"`)
		}
		g.doc.name = tok.text
		tok, err = g.take(`"facet" or "endsolid"`)
		if err != nil {
			return nil, err
		}
	}

	for tok.text == "facet" {
		if err := g.parseFacet(); err != nil {
			return nil, err
		}
		tok, err = g.take(`"facet" or "endsolid"`)
		if err != nil {
			return nil, err
		}
	}
	if tok.text != "endsolid" {
		if g.atLastToken() && (strings.HasPrefix("facet", tok.text) || strings.HasPrefix("endsolid", tok.text)) {
			return nil, truncated(tok.offset, `"facet" or "endsolid"`)
		}
		return nil, unexpectedToken(tok.text, tok.offset, `"facet" or "endsolid"`)
	}
	return g.doc.document(), nil
}

// parseFacet consumes one facet body, the "facet" keyword itself having
// been consumed by the caller.
func (g *grammarParser) parseFacet() error {
	var facet Facet

	if err := g.expect("normal"); err != nil {
		return err
	}
	normal, err := g.point()
	if err != nil {
		return err
	}
	facet.Normal = normal

	if err := g.expect("outer"); err != nil {
		return err
	}
	if err := g.expect("loop"); err != nil {
		return err
	}
	for i := range facet.Vertices {
		if err := g.expect("vertex"); err != nil {
			return err
		}
		vertex, err := g.point()
		if err != nil {
			return err
		}
		facet.Vertices[i] = vertex
	}
	if err := g.expect("endloop"); err != nil {
		return err
	}
	if err := g.expect("endfacet"); err != nil {
		return err
	}

	g.doc.add(facet)
	return nil
}

// isName reports whether s qualifies as a solid name under the grammar
// implementation's rule: one or more ASCII letters.
func isName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
