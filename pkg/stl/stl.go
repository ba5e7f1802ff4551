// Package stl parses ASCII STL solids. A single pass over the input
// yields the triangle count, the axis-aligned bounding box and the total
// surface area alongside the facet list, so callers never re-walk the
// geometry for the common measurements.
package stl

import (
	"io"
	"os"
)

// streamChunkSize is the read size used when draining an io.Reader.
const streamChunkSize = 32 * 1024

// Implementation is a parsing strategy. Both implementations accept the
// same grammar and produce identical documents; they differ in how they
// traverse the input.
type Implementation interface {
	// Parse parses a complete document held in memory.
	Parse(input []byte) (*Document, error)
	// ParseStream parses a document from a reader.
	ParseStream(r io.Reader) (*Document, error)
}

var (
	// Streaming is the default implementation: a chunk-fed state
	// machine that never holds more than one field of lookahead.
	Streaming Implementation = streamingImpl{}

	// Grammar tokenizes the whole input up front and walks the token
	// list by recursive descent. It restricts solid names to ASCII
	// letters where Streaming accepts any field.
	Grammar Implementation = grammarImpl{}
)

// Option configures a parse call.
type Option func(*config)

type config struct {
	impl Implementation
}

// WithImplementation selects the parsing strategy. The default is
// Streaming.
func WithImplementation(impl Implementation) Option {
	return func(c *config) {
		c.impl = impl
	}
}

func newConfig(opts []Option) config {
	cfg := config{impl: Streaming}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Parse parses an ASCII STL document held in memory.
func Parse(input []byte, opts ...Option) (*Document, error) {
	return newConfig(opts).impl.Parse(input)
}

// ParseString parses an ASCII STL document held in a string.
func ParseString(input string, opts ...Option) (*Document, error) {
	return Parse([]byte(input), opts...)
}

// ParseStream parses an ASCII STL document from a reader. Reading stops
// as soon as the document completes; a read failure before that surfaces
// as ErrSourceUnavailable wrapping the reader's error.
func ParseStream(r io.Reader, opts ...Option) (*Document, error) {
	return newConfig(opts).impl.ParseStream(r)
}

// ParseFile parses the ASCII STL file at path.
func ParseFile(path string, opts ...Option) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, sourceUnavailable(err)
	}
	defer f.Close()
	return ParseStream(f, opts...)
}

type streamingImpl struct{}

func (streamingImpl) Parse(input []byte) (*Document, error) {
	p := NewParser()
	if err := p.Feed(input); err != nil {
		return nil, err
	}
	return p.Finish()
}

func (streamingImpl) ParseStream(r io.Reader) (*Document, error) {
	p := NewParser()
	buf := make([]byte, streamChunkSize)
	for !p.Done() {
		n, err := r.Read(buf)
		if n > 0 {
			if ferr := p.Feed(buf[:n]); ferr != nil {
				return nil, ferr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, sourceUnavailable(err)
		}
	}
	return p.Finish()
}
