package main

import (
	"fmt"

	"github.com/cjfreeze/stl/pkg/stl"
)

// loadDocument parses the file with the implementation selected by the
// persistent --parser flag.
func loadDocument(path string) (*stl.Document, error) {
	impl, err := implementation()
	if err != nil {
		return nil, err
	}
	return stl.ParseFile(path, stl.WithImplementation(impl))
}

func implementation() (stl.Implementation, error) {
	switch parserName {
	case "streaming":
		return stl.Streaming, nil
	case "grammar":
		return stl.Grammar, nil
	}
	return nil, fmt.Errorf("unknown parser %q (want \"streaming\" or \"grammar\")", parserName)
}
