package stl_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cjfreeze/stl/pkg/stl"
)

func TestGrammarParsesCube(t *testing.T) {
	doc, err := stl.Parse([]byte(cubeSTL), stl.WithImplementation(stl.Grammar))
	require.NoError(t, err)
	requireCube(t, doc)
}

func TestGrammarMatchesStreaming(t *testing.T) {
	inputs := map[string]string{
		"cube":     cubeSTL,
		"empty":    "solid hollow\nendsolid hollow\n",
		"unnamed":  "solid\nendsolid\n",
		"nameless": "solid\nfacet normal 0 0 1\nouter loop\nvertex 0 0 0\nvertex 1 0 0\nvertex 0 1 0\nendloop\nendfacet\nendsolid\n",
	}
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			want, err := stl.ParseString(input)
			require.NoError(t, err)
			got, err := stl.ParseString(input, stl.WithImplementation(stl.Grammar))
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}

func TestGrammarNameRule(t *testing.T) {
	// The grammar implementation holds names to ASCII letters; the
	// streaming machine accepts any field.
	input := "solid part42\nendsolid part42\n"

	_, err := stl.ParseString(input, stl.WithImplementation(stl.Grammar))
	require.ErrorIs(t, err, stl.ErrUnexpectedToken)

	doc, err := stl.ParseString(input)
	require.NoError(t, err)
	require.Equal(t, "part42", doc.Name)
}

func TestGrammarNamedSolid(t *testing.T) {
	doc, err := stl.ParseString("solid Hollow\nendsolid Hollow\n", stl.WithImplementation(stl.Grammar))
	require.NoError(t, err)
	require.Equal(t, "Hollow", doc.Name)
	require.Nil(t, doc.BoundingBox())
}

func TestGrammarTruncatedInsideKeyword(t *testing.T) {
	_, err := stl.ParseString("solid part\nendsol", stl.WithImplementation(stl.Grammar))
	require.ErrorIs(t, err, stl.ErrTruncatedInput)
}

func TestGrammarMalformedNumberToken(t *testing.T) {
	input := "solid s\nfacet normal 0 0 1\nouter loop\nvertex 1 2 3\nvertex 4 5 six\nvertex 0 0 0\nendloop\nendfacet\nendsolid s\n"
	_, err := stl.ParseString(input, stl.WithImplementation(stl.Grammar))
	require.ErrorIs(t, err, stl.ErrMalformedNumber)

	var perr *stl.ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "six", perr.Token)
}
