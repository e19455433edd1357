package tui

import (
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChoice(t *testing.T) {
	f, err := ParseChoice("1")
	require.NoError(t, err)
	assert.Equal(t, "Sierpiński Carpet", f.Name)

	f, err = ParseChoice("2\r\n")
	require.NoError(t, err)
	assert.Equal(t, "Sierpiński Gasket", f.Name)
}

// A menu answer other than "1" or "2" used to leave the fractal name unset
// and end the program without generating anything. It is reported as an
// invalid argument instead; whether the old silent exit was intended is not
// known, so this test pins the reporting behavior explicitly.
func TestParseChoiceRejectsOtherInput(t *testing.T) {
	for _, in := range []string{"", "0", "3", "carpet", "1 2", "01", " 1", "2 ", "\t1"} {
		_, err := ParseChoice(in)
		assert.ErrorIs(t, err, ErrInvalidChoice, "input %q", in)
		assert.ErrorIs(t, err, commerr.ErrInvalidArgument, "input %q", in)
	}
}

func TestParseIterations(t *testing.T) {
	for in, want := range map[string]int{"0": 0, "3": 3, " 7 \n": 7, "+2": 2, "-1": -1, "010": 10} {
		n, err := ParseIterations(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, n, "input %q", in)
	}

	for _, in := range []string{"", "three", "1.5", "0x10", "9999999999999999999999"} {
		_, err := ParseIterations(in)
		assert.ErrorIs(t, err, ErrInvalidIterations, "input %q", in)
	}
}

func TestResolveFractal(t *testing.T) {
	f, err := ResolveFractal("2")
	require.NoError(t, err)
	assert.Equal(t, "gasket", f.Key)

	f, err = ResolveFractal("CARPET")
	require.NoError(t, err)
	assert.Equal(t, "carpet", f.Key)

	_, err = ResolveFractal("koch")
	assert.ErrorIs(t, err, ErrInvalidChoice)
}

func TestPromptText(t *testing.T) {
	assert.Equal(t, "Please select the fractal object you would like to see generated:\n[1] Sierpiński Carpet\n[2] Sierpiński Gasket", ChoicePrompt)
	assert.Equal(t, "How many iterations of the Sierpiński Gasket would you like generated?", IterationsPrompt("Sierpiński Gasket"))
}
