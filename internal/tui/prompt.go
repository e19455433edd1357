package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sgostarter/i/commerr"

	"sierpinski/internal/ifs"
)

// Errors returned for answers that cannot be used.
var (
	ErrInvalidChoice     = fmt.Errorf("%w: invalid fractal selection", commerr.ErrInvalidArgument)
	ErrInvalidIterations = fmt.Errorf("%w: iteration count is not an integer", commerr.ErrInvalidArgument)
)

// ChoicePrompt is the first question asked.
const ChoicePrompt = "Please select the fractal object you would like to see generated:\n" +
	"[1] Sierpiński Carpet\n" +
	"[2] Sierpiński Gasket"

// IterationsPrompt is the second question, naming the selected fractal.
func IterationsPrompt(name string) string {
	return "How many iterations of the " + name + " would you like generated?"
}

// ParseChoice resolves a menu answer. Only the exact text "1" or "2" is
// accepted; a trailing line terminator is ignored.
func ParseChoice(s string) (ifs.Fractal, error) {
	switch strings.TrimRight(s, "\r\n") {
	case "1":
		return ifs.Carpet(), nil
	case "2":
		return ifs.Gasket(), nil
	}
	return ifs.Fractal{}, fmt.Errorf("%w: %q", ErrInvalidChoice, s)
}

// ParseIterations parses a base-10 iteration count. The sign is not checked;
// the generator rejects negative counts.
func ParseIterations(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidIterations, err)
	}
	return n, nil
}

// ResolveFractal accepts either a menu number or a fractal key such as "carpet".
func ResolveFractal(s string) (ifs.Fractal, error) {
	if f, err := ParseChoice(s); err == nil {
		return f, nil
	}
	f, err := ifs.Lookup(s)
	if err != nil {
		return ifs.Fractal{}, fmt.Errorf("%w: %w", ErrInvalidChoice, err)
	}
	return f, nil
}
