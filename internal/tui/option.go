package tui

import (
	"time"

	"github.com/sgostarter/i/l"

	"sierpinski/internal/ifs"
)

const (
	DefaultPause      = time.Second
	DefaultPlotWidth  = 64
	DefaultPlotHeight = 24
)

// Options configures both viewers. Build it with the Option functions.
type Options struct {
	fractal       ifs.Fractal
	hasFractal    bool
	iterations    int
	hasIterations bool
	pause         time.Duration
	plotWidth     int
	plotHeight    int
	logger        l.Wrapper
}

// Option sets one field of Options.
type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{pause: DefaultPause, plotWidth: DefaultPlotWidth, plotHeight: DefaultPlotHeight}
	for _, o := range option {
		o(opts)
	}

	if opts.logger == nil {
		opts.logger = l.NewNopLoggerWrapper()
	}

	return opts
}

// FractalOption preselects the fractal; the menu prompt is skipped.
func FractalOption(f ifs.Fractal) Option {
	return func(o *Options) {
		o.fractal = f
		o.hasFractal = true
	}
}

// IterationsOption preselects the iteration count; the second prompt is
// skipped once the fractal is known.
func IterationsOption(n int) Option {
	return func(o *Options) {
		o.iterations = n
		o.hasIterations = true
	}
}

// PauseOption sets how long each iteration stays on screen.
func PauseOption(d time.Duration) Option {
	return func(o *Options) {
		if d >= 0 {
			o.pause = d
		}
	}
}

// PlotSizeOption sets the plot area of the plain viewer in terminal cells.
func PlotSizeOption(w, h int) Option {
	return func(o *Options) {
		if w > 0 && h > 0 {
			o.plotWidth, o.plotHeight = w, h
		}
	}
}

// LoggerOption sets the logger; the default discards everything.
func LoggerOption(logger l.Wrapper) Option {
	return func(o *Options) {
		o.logger = logger
	}
}
