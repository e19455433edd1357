package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/sgostarter/i/l"
)

// RunPlain asks the two questions on in/out line by line, then writes every
// iteration to out as a titled braille plot, holding each for the pause.
// Answers given through options are not asked for.
func RunPlain(ctx context.Context, in io.Reader, out io.Writer, option ...Option) error {
	opts := optionNew(option...)
	logger := opts.logger.WithFields(l.StringField(l.ClsKey, "plain"))
	sc := bufio.NewScanner(in)

	f := opts.fractal
	if !opts.hasFractal {
		answer, err := ask(sc, out, ChoicePrompt)
		if err != nil {
			return err
		}
		if f, err = ParseChoice(answer); err != nil {
			return err
		}
	}

	n := opts.iterations
	if !opts.hasIterations {
		answer, err := ask(sc, out, IterationsPrompt(f.Name))
		if err != nil {
			return err
		}
		if n, err = ParseIterations(answer); err != nil {
			return err
		}
	}

	seq, err := f.Generate(n)
	if err != nil {
		return err
	}
	if n > f.RecommendedMax {
		logger.WithFields(l.StringField("fractal", f.Key), l.IntField("iterations", n),
			l.IntField("recommended", f.RecommendedMax)).Warn("iteration count above recommended maximum")
	}

	r := lipgloss.NewRenderer(out)
	title := r.NewStyle().Foreground(accentFg).Bold(true)
	for i, ps := range seq {
		if err = ctx.Err(); err != nil {
			return err
		}
		plot := renderPlot(ps, f.Bounds(), opts.plotWidth, opts.plotHeight, view{zoom: 1})
		if _, err = fmt.Fprintf(out, "%s\n%s\n\n", title.Render(f.Title(i)), plot); err != nil {
			return err
		}
		logger.WithFields(l.IntField("iteration", i), l.IntField("points", len(ps))).Debug("frame")

		if err = hold(ctx, opts.pause); err != nil {
			return err
		}
	}
	return nil
}

func ask(sc *bufio.Scanner, out io.Writer, question string) (string, error) {
	if _, err := fmt.Fprintln(out, question); err != nil {
		return "", err
	}
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("read answer: %w", io.ErrUnexpectedEOF)
	}
	return sc.Text(), nil
}

func hold(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
