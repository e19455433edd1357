package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/sgostarter/i/l"
	"github.com/spf13/cobra"

	"sierpinski/internal/tui"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sierpinski",
		Short: "Draw the Sierpiński Carpet or Gasket one iteration at a time",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
	}

	flags := cmd.Flags()
	flags.String("fractal", "", `fractal to draw: "carpet", "gasket", "1" or "2" (asked when empty)`)
	flags.Int("iterations", 0, "number of iterations (asked when not set)")
	flags.Duration("pause", tui.DefaultPause, "how long each iteration stays on screen")
	flags.Bool("plain", false, "print frames line by line instead of the full-screen viewer")
	flags.Int("width", tui.DefaultPlotWidth, "plot width in cells for --plain")
	flags.Int("height", tui.DefaultPlotHeight, "plot height in cells for --plain")
	flags.BoolP("verbose", "v", false, "log to the console")

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	fractal, _ := flags.GetString("fractal")
	iterations, _ := flags.GetInt("iterations")
	pause, _ := flags.GetDuration("pause")
	plain, _ := flags.GetBool("plain")
	width, _ := flags.GetInt("width")
	height, _ := flags.GetInt("height")
	verbose, _ := flags.GetBool("verbose")

	if pause < 0 {
		return errors.New("--pause must not be negative")
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	var logger l.Wrapper = l.NewNopLoggerWrapper()
	if verbose {
		logger = l.NewConsoleLoggerWrapper()
	}
	logger = logger.WithFields(l.StringField(l.ClsKey, "main"))

	opts := []tui.Option{
		tui.PauseOption(pause),
		tui.PlotSizeOption(width, height),
		tui.LoggerOption(logger),
	}
	if fractal != "" {
		f, err := tui.ResolveFractal(fractal)
		if err != nil {
			return err
		}
		opts = append(opts, tui.FractalOption(f))
	}
	if flags.Changed("iterations") {
		opts = append(opts, tui.IterationsOption(iterations))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if plain || !isatty.IsTerminal(os.Stdout.Fd()) {
		logger.Debug("plain mode")
		return tui.RunPlain(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), opts...)
	}

	final, err := tea.NewProgram(tui.New(opts...), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if m, ok := final.(tui.Model); ok {
		m.Close()
		if err == nil {
			err = m.Err()
		}
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
