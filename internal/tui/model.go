package tui

import (
	"iter"
	"time"

	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sgostarter/i/l"

	"sierpinski/internal/ifs"
)

type stage int

const (
	stageChoice stage = iota
	stageIterations
	stagePlaying
	stageDone
)

// startMsg begins playback when both answers were given up front.
type startMsg struct{}

// tickMsg ends the pause of the frame with the given index.
type tickMsg struct {
	index int
}

// Model is the full-screen viewer: it asks for the fractal and the iteration
// count, then shows every iteration in turn.
type Model struct {
	width  int
	height int

	helpVisible bool
	status      string
	infoPopup   string

	opts   *Options
	logger l.Wrapper

	stage stage
	input textinput.Model

	fractal    ifs.Fractal
	iterations int

	// playback
	next   func() (int, ifs.PointSet, bool)
	stop   func()
	index  int
	points ifs.PointSet
	view   view

	err error
}

func New(option ...Option) Model {
	opts := optionNew(option...)
	m := Model{
		helpVisible: true,
		status:      "sierpinski ready",
		opts:        opts,
		logger:      opts.logger.WithFields(l.StringField(l.ClsKey, "tui")),
		view:        view{zoom: 1},
	}

	m.input = textinput.New()
	m.input.Prompt = "> "
	m.input.CharLimit = 32
	m.input.Width = 20
	m.input.Focus()

	m.stage = stageChoice
	if opts.hasFractal {
		m.fractal = opts.fractal
		m.stage = stageIterations
	}
	if opts.hasIterations {
		m.iterations = opts.iterations
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.opts.hasFractal && m.opts.hasIterations {
		return func() tea.Msg { return startMsg{} }
	}
	return textinput.Blink
}

// Err is the error that ended the program, if any.
func (m Model) Err() error { return m.err }

// Close releases the iteration sequence. It is safe to call more than once.
func (m Model) Close() {
	if m.stop != nil {
		m.stop()
	}
}

// Index is the iteration currently displayed.
func (m Model) Index() int { return m.index }

// Points is the point set currently displayed.
func (m Model) Points() ifs.PointSet { return m.points }

func (m Model) fail(err error) (Model, tea.Cmd) {
	m.err = err
	m.stage = stageDone
	m.status = err.Error()
	m.logger.WithFields(l.ErrorField(err)).Error("input rejected")
	m.Close()
	return m, tea.Quit
}

// begin validates the iteration count and shows iteration 0.
func (m Model) begin() (Model, tea.Cmd) {
	seq, err := m.fractal.Generate(m.iterations)
	if err != nil {
		return m.fail(err)
	}
	if m.iterations > m.fractal.RecommendedMax {
		m.logger.WithFields(l.StringField("fractal", m.fractal.Key), l.IntField("iterations", m.iterations),
			l.IntField("recommended", m.fractal.RecommendedMax)).Warn("iteration count above recommended maximum")
	}

	m.next, m.stop = iter.Pull2(seq)
	m.stage = stagePlaying
	m.input.Blur()
	return m.advance()
}

// advance replaces the displayed iteration with the next one, or quits after
// the last.
func (m Model) advance() (Model, tea.Cmd) {
	i, ps, ok := m.next()
	if !ok {
		m.stage = stageDone
		m.status = "done"
		m.Close()
		m.logger.WithFields(l.StringField("fractal", m.fractal.Key)).Debug("playback finished")
		return m, tea.Quit
	}
	m.index, m.points = i, ps
	m.status = m.fractal.Title(i)
	m.infoPopup = ""
	m.logger.WithFields(l.IntField("iteration", i), l.IntField("points", len(ps))).Debug("frame")
	return m, tea.Batch(tea.SetWindowTitle(m.fractal.Title(i)), pauseCmd(i, m.opts.pause))
}

func pauseCmd(index int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return tickMsg{index: index} })
}
