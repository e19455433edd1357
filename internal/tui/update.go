package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case startMsg:
		if m.stage == stageIterations {
			return m.begin()
		}
		return m, nil
	case tickMsg:
		// A tick from an earlier frame is stale once the user moved on.
		if m.stage == stagePlaying && msg.index == m.index {
			return m.advance()
		}
		return m, nil
	case tea.KeyMsg:
		switch m.stage {
		case stageChoice, stageIterations:
			return m.updatePrompt(msg)
		case stagePlaying:
			return m.updatePlaying(msg)
		default:
			return m, tea.Quit
		}
	}

	if m.stage == stageChoice || m.stage == stageIterations {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.stage = stageDone
		return m, tea.Quit
	case "enter":
		answer := m.input.Value()
		m.input.SetValue("")
		if m.stage == stageChoice {
			f, err := ParseChoice(answer)
			if err != nil {
				return m.fail(err)
			}
			m.fractal = f
			m.stage = stageIterations
			m.status = "selected: " + f.Name
			if m.opts.hasIterations {
				return m.begin()
			}
			return m, nil
		}
		n, err := ParseIterations(answer)
		if err != nil {
			return m.fail(err)
		}
		m.iterations = n
		return m.begin()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.stage = stageDone
		m.status = "stopped"
		m.Close()
		return m, tea.Quit
	case "+", "=":
		if m.view.zoom < 64 {
			m.view.zoom *= 1.2
			m.status = fmt.Sprintf("zoom: %.2fx", m.view.zoom)
		}
	case "-", "_":
		if m.view.zoom > 0.05 {
			m.view.zoom /= 1.2
			m.status = fmt.Sprintf("zoom: %.2fx", m.view.zoom)
		}
	case "0":
		m.view = view{zoom: 1}
		m.status = "view reset"
	case "up":
		m.view.offsetY -= 1
	case "down":
		m.view.offsetY += 1
	case "left":
		m.view.offsetX -= 2
	case "right":
		m.view.offsetX += 2
	case "h":
		m.helpVisible = !m.helpVisible
	case "i":
		if m.infoPopup != "" {
			m.infoPopup = ""
			break
		}
		bb := m.fractal.Bounds()
		meta := []string{
			fmt.Sprintf("fractal: %s", m.fractal.Name),
			fmt.Sprintf("iteration: %d of %d", m.index, m.iterations),
			fmt.Sprintf("points: %d", len(m.points)),
			fmt.Sprintf("maps: %d", len(m.fractal.Maps)),
			fmt.Sprintf("bbox: [%.5f, %.5f, %.5f, %.5f]", bb.MinX, bb.MinY, bb.MaxX, bb.MaxY),
		}
		if c, ok := m.viewCenter(); ok {
			meta = append(meta, fmt.Sprintf("center: (%.5f, %.5f)", c.X, c.Y))
		}
		m.infoPopup = strings.Join(meta, "\n")
		m.status = "info popup"
	}
	return m, nil
}
