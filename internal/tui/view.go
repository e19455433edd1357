package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sierpinski/internal/geom"
)

// contentSize is the area between the header and the footer.
func (m Model) contentSize() (int, int) {
	headerHeight := 1
	footerHeight := 2
	return max(10, m.width), max(4, m.height-headerHeight-footerHeight)
}

// viewCenter is the plane coordinate shown in the middle of the plot.
func (m Model) viewCenter() (geom.Point, bool) {
	w, h := m.contentSize()
	vp, ok := plotViewport(m.fractal.Bounds(), w, h, m.view)
	if !ok {
		return geom.Point{}, false
	}
	return vp.Point((vp.W-1)/2, (vp.H-1)/2)
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	contentWidth, contentHeight := m.contentSize()

	var header, body string
	switch m.stage {
	case stageChoice:
		header = titleStyle.Render(" sierpinski ")
		body = promptStyle.Render(ChoicePrompt + "\n\n" + m.input.View())
	case stageIterations:
		header = titleStyle.Render(" " + m.fractal.Name + " ")
		body = promptStyle.Render(IterationsPrompt(m.fractal.Name) + "\n\n" + m.input.View())
	case stagePlaying:
		header = titleStyle.Render(" " + m.fractal.Title(m.index) + " ")
		plot := renderPlot(m.points, m.fractal.Bounds(), contentWidth, contentHeight, m.view)
		body = lipgloss.Place(contentWidth, contentHeight, lipgloss.Center, lipgloss.Center, plot)
		if m.infoPopup != "" {
			box := boxStyle.MaxWidth(min(48, contentWidth)).Render(m.infoPopup)
			body = lipgloss.Place(contentWidth, contentHeight, lipgloss.Left, lipgloss.Center, box)
		}
	default:
		header = titleStyle.Render(" sierpinski ")
		if m.err != nil {
			body = errorStyle.Render("error: " + m.err.Error())
		}
	}
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)
	body = lipgloss.NewStyle().Width(contentWidth).Height(contentHeight).MaxHeight(contentHeight).Render(body)

	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, status, help))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	var keys []string
	if m.stage == stagePlaying {
		keys = []string{
			"↑↓←→ pan",
			"+/- zoom",
			"0 reset",
			"i info",
			"h help",
			"q quit",
		}
	} else {
		keys = []string{
			"Enter submit",
			"Esc quit",
		}
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
