package tui

import (
	"math"
	"strings"

	"github.com/akyairhashvil/sstimer/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// chromeRows is the number of lines around the face: header, progress,
// status and help.
const chromeRows = 4

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	theme := Themes[m.theme]

	var b strings.Builder
	b.WriteString(m.renderHeader(theme))
	b.WriteString("\n\n")
	b.WriteString(m.cachedFace(theme))
	b.WriteString("\n\n")
	b.WriteString(m.progress.ViewAs(m.face.Ratio()))
	b.WriteString("\n")
	b.WriteString(theme.Status.Render(truncateLabel(m.Message, m.width-2)))
	b.WriteString("\n")
	helpView := m.help
	helpView.ShowAll = m.showHelp
	b.WriteString(helpView.View(m.keys))

	body := lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) renderHeader(theme Theme) string {
	if m.completed {
		return theme.Alert.Render("TIME'S UP")
	}
	title := theme.Header.Render("sstimer")
	status := FormatPhase(m.engine.Running(), m.engine.Paused(), m.engine.Remaining())
	return title + theme.Dim.Render("  v"+versionLabel()+"  |  ") + theme.Status.Render(status)
}

// cachedFace returns the painted face, rebuilding it only after the
// display adapter marked the surface dirty or the window changed.
func (m Model) cachedFace(theme Theme) string {
	s := m.surface
	if !s.dirty && s.width == m.width && s.height == m.height && s.face != "" {
		return s.face
	}
	s.face = m.renderFace(theme)
	s.width, s.height = m.width, m.height
	s.dirty = false
	s.frames++
	return s.face
}

func (m Model) compact() bool {
	return m.width < config.FaceMinWidth || m.height < config.FaceMinHeight+chromeRows
}

func (m Model) renderFace(theme Theme) string {
	if m.compact() {
		text := " " + m.face.Clock() + " "
		if m.face.Paused() {
			text += "⏸ "
		}
		return theme.Face.Render(text)
	}

	var lines []string
	lines = append(lines, strings.Split(m.face.Block(m.face.Minutes()), "\n")...)
	lines = append(lines, pauseBand(m.face.Paused())...)
	lines = append(lines, strings.Split(m.face.Block(m.face.Seconds()), "\n")...)

	inner := config.FaceMinWidth - config.GaugeWidth
	for _, l := range lines {
		if w := lipgloss.Width(l) + 2; w > inner {
			inner = w
		}
	}

	gauge := gaugeCells(len(lines), m.face.Ratio(), theme)
	rows := make([]string, len(lines))
	for i, l := range lines {
		cell := theme.Face.Render(lipgloss.PlaceHorizontal(inner, lipgloss.Center, l))
		rows[i] = gauge[i] + cell
	}
	return strings.Join(rows, "\n")
}

// pauseBand is the strip between minutes and seconds; it carries the
// two-bar pause glyph while paused.
func pauseBand(paused bool) []string {
	band := make([]string, config.PauseBarHeight)
	bar := strings.Repeat("█", config.PauseBarWidth)
	for i := range band {
		if paused {
			band[i] = bar + strings.Repeat(" ", config.PauseBarGap) + bar
		}
	}
	return band
}

// gaugeCells renders the vertical gauge top to bottom. The filled part
// grows from the bottom edge.
func gaugeCells(rows int, ratio float64, theme Theme) []string {
	filled := int(math.Round(ratio * float64(rows)))
	blank := strings.Repeat(" ", config.GaugeWidth)
	fill := lipgloss.NewStyle().Background(theme.Fill).Render(blank)
	empty := lipgloss.NewStyle().Background(theme.Empty).Render(blank)
	out := make([]string, rows)
	for i := range out {
		if i >= rows-filled {
			out[i] = fill
		} else {
			out[i] = empty
		}
	}
	return out
}
