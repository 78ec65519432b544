package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/mindreel/internal/generate"
	"github.com/csheth/mindreel/internal/render"
)

var (
	heroStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	taglineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	helperStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

const heroTagline = "Turn subtitle transcripts into mind maps, summaries and highlight reels."

func (m *model) View() string {
	parts := []string{m.heroView()}

	switch m.stage {
	case stagePick, stageLoading:
		parts = append(parts, m.pickerView())
	case stageDisplay:
		parts = append(parts, m.viewport.View())
	}

	if m.errorMessage != "" {
		parts = append(parts, errorStyle.Render(m.errorMessage))
	}
	if m.infoMessage != "" {
		message := m.infoMessage
		if m.inFlight {
			message = fmt.Sprintf("%s %s", m.spinner.View(), message)
		}
		parts = append(parts, helperStyle.Render(message))
	}
	parts = append(parts, helperStyle.Render(m.keyLegend()))
	return joinNonEmpty(parts)
}

func (m *model) heroView() string {
	title := heroStyle.Render("mindreel")
	if m.config.ClientName != "" {
		title += helperStyle.Render(" · " + m.config.ClientName)
	}
	return title + "\n" + taglineStyle.Render(heroTagline)
}

func (m *model) pickerView() string {
	var b strings.Builder
	for i, mode := range generate.Modes() {
		line := "  " + modeLabels[mode]
		if i == m.cursor {
			line = selectedStyle.Render("▸ " + modeLabels[mode])
		}
		b.WriteString(line)
		b.WriteRune('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *model) keyLegend() string {
	if m.stage == stageDisplay {
		return "↑/↓: scroll • e: export • esc: modes • q: quit"
	}
	return "↑/↓: pick • enter: generate • q: quit"
}

func renderResult(res generate.Result, width int) string {
	return render.Result(res, width)
}

func joinNonEmpty(parts []string) string {
	kept := parts[:0]
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		kept = append(kept, part)
	}
	return strings.Join(kept, "\n\n")
}
