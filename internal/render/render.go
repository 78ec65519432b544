// Package render builds terminal views of generation results. Rendering is
// presentation only; it never mutates or validates the results it is given.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/mindreel/internal/generate"
	"github.com/csheth/mindreel/internal/subtitle"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	branchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	helperStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	typeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
)

const minWrapWidth = 16

// Result renders any pipeline output for the given terminal width.
func Result(res generate.Result, width int) string {
	switch r := res.(type) {
	case generate.MindMapResult:
		return MindMap(r.Root, width)
	case generate.SummaryResult:
		return Summary(r.Markdown, width)
	case generate.ConceptMapResult:
		return ConceptMap(r.Graph, width)
	case generate.HighlightsResult:
		return Highlights(r.Set, width)
	}
	return ""
}

// MindMap renders the tree as indented branches with wrapped node text.
func MindMap(root *generate.MindMapNode, width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(root.Text))
	b.WriteRune('\n')
	writeBranches(&b, root.Children, "", width)
	return strings.TrimRight(b.String(), "\n")
}

func writeBranches(b *strings.Builder, nodes []*generate.MindMapNode, prefix string, width int) {
	for i, node := range nodes {
		connector, childPrefix := "├─ ", prefix+"│  "
		if i == len(nodes)-1 {
			connector, childPrefix = "└─ ", prefix+"   "
		}
		wrap := width - len([]rune(prefix)) - 3
		if wrap < minWrapWidth {
			wrap = minWrapWidth
		}
		lines := strings.Split(wordwrap.String(node.Text, wrap), "\n")
		b.WriteString(prefix + branchStyle.Render(connector) + lines[0] + "\n")
		for _, cont := range lines[1:] {
			b.WriteString(childPrefix + cont + "\n")
		}
		writeBranches(b, node.Children, childPrefix, width)
	}
}

// Summary renders the Markdown reply wrapped to the terminal width.
func Summary(markdown string, width int) string {
	if width < minWrapWidth {
		width = minWrapWidth
	}
	return wordwrap.String(strings.TrimSpace(markdown), width)
}

// ConceptMap renders the node list followed by the labelled edge list.
// Links whose endpoints match no node id are flagged rather than hidden.
func ConceptMap(graph *generate.ConceptMap, width int) string {
	dangling := map[generate.ConceptLink]bool{}
	for _, link := range graph.DanglingLinks() {
		dangling[link] = true
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Concepts"))
	b.WriteRune('\n')
	for _, node := range graph.Nodes {
		line := fmt.Sprintf("• [%s] %s", node.ID, node.Text)
		if node.Type != "" {
			line += " " + typeStyle.Render("("+node.Type+")")
		}
		b.WriteString(line + "\n")
	}
	b.WriteRune('\n')
	b.WriteString(headerStyle.Render("Links"))
	b.WriteRune('\n')
	for _, link := range graph.Links {
		label := link.Label
		if label == "" {
			label = "relates to"
		}
		line := fmt.Sprintf("%s ─%s→ %s", link.Source, label, link.Target)
		if dangling[link] {
			line += " " + warnStyle.Render("(unknown id)")
		}
		b.WriteString(wordwrap.String(line, max(width, minWrapWidth)) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Highlights renders the segment table with color swatches and durations,
// then the topic labels. Segments whose bounds do not parse or are inverted
// are flagged; the pipeline intentionally does not reject them.
func Highlights(set *generate.HighlightSet, width int) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Highlights"))
	b.WriteRune('\n')
	for _, seg := range set.Highlights {
		swatch := "■"
		if seg.Color != "" {
			swatch = lipgloss.NewStyle().Foreground(lipgloss.Color(seg.Color)).Render("■")
		}
		span := fmt.Sprintf("%s → %s", seg.StartTime, seg.EndTime)
		start, startErr := subtitle.ParseTimestamp(seg.StartTime)
		end, endErr := subtitle.ParseTimestamp(seg.EndTime)
		switch {
		case startErr != nil || endErr != nil:
			span += " " + warnStyle.Render("(unreadable time)")
		case end <= start:
			span += " " + warnStyle.Render("(inverted span)")
		default:
			span += " " + helperStyle.Render("("+subtitle.FormatTimestamp(end-start)+")")
		}
		b.WriteString(fmt.Sprintf("%s %s [%s]\n", swatch, span, seg.Topic))
		summary := wordwrap.String(seg.Summary, max(width-2, minWrapWidth))
		for _, line := range strings.Split(summary, "\n") {
			b.WriteString("  " + line + "\n")
		}
	}
	if len(set.Topics) > 0 {
		b.WriteRune('\n')
		b.WriteString(helperStyle.Render("Topics: " + strings.Join(set.Topics, ", ")))
	}
	return strings.TrimRight(b.String(), "\n")
}
