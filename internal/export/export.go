// Package export writes generation results to disk in the conventional
// format for each mode: mind map as a self-contained HTML page, summary as
// Markdown, concept map and highlights as pretty-printed JSON.
package export

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/csheth/mindreel/internal/generate"
)

//go:embed mindmap_template.html
var mindMapTemplate string

// The tree JSON is spliced into a script tag by literal token replacement;
// template syntax would mangle the payload.
const mindMapDataToken = "{{ MINDMAP_DATA }}"

// DefaultName returns the conventional file name for a mode's artifact.
func DefaultName(mode generate.Mode) string {
	switch mode {
	case generate.ModeMindMap:
		return "mindmap.html"
	case generate.ModeSummary:
		return "summary.md"
	case generate.ModeConceptMap:
		return "concept_map.json"
	default:
		return "highlights.json"
	}
}

// Write persists a result using the conventional format for its mode.
func Write(path string, res generate.Result) error {
	switch r := res.(type) {
	case generate.MindMapResult:
		return MindMapHTML(path, r.Root)
	case generate.SummaryResult:
		return SummaryMarkdown(path, r.Markdown)
	case generate.ConceptMapResult:
		return resultJSON(path, r.Graph)
	case generate.HighlightsResult:
		return resultJSON(path, r.Set)
	}
	return fmt.Errorf("export: no format for result %T", res)
}

// MindMapHTML writes a self-contained interactive mind-map page.
func MindMapHTML(path string, root *generate.MindMapNode) error {
	data, err := json.Marshal(root)
	if err != nil {
		return err
	}
	page := strings.ReplaceAll(mindMapTemplate, mindMapDataToken, string(data))
	return writeFile(path, []byte(page))
}

// SummaryMarkdown writes the summary reply as a Markdown document.
func SummaryMarkdown(path, markdown string) error {
	return writeFile(path, []byte(strings.TrimSpace(markdown)+"\n"))
}

func resultJSON(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(path, append(data, '\n'))
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
