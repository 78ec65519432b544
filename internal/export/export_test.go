package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/csheth/mindreel/internal/generate"
)

func TestDefaultName(t *testing.T) {
	tests := []struct {
		mode generate.Mode
		want string
	}{
		{generate.ModeMindMap, "mindmap.html"},
		{generate.ModeSummary, "summary.md"},
		{generate.ModeConceptMap, "concept_map.json"},
		{generate.ModeHighlights, "highlights.json"},
	}
	for _, tt := range tests {
		if got := DefaultName(tt.mode); got != tt.want {
			t.Fatalf("DefaultName(%s) = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestMindMapHTML(t *testing.T) {
	root := &generate.MindMapNode{
		Text: "Root",
		Children: []*generate.MindMapNode{
			{Text: "Child"},
		},
	}
	path := filepath.Join(t.TempDir(), "out", "mindmap.html")
	if err := MindMapHTML(path, root); err != nil {
		t.Fatalf("MindMapHTML: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	page := string(data)
	if strings.Contains(page, mindMapDataToken) {
		t.Fatalf("data token survived in the page")
	}
	if !strings.Contains(page, `{"text":"Root","children":[{"text":"Child","children":[]}]}`) {
		t.Fatalf("tree JSON missing from page:\n%s", page)
	}
	if !strings.Contains(page, "<html") {
		t.Fatalf("export is not an HTML page")
	}
}

func TestSummaryMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.md")
	if err := SummaryMarkdown(path, "  # Title\n\nBody.  "); err != nil {
		t.Fatalf("SummaryMarkdown: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if string(data) != "# Title\n\nBody.\n" {
		t.Fatalf("unexpected markdown: %q", data)
	}
}

func TestWriteDispatchesByResult(t *testing.T) {
	dir := t.TempDir()

	set := &generate.HighlightSet{
		Highlights: []generate.HighlightSegment{
			{StartTime: "00:00:10", EndTime: "00:00:45", Summary: "s", Topic: "t", Color: "#3357FF"},
		},
		Topics: []string{"t"},
	}
	path := filepath.Join(dir, "highlights.json")
	if err := Write(path, generate.HighlightsResult{Set: set}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var decoded generate.HighlightSet
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(decoded.Highlights) != 1 || decoded.Highlights[0].StartTime != "00:00:10" {
		t.Fatalf("unexpected round trip: %+v", decoded)
	}
}

func TestWriteConceptMapJSON(t *testing.T) {
	graph := &generate.ConceptMap{
		Nodes: []generate.ConceptNode{{ID: "1", Text: "Theme", Type: "root"}},
		Links: []generate.ConceptLink{},
	}
	path := filepath.Join(t.TempDir(), "concept_map.json")
	if err := Write(path, generate.ConceptMapResult{Graph: graph}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), `"nodes"`) || !strings.Contains(string(data), `"links"`) {
		t.Fatalf("unexpected concept map export: %s", data)
	}
}
