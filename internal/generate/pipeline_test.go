package generate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/csheth/mindreel/internal/llm"
)

type fakeClient struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeClient) Complete(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func (f *fakeClient) Name() string { return "fake" }

func newTestGenerator(t *testing.T, client *fakeClient) *Generator {
	t.Helper()
	gen, err := New(Config{Client: client})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return gen
}

func TestNewRequiresClient(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected error without a client")
	}
}

func TestMindMapFromFencedReply(t *testing.T) {
	client := &fakeClient{reply: "```json\n{\"title\":\"T\",\"children\":[\"a\",\"b\"]}\n```"}
	gen := newTestGenerator(t, client)

	root, err := gen.MindMap(context.Background(), "transcript text")
	if err != nil {
		t.Fatalf("MindMap: %v", err)
	}
	if root.Text != "T" || len(root.Children) != 2 {
		t.Fatalf("unexpected tree: %+v", root)
	}
	if root.Children[0].Text != "a" || root.Children[1].Text != "b" {
		t.Fatalf("unexpected children: %+v", root.Children)
	}
	if len(client.prompts) != 1 || !strings.Contains(client.prompts[0], "transcript text") {
		t.Fatalf("transcript not embedded in prompt")
	}
}

func TestMindMapFromProseWrappedReply(t *testing.T) {
	client := &fakeClient{reply: `Sure! Here is the result: {"title":"T","children":[]} Hope this helps.`}
	gen := newTestGenerator(t, client)

	root, err := gen.MindMap(context.Background(), "x")
	if err != nil {
		t.Fatalf("MindMap: %v", err)
	}
	if root.Text != "T" || len(root.Children) != 0 {
		t.Fatalf("unexpected tree: %+v", root)
	}
}

func TestSummaryPassesReplyThrough(t *testing.T) {
	reply := "# Heading\n\nNo JSON anywhere in this reply."
	client := &fakeClient{reply: "\n" + reply + "\n"}
	gen := newTestGenerator(t, client)

	got, err := gen.Summary(context.Background(), "x")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if got != reply {
		t.Fatalf("summary should be the trimmed reply verbatim: %q", got)
	}
}

func TestConceptMapMissingLinks(t *testing.T) {
	client := &fakeClient{reply: `{"nodes": []}`}
	gen := newTestGenerator(t, client)

	_, err := gen.ConceptMap(context.Background(), "x")
	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedError, got %v", err)
	}
	if malformed.Missing != "links" {
		t.Fatalf("expected missing links, got %+v", malformed)
	}
}

func TestHighlightsTypedResult(t *testing.T) {
	client := &fakeClient{reply: `{
		"highlights": [{"start_time": "00:00:10", "end_time": "00:00:45", "summary": "s", "topic": "background", "color": "#3357FF"}],
		"topics": ["background"]
	}`}
	gen := newTestGenerator(t, client)

	set, err := gen.Highlights(context.Background(), "x")
	if err != nil {
		t.Fatalf("Highlights: %v", err)
	}
	if len(set.Highlights) != 1 || set.Highlights[0].Topic != "background" {
		t.Fatalf("unexpected set: %+v", set)
	}
}

func TestEmptyReply(t *testing.T) {
	client := &fakeClient{reply: "  \n\t"}
	gen := newTestGenerator(t, client)

	for _, mode := range Modes() {
		_, err := gen.Generate(context.Background(), mode, "x")
		if !errors.Is(err, ErrEmptyResponse) {
			t.Fatalf("%s: expected ErrEmptyResponse, got %v", mode, err)
		}
	}
}

func TestProviderErrorPropagates(t *testing.T) {
	client := &fakeClient{err: &llm.ProviderError{Provider: "chat", Status: 439, Body: "token expired"}}
	gen := newTestGenerator(t, client)

	_, err := gen.MindMap(context.Background(), "x")
	var provider *llm.ProviderError
	if !errors.As(err, &provider) {
		t.Fatalf("provider error should propagate unmodified, got %v", err)
	}
	if provider.Status != 439 {
		t.Fatalf("unexpected status: %d", provider.Status)
	}
	if !strings.Contains(err.Error(), "expired") {
		t.Fatalf("439 should be annotated as an expired token: %v", err)
	}
}

func TestUnparsableReplySurfacesCandidate(t *testing.T) {
	client := &fakeClient{reply: "I cannot produce JSON today."}
	gen := &Generator{
		client: client,
		repairer: RepairerFunc(func(string) (string, error) {
			return "", errors.New("nope")
		}),
	}

	_, err := gen.MindMap(context.Background(), "x")
	var unparsable *UnparsableError
	if !errors.As(err, &unparsable) {
		t.Fatalf("expected UnparsableError, got %v", err)
	}
	if unparsable.Candidate != "I cannot produce JSON today." {
		t.Fatalf("candidate should be the extracted reply: %q", unparsable.Candidate)
	}
}

func TestGenerateReturnsTaggedVariants(t *testing.T) {
	replies := map[Mode]string{
		ModeMindMap:    `{"title":"T","children":[]}`,
		ModeSummary:    "just text",
		ModeConceptMap: `{"nodes":[],"links":[]}`,
		ModeHighlights: `{"highlights":[],"topics":[]}`,
	}
	for mode, reply := range replies {
		gen := newTestGenerator(t, &fakeClient{reply: reply})
		result, err := gen.Generate(context.Background(), mode, "x")
		if err != nil {
			t.Fatalf("%s: %v", mode, err)
		}
		if result.ResultMode() != mode {
			t.Fatalf("%s: result tagged as %s", mode, result.ResultMode())
		}
	}
}

func TestGenerateRejectsUnknownMode(t *testing.T) {
	gen := newTestGenerator(t, &fakeClient{reply: "x"})
	if _, err := gen.Generate(context.Background(), Mode("bogus"), "x"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestCustomPromptUsedForEveryMode(t *testing.T) {
	client := &fakeClient{reply: `{"title":"T","children":[],"nodes":[],"links":[],"highlights":[],"topics":[]}`}
	gen, err := New(Config{Client: client, CustomPrompt: "  Only say OK about: " + Placeholder + "  "})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, mode := range Modes() {
		if _, err := gen.Generate(context.Background(), mode, "THE TEXT"); err != nil {
			t.Fatalf("%s: %v", mode, err)
		}
	}
	for _, prompt := range client.prompts {
		if prompt != "Only say OK about: THE TEXT" {
			t.Fatalf("custom prompt not used verbatim: %q", prompt)
		}
	}
}

func TestDanglingLinksDoNotFailGeneration(t *testing.T) {
	client := &fakeClient{reply: `{
		"nodes": [{"id": "1", "text": "Theme", "type": "root"}],
		"links": [{"source": "1", "target": "404", "label": "points nowhere"}]
	}`}
	gen := newTestGenerator(t, client)

	graph, err := gen.ConceptMap(context.Background(), "x")
	if err != nil {
		t.Fatalf("dangling links must not reject the reply: %v", err)
	}
	if got := graph.DanglingLinks(); len(got) != 1 {
		t.Fatalf("expected 1 dangling link, got %d", len(got))
	}
}
