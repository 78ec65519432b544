package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/mindreel/internal/export"
	"github.com/csheth/mindreel/internal/generate"
	"github.com/csheth/mindreel/internal/llm"
	"github.com/csheth/mindreel/internal/render"
	"github.com/csheth/mindreel/internal/tui"
)

const (
	defaultChatBase    = "https://api.openai.com/v1"
	defaultChatModel   = "gpt-4o-mini"
	defaultOllamaBase  = "http://localhost:11434"
	defaultOllamaModel = "qwen2.5:7b"
)

func main() {
	input := flag.String("input", "", "path to a plain-text transcript (one subtitle line per row)")
	modeFlag := flag.String("mode", "", "run once without the TUI: mind_map, summary, concept_map or highlights")
	promptFile := flag.String("prompt-file", "", "file holding a custom prompt; {subtitle_text} marks where the transcript goes")
	modelFlag := flag.String("model", "", "model identifier")
	baseURL := flag.String("base-url", "", "API base URL")
	apiKey := flag.String("api-key", "", "API key (defaults to $MINDREEL_API_KEY)")
	useOllama := flag.Bool("ollama", false, "talk to a local Ollama server instead of a chat-completions API")
	exportPath := flag.String("export", "", "write the result to this file (format depends on mode)")
	asJSON := flag.Bool("json", false, "print the raw JSON result in one-shot mode")
	exportDir := flag.String("export-dir", ".", "directory the TUI writes exports into")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	flag.Parse()

	if *input == "" {
		fail("missing -input: point it at a plain-text transcript file")
	}
	transcript, err := os.ReadFile(*input)
	if err != nil {
		fail("read transcript: %v", err)
	}
	if strings.TrimSpace(string(transcript)) == "" {
		fail("transcript %s is empty", *input)
	}

	customPrompt := ""
	if *promptFile != "" {
		raw, err := os.ReadFile(*promptFile)
		if err != nil {
			fail("read prompt file: %v", err)
		}
		customPrompt = string(raw)
	}

	client, err := buildClient(*useOllama, *baseURL, *modelFlag, *apiKey)
	if err != nil {
		fail("%v", err)
	}

	generator, err := generate.New(generate.Config{
		Client:       client,
		CustomPrompt: customPrompt,
	})
	if err != nil {
		fail("%v", err)
	}

	if *modeFlag != "" {
		runOnce(generator, *modeFlag, string(transcript), *exportPath, *asJSON)
		return
	}

	opts := []tea.ProgramOption{}
	if !*noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Generator:      generator,
			ClientName:     client.Name(),
			TranscriptName: *input,
			Transcript:     string(transcript),
			ExportDir:      *exportDir,
		}),
		opts...,
	)
	if _, err := program.Run(); err != nil {
		fail("program error: %v", err)
	}
}

func buildClient(useOllama bool, baseURL, model, apiKey string) (llm.Client, error) {
	if useOllama {
		if baseURL == "" {
			baseURL = envOr("OLLAMA_HOST", defaultOllamaBase)
		}
		if model == "" {
			model = envOr("OLLAMA_MODEL", defaultOllamaModel)
		}
		return llm.NewOllama(llm.Config{BaseURL: baseURL, Model: model})
	}
	if baseURL == "" {
		baseURL = envOr("MINDREEL_API_BASE", defaultChatBase)
	}
	if model == "" {
		model = envOr("MINDREEL_MODEL", defaultChatModel)
	}
	if apiKey == "" {
		apiKey = os.Getenv("MINDREEL_API_KEY")
	}
	return llm.New(llm.Config{BaseURL: baseURL, APIKey: apiKey, Model: model})
}

func runOnce(generator *generate.Generator, modeName, transcript, exportPath string, asJSON bool) {
	mode, err := generate.ParseMode(modeName)
	if err != nil {
		fail("%v", err)
	}
	result, err := generator.Generate(context.Background(), mode, transcript)
	if err != nil {
		fail("%v", err)
	}

	if asJSON {
		printJSON(result)
	} else {
		fmt.Println(render.Result(result, 100))
	}

	if exportPath != "" {
		if err := export.Write(exportPath, result); err != nil {
			fail("export: %v", err)
		}
		fmt.Fprintln(os.Stderr, "exported to "+exportPath)
	}
}

func printJSON(result generate.Result) {
	var payload any
	switch r := result.(type) {
	case generate.MindMapResult:
		payload = r.Root
	case generate.SummaryResult:
		payload = map[string]string{"summary": r.Markdown}
	case generate.ConceptMapResult:
		payload = r.Graph
	case generate.HighlightsResult:
		payload = r.Set
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		fail("encode result: %v", err)
	}
	fmt.Println(string(data))
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
