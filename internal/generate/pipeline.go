package generate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/csheth/mindreel/internal/llm"
)

// Config wires a Generator. All configuration is explicit; nothing is read
// from process-wide state.
type Config struct {
	// Client performs the external LLM call.
	Client llm.Client
	// CustomPrompt, when non-empty, replaces the default template of every
	// mode verbatim. Use Placeholder inside it to mark where the transcript
	// goes.
	CustomPrompt string
	// Repairer overrides the JSON repair pass. Nil selects the
	// jsonrepair-backed default.
	Repairer Repairer
}

// Generator runs the reply-to-structure pipeline for each generation mode.
// It holds only configuration; invocations are independent and safe to run
// concurrently.
type Generator struct {
	client       llm.Client
	customPrompt string
	repairer     Repairer
}

// New builds a Generator from explicit configuration.
func New(cfg Config) (*Generator, error) {
	if cfg.Client == nil {
		return nil, errors.New("generate: llm client is required")
	}
	repairer := cfg.Repairer
	if repairer == nil {
		repairer = defaultRepairer()
	}
	return &Generator{
		client:       cfg.Client,
		customPrompt: strings.TrimSpace(cfg.CustomPrompt),
		repairer:     repairer,
	}, nil
}

// MindMap generates the mind-map tree for the transcript.
func (g *Generator) MindMap(ctx context.Context, subtitleText string) (*MindMapNode, error) {
	obj, err := g.generateObject(ctx, ModeMindMap, subtitleText)
	if err != nil {
		return nil, err
	}
	return buildTree(obj), nil
}

// Summary generates a Markdown summary. The reply is returned trimmed but
// otherwise verbatim; no JSON extraction or parsing happens in this mode.
func (g *Generator) Summary(ctx context.Context, subtitleText string) (string, error) {
	return g.complete(ctx, ModeSummary, subtitleText)
}

// ConceptMap generates the typed concept graph for the transcript.
func (g *Generator) ConceptMap(ctx context.Context, subtitleText string) (*ConceptMap, error) {
	obj, err := g.generateObject(ctx, ModeConceptMap, subtitleText)
	if err != nil {
		return nil, err
	}
	return buildConceptMap(obj), nil
}

// Highlights generates the typed highlight set for the transcript.
func (g *Generator) Highlights(ctx context.Context, subtitleText string) (*HighlightSet, error) {
	obj, err := g.generateObject(ctx, ModeHighlights, subtitleText)
	if err != nil {
		return nil, err
	}
	return buildHighlightSet(obj), nil
}

// Generate runs the pipeline for an arbitrary mode and returns the tagged
// result variant.
func (g *Generator) Generate(ctx context.Context, mode Mode, subtitleText string) (Result, error) {
	switch mode {
	case ModeMindMap:
		root, err := g.MindMap(ctx, subtitleText)
		if err != nil {
			return nil, err
		}
		return MindMapResult{Root: root}, nil
	case ModeSummary:
		markdown, err := g.Summary(ctx, subtitleText)
		if err != nil {
			return nil, err
		}
		return SummaryResult{Markdown: markdown}, nil
	case ModeConceptMap:
		graph, err := g.ConceptMap(ctx, subtitleText)
		if err != nil {
			return nil, err
		}
		return ConceptMapResult{Graph: graph}, nil
	case ModeHighlights:
		set, err := g.Highlights(ctx, subtitleText)
		if err != nil {
			return nil, err
		}
		return HighlightsResult{Set: set}, nil
	}
	return nil, fmt.Errorf("unknown generation mode %q", mode)
}

// complete performs the external call and classifies empty replies.
// Provider failures propagate unmodified.
func (g *Generator) complete(ctx context.Context, mode Mode, subtitleText string) (string, error) {
	prompt := buildPrompt(mode, g.customPrompt, subtitleText)
	reply, err := g.client.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", ErrEmptyResponse
	}
	return reply, nil
}

// generateObject runs the shared extract/parse/validate tail for the three
// JSON-producing modes.
func (g *Generator) generateObject(ctx context.Context, mode Mode, subtitleText string) (map[string]any, error) {
	reply, err := g.complete(ctx, mode, subtitleText)
	if err != nil {
		return nil, err
	}
	candidate := extractJSON(reply)
	value, err := parsePayload(candidate, g.repairer)
	if err != nil {
		return nil, err
	}
	return validateObject(mode, value)
}
