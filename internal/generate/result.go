package generate

// Result is the tagged union of per-mode generation outputs, for callers
// that dispatch on the mode at runtime.
type Result interface {
	// ResultMode identifies which variant this result is.
	ResultMode() Mode
}

// MindMapResult carries the tree built from a mind_map reply.
type MindMapResult struct {
	Root *MindMapNode
}

func (MindMapResult) ResultMode() Mode { return ModeMindMap }

// SummaryResult carries the model's Markdown reply verbatim (trimmed).
type SummaryResult struct {
	Markdown string
}

func (SummaryResult) ResultMode() Mode { return ModeSummary }

// ConceptMapResult carries the typed {nodes, links} graph.
type ConceptMapResult struct {
	Graph *ConceptMap
}

func (ConceptMapResult) ResultMode() Mode { return ModeConceptMap }

// HighlightsResult carries the typed {highlights, topics} set.
type HighlightsResult struct {
	Set *HighlightSet
}

func (HighlightsResult) ResultMode() Mode { return ModeHighlights }
