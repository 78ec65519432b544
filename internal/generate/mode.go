package generate

import "fmt"

// Mode selects which transformation of the transcript is requested. It
// determines the default prompt template, the reply schema, and the result
// shape.
type Mode string

const (
	ModeMindMap    Mode = "mind_map"
	ModeSummary    Mode = "summary"
	ModeConceptMap Mode = "concept_map"
	ModeHighlights Mode = "highlights"
)

// Modes lists every supported mode in presentation order.
func Modes() []Mode {
	return []Mode{ModeMindMap, ModeSummary, ModeConceptMap, ModeHighlights}
}

// ParseMode maps a user-supplied mode name onto a Mode.
func ParseMode(name string) (Mode, error) {
	switch Mode(name) {
	case ModeMindMap, ModeSummary, ModeConceptMap, ModeHighlights:
		return Mode(name), nil
	}
	return "", fmt.Errorf("unknown generation mode %q (want mind_map, summary, concept_map or highlights)", name)
}
