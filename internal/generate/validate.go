package generate

import "fmt"

// validateObject confirms the parsed reply carries the fields the mode
// requires. This is deliberately the minimum check that keeps the builders
// from crashing, not a full structural schema: deeper shape errors are
// tolerated by the forgiving decoders downstream.
func validateObject(mode Mode, value any) (map[string]any, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, &MalformedError{Mode: mode, Reason: fmt.Sprintf("top-level JSON value is %T, not an object", value)}
	}
	switch mode {
	case ModeConceptMap:
		if _, ok := obj["nodes"]; !ok {
			return nil, &MalformedError{Mode: mode, Missing: "nodes"}
		}
		if _, ok := obj["links"]; !ok {
			return nil, &MalformedError{Mode: mode, Missing: "links"}
		}
	case ModeHighlights:
		if _, ok := obj["highlights"]; !ok {
			return nil, &MalformedError{Mode: mode, Missing: "highlights"}
		}
	}
	return obj, nil
}
