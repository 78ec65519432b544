package generate

import (
	"encoding/json"

	"github.com/kaptinlin/jsonrepair"
)

// Repairer turns near-valid JSON text into strictly valid JSON. The exact
// repair semantics vary by implementation, so the pipeline only relies on
// the documented basics: trailing commas, unquoted keys, unbalanced
// brackets, truncated strings.
type Repairer interface {
	Repair(candidate string) (string, error)
}

// RepairerFunc adapts a plain function into a Repairer.
type RepairerFunc func(string) (string, error)

func (f RepairerFunc) Repair(candidate string) (string, error) { return f(candidate) }

func defaultRepairer() Repairer {
	return RepairerFunc(jsonrepair.JSONRepair)
}

// parsePayload parses a candidate JSON string, strict first, then once more
// after a repair pass. Both failing yields an UnparsableError carrying the
// original candidate.
func parsePayload(candidate string, repairer Repairer) (any, error) {
	var value any
	strictErr := json.Unmarshal([]byte(candidate), &value)
	if strictErr == nil {
		return value, nil
	}

	repaired, err := repairer.Repair(candidate)
	if err != nil {
		return nil, &UnparsableError{Candidate: candidate, Err: strictErr}
	}
	if err := json.Unmarshal([]byte(repaired), &value); err != nil {
		return nil, &UnparsableError{Candidate: candidate, Err: strictErr}
	}
	return value, nil
}
