package generate

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse reports a model reply with no content at all.
var ErrEmptyResponse = errors.New("model returned an empty reply")

// UnparsableError reports a reply that neither strict parsing nor the
// repair pass could turn into JSON. Candidate holds the extracted,
// pre-repair text for diagnostics.
type UnparsableError struct {
	Candidate string
	Err       error
}

func (e *UnparsableError) Error() string {
	return fmt.Sprintf("model reply is not valid JSON: %v (candidate: %s)", e.Err, clipForDisplay(e.Candidate, 200))
}

func (e *UnparsableError) Unwrap() error { return e.Err }

// MalformedError reports a reply that parsed as JSON but does not satisfy
// the mode's minimum schema.
type MalformedError struct {
	Mode    Mode
	Missing string // required top-level key absent from the reply
	Reason  string // set when the problem is not a missing key
}

func (e *MalformedError) Error() string {
	if e.Missing != "" {
		return fmt.Sprintf("%s reply is missing the %q field", e.Mode, e.Missing)
	}
	return fmt.Sprintf("%s reply is malformed: %s", e.Mode, e.Reason)
}

func clipForDisplay(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "…"
}
