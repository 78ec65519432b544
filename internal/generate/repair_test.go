package generate

import (
	"errors"
	"testing"
)

func TestParsePayloadStrictSkipsRepair(t *testing.T) {
	called := false
	repairer := RepairerFunc(func(string) (string, error) {
		called = true
		return "", errors.New("should not run")
	})

	value, err := parsePayload(`{"title":"T"}`, repairer)
	if err != nil {
		t.Fatalf("strict parse failed: %v", err)
	}
	if called {
		t.Fatalf("repairer ran on valid JSON")
	}
	obj, ok := value.(map[string]any)
	if !ok || obj["title"] != "T" {
		t.Fatalf("unexpected value: %#v", value)
	}
}

func TestParsePayloadRepairsTrailingComma(t *testing.T) {
	value, err := parsePayload(`{"title":"T","children":[],}`, defaultRepairer())
	if err != nil {
		t.Fatalf("repair pass failed: %v", err)
	}
	obj, ok := value.(map[string]any)
	if !ok || obj["title"] != "T" {
		t.Fatalf("unexpected value: %#v", value)
	}
}

func TestParsePayloadRepairsUnquotedKeys(t *testing.T) {
	value, err := parsePayload(`{title: "T", children: []}`, defaultRepairer())
	if err != nil {
		t.Fatalf("repair pass failed: %v", err)
	}
	obj, ok := value.(map[string]any)
	if !ok || obj["title"] != "T" {
		t.Fatalf("unexpected value: %#v", value)
	}
}

func TestParsePayloadTruncatedInput(t *testing.T) {
	// The repair library may or may not salvage this; either a usable object
	// or an UnparsableError is acceptable, a panic is not.
	value, err := parsePayload(`{"title": "T", "children": [`, defaultRepairer())
	if err != nil {
		var unparsable *UnparsableError
		if !errors.As(err, &unparsable) {
			t.Fatalf("expected UnparsableError, got %T: %v", err, err)
		}
		return
	}
	if _, ok := value.(map[string]any); !ok {
		t.Fatalf("repaired value is not an object: %#v", value)
	}
}

func TestParsePayloadFailureCarriesCandidate(t *testing.T) {
	repairer := RepairerFunc(func(string) (string, error) {
		return "", errors.New("beyond repair")
	})

	candidate := "definitely not json"
	_, err := parsePayload(candidate, repairer)
	if err == nil {
		t.Fatalf("expected error")
	}
	var unparsable *UnparsableError
	if !errors.As(err, &unparsable) {
		t.Fatalf("expected UnparsableError, got %T", err)
	}
	if unparsable.Candidate != candidate {
		t.Fatalf("error should carry the pre-repair candidate, got %q", unparsable.Candidate)
	}
	if unparsable.Err == nil {
		t.Fatalf("error should carry the strict parse failure")
	}
}

func TestParsePayloadRepairedStillInvalid(t *testing.T) {
	repairer := RepairerFunc(func(string) (string, error) {
		return "still not json", nil
	})

	_, err := parsePayload("{broken", repairer)
	var unparsable *UnparsableError
	if !errors.As(err, &unparsable) {
		t.Fatalf("expected UnparsableError, got %T: %v", err, err)
	}
	if unparsable.Candidate != "{broken" {
		t.Fatalf("error should carry the pre-repair candidate, got %q", unparsable.Candidate)
	}
}
