package llm

import "fmt"

// Some OpenAI-compatible gateways signal an expired credential with this
// non-standard status.
const statusTokenExpired = 439

// ProviderError reports a non-success reply from the completion service.
type ProviderError struct {
	Provider string
	Status   int
	Body     string
}

func (e *ProviderError) Error() string {
	msg := fmt.Sprintf("%s API error: status %d", e.Provider, e.Status)
	if e.Status == statusTokenExpired {
		msg += " (API token expired, update the credential)"
	}
	if e.Body != "" {
		msg += ": " + clipBody(e.Body, 200)
	}
	return msg
}

func clipBody(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "…"
}
