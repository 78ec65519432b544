package generate

import "strings"

// extractJSON trims a raw model reply down to the JSON payload it most
// plausibly contains: surrounding whitespace, then one markdown code fence,
// then any prose outside the outermost object braces. It never fails; when
// no object span exists the trimmed text passes through and the parse step
// surfaces the error. Fences are stripped before brace-slicing because a
// fence can itself open with explanatory text.
func extractJSON(raw string) string {
	content := strings.TrimSpace(raw)

	if strings.HasPrefix(content, "```json") {
		content = content[len("```json"):]
	} else if strings.HasPrefix(content, "```") {
		content = content[len("```"):]
	}
	if strings.HasSuffix(content, "```") {
		content = content[:len(content)-len("```")]
	}
	content = strings.TrimSpace(content)

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start != -1 && end != -1 && end > start {
		content = content[start : end+1]
	}
	return content
}
