// Package generate turns free-form LLM replies about a subtitle transcript
// into structured results: a mind-map tree, a Markdown summary, a concept
// graph, or a set of highlight segments. The pipeline is stateless per
// invocation; concurrent generations share nothing.
package generate
