package generate

import "strings"

// Placeholder is the literal token replaced with the transcript text in
// every template. Substitution is plain substring replacement, never a
// format mini-language, so braces occurring naturally in the transcript are
// left alone.
const Placeholder = "{subtitle_text}"

const defaultMindMapPrompt = `Analyze the following video subtitles and produce a structured mind-map summary.

Requirements:
1. Extract the video's theme and its core ideas.
2. Organize the content hierarchically (theme -> subtopics -> key points).
3. Keep every node short and clear, at most 20 words.
4. Use at most 3 levels of depth.
5. Reply in JSON with this shape:
{
  "title": "Video theme",
  "children": [
    {
      "text": "Subtopic 1",
      "children": [
        {"text": "Point 1", "children": []},
        {"text": "Point 2", "children": []}
      ]
    },
    {
      "text": "Subtopic 2",
      "children": []
    }
  ]
}

Subtitles:
{subtitle_text}

Return the JSON directly, without any other text.`

const defaultSummaryPrompt = `Read the following video subtitles and write a detailed content summary.

Requirements:
1. Summarize the main content and the core ideas of the video.
2. Use Markdown formatting.
3. Keep the structure clear, with bullet points where helpful.
4. Write fluent, logically coherent prose.

Subtitles:
{subtitle_text}
`

const defaultConceptMapPrompt = `Analyze the following video subtitles and produce a standard concept map.

Requirements:
1. Focus question: pick one central theme of the video as the root node.
2. Concepts: extract the key concepts as nodes (nouns).
3. Relationships: describe how concepts relate, using linking words (verbs or short phrases).
4. Hierarchy: order concepts from the most general (top) to the most specific (bottom).
5. Cross-links: look for lateral connections between concepts in different branches.
6. Reply in JSON containing "nodes" and "links" lists:
{
  "nodes": [
    {"id": "1", "text": "Central theme", "type": "root"},
    {"id": "2", "text": "Concept A", "type": "normal"},
    {"id": "3", "text": "Concept B", "type": "normal"}
  ],
  "links": [
    {"source": "1", "target": "2", "label": "includes"},
    {"source": "1", "target": "3", "label": "leads to"},
    {"source": "2", "target": "3", "label": "cross-link example"}
  ]
}

Subtitles:
{subtitle_text}

Return the JSON directly, without any other text. Make sure every source and target id exists in the nodes list.`

const defaultHighlightsPrompt = `Analyze the following video subtitles and extract the video's highlight reels.

Requirements:
1. Identify the 3-8 most important segments of the video.
2. Each segment must include:
   - start_time: start time (HH:MM:SS)
   - end_time: end time (HH:MM:SS)
   - summary: a one-sentence summary (at most 20 words)
   - topic: a topic label (such as "core idea", "case study", "conclusion", "background")
   - color: the color code for the topic (choose from: #FF5733, #33FF57, #3357FF, #F3FF33, #FF33F3, #33FFF3, #FFA533, #33FFFF)
3. Make sure segments do not overlap.
4. Reply in JSON with this shape:
{
  "highlights": [
    {
      "start_time": "00:00:10",
      "end_time": "00:00:45",
      "summary": "Introduces the core concepts of LLMs",
      "topic": "background",
      "color": "#3357FF"
    }
  ],
  "topics": ["background", "core idea"]
}

Subtitles:
{subtitle_text}

Return the JSON directly, without any other text.`

// buildPrompt renders the prompt for one generation request. A non-empty
// custom prompt is used verbatim in place of the mode's default template.
func buildPrompt(mode Mode, customPrompt, subtitleText string) string {
	template := customPrompt
	if template == "" {
		switch mode {
		case ModeSummary:
			template = defaultSummaryPrompt
		case ModeConceptMap:
			template = defaultConceptMapPrompt
		case ModeHighlights:
			template = defaultHighlightsPrompt
		default:
			template = defaultMindMapPrompt
		}
	}
	return strings.ReplaceAll(template, Placeholder, subtitleText)
}
