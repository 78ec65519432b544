package generate

// HighlightSegment is one time-bounded excerpt of the source video.
// Start/end are HH:MM:SS strings as the model produced them; the prompt
// requests start < end and non-overlapping segments but the pipeline does
// not enforce either.
type HighlightSegment struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Summary   string `json:"summary"`
	Topic     string `json:"topic"`
	Color     string `json:"color"`
}

// HighlightSet is the validated {highlights, topics} reply in typed form.
type HighlightSet struct {
	Highlights []HighlightSegment `json:"highlights"`
	Topics     []string           `json:"topics"`
}

// buildHighlightSet decodes the validated object forgivingly, mirroring
// buildConceptMap: non-object segment entries are skipped, missing fields
// default to empty strings.
func buildHighlightSet(obj map[string]any) *HighlightSet {
	set := &HighlightSet{Highlights: []HighlightSegment{}, Topics: []string{}}
	if entries, ok := obj["highlights"].([]any); ok {
		for _, entry := range entries {
			fields, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			set.Highlights = append(set.Highlights, HighlightSegment{
				StartTime: stringField(fields, "start_time"),
				EndTime:   stringField(fields, "end_time"),
				Summary:   stringField(fields, "summary"),
				Topic:     stringField(fields, "topic"),
				Color:     stringField(fields, "color"),
			})
		}
	}
	if entries, ok := obj["topics"].([]any); ok {
		for _, entry := range entries {
			switch v := entry.(type) {
			case string:
				set.Topics = append(set.Topics, v)
			case bool, float64:
				set.Topics = append(set.Topics, stringifyScalar(v))
			}
		}
	}
	return set
}
