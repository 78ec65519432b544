package generate

// ConceptNode is one concept in the generated concept map.
type ConceptNode struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Type string `json:"type"`
}

// ConceptLink relates two concepts by node id with a linking phrase.
type ConceptLink struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label"`
}

// ConceptMap is the validated {nodes, links} reply in typed form. Link
// endpoints are not verified against node ids; the prompt asks the model to
// guarantee that, and DanglingLinks reports where it did not.
type ConceptMap struct {
	Nodes []ConceptNode `json:"nodes"`
	Links []ConceptLink `json:"links"`
}

// DanglingLinks returns the links whose source or target id does not match
// any node. The pipeline never rejects a reply over these; callers decide.
func (m *ConceptMap) DanglingLinks() []ConceptLink {
	ids := make(map[string]struct{}, len(m.Nodes))
	for _, node := range m.Nodes {
		ids[node.ID] = struct{}{}
	}
	var dangling []ConceptLink
	for _, link := range m.Links {
		if _, ok := ids[link.Source]; !ok {
			dangling = append(dangling, link)
			continue
		}
		if _, ok := ids[link.Target]; !ok {
			dangling = append(dangling, link)
		}
	}
	return dangling
}

// buildConceptMap decodes the validated object forgivingly: entries that
// are not objects are skipped, missing fields default to empty strings,
// scalar values stringify like tree leaves.
func buildConceptMap(obj map[string]any) *ConceptMap {
	graph := &ConceptMap{Nodes: []ConceptNode{}, Links: []ConceptLink{}}
	if entries, ok := obj["nodes"].([]any); ok {
		for _, entry := range entries {
			fields, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			graph.Nodes = append(graph.Nodes, ConceptNode{
				ID:   stringField(fields, "id"),
				Text: stringField(fields, "text"),
				Type: stringField(fields, "type"),
			})
		}
	}
	if entries, ok := obj["links"].([]any); ok {
		for _, entry := range entries {
			fields, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			graph.Links = append(graph.Links, ConceptLink{
				Source: stringField(fields, "source"),
				Target: stringField(fields, "target"),
				Label:  stringField(fields, "label"),
			})
		}
	}
	return graph
}

// stringField reads a field as a string, stringifying scalars the way the
// tree builder does. Absent and null both yield the empty string.
func stringField(fields map[string]any, key string) string {
	value, ok := fields[key]
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return stringifyScalar(value)
}
