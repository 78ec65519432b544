package generate

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// fallbackRootTitle labels the root when the reply carries no usable title.
const fallbackRootTitle = "Video Summary"

// MindMapNode is one node of the generated mind-map tree. The root is owned
// by the caller; children are owned by their parent. The serialized shape is
// always {"text": ..., "children": [...]}, children never null.
type MindMapNode struct {
	Text     string         `json:"text"`
	Children []*MindMapNode `json:"children"`
}

// MarshalJSON keeps the children field an array even for hand-built nodes
// with a nil slice.
func (n *MindMapNode) MarshalJSON() ([]byte, error) {
	type plain MindMapNode
	clone := plain(*n)
	if clone.Children == nil {
		clone.Children = []*MindMapNode{}
	}
	return json.Marshal(clone)
}

// buildTree converts a validated mind-map object into a node tree. Missing
// title or children degrade gracefully; no depth limit is enforced.
func buildTree(obj map[string]any) *MindMapNode {
	title := fallbackRootTitle
	if t, ok := obj["title"].(string); ok {
		title = t
	}
	return &MindMapNode{Text: title, Children: buildChildren(obj["children"])}
}

// buildNode converts an arbitrary JSON value into a node: strings become
// leaves, objects recurse, any other scalar becomes a leaf holding its
// string form.
func buildNode(value any) *MindMapNode {
	switch v := value.(type) {
	case string:
		return &MindMapNode{Text: v, Children: []*MindMapNode{}}
	case map[string]any:
		text := ""
		if t, ok := v["text"].(string); ok {
			text = t
		}
		return &MindMapNode{Text: text, Children: buildChildren(v["children"])}
	default:
		return &MindMapNode{Text: stringifyScalar(value), Children: []*MindMapNode{}}
	}
}

func buildChildren(value any) []*MindMapNode {
	entries, ok := value.([]any)
	if !ok {
		return []*MindMapNode{}
	}
	children := make([]*MindMapNode, 0, len(entries))
	for _, entry := range entries {
		children = append(children, buildNode(entry))
	}
	return children
}

// stringifyScalar renders non-string JSON scalars the way they appear in
// JSON text, so a bare 42 in a children array becomes the leaf "42".
func stringifyScalar(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
