package rules

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

const maxDepth = 32

type wireNode struct {
	Op    *Combinator        `json:"op"`
	Rules *[]json.RawMessage `json:"rules"`

	Field *Field          `json:"field"`
	Cmp   *Comparator     `json:"cmp"`
	Value json.RawMessage `json:"value"`
}

func (w wireNode) isGroup() bool {
	return w.Op != nil || w.Rules != nil
}

func (w wireNode) isLeaf() bool {
	return w.Field != nil || w.Cmp != nil || w.Value != nil
}

// Parse decodes a rule tree, the root must be a group.
// Values must be JSON integers, strings and fractions are rejected
func Parse(data []byte) (Group, error) {
	node, err := parseNode(data, "$", 1)
	if err != nil {
		return Group{}, err
	}

	group, ok := node.(Group)
	if !ok {
		return Group{}, invalidRule("$", "root must be a group")
	}
	return group, nil
}

func parseNode(data json.RawMessage, path string, depth int) (Node, error) {
	if depth > maxDepth {
		return nil, invalidRule(path, "nesting deeper than %d", maxDepth)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, invalidRule(path, "expected an object")
	}

	var w wireNode
	if err := json.Unmarshal(trimmed, &w); err != nil {
		return nil, invalidRule(path, "%v", err)
	}

	switch {
	case w.isGroup() && w.isLeaf():
		return nil, invalidRule(path, "object mixes group and rule keys")
	case w.isGroup():
		return parseGroup(w, path, depth)
	case w.isLeaf():
		return parseLeaf(w, path)
	default:
		return nil, invalidRule(path, "object is neither a rule nor a group")
	}
}

func parseGroup(w wireNode, path string, depth int) (Node, error) {
	if w.Op == nil {
		return nil, invalidRule(path, "missing op")
	}
	if !w.Op.valid() {
		return nil, invalidRule(path, "unknown combinator %q", *w.Op)
	}
	if w.Rules == nil {
		return nil, invalidRule(path, "missing rules")
	}

	children := make([]Node, 0, len(*w.Rules))
	for i, raw := range *w.Rules {
		child, err := parseNode(raw, fmt.Sprintf("%s.rules[%d]", path, i), depth+1)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	return Group{
		Op:       *w.Op,
		Children: children,
	}, nil
}

func parseLeaf(w wireNode, path string) (Node, error) {
	if w.Field == nil {
		return nil, invalidRule(path, "missing field")
	}
	if !w.Field.valid() {
		return nil, invalidRule(path, "unknown field %q", *w.Field)
	}
	if w.Cmp == nil {
		return nil, invalidRule(path, "missing cmp")
	}
	if !w.Cmp.valid() {
		return nil, invalidRule(path, "unknown comparator %q", *w.Cmp)
	}
	if w.Value == nil {
		return nil, invalidRule(path, "missing value")
	}

	raw := string(bytes.TrimSpace(w.Value))
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, invalidRule(path, "value %s is not an integer", raw)
	}

	leaf := Leaf{
		Field: *w.Field,
		Cmp:   *w.Cmp,
		Value: value,
	}
	if err := checkLeafValue(leaf, path); err != nil {
		return nil, err
	}
	return leaf, nil
}
