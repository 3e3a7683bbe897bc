package rules

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidRule is returned for every malformed rule tree
var ErrInvalidRule = errors.New("rules: invalid rule")

// Field of a customer a leaf compares against
type Field string

const (
	// FieldTotalSpend cumulative spend
	FieldTotalSpend Field = "totalSpend"

	// FieldVisits number of orders
	FieldVisits Field = "visits"

	// FieldInactiveDays days since last active
	FieldInactiveDays Field = "inactiveDays"
)

// Comparator ...
type Comparator string

const (
	// CmpGreater ...
	CmpGreater Comparator = ">"
	// CmpLess ...
	CmpLess Comparator = "<"
	// CmpGreaterOrEqual ...
	CmpGreaterOrEqual Comparator = ">="
	// CmpLessOrEqual ...
	CmpLessOrEqual Comparator = "<="
	// CmpEqual ...
	CmpEqual Comparator = "=="
)

// Combinator of a group
type Combinator string

const (
	// CombinatorAnd ...
	CombinatorAnd Combinator = "AND"
	// CombinatorOr ...
	CombinatorOr Combinator = "OR"
)

func (f Field) valid() bool {
	switch f {
	case FieldTotalSpend, FieldVisits, FieldInactiveDays:
		return true
	default:
		return false
	}
}

func (c Comparator) valid() bool {
	switch c {
	case CmpGreater, CmpLess, CmpGreaterOrEqual, CmpLessOrEqual, CmpEqual:
		return true
	default:
		return false
	}
}

func (c Combinator) valid() bool {
	return c == CombinatorAnd || c == CombinatorOr
}

// MaxInactiveDays bounds inactiveDays so that now - N days stays inside the DATETIME range
const MaxInactiveDays = 300000

// Node is either a Leaf or a Group, no other implementation exists
type Node interface {
	isNode()
}

// Leaf compares one field with an integer threshold
type Leaf struct {
	Field Field
	Cmp   Comparator
	Value int64
}

// Group combines its children with AND / OR
type Group struct {
	Op       Combinator
	Children []Node
}

func (Leaf) isNode()  {}
func (Group) isNode() {}

var _ Node = Leaf{}
var _ Node = Group{}

// MarshalJSON ...
func (l Leaf) MarshalJSON() ([]byte, error) {
	return encodeJSON(wireLeaf{
		Field: l.Field,
		Cmp:   l.Cmp,
		Value: l.Value,
	})
}

// MarshalJSON always writes the rules array, also when it is empty
func (g Group) MarshalJSON() ([]byte, error) {
	children := g.Children
	if children == nil {
		children = []Node{}
	}
	return encodeJSON(wireGroup{
		Op:    g.Op,
		Rules: children,
	})
}

type wireLeaf struct {
	Field Field      `json:"field"`
	Cmp   Comparator `json:"cmp"`
	Value int64      `json:"value"`
}

type wireGroup struct {
	Op    Combinator `json:"op"`
	Rules []Node     `json:"rules"`
}

// encodeJSON keeps comparators like ">" readable instead of \u003e
func encodeJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Marshal encodes the tree in its wire format
func Marshal(g Group) (string, error) {
	data, err := encodeJSON(g)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Validate checks a tree built in code, trees from Parse are always valid
func Validate(g Group) error {
	return validateNode(g, "$", 1)
}

func validateNode(n Node, path string, depth int) error {
	if depth > maxDepth {
		return invalidRule(path, "nesting deeper than %d", maxDepth)
	}

	switch node := n.(type) {
	case Leaf:
		if !node.Field.valid() {
			return invalidRule(path, "unknown field %q", node.Field)
		}
		if !node.Cmp.valid() {
			return invalidRule(path, "unknown comparator %q", node.Cmp)
		}
		return checkLeafValue(node, path)

	case Group:
		if !node.Op.valid() {
			return invalidRule(path, "unknown combinator %q", node.Op)
		}
		for i, child := range node.Children {
			err := validateNode(child, fmt.Sprintf("%s.rules[%d]", path, i), depth+1)
			if err != nil {
				return err
			}
		}
		return nil

	default:
		return invalidRule(path, "node is neither a rule nor a group")
	}
}

func checkLeafValue(l Leaf, path string) error {
	if l.Field != FieldInactiveDays {
		return nil
	}
	if l.Value < 0 || l.Value > MaxInactiveDays {
		return invalidRule(path, "inactiveDays %d is out of range [0, %d]", l.Value, MaxInactiveDays)
	}
	return nil
}

func invalidRule(path string, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidRule, path, fmt.Sprintf(format, args...))
}
