package rules

import "time"

// Compile translates a validated tree into a Predicate. It is pure, the clock is an argument.
//
// inactiveDays N compares last_active_at with cutoff = now - N days:
//	>  N: last_active_at <  cutoff
//	>= N: last_active_at <= cutoff
//	<  N: last_active_at >  cutoff
//	<= N: last_active_at >= cutoff
//	== N: last_active_at =  cutoff
//
// N is clamped to [0, MaxInactiveDays], so an unvalidated tree can not overflow the cutoff.
//
// An empty AND group matches every customer, an empty OR group matches none.
func Compile(group Group, now time.Time) Predicate {
	return compileNode(group, normalizeTime(now))
}

func compileNode(n Node, now time.Time) Predicate {
	switch node := n.(type) {
	case Leaf:
		return compileLeaf(node, now)

	case Group:
		if len(node.Children) == 0 {
			return Const{Value: node.Op == CombinatorAnd}
		}

		parts := make([]Predicate, 0, len(node.Children))
		for _, child := range node.Children {
			parts = append(parts, compileNode(child, now))
		}
		if node.Op == CombinatorOr {
			return Or{Parts: parts}
		}
		return And{Parts: parts}

	default:
		panic("rules: unknown node type")
	}
}

var directOps = map[Comparator]Op{
	CmpGreater:        OpGreater,
	CmpLess:           OpLess,
	CmpGreaterOrEqual: OpGreaterOrEqual,
	CmpLessOrEqual:    OpLessOrEqual,
	CmpEqual:          OpEqual,
}

// more inactive days means an earlier last active time
var invertedOps = map[Comparator]Op{
	CmpGreater:        OpLess,
	CmpLess:           OpGreater,
	CmpGreaterOrEqual: OpLessOrEqual,
	CmpLessOrEqual:    OpGreaterOrEqual,
	CmpEqual:          OpEqual,
}

func lookupOp(ops map[Comparator]Op, cmp Comparator) Op {
	op, ok := ops[cmp]
	if !ok {
		panic("rules: unknown comparator " + string(cmp))
	}
	return op
}

func compileLeaf(leaf Leaf, now time.Time) Predicate {
	switch leaf.Field {
	case FieldTotalSpend:
		return Compare{Column: ColumnTotalSpend, Op: lookupOp(directOps, leaf.Cmp), Int: leaf.Value}
	case FieldVisits:
		return Compare{Column: ColumnVisits, Op: lookupOp(directOps, leaf.Cmp), Int: leaf.Value}
	case FieldInactiveDays:
		cutoff := inactiveCutoff(now, leaf.Value)
		return Compare{Column: ColumnLastActiveAt, Op: lookupOp(invertedOps, leaf.Cmp), Time: cutoff}
	default:
		panic("rules: unknown field " + string(leaf.Field))
	}
}

func inactiveCutoff(now time.Time, days int64) time.Time {
	if days < 0 {
		days = 0
	}
	if days > MaxInactiveDays {
		days = MaxInactiveDays
	}
	return now.AddDate(0, 0, -int(days))
}
