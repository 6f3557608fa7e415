package tree

import (
	"fmt"

	"github.com/pstuifzand/tui-sidebar/internal/model"
)

// ProblemKind classifies a structural issue found by Validate
type ProblemKind string

const (
	ProblemDuplicateID    ProblemKind = "duplicate-id"
	ProblemSelfParent     ProblemKind = "self-parent"
	ProblemDanglingParent ProblemKind = "dangling-parent"
	ProblemCycle          ProblemKind = "cycle"
	ProblemDuplicateOrder ProblemKind = "duplicate-order"
	ProblemNegativeOrder  ProblemKind = "negative-order"
)

// Problem is a single finding reported by Validate
type Problem struct {
	Kind ProblemKind
	ID   string
	Msg  string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s: %s", p.Kind, p.ID, p.Msg)
}

// Validate reports everything in items that Build has to sanitise or that
// breaks the sibling order invariant. An empty result means the list is clean.
func Validate(items []model.Item) []Problem {
	var problems []Problem
	idx := NewIndex(items)

	seenID := make(map[string]bool, len(items))
	type slot struct {
		parent string
		order  int
	}
	seenOrder := make(map[slot]string, len(items))

	for _, item := range items {
		if seenID[item.ID] {
			problems = append(problems, Problem{ProblemDuplicateID, item.ID, "id used more than once"})
			continue
		}
		seenID[item.ID] = true

		switch {
		case item.ParentID == item.ID:
			problems = append(problems, Problem{ProblemSelfParent, item.ID, "item names itself as parent"})
		case item.ParentID != "" && !idx.Has(item.ParentID):
			problems = append(problems, Problem{ProblemDanglingParent, item.ID, fmt.Sprintf("parent %q does not exist", item.ParentID)})
		case item.ParentID != "" && idx.IsDescendant(item.ID, item.ParentID):
			problems = append(problems, Problem{ProblemCycle, item.ID, fmt.Sprintf("parent %q is also a descendant", item.ParentID)})
		}

		if item.Order < 0 {
			problems = append(problems, Problem{ProblemNegativeOrder, item.ID, fmt.Sprintf("order %d is negative", item.Order)})
		}
		key := slot{item.ParentID, item.Order}
		if other, ok := seenOrder[key]; ok {
			problems = append(problems, Problem{ProblemDuplicateOrder, item.ID, fmt.Sprintf("order %d already used by %q", item.Order, other)})
		} else {
			seenOrder[key] = item.ID
		}
	}
	return problems
}
