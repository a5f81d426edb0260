// Package regroup turns a drag gesture over the categorized task list into a
// new flat ordering plus category reassignment. It is pure; the caller
// commits the result with TodoStore.BulkReplace.
package regroup

import (
	"fmt"

	"github.com/spina95/time-blocking/pkg/task"
)

// Group is one category panel: the category name and its todos in display
// order. Insertion order is meaningful.
type Group struct {
	Category string
	Todos    []task.Todo
}

// Position addresses one slot in the grouped list.
type Position struct {
	Category string
	Index    int
}

// ByCategory groups todos preserving their relative order. Todos without a
// category land in the default bucket.
func ByCategory(todos []task.Todo) []Group {
	index := make(map[string]int)
	groups := make([]Group, 0)
	for _, t := range todos {
		category := t.CategoryOrDefault()
		at, ok := index[category]
		if !ok {
			at = len(groups)
			index[category] = at
			groups = append(groups, Group{Category: category})
		}
		groups[at].Todos = append(groups[at].Todos, t)
	}
	return groups
}

// Flatten concatenates groups in category-then-item order.
func Flatten(groups []Group) []task.Todo {
	out := make([]task.Todo, 0)
	for _, g := range groups {
		out = append(out, g.Todos...)
	}
	return out
}

// Move applies a drag from src to dst and returns the resulting flat order.
// A move within one category reorders it; a move across categories transfers
// the todo and rewrites its Category field. No other field changes, and the
// input groups are left untouched.
func Move(groups []Group, src, dst Position) ([]task.Todo, error) {
	work := cloneGroups(groups)

	from := findGroup(work, src.Category)
	if from == nil {
		return nil, fmt.Errorf("regroup: unknown source category %q", src.Category)
	}
	if src.Index < 0 || src.Index >= len(from.Todos) {
		return nil, fmt.Errorf("regroup: source index %d out of range for %q", src.Index, src.Category)
	}

	if src.Category == dst.Category {
		if dst.Index < 0 || dst.Index >= len(from.Todos) {
			return nil, fmt.Errorf("regroup: destination index %d out of range for %q", dst.Index, dst.Category)
		}
		moveWithin(from.Todos, src.Index, dst.Index)
		return Flatten(work), nil
	}

	to := findGroup(work, dst.Category)
	if to == nil {
		return nil, fmt.Errorf("regroup: unknown destination category %q", dst.Category)
	}
	if dst.Index < 0 || dst.Index > len(to.Todos) {
		return nil, fmt.Errorf("regroup: destination index %d out of range for %q", dst.Index, dst.Category)
	}

	moved := from.Todos[src.Index]
	from.Todos = append(from.Todos[:src.Index], from.Todos[src.Index+1:]...)
	moved.Category = dst.Category

	to.Todos = append(to.Todos, task.Todo{})
	copy(to.Todos[dst.Index+1:], to.Todos[dst.Index:])
	to.Todos[dst.Index] = moved

	return Flatten(work), nil
}

func cloneGroups(groups []Group) []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = Group{Category: g.Category, Todos: append([]task.Todo(nil), g.Todos...)}
	}
	return out
}

func findGroup(groups []Group, category string) *Group {
	for i := range groups {
		if groups[i].Category == category {
			return &groups[i]
		}
	}
	return nil
}

func moveWithin(todos []task.Todo, from, to int) {
	moved := todos[from]
	if from < to {
		copy(todos[from:], todos[from+1:to+1])
	} else {
		copy(todos[to+1:], todos[to:from])
	}
	todos[to] = moved
}
