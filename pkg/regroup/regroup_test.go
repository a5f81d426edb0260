package regroup

import (
	"testing"

	"github.com/spina95/time-blocking/pkg/task"
)

func fixture() []task.Todo {
	return []task.Todo{
		{ID: 1, Title: "A", Category: "X", Duration: 1},
		{ID: 2, Title: "B", Category: "X", Duration: 1},
		{ID: 3, Title: "C", Category: "Y", Duration: 1},
	}
}

func titles(todos []task.Todo) []string {
	out := make([]string, len(todos))
	for i, t := range todos {
		out[i] = t.Title
	}
	return out
}

func TestByCategoryPreservesOrder(t *testing.T) {
	groups := ByCategory(fixture())
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Category != "X" || groups[1].Category != "Y" {
		t.Fatalf("unexpected group order: %s, %s", groups[0].Category, groups[1].Category)
	}
	if len(groups[0].Todos) != 2 || groups[0].Todos[0].Title != "A" {
		t.Fatalf("group X lost ordering")
	}
}

func TestByCategoryDefaultsBlankCategory(t *testing.T) {
	groups := ByCategory([]task.Todo{{ID: 1, Title: "loose"}})
	if len(groups) != 1 || groups[0].Category != task.DefaultCategory {
		t.Fatalf("blank category should group under the default")
	}
}

func TestMoveAcrossCategories(t *testing.T) {
	groups := ByCategory(fixture())

	flat, err := Move(groups, Position{"X", 0}, Position{"Y", 1})
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	got := titles(flat)
	want := []string{"B", "C", "A"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("flat order %v, want %v", got, want)
		}
	}
	if flat[2].Category != "Y" {
		t.Fatalf("moved todo should adopt category Y, got %q", flat[2].Category)
	}
	if flat[2].ID != 1 || flat[2].Title != "A" {
		t.Fatalf("move must not alter other fields: %+v", flat[2])
	}
}

func TestMoveWithinCategory(t *testing.T) {
	groups := ByCategory(fixture())

	flat, err := Move(groups, Position{"X", 0}, Position{"X", 1})
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	got := titles(flat)
	want := []string{"B", "A", "C"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("flat order %v, want %v", got, want)
		}
	}
	if flat[1].Category != "X" {
		t.Fatalf("same-category move must not change the category")
	}
}

func TestMoveLeavesInputUntouched(t *testing.T) {
	groups := ByCategory(fixture())
	if _, err := Move(groups, Position{"X", 0}, Position{"Y", 0}); err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if len(groups[0].Todos) != 2 || groups[0].Todos[0].Title != "A" {
		t.Fatalf("input groups were mutated")
	}
}

func TestMoveRejectsBadPositions(t *testing.T) {
	groups := ByCategory(fixture())
	if _, err := Move(groups, Position{"Z", 0}, Position{"X", 0}); err == nil {
		t.Fatalf("expected error for unknown source category")
	}
	if _, err := Move(groups, Position{"X", 5}, Position{"X", 0}); err == nil {
		t.Fatalf("expected error for out-of-range source index")
	}
	if _, err := Move(groups, Position{"X", 0}, Position{"Y", 9}); err == nil {
		t.Fatalf("expected error for out-of-range destination index")
	}
}
