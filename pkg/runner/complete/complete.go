// Package complete provides the runner logic for toggling todo completion.
package complete

import (
	"context"
	"errors"

	"github.com/spina95/time-blocking/pkg/planner"
	"github.com/spina95/time-blocking/pkg/printers"
	"github.com/spina95/time-blocking/pkg/regroup"
)

// Complete flips the completion state of a todo and its linked blocks.
type Complete struct {
	ID   int64
	Undo bool

	Planner *planner.Planner
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errors.New("can not complete, no planner")
	}

	if err := n.Planner.Todos().UpdateCompletion(n.ID, !n.Undo); err != nil {
		return err
	}

	t, _ := n.Planner.Todos().Get(n.ID)

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Title(t.CategoryOrDefault())
	for _, g := range regroup.ByCategory(n.Planner.Todos().ForProject(t.ProjectID)) {
		if g.Category == t.CategoryOrDefault() {
			pp.Group(g.Todos...)
		}
	}

	return nil
}
