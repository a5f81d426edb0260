// Package move provides the runner for regrouping a todo within the grouped
// task list.
package move

import (
	"context"
	"errors"

	"github.com/spina95/time-blocking/pkg/planner"
	"github.com/spina95/time-blocking/pkg/printers"
	"github.com/spina95/time-blocking/pkg/regroup"
)

type Move struct {
	From regroup.Position
	To   regroup.Position

	Planner *planner.Planner
}

func (n *Move) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errors.New("can not move, no planner")
	}

	if err := n.Planner.MoveTodo(n.From, n.To); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	for _, g := range regroup.ByCategory(n.Planner.Todos().ForSelectedProject()) {
		pp.TitleWithCount(g.Category, len(g.Todos))
		pp.Group(g.Todos...)
	}

	return nil
}
