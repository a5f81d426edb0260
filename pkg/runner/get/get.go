package get

import (
	"context"
	"errors"

	"github.com/spina95/time-blocking/pkg/planner"
	"github.com/spina95/time-blocking/pkg/printers"
	"github.com/spina95/time-blocking/pkg/regroup"
	"github.com/spina95/time-blocking/pkg/task"
)

type Get struct {
	ShowID   bool
	Category string
	All      bool

	Planner *planner.Planner
}

func (n *Get) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errors.New("can not get, no planner")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()

	todos := n.Planner.Todos().ForSelectedProject()
	if n.All {
		todos = n.Planner.Todos().Todos()
	}

	groups := regroup.ByCategory(todos)

	if n.Category != "" {
		for _, g := range groups {
			if g.Category == n.Category {
				pp.TitleWithCount(g.Category, len(g.Todos))
				pp.Group(g.Todos...)
				return nil
			}
		}
		pp.TitleWithCount(n.Category, 0)
		pp.Group()
		return nil
	}

	for _, g := range groups {
		pp.TitleWithCount(g.Category, len(g.Todos))
		pp.Group(g.Todos...)
	}
	if len(groups) == 0 {
		pp.TitleWithCount(task.DefaultCategory, 0)
		pp.Group()
	}

	return nil
}
