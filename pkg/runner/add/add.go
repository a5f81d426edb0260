package add

import (
	"context"
	"errors"
	"time"

	"github.com/spina95/time-blocking/pkg/planner"
	"github.com/spina95/time-blocking/pkg/printers"
	"github.com/spina95/time-blocking/pkg/regroup"
	"github.com/spina95/time-blocking/pkg/store"
	"github.com/spina95/time-blocking/pkg/task"
)

type Add struct {
	Title      string
	Duration   float64
	Priority   task.Priority
	Deadline   *time.Time
	Category   string
	Recurrence task.Recurrence

	Planner *planner.Planner
}

func (n *Add) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errors.New("can not add, no planner")
	}

	created, err := n.Planner.Todos().Create(store.TodoInput{
		Title:      n.Title,
		Duration:   n.Duration,
		Priority:   n.Priority,
		Deadline:   n.Deadline,
		Category:   n.Category,
		Recurrence: n.Recurrence,
	})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(created.CategoryOrDefault())
	for _, g := range regroup.ByCategory(n.Planner.Todos().ForSelectedProject()) {
		if g.Category == created.CategoryOrDefault() {
			pp.Group(g.Todos...)
		}
	}

	return nil
}
