// Package agenda provides the runner that prints scheduled events.
package agenda

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/spina95/time-blocking/pkg/planner"
	"github.com/spina95/time-blocking/pkg/printers"
)

type Agenda struct {
	Month bool
	Long  bool
	On    time.Time

	Planner *planner.Planner
}

func (n *Agenda) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errors.New("can not show agenda, no planner")
	}

	on := n.On
	if on.IsZero() {
		on = time.Now()
	}

	events := n.Planner.Events().Events()
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})

	pp := printers.PrettyPrint{}
	pp.NewLine()

	switch {
	case n.Month && n.Long:
		pp.MonthLong(on, events...)
	case n.Month:
		pp.Month(on, events...)
	default:
		pp.Title("Agenda")
		pp.Schedule(events...)
	}

	return nil
}
