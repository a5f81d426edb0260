// Package place provides the runner that drops an existing todo onto the
// calendar.
package place

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spina95/time-blocking/pkg/calendar"
	"github.com/spina95/time-blocking/pkg/planner"
	"github.com/spina95/time-blocking/pkg/printers"
	"github.com/spina95/time-blocking/pkg/store"
)

type Place struct {
	ID     int64
	Start  time.Time
	End    *time.Time
	AllDay bool

	Planner *planner.Planner
}

func (n *Place) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errors.New("can not place, no planner")
	}

	t, ok := n.Planner.Todos().Get(n.ID)
	if !ok {
		return fmt.Errorf("place: todo %d: %w", n.ID, store.ErrNotFound)
	}

	n.Planner.ExternalItemDropped(calendar.ExternalDrop{
		TodoID: t.ID,
		Title:  t.Title,
		Start:  n.Start,
		End:    n.End,
		AllDay: n.AllDay,
	})

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Scheduled")
	pp.Schedule(n.Planner.Events().ByTodo(t.ID)...)

	return nil
}
