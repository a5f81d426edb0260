// Package delete provides the runner for removing a todo and its scheduled
// blocks, with an interactive confirmation.
package delete

import (
	"context"
	"errors"

	"github.com/manifoldco/promptui"

	"github.com/spina95/time-blocking/pkg/dialog"
	"github.com/spina95/time-blocking/pkg/planner"
	"github.com/spina95/time-blocking/pkg/printers"
)

type Delete struct {
	ID  int64
	Yes bool

	Planner *planner.Planner
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errors.New("can not delete, no planner")
	}

	if err := n.Planner.RequestDeleteTodo(n.ID); err != nil {
		return err
	}

	if !n.Yes {
		state := n.Planner.Dialogs().State()
		label := "Delete task"
		if state.Kind == dialog.KindConfirm && state.Confirm != nil {
			label = state.Confirm.Message
		}

		prompt := promptui.Prompt{
			Label:     label,
			IsConfirm: true,
		}
		if _, err := prompt.Run(); err != nil {
			n.Planner.CancelDialog()
			return nil
		}
	}

	if err := n.Planner.ConfirmDelete(); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Title("Remaining")
	pp.Group(n.Planner.Todos().ForSelectedProject()...)

	return nil
}
