package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spina95/time-blocking/pkg/app"
	"github.com/spina95/time-blocking/pkg/regroup"
	"github.com/spina95/time-blocking/pkg/runner/move"
)

func addMove(topLevel *cobra.Command) {
	var from, to regroup.Position

	cmd := &cobra.Command{
		Use:   "move <from-category> <from-index> <to-category> <to-index>",
		Short: "move a task within the grouped list",
		Long: wrap80("Move a task from one position of the grouped list to another. " +
			"Crossing categories regroups the task; indexes are zero-based within a category."),
		Example: `
timeblock move Work 0 Errands 1
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 4 {
				return errors.New("requires from-category, from-index, to-category, to-index")
			}
			fromIdx, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			toIdx, err := strconv.Atoi(args[3])
			if err != nil {
				return err
			}
			from = regroup.Position{Category: args[0], Index: fromIdx}
			to = regroup.Position{Category: args[2], Index: toIdx}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := app.Load()
			if err != nil {
				return err
			}
			s := move.Move{
				From:    from,
				To:      to,
				Planner: p,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
