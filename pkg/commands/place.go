package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spina95/time-blocking/pkg/app"
	"github.com/spina95/time-blocking/pkg/commands/options"
	"github.com/spina95/time-blocking/pkg/runner/place"
	"github.com/spina95/time-blocking/pkg/timeutil"
)

func addPlace(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	po := &options.PlacementOptions{}

	cmd := &cobra.Command{
		Use:   "place <id> <start>",
		Short: "drop a task onto the calendar",
		Long: wrap80("Place an existing task at a start time. Recurring tasks expand " +
			"into their full series; without --end the task's own duration sizes the block."),
		Example: `
timeblock place 3 "2024-06-03 09:00"
timeblock place 3 today --all-day
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires a task id and a start time")
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			io.ID = id
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Load()
			if err != nil {
				return err
			}

			start, err := timeutil.ParseWhen(args[1])
			if err != nil {
				return err
			}

			s := place.Place{
				ID:      io.ID,
				Start:   start,
				AllDay:  po.AllDay,
				Planner: p,
			}
			if po.End != "" {
				end, err := timeutil.ParseWhen(po.End)
				if err != nil {
					return err
				}
				s.End = &end
			}

			return s.Do(context.Background())
		},
	}

	options.AddPlacementArgs(cmd, po)

	topLevel.AddCommand(cmd)
}
