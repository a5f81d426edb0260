package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spina95/time-blocking/pkg/app"
	"github.com/spina95/time-blocking/pkg/commands/options"
	"github.com/spina95/time-blocking/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var undo bool

	cmd := &cobra.Command{
		Use:     "complete <id>",
		Aliases: []string{"completed", "done"},
		Short:   "complete a task",
		Example: `
timeblock complete 3
timeblock complete 3 --undo
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a task id")
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			io.ID = id
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := app.Load()
			if err != nil {
				return err
			}
			s := complete.Complete{
				ID:      io.ID,
				Undo:    undo,
				Planner: p,
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "mark the task incomplete instead")

	topLevel.AddCommand(cmd)
}
