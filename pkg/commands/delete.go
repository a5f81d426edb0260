package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spina95/time-blocking/pkg/app"
	"github.com/spina95/time-blocking/pkg/commands/options"
	del "github.com/spina95/time-blocking/pkg/runner/delete"
)

func addDelete(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "delete a task and its scheduled blocks",
		Example: `
timeblock delete 3
timeblock delete 3 --yes
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
			s := del.Delete{
				ID:      io.ID,
				Yes:     yes,
				Planner: p,
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	topLevel.AddCommand(cmd)
}
