package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/spina95/time-blocking/pkg/app"
	"github.com/spina95/time-blocking/pkg/commands/options"
	"github.com/spina95/time-blocking/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var category string
	var all bool

	cmd := &cobra.Command{
		Use:   "get",
		Short: "get the grouped task list",
		Example: `
timeblock get
timeblock get --category Work
timeblock get --all --show-ids
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Load()
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:   io.ShowID,
				Category: category,
				All:      all,
				Planner:  p,
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only show one category")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "include every project")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
