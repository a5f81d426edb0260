package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spina95/time-blocking/pkg/app"
	"github.com/spina95/time-blocking/pkg/runner/project"
)

func addProject(topLevel *cobra.Command) {
	var (
		icon      string
		color     string
		selectID  int64
		listIcons bool
	)

	cmd := &cobra.Command{
		Use:     "project [name]",
		Aliases: []string{"projects"},
		Short:   "list, create, or select projects",
		Example: `
timeblock project
timeblock project Work --icon briefcase --color "#fa541c"
timeblock project --select 2
timeblock project --icons
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Load()
			if err != nil {
				return err
			}
			s := project.Project{
				List:      len(args) == 0,
				ListIcons: listIcons,
				Select:    selectID,
				Name:      strings.Join(args, " "),
				Icon:      icon,
				Color:     color,
				Planner:   p,
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&icon, "icon", "user", "icon name from the catalog")
	cmd.Flags().StringVar(&color, "color", "#1677ff", "hex color like #1677ff")
	cmd.Flags().Int64Var(&selectID, "select", 0, "select the project with this id")
	cmd.Flags().BoolVar(&listIcons, "icons", false, "list the available icons")

	topLevel.AddCommand(cmd)
}
