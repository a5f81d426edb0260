package commands

import (
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "timeblock",
		Short: wrap80("Time-blocked task planning on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addPlace(topLevel)
	addComplete(topLevel)
	addDelete(topLevel)
	addMove(topLevel)
	addProject(topLevel)
	addAgenda(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
}

func wrap80(s string) string {
	return wordwrap.String(s, 80)
}
