package commands

import (
	"github.com/spf13/cobra"

	"github.com/spina95/time-blocking/pkg/app"
	teaui "github.com/spina95/time-blocking/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "interactive terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Load()
			if err != nil {
				return err
			}
			return teaui.Run(p)
		},
	}

	topLevel.AddCommand(cmd)
}
