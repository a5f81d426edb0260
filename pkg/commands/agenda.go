package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/spina95/time-blocking/pkg/app"
	"github.com/spina95/time-blocking/pkg/runner/agenda"
	"github.com/spina95/time-blocking/pkg/timeutil"
)

func addAgenda(topLevel *cobra.Command) {
	var (
		month bool
		long  bool
		on    string
	)

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "show scheduled blocks",
		Example: `
timeblock agenda
timeblock agenda --month
timeblock agenda --month --long --on 2024-06-01
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Load()
			if err != nil {
				return err
			}
			s := agenda.Agenda{
				Month:   month,
				Long:    long,
				Planner: p,
			}
			if on != "" {
				when, err := timeutil.ParseWhen(on)
				if err != nil {
					return err
				}
				s.On = when
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().BoolVarP(&month, "month", "m", false, "show a month grid instead of the table")
	cmd.Flags().BoolVarP(&long, "long", "l", false, "one line per day (with --month)")
	cmd.Flags().StringVar(&on, "on", "", "month to show: today, tomorrow, or 2006-01-02")

	topLevel.AddCommand(cmd)
}
