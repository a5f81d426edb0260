package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spina95/time-blocking/pkg/app"
	"github.com/spina95/time-blocking/pkg/commands/options"
	"github.com/spina95/time-blocking/pkg/runner/add"
	"github.com/spina95/time-blocking/pkg/task"
	"github.com/spina95/time-blocking/pkg/timeutil"
)

func addAdd(topLevel *cobra.Command) {
	to := &options.TaskOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "add a task",
		Example: `
timeblock add write the quarterly report --duration 2h --priority high
timeblock add standup --recurrence daily --category Meetings
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Load()
			if err != nil {
				return err
			}

			s := add.Add{
				Title:    strings.Join(args, " "),
				Category: to.Category,
				Planner:  p,
			}

			if to.Duration != "" {
				if s.Duration, err = timeutil.ParseHours(to.Duration); err != nil {
					return err
				}
			}
			if to.Priority != "" {
				if s.Priority, err = task.ParsePriority(to.Priority); err != nil {
					return err
				}
			}
			if to.Recurrence != "" {
				if s.Recurrence, err = task.ParseRecurrence(to.Recurrence); err != nil {
					return err
				}
			}
			if to.Deadline != "" {
				when, err := timeutil.ParseWhen(to.Deadline)
				if err != nil {
					return err
				}
				s.Deadline = &when
			}

			return s.Do(context.Background())
		},
	}

	options.AddTaskArgs(cmd, to)

	topLevel.AddCommand(cmd)
}
