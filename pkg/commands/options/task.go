package options

import (
	"github.com/spf13/cobra"
)

// TaskOptions carries the flags shared by task-creating commands.
type TaskOptions struct {
	Duration   string
	Priority   string
	Deadline   string
	Category   string
	Recurrence string
}

func AddTaskArgs(cmd *cobra.Command, to *TaskOptions) {
	cmd.Flags().StringVarP(&to.Duration, "duration", "d", "", "task duration, like 1.5h or 90m")
	cmd.Flags().StringVarP(&to.Priority, "priority", "p", "", "low, medium, or high")
	cmd.Flags().StringVar(&to.Deadline, "deadline", "", "deadline: today, tomorrow, or 2006-01-02")
	cmd.Flags().StringVarP(&to.Category, "category", "c", "", "category to group the task under")
	cmd.Flags().StringVarP(&to.Recurrence, "recurrence", "r", "", "none, daily, weekly, or monthly")
}
