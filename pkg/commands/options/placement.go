package options

import (
	"github.com/spf13/cobra"
)

// PlacementOptions carries the flags that place a task on the calendar.
type PlacementOptions struct {
	End    string
	AllDay bool
}

func AddPlacementArgs(cmd *cobra.Command, po *PlacementOptions) {
	cmd.Flags().StringVar(&po.End, "end", "", "end of the block: 2006-01-02 15:04")
	cmd.Flags().BoolVar(&po.AllDay, "all-day", false, "place as an all-day block")
}
