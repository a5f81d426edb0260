package options

import (
	"github.com/spf13/cobra"
)

// IDOptions carries identifier-related flags.
type IDOptions struct {
	ID     int64
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, io *IDOptions) {
	cmd.Flags().BoolVar(&io.ShowID, "show-ids", false, "show task ids")
}
