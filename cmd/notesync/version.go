package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-note-sync/internal/tui"
)

func newVersionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderBuildInfo(appName, c.info))
			return nil
		},
	}
}
