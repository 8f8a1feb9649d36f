package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-note-sync/internal/client"
	"github.com/MKhiriev/go-note-sync/internal/tui"
)

func newStatusCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the sync state of the vault",
		Long: `Show the sync state of the vault: one of disabled, offline, conflict,
error, syncing or idle, together with pending, conflicted and failed
change counters.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, client.ModeOneShot, func(ctx context.Context, app *client.App) error {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderStatus(app.Status(ctx)))
				return nil
			})
		},
	}
}
