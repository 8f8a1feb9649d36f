package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-note-sync/internal/client"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/tui"
	"github.com/MKhiriev/go-note-sync/models"
)

func newSyncCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one push and pull cycle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, client.ModeOneShot, func(ctx context.Context, app *client.App) error {
				result := app.Engine().TriggerSync(ctx)
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderSyncResult(result))

				if n := failures(result); n > 0 {
					return fmt.Errorf("sync finished with %d error(s)", n)
				}
				return nil
			})
		},
	}
}

// failures counts cycle errors other than detected conflicts.
func failures(result models.SyncResult) int {
	conflictPrefix := service.ConflictMessage("")
	n := 0
	for _, msg := range result.Errors {
		if !strings.HasPrefix(msg, conflictPrefix) {
			n++
		}
	}
	return n
}
