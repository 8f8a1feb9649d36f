package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-note-sync/internal/client"
	"github.com/MKhiriev/go-note-sync/internal/tui"
	"github.com/MKhiriev/go-note-sync/models"
)

func newWatchCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow the vault and sync in the background until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			cmd.SetContext(ctx)

			return c.withApp(cmd, client.ModeWatch, func(ctx context.Context, app *client.App) error {
				out := cmd.OutOrStdout()
				var (
					mu   sync.Mutex
					last *models.EngineStatus
				)
				return app.Watch(ctx, func(status models.EngineStatus) {
					mu.Lock()
					defer mu.Unlock()

					if last != nil && sameStatus(*last, status) {
						return
					}
					last = &status
					fmt.Fprintf(out, "%s  %s\n", time.Now().Format(time.TimeOnly), tui.RenderStatusLine(status))
				})
			})
		},
	}
}

func sameStatus(a, b models.EngineStatus) bool {
	return a.State == b.State &&
		a.PendingChanges == b.PendingChanges &&
		a.ConflictCount == b.ConflictCount &&
		a.FailedChanges == b.FailedChanges &&
		a.Error == b.Error
}
