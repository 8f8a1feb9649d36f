package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-note-sync/internal/client"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/tui"
	"github.com/MKhiriev/go-note-sync/models"
)

func newConflictsCmd(c *cli) *cobra.Command {
	var failed bool

	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "List open conflicts",
		Long: `List open conflicts, or with --failed the changes the server rejected
permanently.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, client.ModeOneShot, func(ctx context.Context, app *client.App) error {
				if failed {
					changes, err := app.Engine().GetFailedChanges(ctx)
					if err != nil {
						return err
					}
					fmt.Fprint(cmd.OutOrStdout(), tui.RenderFailedChanges(changes))
					return nil
				}

				conflicts, err := app.Engine().GetConflicts(ctx)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderConflicts(conflicts))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&failed, "failed", false, "list dead-lettered changes instead")
	return cmd
}

func newResolveCmd(c *cli) *cobra.Command {
	var push bool

	cmd := &cobra.Command{
		Use:   "resolve <note-id> <keep_local|keep_remote|keep_both>",
		Short: "Resolve the conflict of a note",
		Long: `Resolve the conflict of a note.

  keep_local   keep this device's copy and push it over the server's
  keep_remote  accept the server's copy
  keep_both    accept the server's copy and keep this device's copy as a
               new note`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			noteID, resolution := args[0], models.Resolution(args[1])
			if !resolution.Valid() {
				return fmt.Errorf("%w: %q", service.ErrInvalidResolution, args[1])
			}

			return c.withApp(cmd, client.ModeOneShot, func(ctx context.Context, app *client.App) error {
				resolved, err := app.Engine().ResolveConflict(ctx, noteID, resolution)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderResolved(resolved, resolution))

				if push {
					fmt.Fprint(cmd.OutOrStdout(), tui.RenderSyncResult(app.Engine().TriggerSync(ctx)))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&push, "sync", false, "run a sync cycle right after resolving")
	return cmd
}
