package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-note-sync/internal/client"
	"github.com/MKhiriev/go-note-sync/internal/tui"
	"github.com/MKhiriev/go-note-sync/models"
)

func newMigrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Prepare existing notes for sync",
		Long: `Stamp every note that has no sync metadata yet and queue it for the
first push. Notes already prepared are skipped, so the command can be run
again after an interruption.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, client.ModeOneShot, func(ctx context.Context, app *client.App) error {
				needed, err := app.Engine().NeedsMigration(ctx)
				if err != nil {
					return err
				}
				if !needed {
					fmt.Fprintln(cmd.OutOrStdout(), "Vault is already prepared for sync")
					return nil
				}

				progress := cmd.ErrOrStderr()
				result, err := app.Engine().MigrateVault(ctx, func(p models.MigrationProgress) {
					fmt.Fprint(progress, "\r\033[K"+tui.RenderMigrationProgress(p))
				})
				fmt.Fprintln(progress)
				if err != nil {
					return err
				}

				fmt.Fprint(cmd.OutOrStdout(), tui.RenderMigrationResult(result))
				return nil
			})
		},
	}
}
