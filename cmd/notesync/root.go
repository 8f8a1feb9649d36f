package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-note-sync/internal/client"
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

const appName = "notesync"

// cli holds the flag values shared by every command.
type cli struct {
	info    models.AppBuildInfo
	envFile string
	client  config.ClientConfig
}

func newRootCmd(info models.AppBuildInfo) *cobra.Command {
	c := &cli{info: info}

	root := &cobra.Command{
		Use:   appName,
		Short: "Synchronize a local note vault with a sync server",
		Long: `notesync keeps a directory of notes in sync with a sync server.

Local edits are queued and pushed, remote edits are pulled into the vault,
and diverging edits are kept as conflicts until you resolve them.

Every flag can also be set through a NOTESYNC_ prefixed environment
variable, optionally loaded from a .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadEnvFile(c.envFile)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.envFile, "env-file", ".env", "optional dotenv file")
	flags.StringVarP(&c.client.Vault.Dir, "vault", "v", "", "vault directory")
	flags.StringVar(&c.client.Vault.SyncConfigPath, "sync-config", "", "sync document (default <vault>/.notesync.json)")
	flags.StringVar(&c.client.Storage.DSN, "store", "", "sync store database file")
	flags.StringVar(&c.client.Log.File, "log-file", "", "log file (rotated)")
	flags.StringVar(&c.client.Log.Level, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.DurationVar(&c.client.Adapter.RequestTimeout, "timeout", 0, "request timeout")
	flags.StringVar(&c.client.Adapter.HashKey, "hash-key", "", "key signing request bodies")
	flags.StringVar(&c.client.Adapter.Token, "token", "", "bearer token for the sync server")
	flags.BoolVar(&c.client.Engine.AutoResolve, "auto-resolve", false, "settle near-simultaneous edits automatically")
	flags.IntVar(&c.client.Engine.MaxPullPages, "max-pull-pages", 0, "pull pages fetched per cycle")

	root.AddCommand(
		newStatusCmd(c),
		newSyncCmd(c),
		newConflictsCmd(c),
		newResolveCmd(c),
		newMigrateCmd(c),
		newWatchCmd(c),
		newServeCmd(c),
		newVersionCmd(c),
	)
	return root
}

// loadEnvFile loads path into the process environment. A missing file is
// not an error; variables already set are kept.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}

// withApp builds the client runtime for one command, opens it, runs fn and
// closes it again.
func (c *cli) withApp(cmd *cobra.Command, mode client.Mode, fn func(ctx context.Context, app *client.App) error) (err error) {
	cfg, err := config.GetClientConfig(&c.client)
	if err != nil {
		return err
	}

	log := logger.NewClientLogger(appName, cfg.Log.File, logger.RotationConfig{})
	defer log.Close()
	if level, lerr := zerolog.ParseLevel(cfg.Log.Level); lerr == nil && cfg.Log.Level != "" {
		log.Logger = log.Level(level)
	}

	app, err := client.NewApp(cfg, mode, log)
	if err != nil {
		return err
	}

	ctx := log.WithContext(cmd.Context())
	if err = app.Open(ctx); err != nil {
		return err
	}
	defer func() {
		if cerr := app.Close(ctx); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	return fn(ctx, app)
}
