package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/interval-alarm/internal/config"
	"github.com/oshokin/interval-alarm/internal/service/daemon"
	"github.com/oshokin/interval-alarm/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// storagePath overrides the storage path from the configuration.
	storagePath string
	// allowMultiple skips the single-instance check.
	allowMultiple bool
	// replace stops a running daemon before starting.
	replace bool
	// force lets init overwrite an existing configuration file.
	force bool

	// errConfigExists is returned by init when the configuration file is already there.
	errConfigExists = errors.New("configuration file already exists, use --force to overwrite")

	// rootCmd represents the base command for running the daemon.
	rootCmd = &cobra.Command{
		Use:   "interval-alarmd [listen-address]",
		Short: "Run the interval alarm daemon.",
		Long: `Starts the interval alarm daemon.

The daemon keeps every enabled schedule armed for its next occurrence inside
the daily window, rings when an occurrence is reached and re-arms the one after
it. Schedules are persisted, so they are re-armed after a restart.

The gRPC API listens on server_addr from the configuration file unless a
listen address is given as argument (e.g., 127.0.0.1:9090).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use listen address argument if provided, otherwise rely on config.
			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &daemon.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
				StoragePath:   storagePath,
				AllowMultiple: allowMultiple,
				Replace:       replace,
			}

			return daemon.Run(ctx, options)
		},
	}

	// initCmd writes a default configuration file.
	initCmd = &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := os.Stat(configPath); err == nil && !force {
				return fmt.Errorf("%s: %w", configPath, errConfigExists)
			}

			if err := config.Save(configPath, config.Default()); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)

			return nil
		},
	}
)

// Execute runs the interval-alarmd CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)
	rootCmd.AddCommand(initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&storagePath, "storage", "s", "", "override the schedule storage path")
	rootCmd.Flags().BoolVar(&allowMultiple, "allow-multiple", false, "skip the single-instance check")
	rootCmd.Flags().BoolVar(&replace, "replace", false, "stop a running daemon instead of refusing to start")

	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing configuration file")
}
