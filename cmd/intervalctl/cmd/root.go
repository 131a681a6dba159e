package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/oshokin/interval-alarm/internal/config"
	"github.com/oshokin/interval-alarm/internal/service/ctl"
	"github.com/oshokin/interval-alarm/internal/version"
)

var (
	// cfgPath stores the configuration file path.
	cfgPath string
	// serverAddress overrides the daemon address from the configuration.
	serverAddress string

	// rootCmd represents the base command for managing schedules.
	rootCmd = &cobra.Command{
		Use:   "intervalctl",
		Short: "Manage interval alarm schedules.",
		Long: `Lists, creates, edits, enables, disables and deletes schedules of a running
interval-alarmd, dismisses ringing alarms and watches what the daemon does.

A schedule rings every --interval minutes between --start and --end (inclusive)
on its active days.`,
		SilenceUsage: true,
	}
)

// Execute runs the intervalctl CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// options builds the ctl options from the persistent flags.
func options(cmd *cobra.Command) *ctl.Options {
	return &ctl.Options{
		ConfigPath:    cfgPath,
		ServerAddress: serverAddress,
		Out:           cmd.OutOrStdout(),
	}
}

// signalContext cancels on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
}

// parseID parses a schedule id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid schedule id %q", arg)
	}

	return id, nil
}

// idCommand builds a command that takes exactly one schedule id.
func idCommand(use, short string, run func(ctx context.Context, opts *ctl.Options, id int64) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx, stop := signalContext()
			defer stop()

			return run(ctx, options(cmd), id)
		},
	}
}

// scheduleFlags binds the schedule fields to flags of cmd.
type scheduleFlags struct {
	label       string
	start       string
	end         string
	interval    int32
	days        string
	enabled     bool
	autoDismiss time.Duration
}

func (f *scheduleFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.label, "label", "l", "", "free-form label")
	cmd.Flags().StringVar(&f.start, "start", "09:00", "window start, HH:MM")
	cmd.Flags().StringVar(&f.end, "end", "17:00", "window end (inclusive), HH:MM")
	cmd.Flags().Int32VarP(&f.interval, "interval", "i", 30, "minutes between occurrences")
	cmd.Flags().StringVarP(&f.days, "days", "d", "all", `active days: "mon,wed,fri", "weekdays" or "all"`)
	cmd.Flags().BoolVarP(&f.enabled, "enabled", "e", false, "arm the schedule")
	cmd.Flags().DurationVar(&f.autoDismiss, "auto-dismiss", 0, "stop ringing after this long, 0 rings until dismissed")
}

// edit returns the fields whose flags were set on the command line.
func (f *scheduleFlags) edit(cmd *cobra.Command) *ctl.ScheduleEdit {
	var edit ctl.ScheduleEdit

	changed := cmd.Flags().Changed

	if changed("label") {
		edit.Label = &f.label
	}

	if changed("start") {
		edit.Start = &f.start
	}

	if changed("end") {
		edit.End = &f.end
	}

	if changed("interval") {
		edit.Interval = &f.interval
	}

	if changed("days") {
		edit.Days = &f.days
	}

	if changed("enabled") {
		edit.Enabled = &f.enabled
	}

	if changed("auto-dismiss") {
		edit.AutoDismiss = &f.autoDismiss
	}

	return &edit
}

//nolint:gochecknoinits,funlen // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().
		StringVarP(&cfgPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().
		StringVarP(&serverAddress, "server", "s", "", "daemon address, overrides server_addr from the configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List schedules with their next trigger.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			return ctl.List(ctx, options(cmd))
		},
	}

	var addFlags scheduleFlags

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a schedule.",
		Long:  "Create a schedule. Unset fields default to 09:00-17:00 every 30 minutes on every day, disabled.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			return ctl.Add(ctx, options(cmd), addFlags.edit(cmd))
		},
	}
	addFlags.bind(addCmd)

	var editFlags scheduleFlags

	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a schedule and re-arm it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx, stop := signalContext()
			defer stop()

			return ctl.Edit(ctx, options(cmd), id, editFlags.edit(cmd))
		},
	}
	editFlags.bind(editCmd)

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Print schedule events as they happen.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			return ctl.Watch(ctx, options(cmd))
		},
	}

	rootCmd.AddCommand(
		listCmd,
		idCommand("show", "Show one schedule.", ctl.Show),
		addCmd,
		editCmd,
		idCommand("enable", "Enable a schedule and arm its next occurrence.",
			func(ctx context.Context, opts *ctl.Options, id int64) error {
				return ctl.SetEnabled(ctx, opts, id, true)
			}),
		idCommand("disable", "Disable a schedule and cancel its timer.",
			func(ctx context.Context, opts *ctl.Options, id int64) error {
				return ctl.SetEnabled(ctx, opts, id, false)
			}),
		idCommand("delete", "Delete a schedule.", ctl.Delete),
		idCommand("dismiss", "Silence a ringing schedule.", ctl.Dismiss),
		watchCmd,
	)
}
