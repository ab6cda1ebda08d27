package main

import (
	"context"
	"os"

	"log/slog"

	"github.com/spf13/cobra"

	_ "github.com/fedlearn/fedops/adapters/drivers/provisioner/azure"
	"github.com/fedlearn/fedops/internal/logging"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fedops",
		Short:   "Federated-learning infrastructure provisioning CLI",
		Long:    "Federated-learning infrastructure provisioning CLI",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help by default when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultDB := os.Getenv("FEDOPS_DB_URL")
	if defaultDB == "" {
		defaultDB = "file:fedops.yml"
	}
	cmd.PersistentFlags().String("db-url", defaultDB, "Database URL (env FEDOPS_DB_URL) (file:/path/to/fedops.yml | sqlite:/path/to.db)")
	cmd.PersistentFlags().String("log-format", "human", "Log format (human|text|json) (env FEDOPS_LOG_FORMAT)")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		format, _ := c.Flags().GetString("log-format")
		if env := os.Getenv("FEDOPS_LOG_FORMAT"); env != "" { // env overrides flag
			format = env
		}
		l, err := logging.New(format, slog.LevelInfo)
		if err != nil {
			return err
		}
		ctx := logging.WithLogger(c.Context(), l)
		c.SetContext(ctx)
		return nil
	}

	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(newCmdInit())
	cmd.AddCommand(newCmdPlan())
	cmd.AddCommand(newCmdApply())
	cmd.AddCommand(newCmdDestroy())
	cmd.AddCommand(newCmdStatus())
	cmd.AddCommand(newCmdRun())
	return cmd
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	executed, err := root.ExecuteC()
	if err != nil {
		ctx := root.Context()
		if executed != nil {
			ctx = executed.Context()
		}
		logging.FromContext(ctx).Errorf(ctx, "Failed: %s", err)
		os.Exit(1)
	}
}
