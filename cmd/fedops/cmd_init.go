package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fedlearn/fedops/config/fedopscfg"
)

// starterConfig is written by `fedops init`. It carries the built-in
// federated-learning sequence: leaving plan.steps empty selects it.
const starterConfig = `version: v1
provider:
  name: azure
  driver: azure
  settings:
    AZURE_SUBSCRIPTION_ID: ""
    AZURE_LOCATION: eastus
    AZURE_AUTH_METHOD: azure_cli
plan:
  name: fedlearning
  resource_group: fedlearning-rg
  location: eastus
  # steps: omitted, the built-in sequence applies
  # (resource group, coordinator VM, firewall rule, 4 workspaces)
`

func newCmdInit() *cobra.Command {
	var forceFlag bool
	c := &cobra.Command{
		Use:   "init",
		Short: "Write a starter fedops.yml",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fedopscfg.DefaultConfigPath
			if !forceFlag {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use -f to overwrite)", path)
				}
			}
			if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	c.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing fedops.yml")
	return c
}
