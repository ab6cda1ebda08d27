package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fedlearn/fedops/usecase/run"
)

// newCmdDestroy returns the command that deletes the plan's resource groups.
func newCmdDestroy() *cobra.Command {
	var planArg string
	var resourceGroup string
	c := &cobra.Command{
		Use:   "destroy",
		Short: "Delete every resource group the plan touches",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			br, err := buildRepos(cmd)
			if err != nil {
				return err
			}
			planID, err := resolvePlanID(ctx, br, planArg)
			if err != nil {
				return err
			}
			uc, err := buildRunUseCase(ctx, br, planID)
			if err != nil {
				return err
			}

			ctx, cleanup := withCmdRunLogger(ctx, "destroy", planID)
			out, err := uc.Destroy(ctx, &run.DestroyInput{PlanID: planID, ResourceGroup: resourceGroup})
			cleanup(err)
			if err != nil {
				return err
			}
			for _, rg := range out.ResourceGroups {
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", rg)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	c.Flags().StringVar(&planArg, "plan", "", "Plan ID or name (defaults to the loaded plan)")
	c.Flags().StringVarP(&resourceGroup, "resource-group", "g", "", "Override the plan's default resource group")
	return c
}
