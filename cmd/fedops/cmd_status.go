package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fedlearn/fedops/usecase/run"
)

// newCmdStatus returns the command that probes each step without mutation.
func newCmdStatus() *cobra.Command {
	var planArg string
	var resourceGroup string
	c := &cobra.Command{
		Use:   "status",
		Short: "Report which plan resources currently exist",
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

			out, err := uc.Status(ctx, &run.StatusInput{PlanID: planID, ResourceGroup: resourceGroup})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, rep := range out.Steps {
				state := "absent"
				if rep.Exists {
					state = "exists"
				}
				fmt.Fprintf(w, "%2d %-14s %-20s %-20s %s\n", i, rep.Step.Kind, rep.Step.Name, rep.Step.ResourceGroup, state)
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
