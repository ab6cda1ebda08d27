package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fedlearn/fedops/domain/model"
	"github.com/fedlearn/fedops/usecase/run"
)

// newCmdApply returns the command that executes the provisioning sequence.
func newCmdApply() *cobra.Command {
	var planArg string
	var resourceGroup string
	c := &cobra.Command{
		Use:   "apply",
		Short: "Execute the provisioning sequence (fail-fast, no rollback)",
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

			ctx, cleanup := withCmdRunLogger(ctx, "apply", planID)
			out, err := uc.Apply(ctx, &run.ApplyInput{PlanID: planID, ResourceGroup: resourceGroup})
			cleanup(err)
			if out != nil && out.Run != nil {
				printRun(cmd, out.Run)
			}
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	c.Flags().StringVar(&planArg, "plan", "", "Plan ID or name (defaults to the loaded plan)")
	c.Flags().StringVarP(&resourceGroup, "resource-group", "g", "", "Override the plan's default resource group")
	return c
}

// printRun writes a per-step summary of a run to stdout.
func printRun(cmd *cobra.Command, r *model.Run) {
	w := cmd.OutOrStdout()
	for _, s := range r.Steps {
		switch s.Status {
		case model.StepStatusFailed:
			fmt.Fprintf(w, "%2d %-14s %-20s %-9s %s\n", s.Position, s.Kind, s.Name, s.Status, s.Error)
		default:
			fmt.Fprintf(w, "%2d %-14s %-20s %s\n", s.Position, s.Kind, s.Name, s.Status)
		}
	}
	fmt.Fprintf(w, "run %s plan=%s resource_group=%s status=%s\n", r.ID, r.PlanName, r.ResourceGroup, r.Status)
}
