package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fedlearn/fedops/config/fedopscfg"
	"github.com/fedlearn/fedops/usecase/plan"
)

// newCmdPlan returns the parent command for plan-related operations.
func newCmdPlan() *cobra.Command {
	c := &cobra.Command{
		Use:   "plan",
		Short: "Plan related commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help if no subcommand provided
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	c.AddCommand(newCmdPlanShow())
	c.AddCommand(newCmdPlanValidate())
	c.AddCommand(newCmdPlanList())
	c.AddCommand(newCmdPlanImport())
	return c
}

func newCmdPlanShow() *cobra.Command {
	var planArg string
	c := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved provisioning sequence",
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
			uc := buildPlanUseCase(br)
			out, err := uc.Get(ctx, &plan.GetInput{PlanID: planID})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			p := out.Plan
			fmt.Fprintf(w, "plan %s resource_group=%s location=%s\n", p.Name, p.ResourceGroup, p.Location)
			for i, s := range p.EffectiveSteps() {
				fmt.Fprintf(w, "%2d %-14s %-20s %s\n", i, s.Kind, s.Name, s.ResourceGroup)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	c.Flags().StringVar(&planArg, "plan", "", "Plan ID or name (defaults to the loaded plan)")
	return c
}

func newCmdPlanValidate() *cobra.Command {
	var planArg string
	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate the provisioning sequence",
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
			uc := buildPlanUseCase(br)
			out, err := uc.Validate(ctx, &plan.ValidateInput{PlanID: planID})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "plan %s: %d steps ok\n", out.Plan.Name, len(out.Steps))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	c.Flags().StringVar(&planArg, "plan", "", "Plan ID or name (defaults to the loaded plan)")
	return c
}

func newCmdPlanList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			br, err := buildRepos(cmd)
			if err != nil {
				return err
			}
			uc := buildPlanUseCase(br)
			out, err := uc.List(ctx, &plan.ListInput{})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, p := range out.Plans {
				fmt.Fprintf(w, "%s %-20s resource_group=%s steps=%d\n", p.ID, p.Name, p.ResourceGroup, len(p.Steps))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

// newCmdPlanImport loads a fedops.yml into the configured store. With a
// sqlite: db-url this persists the plan for later runs.
func newCmdPlanImport() *cobra.Command {
	var file string
	c := &cobra.Command{
		Use:   "import",
		Short: "Import a fedops.yml into the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			br, err := buildRepos(cmd)
			if err != nil {
				return err
			}
			cfg, err := fedopscfg.Load(file)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			provider, p, err := cfg.ToModels()
			if err != nil {
				return err
			}
			if err := br.Repos.Provider.Create(ctx, provider); err != nil {
				return err
			}
			if err := br.Repos.Plan.Create(ctx, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported plan %s (%s)\n", p.Name, p.ID)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	c.Flags().StringVarP(&file, "file", "f", fedopscfg.DefaultConfigPath, "Path to fedops.yml")
	return c
}
