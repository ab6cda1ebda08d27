package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fedlearn/fedops/usecase/run"
)

// newCmdRun returns the parent command for run-history operations.
// History is durable only with a sqlite: db-url.
func newCmdRun() *cobra.Command {
	c := &cobra.Command{
		Use:   "run",
		Short: "Run history commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help if no subcommand provided
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	c.AddCommand(newCmdRunList())
	c.AddCommand(newCmdRunGet())
	return c
}

func newCmdRunList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			br, err := buildRepos(cmd)
			if err != nil {
				return err
			}
			uc := &run.UseCase{Repos: &run.Repos{Plan: br.Repos.Plan, Provider: br.Repos.Provider, Run: br.Repos.Run}}
			out, err := uc.List(ctx, &run.ListInput{})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, r := range out.Runs {
				fmt.Fprintf(w, "%s %-20s %-9s started=%s steps=%d\n", r.ID, r.PlanName, r.Status, r.StartedAt.Format("2006-01-02T15:04:05Z"), len(r.Steps))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

func newCmdRunGet() *cobra.Command {
	return &cobra.Command{
		Use:   "get RUN_ID",
		Short: "Show one recorded run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			br, err := buildRepos(cmd)
			if err != nil {
				return err
			}
			uc := &run.UseCase{Repos: &run.Repos{Plan: br.Repos.Plan, Provider: br.Repos.Provider, Run: br.Repos.Run}}
			out, err := uc.Get(ctx, &run.GetInput{RunID: args[0]})
			if err != nil {
				return err
			}
			printRun(cmd, out.Run)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}
