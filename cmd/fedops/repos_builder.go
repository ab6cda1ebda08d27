package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/fedlearn/fedops/adapters/store/inmem"
	"github.com/fedlearn/fedops/adapters/store/rdb"
	"github.com/fedlearn/fedops/domain"
	"github.com/fedlearn/fedops/domain/model"
)

// builtRepos bundles the repositories with the plan the store may have
// loaded from fedops.yml (file: URLs only).
type builtRepos struct {
	Repos         *domain.Repositories
	DefaultPlanID string
}

// findFlag walks up the command hierarchy looking for a flag definition.
func findFlag(cmd *cobra.Command, name string) *pflag.Flag {
	for c := cmd; c != nil; c = c.Parent() {
		if f := c.Flags().Lookup(name); f != nil {
			return f
		}
		if f := c.PersistentFlags().Lookup(name); f != nil {
			return f
		}
	}
	return nil
}

// getDBURL extracts the db-url flag value from the command hierarchy.
func getDBURL(cmd *cobra.Command) string {
	if f := findFlag(cmd, "db-url"); f != nil && f.Value.String() != "" {
		return f.Value.String()
	}
	return "file:fedops.yml"
}

// buildRepos creates repositories based on db-url.
// A file: URL loads the configuration file into the in-memory store;
// sqlite: URLs open a durable store that also keeps run history.
func buildRepos(cmd *cobra.Command) (*builtRepos, error) {
	dbURL := getDBURL(cmd)

	switch {
	case strings.HasPrefix(dbURL, "file:"):
		filePath := strings.TrimPrefix(dbURL, "file:")
		if filePath == "" {
			return nil, fmt.Errorf("file path is required for file: URL")
		}

		store := inmem.NewStore()
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()
		if err := store.LoadFromFile(ctx, filePath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", filePath, err)
		}

		return &builtRepos{
			Repos: &domain.Repositories{
				Provider: store.ProviderRepository,
				Plan:     store.PlanRepository,
				Run:      store.RunRepository,
			},
			DefaultPlanID: store.PlanID,
		}, nil

	case strings.HasPrefix(dbURL, "sqlite:") || strings.HasPrefix(dbURL, "sqlite3:"):
		db, err := rdb.OpenFromURL(dbURL)
		if err != nil {
			return nil, err
		}
		if err := rdb.AutoMigrate(db); err != nil {
			return nil, err
		}
		return &builtRepos{
			Repos: &domain.Repositories{
				Provider: rdb.NewProviderRepository(db),
				Plan:     rdb.NewPlanRepository(db),
				Run:      rdb.NewRunRepository(db),
			},
		}, nil

	default:
		return nil, fmt.Errorf("unsupported db scheme: %s", dbURL)
	}
}

// resolvePlanID picks the plan to operate on: an explicit ID or name wins,
// then the plan loaded from fedops.yml, then a sole stored plan.
func resolvePlanID(ctx context.Context, br *builtRepos, arg string) (string, error) {
	if arg != "" {
		if _, err := br.Repos.Plan.Get(ctx, arg); err == nil {
			return arg, nil
		}
		plans, err := br.Repos.Plan.List(ctx)
		if err != nil {
			return "", err
		}
		for _, p := range plans {
			if p.Name == arg {
				return p.ID, nil
			}
		}
		return "", fmt.Errorf("%w: %s", model.ErrPlanNotFound, arg)
	}
	if br.DefaultPlanID != "" {
		return br.DefaultPlanID, nil
	}
	plans, err := br.Repos.Plan.List(ctx)
	if err != nil {
		return "", err
	}
	switch len(plans) {
	case 0:
		return "", model.ErrPlanNotFound
	case 1:
		return plans[0].ID, nil
	}
	return "", fmt.Errorf("multiple plans stored, use --plan to select one")
}
