package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"subweave/internal/config"
	"subweave/internal/language"
	"subweave/internal/runlog"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect the run history",
	}

	runsCmd.AddCommand(newRunsListCommand(ctx))
	runsCmd.AddCommand(newRunsShowCommand(ctx))
	runsCmd.AddCommand(newRunsPruneCommand(ctx))

	return runsCmd
}

func newRunsListCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent processing runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(ctx, func(cfg *config.Config, store *runlog.Store) error {
				runs, err := store.List(cmd.Context(), limit)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(runs) == 0 {
					fmt.Fprintln(out, "No runs recorded")
					return nil
				}
				fmt.Fprintln(out, runsTable(runs))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list (0 for all)")
	return cmd
}

func newRunsShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one run in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(ctx, func(cfg *config.Config, store *runlog.Store) error {
				run, err := findRun(cmd, store, args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Run:        %s\n", run.ID)
				fmt.Fprintf(out, "Created:    %s\n", run.CreatedAt.Local().Format(time.RFC1123))
				if !run.FinishedAt.IsZero() {
					fmt.Fprintf(out, "Finished:   %s\n", run.FinishedAt.Local().Format(time.RFC1123))
				}
				fmt.Fprintf(out, "Source:     %s\n", run.Source)
				fmt.Fprintf(out, "Language:   %s\n", language.DisplayName(run.Language))
				fmt.Fprintf(out, "Merged:     %s\n", yesNo(run.Merged))
				fmt.Fprintf(out, "Translit:   %s\n", yesNo(run.Transliterated))
				fmt.Fprintf(out, "Formats:    %s\n", strings.Join(run.Formats, ", "))
				fmt.Fprintf(out, "Status:     %s\n", run.Status)
				if run.ErrorMessage != "" {
					fmt.Fprintf(out, "Error:      %s\n", run.ErrorMessage)
				}
				if len(run.Artifacts) > 0 {
					fmt.Fprintf(out, "Artifacts:\n")
					for _, artifact := range run.Artifacts {
						fmt.Fprintf(out, "  - %s\n", artifact)
					}
				}
				if len(run.Warnings) > 0 {
					fmt.Fprintf(out, "Warnings:\n")
					for _, warning := range run.Warnings {
						fmt.Fprintf(out, "  - %s\n", warning)
					}
				}
				return nil
			})
		},
	}
}

func newRunsPruneCommand(ctx *commandContext) *cobra.Command {
	var days int
	var all bool

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete finished runs from the history",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(ctx, func(cfg *config.Config, store *runlog.Store) error {
				olderThan := time.Duration(days) * 24 * time.Hour
				if all {
					olderThan = 0
				}
				deleted, err := store.Prune(cmd.Context(), olderThan)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d run(s)\n", deleted)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "Delete finished runs older than this many days")
	cmd.Flags().BoolVar(&all, "all", false, "Delete every finished run regardless of age")
	return cmd
}

func withStore(ctx *commandContext, fn func(*config.Config, *runlog.Store) error) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	store, err := runlog.Open(cfg.Paths.LogDir)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer store.Close()
	return fn(cfg, store)
}

// findRun resolves a full or abbreviated run ID.
func findRun(cmd *cobra.Command, store *runlog.Store, id string) (*runlog.Run, error) {
	id = strings.TrimSpace(id)
	run, err := store.Get(cmd.Context(), id)
	if err == nil {
		return run, nil
	}
	runs, listErr := store.List(cmd.Context(), 0)
	if listErr != nil {
		return nil, err
	}
	var match *runlog.Run
	for _, candidate := range runs {
		if strings.HasPrefix(candidate.ID, id) {
			if match != nil {
				return nil, fmt.Errorf("run id %q is ambiguous", id)
			}
			match = candidate
		}
	}
	if match == nil {
		return nil, err
	}
	return match, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
