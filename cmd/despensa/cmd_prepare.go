package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/Despensa_Go/internal/domain"
	"github.com/osse101/Despensa_Go/internal/prepare"
)

func newPrepareCmd(opts *globalOptions) *cobra.Command {
	var (
		scope  string
		days   []string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "prepare MENU_ID",
		Short: "Consume a menu's ingredients from the pantry",
		Long: `Reconcile the selected days of a menu against the pantry.

Without --dry-run the pantry is only updated when every ingredient is
available; otherwise the shortages are listed and nothing changes.
--days implies --scope days.`,
		Example: `  despensa prepare 0190b1c2-7a3e-7c00-8000-000000000001 --dry-run
  despensa prepare MENU_ID --scope weekdays
  despensa prepare MENU_ID --days mon,wed`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := buildPrepareRequest(scope, days, dryRun)
			if err != nil {
				return err
			}

			c, err := opts.apiClient()
			if err != nil {
				return err
			}

			res, err := c.Prepare(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), renderPrepareResult(res, dryRun))
			return nil
		},
	}

	cmd.Flags().StringVar(&scope, "scope", "", "Days to prepare: all, weekdays or days")
	cmd.Flags().StringSliceVar(&days, "days", nil, "Comma separated day keys (mon..sun)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would happen without touching the pantry")
	return cmd
}

// buildPrepareRequest validates flags before anything reaches the API
func buildPrepareRequest(scope string, days []string, dryRun bool) (prepare.Request, error) {
	if scope == "" && len(days) > 0 {
		scope = string(domain.PrepareScopeDays)
	}

	parsedScope, err := domain.ParsePrepareScope(scope)
	if err != nil {
		return prepare.Request{}, err
	}

	req := prepare.Request{Scope: parsedScope, DryRun: dryRun}
	if parsedScope != domain.PrepareScopeDays {
		return req, nil
	}
	if len(days) == 0 {
		return prepare.Request{}, domain.ErrEmptyDaySelection
	}

	req.Days = make([]domain.DayKey, 0, len(days))
	for _, raw := range days {
		day, err := domain.ParseDayKey(raw)
		if err != nil {
			return prepare.Request{}, err
		}
		req.Days = append(req.Days, day)
	}
	return req, nil
}
