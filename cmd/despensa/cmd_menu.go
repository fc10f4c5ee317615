package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/osse101/Despensa_Go/internal/domain"
)

// menuFetchConcurrency bounds parallel menu lookups
const menuFetchConcurrency = 4

func newMenuCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Inspect weekly menus",
	}
	cmd.AddCommand(newMenuShowCmd(opts), newMenuListCmd(opts))
	return cmd
}

func newMenuShowCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show MENU_ID [MENU_ID...]",
		Short: "Show menus with their recipes and preparation history",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.apiClient()
			if err != nil {
				return err
			}

			menus := make([]*domain.Menu, len(args))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(menuFetchConcurrency)
			for i, id := range args {
				g.Go(func() error {
					m, err := c.GetMenu(ctx, id)
					if err != nil {
						return fmt.Errorf("menu %s: %w", id, err)
					}
					menus[i] = m
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			out := make([]string, len(menus))
			for i, m := range menus {
				out[i] = renderMenu(m)
			}
			fmt.Fprint(cmd.OutOrStdout(), strings.Join(out, "\n"))
			return nil
		},
	}
}

func newMenuListCmd(opts *globalOptions) *cobra.Command {
	var (
		limit  int
		cursor string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List menus, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.apiClient()
			if err != nil {
				return err
			}
			page, err := c.ListMenus(cmd.Context(), limit, cursor)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(page.Items))
			for _, m := range page.Items {
				rows = append(rows, []string{m.ID, m.WeekStart, string(m.Scope), string(m.Status), fmt.Sprint(m.Version)})
			}
			out := table([]string{"ID", "WEEK", "SCOPE", "STATUS", "VERSION"}, rows)
			if page.NextCursor != "" {
				out += mutedStyle.Render("more: --cursor "+page.NextCursor) + "\n"
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Page size (server default when 0)")
	cmd.Flags().StringVar(&cursor, "cursor", "", "Cursor from a previous page")
	return cmd
}
