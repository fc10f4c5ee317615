package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/osse101/Despensa_Go/internal/client"
	"github.com/osse101/Despensa_Go/internal/domain"
	"github.com/osse101/Despensa_Go/internal/pantry"
)

func newPantryCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pantry",
		Short: "Inspect and stock the pantry",
	}
	cmd.AddCommand(newPantryListCmd(opts), newPantryAddCmd(opts))
	return cmd
}

func newPantryListCmd(opts *globalOptions) *cobra.Command {
	var q client.PantryQuery

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pantry items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.apiClient()
			if err != nil {
				return err
			}
			page, err := c.ListPantry(cmd.Context(), q)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderPantryPage(page))
			return nil
		},
	}

	cmd.Flags().StringVar(&q.Search, "search", "", "Name prefix, accents and case ignored")
	cmd.Flags().StringVar(&q.Category, "category", "", "Only items of this category")
	cmd.Flags().IntVar(&q.Limit, "limit", 0, "Page size (server default when 0)")
	cmd.Flags().StringVar(&q.Cursor, "cursor", "", "Cursor from a previous page")
	return cmd
}

func newPantryAddCmd(opts *globalOptions) *cobra.Command {
	var (
		category       string
		perishable     bool
		notes          string
		idempotencyKey string
	)

	cmd := &cobra.Command{
		Use:   "add NAME QUANTITY UNIT",
		Short: "Add an item to the pantry",
		Long: `Add one item to the pantry. UNIT may be a canonical unit (g, kg, ml, l,
cup, tbsp, tsp, piece) or any configured alias such as "taza".

Every run sends an idempotency key so a retried request never stocks
the item twice; pass --idempotency-key to reuse one explicitly.`,
		Example: `  despensa pantry add arroz 1 kg --category granos
  despensa pantry add "leche entera" 2 l --perishable`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := buildNewItem(args, category, perishable, notes)
			if err != nil {
				return err
			}
			if idempotencyKey == "" {
				idempotencyKey = uuid.NewString()
			}

			c, err := opts.apiClient()
			if err != nil {
				return err
			}
			items, err := c.AddPantryItems(cmd.Context(), []pantry.NewItem{item}, idempotencyKey)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), renderPantryPage(&domain.PantryPage{Items: items}))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Category (default otros)")
	cmd.Flags().BoolVar(&perishable, "perishable", false, "Mark the item as perishable")
	cmd.Flags().StringVar(&notes, "notes", "", "Free text notes")
	cmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "Key that makes retries safe (generated when empty)")
	return cmd
}

func buildNewItem(args []string, category string, perishable bool, notes string) (pantry.NewItem, error) {
	name := strings.TrimSpace(args[0])
	if name == "" {
		return pantry.NewItem{}, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	qty, err := strconv.ParseFloat(args[1], 64)
	if err != nil || qty < 0 {
		return pantry.NewItem{}, fmt.Errorf("%w: quantity must be a number >= 0", domain.ErrInvalidInput)
	}

	item := pantry.NewItem{
		Name:       name,
		Quantity:   qty,
		Unit:       args[2],
		Category:   domain.PantryCategory(category),
		Perishable: perishable,
	}
	if notes != "" {
		item.Notes = &notes
	}
	return item, nil
}
