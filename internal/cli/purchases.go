package cli

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pablonunez10/genex-store-inventory-front/internal/api"
)

func purchasesCmd(build appBuilder) *cobra.Command {
	c := &cobra.Command{
		Use:   "purchases",
		Short: "Manage purchase orders (admin)",
	}

	c.AddCommand(purchasesListCmd(build))
	c.AddCommand(purchasesCreateCmd(build))
	return c
}

func purchasesListCmd(build appBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List purchase orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := build()
			if err != nil {
				return err
			}

			purchases, err := a.client.ListPurchases(cmd.Context())
			if err != nil {
				return err
			}
			for _, p := range purchases {
				name := p.ProductID
				if p.Product != nil {
					name = p.Product.Name
				}
				fmt.Printf("%s  %-30s x%-4d total Gs. %s\n",
					p.PurchaseDate.Format("2006-01-02"), name, p.Quantity, p.TotalCost.String())
			}
			return nil
		},
	}
}

func purchasesCreateCmd(build appBuilder) *cobra.Command {
	var (
		supplier string
		invoice  string
		date     string
	)

	cmd := &cobra.Command{
		Use:   "create <productId> <quantity> <costPrice> <salePrice>",
		Short: "Register a restock",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}

			var quantity int
			if _, err := fmt.Sscanf(args[1], "%d", &quantity); err != nil || quantity <= 0 {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			costPrice, err := decimal.NewFromString(args[2])
			if err != nil {
				return fmt.Errorf("invalid cost price %q: %w", args[2], err)
			}
			salePrice, err := decimal.NewFromString(args[3])
			if err != nil {
				return fmt.Errorf("invalid sale price %q: %w", args[3], err)
			}
			if date == "" {
				date = time.Now().UTC().Format("2006-01-02")
			}

			order, err := a.client.CreatePurchase(cmd.Context(), api.CreatePurchaseInput{
				ProductID:     args[0],
				Quantity:      quantity,
				CostPrice:     costPrice,
				SalePrice:     salePrice,
				Supplier:      supplier,
				InvoiceNumber: invoice,
				PurchaseDate:  date,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Registered purchase %s, total Gs. %s\n", order.ID, order.TotalCost.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&supplier, "supplier", "", "supplier name")
	cmd.Flags().StringVar(&invoice, "invoice", "", "invoice number")
	cmd.Flags().StringVar(&date, "date", "", "purchase date (YYYY-MM-DD, default today)")
	return cmd
}
