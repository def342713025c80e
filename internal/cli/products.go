package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pablonunez10/genex-store-inventory-front/internal/api"
)

func productsCmd(build appBuilder) *cobra.Command {
	c := &cobra.Command{
		Use:   "products",
		Short: "Browse and manage products",
	}

	c.AddCommand(productsListCmd(build))
	c.AddCommand(productsShowCmd(build))
	c.AddCommand(productsCreateCmd(build))
	c.AddCommand(productsUpdateCmd(build))
	c.AddCommand(productsDeleteCmd(build))
	return c
}

func productsListCmd(build appBuilder) *cobra.Command {
	var sellableOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := build()
			if err != nil {
				return err
			}

			products, err := a.client.ListProducts(cmd.Context())
			if err != nil {
				return err
			}

			for _, p := range products {
				if sellableOnly && !p.Sellable() {
					continue
				}
				status := ""
				if !p.IsActive {
					status = "  [inactive]"
				}
				fmt.Printf("%-12s %-30s Gs. %-12s stock=%d%s\n",
					p.SKU, p.Name, p.SalePrice.String(), p.CurrentStock, status)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&sellableOnly, "sellable", false, "only active products with stock")
	return cmd
}

func productsShowCmd(build appBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}

			p, err := a.client.GetProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s\nSKU: %s\nPrice: Gs. %s\nStock: %d\nActive: %v\n",
				p.Name, p.SKU, p.SalePrice.String(), p.CurrentStock, p.IsActive)
			if p.Description != "" {
				fmt.Printf("Description: %s\n", p.Description)
			}
			return nil
		},
	}
}

func productsCreateCmd(build appBuilder) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create <name> <sku> <salePrice>",
		Short: "Create a product (admin)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}

			price, err := decimal.NewFromString(args[2])
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", args[2], err)
			}

			p, err := a.client.CreateProduct(cmd.Context(), api.CreateProductInput{
				Name:        args[0],
				SKU:         args[1],
				Description: description,
				SalePrice:   price,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created product %s (%s)\n", p.ID, p.SKU)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "product description")
	return cmd
}

func productsUpdateCmd(build appBuilder) *cobra.Command {
	var (
		name        string
		description string
		price       string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}

			var in api.UpdateProductInput
			if cmd.Flags().Changed("name") {
				in.Name = &name
			}
			if cmd.Flags().Changed("description") {
				in.Description = &description
			}
			if cmd.Flags().Changed("price") {
				d, err := decimal.NewFromString(price)
				if err != nil {
					return fmt.Errorf("invalid price %q: %w", price, err)
				}
				in.SalePrice = &d
			}

			p, err := a.client.UpdateProduct(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			fmt.Printf("Updated product %s\n", p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&price, "price", "", "new sale price")
	return cmd
}

func productsDeleteCmd(build appBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Deactivate a product (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}

			if err := a.client.DeleteProduct(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Product deactivated")
			return nil
		},
	}
}
