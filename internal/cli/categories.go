package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pablonunez10/genex-store-inventory-front/internal/api"
)

func categoriesCmd(build appBuilder) *cobra.Command {
	c := &cobra.Command{
		Use:   "categories",
		Short: "Manage product categories",
	}

	var description string

	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := build()
			if err != nil {
				return err
			}

			categories, err := a.client.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			for _, cat := range categories {
				fmt.Printf("%-36s %s\n", cat.ID, cat.Name)
			}
			return nil
		},
	}

	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a category (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}

			cat, err := a.client.CreateCategory(cmd.Context(), api.CategoryInput{
				Name:        args[0],
				Description: description,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created category %s\n", cat.ID)
			return nil
		},
	}
	create.Flags().StringVar(&description, "description", "", "category description")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}

			if err := a.client.DeleteCategory(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Category deleted")
			return nil
		},
	}

	c.AddCommand(list, create, del)
	return c
}
