package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pablonunez10/genex-store-inventory-front/internal/domain"
)

func salesCmd(build appBuilder) *cobra.Command {
	var mine bool

	cmd := &cobra.Command{
		Use:   "sales",
		Short: "List registered sales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := build()
			if err != nil {
				return err
			}

			var sales []domain.Sale
			if mine {
				sales, err = a.client.ListMySales(cmd.Context())
			} else {
				sales, err = a.client.ListSales(cmd.Context())
			}
			if err != nil {
				return err
			}

			for _, s := range sales {
				fmt.Printf("%s  %s  %-20s Gs. %s (%d items)\n",
					s.SaleDate.Format(time.DateTime), s.ID, s.SellerName,
					s.TotalAmount.String(), len(s.Items))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&mine, "mine", false, "only my own sales")
	return cmd
}

func reportCmd(build appBuilder) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Daily sales report (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := build()
			if err != nil {
				return err
			}

			if date == "" {
				date = time.Now().UTC().Format("2006-01-02")
			}

			report, err := a.client.SalesReport(cmd.Context(), date)
			if err != nil {
				return err
			}

			fmt.Printf("Report for %s\n", report.Date)
			fmt.Printf("  Sales: %d\n", report.Summary.TotalSales)
			fmt.Printf("  Items: %d\n", report.Summary.TotalItems)
			fmt.Printf("  Total: Gs. %s\n", report.Summary.TotalAmount.String())
			for _, s := range report.Sales {
				fmt.Printf("  - %s %s Gs. %s\n", s.SaleDate.Format("15:04"), s.SellerName, s.TotalAmount.String())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "report date (YYYY-MM-DD, default today)")
	return cmd
}
