package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/pablonunez10/genex-store-inventory-front/internal/api"
	"github.com/pablonunez10/genex-store-inventory-front/internal/cart"
	"github.com/pablonunez10/genex-store-inventory-front/internal/catalog"
	"github.com/pablonunez10/genex-store-inventory-front/internal/catalog/cache"
	"github.com/pablonunez10/genex-store-inventory-front/internal/checkout"
	"github.com/pablonunez10/genex-store-inventory-front/internal/domain"
)

// sellCmd is the seller's checkout flow in one shot: load the catalog
// snapshot, build the cart from --item flags, show the lines and total,
// and submit the batched sale. On rejection the server's message is
// printed verbatim and nothing is retried automatically.
func sellCmd(build appBuilder) *cobra.Command {
	var (
		items           []string
		dryRun          bool
		revalidateMerge bool
	)

	cmd := &cobra.Command{
		Use:   "sell --item SKU=QTY [--item SKU=QTY ...]",
		Short: "Register a sale from the current catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(items) == 0 {
				return errors.New("at least one --item is required")
			}

			a, err := build()
			if err != nil {
				return err
			}

			loaderOpts := []catalog.LoaderOption{}
			if a.cfg.RedisAddr != "" {
				client := redis.NewClient(&redis.Options{Addr: a.cfg.RedisAddr})
				loaderOpts = append(loaderOpts, catalog.WithCache(cache.NewRedisCache(client)))
			}
			loader := catalog.NewLoader(a.client, a.logger, loaderOpts...)

			snapshot := loader.Snapshot(cmd.Context())
			if len(snapshot) == 0 {
				return errors.New("no products available to sell")
			}
			bySKU := make(map[string]domain.Product, len(snapshot))
			for _, p := range snapshot {
				bySKU[p.SKU] = p
			}

			var cartOpts []cart.Option
			if revalidateMerge {
				cartOpts = append(cartOpts, cart.WithMergeRevalidation())
			}
			pending := cart.New(cartOpts...)

			for _, raw := range items {
				sku, qty, err := parseItem(raw)
				if err != nil {
					return err
				}
				product, ok := bySKU[sku]
				if !ok {
					return fmt.Errorf("product %q is not in the catalog", sku)
				}
				if err := pending.AddOrMerge(product, qty); err != nil {
					return fmt.Errorf("add %q x%d: %w", sku, qty, err)
				}
			}

			for _, e := range pending.Entries() {
				fmt.Printf("%-12s %-30s x%-4d Gs. %s\n",
					e.Product.SKU, e.Product.Name, e.Quantity, e.Subtotal().String())
			}
			fmt.Printf("Total: Gs. %s\n", pending.Total().String())

			if dryRun {
				return nil
			}

			submitter := checkout.NewSubmitter(a.client)
			sale, err := submitter.Submit(cmd.Context(), pending)
			if err != nil {
				var remote *api.RemoteError
				if errors.As(err, &remote) {
					// Cart stays intact client-side; here the process exits
					// anyway, so just surface the server's reason.
					return fmt.Errorf("sale rejected: %s", remote.Message)
				}
				return err
			}

			fmt.Printf("Sale %s registered, total Gs. %s\n", sale.ID, sale.TotalAmount.String())
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&items, "item", nil, "line to sell, as SKU=QTY (repeatable)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the cart without submitting")
	cmd.Flags().BoolVar(&revalidateMerge, "revalidate-merge", false,
		"re-check cumulative quantity against stock when merging repeated items")
	return cmd
}

func parseItem(raw string) (string, int, error) {
	sku, qtyStr, ok := strings.Cut(raw, "=")
	if !ok || sku == "" {
		return "", 0, fmt.Errorf("invalid --item %q, want SKU=QTY", raw)
	}
	qty, err := strconv.Atoi(qtyStr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid quantity in --item %q", raw)
	}
	return sku, qty, nil
}
