package main

import (
	"context"
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("invalid id %q", arg)
	}

	return id, nil
}

func (a *app) productsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse and manage catalog products",
	}
	cmd.AddCommand(a.productsListCmd(), a.productsShowCmd(), a.productsDeleteCmd())

	return cmd
}

func (a *app) productsListCmd() *cobra.Command {
	var filter entity.ProductFilter
	var condition string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter.Condition = entity.Condition(condition)
			if cmd.Flags().Changed("available") {
				v, _ := cmd.Flags().GetBool("available")
				filter.IsAvailable = &v
			}
			if cmd.Flags().Changed("negotiable") {
				v, _ := cmd.Flags().GetBool("negotiable")
				filter.IsNegotiable = &v
			}

			return a.withRegistry(cmd, func(ctx context.Context, r *impl.Registry) (any, error) {
				err := r.Catalog.List(ctx, filter)

				return r.Catalog.Snapshot(), err
			})
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&filter.Page, "page", 1, "page number")
	flags.StringVar(&filter.Search, "search", "", "search title, description and model")
	flags.Int64Var(&filter.Category, "category", 0, "category id")
	flags.Int64Var(&filter.Brand, "brand", 0, "brand id")
	flags.StringVar(&condition, "condition", "", "new, like_new, good, fair or poor")
	flags.StringVar(&filter.Ordering, "ordering", "", "e.g. price, -created_at, views")
	flags.Bool("available", false, "only available products")
	flags.Bool("negotiable", false, "only negotiable products")

	return cmd
}

func (a *app) productsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a product with its reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return a.withRegistry(cmd, func(ctx context.Context, r *impl.Registry) (any, error) {
				if err := r.Catalog.GetByID(ctx, id); err != nil {
					return r.Catalog.Snapshot(), err
				}
				err := r.Catalog.ListReviews(ctx, id)

				return r.Catalog.Snapshot(), err
			})
		},
	}
}

func (a *app) productsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete one of your products",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return a.withRegistry(cmd, func(ctx context.Context, r *impl.Registry) (any, error) {
				err := r.Catalog.Remove(ctx, id)

				return r.Catalog.Snapshot(), err
			})
		},
	}
}

func (a *app) shopsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shops",
		Short: "Browse the shop directory",
	}

	var filter entity.ShopFilter
	list := &cobra.Command{
		Use:   "list",
		Short: "List one page of shops",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withRegistry(cmd, func(ctx context.Context, r *impl.Registry) (any, error) {
				err := r.Marketplace.List(ctx, filter)

				return r.Marketplace.Snapshot(), err
			})
		},
	}
	list.Flags().IntVar(&filter.Page, "page", 1, "page number")
	list.Flags().StringVar(&filter.Search, "search", "", "search name, description and address")
	list.Flags().StringVar(&filter.Ordering, "ordering", "", "e.g. name, -rating, created_at")

	show := &cobra.Command{
		Use:   "show ID",
		Short: "Show a shop with its reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return a.withRegistry(cmd, func(ctx context.Context, r *impl.Registry) (any, error) {
				if err := r.Marketplace.GetByID(ctx, id); err != nil {
					return r.Marketplace.Snapshot(), err
				}
				err := r.Marketplace.ListReviews(ctx, id)

				return r.Marketplace.Snapshot(), err
			})
		},
	}

	cmd.AddCommand(list, show)

	return cmd
}

func (a *app) bootstrapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap",
		Short: "Load reference data and the profile, then print the whole state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withRegistry(cmd, func(ctx context.Context, r *impl.Registry) (any, error) {
				err := r.Bootstrap(ctx)

				return r.State(), err
			})
		},
	}
}
