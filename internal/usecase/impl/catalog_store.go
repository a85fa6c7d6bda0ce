package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

type catalogStore struct {
	*baseStore[usecase.CatalogState]

	api    service.CatalogAPI
	holder usecase.CredentialHolder
	opts   StoreOptions
}

// NewCatalogStore creates the product store.
func NewCatalogStore(
	api service.CatalogAPI,
	holder usecase.CredentialHolder,
	opts StoreOptions,
	logger *slog.Logger,
) usecase.CatalogStore {
	return &catalogStore{
		baseStore: newBaseStore("catalog", usecase.CatalogState{}, cloneCatalogState, opts.DiscardStaleResults, logger),
		api:       api,
		holder:    holder,
		opts:      opts,
	}
}

func productKey(p entity.Product) int64 { return p.ID }

func reviewKey(r entity.Review) int64 { return r.ID }

func (s *catalogStore) List(ctx context.Context, filter entity.ProductFilter) error {
	return run(ctx, s.baseStore, usecase.OpList, true, "Failed to fetch products",
		func(ctx context.Context) (*entity.Page[entity.Product], error) {
			return s.api.ListProducts(ctx, filter)
		},
		func(state *usecase.CatalogState, page *entity.Page[entity.Product]) {
			state.Products = page.Results
			state.Count = page.Count
			state.CurrentPage = page.CurrentPage
			state.TotalPages = s.opts.totalPages(page.Count)
		},
	)
}

func (s *catalogStore) GetByID(ctx context.Context, id int64) error {
	return run(ctx, s.baseStore, usecase.OpGetByID, true, "Failed to fetch product",
		func(ctx context.Context) (*entity.Product, error) {
			return s.api.GetProduct(ctx, id)
		},
		func(state *usecase.CatalogState, p *entity.Product) {
			state.Current = p
		},
	)
}

func (s *catalogStore) Create(ctx context.Context, input entity.ProductInput, images []entity.Upload) error {
	return run(ctx, s.baseStore, usecase.OpCreate, false, "Failed to create product",
		func(ctx context.Context) (*entity.Product, error) {
			if err := validateInput(input); err != nil {
				return nil, err
			}

			return s.api.CreateProduct(ctx, accessToken(s.holder), input, images)
		},
		func(state *usecase.CatalogState, p *entity.Product) {
			state.Products = prepend(state.Products, *p, productKey)
		},
	)
}

func (s *catalogStore) Update(ctx context.Context, id int64, input entity.ProductInput, images []entity.Upload) error {
	return run(ctx, s.baseStore, usecase.OpUpdate, false, "Failed to update product",
		func(ctx context.Context) (*entity.Product, error) {
			if err := validateInput(input); err != nil {
				return nil, err
			}

			return s.api.UpdateProduct(ctx, accessToken(s.holder), id, input, images)
		},
		func(state *usecase.CatalogState, p *entity.Product) {
			state.Products = replace(state.Products, *p, productKey)
			state.Current = p
		},
	)
}

func (s *catalogStore) Remove(ctx context.Context, id int64) error {
	return run(ctx, s.baseStore, usecase.OpRemove, false, "Failed to delete product",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.api.DeleteProduct(ctx, accessToken(s.holder), id)
		},
		func(state *usecase.CatalogState, _ struct{}) {
			state.Products = without(state.Products, id, productKey)
			state.Current = nil
		},
	)
}

func (s *catalogStore) ListCategories(ctx context.Context) error {
	return run(ctx, s.baseStore, usecase.OpListCategories, true, "Failed to fetch categories",
		s.api.ListCategories,
		func(state *usecase.CatalogState, categories []entity.Category) {
			state.Categories = categories
		},
	)
}

func (s *catalogStore) ListFeatured(ctx context.Context) error {
	return run(ctx, s.baseStore, usecase.OpListFeatured, true, "Failed to fetch featured products",
		s.api.ListFeaturedProducts,
		func(state *usecase.CatalogState, products []entity.Product) {
			state.Featured = products
		},
	)
}

func (s *catalogStore) ListDailyEssentials(ctx context.Context) error {
	return run(ctx, s.baseStore, usecase.OpListDailyEssentials, true, "Failed to fetch daily essentials",
		s.api.ListDailyEssentials,
		func(state *usecase.CatalogState, products []entity.Product) {
			state.DailyEssentials = products
		},
	)
}

func (s *catalogStore) ListBrands(ctx context.Context) error {
	return run(ctx, s.baseStore, usecase.OpListBrands, true, "Failed to fetch brands",
		s.api.ListBrands,
		func(state *usecase.CatalogState, brands []entity.Brand) {
			state.Brands = brands
		},
	)
}

func (s *catalogStore) ListFeaturedBrands(ctx context.Context) error {
	return run(ctx, s.baseStore, usecase.OpListFeaturedBrands, true, "Failed to fetch featured brands",
		s.api.ListFeaturedBrands,
		func(state *usecase.CatalogState, brands []entity.Brand) {
			state.FeaturedBrands = brands
		},
	)
}

func (s *catalogStore) ListReviews(ctx context.Context, productID int64) error {
	return run(ctx, s.baseStore, usecase.OpListReviews, true, "Failed to fetch reviews",
		func(ctx context.Context) ([]entity.Review, error) {
			return s.api.ListProductReviews(ctx, productID)
		},
		func(state *usecase.CatalogState, reviews []entity.Review) {
			state.Reviews = reviews
		},
	)
}

func (s *catalogStore) CreateReview(ctx context.Context, productID int64, input entity.ReviewInput) error {
	return run(ctx, s.baseStore, usecase.OpCreateReview, false, "Failed to create review",
		func(ctx context.Context) (*entity.Review, error) {
			if err := validateInput(input); err != nil {
				return nil, err
			}

			return s.api.CreateProductReview(ctx, accessToken(s.holder), productID, input)
		},
		func(state *usecase.CatalogState, r *entity.Review) {
			state.Reviews = prepend(state.Reviews, *r, reviewKey)
		},
	)
}

func (s *catalogStore) ClearCurrent() {
	s.update(func(state *usecase.CatalogState) {
		state.Current = nil
		state.Reviews = nil
	})
}
