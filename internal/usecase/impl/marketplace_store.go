package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

type marketplaceStore struct {
	*baseStore[usecase.MarketplaceState]

	api    service.MarketplaceAPI
	holder usecase.CredentialHolder
	opts   StoreOptions
}

// NewMarketplaceStore creates the shop store.
func NewMarketplaceStore(
	api service.MarketplaceAPI,
	holder usecase.CredentialHolder,
	opts StoreOptions,
	logger *slog.Logger,
) usecase.MarketplaceStore {
	return &marketplaceStore{
		baseStore: newBaseStore("marketplace", usecase.MarketplaceState{}, cloneMarketplaceState, opts.DiscardStaleResults, logger),
		api:       api,
		holder:    holder,
		opts:      opts,
	}
}

func shopKey(s entity.Shop) int64 { return s.ID }

func (s *marketplaceStore) List(ctx context.Context, filter entity.ShopFilter) error {
	return run(ctx, s.baseStore, usecase.OpList, true, "Failed to fetch shops",
		func(ctx context.Context) (*entity.Page[entity.Shop], error) {
			return s.api.ListShops(ctx, filter)
		},
		func(state *usecase.MarketplaceState, page *entity.Page[entity.Shop]) {
			state.Shops = page.Results
			state.Count = page.Count
			state.CurrentPage = page.CurrentPage
			state.TotalPages = s.opts.totalPages(page.Count)
		},
	)
}

func (s *marketplaceStore) GetByID(ctx context.Context, id int64) error {
	return run(ctx, s.baseStore, usecase.OpGetByID, true, "Failed to fetch shop",
		func(ctx context.Context) (*entity.Shop, error) {
			return s.api.GetShop(ctx, id)
		},
		func(state *usecase.MarketplaceState, shop *entity.Shop) {
			state.Current = shop
		},
	)
}

func (s *marketplaceStore) Create(ctx context.Context, input entity.ShopInput, images []entity.Upload) error {
	return run(ctx, s.baseStore, usecase.OpCreate, false, "Failed to create shop",
		func(ctx context.Context) (*entity.Shop, error) {
			if err := validateInput(input); err != nil {
				return nil, err
			}

			return s.api.CreateShop(ctx, accessToken(s.holder), input, images)
		},
		func(state *usecase.MarketplaceState, shop *entity.Shop) {
			state.Shops = prepend(state.Shops, *shop, shopKey)
		},
	)
}

func (s *marketplaceStore) Update(ctx context.Context, id int64, input entity.ShopInput, images []entity.Upload) error {
	return run(ctx, s.baseStore, usecase.OpUpdate, false, "Failed to update shop",
		func(ctx context.Context) (*entity.Shop, error) {
			if err := validateInput(input); err != nil {
				return nil, err
			}

			return s.api.UpdateShop(ctx, accessToken(s.holder), id, input, images)
		},
		func(state *usecase.MarketplaceState, shop *entity.Shop) {
			state.Shops = replace(state.Shops, *shop, shopKey)
			state.Current = shop
		},
	)
}

func (s *marketplaceStore) Remove(ctx context.Context, id int64) error {
	return run(ctx, s.baseStore, usecase.OpRemove, false, "Failed to delete shop",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.api.DeleteShop(ctx, accessToken(s.holder), id)
		},
		func(state *usecase.MarketplaceState, _ struct{}) {
			state.Shops = without(state.Shops, id, shopKey)
			state.Current = nil
		},
	)
}

func (s *marketplaceStore) ListReviews(ctx context.Context, shopID int64) error {
	return run(ctx, s.baseStore, usecase.OpListReviews, true, "Failed to fetch reviews",
		func(ctx context.Context) ([]entity.Review, error) {
			return s.api.ListShopReviews(ctx, shopID)
		},
		func(state *usecase.MarketplaceState, reviews []entity.Review) {
			state.Reviews = reviews
		},
	)
}

func (s *marketplaceStore) CreateReview(ctx context.Context, shopID int64, input entity.ReviewInput) error {
	return run(ctx, s.baseStore, usecase.OpCreateReview, false, "Failed to create review",
		func(ctx context.Context) (*entity.Review, error) {
			if err := validateInput(input); err != nil {
				return nil, err
			}

			return s.api.CreateShopReview(ctx, accessToken(s.holder), shopID, input)
		},
		func(state *usecase.MarketplaceState, r *entity.Review) {
			state.Reviews = prepend(state.Reviews, *r, reviewKey)
		},
	)
}

func (s *marketplaceStore) ClearCurrent() {
	s.update(func(state *usecase.MarketplaceState) {
		state.Current = nil
		state.Reviews = nil
	})
}
