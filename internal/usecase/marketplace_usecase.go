package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// MarketplaceState is the shop slice.
type MarketplaceState struct {
	Shops       []entity.Shop   `json:"shops"`
	Count       int             `json:"count"`
	CurrentPage int             `json:"currentPage"`
	TotalPages  int             `json:"totalPages"`
	Current     *entity.Shop    `json:"currentShop"`
	Reviews     []entity.Review `json:"reviews"`
}

// MarketplaceStore lists, shows and edits shops with the same list contract as CatalogStore.
type MarketplaceStore interface {
	Observable[MarketplaceState]

	List(ctx context.Context, filter entity.ShopFilter) error
	GetByID(ctx context.Context, id int64) error
	Create(ctx context.Context, input entity.ShopInput, images []entity.Upload) error
	Update(ctx context.Context, id int64, input entity.ShopInput, images []entity.Upload) error
	Remove(ctx context.Context, id int64) error
	ListReviews(ctx context.Context, shopID int64) error
	CreateReview(ctx context.Context, shopID int64, input entity.ReviewInput) error
	ClearCurrent()
}
