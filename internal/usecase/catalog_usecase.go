package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogState is the product slice.
type CatalogState struct {
	Products        []entity.Product  `json:"products"`
	Count           int               `json:"count"`
	CurrentPage     int               `json:"currentPage"`
	TotalPages      int               `json:"totalPages"`
	Current         *entity.Product   `json:"currentProduct"`
	Reviews         []entity.Review   `json:"reviews"`
	Featured        []entity.Product  `json:"featuredProducts"`
	DailyEssentials []entity.Product  `json:"dailyEssentials"`
	Categories      []entity.Category `json:"categories"`
	Brands          []entity.Brand    `json:"brands"`
	FeaturedBrands  []entity.Brand    `json:"featuredBrands"`
}

// CatalogStore lists, shows and edits products.
type CatalogStore interface {
	Observable[CatalogState]

	List(ctx context.Context, filter entity.ProductFilter) error
	GetByID(ctx context.Context, id int64) error
	// Create prepends the created product to Products.
	Create(ctx context.Context, input entity.ProductInput, images []entity.Upload) error
	// Update replaces the product in place and sets it as Current.
	Update(ctx context.Context, id int64, input entity.ProductInput, images []entity.Upload) error
	// Remove drops the product from Products and clears Current.
	Remove(ctx context.Context, id int64) error
	ListCategories(ctx context.Context) error
	ListFeatured(ctx context.Context) error
	ListDailyEssentials(ctx context.Context) error
	ListBrands(ctx context.Context) error
	ListFeaturedBrands(ctx context.Context) error
	ListReviews(ctx context.Context, productID int64) error
	CreateReview(ctx context.Context, productID int64, input entity.ReviewInput) error
	// ClearCurrent empties the detail slot and its reviews.
	ClearCurrent()
}
