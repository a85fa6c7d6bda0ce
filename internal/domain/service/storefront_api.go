// Package service defines the contracts of external collaborators.
package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// Every method issues exactly one request. accessToken may be empty, in which
// case no Authorization header is sent and the server decides.

// SessionAPI covers the /users endpoints.
type SessionAPI interface {
	ObtainToken(ctx context.Context, input entity.SignIn) (*entity.Credential, error)
	Register(ctx context.Context, input entity.Registration) (*entity.User, error)
	GetProfile(ctx context.Context, accessToken string) (*entity.User, error)
	// UpdateProfile returns the response object undecoded so callers can merge only the returned keys.
	UpdateProfile(ctx context.Context, accessToken string, fields map[string]any) (map[string]any, error)
	RevokeToken(ctx context.Context, accessToken, refreshToken string) error
}

// CatalogAPI covers the /products endpoints.
type CatalogAPI interface {
	ListProducts(ctx context.Context, filter entity.ProductFilter) (*entity.Page[entity.Product], error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
	CreateProduct(ctx context.Context, accessToken string, input entity.ProductInput, images []entity.Upload) (*entity.Product, error)
	UpdateProduct(ctx context.Context, accessToken string, id int64, input entity.ProductInput, images []entity.Upload) (*entity.Product, error)
	DeleteProduct(ctx context.Context, accessToken string, id int64) error
	ListCategories(ctx context.Context) ([]entity.Category, error)
	ListFeaturedProducts(ctx context.Context) ([]entity.Product, error)
	ListDailyEssentials(ctx context.Context) ([]entity.Product, error)
	ListBrands(ctx context.Context) ([]entity.Brand, error)
	ListFeaturedBrands(ctx context.Context) ([]entity.Brand, error)
	ListProductReviews(ctx context.Context, productID int64) ([]entity.Review, error)
	CreateProductReview(ctx context.Context, accessToken string, productID int64, input entity.ReviewInput) (*entity.Review, error)
}

// MarketplaceAPI covers the /shops endpoints.
type MarketplaceAPI interface {
	ListShops(ctx context.Context, filter entity.ShopFilter) (*entity.Page[entity.Shop], error)
	GetShop(ctx context.Context, id int64) (*entity.Shop, error)
	CreateShop(ctx context.Context, accessToken string, input entity.ShopInput, images []entity.Upload) (*entity.Shop, error)
	UpdateShop(ctx context.Context, accessToken string, id int64, input entity.ShopInput, images []entity.Upload) (*entity.Shop, error)
	DeleteShop(ctx context.Context, accessToken string, id int64) error
	ListShopReviews(ctx context.Context, shopID int64) ([]entity.Review, error)
	CreateShopReview(ctx context.Context, accessToken string, shopID int64, input entity.ReviewInput) (*entity.Review, error)
}

// MessagingAPI covers the /chat endpoints.
type MessagingAPI interface {
	ListRooms(ctx context.Context, accessToken string) ([]entity.ChatRoom, error)
	GetRoom(ctx context.Context, accessToken string, id int64) (*entity.ChatRoom, error)
	CreateRoom(ctx context.Context, accessToken string, participantID int64) (*entity.ChatRoom, error)
	ListMessages(ctx context.Context, accessToken string, roomID int64) ([]entity.Message, error)
	SendMessage(ctx context.Context, accessToken string, roomID int64, content string) (*entity.Message, error)
}
