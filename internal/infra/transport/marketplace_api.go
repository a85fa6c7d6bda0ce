package transport

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

type marketplaceAPI struct {
	client *Client
}

// NewMarketplaceAPI creates the /shops endpoints client
func NewMarketplaceAPI(client *Client) service.MarketplaceAPI {
	return &marketplaceAPI{client: client}
}

func shopQuery(filter entity.ShopFilter) url.Values {
	q := url.Values{}
	if filter.Page > 0 {
		q.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	if filter.Ordering != "" {
		q.Set("ordering", filter.Ordering)
	}

	return q
}

func (a *marketplaceAPI) ListShops(ctx context.Context, filter entity.ShopFilter) (*entity.Page[entity.Shop], error) {
	var page entity.Page[entity.Shop]
	if err := a.client.do(ctx, call{method: http.MethodGet, path: "/shops/", query: shopQuery(filter)}, &page); err != nil {
		return nil, err
	}
	fillCurrentPage(&page, filter.Page)

	return &page, nil
}

func (a *marketplaceAPI) GetShop(ctx context.Context, id int64) (*entity.Shop, error) {
	var shop entity.Shop
	if err := a.client.do(ctx, call{method: http.MethodGet, path: fmt.Sprintf("/shops/%d/", id)}, &shop); err != nil {
		return nil, err
	}

	return &shop, nil
}

func (a *marketplaceAPI) CreateShop(ctx context.Context, accessToken string, input entity.ShopInput, images []entity.Upload) (*entity.Shop, error) {
	return a.sendShop(ctx, http.MethodPost, "/shops/", accessToken, input, images)
}

func (a *marketplaceAPI) UpdateShop(ctx context.Context, accessToken string, id int64, input entity.ShopInput, images []entity.Upload) (*entity.Shop, error) {
	return a.sendShop(ctx, http.MethodPatch, fmt.Sprintf("/shops/%d/", id), accessToken, input, images)
}

func (a *marketplaceAPI) sendShop(ctx context.Context, method, path, accessToken string, input entity.ShopInput, images []entity.Upload) (*entity.Shop, error) {
	body, contentType, err := shopForm(input, images).finish()
	if err != nil {
		return nil, err
	}

	var shop entity.Shop
	cl := call{method: method, path: path, accessToken: accessToken, body: body, contentType: contentType}
	if err := a.client.do(ctx, cl, &shop); err != nil {
		return nil, err
	}

	return &shop, nil
}

func (a *marketplaceAPI) DeleteShop(ctx context.Context, accessToken string, id int64) error {
	return a.client.do(ctx, call{method: http.MethodDelete, path: fmt.Sprintf("/shops/%d/", id), accessToken: accessToken}, nil)
}

func (a *marketplaceAPI) ListShopReviews(ctx context.Context, shopID int64) ([]entity.Review, error) {
	return getList[entity.Review](ctx, a.client, call{method: http.MethodGet, path: fmt.Sprintf("/shops/%d/reviews/", shopID)})
}

func (a *marketplaceAPI) CreateShopReview(ctx context.Context, accessToken string, shopID int64, input entity.ReviewInput) (*entity.Review, error) {
	cl, err := jsonCall(http.MethodPost, fmt.Sprintf("/shops/%d/reviews/create/", shopID), accessToken, input)
	if err != nil {
		return nil, err
	}

	var review entity.Review
	if err := a.client.do(ctx, cl, &review); err != nil {
		return nil, err
	}

	return &review, nil
}
