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

type catalogAPI struct {
	client *Client
}

// NewCatalogAPI creates the /products endpoints client
func NewCatalogAPI(client *Client) service.CatalogAPI {
	return &catalogAPI{client: client}
}

func productQuery(filter entity.ProductFilter) url.Values {
	q := url.Values{}
	if filter.Page > 0 {
		q.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	if filter.Category > 0 {
		q.Set("category", strconv.FormatInt(filter.Category, 10))
	}
	if filter.Brand > 0 {
		q.Set("brand", strconv.FormatInt(filter.Brand, 10))
	}
	if filter.Condition != "" {
		q.Set("condition", string(filter.Condition))
	}
	if filter.Ordering != "" {
		q.Set("ordering", filter.Ordering)
	}
	if filter.IsAvailable != nil {
		q.Set("is_available", strconv.FormatBool(*filter.IsAvailable))
	}
	if filter.IsNegotiable != nil {
		q.Set("is_negotiable", strconv.FormatBool(*filter.IsNegotiable))
	}

	return q
}

func (a *catalogAPI) ListProducts(ctx context.Context, filter entity.ProductFilter) (*entity.Page[entity.Product], error) {
	var page entity.Page[entity.Product]
	if err := a.client.do(ctx, call{method: http.MethodGet, path: "/products/", query: productQuery(filter)}, &page); err != nil {
		return nil, err
	}
	fillCurrentPage(&page, filter.Page)

	return &page, nil
}

func (a *catalogAPI) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	var product entity.Product
	if err := a.client.do(ctx, call{method: http.MethodGet, path: fmt.Sprintf("/products/%d/", id)}, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (a *catalogAPI) CreateProduct(ctx context.Context, accessToken string, input entity.ProductInput, images []entity.Upload) (*entity.Product, error) {
	return a.sendProduct(ctx, http.MethodPost, "/products/", accessToken, input, images)
}

func (a *catalogAPI) UpdateProduct(ctx context.Context, accessToken string, id int64, input entity.ProductInput, images []entity.Upload) (*entity.Product, error) {
	return a.sendProduct(ctx, http.MethodPatch, fmt.Sprintf("/products/%d/", id), accessToken, input, images)
}

func (a *catalogAPI) sendProduct(ctx context.Context, method, path, accessToken string, input entity.ProductInput, images []entity.Upload) (*entity.Product, error) {
	body, contentType, err := productForm(input, images).finish()
	if err != nil {
		return nil, err
	}

	var product entity.Product
	cl := call{method: method, path: path, accessToken: accessToken, body: body, contentType: contentType}
	if err := a.client.do(ctx, cl, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (a *catalogAPI) DeleteProduct(ctx context.Context, accessToken string, id int64) error {
	return a.client.do(ctx, call{method: http.MethodDelete, path: fmt.Sprintf("/products/%d/", id), accessToken: accessToken}, nil)
}

func (a *catalogAPI) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return getList[entity.Category](ctx, a.client, call{method: http.MethodGet, path: "/products/categories/"})
}

func (a *catalogAPI) ListFeaturedProducts(ctx context.Context) ([]entity.Product, error) {
	return getList[entity.Product](ctx, a.client, call{method: http.MethodGet, path: "/products/featured/"})
}

func (a *catalogAPI) ListDailyEssentials(ctx context.Context) ([]entity.Product, error) {
	return getList[entity.Product](ctx, a.client, call{method: http.MethodGet, path: "/products/daily-essentials/"})
}

func (a *catalogAPI) ListBrands(ctx context.Context) ([]entity.Brand, error) {
	return getList[entity.Brand](ctx, a.client, call{method: http.MethodGet, path: "/products/brands/"})
}

func (a *catalogAPI) ListFeaturedBrands(ctx context.Context) ([]entity.Brand, error) {
	return getList[entity.Brand](ctx, a.client, call{method: http.MethodGet, path: "/products/brands/featured/"})
}

func (a *catalogAPI) ListProductReviews(ctx context.Context, productID int64) ([]entity.Review, error) {
	return getList[entity.Review](ctx, a.client, call{method: http.MethodGet, path: fmt.Sprintf("/products/%d/reviews/", productID)})
}

func (a *catalogAPI) CreateProductReview(ctx context.Context, accessToken string, productID int64, input entity.ReviewInput) (*entity.Review, error) {
	cl, err := jsonCall(http.MethodPost, fmt.Sprintf("/products/%d/reviews/create/", productID), accessToken, input)
	if err != nil {
		return nil, err
	}

	var review entity.Review
	if err := a.client.do(ctx, cl, &review); err != nil {
		return nil, err
	}

	return &review, nil
}

// fillCurrentPage defaults current_page to the requested page when the server omits it.
func fillCurrentPage[T any](page *entity.Page[T], requested int) {
	if page.CurrentPage > 0 {
		return
	}
	page.CurrentPage = max(requested, 1)
}
