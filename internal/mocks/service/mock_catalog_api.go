package service

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockCatalogAPI is a mock type for the CatalogAPI type
type MockCatalogAPI struct {
	mock.Mock
}

type MockCatalogAPI_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCatalogAPI) EXPECT() *MockCatalogAPI_Expecter {
	return &MockCatalogAPI_Expecter{mock: &_m.Mock}
}

// ListProducts provides a mock function with given fields: ctx, filter
func (_m *MockCatalogAPI) ListProducts(ctx context.Context, filter entity.ProductFilter) (*entity.Page[entity.Product], error) {
	ret := _m.Called(ctx, filter)
	return get[*entity.Page[entity.Product]](ret, 0), ret.Error(1)
}

// MockCatalogAPI_ListProducts_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListProducts'
type MockCatalogAPI_ListProducts_Call struct {
	*mock.Call
}

// ListProducts is a helper method to define mock.On call
func (_e *MockCatalogAPI_Expecter) ListProducts(ctx interface{}, filter interface{}) *MockCatalogAPI_ListProducts_Call {
	return &MockCatalogAPI_ListProducts_Call{Call: _e.mock.On("ListProducts", ctx, filter)}
}

func (_c *MockCatalogAPI_ListProducts_Call) Run(run func(ctx context.Context, filter entity.ProductFilter)) *MockCatalogAPI_ListProducts_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.ProductFilter))
	})

	return _c
}

func (_c *MockCatalogAPI_ListProducts_Call) Return(_a0 *entity.Page[entity.Product], _a1 error) *MockCatalogAPI_ListProducts_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// GetProduct provides a mock function with given fields: ctx, id
func (_m *MockCatalogAPI) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	ret := _m.Called(ctx, id)
	return get[*entity.Product](ret, 0), ret.Error(1)
}

// MockCatalogAPI_GetProduct_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetProduct'
type MockCatalogAPI_GetProduct_Call struct {
	*mock.Call
}

// GetProduct is a helper method to define mock.On call
func (_e *MockCatalogAPI_Expecter) GetProduct(ctx interface{}, id interface{}) *MockCatalogAPI_GetProduct_Call {
	return &MockCatalogAPI_GetProduct_Call{Call: _e.mock.On("GetProduct", ctx, id)}
}

func (_c *MockCatalogAPI_GetProduct_Call) Run(run func(ctx context.Context, id int64)) *MockCatalogAPI_GetProduct_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})

	return _c
}

func (_c *MockCatalogAPI_GetProduct_Call) Return(_a0 *entity.Product, _a1 error) *MockCatalogAPI_GetProduct_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// CreateProduct provides a mock function with given fields: ctx, accessToken, input, images
func (_m *MockCatalogAPI) CreateProduct(ctx context.Context, accessToken string, input entity.ProductInput, images []entity.Upload) (*entity.Product, error) {
	ret := _m.Called(ctx, accessToken, input, images)
	return get[*entity.Product](ret, 0), ret.Error(1)
}

// MockCatalogAPI_CreateProduct_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateProduct'
type MockCatalogAPI_CreateProduct_Call struct {
	*mock.Call
}

// CreateProduct is a helper method to define mock.On call
func (_e *MockCatalogAPI_Expecter) CreateProduct(ctx interface{}, accessToken interface{}, input interface{}, images interface{}) *MockCatalogAPI_CreateProduct_Call {
	return &MockCatalogAPI_CreateProduct_Call{Call: _e.mock.On("CreateProduct", ctx, accessToken, input, images)}
}

func (_c *MockCatalogAPI_CreateProduct_Call) Run(run func(ctx context.Context, accessToken string, input entity.ProductInput, images []entity.Upload)) *MockCatalogAPI_CreateProduct_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(entity.ProductInput), args[3].([]entity.Upload))
	})

	return _c
}

func (_c *MockCatalogAPI_CreateProduct_Call) Return(_a0 *entity.Product, _a1 error) *MockCatalogAPI_CreateProduct_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// UpdateProduct provides a mock function with given fields: ctx, accessToken, id, input, images
func (_m *MockCatalogAPI) UpdateProduct(ctx context.Context, accessToken string, id int64, input entity.ProductInput, images []entity.Upload) (*entity.Product, error) {
	ret := _m.Called(ctx, accessToken, id, input, images)
	return get[*entity.Product](ret, 0), ret.Error(1)
}

// MockCatalogAPI_UpdateProduct_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateProduct'
type MockCatalogAPI_UpdateProduct_Call struct {
	*mock.Call
}

// UpdateProduct is a helper method to define mock.On call
func (_e *MockCatalogAPI_Expecter) UpdateProduct(ctx interface{}, accessToken interface{}, id interface{}, input interface{}, images interface{}) *MockCatalogAPI_UpdateProduct_Call {
	return &MockCatalogAPI_UpdateProduct_Call{Call: _e.mock.On("UpdateProduct", ctx, accessToken, id, input, images)}
}

func (_c *MockCatalogAPI_UpdateProduct_Call) Run(run func(ctx context.Context, accessToken string, id int64, input entity.ProductInput, images []entity.Upload)) *MockCatalogAPI_UpdateProduct_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int64), args[3].(entity.ProductInput), args[4].([]entity.Upload))
	})

	return _c
}

func (_c *MockCatalogAPI_UpdateProduct_Call) Return(_a0 *entity.Product, _a1 error) *MockCatalogAPI_UpdateProduct_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// DeleteProduct provides a mock function with given fields: ctx, accessToken, id
func (_m *MockCatalogAPI) DeleteProduct(ctx context.Context, accessToken string, id int64) error {
	ret := _m.Called(ctx, accessToken, id)
	return ret.Error(0)
}

// MockCatalogAPI_DeleteProduct_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteProduct'
type MockCatalogAPI_DeleteProduct_Call struct {
	*mock.Call
}

// DeleteProduct is a helper method to define mock.On call
func (_e *MockCatalogAPI_Expecter) DeleteProduct(ctx interface{}, accessToken interface{}, id interface{}) *MockCatalogAPI_DeleteProduct_Call {
	return &MockCatalogAPI_DeleteProduct_Call{Call: _e.mock.On("DeleteProduct", ctx, accessToken, id)}
}

func (_c *MockCatalogAPI_DeleteProduct_Call) Run(run func(ctx context.Context, accessToken string, id int64)) *MockCatalogAPI_DeleteProduct_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int64))
	})

	return _c
}

func (_c *MockCatalogAPI_DeleteProduct_Call) Return(_a0 error) *MockCatalogAPI_DeleteProduct_Call {
	_c.Call.Return(_a0)

	return _c
}

// ListCategories provides a mock function with given fields: ctx
func (_m *MockCatalogAPI) ListCategories(ctx context.Context) ([]entity.Category, error) {
	ret := _m.Called(ctx)
	return get[[]entity.Category](ret, 0), ret.Error(1)
}

// MockCatalogAPI_ListCategories_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListCategories'
type MockCatalogAPI_ListCategories_Call struct {
	*mock.Call
}

// ListCategories is a helper method to define mock.On call
func (_e *MockCatalogAPI_Expecter) ListCategories(ctx interface{}) *MockCatalogAPI_ListCategories_Call {
	return &MockCatalogAPI_ListCategories_Call{Call: _e.mock.On("ListCategories", ctx)}
}

func (_c *MockCatalogAPI_ListCategories_Call) Run(run func(ctx context.Context)) *MockCatalogAPI_ListCategories_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})

	return _c
}

func (_c *MockCatalogAPI_ListCategories_Call) Return(_a0 []entity.Category, _a1 error) *MockCatalogAPI_ListCategories_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// ListFeaturedProducts provides a mock function with given fields: ctx
func (_m *MockCatalogAPI) ListFeaturedProducts(ctx context.Context) ([]entity.Product, error) {
	ret := _m.Called(ctx)
	return get[[]entity.Product](ret, 0), ret.Error(1)
}

// MockCatalogAPI_ListFeaturedProducts_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListFeaturedProducts'
type MockCatalogAPI_ListFeaturedProducts_Call struct {
	*mock.Call
}

// ListFeaturedProducts is a helper method to define mock.On call
func (_e *MockCatalogAPI_Expecter) ListFeaturedProducts(ctx interface{}) *MockCatalogAPI_ListFeaturedProducts_Call {
	return &MockCatalogAPI_ListFeaturedProducts_Call{Call: _e.mock.On("ListFeaturedProducts", ctx)}
}

func (_c *MockCatalogAPI_ListFeaturedProducts_Call) Run(run func(ctx context.Context)) *MockCatalogAPI_ListFeaturedProducts_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})

	return _c
}

func (_c *MockCatalogAPI_ListFeaturedProducts_Call) Return(_a0 []entity.Product, _a1 error) *MockCatalogAPI_ListFeaturedProducts_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// ListDailyEssentials provides a mock function with given fields: ctx
func (_m *MockCatalogAPI) ListDailyEssentials(ctx context.Context) ([]entity.Product, error) {
	ret := _m.Called(ctx)
	return get[[]entity.Product](ret, 0), ret.Error(1)
}

// MockCatalogAPI_ListDailyEssentials_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListDailyEssentials'
type MockCatalogAPI_ListDailyEssentials_Call struct {
	*mock.Call
}

// ListDailyEssentials is a helper method to define mock.On call
func (_e *MockCatalogAPI_Expecter) ListDailyEssentials(ctx interface{}) *MockCatalogAPI_ListDailyEssentials_Call {
	return &MockCatalogAPI_ListDailyEssentials_Call{Call: _e.mock.On("ListDailyEssentials", ctx)}
}

func (_c *MockCatalogAPI_ListDailyEssentials_Call) Run(run func(ctx context.Context)) *MockCatalogAPI_ListDailyEssentials_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})

	return _c
}

func (_c *MockCatalogAPI_ListDailyEssentials_Call) Return(_a0 []entity.Product, _a1 error) *MockCatalogAPI_ListDailyEssentials_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// ListBrands provides a mock function with given fields: ctx
func (_m *MockCatalogAPI) ListBrands(ctx context.Context) ([]entity.Brand, error) {
	ret := _m.Called(ctx)
	return get[[]entity.Brand](ret, 0), ret.Error(1)
}

// MockCatalogAPI_ListBrands_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListBrands'
type MockCatalogAPI_ListBrands_Call struct {
	*mock.Call
}

// ListBrands is a helper method to define mock.On call
func (_e *MockCatalogAPI_Expecter) ListBrands(ctx interface{}) *MockCatalogAPI_ListBrands_Call {
	return &MockCatalogAPI_ListBrands_Call{Call: _e.mock.On("ListBrands", ctx)}
}

func (_c *MockCatalogAPI_ListBrands_Call) Run(run func(ctx context.Context)) *MockCatalogAPI_ListBrands_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})

	return _c
}

func (_c *MockCatalogAPI_ListBrands_Call) Return(_a0 []entity.Brand, _a1 error) *MockCatalogAPI_ListBrands_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// ListFeaturedBrands provides a mock function with given fields: ctx
func (_m *MockCatalogAPI) ListFeaturedBrands(ctx context.Context) ([]entity.Brand, error) {
	ret := _m.Called(ctx)
	return get[[]entity.Brand](ret, 0), ret.Error(1)
}

// MockCatalogAPI_ListFeaturedBrands_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListFeaturedBrands'
type MockCatalogAPI_ListFeaturedBrands_Call struct {
	*mock.Call
}

// ListFeaturedBrands is a helper method to define mock.On call
func (_e *MockCatalogAPI_Expecter) ListFeaturedBrands(ctx interface{}) *MockCatalogAPI_ListFeaturedBrands_Call {
	return &MockCatalogAPI_ListFeaturedBrands_Call{Call: _e.mock.On("ListFeaturedBrands", ctx)}
}

func (_c *MockCatalogAPI_ListFeaturedBrands_Call) Run(run func(ctx context.Context)) *MockCatalogAPI_ListFeaturedBrands_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})

	return _c
}

func (_c *MockCatalogAPI_ListFeaturedBrands_Call) Return(_a0 []entity.Brand, _a1 error) *MockCatalogAPI_ListFeaturedBrands_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// ListProductReviews provides a mock function with given fields: ctx, productID
func (_m *MockCatalogAPI) ListProductReviews(ctx context.Context, productID int64) ([]entity.Review, error) {
	ret := _m.Called(ctx, productID)
	return get[[]entity.Review](ret, 0), ret.Error(1)
}

// MockCatalogAPI_ListProductReviews_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListProductReviews'
type MockCatalogAPI_ListProductReviews_Call struct {
	*mock.Call
}

// ListProductReviews is a helper method to define mock.On call
func (_e *MockCatalogAPI_Expecter) ListProductReviews(ctx interface{}, productID interface{}) *MockCatalogAPI_ListProductReviews_Call {
	return &MockCatalogAPI_ListProductReviews_Call{Call: _e.mock.On("ListProductReviews", ctx, productID)}
}

func (_c *MockCatalogAPI_ListProductReviews_Call) Run(run func(ctx context.Context, productID int64)) *MockCatalogAPI_ListProductReviews_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})

	return _c
}

func (_c *MockCatalogAPI_ListProductReviews_Call) Return(_a0 []entity.Review, _a1 error) *MockCatalogAPI_ListProductReviews_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// CreateProductReview provides a mock function with given fields: ctx, accessToken, productID, input
func (_m *MockCatalogAPI) CreateProductReview(ctx context.Context, accessToken string, productID int64, input entity.ReviewInput) (*entity.Review, error) {
	ret := _m.Called(ctx, accessToken, productID, input)
	return get[*entity.Review](ret, 0), ret.Error(1)
}

// MockCatalogAPI_CreateProductReview_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateProductReview'
type MockCatalogAPI_CreateProductReview_Call struct {
	*mock.Call
}

// CreateProductReview is a helper method to define mock.On call
func (_e *MockCatalogAPI_Expecter) CreateProductReview(ctx interface{}, accessToken interface{}, productID interface{}, input interface{}) *MockCatalogAPI_CreateProductReview_Call {
	return &MockCatalogAPI_CreateProductReview_Call{Call: _e.mock.On("CreateProductReview", ctx, accessToken, productID, input)}
}

func (_c *MockCatalogAPI_CreateProductReview_Call) Run(run func(ctx context.Context, accessToken string, productID int64, input entity.ReviewInput)) *MockCatalogAPI_CreateProductReview_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int64), args[3].(entity.ReviewInput))
	})

	return _c
}

func (_c *MockCatalogAPI_CreateProductReview_Call) Return(_a0 *entity.Review, _a1 error) *MockCatalogAPI_CreateProductReview_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// NewMockCatalogAPI creates a new instance of MockCatalogAPI. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCatalogAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCatalogAPI {
	m := &MockCatalogAPI{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
