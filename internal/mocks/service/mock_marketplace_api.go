package service

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockMarketplaceAPI is a mock type for the MarketplaceAPI type
type MockMarketplaceAPI struct {
	mock.Mock
}

type MockMarketplaceAPI_Expecter struct {
	mock *mock.Mock
}

func (_m *MockMarketplaceAPI) EXPECT() *MockMarketplaceAPI_Expecter {
	return &MockMarketplaceAPI_Expecter{mock: &_m.Mock}
}

// ListShops provides a mock function with given fields: ctx, filter
func (_m *MockMarketplaceAPI) ListShops(ctx context.Context, filter entity.ShopFilter) (*entity.Page[entity.Shop], error) {
	ret := _m.Called(ctx, filter)
	return get[*entity.Page[entity.Shop]](ret, 0), ret.Error(1)
}

// MockMarketplaceAPI_ListShops_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListShops'
type MockMarketplaceAPI_ListShops_Call struct {
	*mock.Call
}

// ListShops is a helper method to define mock.On call
func (_e *MockMarketplaceAPI_Expecter) ListShops(ctx interface{}, filter interface{}) *MockMarketplaceAPI_ListShops_Call {
	return &MockMarketplaceAPI_ListShops_Call{Call: _e.mock.On("ListShops", ctx, filter)}
}

func (_c *MockMarketplaceAPI_ListShops_Call) Run(run func(ctx context.Context, filter entity.ShopFilter)) *MockMarketplaceAPI_ListShops_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.ShopFilter))
	})

	return _c
}

func (_c *MockMarketplaceAPI_ListShops_Call) Return(_a0 *entity.Page[entity.Shop], _a1 error) *MockMarketplaceAPI_ListShops_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// GetShop provides a mock function with given fields: ctx, id
func (_m *MockMarketplaceAPI) GetShop(ctx context.Context, id int64) (*entity.Shop, error) {
	ret := _m.Called(ctx, id)
	return get[*entity.Shop](ret, 0), ret.Error(1)
}

// MockMarketplaceAPI_GetShop_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetShop'
type MockMarketplaceAPI_GetShop_Call struct {
	*mock.Call
}

// GetShop is a helper method to define mock.On call
func (_e *MockMarketplaceAPI_Expecter) GetShop(ctx interface{}, id interface{}) *MockMarketplaceAPI_GetShop_Call {
	return &MockMarketplaceAPI_GetShop_Call{Call: _e.mock.On("GetShop", ctx, id)}
}

func (_c *MockMarketplaceAPI_GetShop_Call) Run(run func(ctx context.Context, id int64)) *MockMarketplaceAPI_GetShop_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})

	return _c
}

func (_c *MockMarketplaceAPI_GetShop_Call) Return(_a0 *entity.Shop, _a1 error) *MockMarketplaceAPI_GetShop_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// CreateShop provides a mock function with given fields: ctx, accessToken, input, images
func (_m *MockMarketplaceAPI) CreateShop(ctx context.Context, accessToken string, input entity.ShopInput, images []entity.Upload) (*entity.Shop, error) {
	ret := _m.Called(ctx, accessToken, input, images)
	return get[*entity.Shop](ret, 0), ret.Error(1)
}

// MockMarketplaceAPI_CreateShop_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateShop'
type MockMarketplaceAPI_CreateShop_Call struct {
	*mock.Call
}

// CreateShop is a helper method to define mock.On call
func (_e *MockMarketplaceAPI_Expecter) CreateShop(ctx interface{}, accessToken interface{}, input interface{}, images interface{}) *MockMarketplaceAPI_CreateShop_Call {
	return &MockMarketplaceAPI_CreateShop_Call{Call: _e.mock.On("CreateShop", ctx, accessToken, input, images)}
}

func (_c *MockMarketplaceAPI_CreateShop_Call) Run(run func(ctx context.Context, accessToken string, input entity.ShopInput, images []entity.Upload)) *MockMarketplaceAPI_CreateShop_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(entity.ShopInput), args[3].([]entity.Upload))
	})

	return _c
}

func (_c *MockMarketplaceAPI_CreateShop_Call) Return(_a0 *entity.Shop, _a1 error) *MockMarketplaceAPI_CreateShop_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// UpdateShop provides a mock function with given fields: ctx, accessToken, id, input, images
func (_m *MockMarketplaceAPI) UpdateShop(ctx context.Context, accessToken string, id int64, input entity.ShopInput, images []entity.Upload) (*entity.Shop, error) {
	ret := _m.Called(ctx, accessToken, id, input, images)
	return get[*entity.Shop](ret, 0), ret.Error(1)
}

// MockMarketplaceAPI_UpdateShop_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateShop'
type MockMarketplaceAPI_UpdateShop_Call struct {
	*mock.Call
}

// UpdateShop is a helper method to define mock.On call
func (_e *MockMarketplaceAPI_Expecter) UpdateShop(ctx interface{}, accessToken interface{}, id interface{}, input interface{}, images interface{}) *MockMarketplaceAPI_UpdateShop_Call {
	return &MockMarketplaceAPI_UpdateShop_Call{Call: _e.mock.On("UpdateShop", ctx, accessToken, id, input, images)}
}

func (_c *MockMarketplaceAPI_UpdateShop_Call) Run(run func(ctx context.Context, accessToken string, id int64, input entity.ShopInput, images []entity.Upload)) *MockMarketplaceAPI_UpdateShop_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int64), args[3].(entity.ShopInput), args[4].([]entity.Upload))
	})

	return _c
}

func (_c *MockMarketplaceAPI_UpdateShop_Call) Return(_a0 *entity.Shop, _a1 error) *MockMarketplaceAPI_UpdateShop_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// DeleteShop provides a mock function with given fields: ctx, accessToken, id
func (_m *MockMarketplaceAPI) DeleteShop(ctx context.Context, accessToken string, id int64) error {
	ret := _m.Called(ctx, accessToken, id)
	return ret.Error(0)
}

// MockMarketplaceAPI_DeleteShop_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteShop'
type MockMarketplaceAPI_DeleteShop_Call struct {
	*mock.Call
}

// DeleteShop is a helper method to define mock.On call
func (_e *MockMarketplaceAPI_Expecter) DeleteShop(ctx interface{}, accessToken interface{}, id interface{}) *MockMarketplaceAPI_DeleteShop_Call {
	return &MockMarketplaceAPI_DeleteShop_Call{Call: _e.mock.On("DeleteShop", ctx, accessToken, id)}
}

func (_c *MockMarketplaceAPI_DeleteShop_Call) Run(run func(ctx context.Context, accessToken string, id int64)) *MockMarketplaceAPI_DeleteShop_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int64))
	})

	return _c
}

func (_c *MockMarketplaceAPI_DeleteShop_Call) Return(_a0 error) *MockMarketplaceAPI_DeleteShop_Call {
	_c.Call.Return(_a0)

	return _c
}

// ListShopReviews provides a mock function with given fields: ctx, shopID
func (_m *MockMarketplaceAPI) ListShopReviews(ctx context.Context, shopID int64) ([]entity.Review, error) {
	ret := _m.Called(ctx, shopID)
	return get[[]entity.Review](ret, 0), ret.Error(1)
}

// MockMarketplaceAPI_ListShopReviews_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListShopReviews'
type MockMarketplaceAPI_ListShopReviews_Call struct {
	*mock.Call
}

// ListShopReviews is a helper method to define mock.On call
func (_e *MockMarketplaceAPI_Expecter) ListShopReviews(ctx interface{}, shopID interface{}) *MockMarketplaceAPI_ListShopReviews_Call {
	return &MockMarketplaceAPI_ListShopReviews_Call{Call: _e.mock.On("ListShopReviews", ctx, shopID)}
}

func (_c *MockMarketplaceAPI_ListShopReviews_Call) Run(run func(ctx context.Context, shopID int64)) *MockMarketplaceAPI_ListShopReviews_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})

	return _c
}

func (_c *MockMarketplaceAPI_ListShopReviews_Call) Return(_a0 []entity.Review, _a1 error) *MockMarketplaceAPI_ListShopReviews_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// CreateShopReview provides a mock function with given fields: ctx, accessToken, shopID, input
func (_m *MockMarketplaceAPI) CreateShopReview(ctx context.Context, accessToken string, shopID int64, input entity.ReviewInput) (*entity.Review, error) {
	ret := _m.Called(ctx, accessToken, shopID, input)
	return get[*entity.Review](ret, 0), ret.Error(1)
}

// MockMarketplaceAPI_CreateShopReview_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateShopReview'
type MockMarketplaceAPI_CreateShopReview_Call struct {
	*mock.Call
}

// CreateShopReview is a helper method to define mock.On call
func (_e *MockMarketplaceAPI_Expecter) CreateShopReview(ctx interface{}, accessToken interface{}, shopID interface{}, input interface{}) *MockMarketplaceAPI_CreateShopReview_Call {
	return &MockMarketplaceAPI_CreateShopReview_Call{Call: _e.mock.On("CreateShopReview", ctx, accessToken, shopID, input)}
}

func (_c *MockMarketplaceAPI_CreateShopReview_Call) Run(run func(ctx context.Context, accessToken string, shopID int64, input entity.ReviewInput)) *MockMarketplaceAPI_CreateShopReview_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int64), args[3].(entity.ReviewInput))
	})

	return _c
}

func (_c *MockMarketplaceAPI_CreateShopReview_Call) Return(_a0 *entity.Review, _a1 error) *MockMarketplaceAPI_CreateShopReview_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// NewMockMarketplaceAPI creates a new instance of MockMarketplaceAPI. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockMarketplaceAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMarketplaceAPI {
	m := &MockMarketplaceAPI{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
