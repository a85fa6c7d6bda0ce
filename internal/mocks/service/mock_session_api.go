package service

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockSessionAPI is a mock type for the SessionAPI type
type MockSessionAPI struct {
	mock.Mock
}

type MockSessionAPI_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSessionAPI) EXPECT() *MockSessionAPI_Expecter {
	return &MockSessionAPI_Expecter{mock: &_m.Mock}
}

// ObtainToken provides a mock function with given fields: ctx, input
func (_m *MockSessionAPI) ObtainToken(ctx context.Context, input entity.SignIn) (*entity.Credential, error) {
	ret := _m.Called(ctx, input)
	return get[*entity.Credential](ret, 0), ret.Error(1)
}

// MockSessionAPI_ObtainToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ObtainToken'
type MockSessionAPI_ObtainToken_Call struct {
	*mock.Call
}

// ObtainToken is a helper method to define mock.On call
func (_e *MockSessionAPI_Expecter) ObtainToken(ctx interface{}, input interface{}) *MockSessionAPI_ObtainToken_Call {
	return &MockSessionAPI_ObtainToken_Call{Call: _e.mock.On("ObtainToken", ctx, input)}
}

func (_c *MockSessionAPI_ObtainToken_Call) Run(run func(ctx context.Context, input entity.SignIn)) *MockSessionAPI_ObtainToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.SignIn))
	})

	return _c
}

func (_c *MockSessionAPI_ObtainToken_Call) Return(_a0 *entity.Credential, _a1 error) *MockSessionAPI_ObtainToken_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// Register provides a mock function with given fields: ctx, input
func (_m *MockSessionAPI) Register(ctx context.Context, input entity.Registration) (*entity.User, error) {
	ret := _m.Called(ctx, input)
	return get[*entity.User](ret, 0), ret.Error(1)
}

// MockSessionAPI_Register_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Register'
type MockSessionAPI_Register_Call struct {
	*mock.Call
}

// Register is a helper method to define mock.On call
func (_e *MockSessionAPI_Expecter) Register(ctx interface{}, input interface{}) *MockSessionAPI_Register_Call {
	return &MockSessionAPI_Register_Call{Call: _e.mock.On("Register", ctx, input)}
}

func (_c *MockSessionAPI_Register_Call) Run(run func(ctx context.Context, input entity.Registration)) *MockSessionAPI_Register_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.Registration))
	})

	return _c
}

func (_c *MockSessionAPI_Register_Call) Return(_a0 *entity.User, _a1 error) *MockSessionAPI_Register_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// GetProfile provides a mock function with given fields: ctx, accessToken
func (_m *MockSessionAPI) GetProfile(ctx context.Context, accessToken string) (*entity.User, error) {
	ret := _m.Called(ctx, accessToken)
	return get[*entity.User](ret, 0), ret.Error(1)
}

// MockSessionAPI_GetProfile_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetProfile'
type MockSessionAPI_GetProfile_Call struct {
	*mock.Call
}

// GetProfile is a helper method to define mock.On call
func (_e *MockSessionAPI_Expecter) GetProfile(ctx interface{}, accessToken interface{}) *MockSessionAPI_GetProfile_Call {
	return &MockSessionAPI_GetProfile_Call{Call: _e.mock.On("GetProfile", ctx, accessToken)}
}

func (_c *MockSessionAPI_GetProfile_Call) Run(run func(ctx context.Context, accessToken string)) *MockSessionAPI_GetProfile_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockSessionAPI_GetProfile_Call) Return(_a0 *entity.User, _a1 error) *MockSessionAPI_GetProfile_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// UpdateProfile provides a mock function with given fields: ctx, accessToken, fields
func (_m *MockSessionAPI) UpdateProfile(ctx context.Context, accessToken string, fields map[string]any) (map[string]any, error) {
	ret := _m.Called(ctx, accessToken, fields)
	return get[map[string]any](ret, 0), ret.Error(1)
}

// MockSessionAPI_UpdateProfile_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateProfile'
type MockSessionAPI_UpdateProfile_Call struct {
	*mock.Call
}

// UpdateProfile is a helper method to define mock.On call
func (_e *MockSessionAPI_Expecter) UpdateProfile(ctx interface{}, accessToken interface{}, fields interface{}) *MockSessionAPI_UpdateProfile_Call {
	return &MockSessionAPI_UpdateProfile_Call{Call: _e.mock.On("UpdateProfile", ctx, accessToken, fields)}
}

func (_c *MockSessionAPI_UpdateProfile_Call) Run(run func(ctx context.Context, accessToken string, fields map[string]any)) *MockSessionAPI_UpdateProfile_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(map[string]any))
	})

	return _c
}

func (_c *MockSessionAPI_UpdateProfile_Call) Return(_a0 map[string]any, _a1 error) *MockSessionAPI_UpdateProfile_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// RevokeToken provides a mock function with given fields: ctx, accessToken, refreshToken
func (_m *MockSessionAPI) RevokeToken(ctx context.Context, accessToken string, refreshToken string) error {
	ret := _m.Called(ctx, accessToken, refreshToken)
	return ret.Error(0)
}

// MockSessionAPI_RevokeToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RevokeToken'
type MockSessionAPI_RevokeToken_Call struct {
	*mock.Call
}

// RevokeToken is a helper method to define mock.On call
func (_e *MockSessionAPI_Expecter) RevokeToken(ctx interface{}, accessToken interface{}, refreshToken interface{}) *MockSessionAPI_RevokeToken_Call {
	return &MockSessionAPI_RevokeToken_Call{Call: _e.mock.On("RevokeToken", ctx, accessToken, refreshToken)}
}

func (_c *MockSessionAPI_RevokeToken_Call) Run(run func(ctx context.Context, accessToken string, refreshToken string)) *MockSessionAPI_RevokeToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})

	return _c
}

func (_c *MockSessionAPI_RevokeToken_Call) Return(_a0 error) *MockSessionAPI_RevokeToken_Call {
	_c.Call.Return(_a0)

	return _c
}

// NewMockSessionAPI creates a new instance of MockSessionAPI. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockSessionAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSessionAPI {
	m := &MockSessionAPI{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
