package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockCredentialRepository is a mock type for the CredentialRepository type
type MockCredentialRepository struct {
	mock.Mock
}

type MockCredentialRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCredentialRepository) EXPECT() *MockCredentialRepository_Expecter {
	return &MockCredentialRepository_Expecter{mock: &_m.Mock}
}

// Load provides a mock function with given fields: ctx
func (_m *MockCredentialRepository) Load(ctx context.Context) (*entity.Credential, error) {
	ret := _m.Called(ctx)
	return get[*entity.Credential](ret, 0), ret.Error(1)
}

// MockCredentialRepository_Load_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Load'
type MockCredentialRepository_Load_Call struct {
	*mock.Call
}

// Load is a helper method to define mock.On call
func (_e *MockCredentialRepository_Expecter) Load(ctx interface{}) *MockCredentialRepository_Load_Call {
	return &MockCredentialRepository_Load_Call{Call: _e.mock.On("Load", ctx)}
}

func (_c *MockCredentialRepository_Load_Call) Run(run func(ctx context.Context)) *MockCredentialRepository_Load_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})

	return _c
}

func (_c *MockCredentialRepository_Load_Call) Return(_a0 *entity.Credential, _a1 error) *MockCredentialRepository_Load_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// Save provides a mock function with given fields: ctx, credential
func (_m *MockCredentialRepository) Save(ctx context.Context, credential entity.Credential) error {
	ret := _m.Called(ctx, credential)
	return ret.Error(0)
}

// MockCredentialRepository_Save_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Save'
type MockCredentialRepository_Save_Call struct {
	*mock.Call
}

// Save is a helper method to define mock.On call
func (_e *MockCredentialRepository_Expecter) Save(ctx interface{}, credential interface{}) *MockCredentialRepository_Save_Call {
	return &MockCredentialRepository_Save_Call{Call: _e.mock.On("Save", ctx, credential)}
}

func (_c *MockCredentialRepository_Save_Call) Run(run func(ctx context.Context, credential entity.Credential)) *MockCredentialRepository_Save_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.Credential))
	})

	return _c
}

func (_c *MockCredentialRepository_Save_Call) Return(_a0 error) *MockCredentialRepository_Save_Call {
	_c.Call.Return(_a0)

	return _c
}

// Clear provides a mock function with given fields: ctx
func (_m *MockCredentialRepository) Clear(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

// MockCredentialRepository_Clear_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Clear'
type MockCredentialRepository_Clear_Call struct {
	*mock.Call
}

// Clear is a helper method to define mock.On call
func (_e *MockCredentialRepository_Expecter) Clear(ctx interface{}) *MockCredentialRepository_Clear_Call {
	return &MockCredentialRepository_Clear_Call{Call: _e.mock.On("Clear", ctx)}
}

func (_c *MockCredentialRepository_Clear_Call) Run(run func(ctx context.Context)) *MockCredentialRepository_Clear_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})

	return _c
}

func (_c *MockCredentialRepository_Clear_Call) Return(_a0 error) *MockCredentialRepository_Clear_Call {
	_c.Call.Return(_a0)

	return _c
}

// Close provides a mock function with no fields
func (_m *MockCredentialRepository) Close() error {
	ret := _m.Called()
	return ret.Error(0)
}

// MockCredentialRepository_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'
type MockCredentialRepository_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
func (_e *MockCredentialRepository_Expecter) Close() *MockCredentialRepository_Close_Call {
	return &MockCredentialRepository_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *MockCredentialRepository_Close_Call) Run(run func()) *MockCredentialRepository_Close_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})

	return _c
}

func (_c *MockCredentialRepository_Close_Call) Return(_a0 error) *MockCredentialRepository_Close_Call {
	_c.Call.Return(_a0)

	return _c
}

// NewMockCredentialRepository creates a new instance of MockCredentialRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCredentialRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCredentialRepository {
	m := &MockCredentialRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
