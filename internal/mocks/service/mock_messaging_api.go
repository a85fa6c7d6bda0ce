package service

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockMessagingAPI is a mock type for the MessagingAPI type
type MockMessagingAPI struct {
	mock.Mock
}

type MockMessagingAPI_Expecter struct {
	mock *mock.Mock
}

func (_m *MockMessagingAPI) EXPECT() *MockMessagingAPI_Expecter {
	return &MockMessagingAPI_Expecter{mock: &_m.Mock}
}

// ListRooms provides a mock function with given fields: ctx, accessToken
func (_m *MockMessagingAPI) ListRooms(ctx context.Context, accessToken string) ([]entity.ChatRoom, error) {
	ret := _m.Called(ctx, accessToken)
	return get[[]entity.ChatRoom](ret, 0), ret.Error(1)
}

// MockMessagingAPI_ListRooms_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListRooms'
type MockMessagingAPI_ListRooms_Call struct {
	*mock.Call
}

// ListRooms is a helper method to define mock.On call
func (_e *MockMessagingAPI_Expecter) ListRooms(ctx interface{}, accessToken interface{}) *MockMessagingAPI_ListRooms_Call {
	return &MockMessagingAPI_ListRooms_Call{Call: _e.mock.On("ListRooms", ctx, accessToken)}
}

func (_c *MockMessagingAPI_ListRooms_Call) Run(run func(ctx context.Context, accessToken string)) *MockMessagingAPI_ListRooms_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockMessagingAPI_ListRooms_Call) Return(_a0 []entity.ChatRoom, _a1 error) *MockMessagingAPI_ListRooms_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// GetRoom provides a mock function with given fields: ctx, accessToken, id
func (_m *MockMessagingAPI) GetRoom(ctx context.Context, accessToken string, id int64) (*entity.ChatRoom, error) {
	ret := _m.Called(ctx, accessToken, id)
	return get[*entity.ChatRoom](ret, 0), ret.Error(1)
}

// MockMessagingAPI_GetRoom_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetRoom'
type MockMessagingAPI_GetRoom_Call struct {
	*mock.Call
}

// GetRoom is a helper method to define mock.On call
func (_e *MockMessagingAPI_Expecter) GetRoom(ctx interface{}, accessToken interface{}, id interface{}) *MockMessagingAPI_GetRoom_Call {
	return &MockMessagingAPI_GetRoom_Call{Call: _e.mock.On("GetRoom", ctx, accessToken, id)}
}

func (_c *MockMessagingAPI_GetRoom_Call) Run(run func(ctx context.Context, accessToken string, id int64)) *MockMessagingAPI_GetRoom_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int64))
	})

	return _c
}

func (_c *MockMessagingAPI_GetRoom_Call) Return(_a0 *entity.ChatRoom, _a1 error) *MockMessagingAPI_GetRoom_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// CreateRoom provides a mock function with given fields: ctx, accessToken, participantID
func (_m *MockMessagingAPI) CreateRoom(ctx context.Context, accessToken string, participantID int64) (*entity.ChatRoom, error) {
	ret := _m.Called(ctx, accessToken, participantID)
	return get[*entity.ChatRoom](ret, 0), ret.Error(1)
}

// MockMessagingAPI_CreateRoom_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateRoom'
type MockMessagingAPI_CreateRoom_Call struct {
	*mock.Call
}

// CreateRoom is a helper method to define mock.On call
func (_e *MockMessagingAPI_Expecter) CreateRoom(ctx interface{}, accessToken interface{}, participantID interface{}) *MockMessagingAPI_CreateRoom_Call {
	return &MockMessagingAPI_CreateRoom_Call{Call: _e.mock.On("CreateRoom", ctx, accessToken, participantID)}
}

func (_c *MockMessagingAPI_CreateRoom_Call) Run(run func(ctx context.Context, accessToken string, participantID int64)) *MockMessagingAPI_CreateRoom_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int64))
	})

	return _c
}

func (_c *MockMessagingAPI_CreateRoom_Call) Return(_a0 *entity.ChatRoom, _a1 error) *MockMessagingAPI_CreateRoom_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// ListMessages provides a mock function with given fields: ctx, accessToken, roomID
func (_m *MockMessagingAPI) ListMessages(ctx context.Context, accessToken string, roomID int64) ([]entity.Message, error) {
	ret := _m.Called(ctx, accessToken, roomID)
	return get[[]entity.Message](ret, 0), ret.Error(1)
}

// MockMessagingAPI_ListMessages_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListMessages'
type MockMessagingAPI_ListMessages_Call struct {
	*mock.Call
}

// ListMessages is a helper method to define mock.On call
func (_e *MockMessagingAPI_Expecter) ListMessages(ctx interface{}, accessToken interface{}, roomID interface{}) *MockMessagingAPI_ListMessages_Call {
	return &MockMessagingAPI_ListMessages_Call{Call: _e.mock.On("ListMessages", ctx, accessToken, roomID)}
}

func (_c *MockMessagingAPI_ListMessages_Call) Run(run func(ctx context.Context, accessToken string, roomID int64)) *MockMessagingAPI_ListMessages_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int64))
	})

	return _c
}

func (_c *MockMessagingAPI_ListMessages_Call) Return(_a0 []entity.Message, _a1 error) *MockMessagingAPI_ListMessages_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// SendMessage provides a mock function with given fields: ctx, accessToken, roomID, content
func (_m *MockMessagingAPI) SendMessage(ctx context.Context, accessToken string, roomID int64, content string) (*entity.Message, error) {
	ret := _m.Called(ctx, accessToken, roomID, content)
	return get[*entity.Message](ret, 0), ret.Error(1)
}

// MockMessagingAPI_SendMessage_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SendMessage'
type MockMessagingAPI_SendMessage_Call struct {
	*mock.Call
}

// SendMessage is a helper method to define mock.On call
func (_e *MockMessagingAPI_Expecter) SendMessage(ctx interface{}, accessToken interface{}, roomID interface{}, content interface{}) *MockMessagingAPI_SendMessage_Call {
	return &MockMessagingAPI_SendMessage_Call{Call: _e.mock.On("SendMessage", ctx, accessToken, roomID, content)}
}

func (_c *MockMessagingAPI_SendMessage_Call) Run(run func(ctx context.Context, accessToken string, roomID int64, content string)) *MockMessagingAPI_SendMessage_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int64), args[3].(string))
	})

	return _c
}

func (_c *MockMessagingAPI_SendMessage_Call) Return(_a0 *entity.Message, _a1 error) *MockMessagingAPI_SendMessage_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// NewMockMessagingAPI creates a new instance of MockMessagingAPI. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockMessagingAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMessagingAPI {
	m := &MockMessagingAPI{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
