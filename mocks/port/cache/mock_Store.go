package cache

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockStore is a mock type for the Store type
type MockStore struct {
	mock.Mock
}

type MockStore_Expecter struct {
	mock *mock.Mock
}

func (_m *MockStore) EXPECT() *MockStore_Expecter {
	return &MockStore_Expecter{mock: &_m.Mock}
}

// Get provides a mock function with given fields: ctx, key
func (_m *MockStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	ret := _m.Called(ctx, key)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 []byte
	var r1 bool
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]byte, bool, error)); ok {
		return rf(ctx, key)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []byte); ok {
		r0 = rf(ctx, key)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]byte)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) bool); ok {
		r1 = rf(ctx, key)
	} else {
		r1 = ret.Get(1).(bool)
	}

	if rf, ok := ret.Get(2).(func(context.Context, string) error); ok {
		r2 = rf(ctx, key)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// MockStore_Get_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Get'
type MockStore_Get_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call
//   - ctx context.Context
//   - key string
func (_e *MockStore_Expecter) Get(ctx interface{}, key interface{}) *MockStore_Get_Call {
	return &MockStore_Get_Call{Call: _e.mock.On("Get", ctx, key)}
}

func (_c *MockStore_Get_Call) Run(run func(ctx context.Context, key string)) *MockStore_Get_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		run(arg0, args[1].(string))
	})
	return _c
}

func (_c *MockStore_Get_Call) Return(_a0 []byte, _a1 bool, _a2 error) *MockStore_Get_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockStore_Get_Call) RunAndReturn(run func(context.Context, string) ([]byte, bool, error)) *MockStore_Get_Call {
	_c.Call.Return(run)
	return _c
}

// Set provides a mock function with given fields: ctx, key, value, ttl
func (_m *MockStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	ret := _m.Called(ctx, key, value, ttl)

	if len(ret) == 0 {
		panic("no return value specified for Set")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, []byte, time.Duration) error); ok {
		r0 = rf(ctx, key, value, ttl)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockStore_Set_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Set'
type MockStore_Set_Call struct {
	*mock.Call
}

// Set is a helper method to define mock.On call
//   - ctx context.Context
//   - key string
//   - value []byte
//   - ttl time.Duration
func (_e *MockStore_Expecter) Set(ctx interface{}, key interface{}, value interface{}, ttl interface{}) *MockStore_Set_Call {
	return &MockStore_Set_Call{Call: _e.mock.On("Set", ctx, key, value, ttl)}
}

func (_c *MockStore_Set_Call) Run(run func(ctx context.Context, key string, value []byte, ttl time.Duration)) *MockStore_Set_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg2 []byte
		if args[2] != nil {
			arg2 = args[2].([]byte)
		}
		run(arg0, args[1].(string), arg2, args[3].(time.Duration))
	})
	return _c
}

func (_c *MockStore_Set_Call) Return(_a0 error) *MockStore_Set_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockStore_Set_Call) RunAndReturn(run func(context.Context, string, []byte, time.Duration) error) *MockStore_Set_Call {
	_c.Call.Return(run)
	return _c
}

// DeleteMatching provides a mock function with given fields: ctx, pattern
func (_m *MockStore) DeleteMatching(ctx context.Context, pattern string) (int64, error) {
	ret := _m.Called(ctx, pattern)

	if len(ret) == 0 {
		panic("no return value specified for DeleteMatching")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (int64, error)); ok {
		return rf(ctx, pattern)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) int64); ok {
		r0 = rf(ctx, pattern)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, pattern)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockStore_DeleteMatching_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteMatching'
type MockStore_DeleteMatching_Call struct {
	*mock.Call
}

// DeleteMatching is a helper method to define mock.On call
//   - ctx context.Context
//   - pattern string
func (_e *MockStore_Expecter) DeleteMatching(ctx interface{}, pattern interface{}) *MockStore_DeleteMatching_Call {
	return &MockStore_DeleteMatching_Call{Call: _e.mock.On("DeleteMatching", ctx, pattern)}
}

func (_c *MockStore_DeleteMatching_Call) Run(run func(ctx context.Context, pattern string)) *MockStore_DeleteMatching_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		run(arg0, args[1].(string))
	})
	return _c
}

func (_c *MockStore_DeleteMatching_Call) Return(_a0 int64, _a1 error) *MockStore_DeleteMatching_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockStore_DeleteMatching_Call) RunAndReturn(run func(context.Context, string) (int64, error)) *MockStore_DeleteMatching_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockStore creates a new instance of MockStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStore {
	mock := &MockStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
