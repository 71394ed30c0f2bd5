package cache

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockInvalidator is a mock type for the Invalidator type
type MockInvalidator struct {
	mock.Mock
}

type MockInvalidator_Expecter struct {
	mock *mock.Mock
}

func (_m *MockInvalidator) EXPECT() *MockInvalidator_Expecter {
	return &MockInvalidator_Expecter{mock: &_m.Mock}
}

// Invalidate provides a mock function with given fields: ctx, userID
func (_m *MockInvalidator) Invalidate(ctx context.Context, userID uuid.UUID) error {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for Invalidate")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) error); ok {
		r0 = rf(ctx, userID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockInvalidator_Invalidate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Invalidate'
type MockInvalidator_Invalidate_Call struct {
	*mock.Call
}

// Invalidate is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
func (_e *MockInvalidator_Expecter) Invalidate(ctx interface{}, userID interface{}) *MockInvalidator_Invalidate_Call {
	return &MockInvalidator_Invalidate_Call{Call: _e.mock.On("Invalidate", ctx, userID)}
}

func (_c *MockInvalidator_Invalidate_Call) Run(run func(ctx context.Context, userID uuid.UUID)) *MockInvalidator_Invalidate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		run(arg0, args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockInvalidator_Invalidate_Call) Return(_a0 error) *MockInvalidator_Invalidate_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockInvalidator_Invalidate_Call) RunAndReturn(run func(context.Context, uuid.UUID) error) *MockInvalidator_Invalidate_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockInvalidator creates a new instance of MockInvalidator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockInvalidator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockInvalidator {
	mock := &MockInvalidator{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
