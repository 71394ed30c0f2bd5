package persistence

import (
	"context"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock type for the AccountRepository type
type MockAccountRepository struct {
	mock.Mock
}

type MockAccountRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAccountRepository) EXPECT() *MockAccountRepository_Expecter {
	return &MockAccountRepository_Expecter{mock: &_m.Mock}
}

// GetOwnedByID provides a mock function with given fields: ctx, id, userID
func (_m *MockAccountRepository) GetOwnedByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Account, error) {
	ret := _m.Called(ctx, id, userID)

	if len(ret) == 0 {
		panic("no return value specified for GetOwnedByID")
	}

	var r0 *entity.Account
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) (*entity.Account, error)); ok {
		return rf(ctx, id, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) *entity.Account); ok {
		r0 = rf(ctx, id, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Account)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r1 = rf(ctx, id, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAccountRepository_GetOwnedByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetOwnedByID'
type MockAccountRepository_GetOwnedByID_Call struct {
	*mock.Call
}

// GetOwnedByID is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
//   - userID uuid.UUID
func (_e *MockAccountRepository_Expecter) GetOwnedByID(ctx interface{}, id interface{}, userID interface{}) *MockAccountRepository_GetOwnedByID_Call {
	return &MockAccountRepository_GetOwnedByID_Call{Call: _e.mock.On("GetOwnedByID", ctx, id, userID)}
}

func (_c *MockAccountRepository_GetOwnedByID_Call) Run(run func(ctx context.Context, id uuid.UUID, userID uuid.UUID)) *MockAccountRepository_GetOwnedByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		run(arg0, args[1].(uuid.UUID), args[2].(uuid.UUID))
	})
	return _c
}

func (_c *MockAccountRepository_GetOwnedByID_Call) Return(_a0 *entity.Account, _a1 error) *MockAccountRepository_GetOwnedByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAccountRepository_GetOwnedByID_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID) (*entity.Account, error)) *MockAccountRepository_GetOwnedByID_Call {
	_c.Call.Return(run)
	return _c
}

// GetByNumber provides a mock function with given fields: ctx, accountNumber
func (_m *MockAccountRepository) GetByNumber(ctx context.Context, accountNumber string) (*entity.Account, error) {
	ret := _m.Called(ctx, accountNumber)

	if len(ret) == 0 {
		panic("no return value specified for GetByNumber")
	}

	var r0 *entity.Account
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.Account, error)); ok {
		return rf(ctx, accountNumber)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.Account); ok {
		r0 = rf(ctx, accountNumber)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Account)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, accountNumber)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAccountRepository_GetByNumber_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetByNumber'
type MockAccountRepository_GetByNumber_Call struct {
	*mock.Call
}

// GetByNumber is a helper method to define mock.On call
//   - ctx context.Context
//   - accountNumber string
func (_e *MockAccountRepository_Expecter) GetByNumber(ctx interface{}, accountNumber interface{}) *MockAccountRepository_GetByNumber_Call {
	return &MockAccountRepository_GetByNumber_Call{Call: _e.mock.On("GetByNumber", ctx, accountNumber)}
}

func (_c *MockAccountRepository_GetByNumber_Call) Run(run func(ctx context.Context, accountNumber string)) *MockAccountRepository_GetByNumber_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		run(arg0, args[1].(string))
	})
	return _c
}

func (_c *MockAccountRepository_GetByNumber_Call) Return(_a0 *entity.Account, _a1 error) *MockAccountRepository_GetByNumber_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAccountRepository_GetByNumber_Call) RunAndReturn(run func(context.Context, string) (*entity.Account, error)) *MockAccountRepository_GetByNumber_Call {
	_c.Call.Return(run)
	return _c
}

// LockByID provides a mock function with given fields: ctx, id
func (_m *MockAccountRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for LockByID")
	}

	var r0 *entity.Account
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.Account, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.Account); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Account)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAccountRepository_LockByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'LockByID'
type MockAccountRepository_LockByID_Call struct {
	*mock.Call
}

// LockByID is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockAccountRepository_Expecter) LockByID(ctx interface{}, id interface{}) *MockAccountRepository_LockByID_Call {
	return &MockAccountRepository_LockByID_Call{Call: _e.mock.On("LockByID", ctx, id)}
}

func (_c *MockAccountRepository_LockByID_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockAccountRepository_LockByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		run(arg0, args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockAccountRepository_LockByID_Call) Return(_a0 *entity.Account, _a1 error) *MockAccountRepository_LockByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAccountRepository_LockByID_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Account, error)) *MockAccountRepository_LockByID_Call {
	_c.Call.Return(run)
	return _c
}

// ApplyDelta provides a mock function with given fields: ctx, id, delta
func (_m *MockAccountRepository) ApplyDelta(ctx context.Context, id uuid.UUID, delta int64) (int64, error) {
	ret := _m.Called(ctx, id, delta)

	if len(ret) == 0 {
		panic("no return value specified for ApplyDelta")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, int64) (int64, error)); ok {
		return rf(ctx, id, delta)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, int64) int64); ok {
		r0 = rf(ctx, id, delta)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, int64) error); ok {
		r1 = rf(ctx, id, delta)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAccountRepository_ApplyDelta_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ApplyDelta'
type MockAccountRepository_ApplyDelta_Call struct {
	*mock.Call
}

// ApplyDelta is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
//   - delta int64
func (_e *MockAccountRepository_Expecter) ApplyDelta(ctx interface{}, id interface{}, delta interface{}) *MockAccountRepository_ApplyDelta_Call {
	return &MockAccountRepository_ApplyDelta_Call{Call: _e.mock.On("ApplyDelta", ctx, id, delta)}
}

func (_c *MockAccountRepository_ApplyDelta_Call) Run(run func(ctx context.Context, id uuid.UUID, delta int64)) *MockAccountRepository_ApplyDelta_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		run(arg0, args[1].(uuid.UUID), args[2].(int64))
	})
	return _c
}

func (_c *MockAccountRepository_ApplyDelta_Call) Return(_a0 int64, _a1 error) *MockAccountRepository_ApplyDelta_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAccountRepository_ApplyDelta_Call) RunAndReturn(run func(context.Context, uuid.UUID, int64) (int64, error)) *MockAccountRepository_ApplyDelta_Call {
	_c.Call.Return(run)
	return _c
}

// ListByUser provides a mock function with given fields: ctx, userID
func (_m *MockAccountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for ListByUser")
	}

	var r0 []*entity.Account
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) ([]*entity.Account, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) []*entity.Account); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Account)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAccountRepository_ListByUser_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListByUser'
type MockAccountRepository_ListByUser_Call struct {
	*mock.Call
}

// ListByUser is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
func (_e *MockAccountRepository_Expecter) ListByUser(ctx interface{}, userID interface{}) *MockAccountRepository_ListByUser_Call {
	return &MockAccountRepository_ListByUser_Call{Call: _e.mock.On("ListByUser", ctx, userID)}
}

func (_c *MockAccountRepository_ListByUser_Call) Run(run func(ctx context.Context, userID uuid.UUID)) *MockAccountRepository_ListByUser_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		run(arg0, args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockAccountRepository_ListByUser_Call) Return(_a0 []*entity.Account, _a1 error) *MockAccountRepository_ListByUser_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAccountRepository_ListByUser_Call) RunAndReturn(run func(context.Context, uuid.UUID) ([]*entity.Account, error)) *MockAccountRepository_ListByUser_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockAccountRepository creates a new instance of MockAccountRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAccountRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountRepository {
	mock := &MockAccountRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
