package usecase

import (
	"context"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccountUseCase is a mock type for the AccountUseCase type
type MockAccountUseCase struct {
	mock.Mock
}

type MockAccountUseCase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAccountUseCase) EXPECT() *MockAccountUseCase_Expecter {
	return &MockAccountUseCase_Expecter{mock: &_m.Mock}
}

// ListAccounts provides a mock function with given fields: ctx, requester
func (_m *MockAccountUseCase) ListAccounts(ctx context.Context, requester entity.Requester) ([]*entity.Account, bool, error) {
	ret := _m.Called(ctx, requester)

	if len(ret) == 0 {
		panic("no return value specified for ListAccounts")
	}

	var r0 []*entity.Account
	var r1 bool
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Requester) ([]*entity.Account, bool, error)); ok {
		return rf(ctx, requester)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.Requester) []*entity.Account); ok {
		r0 = rf(ctx, requester)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Account)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.Requester) bool); ok {
		r1 = rf(ctx, requester)
	} else {
		r1 = ret.Get(1).(bool)
	}

	if rf, ok := ret.Get(2).(func(context.Context, entity.Requester) error); ok {
		r2 = rf(ctx, requester)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// MockAccountUseCase_ListAccounts_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListAccounts'
type MockAccountUseCase_ListAccounts_Call struct {
	*mock.Call
}

// ListAccounts is a helper method to define mock.On call
//   - ctx context.Context
//   - requester entity.Requester
func (_e *MockAccountUseCase_Expecter) ListAccounts(ctx interface{}, requester interface{}) *MockAccountUseCase_ListAccounts_Call {
	return &MockAccountUseCase_ListAccounts_Call{Call: _e.mock.On("ListAccounts", ctx, requester)}
}

func (_c *MockAccountUseCase_ListAccounts_Call) Run(run func(ctx context.Context, requester entity.Requester)) *MockAccountUseCase_ListAccounts_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		run(arg0, args[1].(entity.Requester))
	})
	return _c
}

func (_c *MockAccountUseCase_ListAccounts_Call) Return(_a0 []*entity.Account, _a1 bool, _a2 error) *MockAccountUseCase_ListAccounts_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockAccountUseCase_ListAccounts_Call) RunAndReturn(run func(context.Context, entity.Requester) ([]*entity.Account, bool, error)) *MockAccountUseCase_ListAccounts_Call {
	_c.Call.Return(run)
	return _c
}

// GetAccount provides a mock function with given fields: ctx, requester, id
func (_m *MockAccountUseCase) GetAccount(ctx context.Context, requester entity.Requester, id uuid.UUID) (*entity.Account, error) {
	ret := _m.Called(ctx, requester, id)

	if len(ret) == 0 {
		panic("no return value specified for GetAccount")
	}

	var r0 *entity.Account
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Requester, uuid.UUID) (*entity.Account, error)); ok {
		return rf(ctx, requester, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.Requester, uuid.UUID) *entity.Account); ok {
		r0 = rf(ctx, requester, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Account)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.Requester, uuid.UUID) error); ok {
		r1 = rf(ctx, requester, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAccountUseCase_GetAccount_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetAccount'
type MockAccountUseCase_GetAccount_Call struct {
	*mock.Call
}

// GetAccount is a helper method to define mock.On call
//   - ctx context.Context
//   - requester entity.Requester
//   - id uuid.UUID
func (_e *MockAccountUseCase_Expecter) GetAccount(ctx interface{}, requester interface{}, id interface{}) *MockAccountUseCase_GetAccount_Call {
	return &MockAccountUseCase_GetAccount_Call{Call: _e.mock.On("GetAccount", ctx, requester, id)}
}

func (_c *MockAccountUseCase_GetAccount_Call) Run(run func(ctx context.Context, requester entity.Requester, id uuid.UUID)) *MockAccountUseCase_GetAccount_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		run(arg0, args[1].(entity.Requester), args[2].(uuid.UUID))
	})
	return _c
}

func (_c *MockAccountUseCase_GetAccount_Call) Return(_a0 *entity.Account, _a1 error) *MockAccountUseCase_GetAccount_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAccountUseCase_GetAccount_Call) RunAndReturn(run func(context.Context, entity.Requester, uuid.UUID) (*entity.Account, error)) *MockAccountUseCase_GetAccount_Call {
	_c.Call.Return(run)
	return _c
}

// GetBalance provides a mock function with given fields: ctx, requester, id
func (_m *MockAccountUseCase) GetBalance(ctx context.Context, requester entity.Requester, id uuid.UUID) (*entity.Account, error) {
	ret := _m.Called(ctx, requester, id)

	if len(ret) == 0 {
		panic("no return value specified for GetBalance")
	}

	var r0 *entity.Account
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Requester, uuid.UUID) (*entity.Account, error)); ok {
		return rf(ctx, requester, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.Requester, uuid.UUID) *entity.Account); ok {
		r0 = rf(ctx, requester, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Account)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.Requester, uuid.UUID) error); ok {
		r1 = rf(ctx, requester, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAccountUseCase_GetBalance_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetBalance'
type MockAccountUseCase_GetBalance_Call struct {
	*mock.Call
}

// GetBalance is a helper method to define mock.On call
//   - ctx context.Context
//   - requester entity.Requester
//   - id uuid.UUID
func (_e *MockAccountUseCase_Expecter) GetBalance(ctx interface{}, requester interface{}, id interface{}) *MockAccountUseCase_GetBalance_Call {
	return &MockAccountUseCase_GetBalance_Call{Call: _e.mock.On("GetBalance", ctx, requester, id)}
}

func (_c *MockAccountUseCase_GetBalance_Call) Run(run func(ctx context.Context, requester entity.Requester, id uuid.UUID)) *MockAccountUseCase_GetBalance_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		run(arg0, args[1].(entity.Requester), args[2].(uuid.UUID))
	})
	return _c
}

func (_c *MockAccountUseCase_GetBalance_Call) Return(_a0 *entity.Account, _a1 error) *MockAccountUseCase_GetBalance_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAccountUseCase_GetBalance_Call) RunAndReturn(run func(context.Context, entity.Requester, uuid.UUID) (*entity.Account, error)) *MockAccountUseCase_GetBalance_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockAccountUseCase creates a new instance of MockAccountUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAccountUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountUseCase {
	mock := &MockAccountUseCase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
