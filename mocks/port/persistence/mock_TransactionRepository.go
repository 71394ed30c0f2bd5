package persistence

import (
	"context"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTransactionRepository is a mock type for the TransactionRepository type
type MockTransactionRepository struct {
	mock.Mock
}

type MockTransactionRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTransactionRepository) EXPECT() *MockTransactionRepository_Expecter {
	return &MockTransactionRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, transaction
func (_m *MockTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	ret := _m.Called(ctx, transaction)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Transaction) error); ok {
		r0 = rf(ctx, transaction)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockTransactionRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockTransactionRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - transaction *entity.Transaction
func (_e *MockTransactionRepository_Expecter) Create(ctx interface{}, transaction interface{}) *MockTransactionRepository_Create_Call {
	return &MockTransactionRepository_Create_Call{Call: _e.mock.On("Create", ctx, transaction)}
}

func (_c *MockTransactionRepository_Create_Call) Run(run func(ctx context.Context, transaction *entity.Transaction)) *MockTransactionRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 *entity.Transaction
		if args[1] != nil {
			arg1 = args[1].(*entity.Transaction)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockTransactionRepository_Create_Call) Return(_a0 error) *MockTransactionRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockTransactionRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Transaction) error) *MockTransactionRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// GetViewForUser provides a mock function with given fields: ctx, id, userID
func (_m *MockTransactionRepository) GetViewForUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.TransactionView, error) {
	ret := _m.Called(ctx, id, userID)

	if len(ret) == 0 {
		panic("no return value specified for GetViewForUser")
	}

	var r0 *entity.TransactionView
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) (*entity.TransactionView, error)); ok {
		return rf(ctx, id, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) *entity.TransactionView); ok {
		r0 = rf(ctx, id, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.TransactionView)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r1 = rf(ctx, id, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTransactionRepository_GetViewForUser_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetViewForUser'
type MockTransactionRepository_GetViewForUser_Call struct {
	*mock.Call
}

// GetViewForUser is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
//   - userID uuid.UUID
func (_e *MockTransactionRepository_Expecter) GetViewForUser(ctx interface{}, id interface{}, userID interface{}) *MockTransactionRepository_GetViewForUser_Call {
	return &MockTransactionRepository_GetViewForUser_Call{Call: _e.mock.On("GetViewForUser", ctx, id, userID)}
}

func (_c *MockTransactionRepository_GetViewForUser_Call) Run(run func(ctx context.Context, id uuid.UUID, userID uuid.UUID)) *MockTransactionRepository_GetViewForUser_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		run(arg0, args[1].(uuid.UUID), args[2].(uuid.UUID))
	})
	return _c
}

func (_c *MockTransactionRepository_GetViewForUser_Call) Return(_a0 *entity.TransactionView, _a1 error) *MockTransactionRepository_GetViewForUser_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTransactionRepository_GetViewForUser_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID) (*entity.TransactionView, error)) *MockTransactionRepository_GetViewForUser_Call {
	_c.Call.Return(run)
	return _c
}

// Search provides a mock function with given fields: ctx, filter
func (_m *MockTransactionRepository) Search(ctx context.Context, filter entity.HistoryFilter) (*entity.HistoryPage, error) {
	ret := _m.Called(ctx, filter)

	if len(ret) == 0 {
		panic("no return value specified for Search")
	}

	var r0 *entity.HistoryPage
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.HistoryFilter) (*entity.HistoryPage, error)); ok {
		return rf(ctx, filter)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.HistoryFilter) *entity.HistoryPage); ok {
		r0 = rf(ctx, filter)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.HistoryPage)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.HistoryFilter) error); ok {
		r1 = rf(ctx, filter)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTransactionRepository_Search_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Search'
type MockTransactionRepository_Search_Call struct {
	*mock.Call
}

// Search is a helper method to define mock.On call
//   - ctx context.Context
//   - filter entity.HistoryFilter
func (_e *MockTransactionRepository_Expecter) Search(ctx interface{}, filter interface{}) *MockTransactionRepository_Search_Call {
	return &MockTransactionRepository_Search_Call{Call: _e.mock.On("Search", ctx, filter)}
}

func (_c *MockTransactionRepository_Search_Call) Run(run func(ctx context.Context, filter entity.HistoryFilter)) *MockTransactionRepository_Search_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		run(arg0, args[1].(entity.HistoryFilter))
	})
	return _c
}

func (_c *MockTransactionRepository_Search_Call) Return(_a0 *entity.HistoryPage, _a1 error) *MockTransactionRepository_Search_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTransactionRepository_Search_Call) RunAndReturn(run func(context.Context, entity.HistoryFilter) (*entity.HistoryPage, error)) *MockTransactionRepository_Search_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTransactionRepository creates a new instance of MockTransactionRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTransactionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionRepository {
	mock := &MockTransactionRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
