package usecase

import (
	"context"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockHistoryUseCase is a mock type for the HistoryUseCase type
type MockHistoryUseCase struct {
	mock.Mock
}

type MockHistoryUseCase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockHistoryUseCase) EXPECT() *MockHistoryUseCase_Expecter {
	return &MockHistoryUseCase_Expecter{mock: &_m.Mock}
}

// GetHistory provides a mock function with given fields: ctx, requester, filter
func (_m *MockHistoryUseCase) GetHistory(ctx context.Context, requester entity.Requester, filter entity.HistoryFilter) (*entity.HistoryPage, bool, error) {
	ret := _m.Called(ctx, requester, filter)

	if len(ret) == 0 {
		panic("no return value specified for GetHistory")
	}

	var r0 *entity.HistoryPage
	var r1 bool
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Requester, entity.HistoryFilter) (*entity.HistoryPage, bool, error)); ok {
		return rf(ctx, requester, filter)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.Requester, entity.HistoryFilter) *entity.HistoryPage); ok {
		r0 = rf(ctx, requester, filter)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.HistoryPage)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.Requester, entity.HistoryFilter) bool); ok {
		r1 = rf(ctx, requester, filter)
	} else {
		r1 = ret.Get(1).(bool)
	}

	if rf, ok := ret.Get(2).(func(context.Context, entity.Requester, entity.HistoryFilter) error); ok {
		r2 = rf(ctx, requester, filter)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// MockHistoryUseCase_GetHistory_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetHistory'
type MockHistoryUseCase_GetHistory_Call struct {
	*mock.Call
}

// GetHistory is a helper method to define mock.On call
//   - ctx context.Context
//   - requester entity.Requester
//   - filter entity.HistoryFilter
func (_e *MockHistoryUseCase_Expecter) GetHistory(ctx interface{}, requester interface{}, filter interface{}) *MockHistoryUseCase_GetHistory_Call {
	return &MockHistoryUseCase_GetHistory_Call{Call: _e.mock.On("GetHistory", ctx, requester, filter)}
}

func (_c *MockHistoryUseCase_GetHistory_Call) Run(run func(ctx context.Context, requester entity.Requester, filter entity.HistoryFilter)) *MockHistoryUseCase_GetHistory_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		run(arg0, args[1].(entity.Requester), args[2].(entity.HistoryFilter))
	})
	return _c
}

func (_c *MockHistoryUseCase_GetHistory_Call) Return(_a0 *entity.HistoryPage, _a1 bool, _a2 error) *MockHistoryUseCase_GetHistory_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockHistoryUseCase_GetHistory_Call) RunAndReturn(run func(context.Context, entity.Requester, entity.HistoryFilter) (*entity.HistoryPage, bool, error)) *MockHistoryUseCase_GetHistory_Call {
	_c.Call.Return(run)
	return _c
}

// GetTransaction provides a mock function with given fields: ctx, requester, id
func (_m *MockHistoryUseCase) GetTransaction(ctx context.Context, requester entity.Requester, id uuid.UUID) (*entity.TransactionView, error) {
	ret := _m.Called(ctx, requester, id)

	if len(ret) == 0 {
		panic("no return value specified for GetTransaction")
	}

	var r0 *entity.TransactionView
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Requester, uuid.UUID) (*entity.TransactionView, error)); ok {
		return rf(ctx, requester, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.Requester, uuid.UUID) *entity.TransactionView); ok {
		r0 = rf(ctx, requester, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.TransactionView)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.Requester, uuid.UUID) error); ok {
		r1 = rf(ctx, requester, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockHistoryUseCase_GetTransaction_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetTransaction'
type MockHistoryUseCase_GetTransaction_Call struct {
	*mock.Call
}

// GetTransaction is a helper method to define mock.On call
//   - ctx context.Context
//   - requester entity.Requester
//   - id uuid.UUID
func (_e *MockHistoryUseCase_Expecter) GetTransaction(ctx interface{}, requester interface{}, id interface{}) *MockHistoryUseCase_GetTransaction_Call {
	return &MockHistoryUseCase_GetTransaction_Call{Call: _e.mock.On("GetTransaction", ctx, requester, id)}
}

func (_c *MockHistoryUseCase_GetTransaction_Call) Run(run func(ctx context.Context, requester entity.Requester, id uuid.UUID)) *MockHistoryUseCase_GetTransaction_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		run(arg0, args[1].(entity.Requester), args[2].(uuid.UUID))
	})
	return _c
}

func (_c *MockHistoryUseCase_GetTransaction_Call) Return(_a0 *entity.TransactionView, _a1 error) *MockHistoryUseCase_GetTransaction_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockHistoryUseCase_GetTransaction_Call) RunAndReturn(run func(context.Context, entity.Requester, uuid.UUID) (*entity.TransactionView, error)) *MockHistoryUseCase_GetTransaction_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockHistoryUseCase creates a new instance of MockHistoryUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockHistoryUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHistoryUseCase {
	mock := &MockHistoryUseCase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
