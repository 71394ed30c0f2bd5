package usecase

import (
	"context"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockTransferUseCase is a mock type for the TransferUseCase type
type MockTransferUseCase struct {
	mock.Mock
}

type MockTransferUseCase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTransferUseCase) EXPECT() *MockTransferUseCase_Expecter {
	return &MockTransferUseCase_Expecter{mock: &_m.Mock}
}

// Transfer provides a mock function with given fields: ctx, requester, cmd
func (_m *MockTransferUseCase) Transfer(ctx context.Context, requester entity.Requester, cmd entity.TransferCommand) (*entity.TransferResult, error) {
	ret := _m.Called(ctx, requester, cmd)

	if len(ret) == 0 {
		panic("no return value specified for Transfer")
	}

	var r0 *entity.TransferResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Requester, entity.TransferCommand) (*entity.TransferResult, error)); ok {
		return rf(ctx, requester, cmd)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.Requester, entity.TransferCommand) *entity.TransferResult); ok {
		r0 = rf(ctx, requester, cmd)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.TransferResult)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.Requester, entity.TransferCommand) error); ok {
		r1 = rf(ctx, requester, cmd)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTransferUseCase_Transfer_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Transfer'
type MockTransferUseCase_Transfer_Call struct {
	*mock.Call
}

// Transfer is a helper method to define mock.On call
//   - ctx context.Context
//   - requester entity.Requester
//   - cmd entity.TransferCommand
func (_e *MockTransferUseCase_Expecter) Transfer(ctx interface{}, requester interface{}, cmd interface{}) *MockTransferUseCase_Transfer_Call {
	return &MockTransferUseCase_Transfer_Call{Call: _e.mock.On("Transfer", ctx, requester, cmd)}
}

func (_c *MockTransferUseCase_Transfer_Call) Run(run func(ctx context.Context, requester entity.Requester, cmd entity.TransferCommand)) *MockTransferUseCase_Transfer_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		run(arg0, args[1].(entity.Requester), args[2].(entity.TransferCommand))
	})
	return _c
}

func (_c *MockTransferUseCase_Transfer_Call) Return(_a0 *entity.TransferResult, _a1 error) *MockTransferUseCase_Transfer_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTransferUseCase_Transfer_Call) RunAndReturn(run func(context.Context, entity.Requester, entity.TransferCommand) (*entity.TransferResult, error)) *MockTransferUseCase_Transfer_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTransferUseCase creates a new instance of MockTransferUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTransferUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransferUseCase {
	mock := &MockTransferUseCase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
