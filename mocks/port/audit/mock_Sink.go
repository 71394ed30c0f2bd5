package audit

import (
	"context"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockSink is a mock type for the Sink type
type MockSink struct {
	mock.Mock
}

type MockSink_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSink) EXPECT() *MockSink_Expecter {
	return &MockSink_Expecter{mock: &_m.Mock}
}

// Record provides a mock function with given fields: ctx, entry
func (_m *MockSink) Record(ctx context.Context, entry entity.AuditEntry) error {
	ret := _m.Called(ctx, entry)

	if len(ret) == 0 {
		panic("no return value specified for Record")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.AuditEntry) error); ok {
		r0 = rf(ctx, entry)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockSink_Record_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Record'
type MockSink_Record_Call struct {
	*mock.Call
}

// Record is a helper method to define mock.On call
//   - ctx context.Context
//   - entry entity.AuditEntry
func (_e *MockSink_Expecter) Record(ctx interface{}, entry interface{}) *MockSink_Record_Call {
	return &MockSink_Record_Call{Call: _e.mock.On("Record", ctx, entry)}
}

func (_c *MockSink_Record_Call) Run(run func(ctx context.Context, entry entity.AuditEntry)) *MockSink_Record_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		run(arg0, args[1].(entity.AuditEntry))
	})
	return _c
}

func (_c *MockSink_Record_Call) Return(_a0 error) *MockSink_Record_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockSink_Record_Call) RunAndReturn(run func(context.Context, entity.AuditEntry) error) *MockSink_Record_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockSink creates a new instance of MockSink. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockSink(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSink {
	mock := &MockSink{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
