package core

import (
	"github.com/stretchr/testify/mock"
)

// MockReferenceGenerator is a mock type for the ReferenceGenerator type
type MockReferenceGenerator struct {
	mock.Mock
}

type MockReferenceGenerator_Expecter struct {
	mock *mock.Mock
}

func (_m *MockReferenceGenerator) EXPECT() *MockReferenceGenerator_Expecter {
	return &MockReferenceGenerator_Expecter{mock: &_m.Mock}
}

// Next provides a mock function with given fields: 
func (_m *MockReferenceGenerator) Next() (string, error) {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Next")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func() (string, error)); ok {
		return rf()
	}
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockReferenceGenerator_Next_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Next'
type MockReferenceGenerator_Next_Call struct {
	*mock.Call
}

// Next is a helper method to define mock.On call
func (_e *MockReferenceGenerator_Expecter) Next() *MockReferenceGenerator_Next_Call {
	return &MockReferenceGenerator_Next_Call{Call: _e.mock.On("Next")}
}

func (_c *MockReferenceGenerator_Next_Call) Run(run func()) *MockReferenceGenerator_Next_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockReferenceGenerator_Next_Call) Return(_a0 string, _a1 error) *MockReferenceGenerator_Next_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockReferenceGenerator_Next_Call) RunAndReturn(run func() (string, error)) *MockReferenceGenerator_Next_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockReferenceGenerator creates a new instance of MockReferenceGenerator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockReferenceGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReferenceGenerator {
	mock := &MockReferenceGenerator{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
