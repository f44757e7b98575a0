package session_test

import (
	"github.com/stretchr/testify/mock"

	"github.com/dscvit/dscv/pkg/cookie"
)

// MockJar is a mock implementation of session.Jar.
type MockJar struct {
	mock.Mock
}

func (m *MockJar) GetPrivate(name string) (string, error) {
	args := m.Called(name)
	return args.String(0), args.Error(1)
}

func (m *MockJar) AddPrivate(name, value string, opts ...cookie.Option) error {
	args := m.Called(name, value, opts)
	return args.Error(0)
}
