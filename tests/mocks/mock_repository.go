package mocks

import (
	"avercms/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockContentRepository is the shared testify mock behind the blog,
// project, service and glossary controller tests.
type MockContentRepository[T repository.Sluggable] struct {
	mock.Mock
}

func (m *MockContentRepository[T]) Create(item *T) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockContentRepository[T]) FindAllActive() ([]T, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockContentRepository[T]) FindActiveBySlug(slug string) (*T, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockContentRepository[T]) FindByID(id uint) (*T, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockContentRepository[T]) Save(item *T) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockContentRepository[T]) SlugExists(slug string, excludeID uint) (bool, error) {
	args := m.Called(slug, excludeID)
	return args.Bool(0), args.Error(1)
}

// MockSingletonRepository backs the header and footer controller tests.
type MockSingletonRepository[T any] struct {
	mock.Mock
}

func (m *MockSingletonRepository[T]) FindActive() (*T, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockSingletonRepository[T]) Create(item *T) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockSingletonRepository[T]) Save(item *T) error {
	args := m.Called(item)
	return args.Error(0)
}
