package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/model"
)

// MockUserStore mocks the UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByIdentifier(ctx context.Context, identifier string) (model.User, error) {
	args := m.Called(ctx, identifier)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) GetByID(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) Update(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCategoryStore mocks the CategoryStore interface
type MockCategoryStore struct {
	mock.Mock
}

func (m *MockCategoryStore) Create(ctx context.Context, category model.Category) (model.Category, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *MockCategoryStore) GetByIDAndOwner(ctx context.Context, id, ownerID int64) (model.Category, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *MockCategoryStore) GetByNameAndOwner(ctx context.Context, name string, ownerID int64) (model.Category, error) {
	args := m.Called(ctx, name, ownerID)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *MockCategoryStore) GetByOwner(ctx context.Context, ownerID int64) ([]model.Category, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryStore) Update(ctx context.Context, category model.Category) (model.Category, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *MockCategoryStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSnippetStore mocks the SnippetStore interface
type MockSnippetStore struct {
	mock.Mock
}

func (m *MockSnippetStore) Create(ctx context.Context, snippet model.Snippet) (model.Snippet, error) {
	args := m.Called(ctx, snippet)
	return args.Get(0).(model.Snippet), args.Error(1)
}

func (m *MockSnippetStore) GetByIDAndOwner(ctx context.Context, id, ownerID int64) (model.Snippet, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(model.Snippet), args.Error(1)
}

func (m *MockSnippetStore) GetByOwner(ctx context.Context, ownerID int64) ([]model.Snippet, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]model.Snippet), args.Error(1)
}

func (m *MockSnippetStore) Update(ctx context.Context, snippet model.Snippet) (model.Snippet, error) {
	args := m.Called(ctx, snippet)
	return args.Get(0).(model.Snippet), args.Error(1)
}

func (m *MockSnippetStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
