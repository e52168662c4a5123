package impl

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/PradyunT/kaizen-task/internal/domain/entity"
	"github.com/PradyunT/kaizen-task/internal/domain/service"
)

// Hand-rolled testify mocks for the interfaces the services depend on.

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

type mockTaskRepository struct {
	mock.Mock
}

func (m *mockTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	args := m.Called(ctx, task)

	return args.Error(0)
}

func (m *mockTaskRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]*entity.Task, error) {
	args := m.Called(ctx, ownerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Task), args.Error(1)
}

func (m *mockTaskRepository) FindByID(ctx context.Context, id int64) (*entity.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Task), args.Error(1)
}

func (m *mockTaskRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *mockTaskRepository) UpdateChecked(ctx context.Context, id int64, checked bool) error {
	args := m.Called(ctx, id, checked)

	return args.Error(0)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(email string) (string, error) {
	args := m.Called(email)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Verify(tokenString string) (*service.SessionClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.SessionClaims), args.Error(1)
}

type mockAuthEventPublisher struct {
	mock.Mock
}

func (m *mockAuthEventPublisher) Publish(ctx context.Context, event service.AuthEvent) {
	m.Called(ctx, event)
}

func (m *mockAuthEventPublisher) Events() <-chan service.AuthEvent {
	args := m.Called()

	return args.Get(0).(<-chan service.AuthEvent)
}

func (m *mockAuthEventPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}
