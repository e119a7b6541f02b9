package habitusecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"gohabits/internal/habits/domain/entities"
)

type mockHabitRepository struct {
	mock.Mock
}

func (m *mockHabitRepository) FindOwned(ctx context.Context, id, ownerID string) (*entities.Habit, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Habit), args.Error(1)
}

func (m *mockHabitRepository) ListOwned(ctx context.Context, ownerID string) ([]*entities.Habit, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Habit), args.Error(1)
}

func (m *mockHabitRepository) Create(ctx context.Context, habit *entities.Habit) (*entities.Habit, error) {
	args := m.Called(ctx, habit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Habit), args.Error(1)
}

func (m *mockHabitRepository) Update(ctx context.Context, id, ownerID string, update *entities.HabitUpdate) (*entities.Habit, error) {
	args := m.Called(ctx, id, ownerID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Habit), args.Error(1)
}

func (m *mockHabitRepository) Archive(ctx context.Context, id, ownerID string) (*entities.Habit, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Habit), args.Error(1)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockCache) Close() error {
	args := m.Called()
	return args.Error(0)
}
