package testutil

import (
	"context"

	"acronymer/internal/domain"
	"acronymer/internal/notify"

	"github.com/stretchr/testify/mock"
)

// MockAcronymRepository is a mock for AcronymRepository
type MockAcronymRepository struct {
	mock.Mock
}

func (m *MockAcronymRepository) List(ctx context.Context, q domain.AcronymQuery) ([]domain.Acronym, int, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Acronym), args.Int(1), args.Error(2)
}

func (m *MockAcronymRepository) GetByID(ctx context.Context, id string) (*domain.Acronym, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Acronym), args.Error(1)
}

func (m *MockAcronymRepository) GetBySlug(ctx context.Context, slug string) (*domain.Acronym, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Acronym), args.Error(1)
}

func (m *MockAcronymRepository) Create(ctx context.Context, a *domain.Acronym) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAcronymRepository) Vote(ctx context.Context, id string, vote domain.Vote) (*domain.Acronym, error) {
	args := m.Called(ctx, id, vote)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Acronym), args.Error(1)
}

func (m *MockAcronymRepository) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockAcronymCache is a mock for AcronymCache
type MockAcronymCache struct {
	mock.Mock
}

func (m *MockAcronymCache) GetAcronym(ctx context.Context, id string) (*domain.Acronym, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Acronym), args.Error(1)
}

func (m *MockAcronymCache) SetAcronym(ctx context.Context, a *domain.Acronym) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAcronymCache) DeleteAcronym(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockNotifier is a mock for notify.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(n notify.Notification) {
	m.Called(n)
}
