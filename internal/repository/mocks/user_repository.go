package mocks

import (
	"context"

	"job-board/internal/domain"
	"job-board/internal/patch"

	"github.com/stretchr/testify/mock"
)

// UserRepository is a mock type for the UserRepository type
type UserRepository struct {
	mock.Mock
}

func (_m *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	ret := _m.Called(ctx, username)
	var r0 *domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.User)
	}
	return r0, ret.Error(1)
}

func (_m *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	ret := _m.Called(ctx)
	var r0 []domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.User)
	}
	return r0, ret.Error(1)
}

func (_m *UserRepository) ListByCompany(ctx context.Context, handle string) ([]domain.User, error) {
	ret := _m.Called(ctx, handle)
	var r0 []domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.User)
	}
	return r0, ret.Error(1)
}

func (_m *UserRepository) Create(ctx context.Context, user *domain.User) error {
	ret := _m.Called(ctx, user)
	return ret.Error(0)
}

func (_m *UserRepository) Update(ctx context.Context, stmt patch.Statement) (*domain.User, error) {
	ret := _m.Called(ctx, stmt)
	var r0 *domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.User)
	}
	return r0, ret.Error(1)
}

func (_m *UserRepository) Delete(ctx context.Context, username string) error {
	ret := _m.Called(ctx, username)
	return ret.Error(0)
}
