package mocks

import (
	"context"

	"job-board/internal/domain"

	"github.com/stretchr/testify/mock"
)

// ApplicationRepository is a mock type for the ApplicationRepository type
type ApplicationRepository struct {
	mock.Mock
}

func (_m *ApplicationRepository) FindByID(ctx context.Context, id uint) (*domain.Application, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Application
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Application)
	}
	return r0, ret.Error(1)
}

func (_m *ApplicationRepository) Exists(ctx context.Context, jobID uint, username string) (bool, error) {
	ret := _m.Called(ctx, jobID, username)
	return ret.Bool(0), ret.Error(1)
}

func (_m *ApplicationRepository) ListByUser(ctx context.Context, username string) ([]domain.Application, error) {
	ret := _m.Called(ctx, username)
	var r0 []domain.Application
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Application)
	}
	return r0, ret.Error(1)
}

func (_m *ApplicationRepository) ListByCompany(ctx context.Context, handle string) ([]domain.Application, error) {
	ret := _m.Called(ctx, handle)
	var r0 []domain.Application
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Application)
	}
	return r0, ret.Error(1)
}

func (_m *ApplicationRepository) Create(ctx context.Context, app *domain.Application) error {
	ret := _m.Called(ctx, app)
	return ret.Error(0)
}

func (_m *ApplicationRepository) Delete(ctx context.Context, id uint) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}
