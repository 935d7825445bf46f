package mocks

import (
	"context"

	"job-board/internal/domain"
	"job-board/internal/patch"

	"github.com/stretchr/testify/mock"
)

// JobRepository is a mock type for the JobRepository type
type JobRepository struct {
	mock.Mock
}

func (_m *JobRepository) FindByID(ctx context.Context, id uint) (*domain.Job, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Job
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Job)
	}
	return r0, ret.Error(1)
}

func (_m *JobRepository) List(ctx context.Context) ([]domain.Job, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Job
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Job)
	}
	return r0, ret.Error(1)
}

func (_m *JobRepository) ListByCompany(ctx context.Context, handle string) ([]domain.Job, error) {
	ret := _m.Called(ctx, handle)
	var r0 []domain.Job
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Job)
	}
	return r0, ret.Error(1)
}

func (_m *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	ret := _m.Called(ctx, job)
	return ret.Error(0)
}

func (_m *JobRepository) Update(ctx context.Context, stmt patch.Statement) (*domain.Job, error) {
	ret := _m.Called(ctx, stmt)
	var r0 *domain.Job
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Job)
	}
	return r0, ret.Error(1)
}

func (_m *JobRepository) Delete(ctx context.Context, id uint) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}
