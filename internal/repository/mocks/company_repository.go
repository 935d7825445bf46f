package mocks

import (
	"context"

	"job-board/internal/domain"
	"job-board/internal/patch"

	"github.com/stretchr/testify/mock"
)

// CompanyRepository is a mock type for the CompanyRepository type
type CompanyRepository struct {
	mock.Mock
}

func (_m *CompanyRepository) FindByHandle(ctx context.Context, handle string) (*domain.Company, error) {
	ret := _m.Called(ctx, handle)
	var r0 *domain.Company
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Company)
	}
	return r0, ret.Error(1)
}

func (_m *CompanyRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	ret := _m.Called(ctx, email)
	return ret.Bool(0), ret.Error(1)
}

func (_m *CompanyRepository) List(ctx context.Context) ([]domain.Company, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Company
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Company)
	}
	return r0, ret.Error(1)
}

func (_m *CompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	ret := _m.Called(ctx, company)
	return ret.Error(0)
}

func (_m *CompanyRepository) Update(ctx context.Context, stmt patch.Statement) (*domain.Company, error) {
	ret := _m.Called(ctx, stmt)
	var r0 *domain.Company
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Company)
	}
	return r0, ret.Error(1)
}

func (_m *CompanyRepository) Delete(ctx context.Context, handle string) error {
	ret := _m.Called(ctx, handle)
	return ret.Error(0)
}
