package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"job-board/internal/domain"
	"job-board/internal/patch"
	"job-board/internal/repository"

	"github.com/sirupsen/logrus"
)

// RegisterCompanyInput 是公开注册公司时需要的字段。
type RegisterCompanyInput struct {
	Handle   string
	Password string
	Name     string
	Email    string
	Logo     *string
}

// CompanyService 负责公司的注册、查询、更新和删除。
type CompanyService struct {
	companies repository.CompanyRepository
	users     repository.UserRepository
	jobs      repository.JobRepository
	hasher    PasswordHasher
	patches   *patch.Builder
	owners    *OwnershipResolver
}

func NewCompanyService(companies repository.CompanyRepository, users repository.UserRepository, jobs repository.JobRepository,
	hasher PasswordHasher, owners *OwnershipResolver) *CompanyService {
	if companies == nil || users == nil || jobs == nil || hasher == nil || owners == nil {
		panic("dependencies cannot be nil for CompanyService")
	}
	return &CompanyService{
		companies: companies,
		users:     users,
		jobs:      jobs,
		hasher:    hasher,
		patches:   patch.NewBuilder(hasher),
		owners:    owners,
	}
}

// Register 创建公司。handle 或 email 已存在时返回 ErrConflict。
func (s *CompanyService) Register(ctx context.Context, in RegisterCompanyInput) (*domain.Company, error) {
	logCtx := logrus.WithFields(logrus.Fields{"handle": in.Handle, "email": in.Email})

	if strings.TrimSpace(in.Handle) == "" || in.Password == "" || strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, fmt.Errorf("%w: handle, password, name and email are required", ErrBadRequest)
	}

	// 先查后插，保证冲突稳定地得到 ErrConflict
	_, err := s.companies.FindByHandle(ctx, in.Handle)
	switch {
	case err == nil:
		logCtx.Warn("Company registration failed: handle already exists")
		return nil, fmt.Errorf("%w: handle %q is taken", ErrConflict, in.Handle)
	case !errors.Is(err, repository.ErrNotFound):
		logCtx.WithError(err).Error("Database error checking company handle")
		return nil, mapRepoError(err)
	}
	taken, err := s.companies.ExistsByEmail(ctx, in.Email)
	if err != nil {
		logCtx.WithError(err).Error("Database error checking company email")
		return nil, mapRepoError(err)
	}
	if taken {
		logCtx.Warn("Company registration failed: email already exists")
		return nil, fmt.Errorf("%w: email %q is taken", ErrConflict, in.Email)
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		logCtx.WithError(err).Error("Failed to hash password during company registration")
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	company := &domain.Company{
		Handle:   in.Handle,
		Password: hashed,
		Name:     in.Name,
		Email:    in.Email,
		Logo:     in.Logo,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			logCtx.WithError(err).Warn("Company registration failed: duplicate (store constraint)")
			return nil, fmt.Errorf("%w: handle or email is taken", ErrConflict)
		}
		logCtx.WithError(err).Error("Database error during company creation")
		return nil, mapRepoError(err)
	}

	logCtx.Info("Company registered successfully")
	company.Password = ""
	return company, nil
}

// List 返回所有公司，顺序与存储返回一致。
func (s *CompanyService) List(ctx context.Context) ([]domain.Company, error) {
	companies, err := s.companies.List(ctx)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return companies, nil
}

// Get 返回公司详情，附带其职位 ID 与当前雇员用户名。
func (s *CompanyService) Get(ctx context.Context, handle string) (*domain.CompanyDetail, error) {
	company, err := s.companies.FindByHandle(ctx, handle)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return s.detail(ctx, company)
}

// Update 对公司执行选择性更新。只有公司本身可以更新。
func (s *CompanyService) Update(ctx context.Context, actor domain.Identity, handle string, fields patch.Fields) (*domain.CompanyDetail, error) {
	if err := s.owners.AuthorizeCompany(actor, handle); err != nil {
		return nil, err
	}
	logCtx := logrus.WithFields(logrus.Fields{"handle": handle, "fields": fields.Columns()})

	stmt, err := s.patches.Build(ctx, companiesTable, fields, handle)
	if err != nil {
		logCtx.WithError(err).Warn("Company update rejected")
		return nil, mapPatchError(err)
	}
	if err := validateAssignments(stmt); err != nil {
		return nil, err
	}

	// 语句合法之后才查询存储
	if v, ok := stmt.Assignments.Get("email"); ok {
		current, err := s.companies.FindByHandle(ctx, handle)
		if err != nil {
			return nil, mapRepoError(err)
		}
		if email, isStr := v.(string); isStr && email != current.Email {
			taken, err := s.companies.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, mapRepoError(err)
			}
			if taken {
				return nil, fmt.Errorf("%w: email %q is taken", ErrConflict, email)
			}
		}
	}

	updated, err := s.companies.Update(ctx, stmt)
	if err != nil {
		logCtx.WithError(err).Warn("Company update failed")
		return nil, mapRepoError(err)
	}
	logCtx.Info("Company updated")
	return s.detail(ctx, updated)
}

// Delete 删除公司并返回删除前的详情。职位与申请级联删除，雇员的雇主引用置空。
func (s *CompanyService) Delete(ctx context.Context, actor domain.Identity, handle string) (*domain.CompanyDetail, error) {
	if err := s.owners.AuthorizeCompany(actor, handle); err != nil {
		return nil, err
	}
	company, err := s.companies.FindByHandle(ctx, handle)
	if err != nil {
		return nil, mapRepoError(err)
	}
	detail, err := s.detail(ctx, company)
	if err != nil {
		return nil, err
	}
	if err := s.companies.Delete(ctx, handle); err != nil {
		return nil, mapRepoError(err)
	}
	logrus.WithField("handle", handle).Info("Company deleted")
	return detail, nil
}

func (s *CompanyService) detail(ctx context.Context, company *domain.Company) (*domain.CompanyDetail, error) {
	jobs, err := s.jobs.ListByCompany(ctx, company.Handle)
	if err != nil {
		return nil, mapRepoError(err)
	}
	employees, err := s.users.ListByCompany(ctx, company.Handle)
	if err != nil {
		return nil, mapRepoError(err)
	}

	detail := &domain.CompanyDetail{Company: *company, JobIDs: []uint{}, Employees: []string{}}
	detail.Password = ""
	for _, j := range jobs {
		detail.JobIDs = append(detail.JobIDs, j.ID)
	}
	for _, u := range employees {
		detail.Employees = append(detail.Employees, u.Username)
	}
	return detail, nil
}
