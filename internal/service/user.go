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

// RegisterUserInput 是公开注册用户时需要的字段。
type RegisterUserInput struct {
	Username       string
	Password       string
	FirstName      string
	LastName       string
	Email          string
	Photo          *string
	CurrentCompany *string
}

// UserService 负责用户的注册、查询、更新和删除。
type UserService struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
	hasher    PasswordHasher
	patches   *patch.Builder
	owners    *OwnershipResolver
}

func NewUserService(users repository.UserRepository, companies repository.CompanyRepository, hasher PasswordHasher, owners *OwnershipResolver) *UserService {
	if users == nil || companies == nil || hasher == nil || owners == nil {
		panic("dependencies cannot be nil for UserService")
	}
	return &UserService{
		users:     users,
		companies: companies,
		hasher:    hasher,
		patches:   patch.NewBuilder(hasher),
		owners:    owners,
	}
}

// Register 创建用户。用户名已存在返回 ErrConflict；引用不存在的雇主返回 ErrBadRequest。
func (s *UserService) Register(ctx context.Context, in RegisterUserInput) (*domain.User, error) {
	logCtx := logrus.WithFields(logrus.Fields{"username": in.Username, "email": in.Email})

	if strings.TrimSpace(in.Username) == "" || in.Password == "" ||
		strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, fmt.Errorf("%w: username, password, first_name, last_name and email are required", ErrBadRequest)
	}

	_, err := s.users.FindByUsername(ctx, in.Username)
	switch {
	case err == nil:
		logCtx.Warn("User registration failed: username already exists")
		return nil, fmt.Errorf("%w: username %q is taken", ErrConflict, in.Username)
	case !errors.Is(err, repository.ErrNotFound):
		logCtx.WithError(err).Error("Database error checking username")
		return nil, mapRepoError(err)
	}
	if err := s.checkEmployer(ctx, in.CurrentCompany); err != nil {
		logCtx.WithError(err).Warn("User registration failed: bad employer reference")
		return nil, err
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		logCtx.WithError(err).Error("Failed to hash password during registration")
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	user := &domain.User{
		Username:       in.Username,
		Password:       hashed,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		Photo:          in.Photo,
		CurrentCompany: in.CurrentCompany,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			logCtx.WithError(err).Warn("User registration failed: duplicate (store constraint)")
			return nil, fmt.Errorf("%w: username %q is taken", ErrConflict, in.Username)
		}
		logCtx.WithError(err).Error("Database error during user creation")
		return nil, mapRepoError(err)
	}

	logCtx.Info("User registered successfully")
	user.Password = "" // 清除密码哈希再返回
	return user, nil
}

// List 返回所有用户。
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return users, nil
}

// Get 返回单个用户。
func (s *UserService) Get(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return user, nil
}

// Update 对用户执行选择性更新。只有用户本人可以更新。
func (s *UserService) Update(ctx context.Context, actor domain.Identity, username string, fields patch.Fields) (*domain.User, error) {
	if err := s.owners.AuthorizeUser(actor, username); err != nil {
		return nil, err
	}
	logCtx := logrus.WithFields(logrus.Fields{"username": username, "fields": fields.Columns()})

	stmt, err := s.patches.Build(ctx, usersTable, fields, username)
	if err != nil {
		logCtx.WithError(err).Warn("User update rejected")
		return nil, mapPatchError(err)
	}
	if err := validateAssignments(stmt); err != nil {
		return nil, err
	}
	if v, ok := stmt.Assignments.Get("current_company"); ok && v != nil {
		handle := v.(string)
		if err := s.checkEmployer(ctx, &handle); err != nil {
			return nil, err
		}
	}

	updated, err := s.users.Update(ctx, stmt)
	if err != nil {
		logCtx.WithError(err).Warn("User update failed")
		return nil, mapRepoError(err)
	}
	logCtx.Info("User updated")
	return updated, nil
}

// Delete 删除用户并返回删除前的记录，其申请级联删除。
func (s *UserService) Delete(ctx context.Context, actor domain.Identity, username string) (*domain.User, error) {
	if err := s.owners.AuthorizeUser(actor, username); err != nil {
		return nil, err
	}
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if err := s.users.Delete(ctx, username); err != nil {
		return nil, mapRepoError(err)
	}
	logrus.WithField("username", username).Info("User deleted")
	return user, nil
}

// checkEmployer 确认雇主引用指向存在的公司。
func (s *UserService) checkEmployer(ctx context.Context, handle *string) error {
	if handle == nil {
		return nil
	}
	_, err := s.companies.FindByHandle(ctx, *handle)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: company %q does not exist", ErrBadRequest, *handle)
	}
	return mapRepoError(err)
}
