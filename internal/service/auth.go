package service

import (
	"context"
	"errors"
	"fmt"

	"job-board/internal/domain"
	"job-board/internal/repository"

	"github.com/sirupsen/logrus"
)

// PasswordHasher 单向哈希与常量时间校验，由 password.Bcrypt 实现。
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

// TokenIssuer 为身份签发 token，由 token.Service 实现。
type TokenIssuer interface {
	Issue(id domain.Identity) (string, error)
}

// AuthService 负责两类主体的凭证校验与 token 签发。
type AuthService struct {
	companies repository.CompanyRepository
	users     repository.UserRepository
	hasher    PasswordHasher
	tokens    TokenIssuer
}

// NewAuthService 创建 AuthService 实例。
func NewAuthService(companies repository.CompanyRepository, users repository.UserRepository, hasher PasswordHasher, tokens TokenIssuer) *AuthService {
	if companies == nil || users == nil {
		panic("repositories cannot be nil for AuthService")
	}
	if hasher == nil || tokens == nil {
		panic("hasher and token issuer cannot be nil for AuthService")
	}
	return &AuthService{companies: companies, users: users, hasher: hasher, tokens: tokens}
}

// LoginUser 校验用户名和密码，成功返回用户 token。
func (s *AuthService) LoginUser(ctx context.Context, username, password string) (string, error) {
	return s.Authenticate(ctx, username, password, domain.ActorUser)
}

// LoginCompany 校验 handle 和密码，成功返回公司 token。
func (s *AuthService) LoginCompany(ctx context.Context, handle, password string) (string, error) {
	return s.Authenticate(ctx, handle, password, domain.ActorCompany)
}

// Authenticate 查找主体并校验密码。主体不存在返回 ErrInvalidIdentifier，
// 密码不匹配返回 ErrInvalidPassword，两者都包装 ErrUnauthenticated。
func (s *AuthService) Authenticate(ctx context.Context, identifier, password string, kind domain.ActorKind) (string, error) {
	logCtx := logrus.WithFields(logrus.Fields{"identifier": identifier, "kind": kind})

	hash, err := s.lookupHash(ctx, identifier, kind)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logCtx.Warn("Login attempt failed: identifier not found")
			return "", ErrInvalidIdentifier
		}
		logCtx.WithError(err).Error("Login attempt failed: error finding account")
		return "", mapRepoError(err)
	}

	if err := s.hasher.Compare(hash, password); err != nil {
		logCtx.WithError(err).Warn("Login attempt failed: invalid password")
		return "", ErrInvalidPassword
	}

	id := domain.Identity{Kind: kind, Key: identifier}
	tok, err := s.tokens.Issue(id)
	if err != nil {
		logCtx.WithError(err).Error("Failed to issue token during login")
		return "", fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	logCtx.Info("Logged in successfully")
	return tok, nil
}

func (s *AuthService) lookupHash(ctx context.Context, identifier string, kind domain.ActorKind) (string, error) {
	if identifier == "" {
		return "", repository.ErrNotFound
	}
	switch kind {
	case domain.ActorUser:
		u, err := s.users.FindByUsername(ctx, identifier)
		if err != nil {
			return "", err
		}
		return u.Password, nil
	case domain.ActorCompany:
		c, err := s.companies.FindByHandle(ctx, identifier)
		if err != nil {
			return "", err
		}
		return c.Password, nil
	}
	return "", fmt.Errorf("unknown actor kind %q", kind)
}
