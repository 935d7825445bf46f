package service_test // 测试包

import (
	"context"
	"errors"
	"testing"

	"job-board/internal/domain"
	"job-board/internal/password"
	"job-board/internal/repository"
	"job-board/internal/repository/mocks"
	"job-board/internal/service"
	"job-board/internal/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	companies *mocks.CompanyRepository
	users     *mocks.UserRepository
	hasher    *password.Bcrypt
	tokens    *token.Service
	svc       *service.AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	tokens, err := token.NewService(token.StaticSecret("test-secret"))
	require.NoError(t, err, "创建 token.Service 不应失败")

	f := &authFixture{
		companies: new(mocks.CompanyRepository),
		users:     new(mocks.UserRepository),
		hasher:    password.NewBcrypt(bcrypt.MinCost),
		tokens:    tokens,
	}
	f.svc = service.NewAuthService(f.companies, f.users, f.hasher, f.tokens)
	return f
}

func (f *authFixture) hash(t *testing.T, plain string) string {
	t.Helper()
	h, err := f.hasher.Hash(plain)
	require.NoError(t, err)
	return h
}

// --- 测试 LoginUser ---

func TestAuthService_LoginUser_Success(t *testing.T) {
	// Arrange
	f := newAuthFixture(t)
	ctx := context.Background()
	userInDb := &domain.User{Username: "alice", Password: f.hash(t, "password123")}
	f.users.On("FindByUsername", ctx, "alice").Return(userInDb, nil).Once()

	// Act
	tok, err := f.svc.LoginUser(ctx, "alice", "password123")

	// Assert: token 解码后的身份与存储的用户名一致
	require.NoError(t, err)
	id, err := f.tokens.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, domain.UserIdentity("alice"), id)

	f.users.AssertExpectations(t)
	f.companies.AssertNotCalled(t, "FindByHandle", mock.Anything, mock.Anything)
}

func TestAuthService_LoginUser_NotFound(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.users.On("FindByUsername", ctx, "nonexistent").Return(nil, repository.ErrNotFound).Once()

	tok, err := f.svc.LoginUser(ctx, "nonexistent", "password")

	require.Error(t, err)
	assert.Empty(t, tok)
	assert.ErrorIs(t, err, service.ErrInvalidIdentifier)
	assert.ErrorIs(t, err, service.ErrUnauthenticated)
	assert.NotErrorIs(t, err, service.ErrInvalidPassword)
	f.users.AssertExpectations(t)
}

func TestAuthService_LoginUser_IncorrectPassword(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	userInDb := &domain.User{Username: "alice", Password: f.hash(t, "password123")}
	f.users.On("FindByUsername", ctx, "alice").Return(userInDb, nil).Once()

	tok, err := f.svc.LoginUser(ctx, "alice", "wrongpassword")

	require.Error(t, err)
	assert.Empty(t, tok, "密码错误时不应签发 token")
	assert.ErrorIs(t, err, service.ErrInvalidPassword)
	assert.ErrorIs(t, err, service.ErrUnauthenticated)
	f.users.AssertExpectations(t)
}

func TestAuthService_LoginUser_StoreFailure(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.users.On("FindByUsername", ctx, "alice").Return(nil, errors.New("connection reset")).Once()

	_, err := f.svc.LoginUser(ctx, "alice", "password")

	assert.ErrorIs(t, err, service.ErrStoreFailure)
	assert.NotErrorIs(t, err, service.ErrUnauthenticated)
}

func TestAuthService_LoginUser_EmptyIdentifier(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.LoginUser(context.Background(), "", "password")

	assert.ErrorIs(t, err, service.ErrInvalidIdentifier)
	f.users.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
}

// --- 测试 LoginCompany ---

func TestAuthService_LoginCompany_Success(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	companyInDb := &domain.Company{Handle: "acme", Password: f.hash(t, "s3cret")}
	f.companies.On("FindByHandle", ctx, "acme").Return(companyInDb, nil).Once()

	tok, err := f.svc.LoginCompany(ctx, "acme", "s3cret")

	require.NoError(t, err)
	id, err := f.tokens.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, domain.CompanyIdentity("acme"), id)
	f.companies.AssertExpectations(t)
	f.users.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
}

func TestAuthService_LoginCompany_Failures(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	companyInDb := &domain.Company{Handle: "acme", Password: f.hash(t, "s3cret")}
	f.companies.On("FindByHandle", ctx, "acme").Return(companyInDb, nil)
	f.companies.On("FindByHandle", ctx, "globex").Return(nil, repository.ErrNotFound)

	_, err := f.svc.LoginCompany(ctx, "acme", "nope")
	assert.ErrorIs(t, err, service.ErrInvalidPassword)

	_, err = f.svc.LoginCompany(ctx, "globex", "s3cret")
	assert.ErrorIs(t, err, service.ErrInvalidIdentifier)
}

func TestAuthService_Authenticate_UnknownKind(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Authenticate(context.Background(), "alice", "pw", domain.ActorKind("admin"))

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrStoreFailure)
}
