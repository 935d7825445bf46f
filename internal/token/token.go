// Package token 签发和验证两类主体 (用户 / 公司) 的身份 token。
package token

import (
	"errors"
	"fmt"
	"time"

	"job-board/internal/domain"

	"github.com/golang-jwt/jwt/v4"
)

var (
	// ErrMissingToken 表示请求没有携带 token。
	ErrMissingToken = errors.New("token: missing")
	// ErrInvalidToken 表示签名不匹配、格式错误或声明形状不合法。
	ErrInvalidToken = errors.New("token: invalid")
)

// SecretProvider 提供签名密钥。目前只有静态实现，接口为将来的密钥轮换预留。
type SecretProvider interface {
	Secret() []byte
}

// StaticSecret 是进程启动时注入的固定密钥。
type StaticSecret []byte

func (s StaticSecret) Secret() []byte { return s }

// Claims 是 token 的载荷。Username 与 Handle 互斥，恰好设置一个。
type Claims struct {
	Username string `json:"username,omitempty"`
	Handle   string `json:"handle,omitempty"`
	jwt.RegisteredClaims
}

// Identity 把声明转换成调用方身份。
func (c *Claims) Identity() (domain.Identity, error) {
	switch {
	case c.Username != "" && c.Handle == "":
		return domain.UserIdentity(c.Username), nil
	case c.Handle != "" && c.Username == "":
		return domain.CompanyIdentity(c.Handle), nil
	}
	return domain.Identity{}, fmt.Errorf("%w: claims must carry exactly one of username or handle", ErrInvalidToken)
}

// Service 负责 token 的签发与验证。token 不设过期时间。
type Service struct {
	secrets SecretProvider
	now     func() time.Time
}

// NewService 创建 Service。密钥为空时返回错误。
func NewService(secrets SecretProvider) (*Service, error) {
	if secrets == nil || len(secrets.Secret()) == 0 {
		return nil, fmt.Errorf("JWT secret key cannot be empty")
	}
	return &Service{secrets: secrets, now: time.Now}, nil
}

// Issue 为身份签发 HS256 token。
func (s *Service) Issue(id domain.Identity) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{IssuedAt: jwt.NewNumericDate(s.now())},
	}
	switch {
	case id.IsUser():
		claims.Username = id.Key
	case id.IsCompany():
		claims.Handle = id.Key
	default:
		return "", fmt.Errorf("token: cannot issue for identity %s", id)
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secrets.Secret())
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify 校验签名并解码身份。
func (s *Service) Verify(tokenStr string) (domain.Identity, error) {
	if tokenStr == "" {
		return domain.Identity{}, ErrMissingToken
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		// 只接受 HMAC 签名，防止 alg 替换
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secrets.Secret(), nil
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return domain.Identity{}, ErrInvalidToken
	}
	return claims.Identity()
}
