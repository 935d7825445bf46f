// Package password 提供单向哈希与常量时间校验。
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch 表示明文与哈希不匹配。
var ErrMismatch = errors.New("password does not match")

// Bcrypt 使用 bcrypt 实现哈希。零值使用 bcrypt.DefaultCost。
type Bcrypt struct {
	cost int
}

// NewBcrypt 创建哈希器；cost 超出 bcrypt 允许范围时回退到默认值。
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash 使用 bcrypt 对密码进行哈希处理
func (b *Bcrypt) Hash(plain string) (string, error) {
	cost := b.cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("failed to generate hash from password: %w", err)
	}
	return string(bytes), nil
}

// Compare 验证明文是否与存储的哈希匹配。不匹配时返回 ErrMismatch。
func (b *Bcrypt) Compare(hash, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return fmt.Errorf("compare password hash: %w", err)
}
