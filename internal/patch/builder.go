// Package patch 把客户端提交的任意字段子集转换成安全的参数化 UPDATE 语句。
package patch

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// PasswordColumn 出现在更新字段中时，其明文值会在构造语句前被替换为哈希。
const PasswordColumn = "password"

var (
	ErrEmptyUpdate   = errors.New("update contains no fields")
	ErrUnknownColumn = errors.New("column is not updatable")
	ErrInvalidValue  = errors.New("invalid column value")
)

// Hasher 对明文密码做单向哈希。
type Hasher interface {
	Hash(plain string) (string, error)
}

// Statement 是构造好的单行更新：SET 各列，WHERE key = value。
type Statement struct {
	Table       string
	KeyColumn   string
	KeyValue    any
	Assignments Fields
}

// SQL 使用 "?" 占位符渲染语句 (gorm 会按方言转换)。
func (s Statement) SQL() string {
	return s.render(func(int) string { return "?" })
}

// Numbered 使用 $1, $2 ... 占位符渲染语句 (Postgres 原生格式)。
func (s Statement) Numbered() string {
	return s.render(func(i int) string { return fmt.Sprintf("$%d", i) })
}

// Args 返回按占位符顺序排列的绑定值，最后一个是主键值。
func (s Statement) Args() []any {
	args := make([]any, 0, len(s.Assignments)+1)
	for _, a := range s.Assignments {
		args = append(args, a.Value)
	}
	return append(args, s.KeyValue)
}

func (s Statement) render(placeholder func(int) string) string {
	sets := make([]string, 0, len(s.Assignments))
	idx := 1
	for _, a := range s.Assignments {
		sets = append(sets, a.Column+" = "+placeholder(idx))
		idx++
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s = %s",
		s.Table, strings.Join(sets, ", "), s.KeyColumn, placeholder(idx))
}

// Builder 构造 Statement。hasher 可以为 nil，此时包含密码列的更新会被拒绝。
type Builder struct {
	hasher Hasher
}

func NewBuilder(hasher Hasher) *Builder {
	return &Builder{hasher: hasher}
}

// Build 校验字段、处理密码列并生成语句。fields 为空时返回 ErrEmptyUpdate，
// 此时不会触及存储。
func (b *Builder) Build(ctx context.Context, table Table, fields Fields, keyValue any) (Statement, error) {
	if len(fields) == 0 {
		return Statement{}, ErrEmptyUpdate
	}
	if err := ctx.Err(); err != nil {
		return Statement{}, err
	}

	assignments := make(Fields, 0, len(fields))
	for _, f := range fields {
		value, err := table.normalize(f.Column, f.Value)
		if err != nil {
			return Statement{}, err
		}
		assignments = append(assignments, Field{Column: f.Column, Value: value})
	}

	// 密码只哈希一次，并且在生成占位符之前完成
	for i := range assignments {
		if assignments[i].Column != PasswordColumn {
			continue
		}
		plain, ok := assignments[i].Value.(string)
		if !ok || plain == "" {
			return Statement{}, invalidValue(PasswordColumn, "non-empty string")
		}
		if b.hasher == nil {
			return Statement{}, fmt.Errorf("%w: %s", ErrUnknownColumn, PasswordColumn)
		}
		hashed, err := b.hasher.Hash(plain)
		if err != nil {
			return Statement{}, fmt.Errorf("patch: hash password: %w", err)
		}
		assignments[i].Value = hashed
		break
	}

	return Statement{
		Table:       table.Name,
		KeyColumn:   table.KeyColumn,
		KeyValue:    keyValue,
		Assignments: assignments,
	}, nil
}
