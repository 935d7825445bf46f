package repository

import (
	"context"

	"job-board/internal/domain"
	"job-board/internal/patch"
)

// UserRepository 定义了用户数据的存储和检索操作。
type UserRepository interface {
	// FindByUsername 根据用户名查找用户。
	// 如果用户不存在，返回 ErrNotFound。
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	// ListByCompany 返回当前雇主为 handle 的用户。
	ListByCompany(ctx context.Context, handle string) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, stmt patch.Statement) (*domain.User, error)
	// Delete 删除用户，其申请级联删除。
	Delete(ctx context.Context, username string) error
}
