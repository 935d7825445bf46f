package repository

import (
	"context"

	"job-board/internal/domain"
	"job-board/internal/patch"
)

// CompanyRepository 定义了公司数据的存储和检索操作。
type CompanyRepository interface {
	// FindByHandle 不存在时返回 ErrNotFound。
	FindByHandle(ctx context.Context, handle string) (*domain.Company, error)
	// ExistsByEmail 检查邮箱是否已被其他公司使用。
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]domain.Company, error)
	Create(ctx context.Context, company *domain.Company) error
	// Update 在一个事务内执行选择性更新并返回更新后的完整记录。
	Update(ctx context.Context, stmt patch.Statement) (*domain.Company, error)
	// Delete 删除公司；职位、申请级联删除，用户的 current_company 置空。
	Delete(ctx context.Context, handle string) error
}
