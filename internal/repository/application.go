package repository

import (
	"context"

	"job-board/internal/domain"
)

// ApplicationRepository 定义了职位申请的存储和检索操作。
type ApplicationRepository interface {
	FindByID(ctx context.Context, id uint) (*domain.Application, error)
	// Exists 检查 (jobID, username) 是否已有申请。
	Exists(ctx context.Context, jobID uint, username string) (bool, error)
	ListByUser(ctx context.Context, username string) ([]domain.Application, error)
	// ListByCompany 返回投递到该公司所有职位的申请。
	ListByCompany(ctx context.Context, handle string) ([]domain.Application, error)
	Create(ctx context.Context, app *domain.Application) error
	Delete(ctx context.Context, id uint) error
}
