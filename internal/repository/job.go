package repository

import (
	"context"

	"job-board/internal/domain"
	"job-board/internal/patch"
)

// JobRepository 定义了职位数据的存储和检索操作。
type JobRepository interface {
	FindByID(ctx context.Context, id uint) (*domain.Job, error)
	List(ctx context.Context) ([]domain.Job, error)
	ListByCompany(ctx context.Context, handle string) ([]domain.Job, error)
	Create(ctx context.Context, job *domain.Job) error
	Update(ctx context.Context, stmt patch.Statement) (*domain.Job, error)
	Delete(ctx context.Context, id uint) error
}
