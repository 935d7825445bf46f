package gormpersistence

import (
	"context"

	"gorm.io/gorm"

	"job-board/internal/domain"
	"job-board/internal/patch"
	"job-board/internal/repository"
)

// GormJobRepository 是 JobRepository 接口的 GORM 实现
type GormJobRepository struct {
	db *gorm.DB
}

// NewGormJobRepository 创建 GormJobRepository 实例
func NewGormJobRepository(db *gorm.DB) *GormJobRepository {
	if db == nil {
		panic("database connection cannot be nil for GormJobRepository")
	}
	return &GormJobRepository{db: db}
}

var _ repository.JobRepository = (*GormJobRepository)(nil)

func (r *GormJobRepository) FindByID(ctx context.Context, id uint) (*domain.Job, error) {
	var job domain.Job
	if err := r.db.WithContext(ctx).First(&job, id).Error; err != nil {
		return nil, wrap(err, "find job by id %d", id)
	}
	return &job, nil
}

func (r *GormJobRepository) List(ctx context.Context) ([]domain.Job, error) {
	jobs := []domain.Job{}
	if err := r.db.WithContext(ctx).Order("id").Find(&jobs).Error; err != nil {
		return nil, wrap(err, "list jobs")
	}
	return jobs, nil
}

func (r *GormJobRepository) ListByCompany(ctx context.Context, handle string) ([]domain.Job, error) {
	jobs := []domain.Job{}
	if err := r.db.WithContext(ctx).Where("company = ?", handle).Order("id").Find(&jobs).Error; err != nil {
		return nil, wrap(err, "list jobs of company '%s'", handle)
	}
	return jobs, nil
}

func (r *GormJobRepository) Create(ctx context.Context, job *domain.Job) error {
	if err := r.db.WithContext(ctx).Omit("Applications").Create(job).Error; err != nil {
		return wrap(err, "create job for company '%s'", job.Company)
	}
	return nil
}

func (r *GormJobRepository) Update(ctx context.Context, stmt patch.Statement) (*domain.Job, error) {
	var job domain.Job
	if err := applyStatement(ctx, r.db, stmt, &job); err != nil {
		return nil, wrap(err, "update job %v", stmt.KeyValue)
	}
	return &job, nil
}

func (r *GormJobRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Job{}, id)
	if result.Error != nil {
		return wrap(result.Error, "delete job %d", id)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
