package gormpersistence

import (
	"context"

	"gorm.io/gorm"

	"job-board/internal/domain"
	"job-board/internal/repository"
)

// GormApplicationRepository 是 ApplicationRepository 接口的 GORM 实现
type GormApplicationRepository struct {
	db *gorm.DB
}

// NewGormApplicationRepository 创建 GormApplicationRepository 实例
func NewGormApplicationRepository(db *gorm.DB) *GormApplicationRepository {
	if db == nil {
		panic("database connection cannot be nil for GormApplicationRepository")
	}
	return &GormApplicationRepository{db: db}
}

var _ repository.ApplicationRepository = (*GormApplicationRepository)(nil)

func (r *GormApplicationRepository) FindByID(ctx context.Context, id uint) (*domain.Application, error) {
	var app domain.Application
	if err := r.db.WithContext(ctx).First(&app, id).Error; err != nil {
		return nil, wrap(err, "find application by id %d", id)
	}
	return &app, nil
}

// Exists 使用 Count 只查询数量
func (r *GormApplicationRepository) Exists(ctx context.Context, jobID uint, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Application{}).
		Where("job_id = ? AND username = ?", jobID, username).Count(&count).Error
	if err != nil {
		return false, wrap(err, "count applications of '%s' to job %d", username, jobID)
	}
	return count > 0, nil
}

func (r *GormApplicationRepository) ListByUser(ctx context.Context, username string) ([]domain.Application, error) {
	apps := []domain.Application{}
	if err := r.db.WithContext(ctx).Where("username = ?", username).Order("id").Find(&apps).Error; err != nil {
		return nil, wrap(err, "list applications of '%s'", username)
	}
	return apps, nil
}

func (r *GormApplicationRepository) ListByCompany(ctx context.Context, handle string) ([]domain.Application, error) {
	apps := []domain.Application{}
	err := r.db.WithContext(ctx).
		Select("applications.*").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.company = ?", handle).
		Order("applications.id").
		Find(&apps).Error
	if err != nil {
		return nil, wrap(err, "list applications to company '%s'", handle)
	}
	return apps, nil
}

func (r *GormApplicationRepository) Create(ctx context.Context, app *domain.Application) error {
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		return wrap(err, "create application of '%s' to job %d", app.Username, app.JobID)
	}
	return nil
}

func (r *GormApplicationRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Application{}, id)
	if result.Error != nil {
		return wrap(result.Error, "delete application %d", id)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
