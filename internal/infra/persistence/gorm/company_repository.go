package gormpersistence

import (
	"context"

	"gorm.io/gorm"

	"job-board/internal/domain"
	"job-board/internal/patch"
	"job-board/internal/repository"
)

// GormCompanyRepository 是 CompanyRepository 接口的 GORM 实现
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository 创建 GormCompanyRepository 实例
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	if db == nil {
		panic("database connection cannot be nil for GormCompanyRepository")
	}
	return &GormCompanyRepository{db: db}
}

var _ repository.CompanyRepository = (*GormCompanyRepository)(nil)

func (r *GormCompanyRepository) FindByHandle(ctx context.Context, handle string) (*domain.Company, error) {
	var company domain.Company
	if err := r.db.WithContext(ctx).Where("handle = ?", handle).First(&company).Error; err != nil {
		return nil, wrap(err, "find company by handle '%s'", handle)
	}
	return &company, nil
}

func (r *GormCompanyRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Company{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, wrap(err, "count companies by email")
	}
	return count > 0, nil
}

func (r *GormCompanyRepository) List(ctx context.Context) ([]domain.Company, error) {
	companies := []domain.Company{}
	if err := r.db.WithContext(ctx).Order("handle").Find(&companies).Error; err != nil {
		return nil, wrap(err, "list companies")
	}
	return companies, nil
}

func (r *GormCompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	// Omit 关联，避免 gorm 尝试 upsert 空的 Jobs/Employees
	if err := r.db.WithContext(ctx).Omit("Jobs", "Employees").Create(company).Error; err != nil {
		return wrap(err, "create company '%s'", company.Handle)
	}
	return nil
}

func (r *GormCompanyRepository) Update(ctx context.Context, stmt patch.Statement) (*domain.Company, error) {
	var company domain.Company
	if err := applyStatement(ctx, r.db, stmt, &company); err != nil {
		return nil, wrap(err, "update company '%v'", stmt.KeyValue)
	}
	return &company, nil
}

// Delete 依赖外键约束完成级联：jobs/applications 删除，users.current_company 置空。
func (r *GormCompanyRepository) Delete(ctx context.Context, handle string) error {
	result := r.db.WithContext(ctx).Where("handle = ?", handle).Delete(&domain.Company{})
	if result.Error != nil {
		return wrap(result.Error, "delete company '%s'", handle)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
