package gormpersistence

import (
	"context"

	"gorm.io/gorm"

	"job-board/internal/domain"
	"job-board/internal/patch"
	"job-board/internal/repository"
)

// GormUserRepository 是 UserRepository 接口的 GORM 实现
type GormUserRepository struct {
	db *gorm.DB // 依赖 GORM DB 连接
}

// NewGormUserRepository 创建 GormUserRepository 实例
// db *gorm.DB 通过依赖注入传入
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	if db == nil {
		// 早期失败比运行时 panic 更好
		panic("database connection cannot be nil for GormUserRepository")
	}
	return &GormUserRepository{db: db}
}

var _ repository.UserRepository = (*GormUserRepository)(nil)

// FindByUsername 实现根据用户名查找用户
func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		// 记录未找到映射为 repository.ErrNotFound
		return nil, wrap(err, "find user by username '%s'", username)
	}
	return &user, nil
}

func (r *GormUserRepository) List(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	if err := r.db.WithContext(ctx).Order("username").Find(&users).Error; err != nil {
		return nil, wrap(err, "list users")
	}
	return users, nil
}

// ListByCompany 返回当前雇主为 handle 的用户
func (r *GormUserRepository) ListByCompany(ctx context.Context, handle string) ([]domain.User, error) {
	users := []domain.User{}
	err := r.db.WithContext(ctx).Where("current_company = ?", handle).Order("username").Find(&users).Error
	if err != nil {
		return nil, wrap(err, "list users of company '%s'", handle)
	}
	return users, nil
}

func (r *GormUserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := r.db.WithContext(ctx).Omit("Applications").Create(user).Error; err != nil {
		return wrap(err, "create user '%s'", user.Username)
	}
	return nil
}

func (r *GormUserRepository) Update(ctx context.Context, stmt patch.Statement) (*domain.User, error) {
	var user domain.User
	if err := applyStatement(ctx, r.db, stmt, &user); err != nil {
		return nil, wrap(err, "update user '%v'", stmt.KeyValue)
	}
	return &user, nil
}

func (r *GormUserRepository) Delete(ctx context.Context, username string) error {
	result := r.db.WithContext(ctx).Where("username = ?", username).Delete(&domain.User{})
	if result.Error != nil {
		return wrap(result.Error, "delete user '%s'", username)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
