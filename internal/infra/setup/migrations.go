package setup

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"job-board/internal/domain"
)

// MigrateDB 创建或更新所有表。顺序与外键依赖一致：
// companies 先于 users/jobs，jobs 和 users 先于 applications。
func MigrateDB(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("cannot migrate database with nil DB connection")
	}

	models := []any{
		&domain.Company{},
		&domain.User{},
		&domain.Job{},
		&domain.Application{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			logrus.Errorf("Failed to auto-migrate %T: %v", m, err)
			return fmt.Errorf("failed to auto-migrate %T: %w", m, err)
		}
	}

	logrus.Info("Database migration completed successfully")
	return nil
}
