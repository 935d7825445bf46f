package gormpersistence

import (
	"context"

	"gorm.io/gorm"

	"job-board/internal/patch"
)

// applyStatement 在一个事务内执行选择性更新并把更新后的行读回 dest。
// 行不存在时 First 返回 ErrRecordNotFound；不依赖 RowsAffected，
// 因为 MySQL 对值未变化的行报告 0。
func applyStatement(ctx context.Context, db *gorm.DB, stmt patch.Statement, dest any) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(stmt.SQL(), stmt.Args()...).Error; err != nil {
			return err
		}
		return tx.Where(stmt.KeyColumn+" = ?", stmt.KeyValue).First(dest).Error
	})
}
