package gormpersistence

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"job-board/internal/repository"
)

// MySQL 错误号
const (
	mysqlDuplicateEntry  = 1062
	mysqlRowIsReferenced = 1451
	mysqlNoReferencedRow = 1452
)

// SQLite 扩展错误码
const (
	sqliteConstraintForeignKey = 787
	sqliteConstraintPrimaryKey = 1555
	sqliteConstraintUnique     = 2067
)

// sqliteError 是 SQLite 驱动错误暴露的扩展错误码
type sqliteError interface {
	error
	Code() int
}

// mapDBError 把驱动层错误归类为仓库层哨兵错误。无法归类的错误原样返回。
func mapDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", repository.ErrDuplicateEntry, err)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %v", repository.ErrForeignKey, err)
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlDuplicateEntry:
			return fmt.Errorf("%w: %s", repository.ErrDuplicateEntry, mysqlErr.Message)
		case mysqlRowIsReferenced, mysqlNoReferencedRow:
			return fmt.Errorf("%w: %s", repository.ErrForeignKey, mysqlErr.Message)
		}
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%w: %s", repository.ErrDuplicateEntry, pgErr.ConstraintName)
		case pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%w: %s", repository.ErrForeignKey, pgErr.Detail)
		}
		return err
	}

	var liteErr sqliteError
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqliteConstraintUnique, sqliteConstraintPrimaryKey:
			return fmt.Errorf("%w: %s", repository.ErrDuplicateEntry, liteErr.Error())
		case sqliteConstraintForeignKey:
			return fmt.Errorf("%w: %s", repository.ErrForeignKey, liteErr.Error())
		}
	}
	return err
}

// wrap 给无法归类的错误加上操作描述，已归类的哨兵错误保持可被 errors.Is 识别。
func wrap(err error, format string, args ...any) error {
	mapped := mapDBError(err)
	if mapped == nil {
		return nil
	}
	return fmt.Errorf("gorm: "+format+": %w", append(args, mapped)...)
}
