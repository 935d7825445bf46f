package gormpersistence

import (
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"job-board/internal/repository"
)

type fakeSQLiteError int

func (e fakeSQLiteError) Error() string { return "constraint failed" }
func (e fakeSQLiteError) Code() int { return int(e) }

func TestMapDBError(t *testing.T) {
	plain := errors.New("connection refused")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"record not found", gorm.ErrRecordNotFound, repository.ErrNotFound},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, repository.ErrDuplicateEntry},
		{"mysql duplicate", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, repository.ErrDuplicateEntry},
		{"mysql fk child", &mysql.MySQLError{Number: 1452, Message: "Cannot add"}, repository.ErrForeignKey},
		{"mysql fk parent", &mysql.MySQLError{Number: 1451, Message: "Cannot delete"}, repository.ErrForeignKey},
		{"pg unique", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "idx_companies_email"}, repository.ErrDuplicateEntry},
		{"pg fk", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, repository.ErrForeignKey},
		{"sqlite unique", fakeSQLiteError(2067), repository.ErrDuplicateEntry},
		{"sqlite primary key", fakeSQLiteError(1555), repository.ErrDuplicateEntry},
		{"sqlite fk", fakeSQLiteError(787), repository.ErrForeignKey},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, mapDBError(tc.err), tc.want)
		})
	}

	assert.Nil(t, mapDBError(nil))
	assert.Same(t, plain, mapDBError(plain))
	other := &mysql.MySQLError{Number: 1205}
	assert.Equal(t, error(other), mapDBError(other))
}

func TestWrapKeepsSentinel(t *testing.T) {
	err := wrap(gorm.ErrRecordNotFound, "find company by handle '%s'", "acme")

	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Contains(t, err.Error(), "acme")
	assert.Nil(t, wrap(nil, "noop"))
}
