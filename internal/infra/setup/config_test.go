package setup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBConfig_DSN(t *testing.T) {
	t.Run("mysql defaults", func(t *testing.T) {
		dsn, err := DBConfig{Driver: DriverMySQL, User: "app", Password: "pw"}.DSN()
		require.NoError(t, err)
		assert.Equal(t, "app:pw@tcp(127.0.0.1:3306)/job_board?charset=utf8mb4&parseTime=True&loc=Local", dsn)
	})

	t.Run("postgres", func(t *testing.T) {
		dsn, err := DBConfig{
			Driver: DriverPostgres, User: "app", Password: "pw", Host: "db", Port: "6543", Name: "jobs", SSLMode: "require",
		}.DSN()
		require.NoError(t, err)
		assert.Equal(t, "host=db user=app password=pw dbname=jobs port=6543 sslmode=require TimeZone=UTC", dsn)
	})

	t.Run("missing credentials", func(t *testing.T) {
		_, err := DBConfig{Driver: DriverPostgres, Password: "pw"}.DSN()
		assert.ErrorContains(t, err, "DB_USER")
		_, err = DBConfig{Driver: DriverPostgres, User: "app"}.DSN()
		assert.ErrorContains(t, err, "DB_PASSWORD")
	})

	t.Run("sqlite needs no credentials", func(t *testing.T) {
		dsn, err := DBConfig{Driver: DriverSQLite}.DSN()
		require.NoError(t, err)
		assert.Equal(t, "file::memory:?_pragma=foreign_keys(1)", dsn)

		dsn, err = DBConfig{Driver: DriverSQLite, Name: "/tmp/jobs.db"}.DSN()
		require.NoError(t, err)
		assert.Equal(t, "file:/tmp/jobs.db?_pragma=foreign_keys(1)", dsn)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := DBConfig{Driver: "oracle", User: "app", Password: "pw"}.DSN()
		assert.Error(t, err)
	})
}

func TestInitDB_InMemorySQLite(t *testing.T) {
	db, err := InitDB(DBConfig{Driver: DriverSQLite})
	require.NoError(t, err)
	require.NoError(t, MigrateDB(db))

	var fk int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	assert.NoError(t, sqlDB.Close())
}

func TestMigrateDB_NilConnection(t *testing.T) {
	assert.Error(t, MigrateDB(nil))
}
