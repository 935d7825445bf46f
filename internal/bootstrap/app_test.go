package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"job-board/internal/infra/setup"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	for _, key := range []string{"APP_ENV", "SERVER_PORT", "LOG_LEVEL", "DB_DRIVER", "BCRYPT_COST", "CORS_ALLOWED_ORIGIN"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, setup.DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
}

func TestLoadConfig_Validation(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("DB_DRIVER", "oracle")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "DB_DRIVER")
	})

	t.Run("bad bcrypt cost", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("DB_DRIVER", "sqlite")
		t.Setenv("BCRYPT_COST", "99")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "BCRYPT_COST")
	})

	t.Run("invalid log level falls back", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("DB_DRIVER", "sqlite")
		t.Setenv("BCRYPT_COST", "")
		t.Setenv("LOG_LEVEL", "loud")
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.LogLevel)
	})
}

// newSQLiteApp 使用进程内 SQLite 启动完整应用
func newSQLiteApp(t *testing.T) *App {
	t.Helper()
	app, err := NewAppWithConfig(&Config{
		AppEnv:            "test",
		ServerPort:        "0",
		LogLevel:          "error",
		JWTSecret:         "s3cret",
		BcryptCost:        bcrypt.MinCost,
		CORSAllowedOrigin: "http://example.test",
		DB:                setup.DBConfig{Driver: setup.DriverSQLite},
	})
	require.NoError(t, err)
	require.NotNil(t, app.DB)
	assert.True(t, app.DB.Migrator().HasTable("applications"), "启动时完成迁移")
	t.Cleanup(func() {
		if sqlDB, err := app.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return app
}

func TestNewApp_SQLiteStoreServes(t *testing.T) {
	app := newSQLiteApp(t)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	app.HttpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "http://example.test", rec.Header().Get("Access-Control-Allow-Origin"))

	body := `{"username":"alice","password":"pw","first_name":"A","last_name":"L","email":"alice@example.com"}`
	req = httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	app.HttpServer.Handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"), "未提供时生成请求 ID")
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	app := newSQLiteApp(t)

	req := httptest.NewRequest(http.MethodOptions, "/companies", nil)
	rec := httptest.NewRecorder()
	app.HttpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}
