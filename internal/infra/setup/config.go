package setup

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// 支持的数据库驱动
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// sqliteMemory 是 DB_NAME 为空时使用的进程内 SQLite 库
const sqliteMemory = ":memory:"

// DBConfig 是连接关系型数据库所需的参数
type DBConfig struct {
	Driver   string
	User     string
	Password string
	Host     string
	Port     string
	Name     string // sqlite 下是文件路径，留空则使用内存库
	SSLMode  string // 仅 postgres 使用
}

// InMemory 报告配置是否指向进程内 SQLite 库
func (c DBConfig) InMemory() bool {
	return c.Driver == DriverSQLite && (c.Name == "" || c.Name == sqliteMemory)
}

// DSN 根据驱动构建连接字符串，缺少必填项时返回错误
func (c DBConfig) DSN() (string, error) {
	if c.Driver == DriverSQLite {
		// SQLite 默认不检查外键，级联删除依赖它
		name := c.Name
		if c.InMemory() {
			name = sqliteMemory
		}
		return "file:" + name + "?_pragma=foreign_keys(1)", nil
	}
	if c.User == "" {
		return "", fmt.Errorf("DB_USER environment variable not set")
	}
	// 安全起见不提供默认密码，强制要求配置
	if c.Password == "" {
		return "", fmt.Errorf("DB_PASSWORD environment variable not set")
	}
	host := c.Host
	if host == "" {
		host = "127.0.0.1" // 本地开发默认值
	}
	name := c.Name
	if name == "" {
		name = "job_board"
	}

	switch c.Driver {
	case DriverMySQL:
		port := c.Port
		if port == "" {
			port = "3306"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.User, c.Password, host, port, name), nil
	case DriverPostgres:
		port := c.Port
		if port == "" {
			port = "5432"
		}
		sslMode := c.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			host, c.User, c.Password, name, port, sslMode), nil
	}
	return "", fmt.Errorf("unsupported DB_DRIVER %q", c.Driver)
}

// InitDB 打开数据库连接并配置连接池
func InitDB(cfg DBConfig) (*gorm.DB, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, fmt.Errorf("failed to build DSN: %w", err)
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverMySQL:
		dialector = mysql.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(logrus.StandardLogger(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB() // 获取底层的 *sql.DB 对象
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if cfg.InMemory() {
		// 每个连接各自持有一个独立的内存库，只能保留唯一一条长期连接
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	} else {
		sqlDB.SetMaxOpenConns(50)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	logrus.WithFields(logrus.Fields{"driver": cfg.Driver, "host": cfg.Host, "database": cfg.Name}).Info("Database connected")
	return db, nil
}
