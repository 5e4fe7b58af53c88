package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/listkeeper/backend/internal/infrastructure/config"
	"github.com/listkeeper/backend/internal/infrastructure/log"
	_ "modernc.org/sqlite"
)

const pingTimeout = 5 * time.Second

// OpenDB 根据配置打开数据库连接池
// 每个请求从池中获取连接并在语句结束后归还，不再共享单一连接
func OpenDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	var (
		db  *sql.DB
		err error
	)

	switch cfg.Driver {
	case config.DriverMySQL:
		db, err = openMySQL(cfg)
	case config.DriverSQLite:
		db, err = openSQLite(cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	// 测试连接
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func openMySQL(cfg *config.DatabaseConfig) (*sql.DB, error) {
	mcfg := mysql.NewConfig()
	mcfg.User = cfg.User
	mcfg.Passwd = cfg.Password
	mcfg.Net = "tcp"
	mcfg.Addr = cfg.Address()
	mcfg.DBName = cfg.Name
	mcfg.ParseTime = true

	connector, err := mysql.NewConnector(mcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create mysql connector: %w", err)
	}

	db := sql.OpenDB(connector)
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return db, nil
}

func openSQLite(cfg *config.DatabaseConfig) (*sql.DB, error) {
	path := cfg.SQLitePath()
	if err := config.EnsureDir(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", SQLiteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite 单写者，串行化写入避免 SQLITE_BUSY
	db.SetMaxOpenConns(1)

	return db, nil
}

// SQLiteDSN 构造启用外键与 WAL 的 SQLite DSN
func SQLiteDSN(path string) string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "busy_timeout(5000)")
	q.Add("_pragma", "journal_mode(WAL)")
	return "file:" + path + "?" + q.Encode()
}

// ProvideDB 打开数据库并初始化表结构
func ProvideDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	logger := log.NewModuleLogger("storage", "db")

	db, err := OpenDB(cfg)
	if err != nil {
		return nil, err
	}

	if err := Migrate(context.Background(), db, cfg.Driver); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("Connected to database.",
		"driver", cfg.Driver,
	)
	return db, nil
}
