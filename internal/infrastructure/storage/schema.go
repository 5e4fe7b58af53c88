package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/listkeeper/backend/internal/infrastructure/config"
)

// 名称列使用 NO PAD 的二进制排序规则（MySQL 8.0+），大小写与尾部空格都参与比较
var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS todo_lists (
		id INT NOT NULL AUTO_INCREMENT,
		name VARCHAR(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_0900_bin NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY uq_todo_lists_name (name)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS todo_items (
		id INT NOT NULL AUTO_INCREMENT,
		list_id INT NOT NULL,
		name VARCHAR(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_0900_bin NOT NULL,
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		PRIMARY KEY (id),
		UNIQUE KEY uq_todo_items_list_name (list_id, name),
		CONSTRAINT fk_todo_items_list FOREIGN KEY (list_id)
			REFERENCES todo_lists (id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS todo_lists (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS todo_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		list_id INTEGER NOT NULL REFERENCES todo_lists (id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		completed INTEGER NOT NULL DEFAULT 0,
		UNIQUE (list_id, name)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_todo_items_list_id ON todo_items (list_id)`,
}

// Migrate 创建 todo_lists / todo_items 表（幂等）
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	var statements []string
	switch driver {
	case config.DriverMySQL:
		statements = mysqlSchema
	case config.DriverSQLite:
		statements = sqliteSchema
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	return nil
}
