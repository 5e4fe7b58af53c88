package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolation_MySQL(t *testing.T) {
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'Home' for key 'uq_todo_lists_name'"}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"重复键", dup, true},
		{"包装后的重复键", fmt.Errorf("insert list: %w", dup), true},
		{"外键错误", &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"}, false},
		{"普通错误", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueViolation(tt.err))
		})
	}
}

func TestIsUniqueViolation_SQLite(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO todo_lists (name) VALUES (?)`, "Home")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `INSERT INTO todo_lists (name) VALUES (?)`, "Home")
	require.Error(t, err)
	assert.True(t, isUniqueViolation(err))
}

func TestMySQLSchema_NoPadCollation(t *testing.T) {
	for _, stmt := range mysqlSchema {
		assert.NotContains(t, stmt, "utf8mb4_bin ", "PAD SPACE 排序规则会忽略尾部空格")
		if strings.Contains(stmt, "name VARCHAR") {
			assert.Contains(t, stmt, "COLLATE utf8mb4_0900_bin")
		}
	}
}

func TestTodoRepository_TrailingSpaceIsDistinct(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateList(ctx, "Groceries"))
	require.NoError(t, repo.CreateList(ctx, "Groceries "), "尾部空格不同的名称是不同的清单")

	plain, err := repo.ResolveListID(ctx, "Groceries")
	require.NoError(t, err)
	spaced, err := repo.ResolveListID(ctx, "Groceries ")
	require.NoError(t, err)
	assert.NotEqual(t, plain, spaced)

	require.NoError(t, repo.CreateItem(ctx, "Groceries", "Milk"))
	require.NoError(t, repo.CreateItem(ctx, "Groceries", "Milk "))
}
