package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/listkeeper/backend/internal/domain/todo"
)

// todoRepository 待办清单 SQL 仓储实现（MySQL / SQLite 通用）
type todoRepository struct {
	db *sql.DB
}

// NewTodoRepository 创建待办清单仓储实例
func NewTodoRepository(db *sql.DB) todo.Repository {
	return &todoRepository{db: db}
}

// FindAllLists 获取所有清单
func (r *todoRepository) FindAllLists(ctx context.Context) ([]*todo.List, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM todo_lists ORDER BY id`)
	if err != nil {
		return nil, todo.NewStorageError(todo.OpQuery, err)
	}
	defer rows.Close()

	lists := make([]*todo.List, 0)
	for rows.Next() {
		var list todo.List
		if err := rows.Scan(&list.ID, &list.Name); err != nil {
			return nil, todo.NewStorageError(todo.OpQuery, err)
		}
		lists = append(lists, &list)
	}
	if err := rows.Err(); err != nil {
		return nil, todo.NewStorageError(todo.OpQuery, err)
	}

	return lists, nil
}

// FindAllItems 获取所有事项
func (r *todoRepository) FindAllItems(ctx context.Context) ([]*todo.Item, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, list_id, name, completed FROM todo_items ORDER BY id`)
	if err != nil {
		return nil, todo.NewStorageError(todo.OpQuery, err)
	}
	defer rows.Close()

	items := make([]*todo.Item, 0)
	for rows.Next() {
		var item todo.Item
		if err := rows.Scan(&item.ID, &item.ListID, &item.Name, &item.Completed); err != nil {
			return nil, todo.NewStorageError(todo.OpQuery, err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, todo.NewStorageError(todo.OpQuery, err)
	}

	return items, nil
}

// FindDisplayRows 获取清单 LEFT JOIN 事项的展示数据
func (r *todoRepository) FindDisplayRows(ctx context.Context) ([]*todo.DisplayRow, error) {
	query := `
		SELECT
			todo_lists.name AS list_name,
			todo_items.name AS item_name,
			todo_items.completed
		FROM todo_lists
		LEFT JOIN todo_items ON todo_items.list_id = todo_lists.id
		ORDER BY todo_lists.id, todo_items.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, todo.NewStorageError(todo.OpQuery, err)
	}
	defer rows.Close()

	result := make([]*todo.DisplayRow, 0)
	for rows.Next() {
		var (
			row       todo.DisplayRow
			itemName  sql.NullString
			completed sql.NullBool
		)
		if err := rows.Scan(&row.ListName, &itemName, &completed); err != nil {
			return nil, todo.NewStorageError(todo.OpQuery, err)
		}
		if itemName.Valid {
			name := itemName.String
			row.ItemName = &name
		}
		if completed.Valid {
			done := completed.Bool
			row.Completed = &done
		}
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, todo.NewStorageError(todo.OpQuery, err)
	}

	return result, nil
}

// ResolveListID 根据清单名称查找 ID
func (r *todoRepository) ResolveListID(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM todo_lists WHERE name = ? ORDER BY id LIMIT 1`, name,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, &todo.ListNotFoundError{Name: name}
		}
		return 0, todo.NewStorageError(todo.OpResolveList, err)
	}
	return id, nil
}

// CreateList 创建清单
// 先做应用层重名检查，唯一约束兜底并发插入
func (r *todoRepository) CreateList(ctx context.Context, name string) error {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM todo_lists WHERE name = ?)`, name,
	).Scan(&exists)
	if err != nil {
		return todo.NewStorageError(todo.OpCheckDuplicateList, err)
	}
	if exists {
		return todo.ErrDuplicateList
	}

	if _, err := r.db.ExecContext(ctx, `INSERT INTO todo_lists (name) VALUES (?)`, name); err != nil {
		if isUniqueViolation(err) {
			return todo.ErrDuplicateList
		}
		return todo.NewStorageError(todo.OpInsert, err)
	}

	return nil
}

// CreateItem 在清单下创建未完成的事项
func (r *todoRepository) CreateItem(ctx context.Context, listName, itemName string) error {
	listID, err := r.ResolveListID(ctx, listName)
	if err != nil {
		return err
	}

	var exists bool
	err = r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM todo_items WHERE name = ? AND list_id = ?)`, itemName, listID,
	).Scan(&exists)
	if err != nil {
		return todo.NewStorageError(todo.OpCheckDuplicateItem, err)
	}
	if exists {
		return todo.ErrDuplicateItem
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO todo_items (list_id, name, completed) VALUES (?, ?, ?)`, listID, itemName, false,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return todo.ErrDuplicateItem
		}
		return todo.NewStorageError(todo.OpInsert, err)
	}

	return nil
}

// ToggleItem 翻转事项完成状态，不检查影响行数
func (r *todoRepository) ToggleItem(ctx context.Context, listName, itemName string) error {
	listID, err := r.ResolveListID(ctx, listName)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE todo_items SET completed = NOT completed WHERE name = ? AND list_id = ?`, itemName, listID,
	)
	if err != nil {
		return todo.NewStorageError(todo.OpToggle, err)
	}
	return nil
}

// DeleteItem 删除事项，不检查影响行数
func (r *todoRepository) DeleteItem(ctx context.Context, listName, itemName string) error {
	listID, err := r.ResolveListID(ctx, listName)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`DELETE FROM todo_items WHERE list_id = ? AND name = ?`, listID, itemName,
	)
	if err != nil {
		return todo.NewStorageError(todo.OpDeleteItem, err)
	}
	return nil
}

// DeleteList 在同一事务中删除清单及其事项，清单不存在时静默成功
func (r *todoRepository) DeleteList(ctx context.Context, listName string) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return todo.NewStorageError(todo.OpDeleteList, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`DELETE FROM todo_items WHERE list_id IN (SELECT id FROM todo_lists WHERE name = ?)`, listName,
	); err != nil {
		return todo.NewStorageError(todo.OpDeleteList, fmt.Errorf("delete items: %w", err))
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM todo_lists WHERE name = ?`, listName); err != nil {
		return todo.NewStorageError(todo.OpDeleteList, err)
	}

	if err = tx.Commit(); err != nil {
		return todo.NewStorageError(todo.OpDeleteList, err)
	}
	return nil
}

// 编译时检查接口实现
var _ todo.Repository = (*todoRepository)(nil)
