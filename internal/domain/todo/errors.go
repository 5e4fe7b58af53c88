package todo

import (
	"errors"
	"fmt"
)

var (
	// ErrListNotFound 清单不存在
	ErrListNotFound = errors.New("list not found")
	// ErrDuplicateList 清单重名
	ErrDuplicateList = errors.New("list already exists")
	// ErrDuplicateItem 同一清单内事项重名
	ErrDuplicateItem = errors.New("item already exists in list")
	// ErrMissingListName 缺少清单名称
	ErrMissingListName = errors.New("missing list name")
	// ErrMissingItemName 缺少事项名称
	ErrMissingItemName = errors.New("missing item name")
)

// StorageOp 存储操作阶段，用于区分 500 响应文案
type StorageOp string

const (
	OpQuery              StorageOp = "query"
	OpResolveList        StorageOp = "resolve_list"
	OpCheckDuplicateList StorageOp = "check_duplicate_list"
	OpCheckDuplicateItem StorageOp = "check_duplicate_item"
	OpInsert             StorageOp = "insert"
	OpToggle             StorageOp = "toggle"
	OpDeleteItem         StorageOp = "delete_item"
	OpDeleteList         StorageOp = "delete_list"
)

// StorageError 底层数据库错误
type StorageError struct {
	Op  StorageOp
	Err error
}

// NewStorageError 包装数据库错误
func NewStorageError(op StorageOp, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ListNotFoundError 携带清单名称的不存在错误
type ListNotFoundError struct {
	Name string
}

func (e *ListNotFoundError) Error() string {
	return fmt.Sprintf("List %s not found", e.Name)
}

// Is 使 errors.Is(err, ErrListNotFound) 成立
func (e *ListNotFoundError) Is(target error) bool {
	return target == ErrListNotFound
}
