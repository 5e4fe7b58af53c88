package todo

import "context"

// Repository 待办清单仓储接口
//
// 所有方法都使用参数化 SQL。按名称定位事项的操作会先把清单名解析为 ID，
// 清单不存在时返回 ErrListNotFound。
type Repository interface {
	// FindAllLists 获取所有清单
	FindAllLists(ctx context.Context) ([]*List, error)

	// FindAllItems 获取所有事项
	FindAllItems(ctx context.Context) ([]*Item, error)

	// FindDisplayRows 获取清单与事项的 LEFT JOIN 视图
	FindDisplayRows(ctx context.Context) ([]*DisplayRow, error)

	// ResolveListID 根据清单名称精确查找 ID
	ResolveListID(ctx context.Context, name string) (int64, error)

	// CreateList 创建清单，重名时返回 ErrDuplicateList
	CreateList(ctx context.Context, name string) error

	// CreateItem 在清单下创建未完成的事项，重名时返回 ErrDuplicateItem
	CreateItem(ctx context.Context, listName, itemName string) error

	// ToggleItem 翻转事项完成状态，事项不存在时静默成功
	ToggleItem(ctx context.Context, listName, itemName string) error

	// DeleteItem 删除事项，事项不存在时静默成功
	DeleteItem(ctx context.Context, listName, itemName string) error

	// DeleteList 删除清单及其全部事项，清单不存在时静默成功
	DeleteList(ctx context.Context, listName string) error
}
