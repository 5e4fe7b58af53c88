package todo

// List 待办清单实体
// 名称在所有清单中唯一，创建后不可重命名
type List struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Item 待办事项实体
// 名称在所属清单内唯一，只有 completed 字段可以被修改
type Item struct {
	ID        int64  `json:"id"`
	ListID    int64  `json:"list_id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// Toggle 切换完成状态
func (i *Item) Toggle() {
	i.Completed = !i.Completed
}

// DisplayRow 展示视图中的一行（清单 LEFT JOIN 事项）
// 没有事项的清单对应一行，ItemName 与 Completed 均为 nil
type DisplayRow struct {
	ListName  string  `json:"list_name"`
	ItemName  *string `json:"item_name"`
	Completed *bool   `json:"completed"`
}

// HasItem 该行是否携带事项
func (r DisplayRow) HasItem() bool {
	return r.ItemName != nil && r.Completed != nil
}
