package todo

import "time"

// ChangeType 变更事件类型
type ChangeType string

const (
	ListAdded   ChangeType = "list.added"
	ListDeleted ChangeType = "list.deleted"
	ItemAdded   ChangeType = "item.added"
	ItemToggled ChangeType = "item.toggled"
	ItemDeleted ChangeType = "item.deleted"
)

// ChangeEvent 数据变更事件，订阅方收到后应重新拉取展示数据
type ChangeEvent struct {
	Type      ChangeType `json:"type"`
	ListName  string     `json:"list_name"`
	ItemName  string     `json:"item_name,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

// NewChangeEvent 创建变更事件
func NewChangeEvent(t ChangeType, listName, itemName string) *ChangeEvent {
	return &ChangeEvent{
		Type:      t,
		ListName:  listName,
		ItemName:  itemName,
		Timestamp: time.Now(),
	}
}
