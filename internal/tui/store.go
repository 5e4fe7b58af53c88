package tui

import (
	"errors"
	"fmt"

	"github.com/listkeeper/backend/internal/client"
	"github.com/listkeeper/backend/internal/domain/todo"
)

// 客户端校验文案
const (
	MsgEmptyListName = "List name cannot be empty."
	MsgEmptyItemName = "Item name cannot be empty."
)

// ActionKind 用户操作类型
type ActionKind int

const (
	AddList ActionKind = iota
	AddItem
	ToggleItem
	DeleteItem
	DeleteList
)

// failureText 请求失败时的提示前缀
var failureText = map[ActionKind]string{
	AddList:    "Failed to create list",
	AddItem:    "Failed to add item",
	ToggleItem: "Failed to toggle item",
	DeleteItem: "Failed to delete item",
	DeleteList: "Failed to delete list",
}

// Action 一次用户操作
type Action struct {
	Kind     ActionKind
	ListName string
	ItemName string
}

// Validate 在发请求前拒绝空名称，与服务端一致，空白名称照常提交
func (a Action) Validate() error {
	switch a.Kind {
	case AddList:
		if a.ListName == "" {
			return errors.New(MsgEmptyListName)
		}
	case AddItem:
		if a.ItemName == "" {
			return errors.New(MsgEmptyItemName)
		}
	}
	return nil
}

// Cursor 光标位置，Item 为 -1 表示停在清单标题行
type Cursor struct {
	List int
	Item int
}

// Store TUI 状态，只通过下面的纯函数变换
type Store struct {
	Lists   []todo.ListView
	Cursor  Cursor
	Alert   string
	Loading bool
}

// Refreshed 用新数据替换展示状态，并把光标夹回有效范围
func (s Store) Refreshed(views []todo.ListView) Store {
	s.Lists = views
	s.Loading = false
	s.Cursor = clamp(s.Cursor, views)
	return s
}

// Failed 记录失败提示，展示的数据保持不变
func (s Store) Failed(kind ActionKind, err error) Store {
	s.Loading = false
	s.Alert = failureMessage(kind, err)
	return s
}

// FetchFailed 刷新失败
func (s Store) FetchFailed(err error) Store {
	s.Loading = false
	s.Alert = "Failed to fetch data: " + errorText(err)
	return s
}

// Rejected 客户端校验失败
func (s Store) Rejected(err error) Store {
	s.Alert = err.Error()
	return s
}

// Dismiss 清除提示
func (s Store) Dismiss() Store {
	s.Alert = ""
	return s
}

// Move 上下移动光标，delta 为正向下
func (s Store) Move(delta int) Store {
	rows := flatten(s.Lists)
	if len(rows) == 0 {
		s.Cursor = Cursor{}
		return s
	}

	idx := 0
	for i, r := range rows {
		if r == s.Cursor {
			idx = i
			break
		}
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(rows) {
		idx = len(rows) - 1
	}
	s.Cursor = rows[idx]
	return s
}

// Selected 光标所在的清单与事项，事项为空表示标题行
func (s Store) Selected() (listName, itemName string, ok bool) {
	if s.Cursor.List < 0 || s.Cursor.List >= len(s.Lists) {
		return "", "", false
	}
	list := s.Lists[s.Cursor.List]
	if s.Cursor.Item < 0 {
		return list.Name, "", true
	}
	if s.Cursor.Item >= len(list.Items) {
		return list.Name, "", true
	}
	return list.Name, list.Items[s.Cursor.Item].Name, true
}

// flatten 按展示顺序列出所有可选中的行
func flatten(views []todo.ListView) []Cursor {
	var rows []Cursor
	for li, v := range views {
		rows = append(rows, Cursor{List: li, Item: -1})
		for ii := range v.Items {
			rows = append(rows, Cursor{List: li, Item: ii})
		}
	}
	return rows
}

func clamp(c Cursor, views []todo.ListView) Cursor {
	if len(views) == 0 {
		return Cursor{List: 0, Item: -1}
	}
	if c.List >= len(views) {
		return Cursor{List: len(views) - 1, Item: -1}
	}
	if c.List < 0 {
		c.List = 0
	}
	if c.Item >= len(views[c.List].Items) {
		c.Item = len(views[c.List].Items) - 1
	}
	return c
}

func failureMessage(kind ActionKind, err error) string {
	prefix, ok := failureText[kind]
	if !ok {
		prefix = "Request failed"
	}
	return fmt.Sprintf("%s: %s", prefix, errorText(err))
}

// errorText 优先使用服务端返回的文案
func errorText(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return err.Error()
}
