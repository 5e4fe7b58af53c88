package todo

import domainTodo "github.com/listkeeper/backend/internal/domain/todo"

// Pusher 变更推送接口（定义在 application 层）
// 由基础设施层的 WebSocket Hub 实现
type Pusher interface {
	PushChange(event *domainTodo.ChangeEvent) error
}

// NopPusher 不推送任何事件
type NopPusher struct{}

// PushChange 实现 Pusher
func (NopPusher) PushChange(*domainTodo.ChangeEvent) error { return nil }
