package notification

import (
	appTodo "github.com/listkeeper/backend/internal/application/todo"
	domainTodo "github.com/listkeeper/backend/internal/domain/todo"
	"github.com/listkeeper/backend/internal/infrastructure/metrics"
	"github.com/listkeeper/backend/internal/infrastructure/websocket"
)

// WebSocketPusher WebSocket 推送实现
type WebSocketPusher struct {
	hub     *websocket.Hub
	metrics *metrics.Metrics
}

// NewWebSocketPusher 创建 WebSocket 推送器，metrics 可为 nil
func NewWebSocketPusher(hub *websocket.Hub, m *metrics.Metrics) *WebSocketPusher {
	return &WebSocketPusher{hub: hub, metrics: m}
}

// PushChange 向所有订阅者广播变更事件
func (p *WebSocketPusher) PushChange(event *domainTodo.ChangeEvent) error {
	if p.metrics != nil {
		p.metrics.ChangeEvents.WithLabelValues(string(event.Type)).Inc()
	}
	return p.hub.Broadcast(event)
}

// 编译时检查接口实现
var _ appTodo.Pusher = (*WebSocketPusher)(nil)
