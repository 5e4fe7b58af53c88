package notification

import (
	"github.com/google/wire"
	appTodo "github.com/listkeeper/backend/internal/application/todo"
)

// ProviderSet 通知基础设施层 ProviderSet
var ProviderSet = wire.NewSet(
	NewWebSocketPusher,
	// 接口绑定：application.Pusher -> infrastructure.WebSocketPusher
	wire.Bind(
		new(appTodo.Pusher),
		new(*WebSocketPusher),
	),
)
