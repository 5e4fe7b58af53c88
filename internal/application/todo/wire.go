package todo

import "github.com/google/wire"

// ProviderSet 待办应用层 ProviderSet
var ProviderSet = wire.NewSet(
	NewService,
	// Pusher 接口绑定在 infrastructure/notification 中处理
)
