package infrastructure

import (
	"github.com/google/wire"
	"github.com/listkeeper/backend/internal/infrastructure/config"
	"github.com/listkeeper/backend/internal/infrastructure/discovery"
	"github.com/listkeeper/backend/internal/infrastructure/metrics"
	"github.com/listkeeper/backend/internal/infrastructure/notification"
	"github.com/listkeeper/backend/internal/infrastructure/storage"
	"github.com/listkeeper/backend/internal/infrastructure/websocket"
)

// ProviderSet Infrastructure 层总 ProviderSet
var ProviderSet = wire.NewSet(
	config.ProviderSet,
	storage.ProviderSet,
	websocket.ProviderSet,
	metrics.ProviderSet,
	notification.ProviderSet,
	discovery.ProviderSet,
)
