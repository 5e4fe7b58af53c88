package config

import "github.com/google/wire"

// ProviderSet 配置 ProviderSet
// *Config 由调用方加载后传入注入器
var ProviderSet = wire.NewSet(
	NewDatabaseConfig,
	NewServerConfig,
	NewDiscoveryConfig,
	NewMCPConfig,
)
