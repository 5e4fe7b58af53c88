package discovery

import (
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"sync"

	"github.com/grandcat/zeroconf"
	"github.com/listkeeper/backend/internal/infrastructure/config"
	"github.com/listkeeper/backend/internal/infrastructure/log"
)

const (
	// ServiceType mDNS 服务类型
	ServiceType = "_listkeeper._tcp"
	// Domain mDNS 域
	Domain = "local."
	// APIVersion TXT 记录中的接口版本
	APIVersion = "1"
)

// registerFunc 便于测试替换
type registerFunc func(instance, service, domain string, port int, text []string, ifaces []net.Interface) (*zeroconf.Server, error)

// MDNSAdvertiser mDNS 服务广播器
// 让局域网内的客户端无需配置地址即可发现 API
type MDNSAdvertiser struct {
	mu       sync.Mutex
	cfg      *config.DiscoveryConfig
	server   *zeroconf.Server
	register registerFunc
	running  bool
	logger   *slog.Logger
}

// NewMDNSAdvertiser 创建 mDNS 广播器
func NewMDNSAdvertiser(cfg *config.DiscoveryConfig) *MDNSAdvertiser {
	return &MDNSAdvertiser{
		cfg:      cfg,
		register: zeroconf.Register,
		logger:   log.NewModuleLogger("discovery", "mdns_advertiser"),
	}
}

// Enabled 是否启用广播
func (a *MDNSAdvertiser) Enabled() bool {
	return a != nil && a.cfg != nil && a.cfg.Enabled
}

// Start 开始广播，httpPort 形如 ":3360"
func (a *MDNSAdvertiser) Start(httpPort string) error {
	if !a.Enabled() {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.running {
		return fmt.Errorf("advertiser is already running")
	}

	port, err := ParsePort(httpPort)
	if err != nil {
		return err
	}

	txtRecords := []string{
		"api_version=" + APIVersion,
		"path=/",
	}

	server, err := a.register(a.cfg.Instance, ServiceType, Domain, port, txtRecords, nil)
	if err != nil {
		return fmt.Errorf("failed to register service: %w", err)
	}

	a.server = server
	a.running = true

	a.logger.Info("mDNS advertiser started",
		"instance", a.cfg.Instance,
		"port", port,
	)
	return nil
}

// Stop 停止广播
func (a *MDNSAdvertiser) Stop() {
	if a == nil {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.running {
		return
	}
	if a.server != nil {
		a.server.Shutdown()
		a.server = nil
	}
	a.running = false
	a.logger.Info("mDNS advertiser stopped")
}

// ParsePort 从 ":3360" 或 "0.0.0.0:3360" 解析端口号
func ParsePort(addr string) (int, error) {
	_, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return 0, fmt.Errorf("invalid listen address %q: %w", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return 0, fmt.Errorf("invalid port in %q", addr)
	}
	return port, nil
}
