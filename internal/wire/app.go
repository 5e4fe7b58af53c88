package wire

import (
	"database/sql"

	"log/slog"

	"github.com/listkeeper/backend/internal/infrastructure/discovery"
	applog "github.com/listkeeper/backend/internal/infrastructure/log"
	"github.com/listkeeper/backend/internal/infrastructure/websocket"
	"github.com/listkeeper/backend/internal/interfaces"
)

// App 应用主结构，组合所有服务
type App struct {
	HTTPServer *interfaces.HTTPServer
	wsHub      *websocket.Hub
	advertiser *discovery.MDNSAdvertiser
	db         *sql.DB
	errCh      chan error
	logger     *slog.Logger
}

// NewApp 创建应用实例
func NewApp(
	httpServer *interfaces.HTTPServer,
	wsHub *websocket.Hub,
	advertiser *discovery.MDNSAdvertiser,
	db *sql.DB,
) *App {
	return &App{
		HTTPServer: httpServer,
		wsHub:      wsHub,
		advertiser: advertiser,
		db:         db,
		errCh:      make(chan error, 1),
		logger:     applog.NewModuleLogger("app", "main"),
	}
}

// Start 启动所有服务
func (a *App) Start() error {
	a.logger.Info("Starting listkeeper backend")

	// 启动 WebSocket Hub
	a.wsHub.Start()

	// 先同步绑定端口，Stop 随后调用时监听一定存在
	listener, err := a.HTTPServer.Listen()
	if err != nil {
		a.wsHub.Stop()
		return err
	}

	go func() {
		if err := a.HTTPServer.Serve(listener); err != nil {
			a.logger.Error("HTTP server stopped with error",
				"error", err,
			)
			a.errCh <- err
		}
	}()

	// mDNS 广播失败不影响 API
	if a.advertiser.Enabled() {
		if err := a.advertiser.Start(a.HTTPServer.Addr()); err != nil {
			a.logger.Warn("Failed to start mDNS advertiser",
				"error", err,
			)
		}
	}

	return nil
}

// Errors HTTP 服务器异常退出时收到错误
func (a *App) Errors() <-chan error {
	return a.errCh
}

// Stop 停止所有服务
func (a *App) Stop() error {
	a.logger.Info("Stopping listkeeper backend")

	a.advertiser.Stop()

	if err := a.HTTPServer.Stop(); err != nil {
		a.logger.Error("Failed to stop HTTP server",
			"error", err,
		)
	}

	// HTTP 停止后再关闭 Hub，避免写入已关闭的连接
	a.wsHub.Stop()

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error("Failed to close database connection",
				"error", err,
			)
			return err
		}
	}

	a.logger.Info("listkeeper backend stopped")
	return nil
}
