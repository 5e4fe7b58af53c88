// @title listkeeper API
// @version 1.0
// @description To-do lists and items backed by MySQL.
// @host localhost:3360
// @BasePath /
// @schemes http
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/listkeeper/backend/internal/infrastructure/config"
	applog "github.com/listkeeper/backend/internal/infrastructure/log"
	"github.com/listkeeper/backend/internal/infrastructure/singleton"
	"github.com/listkeeper/backend/internal/wire"
)

func main() {
	applog.Init(nil)

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 同一端口只允许一个实例
	listener, err := singleton.CheckAndLock(cfg.Server.HTTPPort)
	if err != nil {
		log.Fatalf("单例锁检查失败: %v", err)
	}
	if listener == nil {
		log.Printf("端口 %s 上已有实例在运行，当前进程退出", cfg.Server.HTTPPort)
		os.Exit(0)
	}
	// 实际监听由 HTTP 服务器负责
	_ = listener.Close()

	os.Exit(run(cfg))
}

// run 启动应用并阻塞到收到信号或 HTTP 服务器异常退出，返回进程退出码
func run(cfg *config.Config) int {
	logger := applog.NewModuleLogger("app", "main")

	app, err := wire.InitializeAll(cfg)
	if err != nil {
		logger.Error("Failed to initialize application", "error", err)
		return 1
	}

	if err := app.Start(); err != nil {
		logger.Error("Failed to start application", "error", err)
		return 1
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	code := 0
	select {
	case sig := <-sigChan:
		logger.Info("Shutting down", "signal", sig.String())
	case <-app.Errors():
		code = 1
	}

	if err := app.Stop(); err != nil {
		logger.Error("Error during shutdown", "error", err)
		code = 1
	}
	return code
}
