package http

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/listkeeper/backend/internal/infrastructure/config"
	"github.com/listkeeper/backend/internal/infrastructure/log"
	"github.com/listkeeper/backend/internal/infrastructure/metrics"
	"github.com/listkeeper/backend/internal/interfaces/http/handler"
	"github.com/listkeeper/backend/internal/interfaces/http/middleware"
	"github.com/listkeeper/backend/internal/interfaces/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/listkeeper/backend/docs" // Swagger docs
)

// HTTPServer HTTP 服务器
type HTTPServer struct {
	router   *gin.Engine
	httpPort string
	server   *http.Server
	logger   *slog.Logger

	mu       sync.Mutex
	listener net.Listener
}

// NewServer 创建 HTTP 服务器
func NewServer(
	serverCfg *config.ServerConfig,
	db *sql.DB,
	todoHandler *handler.TodoHandler,
	eventsHandler *handler.EventsHandler,
	mcpServer *mcp.MCPServer,
	m *metrics.Metrics,
) *HTTPServer {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(),
		middleware.Metrics(m),
		middleware.CORS(),
		middleware.EnsureUTF8Body(),
	)

	logger := log.NewModuleLogger("http", "server")

	// 清单与事项
	router.GET("/get_lists", todoHandler.GetLists)
	router.GET("/get_items", todoHandler.GetItems)
	router.GET("/get_data", todoHandler.GetData)
	router.POST("/add_item", todoHandler.AddItem)
	router.POST("/add_list", todoHandler.AddList)
	router.POST("/toggle_item", todoHandler.ToggleItem)
	router.DELETE("/delete_item", todoHandler.DeleteItem)
	router.DELETE("/delete_list", todoHandler.DeleteList)

	// 变更推送
	router.GET("/ws", eventsHandler.Subscribe)

	// 健康检查，同时用于单例检测
	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// MCP 端点
	if mcpServer != nil {
		router.Any("/mcp", gin.WrapH(mcpServer.GetHandler()))
		router.Any("/mcp/sse", gin.WrapH(mcpServer.GetSSEHandler()))
	}

	return &HTTPServer{
		router:   router,
		httpPort: serverCfg.HTTPPort,
		server: &http.Server{
			Addr:              serverCfg.HTTPPort,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Router 返回路由，用于测试与进程内客户端
func (s *HTTPServer) Router() http.Handler {
	return s.router
}

// Port 监听端口
func (s *HTTPServer) Port() string {
	return s.httpPort
}

// Addr 实际监听地址，未监听时返回配置的端口
func (s *HTTPServer) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.httpPort
}

// Listen 同步绑定端口，返回后 Shutdown 一定能关闭该监听
func (s *HTTPServer) Listen() (net.Listener, error) {
	l, err := net.Listen("tcp", s.httpPort)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.listener = l
	s.mu.Unlock()

	s.logger.Info("Listening", "addr", l.Addr().String())
	return l, nil
}

// Serve 在已绑定的监听上处理请求，阻塞直到服务器关闭
func (s *HTTPServer) Serve(l net.Listener) error {
	if err := s.server.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Start 绑定端口并处理请求，阻塞直到服务器关闭
func (s *HTTPServer) Start() error {
	l, err := s.Listen()
	if err != nil {
		return err
	}
	return s.Serve(l)
}

// Shutdown 优雅关闭
// Serve 尚未开始时也要释放监听
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	err := s.server.Shutdown(ctx)

	s.mu.Lock()
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
	s.mu.Unlock()

	return err
}

// Stop 停止服务器
func (s *HTTPServer) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Shutdown(ctx)
}
