package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// ServiceName 日志中的服务标识
const ServiceName = "listkeeper"

var (
	mu            sync.RWMutex
	defaultLogger *slog.Logger
)

// Init 初始化全局 logger，cfg 为空时从环境变量读取
func Init(cfg *Config) {
	if cfg == nil {
		cfg = NewConfigFromEnv()
	}

	out, err := openOutput(cfg.Output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log output %q unavailable, falling back to stderr: %v\n", cfg.Output, err)
		out = os.Stderr
	}

	logger := slog.New(NewHandler(out, cfg).WithAttrs([]slog.Attr{
		slog.String("service", ServiceName),
	}))

	mu.Lock()
	defaultLogger = logger
	mu.Unlock()

	slog.SetDefault(logger)
}

// NewHandler 按配置创建 slog handler
func NewHandler(w io.Writer, cfg *Config) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: cfg.AddSource,
	}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// GetLogger 获取默认 logger，未初始化时按环境变量初始化
func GetLogger() *slog.Logger {
	mu.RLock()
	logger := defaultLogger
	mu.RUnlock()

	if logger == nil {
		Init(nil)
		mu.RLock()
		logger = defaultLogger
		mu.RUnlock()
	}
	return logger
}

// NewModuleLogger 为特定模块创建 logger
func NewModuleLogger(module, component string) *slog.Logger {
	return GetLogger().With(
		slog.String("module", module),
		slog.String("component", component),
	)
}

// parseLevel 解析日志级别，未知值按 info 处理
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// openOutput 解析输出目标：stdout, stderr, discard, file:/path/to/log
// TUI 运行时占用 stdout，需要把日志写到 stderr 或文件
func openOutput(target string) (io.Writer, error) {
	switch strings.ToLower(target) {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	case "discard", "none":
		return io.Discard, nil
	}

	if path, ok := strings.CutPrefix(target, "file:"); ok {
		return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	}

	return nil, fmt.Errorf("unknown log output %q", target)
}
