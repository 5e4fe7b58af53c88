package singleton

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"
)

// HealthCheckTimeout 健康检查超时时间
const HealthCheckTimeout = 2 * time.Second

// ErrPortBusy 端口被其他进程占用，且不是健康的 listkeeper 实例
var ErrPortBusy = errors.New("port is in use by an unhealthy or foreign process")

// CheckAndLock 检查端口是否可用
//
// 端口空闲时返回 listener；端口上已有健康的 listkeeper 实例时返回 (nil, nil)，
// 调用者应直接退出；端口被占用但健康检查失败时返回 ErrPortBusy。
func CheckAndLock(port string) (net.Listener, error) {
	listener, err := net.Listen("tcp", port)
	if err == nil {
		return listener, nil
	}

	if !isAddrInUse(err) {
		return nil, fmt.Errorf("failed to listen on %s: %w", port, err)
	}

	if isInstanceRunning(port) {
		return nil, nil
	}
	return nil, fmt.Errorf("%s: %w", port, ErrPortBusy)
}

// isAddrInUse 检查错误是否是地址已在使用
func isAddrInUse(err error) bool {
	if errors.Is(err, syscall.EADDRINUSE) {
		return true
	}
	// Windows: WSAEADDRINUSE (10048)
	var errno syscall.Errno
	if errors.As(err, &errno) && errno == 10048 {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "address already in use") ||
		strings.Contains(msg, "Only one usage of each socket address")
}

// healthURL 把监听地址转换为本机健康检查地址
func healthURL(port string) string {
	_, p, err := net.SplitHostPort(port)
	if err != nil {
		p = strings.TrimPrefix(port, ":")
	}
	return fmt.Sprintf("http://127.0.0.1:%s/health", p)
}

// isInstanceRunning 检查端口上是否是健康的实例
func isInstanceRunning(port string) bool {
	client := &http.Client{Timeout: HealthCheckTimeout}

	resp, err := client.Get(healthURL(port))
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false
	}
	return body.Status == "ok"
}
