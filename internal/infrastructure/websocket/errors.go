package websocket

import "errors"

var (
	// ErrHubClosed Hub 已停止
	ErrHubClosed = errors.New("websocket hub closed")
	// ErrBroadcastQueueFull 广播队列已满
	ErrBroadcastQueueFull = errors.New("websocket broadcast queue full")
)
