package log

import (
	"context"
	"log/slog"
)

type contextKey string

// 上下文键定义
const (
	// RequestContextID HTTP 请求 ID
	RequestContextID contextKey = "request_id"

	// ListContextName 当前操作的清单名称
	ListContextName contextKey = "list_name"

	// ItemContextName 当前操作的事项名称
	ItemContextName contextKey = "item_name"
)

// WithRequestID 在上下文中添加请求 ID
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestContextID, requestID)
}

// RequestIDFromContext 取出请求 ID
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestContextID).(string)
	return id
}

// WithListName 在上下文中添加清单名称
func WithListName(ctx context.Context, listName string) context.Context {
	return context.WithValue(ctx, ListContextName, listName)
}

// WithItemName 在上下文中添加事项名称
func WithItemName(ctx context.Context, itemName string) context.Context {
	return context.WithValue(ctx, ItemContextName, itemName)
}

// LogCtxFromContext 从上下文中提取日志字段
func LogCtxFromContext(ctx context.Context) []any {
	var attrs []any

	for _, key := range []contextKey{RequestContextID, ListContextName, ItemContextName} {
		if v, ok := ctx.Value(key).(string); ok && v != "" {
			attrs = append(attrs, slog.String(string(key), v))
		}
	}

	return attrs
}

// FromContext 返回附带上下文字段的 logger
func FromContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if attrs := LogCtxFromContext(ctx); len(attrs) > 0 {
		return logger.With(attrs...)
	}
	return logger
}
