package client

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/listkeeper/backend/internal/domain/todo"
)

// Watch 订阅 /ws 变更事件，每收到一条事件调用 fn
// ctx 取消或连接断开时返回
func (c *Client) Watch(ctx context.Context, fn func(*todo.ChangeEvent)) error {
	wsURL, err := websocketURL(c.baseURL)
	if err != nil {
		return err
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		var event todo.ChangeEvent
		if err := json.Unmarshal(data, &event); err != nil {
			continue
		}
		fn(&event)
	}
}

// websocketURL 把 http(s) 地址转换为 /ws 地址
func websocketURL(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/ws"
	return u.String(), nil
}
