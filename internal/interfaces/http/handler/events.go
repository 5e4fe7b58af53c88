package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gorillaws "github.com/gorilla/websocket"
	"github.com/listkeeper/backend/internal/infrastructure/log"
	"github.com/listkeeper/backend/internal/infrastructure/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// EventsHandler 变更事件推送处理器
type EventsHandler struct {
	hub      *websocket.Hub
	upgrader gorillaws.Upgrader
	logger   *slog.Logger
}

// NewEventsHandler 创建变更事件处理器
func NewEventsHandler(hub *websocket.Hub) *EventsHandler {
	return &EventsHandler{
		hub: hub,
		upgrader: gorillaws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// API 对所有来源开放（与 CORS 策略一致）
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: log.NewModuleLogger("http", "events_handler"),
	}
}

// Subscribe 订阅数据变更事件
// @Summary 订阅数据变更（WebSocket）
// @Description 每次增删改成功后推送 {"type","list_name","item_name","timestamp"}，客户端收到后应重新获取 /get_data
// @Tags 事件
// @Router /ws [get]
func (h *EventsHandler) Subscribe(c *gin.Context) {
	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade 已经写入了错误响应
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	conn := websocket.NewConnection()
	if !h.hub.Register(conn) {
		ws.Close()
		return
	}

	go h.writePump(ws, conn)
	h.readPump(ws, conn)
}

// readPump 只处理控制帧，连接断开时注销
func (h *EventsHandler) readPump(ws *gorillaws.Conn, conn *websocket.Connection) {
	defer func() {
		h.hub.Unregister(conn)
		ws.Close()
	}()

	ws.SetReadLimit(512)
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump 把 Hub 的消息写到客户端，并定期发送 ping
func (h *EventsHandler) writePump(ws *gorillaws.Conn, conn *websocket.Connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ws.Close()
	}()

	for {
		select {
		case msg, ok := <-conn.Send:
			_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = ws.WriteMessage(gorillaws.CloseMessage, []byte{})
				return
			}
			if err := ws.WriteMessage(gorillaws.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ws.WriteMessage(gorillaws.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
