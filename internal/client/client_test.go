package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	appTodo "github.com/listkeeper/backend/internal/application/todo"
	"github.com/listkeeper/backend/internal/domain/todo"
	"github.com/listkeeper/backend/internal/infrastructure/config"
	"github.com/listkeeper/backend/internal/infrastructure/metrics"
	"github.com/listkeeper/backend/internal/infrastructure/notification"
	"github.com/listkeeper/backend/internal/infrastructure/storage"
	"github.com/listkeeper/backend/internal/infrastructure/websocket"
	apihttp "github.com/listkeeper/backend/internal/interfaces/http"
	"github.com/listkeeper/backend/internal/interfaces/http/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	*httptest.Server
	hub *websocket.Hub
}

func startServer(t *testing.T) *testServer {
	t.Helper()

	db, err := storage.ProvideDB(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "client.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	hub := websocket.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)

	m := metrics.NewMetrics()
	service := appTodo.NewService(storage.NewTodoRepository(db), notification.NewWebSocketPusher(hub, m))
	server := apihttp.NewServer(
		&config.ServerConfig{HTTPPort: ":0"},
		db,
		handler.NewTodoHandler(service),
		handler.NewEventsHandler(hub),
		nil,
		m,
	)

	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)
	return &testServer{Server: ts, hub: hub}
}

func TestClient_Workflow(t *testing.T) {
	ts := startServer(t)
	c := New(ts.URL)
	ctx := context.Background()

	require.NoError(t, c.Health(ctx))

	msg, err := c.AddList(ctx, "Groceries")
	require.NoError(t, err)
	assert.Equal(t, "Added list successfully.", msg)

	msg, err = c.AddItem(ctx, "Groceries", "Milk")
	require.NoError(t, err)
	assert.Equal(t, "Added item successfully.", msg)

	_, err = c.AddItem(ctx, "Groceries", "Eggs")
	require.NoError(t, err)

	msg, err = c.ToggleItem(ctx, "Groceries", "Milk")
	require.NoError(t, err)
	assert.Equal(t, "Toggled item successfully.", msg)

	_, err = c.AddList(ctx, "Empty")
	require.NoError(t, err)

	lists, err := c.Lists(ctx)
	require.NoError(t, err)
	require.Len(t, lists, 2)

	items, err := c.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	views, err := c.Grouped(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Groceries", views[0].Name)
	assert.Equal(t, []todo.ItemView{{Name: "Milk", Completed: true}, {Name: "Eggs", Completed: false}}, views[0].Items)
	assert.Equal(t, "Empty", views[1].Name)
	assert.Empty(t, views[1].Items)

	msg, err = c.DeleteItem(ctx, "Groceries", "Eggs")
	require.NoError(t, err)
	assert.Equal(t, "Deleted item successfully.", msg)

	msg, err = c.DeleteList(ctx, "Groceries")
	require.NoError(t, err)
	assert.Equal(t, "Deleted list successfully.", msg)

	rows, err := c.Data(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Empty", rows[0].ListName)
	assert.False(t, rows[0].HasItem())
}

func TestClient_APIError(t *testing.T) {
	ts := startServer(t)
	c := New(ts.URL)
	ctx := context.Background()

	_, err := c.AddList(ctx, "")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Missing list name.", apiErr.Error())

	_, err = c.AddItem(ctx, "Nope", "Milk")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "List Nope not found.", apiErr.Message)
}

func TestClient_Watch(t *testing.T) {
	ts := startServer(t)
	c := New(ts.URL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan *todo.ChangeEvent, 4)
	go func() {
		_ = c.Watch(ctx, func(e *todo.ChangeEvent) { events <- e })
	}()

	require.Eventually(t, func() bool { return ts.hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	_, err := c.AddList(context.Background(), "Work")
	require.NoError(t, err)

	select {
	case e := <-events:
		assert.Equal(t, todo.ListAdded, e.Type)
		assert.Equal(t, "Work", e.ListName)
	case <-time.After(2 * time.Second):
		t.Fatal("no change event received")
	}
}

func TestWebsocketURL(t *testing.T) {
	u, err := websocketURL("http://localhost:3360")
	require.NoError(t, err)
	assert.Equal(t, "ws://localhost:3360/ws", u)

	u, err = websocketURL("https://todo.example.com/api/")
	require.NoError(t, err)
	assert.Equal(t, "wss://todo.example.com/api/ws", u)
}

func TestNew_DefaultBaseURL(t *testing.T) {
	assert.Equal(t, DefaultBaseURL, New("").BaseURL())
}
