package main

import (
	"bytes"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	appTodo "github.com/listkeeper/backend/internal/application/todo"
	"github.com/listkeeper/backend/internal/domain/todo"
	"github.com/listkeeper/backend/internal/infrastructure/config"
	"github.com/listkeeper/backend/internal/infrastructure/metrics"
	"github.com/listkeeper/backend/internal/infrastructure/storage"
	"github.com/listkeeper/backend/internal/infrastructure/websocket"
	apihttp "github.com/listkeeper/backend/internal/interfaces/http"
	"github.com/listkeeper/backend/internal/interfaces/http/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func startServer(t *testing.T) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := storage.ProvideDB(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "cli.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	service := appTodo.NewService(storage.NewTodoRepository(db), nil)
	server := apihttp.NewServer(
		&config.ServerConfig{HTTPPort: ":0"},
		db,
		handler.NewTodoHandler(service),
		handler.NewEventsHandler(websocket.NewHub()),
		nil,
		metrics.NewMetrics(),
	)

	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)
	return ts.URL
}

func run(t *testing.T, url string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--server", url}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_Workflow(t *testing.T) {
	url := startServer(t)

	out, err := run(t, url, "add-list", "Groceries")
	require.NoError(t, err)
	assert.Equal(t, "Added list successfully.\n", out)

	_, err = run(t, url, "add-item", "Groceries", "Milk")
	require.NoError(t, err)
	_, err = run(t, url, "add-item", "Groceries", "Eggs")
	require.NoError(t, err)

	out, err = run(t, url, "toggle", "Groceries", "Milk")
	require.NoError(t, err)
	assert.Equal(t, "Toggled item successfully.\n", out)

	out, err = run(t, url, "show")
	require.NoError(t, err)
	assert.Equal(t, "Groceries (1 done, 1 pending)\n  [x] Milk\n  [ ] Eggs\n", out)

	out, err = run(t, url, "rm-item", "Groceries", "Eggs")
	require.NoError(t, err)
	assert.Equal(t, "Deleted item successfully.\n", out)

	out, err = run(t, url, "rm-list", "Groceries")
	require.NoError(t, err)
	assert.Equal(t, "Deleted list successfully.\n", out)

	out, err = run(t, url, "show")
	require.NoError(t, err)
	assert.Equal(t, "No lists.\n", out)
}

func TestCLI_Errors(t *testing.T) {
	url := startServer(t)

	_, err := run(t, url, "add-item", "Nope", "Milk")
	require.Error(t, err)
	assert.Equal(t, "List Nope not found.", err.Error())

	_, err = run(t, url, "show", "Nope")
	assert.Error(t, err)

	_, err = run(t, url, "add-list")
	assert.Error(t, err)
}

func TestWriteExport(t *testing.T) {
	views := []todo.ListView{
		{Name: "Work", Items: []todo.ItemView{{Name: "Report", Completed: true}}},
		{Name: "Empty", Items: []todo.ItemView{}},
	}

	var buf bytes.Buffer
	require.NoError(t, writeExport(&buf, views, "yaml"))

	var decoded []todo.ListView
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, views, decoded)

	buf.Reset()
	require.NoError(t, writeExport(&buf, nil, "json"))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))

	assert.Error(t, writeExport(&buf, views, "xml"))
}

func TestMigrateCommand(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "migrate.db"))
	t.Setenv("LISTKEEPER_DATA_DIR", t.TempDir())
	config.ResetDataDir()
	t.Cleanup(config.ResetDataDir)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"migrate"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Schema ready (sqlite)\n", out.String())
}
