package mcp

import (
	"context"
	"path/filepath"
	"testing"

	appTodo "github.com/listkeeper/backend/internal/application/todo"
	"github.com/listkeeper/backend/internal/infrastructure/config"
	"github.com/listkeeper/backend/internal/infrastructure/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connect(t *testing.T) *mcp.ClientSession {
	t.Helper()

	db, err := storage.ProvideDB(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "mcp.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s := NewServer(appTodo.NewService(storage.NewTodoRepository(db), nil), &config.MCPConfig{Enabled: true})
	require.NotNil(t, s)

	ctx := context.Background()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serverSession, err := s.Server().Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })

	return session
}

func callTool(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	return res
}

func TestNewServer_Disabled(t *testing.T) {
	assert.Nil(t, NewServer(nil, &config.MCPConfig{Enabled: false}))
}

func TestMCPServer_ListTools(t *testing.T) {
	session := connect(t)

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := make([]string, 0, len(res.Tools))
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{
		"get_lists", "get_items", "get_data", "get_lists_grouped",
		"add_list", "add_item", "toggle_item", "delete_item", "delete_list",
	}, names)
}

func TestMCPServer_Workflow(t *testing.T) {
	session := connect(t)

	res := callTool(t, session, "add_list", map[string]any{"list_name": "Groceries"})
	assert.False(t, res.IsError)

	res = callTool(t, session, "add_item", map[string]any{"list_name": "Groceries", "item_name": "Milk"})
	assert.False(t, res.IsError)

	res = callTool(t, session, "toggle_item", map[string]any{"list_name": "Groceries", "item_name": "Milk"})
	assert.False(t, res.IsError)

	res = callTool(t, session, "get_lists_grouped", map[string]any{})
	require.False(t, res.IsError)
	out, ok := res.StructuredContent.(map[string]any)
	require.True(t, ok, "structured content: %#v", res.StructuredContent)
	lists := out["lists"].([]any)
	require.Len(t, lists, 1)
	group := lists[0].(map[string]any)
	assert.Equal(t, "Groceries", group["name"])
	items := group["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, true, items[0].(map[string]any)["completed"])

	res = callTool(t, session, "delete_list", map[string]any{"list_name": "Groceries"})
	assert.False(t, res.IsError)

	res = callTool(t, session, "get_lists", map[string]any{})
	require.False(t, res.IsError)
	assert.Empty(t, res.StructuredContent.(map[string]any)["lists"])
}

func TestMCPServer_Errors(t *testing.T) {
	session := connect(t)

	res := callTool(t, session, "add_item", map[string]any{"list_name": "Nope", "item_name": "Milk"})
	assert.True(t, res.IsError)

	res = callTool(t, session, "add_list", map[string]any{"list_name": ""})
	assert.True(t, res.IsError)

	callTool(t, session, "add_list", map[string]any{"list_name": "Work"})
	res = callTool(t, session, "add_list", map[string]any{"list_name": "Work"})
	assert.True(t, res.IsError)
}
