package mcp

import (
	"log/slog"
	"net/http"

	appTodo "github.com/listkeeper/backend/internal/application/todo"
	"github.com/listkeeper/backend/internal/infrastructure/config"
	"github.com/listkeeper/backend/internal/infrastructure/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Version MCP 服务版本
const Version = "0.1.0"

// MCPServer MCP 服务器
type MCPServer struct {
	server     *mcp.Server
	sseHandler http.Handler
	handler    http.Handler
	service    *appTodo.Service
	logger     *slog.Logger
}

// NewServer 创建 MCP 服务器
// 配置关闭时返回 nil，HTTP 服务器不会挂载 MCP 端点
func NewServer(service *appTodo.Service, cfg *config.MCPConfig) *MCPServer {
	if cfg != nil && !cfg.Enabled {
		return nil
	}

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    log.ServiceName,
			Version: Version,
		},
		nil,
	)

	s := &MCPServer{
		server:  server,
		service: service,
		logger:  log.NewModuleLogger("mcp", "server"),
	}
	s.registerTools()

	getServer := func(r *http.Request) *mcp.Server {
		return server
	}
	s.handler = mcp.NewStreamableHTTPHandler(getServer, nil)
	s.sseHandler = mcp.NewSSEHandler(getServer, nil)

	return s
}

func (s *MCPServer) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_lists",
		Description: "List every to-do list. No parameters. Returns: lists (array of {id, name}) ordered by id.",
	}, s.getListsTool)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_items",
		Description: "List every item across all lists. No parameters. Returns: items (array of {id, list_id, name, completed}) ordered by id.",
	}, s.getItemsTool)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_data",
		Description: "Return the flat display rows: every list joined with its items. Lists without items produce one row with item_name and completed set to null.",
	}, s.getDataTool)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_lists_grouped",
		Description: "Return lists grouped with their items, in first-seen order. Returns: lists (array of {name, items: [{name, completed}]}).",
	}, s.getGroupedTool)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_list",
		Description: "Create a new list. Parameters: list_name (string, required). List names are unique and case-sensitive.",
	}, s.addListTool)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_item",
		Description: "Add an incomplete item to an existing list. Parameters: list_name (string, required), item_name (string, required). Item names are unique within a list.",
	}, s.addItemTool)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "toggle_item",
		Description: "Flip the completed flag of an item. Parameters: list_name (string, required), item_name (string, required). Toggling an item that does not exist is a no-op.",
	}, s.toggleItemTool)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_item",
		Description: "Delete an item from a list. Parameters: list_name (string, required), item_name (string, required).",
	}, s.deleteItemTool)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_list",
		Description: "Delete a list together with all of its items. Parameters: list_name (string, required).",
	}, s.deleteListTool)
}

// Server 底层 MCP 服务器，用于进程内连接
func (s *MCPServer) Server() *mcp.Server {
	return s.server
}

// GetHandler Streamable HTTP Handler
func (s *MCPServer) GetHandler() http.Handler {
	return s.handler
}

// GetSSEHandler SSE Handler（兼容旧客户端）
func (s *MCPServer) GetSSEHandler() http.Handler {
	return s.sseHandler
}
