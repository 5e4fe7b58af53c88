package mcp

import (
	"context"

	domainTodo "github.com/listkeeper/backend/internal/domain/todo"
	"github.com/listkeeper/backend/internal/interfaces/http/response"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// EmptyInput 无参数工具输入
type EmptyInput struct{}

// ListInput 只需要清单名称的工具输入
type ListInput struct {
	ListName string `json:"list_name" jsonschema:"清单名称（区分大小写）"`
}

// ItemInput 需要清单与事项名称的工具输入
type ItemInput struct {
	ListName string `json:"list_name" jsonschema:"清单名称（区分大小写）"`
	ItemName string `json:"item_name" jsonschema:"事项名称"`
}

// MessageOutput 写操作输出
type MessageOutput struct {
	Message string `json:"message" jsonschema:"结果说明"`
}

// ListsOutput get_lists 输出
type ListsOutput struct {
	Lists []*domainTodo.List `json:"lists" jsonschema:"所有清单"`
}

// ItemsOutput get_items 输出
type ItemsOutput struct {
	Items []*domainTodo.Item `json:"items" jsonschema:"所有事项"`
}

// RowsOutput get_data 输出
type RowsOutput struct {
	Rows []*domainTodo.DisplayRow `json:"rows" jsonschema:"清单 LEFT JOIN 事项的展示行"`
}

// GroupedOutput get_lists_grouped 输出
type GroupedOutput struct {
	Lists []domainTodo.ListView `json:"lists" jsonschema:"按清单分组的事项"`
}

func (s *MCPServer) getListsTool(ctx context.Context, req *mcp.CallToolRequest, input EmptyInput) (*mcp.CallToolResult, ListsOutput, error) {
	lists, err := s.service.Lists(ctx)
	if err != nil {
		return nil, ListsOutput{}, err
	}
	return nil, ListsOutput{Lists: lists}, nil
}

func (s *MCPServer) getItemsTool(ctx context.Context, req *mcp.CallToolRequest, input EmptyInput) (*mcp.CallToolResult, ItemsOutput, error) {
	items, err := s.service.Items(ctx)
	if err != nil {
		return nil, ItemsOutput{}, err
	}
	return nil, ItemsOutput{Items: items}, nil
}

func (s *MCPServer) getDataTool(ctx context.Context, req *mcp.CallToolRequest, input EmptyInput) (*mcp.CallToolResult, RowsOutput, error) {
	rows, err := s.service.DisplayRows(ctx)
	if err != nil {
		return nil, RowsOutput{}, err
	}
	return nil, RowsOutput{Rows: rows}, nil
}

func (s *MCPServer) getGroupedTool(ctx context.Context, req *mcp.CallToolRequest, input EmptyInput) (*mcp.CallToolResult, GroupedOutput, error) {
	views, err := s.service.Grouped(ctx)
	if err != nil {
		return nil, GroupedOutput{}, err
	}
	return nil, GroupedOutput{Lists: views}, nil
}

func (s *MCPServer) addListTool(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, MessageOutput, error) {
	if err := s.service.AddList(ctx, input.ListName); err != nil {
		return nil, MessageOutput{}, err
	}
	return nil, MessageOutput{Message: response.MsgAddedList}, nil
}

func (s *MCPServer) addItemTool(ctx context.Context, req *mcp.CallToolRequest, input ItemInput) (*mcp.CallToolResult, MessageOutput, error) {
	if err := s.service.AddItem(ctx, input.ListName, input.ItemName); err != nil {
		return nil, MessageOutput{}, err
	}
	return nil, MessageOutput{Message: response.MsgAddedItem}, nil
}

func (s *MCPServer) toggleItemTool(ctx context.Context, req *mcp.CallToolRequest, input ItemInput) (*mcp.CallToolResult, MessageOutput, error) {
	if err := s.service.ToggleItem(ctx, input.ListName, input.ItemName); err != nil {
		return nil, MessageOutput{}, err
	}
	return nil, MessageOutput{Message: response.MsgToggledItem}, nil
}

func (s *MCPServer) deleteItemTool(ctx context.Context, req *mcp.CallToolRequest, input ItemInput) (*mcp.CallToolResult, MessageOutput, error) {
	if err := s.service.DeleteItem(ctx, input.ListName, input.ItemName); err != nil {
		return nil, MessageOutput{}, err
	}
	return nil, MessageOutput{Message: response.MsgDeletedItem}, nil
}

func (s *MCPServer) deleteListTool(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, MessageOutput, error) {
	if err := s.service.DeleteList(ctx, input.ListName); err != nil {
		return nil, MessageOutput{}, err
	}
	return nil, MessageOutput{Message: response.MsgDeletedList}, nil
}
