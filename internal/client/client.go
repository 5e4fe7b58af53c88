// Package client 基于 resty 封装的 listkeeper API 客户端，供 TUI 与 CLI 使用
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/listkeeper/backend/internal/domain/todo"
)

// DefaultBaseURL 默认 API 地址
const DefaultBaseURL = "http://localhost:3360"

// APIError 非 2xx 响应
// Message 为服务端返回的纯文本，可直接展示给用户
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return e.Message
}

// Client API 客户端
type Client struct {
	client  *resty.Client
	baseURL string
}

// New 创建客户端
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		client:  client,
		baseURL: baseURL,
	}
}

// BaseURL 客户端指向的 API 地址
func (c *Client) BaseURL() string {
	return c.baseURL
}

type listBody struct {
	ListName string `json:"list_name"`
}

type itemBody struct {
	ListName string `json:"list_name,omitempty"`
	ItemName string `json:"item_name"`
}

// --- 查询 ---

// Lists GET /get_lists
func (c *Client) Lists(ctx context.Context) ([]todo.List, error) {
	var lists []todo.List
	err := c.getJSON(ctx, "/get_lists", &lists)
	return lists, err
}

// Items GET /get_items
func (c *Client) Items(ctx context.Context) ([]todo.Item, error) {
	var items []todo.Item
	err := c.getJSON(ctx, "/get_items", &items)
	return items, err
}

// Data GET /get_data
func (c *Client) Data(ctx context.Context) ([]*todo.DisplayRow, error) {
	var rows []*todo.DisplayRow
	err := c.getJSON(ctx, "/get_data", &rows)
	return rows, err
}

// Grouped 获取 /get_data 并按清单分组
func (c *Client) Grouped(ctx context.Context) ([]todo.ListView, error) {
	rows, err := c.Data(ctx)
	if err != nil {
		return nil, err
	}
	return todo.GroupDisplayRows(rows), nil
}

// Health GET /health
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.client.R().SetContext(ctx).Get("/health")
	if err != nil {
		return err
	}
	return checkStatus(resp)
}

// --- 写操作，成功时返回服务端消息 ---

// AddList POST /add_list
func (c *Client) AddList(ctx context.Context, listName string) (string, error) {
	return c.send(ctx, http.MethodPost, "/add_list", nil, listBody{ListName: listName})
}

// AddItem POST /add_item?list_name=...
func (c *Client) AddItem(ctx context.Context, listName, itemName string) (string, error) {
	query := map[string]string{"list_name": listName}
	return c.send(ctx, http.MethodPost, "/add_item", query, itemBody{ItemName: itemName})
}

// ToggleItem POST /toggle_item
func (c *Client) ToggleItem(ctx context.Context, listName, itemName string) (string, error) {
	return c.send(ctx, http.MethodPost, "/toggle_item", nil, itemBody{ListName: listName, ItemName: itemName})
}

// DeleteItem DELETE /delete_item
func (c *Client) DeleteItem(ctx context.Context, listName, itemName string) (string, error) {
	return c.send(ctx, http.MethodDelete, "/delete_item", nil, itemBody{ListName: listName, ItemName: itemName})
}

// DeleteList DELETE /delete_list
func (c *Client) DeleteList(ctx context.Context, listName string) (string, error) {
	return c.send(ctx, http.MethodDelete, "/delete_list", nil, listBody{ListName: listName})
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	resp, err := c.client.R().SetContext(ctx).Get(path)
	if err != nil {
		return err
	}
	if err := checkStatus(resp); err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, query map[string]string, body interface{}) (string, error) {
	req := c.client.R().SetContext(ctx).SetBody(body)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return "", err
	}
	if err := checkStatus(resp); err != nil {
		return "", err
	}

	var msg string
	if err := json.Unmarshal(resp.Body(), &msg); err != nil {
		// 兼容返回纯文本的服务端
		return string(resp.Body()), nil
	}
	return msg, nil
}

// checkStatus 把非 2xx 响应转换为 APIError
func checkStatus(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	return &APIError{
		Status:  resp.StatusCode(),
		Message: string(resp.Body()),
	}
}
