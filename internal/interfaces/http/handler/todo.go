package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	appTodo "github.com/listkeeper/backend/internal/application/todo"
	"github.com/listkeeper/backend/internal/domain/todo"
	"github.com/listkeeper/backend/internal/infrastructure/log"
	"github.com/listkeeper/backend/internal/interfaces/http/response"
)

// TodoHandler 待办清单处理器
type TodoHandler struct {
	service *appTodo.Service
	logger  *slog.Logger
}

// NewTodoHandler 创建待办清单处理器
func NewTodoHandler(service *appTodo.Service) *TodoHandler {
	return &TodoHandler{
		service: service,
		logger:  log.NewModuleLogger("http", "todo_handler"),
	}
}

// ListRequest 只携带清单名称的请求
type ListRequest struct {
	ListName string `json:"list_name"`
}

// ItemRequest 携带清单名称与事项名称的请求
type ItemRequest struct {
	ListName string `json:"list_name"`
	ItemName string `json:"item_name"`
}

// AddItemRequest 添加事项请求，清单名称在 query 参数中
type AddItemRequest struct {
	ItemName string `json:"item_name"`
}

// GetLists 获取所有清单
// @Summary 获取所有清单
// @Tags 清单
// @Produce json
// @Success 200 {array} todo.List
// @Failure 500 {string} string "Error querying database."
// @Router /get_lists [get]
func (h *TodoHandler) GetLists(c *gin.Context) {
	lists, err := h.service.Lists(c.Request.Context())
	if err != nil {
		h.fail(c, err, response.MsgQueryFailed)
		return
	}
	response.Rows(c, lists)
}

// GetItems 获取所有事项
// @Summary 获取所有事项
// @Tags 事项
// @Produce json
// @Success 200 {array} todo.Item
// @Failure 500 {string} string "Error querying database."
// @Router /get_items [get]
func (h *TodoHandler) GetItems(c *gin.Context) {
	items, err := h.service.Items(c.Request.Context())
	if err != nil {
		h.fail(c, err, response.MsgQueryFailed)
		return
	}
	response.Rows(c, items)
}

// GetData 获取清单与事项的展示数据
// @Summary 获取展示数据（清单 LEFT JOIN 事项）
// @Tags 清单
// @Produce json
// @Success 200 {array} todo.DisplayRow
// @Failure 500 {string} string "Error querying database."
// @Router /get_data [get]
func (h *TodoHandler) GetData(c *gin.Context) {
	rows, err := h.service.DisplayRows(c.Request.Context())
	if err != nil {
		h.fail(c, err, response.MsgQueryFailed)
		return
	}
	response.Rows(c, rows)
}

// AddItem 在清单下添加事项
// @Summary 添加事项
// @Tags 事项
// @Accept json
// @Produce json
// @Param list_name query string true "清单名称"
// @Param body body AddItemRequest true "事项名称"
// @Success 200 {string} string "Added item successfully."
// @Failure 400 {string} string "Missing list or item name."
// @Failure 404 {string} string "List <name> not found."
// @Failure 500 {string} string "Error inserting into database."
// @Router /add_item [post]
func (h *TodoHandler) AddItem(c *gin.Context) {
	listName := c.Query("list_name")

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || listName == "" || req.ItemName == "" {
		h.logger.Info("API: Missing list or item name.", log.LogCtxFromContext(c.Request.Context())...)
		response.Text(c, http.StatusBadRequest, response.MsgMissingListOrItem)
		return
	}

	if err := h.service.AddItem(c.Request.Context(), listName, req.ItemName); err != nil {
		h.fail(c, err, response.MsgInsertFailed)
		return
	}
	response.Message(c, response.MsgAddedItem)
}

// AddList 创建清单
// @Summary 创建清单
// @Tags 清单
// @Accept json
// @Produce json
// @Param body body ListRequest true "清单名称"
// @Success 200 {string} string "Added list successfully."
// @Failure 400 {string} string "Missing list name."
// @Failure 500 {string} string "Error inserting into database."
// @Router /add_list [post]
func (h *TodoHandler) AddList(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ListName == "" {
		h.logger.Info("API: Missing list name.", log.LogCtxFromContext(c.Request.Context())...)
		response.Text(c, http.StatusBadRequest, response.MsgMissingListName)
		return
	}

	if err := h.service.AddList(c.Request.Context(), req.ListName); err != nil {
		h.fail(c, err, response.MsgInsertFailed)
		return
	}
	response.Message(c, response.MsgAddedList)
}

// ToggleItem 切换事项完成状态
// @Summary 切换事项完成状态
// @Tags 事项
// @Accept json
// @Produce json
// @Param body body ItemRequest true "清单名称与事项名称"
// @Success 200 {string} string "Toggled item successfully."
// @Failure 400 {string} string "Missing list or item name."
// @Failure 404 {string} string "List <name> not found."
// @Failure 500 {string} string "Error toggling item in database."
// @Router /toggle_item [post]
func (h *TodoHandler) ToggleItem(c *gin.Context) {
	req, ok := h.bindItemRequest(c)
	if !ok {
		return
	}

	if err := h.service.ToggleItem(c.Request.Context(), req.ListName, req.ItemName); err != nil {
		h.fail(c, err, response.MsgToggleFailed)
		return
	}
	response.Message(c, response.MsgToggledItem)
}

// DeleteItem 删除事项
// @Summary 删除事项
// @Tags 事项
// @Accept json
// @Produce json
// @Param body body ItemRequest true "清单名称与事项名称"
// @Success 200 {string} string "Deleted item successfully."
// @Failure 400 {string} string "Missing list or item name."
// @Failure 404 {string} string "List <name> not found."
// @Failure 500 {string} string "Error deleting item from database."
// @Router /delete_item [delete]
func (h *TodoHandler) DeleteItem(c *gin.Context) {
	req, ok := h.bindItemRequest(c)
	if !ok {
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), req.ListName, req.ItemName); err != nil {
		h.fail(c, err, response.MsgDeleteItemFailed)
		return
	}
	response.Message(c, response.MsgDeletedItem)
}

// DeleteList 删除清单及其事项
// @Summary 删除清单
// @Tags 清单
// @Accept json
// @Produce json
// @Param body body ListRequest true "清单名称"
// @Success 200 {string} string "Deleted list successfully."
// @Failure 400 {string} string "Missing list name."
// @Failure 500 {string} string "Error deleting list from database."
// @Router /delete_list [delete]
func (h *TodoHandler) DeleteList(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ListName == "" {
		h.logger.Info("API: Missing list name.", log.LogCtxFromContext(c.Request.Context())...)
		response.Text(c, http.StatusBadRequest, response.MsgMissingListName)
		return
	}

	if err := h.service.DeleteList(c.Request.Context(), req.ListName); err != nil {
		h.fail(c, err, response.MsgDeleteListFailed)
		return
	}
	response.Message(c, response.MsgDeletedList)
}

func (h *TodoHandler) bindItemRequest(c *gin.Context) (ItemRequest, bool) {
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ListName == "" || req.ItemName == "" {
		h.logger.Info("API: Missing list or item name.", log.LogCtxFromContext(c.Request.Context())...)
		response.Text(c, http.StatusBadRequest, response.MsgMissingListOrItem)
		return req, false
	}
	return req, true
}

// fail 把服务层错误映射为 HTTP 状态码与文本
// fallback 用于无法归类的存储错误
func (h *TodoHandler) fail(c *gin.Context, err error, fallback string) {
	var (
		notFound   *todo.ListNotFoundError
		storageErr *todo.StorageError
	)

	switch {
	case errors.Is(err, todo.ErrMissingListName), errors.Is(err, todo.ErrMissingItemName):
		response.Text(c, http.StatusBadRequest, response.MsgMissingListOrItem)
	case errors.Is(err, todo.ErrDuplicateList):
		response.Text(c, http.StatusBadRequest, response.MsgDuplicateList)
	case errors.Is(err, todo.ErrDuplicateItem):
		response.Text(c, http.StatusBadRequest, response.MsgDuplicateItem)
	case errors.As(err, &notFound):
		response.Text(c, http.StatusNotFound, response.ListNotFound(notFound.Name))
	case errors.As(err, &storageErr):
		response.Text(c, http.StatusInternalServerError, storageMessage(storageErr.Op, fallback))
	default:
		h.logger.Error("API: unexpected error", append(log.LogCtxFromContext(c.Request.Context()), "error", err)...)
		response.Text(c, http.StatusInternalServerError, response.MsgInternalServerError)
	}
}

// storageMessage 按失败阶段选择 500 文案
// 解析清单名称失败时沿用所在接口的文案
func storageMessage(op todo.StorageOp, fallback string) string {
	switch op {
	case todo.OpQuery:
		return response.MsgQueryFailed
	case todo.OpCheckDuplicateList:
		return response.MsgCheckDuplicateList
	case todo.OpCheckDuplicateItem:
		return response.MsgCheckDuplicateItem
	case todo.OpInsert:
		return response.MsgInsertFailed
	case todo.OpToggle:
		return response.MsgToggleFailed
	case todo.OpDeleteItem:
		return response.MsgDeleteItemFailed
	case todo.OpDeleteList:
		return response.MsgDeleteListFailed
	default:
		return fallback
	}
}
