package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 成功响应文案
const (
	MsgAddedItem   = "Added item successfully."
	MsgAddedList   = "Added list successfully."
	MsgToggledItem = "Toggled item successfully."
	MsgDeletedItem = "Deleted item successfully."
	MsgDeletedList = "Deleted list successfully."
)

// 错误响应文案
const (
	MsgMissingListName     = "Missing list name."
	MsgMissingListOrItem   = "Missing list or item name."
	MsgDuplicateList       = "You already have a list with this name."
	MsgDuplicateItem       = "An item with this description already exists in your list!"
	MsgQueryFailed         = "Error querying database."
	MsgCheckDuplicateList  = "Error checking for duplicate list."
	MsgCheckDuplicateItem  = "Error checking for duplicate item."
	MsgInsertFailed        = "Error inserting into database."
	MsgToggleFailed        = "Error toggling item in database."
	MsgDeleteItemFailed    = "Error deleting item from database."
	MsgDeleteListFailed    = "Error deleting list from database."
	MsgInternalServerError = "Internal server error."
)

// Message 成功响应：JSON 字符串
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, message)
}

// Rows 成功响应：原样返回行数组
func Rows(c *gin.Context, rows interface{}) {
	c.JSON(http.StatusOK, rows)
}

// Text 错误响应：纯文本
func Text(c *gin.Context, httpCode int, message string) {
	c.String(httpCode, message)
}

// ListNotFound 清单不存在的文案
func ListNotFound(name string) string {
	return "List " + name + " not found."
}
