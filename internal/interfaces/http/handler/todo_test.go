package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	appTodo "github.com/listkeeper/backend/internal/application/todo"
	"github.com/listkeeper/backend/internal/domain/todo"
	"github.com/listkeeper/backend/internal/infrastructure/config"
	"github.com/listkeeper/backend/internal/infrastructure/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTodoRouter(t *testing.T) *gin.Engine {
	t.Helper()
	router, _ := setupTodoRouterWithDB(t)
	return router
}

func setupTodoRouterWithDB(t *testing.T) (*gin.Engine, *sql.DB) {
	t.Helper()

	db, err := storage.ProvideDB(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "handler.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	h := NewTodoHandler(appTodo.NewService(storage.NewTodoRepository(db), nil))

	router := gin.New()
	router.GET("/get_lists", h.GetLists)
	router.GET("/get_items", h.GetItems)
	router.GET("/get_data", h.GetData)
	router.POST("/add_item", h.AddItem)
	router.POST("/add_list", h.AddList)
	router.POST("/toggle_item", h.ToggleItem)
	router.DELETE("/delete_item", h.DeleteItem)
	router.DELETE("/delete_list", h.DeleteList)
	return router, db
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var msg string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg), "body: %s", w.Body.String())
	return msg
}

func TestTodoHandler_Validation(t *testing.T) {
	router := setupTodoRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"添加清单缺少名称", http.MethodPost, "/add_list", `{}`, http.StatusBadRequest, "Missing list name."},
		{"添加清单名称为空", http.MethodPost, "/add_list", `{"list_name":""}`, http.StatusBadRequest, "Missing list name."},
		{"添加清单非法 JSON", http.MethodPost, "/add_list", `{not json`, http.StatusBadRequest, "Missing list name."},
		{"添加事项缺少清单", http.MethodPost, "/add_item", `{"item_name":"Milk"}`, http.StatusBadRequest, "Missing list or item name."},
		{"添加事项缺少事项", http.MethodPost, "/add_item?list_name=Groceries", `{}`, http.StatusBadRequest, "Missing list or item name."},
		{"切换缺少事项", http.MethodPost, "/toggle_item", `{"list_name":"Groceries"}`, http.StatusBadRequest, "Missing list or item name."},
		{"删除事项缺少清单", http.MethodDelete, "/delete_item", `{"item_name":"Milk"}`, http.StatusBadRequest, "Missing list or item name."},
		{"删除清单缺少名称", http.MethodDelete, "/delete_list", `{}`, http.StatusBadRequest, "Missing list name."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestTodoHandler_EndToEnd(t *testing.T) {
	router := setupTodoRouter(t)

	w := doRequest(router, http.MethodPost, "/add_list", `{"list_name":"Groceries"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Added list successfully.", decodeMessage(t, w))

	w = doRequest(router, http.MethodPost, "/add_item?list_name=Groceries", `{"item_name":"Milk"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Added item successfully.", decodeMessage(t, w))

	w = doRequest(router, http.MethodPost, "/toggle_item", `{"list_name":"Groceries","item_name":"Milk"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Toggled item successfully.", decodeMessage(t, w))

	w = doRequest(router, http.MethodGet, "/get_data", "")
	require.Equal(t, http.StatusOK, w.Code)
	var rows []todo.DisplayRow
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Groceries", rows[0].ListName)
	require.NotNil(t, rows[0].ItemName)
	assert.Equal(t, "Milk", *rows[0].ItemName)
	require.NotNil(t, rows[0].Completed)
	assert.True(t, *rows[0].Completed)

	w = doRequest(router, http.MethodGet, "/get_lists", "")
	require.Equal(t, http.StatusOK, w.Code)
	var lists []todo.List
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lists))
	require.Len(t, lists, 1)
	assert.Equal(t, "Groceries", lists[0].Name)

	w = doRequest(router, http.MethodGet, "/get_items", "")
	require.Equal(t, http.StatusOK, w.Code)
	var items []todo.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, lists[0].ID, items[0].ListID)
	assert.True(t, items[0].Completed)

	w = doRequest(router, http.MethodDelete, "/delete_item", `{"list_name":"Groceries","item_name":"Milk"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Deleted item successfully.", decodeMessage(t, w))

	// 清单仍在，LEFT JOIN 给出空事项行
	w = doRequest(router, http.MethodGet, "/get_data", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"list_name":"Groceries","item_name":null,"completed":null}]`, w.Body.String())

	w = doRequest(router, http.MethodDelete, "/delete_list", `{"list_name":"Groceries"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Deleted list successfully.", decodeMessage(t, w))

	w = doRequest(router, http.MethodGet, "/get_lists", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestTodoHandler_Duplicates(t *testing.T) {
	router := setupTodoRouter(t)

	require.Equal(t, http.StatusOK, doRequest(router, http.MethodPost, "/add_list", `{"list_name":"Work"}`).Code)

	w := doRequest(router, http.MethodPost, "/add_list", `{"list_name":"Work"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "You already have a list with this name.", w.Body.String())

	require.Equal(t, http.StatusOK, doRequest(router, http.MethodPost, "/add_item?list_name=Work", `{"item_name":"Report"}`).Code)

	w = doRequest(router, http.MethodPost, "/add_item?list_name=Work", `{"item_name":"Report"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "An item with this description already exists in your list!", w.Body.String())

	// 大小写不同视为不同名称
	w = doRequest(router, http.MethodPost, "/add_list", `{"list_name":"work"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTodoHandler_UnknownList(t *testing.T) {
	router := setupTodoRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"添加事项", http.MethodPost, "/add_item?list_name=Nope", `{"item_name":"Milk"}`},
		{"切换事项", http.MethodPost, "/toggle_item", `{"list_name":"Nope","item_name":"Milk"}`},
		{"删除事项", http.MethodDelete, "/delete_item", `{"list_name":"Nope","item_name":"Milk"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, "List Nope not found.", w.Body.String())
		})
	}
}

func TestTodoHandler_MissingItemIsNoOp(t *testing.T) {
	router := setupTodoRouter(t)
	require.Equal(t, http.StatusOK, doRequest(router, http.MethodPost, "/add_list", `{"list_name":"Home"}`).Code)

	w := doRequest(router, http.MethodPost, "/toggle_item", `{"list_name":"Home","item_name":"Ghost"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodDelete, "/delete_item", `{"list_name":"Home","item_name":"Ghost"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	// 删除不存在的清单同样成功
	w = doRequest(router, http.MethodDelete, "/delete_list", `{"list_name":"Ghost"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTodoHandler_EmptyReads(t *testing.T) {
	router := setupTodoRouter(t)

	for _, path := range []string{"/get_lists", "/get_items", "/get_data"} {
		w := doRequest(router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `[]`, w.Body.String(), path)
	}
}

func TestTodoHandler_StorageFailure(t *testing.T) {
	router, db := setupTodoRouterWithDB(t)
	require.Equal(t, http.StatusOK, doRequest(router, http.MethodPost, "/add_list", `{"list_name":"Home"}`).Code)
	require.NoError(t, db.Close())

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		wantBody string
	}{
		{"获取清单", http.MethodGet, "/get_lists", "", "Error querying database."},
		{"获取事项", http.MethodGet, "/get_items", "", "Error querying database."},
		{"获取展示数据", http.MethodGet, "/get_data", "", "Error querying database."},
		{"添加清单", http.MethodPost, "/add_list", `{"list_name":"Work"}`, "Error checking for duplicate list."},
		{"添加事项", http.MethodPost, "/add_item?list_name=Home", `{"item_name":"Milk"}`, "Error inserting into database."},
		{"切换事项", http.MethodPost, "/toggle_item", `{"list_name":"Home","item_name":"Milk"}`, "Error toggling item in database."},
		{"删除事项", http.MethodDelete, "/delete_item", `{"list_name":"Home","item_name":"Milk"}`, "Error deleting item from database."},
		{"删除清单", http.MethodDelete, "/delete_list", `{"list_name":"Home"}`, "Error deleting list from database."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestStorageMessage(t *testing.T) {
	assert.Equal(t, "Error checking for duplicate list.", storageMessage(todo.OpCheckDuplicateList, "x"))
	assert.Equal(t, "Error checking for duplicate item.", storageMessage(todo.OpCheckDuplicateItem, "x"))
	assert.Equal(t, "Error querying database.", storageMessage(todo.OpQuery, "x"))
	assert.Equal(t, "Error toggling item in database.", storageMessage(todo.OpResolveList, "Error toggling item in database."))
	assert.Equal(t, "fallback", storageMessage(todo.StorageOp("other"), "fallback"))
}
