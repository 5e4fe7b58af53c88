package middleware

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// MaxBodyBytes 请求体上限，接口只接收两个短字符串字段
const MaxBodyBytes = 64 << 10

// EnsureUTF8Body 把非 UTF-8 的请求体按 GBK 解码
// Windows 中文终端下 curl 发送的清单名称可能是 GBK 编码
func EnsureUTF8Body() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.ContentLength == 0 {
			c.Next()
			return
		}

		raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes))
		c.Request.Body.Close()
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.AbortWithStatus(http.StatusRequestEntityTooLarge)
			return
		}
		if err != nil {
			// 读取失败交给 handler 按缺少参数处理
			c.Request.Body = io.NopCloser(bytes.NewReader(raw))
			c.Next()
			return
		}

		body := normalizeBody(raw)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		c.Request.ContentLength = int64(len(body))

		c.Next()
	}
}

// normalizeBody 返回 UTF-8 请求体，无法转换时原样返回
func normalizeBody(raw []byte) []byte {
	if len(raw) == 0 || utf8.Valid(raw) {
		return raw
	}

	decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(raw), simplifiedchinese.GBK.NewDecoder()))
	if err != nil || !utf8.Valid(decoded) {
		return raw
	}
	return decoded
}
