package helper

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response envelope shared by every endpoint. Count is only set on list
// responses and Message only on mutations and failures.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func OK(ctx *gin.Context, status int, message string, data interface{}) {
	ctx.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func List(ctx *gin.Context, count int, data interface{}) {
	ctx.JSON(http.StatusOK, Response{
		Success: true,
		Count:   &count,
		Data:    data,
	})
}

func Fail(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, Response{
		Success: false,
		Message: message,
	})
}
