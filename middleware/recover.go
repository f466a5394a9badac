package middleware

import (
	"log/slog"
	"net/http"

	"movie-discovery-backend/helper"

	"github.com/gin-gonic/gin"
)

// Recover maps any panic to a 500 envelope; the cause is logged, not
// exposed.
func Recover() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic", "err", rec)
				helper.Fail(c, http.StatusInternalServerError, "Internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}
