package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vacay-dev/vacay/internal/types"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an id for log correlation, reusing the
// caller's id when one is supplied.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(requestIDHeader)

		if id == "" {
			id = uuid.NewString()
		}

		ctx.Set(types.ContextRequestIDKey, id)
		ctx.Header(requestIDHeader, id)
		ctx.Next()
	}
}
