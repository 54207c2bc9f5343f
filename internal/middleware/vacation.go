package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vacay-dev/vacay/internal/gates"
	"github.com/vacay-dev/vacay/internal/types"
	"github.com/vacay-dev/vacay/internal/utils"
)

// RequireVacation parses the :vid path segment, verifies the vacation exists
// and attaches its id to the context. Nested sub-resource handlers can then
// trust the id without re-checking.
func RequireVacation() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		raw := ctx.Param("vid")

		vid, err := strconv.ParseUint(raw, 10, 32)

		if err != nil {
			ctx.AbortWithStatusJSON(400, gin.H{"error": "Invalid vacation ID"})
			return
		}

		if err := gates.Run(gates.VacationExists(ctx.Request.Context(), uint(vid))); err != nil {
			utils.RespondError(ctx, err)
			ctx.Abort()
			return
		}

		ctx.Set(types.ContextVacationKey, uint(vid))
		ctx.Next()
	}
}
