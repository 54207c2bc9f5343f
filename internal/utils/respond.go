package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vacay-dev/vacay/internal/errs"
	"github.com/vacay-dev/vacay/internal/logger"
	"github.com/vacay-dev/vacay/internal/types"
)

// RespondError writes the JSON error response for a tagged failure. Internal
// failures are logged with the request id and answered with a generic
// message so datastore details never reach the caller.
func RespondError(ctx *gin.Context, err error) {
	if errs.IsInternal(err) {
		logger.L.WithError(err).
			WithField("request_id", ctx.GetString(types.ContextRequestIDKey)).
			WithField("path", ctx.FullPath()).
			Error("request failed")

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var tagged *errs.Error
	errors.As(err, &tagged)

	ctx.JSON(errs.Status(err), gin.H{"error": tagged.Msg})
}
