package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vacay-dev/vacay/internal/errs"
	"github.com/vacay-dev/vacay/internal/store"
	"github.com/vacay-dev/vacay/internal/utils"
	"github.com/vacay-dev/vacay/internal/view"
	"golang.org/x/crypto/bcrypt"
)

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Avatar   *string `json:"avatar"`
}

// GetMe returns the requesting user's full aggregate view.
func GetMe(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	result, err := view.ForUser(ctx.Request.Context(), userID)

	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// UpdateMe partially updates the requesting user; absent fields keep their
// stored value.
func UpdateMe(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req UpdateUserRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	reqCtx := ctx.Request.Context()
	updates := make(map[string]interface{})

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)

		if username == "" {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Username cannot be empty"})
			return
		}

		existing, err := store.UserByUsername(reqCtx, username)

		if err == nil && existing.ID != userID {
			utils.RespondError(ctx, errs.Conflict("Username must be unique"))
			return
		}

		if err != nil && !store.IsNotFound(err) {
			utils.RespondError(ctx, errs.Internal("failed to check username", err))
			return
		}

		updates["username"] = username
	}

	if req.Password != nil {
		if *req.Password == "" {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Password cannot be empty"})
			return
		}

		passwordHash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)

		if err != nil {
			utils.RespondError(ctx, errs.Internal("failed to hash password", err))
			return
		}

		updates["password_hash"] = string(passwordHash)
	}

	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}

	if len(updates) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}

	if _, err := store.UpdateUser(reqCtx, userID, updates); err != nil {
		utils.RespondError(ctx, errs.Internal("failed to update user", err))
		return
	}

	result, err := view.ForUser(reqCtx, userID)

	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, result)
}
