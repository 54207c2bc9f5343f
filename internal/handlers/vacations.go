package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vacay-dev/vacay/internal/errs"
	"github.com/vacay-dev/vacay/internal/gates"
	"github.com/vacay-dev/vacay/internal/models"
	"github.com/vacay-dev/vacay/internal/store"
	"github.com/vacay-dev/vacay/internal/utils"
	"github.com/vacay-dev/vacay/internal/view"
)

type CreateVacationRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Place       string `json:"place"`
	Picture     string `json:"picture"`
}

type UpdateVacationRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Place       *string `json:"place"`
	Picture     *string `json:"picture"`
}

func parseVacationID(ctx *gin.Context) (uint, bool) {
	vid, err := strconv.ParseUint(ctx.Param("vid"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vacation ID"})
		return 0, false
	}

	return uint(vid), true
}

// respondVacations re-fetches the acting user's vacations so every mutation
// answers with the same shape as a plain read.
func respondVacations(ctx *gin.Context, userID uint, status int) {
	result, err := view.VacationsFor(ctx.Request.Context(), userID)

	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	ctx.JSON(status, result)
}

func CreateVacation(ctx *gin.Context) {
	var req CreateVacationRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Name field is required"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	vacation := models.Vacation{
		Name:        req.Name,
		Description: req.Description,
		Place:       req.Place,
		Picture:     req.Picture,
		OwnerID:     userID,
	}

	if err := store.CreateVacation(ctx.Request.Context(), &vacation); err != nil {
		utils.RespondError(ctx, errs.Internal("failed to create vacation", err))
		return
	}

	respondVacations(ctx, userID, http.StatusCreated)
}

func UpdateVacation(ctx *gin.Context) {
	vid, ok := parseVacationID(ctx)

	if !ok {
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req UpdateVacationRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	reqCtx := ctx.Request.Context()

	if err := gates.Run(
		gates.VacationExists(reqCtx, vid),
		gates.Owner(reqCtx, userID, vid),
	); err != nil {
		utils.RespondError(ctx, err)
		return
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		if *req.Name == "" {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Name cannot be empty"})
			return
		}
		updates["name"] = *req.Name
	}

	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if req.Place != nil {
		updates["place"] = *req.Place
	}

	if req.Picture != nil {
		updates["picture"] = *req.Picture
	}

	if len(updates) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}

	if _, err := store.UpdateVacation(reqCtx, vid, updates); err != nil {
		if store.IsNotFound(err) {
			utils.RespondError(ctx, errs.NotFound("Vacation with that ID was not found"))
			return
		}
		utils.RespondError(ctx, errs.Internal("failed to update vacation", err))
		return
	}

	respondVacations(ctx, userID, http.StatusAccepted)
}

func DeleteVacation(ctx *gin.Context) {
	vid, ok := parseVacationID(ctx)

	if !ok {
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	reqCtx := ctx.Request.Context()

	if err := gates.Run(
		gates.VacationExists(reqCtx, vid),
		gates.Owner(reqCtx, userID, vid),
	); err != nil {
		utils.RespondError(ctx, err)
		return
	}

	deleted, err := store.DeleteVacation(reqCtx, vid)

	if err != nil {
		utils.RespondError(ctx, errs.Internal("failed to delete vacation", err))
		return
	}

	if !deleted {
		utils.RespondError(ctx, errs.NotFound("Vacation with that ID was not found"))
		return
	}

	respondVacations(ctx, userID, http.StatusAccepted)
}
