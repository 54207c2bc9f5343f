package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vacay-dev/vacay/internal/errs"
	"github.com/vacay-dev/vacay/internal/gates"
	"github.com/vacay-dev/vacay/internal/models"
	"github.com/vacay-dev/vacay/internal/store"
	"github.com/vacay-dev/vacay/internal/utils"
)

type CreateActivityRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateActivityRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func AddActivity(ctx *gin.Context) {
	userID, vid, ok := requestScope(ctx)

	if !ok {
		return
	}

	var req CreateActivityRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Name field is required"})
		return
	}

	reqCtx := ctx.Request.Context()

	if err := gates.Run(gates.Owner(reqCtx, userID, vid)); err != nil {
		utils.RespondError(ctx, err)
		return
	}

	activity := models.Activity{
		Name:        req.Name,
		Description: req.Description,
		VacationID:  vid,
	}

	if err := store.CreateActivity(reqCtx, &activity); err != nil {
		utils.RespondError(ctx, errs.Internal("failed to create activity", err))
		return
	}

	respondVacations(ctx, userID, http.StatusCreated)
}

func UpdateActivity(ctx *gin.Context) {
	userID, vid, ok := requestScope(ctx)

	if !ok {
		return
	}

	id, ok := parseResourceID(ctx)

	if !ok {
		return
	}

	var req UpdateActivityRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	reqCtx := ctx.Request.Context()

	if err := gates.Run(
		gates.ActivityExists(reqCtx, id),
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

	if len(updates) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}

	if _, err := store.UpdateActivity(reqCtx, id, updates); err != nil {
		if store.IsNotFound(err) {
			utils.RespondError(ctx, errs.NotFound("Activity with that ID was not found"))
			return
		}
		utils.RespondError(ctx, errs.Internal("failed to update activity", err))
		return
	}

	respondVacations(ctx, userID, http.StatusAccepted)
}

func DeleteActivity(ctx *gin.Context) {
	userID, vid, ok := requestScope(ctx)

	if !ok {
		return
	}

	id, ok := parseResourceID(ctx)

	if !ok {
		return
	}

	reqCtx := ctx.Request.Context()

	if err := gates.Run(
		gates.ActivityExists(reqCtx, id),
		gates.Owner(reqCtx, userID, vid),
	); err != nil {
		utils.RespondError(ctx, err)
		return
	}

	deleted, err := store.DeleteActivity(reqCtx, id)

	if err != nil {
		utils.RespondError(ctx, errs.Internal("failed to delete activity", err))
		return
	}

	if !deleted {
		utils.RespondError(ctx, errs.NotFound("Activity with that ID was not found"))
		return
	}

	respondVacations(ctx, userID, http.StatusAccepted)
}
