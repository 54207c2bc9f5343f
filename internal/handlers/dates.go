package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vacay-dev/vacay/internal/errs"
	"github.com/vacay-dev/vacay/internal/gates"
	"github.com/vacay-dev/vacay/internal/models"
	"github.com/vacay-dev/vacay/internal/store"
	"github.com/vacay-dev/vacay/internal/utils"
)

type DateRangeRequest struct {
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
}

func parseResourceID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}

	return uint(id), true
}

// requestScope pulls the acting user and the vacation attached by
// RequireVacation out of the gin context.
func requestScope(ctx *gin.Context) (userID, vacationID uint, ok bool) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return 0, 0, false
	}

	vacationID, err = utils.GetVacationID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vacation ID"})
		return 0, 0, false
	}

	return userID, vacationID, true
}

func AddDateRange(ctx *gin.Context) {
	userID, vid, ok := requestScope(ctx)

	if !ok {
		return
	}

	var req DateRangeRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	reqCtx := ctx.Request.Context()

	if err := gates.Run(
		gates.Owner(reqCtx, userID, vid),
		gates.DateSlotFree(reqCtx, vid),
	); err != nil {
		utils.RespondError(ctx, err)
		return
	}

	dates := models.DateRange{
		Start:      req.Start,
		End:        req.End,
		VacationID: vid,
	}

	if err := store.CreateDateRange(reqCtx, &dates); err != nil {
		if store.IsDuplicate(err) {
			utils.RespondError(ctx, errs.Conflict("Vacation already has dates assigned"))
			return
		}
		utils.RespondError(ctx, errs.Internal("failed to add dates", err))
		return
	}

	respondVacations(ctx, userID, http.StatusCreated)
}

func UpdateDateRange(ctx *gin.Context) {
	userID, vid, ok := requestScope(ctx)

	if !ok {
		return
	}

	id, ok := parseResourceID(ctx)

	if !ok {
		return
	}

	var req DateRangeRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	reqCtx := ctx.Request.Context()

	if err := gates.Run(
		gates.DateRangeInVacation(reqCtx, id, vid),
		gates.Owner(reqCtx, userID, vid),
	); err != nil {
		utils.RespondError(ctx, err)
		return
	}

	updates := make(map[string]interface{})

	if req.Start != nil {
		updates["start"] = *req.Start
	}

	if req.End != nil {
		updates["end"] = *req.End
	}

	if len(updates) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a start or end date field"})
		return
	}

	if _, err := store.UpdateDateRange(reqCtx, id, updates); err != nil {
		if store.IsNotFound(err) {
			utils.RespondError(ctx, errs.NotFound("Dates with that ID were not found"))
			return
		}
		utils.RespondError(ctx, errs.Internal("failed to update dates", err))
		return
	}

	respondVacations(ctx, userID, http.StatusAccepted)
}

func DeleteDateRange(ctx *gin.Context) {
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
		gates.DateRangeInVacation(reqCtx, id, vid),
		gates.Owner(reqCtx, userID, vid),
	); err != nil {
		utils.RespondError(ctx, err)
		return
	}

	deleted, err := store.DeleteDateRange(reqCtx, id)

	if err != nil {
		utils.RespondError(ctx, errs.Internal("failed to delete dates", err))
		return
	}

	if !deleted {
		utils.RespondError(ctx, errs.NotFound("Dates with that ID were not found"))
		return
	}

	respondVacations(ctx, userID, http.StatusAccepted)
}
