package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vacay-dev/vacay/internal/errs"
	"github.com/vacay-dev/vacay/internal/gates"
	"github.com/vacay-dev/vacay/internal/store"
	"github.com/vacay-dev/vacay/internal/utils"
)

type InviteRequest struct {
	Username string `json:"username" binding:"required"`
}

// InviteMember adds a registered user to the vacation by username.
func InviteMember(ctx *gin.Context) {
	userID, vid, ok := requestScope(ctx)

	if !ok {
		return
	}

	var req InviteRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Username field is required"})
		return
	}

	reqCtx := ctx.Request.Context()

	if err := gates.Run(gates.Owner(reqCtx, userID, vid)); err != nil {
		utils.RespondError(ctx, err)
		return
	}

	invitee, err := store.UserByUsername(reqCtx, req.Username)

	if err != nil {
		if store.IsNotFound(err) {
			utils.RespondError(ctx, errs.NotFound("User with that username doesn't exist"))
			return
		}
		utils.RespondError(ctx, errs.Internal("failed to fetch user", err))
		return
	}

	if err := gates.Run(gates.NotAlreadyMember(reqCtx, invitee.ID, vid)); err != nil {
		utils.RespondError(ctx, err)
		return
	}

	if err := store.AddMembership(reqCtx, invitee.ID, vid); err != nil {
		if store.IsDuplicate(err) {
			utils.RespondError(ctx, errs.Conflict("User is already part of the vacation"))
			return
		}
		utils.RespondError(ctx, errs.Internal("failed to add member", err))
		return
	}

	respondVacations(ctx, userID, http.StatusCreated)
}

// RemoveMember takes a user out of the vacation by id.
func RemoveMember(ctx *gin.Context) {
	userID, vid, ok := requestScope(ctx)

	if !ok {
		return
	}

	memberID, ok := parseResourceID(ctx)

	if !ok {
		return
	}

	reqCtx := ctx.Request.Context()

	if err := gates.Run(gates.Owner(reqCtx, userID, vid)); err != nil {
		utils.RespondError(ctx, err)
		return
	}

	if _, err := store.UserByID(reqCtx, memberID); err != nil {
		if store.IsNotFound(err) {
			utils.RespondError(ctx, errs.NotFound("User with that ID doesn't exist"))
			return
		}
		utils.RespondError(ctx, errs.Internal("failed to fetch user", err))
		return
	}

	if err := gates.Run(gates.IsMember(reqCtx, memberID, vid)); err != nil {
		utils.RespondError(ctx, err)
		return
	}

	removed, err := store.RemoveMembership(reqCtx, memberID, vid)

	if err != nil {
		utils.RespondError(ctx, errs.Internal("failed to remove member", err))
		return
	}

	if !removed {
		utils.RespondError(ctx, errs.Conflict("That user isn't part of the vacation"))
		return
	}

	respondVacations(ctx, userID, http.StatusAccepted)
}
