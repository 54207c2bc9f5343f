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

type CreateCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

type UpdateCommentRequest struct {
	Body *string `json:"body"`
}

func AddComment(ctx *gin.Context) {
	userID, vid, ok := requestScope(ctx)

	if !ok {
		return
	}

	var req CreateCommentRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Body field is required"})
		return
	}

	comment := models.Comment{
		Body:       req.Body,
		CreatedBy:  userID,
		VacationID: vid,
	}

	if err := store.CreateComment(ctx.Request.Context(), &comment); err != nil {
		utils.RespondError(ctx, errs.Internal("failed to create comment", err))
		return
	}

	respondVacations(ctx, userID, http.StatusCreated)
}

func UpdateComment(ctx *gin.Context) {
	userID, vid, ok := requestScope(ctx)

	if !ok {
		return
	}

	id, ok := parseResourceID(ctx)

	if !ok {
		return
	}

	var req UpdateCommentRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Body == nil || *req.Body == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Body cannot be empty"})
		return
	}

	reqCtx := ctx.Request.Context()

	if err := gates.Run(
		gates.CommentExists(reqCtx, id),
		gates.OwnerOrAuthor(reqCtx, userID, vid, id),
	); err != nil {
		utils.RespondError(ctx, err)
		return
	}

	if _, err := store.UpdateComment(reqCtx, id, map[string]interface{}{"body": *req.Body}); err != nil {
		if store.IsNotFound(err) {
			utils.RespondError(ctx, errs.NotFound("Comment with that ID was not found"))
			return
		}
		utils.RespondError(ctx, errs.Internal("failed to update comment", err))
		return
	}

	respondVacations(ctx, userID, http.StatusAccepted)
}

func DeleteComment(ctx *gin.Context) {
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
		gates.CommentExists(reqCtx, id),
		gates.OwnerOrAuthor(reqCtx, userID, vid, id),
	); err != nil {
		utils.RespondError(ctx, err)
		return
	}

	deleted, err := store.DeleteComment(reqCtx, id)

	if err != nil {
		utils.RespondError(ctx, errs.Internal("failed to delete comment", err))
		return
	}

	if !deleted {
		utils.RespondError(ctx, errs.NotFound("Comment with that ID was not found"))
		return
	}

	respondVacations(ctx, userID, http.StatusAccepted)
}
