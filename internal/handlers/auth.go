package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vacay-dev/vacay/internal/auth"
	"github.com/vacay-dev/vacay/internal/errs"
	"github.com/vacay-dev/vacay/internal/models"
	"github.com/vacay-dev/vacay/internal/store"
	"github.com/vacay-dev/vacay/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Avatar   string `json:"avatar"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

func Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	req.Username = strings.TrimSpace(req.Username)

	if req.Username == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Username cannot be empty"})
		return
	}

	reqCtx := ctx.Request.Context()

	_, err := store.UserByUsername(reqCtx, req.Username)

	if err == nil {
		utils.RespondError(ctx, errs.Conflict("Username must be unique"))
		return
	}

	if !store.IsNotFound(err) {
		utils.RespondError(ctx, errs.Internal("failed to check existing user", err))
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	if err != nil {
		utils.RespondError(ctx, errs.Internal("failed to hash password", err))
		return
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: string(passwordHash),
		Avatar:       req.Avatar,
	}

	if err := store.CreateUser(reqCtx, &user); err != nil {
		if store.IsDuplicate(err) {
			utils.RespondError(ctx, errs.Conflict("Username must be unique"))
			return
		}
		utils.RespondError(ctx, errs.Internal("failed to create user", err))
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Username)

	if err != nil {
		utils.RespondError(ctx, errs.Internal("failed to generate token", err))
		return
	}

	ctx.JSON(http.StatusCreated, AuthResponse{
		ID:       user.ID,
		Username: user.Username,
		Token:    token,
	})
}

func Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	user, err := store.UserByUsername(ctx.Request.Context(), req.Username)

	if err != nil {
		if store.IsNotFound(err) {
			utils.RespondError(ctx, errs.Unauthorized("Invalid credentials"))
			return
		}
		utils.RespondError(ctx, errs.Internal("failed to fetch user", err))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		utils.RespondError(ctx, errs.Unauthorized("Invalid credentials"))
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Username)

	if err != nil {
		utils.RespondError(ctx, errs.Internal("failed to generate token", err))
		return
	}

	ctx.JSON(http.StatusOK, AuthResponse{
		ID:       user.ID,
		Username: user.Username,
		Token:    token,
	})
}
