package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wares-dev/wares/internal/auth"
	"github.com/wares-dev/wares/internal/repository"
	"github.com/wares-dev/wares/internal/types"
	"github.com/wares-dev/wares/internal/utils"
)

type AuthHandler struct {
	Users     *repository.UserRepository
	Tokens    *repository.TokenRepository
	JWTSecret []byte
	TokenTTL  time.Duration
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	var body RegisterRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.Users.Create(ctx.Request.Context(), repository.CreateUser{
		Email:    body.Email,
		Password: body.Password,
		FullName: body.FullName,
	})

	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		}
		log.Printf("Failed to create user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"user": types.NewUserResponse(user)})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var body LoginRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.Users.Authenticate(ctx.Request.Context(), body.Email, body.Password)

	if err != nil {
		writeRepositoryError(ctx, err)
		return
	}

	token, err := auth.GenerateToken(user.ID, h.JWTSecret, h.TokenTTL)

	if err != nil {
		log.Printf("Failed to generate token: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// Token rows are removed with their user; deleting an account revokes
	// nothing in flight but leaves no orphaned credentials behind.
	if _, err := h.Tokens.Create(ctx.Request.Context(), token, user.ID, time.Now().Add(h.TokenTTL)); err != nil {
		log.Printf("Failed to record token: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	principal, err := utils.CurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	user, err := h.Users.Get(ctx.Request.Context(), principal.ID)

	if err != nil {
		writeRepositoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": types.NewUserResponse(user)})
}
