package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wares-dev/wares/internal/repository"
	"github.com/wares-dev/wares/internal/types"
)

// UsersHandler serves the admin user CRUD surface. Routes mount it behind
// the superuser middleware.
type UsersHandler struct {
	Users *repository.UserRepository
}

type CreateUserRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FullName    string `json:"full_name"`
	IsActive    *bool  `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
}

type UpdateUserRequest struct {
	Email       *string `json:"email" binding:"omitempty,email"`
	Password    *string `json:"password" binding:"omitempty,min=8"`
	FullName    *string `json:"full_name"`
	IsActive    *bool   `json:"is_active"`
	IsSuperuser *bool   `json:"is_superuser"`
}

func (h *UsersHandler) List(ctx *gin.Context) {
	skip, limit := paginationParams(ctx)

	users, err := h.Users.List(ctx.Request.Context(), skip, limit)

	if err != nil {
		writeRepositoryError(ctx, err)
		return
	}

	response := make([]types.UserResponse, 0, len(users))

	for i := range users {
		response = append(response, types.NewUserResponse(&users[i]))
	}

	ctx.JSON(http.StatusOK, gin.H{"users": response})
}

func (h *UsersHandler) Create(ctx *gin.Context) {
	var body CreateUserRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.Users.Create(ctx.Request.Context(), repository.CreateUser{
		Email:       body.Email,
		Password:    body.Password,
		FullName:    body.FullName,
		IsActive:    body.IsActive,
		IsSuperuser: body.IsSuperuser,
	})

	if err != nil {
		writeRepositoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"user": types.NewUserResponse(user)})
}

func (h *UsersHandler) Get(ctx *gin.Context) {
	userID, ok := idParam(ctx, "user_id")

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	user, err := h.Users.Get(ctx.Request.Context(), userID)

	if err != nil {
		writeRepositoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": types.NewUserResponse(user)})
}

func (h *UsersHandler) Update(ctx *gin.Context) {
	userID, ok := idParam(ctx, "user_id")

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var body UpdateUserRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.Users.Get(ctx.Request.Context(), userID)

	if err != nil {
		writeRepositoryError(ctx, err)
		return
	}

	user, err = h.Users.Update(ctx.Request.Context(), user, repository.UpdateUser{
		Email:       body.Email,
		Password:    body.Password,
		FullName:    body.FullName,
		IsActive:    body.IsActive,
		IsSuperuser: body.IsSuperuser,
	})

	if err != nil {
		writeRepositoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": types.NewUserResponse(user)})
}

func (h *UsersHandler) Delete(ctx *gin.Context) {
	userID, ok := idParam(ctx, "user_id")

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	user, err := h.Users.Remove(ctx.Request.Context(), userID)

	if err != nil {
		writeRepositoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": types.NewUserResponse(user)})
}
