package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wares-dev/wares/internal/repository"
)

// writeRepositoryError maps the repository error taxonomy onto HTTP statuses.
// Unexpected store errors are logged and answered with a generic 500 body so
// internal details never reach the client.
func writeRepositoryError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, repository.ErrConflict):
		ctx.JSON(http.StatusConflict, gin.H{"error": "Conflicts with existing data"})
	case errors.Is(err, repository.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	default:
		log.Printf("Unexpected store error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func paginationParams(ctx *gin.Context) (skip, limit int) {
	return intQuery(ctx, "skip", 0), intQuery(ctx, "limit", 100)
}

func intQuery(ctx *gin.Context, key string, fallback int) int {
	value, err := strconv.Atoi(ctx.Query(key))

	if err != nil || value < 0 {
		return fallback
	}

	return value
}

func idParam(ctx *gin.Context, key string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param(key), 10, 64)

	if err != nil {
		return 0, false
	}

	return uint(value), true
}
