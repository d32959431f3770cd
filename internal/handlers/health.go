package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	DB *gorm.DB
}

// Check pings the store so the endpoint reflects whether the service can
// actually serve requests, not just that the process is up.
func (h *HealthHandler) Check(ctx *gin.Context) {
	sqlDB, err := h.DB.DB()

	if err == nil {
		err = sqlDB.PingContext(ctx.Request.Context())
	}

	if err != nil {
		log.Printf("Health check failed: %v", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "unavailable",
			"timestamp": time.Now().Format(time.RFC3339),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
