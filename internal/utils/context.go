package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/wares-dev/wares/internal/middleware"
	"github.com/wares-dev/wares/internal/types"
)

func CurrentUser(ctx *gin.Context) (middleware.Principal, error) {
	value, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return middleware.Principal{}, fmt.Errorf("user not authenticated")
	}

	principal, ok := value.(middleware.Principal)

	if !ok {
		return middleware.Principal{}, fmt.Errorf("invalid user type in context")
	}

	return principal, nil
}
