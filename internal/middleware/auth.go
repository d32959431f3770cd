package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wares-dev/wares/internal/auth"
	"github.com/wares-dev/wares/internal/repository"
	"github.com/wares-dev/wares/internal/types"
)

// Principal is the authenticated user attached to the request context.
type Principal struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	IsActive    bool   `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
}

// Authenticate validates the bearer token, resolves its subject to a user row
// and rejects inactive accounts. Missing, malformed, tampered and expired
// tokens are all 401; a valid token for an inactive user is 403.
func Authenticate(users *repository.UserRepository, secret []byte) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		userID, _, err := auth.ParseToken(parts[1], secret)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		user, err := users.Get(ctx.Request.Context(), userID)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		if !user.IsActive {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Inactive user"})
			return
		}

		ctx.Set(types.ContextUserKey, Principal{
			ID:          user.ID,
			Email:       user.Email,
			FullName:    user.FullName,
			IsActive:    user.IsActive,
			IsSuperuser: user.IsSuperuser,
		})
		ctx.Next()
	}
}

// RequireSuperuser runs after Authenticate and rejects principals without the
// superuser flag.
func RequireSuperuser() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, exists := ctx.Get(types.ContextUserKey)

		principal, ok := value.(Principal)

		if !exists || !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		if !principal.IsSuperuser {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "The user doesn't have enough privileges"})
			return
		}

		ctx.Next()
	}
}
