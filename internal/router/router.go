package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/wares-dev/wares/internal/config"
	"github.com/wares-dev/wares/internal/handlers"
	"github.com/wares-dev/wares/internal/middleware"
	"github.com/wares-dev/wares/internal/repository"
	"gorm.io/gorm"
)

func NewRouter(conn *gorm.DB, cfg config.Config) *gin.Engine {
	users := repository.NewUserRepository(conn)
	items := repository.NewItemRepository(conn)
	tokens := repository.NewTokenRepository(conn)

	authHandler := &handlers.AuthHandler{
		Users:     users,
		Tokens:    tokens,
		JWTSecret: []byte(cfg.JWTSecret),
		TokenTTL:  cfg.TokenTTL,
	}
	usersHandler := &handlers.UsersHandler{Users: users}
	itemsHandler := &handlers.ItemsHandler{Items: items}
	healthHandler := &handlers.HealthHandler{DB: conn}

	authenticated := middleware.Authenticate(users, []byte(cfg.JWTSecret))

	r := gin.Default()

	allowOrigins := cfg.CORSAllowedOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Check)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", authenticated, authHandler.Me)
		}

		admin := api.Group("/users", authenticated, middleware.RequireSuperuser())
		{
			admin.GET("", usersHandler.List)
			admin.POST("", usersHandler.Create)
			admin.GET("/:user_id", usersHandler.Get)
			admin.PUT("/:user_id", usersHandler.Update)
			admin.DELETE("/:user_id", usersHandler.Delete)
		}

		itemRoutes := api.Group("/items", authenticated)
		{
			itemRoutes.GET("", itemsHandler.List)
			itemRoutes.POST("", itemsHandler.Create)
			itemRoutes.GET("/:item_id", itemsHandler.Get)
			itemRoutes.PUT("/:item_id", itemsHandler.Update)
			itemRoutes.DELETE("/:item_id", itemsHandler.Delete)
		}
	}

	return r
}
