package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"mural-api/internal/bootstrap"
	"mural-api/internal/transport/http/handler"
	"mural-api/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = app.Config.CORS.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	healthHandler := handler.NewHealthHandler(app.Config.App.Name, app.Config.App.Env, app.DB)
	authHandler := handler.NewAuthHandler(app.Auth)
	userHandler := handler.NewUserHandler(app.Auth)
	messageHandler := handler.NewMessageHandler(app.Messages)

	router.GET("/", healthHandler.Banner)
	router.GET("/healthz", healthHandler.Check)

	router.GET("/usuarios", userHandler.List)

	authGroup := router.Group("/auth")
	authGroup.POST("/cadastrar", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	// Reads are public; only mutations sit behind the token gate.
	router.GET("/mensagens", messageHandler.List)
	guarded := router.Group("/mensagens")
	guarded.Use(middleware.AuthJWT(app.Config.Auth.JWTSecret))
	guarded.POST("", messageHandler.Create)
	guarded.PUT("/:id", messageHandler.Update)
	guarded.DELETE("/:id", messageHandler.Delete)

	return router
}
