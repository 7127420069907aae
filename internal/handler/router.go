package handler

import (
	"net/http"

	"room-booking-api/internal/handler/api"
	"room-booking-api/internal/handler/middleware"
	"room-booking-api/internal/pkg/config"
	"room-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	cfg config.Config,
	auth usecase.AuthUseCase,
	authHandler *api.AuthHandler,
	roomHandler *api.RoomHandler,
	reservationHandler *api.ReservationHandler,
) *Router {
	engine := gin.New()
	// RedirectTrailingSlash is on by default, so the Django-style
	// /reservations/ URLs reach the slashless routes below.
	engine.Use(
		middleware.Recovery(),
		middleware.Logger(),
		middleware.CORS(cfg.CORS),
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(auth)

	authGroup := engine.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", requireAuth, authHandler.Me)
	}

	engine.GET("/rooms", roomHandler.List)

	reservations := engine.Group("/reservations")
	{
		reservations.GET("", reservationHandler.List)
		reservations.GET("/:id", reservationHandler.Get)
		reservations.POST("", requireAuth, reservationHandler.Create)
		reservations.PUT("/:id", requireAuth, reservationHandler.Update)
		reservations.DELETE("/:id", requireAuth, reservationHandler.Delete)
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return &Router{Engine: engine}
}
