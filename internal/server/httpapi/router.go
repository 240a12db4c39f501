// Package httpapi exposes the REST surface of the server: the auth flow, the
// paginated user query, user administration, and the client shell.
package httpapi

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mlaurent/userboard/internal/logging"
	"github.com/mlaurent/userboard/internal/server/services"
)

// Handler bundles the services the HTTP endpoints delegate to.
type Handler struct {
	auth  *services.AuthService
	users *services.UserService
	log   logging.Logger
}

func NewHandler(auth *services.AuthService, users *services.UserService, log logging.Logger) *Handler {
	return &Handler{auth: auth, users: users, log: log}
}

// NewRouter wires every route. CORS is wide open, matching the setup the
// client shell was written against.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(RequestID())
	router.Use(RequestLogger(h.log))

	router.GET("/health", h.Health)
	router.GET("/", h.Shell)

	api := router.Group("/api")
	{
		api.GET("/ui/config", h.UIConfig)

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", h.Register)
			authRoutes.POST("/login", h.Login)
			authRoutes.GET("/me", h.RequireAuth(), h.Me)
		}

		userRoutes := api.Group("/users")
		{
			userRoutes.GET("", h.ListUsers)
			userRoutes.POST("", h.CreateUser)
			userRoutes.PUT("/:id", h.UpdateUser)
			userRoutes.DELETE("/:id", h.DeleteUser)
		}
	}

	return router
}
