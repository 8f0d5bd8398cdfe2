package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/api/http/handler"
	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/api/http/middleware"
	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/logger"
	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/model"
	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/service"
)

// Router wires services into the HTTP route tree. Registration and
// login are public; everything else sits behind the bearer-token
// middleware.
type Router struct {
	authService     *service.Auth
	tokenService    *service.TokenService
	userService     *service.User
	categoryService *service.Category
	snippetService  *service.Snippet
	contextManager  model.ContextManager
	logger          *logger.Logger
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	tokenService *service.TokenService,
	userService *service.User,
	categoryService *service.Category,
	snippetService *service.Snippet,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:     authService,
		tokenService:    tokenService,
		userService:     userService,
		categoryService: categoryService,
		snippetService:  snippetService,
		contextManager:  contextManager,
		logger:          logger,
	}
}

// Register builds the gin engine with all routes and middleware.
func (r *Router) Register() *gin.Engine {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)

	engine := gin.New()
	engine.Use(logging.Handle, gin.Recovery())

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "page not found"})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": "ok"})
	})

	authHandler := handler.NewAuth(r.authService, r.logger)
	userHandler := handler.NewUser(r.userService, r.contextManager, r.logger)
	categoryHandler := handler.NewCategory(r.categoryService, r.contextManager, r.logger)
	snippetHandler := handler.NewSnippet(r.snippetService, r.contextManager, r.logger)

	engine.POST("/auth/login", authHandler.Login)
	engine.POST("/user", userHandler.Register)

	authed := engine.Group("", authenticate.Handle)
	{
		authed.GET("/user/me", userHandler.Me)
		authed.PATCH("/user/me", userHandler.UpdateMe)
		authed.DELETE("/user/me", userHandler.DeleteMe)

		authed.POST("/category", categoryHandler.Create)
		authed.GET("/category", categoryHandler.List)
		authed.GET("/category/:id", categoryHandler.Get)
		authed.PATCH("/category/:id", categoryHandler.Update)
		authed.DELETE("/category/:id", categoryHandler.Delete)

		authed.POST("/snippet", snippetHandler.Create)
		authed.GET("/snippet", snippetHandler.List)
		authed.GET("/snippet/:id", snippetHandler.Get)
		authed.PATCH("/snippet/:id", snippetHandler.Update)
		authed.DELETE("/snippet/:id", snippetHandler.Delete)
	}

	return engine
}
