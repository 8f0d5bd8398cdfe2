package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/api/http/httpcontext"
	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/api/http/router"
	httpServer "github.com/jj-carrillo-dev/snippet-manager-backend/internal/api/http/server"
	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/config"
	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/hasher"
	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/logger"
	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/model"
	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/repository/postgres"
	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/service"
	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	snippetRepo := postgres.NewSnippetRepository(db)

	passwordHasher := hasher.NewBcrypt(cfg.Password.BcryptCost)
	tokenManager := token.NewJWT(cfg.JWT.SecretKey)
	ctxMgr := httpcontext.NewManager()

	authService := service.NewAuth(userRepo, passwordHasher, tokenManager, logger)
	tokenService := service.NewTokenService(tokenManager, userRepo, logger)
	userService := service.NewUser(userRepo, passwordHasher, logger)
	categoryService := service.NewCategory(categoryRepo, logger)
	snippetService := service.NewSnippet(snippetRepo, categoryRepo, logger)

	srv := registerHTTPServer(
		logger,
		authService, tokenService, userService, categoryService, snippetService,
		ctxMgr,
		fmt.Sprintf(":%s", cfg.HTTP.Port),
	)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func registerHTTPServer(
	logger *logger.Logger,
	authService *service.Auth,
	tokenService *service.TokenService,
	userService *service.User,
	categoryService *service.Category,
	snippetService *service.Snippet,
	ctxMgr model.ContextManager,
	addr string,
) *httpServer.HTTPServer {
	r := router.New(authService, tokenService, userService, categoryService, snippetService, ctxMgr, logger)
	engine := r.Register()

	return httpServer.NewHTTPServer(engine, addr)
}
