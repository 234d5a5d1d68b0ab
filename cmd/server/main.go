package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/labstack/echo/v4"

	"hugely/docs"
	"hugely/internal/auth"
	"hugely/internal/cache"
	"hugely/internal/config"
	"hugely/internal/db"
	"hugely/internal/handler"
	"hugely/internal/logger"
	"hugely/internal/mail"
	"hugely/internal/repository"
	"hugely/internal/router"
	"hugely/internal/service"
)

// @title Hugely CMS API
// @version 1.0
// @description Back office API for news, visitor feedback and visit statistics.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	gormDB, err := db.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if cfg.ResetDB {
		log.Warn().Msg("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			log.Warn().Err(err).Msg("drop tables")
		}
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, caching disabled")
	}

	var sessionStore scs.Store
	if cfg.SessionStore == "redis" {
		sessionStore = cache.NewSessionStore(cacheClient.Strict())
	}
	sessions := auth.NewSessionManager(sessionStore, cfg.SessionLifetime, cfg.CookieSecure)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	newsRepo := repository.NewNewsRepository(gormDB)
	feedbackRepo := repository.NewFeedBackRepository(gormDB)
	visitorRepo := repository.NewVisitorRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient.Strict())

	sender := mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailSender)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore, cacheClient, log)
	userService := service.NewUserService(userRepo, cacheClient)
	newsService := service.NewNewsService(newsRepo, log)
	feedbackService := service.NewFeedBackService(feedbackRepo, sender, log)
	visitorService := service.NewVisitorService(visitorRepo, cacheClient, cfg.VisitorReportTTL, log)

	e := echo.New()
	e.HideBanner = true

	router.Register(
		e,
		log,
		sessions,
		authService,
		handler.NewAuthHandler(authService, sessions, log),
		handler.NewAdminHandler(userService, visitorService),
		handler.NewNewsHandler(newsService),
		handler.NewFeedBackHandler(feedbackService),
		handler.NewHomeHandler(newsService, feedbackService, visitorService),
	)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}
	log.Info().Str("url", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html").Msg("swagger documentation")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
}
