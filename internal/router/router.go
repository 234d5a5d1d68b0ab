package router

import (
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"hugely/internal/handler"
	"hugely/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	log zerolog.Logger,
	sessions *scs.SessionManager,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
	newsHandler *handler.NewsHandler,
	feedbackHandler *handler.FeedBackHandler,
	homeHandler *handler.HomeHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(requestLogger(log))

	e.Validator = &CustomValidator{validator: service.Validator()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public site
	e.GET("/", homeHandler.Home)
	e.GET("/index", homeHandler.Static("home/index.html"))
	e.GET("/about", homeHandler.Static("home/about.html"))
	e.GET("/services", homeHandler.Static("home/services.html"))
	e.GET("/contact_feedback", homeHandler.Static("home/contact_feedback.html"))
	for _, product := range []string{"yuns1", "pgy", "lbc", "meme", "sulun"} {
		e.GET("/"+product, homeHandler.Static("home/"+product+".html"))
	}
	e.GET("/news", homeHandler.News)
	e.GET("/contact", homeHandler.Static("home/contact.html"))
	e.POST("/contact", homeHandler.Contact)

	// Back office, session guarded
	admin := e.Group("/admin",
		echo.WrapMiddleware(sessions.LoadAndSave),
		AdminSession(sessions, "/index", "/admin/login"),
	)
	admin.GET("", authHandler.Admin)
	admin.GET("/", authHandler.Admin)
	admin.GET("/login", authHandler.LoginPage)
	admin.POST("/login", authHandler.Login)
	admin.GET("/logout", authHandler.Logout)
	admin.GET("/index", adminHandler.Index)
	admin.GET("/visitor_count", adminHandler.VisitorCount)
	admin.GET("/news_release", newsHandler.ReleasePage)
	admin.POST("/news_release", newsHandler.Release)
	admin.GET("/news_review", newsHandler.Review)
	admin.GET("/news_edit", newsHandler.EditPage)
	admin.POST("/news_edit", newsHandler.Edit)
	admin.GET("/news_delete", newsHandler.DeletePage)
	admin.POST("/news_delete", newsHandler.Delete)
	admin.GET("/feedback_review", feedbackHandler.Review)
	admin.GET("/feedback_reply", feedbackHandler.ReplyPage)
	admin.POST("/feedback_reply", feedbackHandler.Reply)
	admin.GET("/feedback_delete", feedbackHandler.DeletePage)
	admin.POST("/feedback_delete", feedbackHandler.Delete)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.TokenLogin)

	// Secured routes (require a bearer token)
	secured := api.Group("", TokenGuard(authService), RequireAdmin())
	secured.POST("/auth/logout", authHandler.TokenLogout)

	secured.GET("/admin/news", newsHandler.List)
	secured.POST("/admin/news", newsHandler.Create)
	secured.GET("/admin/news/:id", newsHandler.Get)
	secured.PUT("/admin/news/:id", newsHandler.Update)
	secured.DELETE("/admin/news/:id", newsHandler.Remove)

	secured.GET("/admin/feedback", feedbackHandler.List)
	secured.POST("/admin/feedback/:id/reply", feedbackHandler.SendReply)
	secured.DELETE("/admin/feedback/:id", feedbackHandler.Remove)

	secured.GET("/admin/visitor_count", adminHandler.VisitorReport)
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Error != nil {
				event = log.Error().Err(v.Error)
			}
			event.
				Str("id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Str("remote_ip", v.RemoteIP).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
