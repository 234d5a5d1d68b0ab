package handler

import (
	"github.com/labstack/echo/v4"

	apperrors "hugely/internal/errors"
	"hugely/internal/service"
)

// HomeHandler serves the public site.
type HomeHandler struct {
	news     service.NewsService
	feedback service.FeedBackService
	visitors service.VisitorService
}

// NewHomeHandler creates a handler layer.
func NewHomeHandler(news service.NewsService, feedback service.FeedBackService, visitors service.VisitorService) *HomeHandler {
	return &HomeHandler{news: news, feedback: feedback, visitors: visitors}
}

// Home records the visit and shows the landing page.
func (h *HomeHandler) Home(c echo.Context) error {
	req := c.Request()
	h.visitors.Record(req.Context(), req.Host, req.UserAgent())
	return render(c, "home/index.html", nil)
}

// Static returns a handler showing a page with no data.
func (h *HomeHandler) Static(template string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return render(c, template, nil)
	}
}

// News lists published articles ten per page.
func (h *HomeHandler) News(c echo.Context) error {
	page, err := h.news.List(c.Request().Context(), service.ParsePage(c.QueryParam("page")), "")
	if err != nil {
		return fail(c, err)
	}
	return render(c, "home/news.html", page)
}

// Contact stores the posted contact form.
func (h *HomeHandler) Contact(c echo.Context) error {
	var in service.FeedBackInput
	if err := c.Bind(&in); err != nil {
		return fail(c, apperrors.ErrValidation)
	}
	if _, err := h.feedback.Submit(c.Request().Context(), in); err != nil {
		return fail(c, err)
	}
	return done(c, "")
}
