package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "hugely/internal/errors"
	"hugely/internal/service"
)

const newsReviewTemplate = "admin/news_review.html"

// NewsHandler handles news management endpoints.
type NewsHandler struct {
	news service.NewsService
}

// NewNewsHandler creates a new news handler.
func NewNewsHandler(news service.NewsService) *NewsHandler {
	return &NewsHandler{news: news}
}

// ReleasePage shows the publish form.
func (h *NewsHandler) ReleasePage(c echo.Context) error {
	return render(c, "admin/news_release.html", nil)
}

// Release publishes the posted article under the signed-in administrator.
func (h *NewsHandler) Release(c echo.Context) error {
	id, ok := identity(c)
	if !ok {
		return failSession(c)
	}
	var in service.NewsInput
	if err := c.Bind(&in); err != nil {
		return fail(c, apperrors.ErrValidation)
	}
	if _, err := h.news.Publish(c.Request().Context(), in, id.UserID); err != nil {
		return fail(c, err)
	}
	return done(c, "published")
}

// Review lists articles, newest first, optionally filtered by title.
func (h *NewsHandler) Review(c echo.Context) error {
	page, err := h.list(c)
	if err != nil {
		return fail(c, err)
	}
	return render(c, newsReviewTemplate, page)
}

// EditPage shows the edit form of ?news_id=.
func (h *NewsHandler) EditPage(c echo.Context) error {
	return h.showNews(c, "admin/news_edit.html")
}

// Edit overwrites the article named by the news_id form field.
func (h *NewsHandler) Edit(c echo.Context) error {
	newsID, err := service.ParseID(c.FormValue("news_id"))
	if err != nil {
		return fail(c, err)
	}
	return h.edit(c, newsID)
}

// DeletePage shows the delete confirmation of ?news_id=.
func (h *NewsHandler) DeletePage(c echo.Context) error {
	return h.showNews(c, "admin/news_delete.html")
}

// Delete removes the article named by the news_id form field.
func (h *NewsHandler) Delete(c echo.Context) error {
	newsID, err := service.ParseID(c.FormValue("news_id"))
	if err != nil {
		return fail(c, err)
	}
	if err := h.news.Delete(c.Request().Context(), newsID); err != nil {
		return fail(c, err)
	}
	return done(c, "deleted")
}

// List godoc
// @Summary List news
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param keywords query string false "Title filter"
// @Success 200 {object} service.NewsPage
// @Failure 401 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /admin/news [get]
func (h *NewsHandler) List(c echo.Context) error {
	page, err := h.list(c)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

// Create godoc
// @Summary Publish news
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.NewsInput true "Article"
// @Success 201 {object} Created
// @Failure 400 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /admin/news [post]
func (h *NewsHandler) Create(c echo.Context) error {
	id, ok := identity(c)
	if !ok {
		return failSession(c)
	}
	var in service.NewsInput
	if err := c.Bind(&in); err != nil {
		return fail(c, apperrors.ErrValidation)
	}
	news, err := h.news.Publish(c.Request().Context(), in, id.UserID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, Created{
		Response: apperrors.Response{Errno: apperrors.OK, Errmsg: "published"},
		ID:       news.ID,
	})
}

// Get godoc
// @Summary Get news by id
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param id path int true "News ID"
// @Success 200 {object} model.NewsView
// @Failure 401 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /admin/news/{id} [get]
func (h *NewsHandler) Get(c echo.Context) error {
	newsID, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	view, err := h.news.Get(c.Request().Context(), newsID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// Update godoc
// @Summary Edit news
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "News ID"
// @Param request body service.NewsInput true "Article"
// @Success 200 {object} errors.Response
// @Failure 400 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /admin/news/{id} [put]
func (h *NewsHandler) Update(c echo.Context) error {
	newsID, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	return h.edit(c, newsID)
}

// Remove godoc
// @Summary Delete news
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param id path int true "News ID"
// @Success 200 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /admin/news/{id} [delete]
func (h *NewsHandler) Remove(c echo.Context) error {
	newsID, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.news.Delete(c.Request().Context(), newsID); err != nil {
		return fail(c, err)
	}
	return done(c, "deleted")
}

func (h *NewsHandler) list(c echo.Context) (*service.NewsPage, error) {
	return h.news.List(c.Request().Context(), service.ParsePage(c.QueryParam("page")), c.QueryParam("keywords"))
}

func (h *NewsHandler) edit(c echo.Context, newsID uint) error {
	id, ok := identity(c)
	if !ok {
		return failSession(c)
	}
	var in service.NewsInput
	if err := c.Bind(&in); err != nil {
		return fail(c, apperrors.ErrValidation)
	}
	if err := h.news.Edit(c.Request().Context(), newsID, in, id.UserID); err != nil {
		return fail(c, err)
	}
	return done(c, "saved")
}

// showNews renders template with the article of ?news_id=, or the review page
// with an error message.
func (h *NewsHandler) showNews(c echo.Context, template string) error {
	newsID, err := service.ParseID(c.QueryParam("news_id"))
	if err != nil {
		return renderError(c, newsReviewTemplate, err)
	}
	view, err := h.news.Get(c.Request().Context(), newsID)
	if err != nil {
		return renderError(c, newsReviewTemplate, err)
	}
	return render(c, template, echo.Map{"news": view})
}
