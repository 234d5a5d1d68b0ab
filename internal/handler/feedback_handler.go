package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	apperrors "hugely/internal/errors"
	"hugely/internal/service"
)

const feedbackReviewPath = "/admin/feedback_review"

// FeedBackHandler handles feedback management endpoints.
type FeedBackHandler struct {
	feedback service.FeedBackService
}

// NewFeedBackHandler creates a new feedback handler.
func NewFeedBackHandler(feedback service.FeedBackService) *FeedBackHandler {
	return &FeedBackHandler{feedback: feedback}
}

// Review lists feedback, newest first, optionally filtered by content.
func (h *FeedBackHandler) Review(c echo.Context) error {
	page, err := h.list(c)
	if err != nil {
		return fail(c, err)
	}
	return render(c, "admin/feedback_review.html", page)
}

// ReplyPage shows the reply form of ?feedback_id=.
func (h *FeedBackHandler) ReplyPage(c echo.Context) error {
	return h.showFeedBack(c, "admin/feedback_reply.html")
}

// Reply mails the posted answer to the message named by fb_id and returns to
// the review page the administrator came from.
func (h *FeedBackHandler) Reply(c echo.Context) error {
	feedbackID, err := service.ParseID(c.FormValue("fb_id"))
	if err != nil {
		return fail(c, err)
	}
	var in service.ReplyInput
	if err := c.Bind(&in); err != nil {
		return fail(c, apperrors.ErrValidation)
	}
	if err := h.feedback.Reply(c.Request().Context(), feedbackID, in); err != nil {
		return fail(c, err)
	}

	target := feedbackReviewPath
	if page := c.FormValue("page"); page != "" {
		target += "?" + url.Values{"page": {page}}.Encode()
	}
	return c.Redirect(http.StatusFound, target)
}

// DeletePage shows the delete confirmation of ?feedback_id=.
func (h *FeedBackHandler) DeletePage(c echo.Context) error {
	return h.showFeedBack(c, "admin/feedback_delete.html")
}

// Delete removes the message named by the feedback_id form field.
func (h *FeedBackHandler) Delete(c echo.Context) error {
	feedbackID, err := service.ParseID(c.FormValue("feedback_id"))
	if err != nil {
		return fail(c, err)
	}
	if err := h.feedback.Delete(c.Request().Context(), feedbackID); err != nil {
		return fail(c, err)
	}
	return done(c, "deleted")
}

// List godoc
// @Summary List feedback
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param keywords query string false "Content filter"
// @Success 200 {object} service.FeedBackPage
// @Failure 401 {object} errors.Response
// @Router /admin/feedback [get]
func (h *FeedBackHandler) List(c echo.Context) error {
	page, err := h.list(c)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

// SendReply godoc
// @Summary Reply to feedback by email
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Feedback ID"
// @Param request body service.ReplyInput true "Reply"
// @Success 200 {object} errors.Response
// @Failure 400 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Failure 502 {object} errors.Response
// @Router /admin/feedback/{id}/reply [post]
func (h *FeedBackHandler) SendReply(c echo.Context) error {
	feedbackID, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	var in service.ReplyInput
	if err := c.Bind(&in); err != nil {
		return fail(c, apperrors.ErrValidation)
	}
	if err := h.feedback.Reply(c.Request().Context(), feedbackID, in); err != nil {
		return fail(c, err)
	}
	return done(c, "replied")
}

// Remove godoc
// @Summary Delete feedback
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Param id path int true "Feedback ID"
// @Success 200 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /admin/feedback/{id} [delete]
func (h *FeedBackHandler) Remove(c echo.Context) error {
	feedbackID, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.feedback.Delete(c.Request().Context(), feedbackID); err != nil {
		return fail(c, err)
	}
	return done(c, "deleted")
}

func (h *FeedBackHandler) list(c echo.Context) (*service.FeedBackPage, error) {
	return h.feedback.List(c.Request().Context(), service.ParsePage(c.QueryParam("page")), c.QueryParam("keywords"))
}

func (h *FeedBackHandler) showFeedBack(c echo.Context, template string) error {
	feedbackID, err := service.ParseID(c.QueryParam("feedback_id"))
	if err != nil {
		return renderError(c, newsReviewTemplate, err)
	}
	feedback, err := h.feedback.Get(c.Request().Context(), feedbackID)
	if err != nil {
		return renderError(c, newsReviewTemplate, err)
	}
	return render(c, template, echo.Map{
		"feedback": feedback.View(),
		"page":     c.QueryParam("page"),
	})
}
