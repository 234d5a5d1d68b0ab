package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hugely/internal/service"
)

// AdminHandler serves the console landing page and the visit statistics.
type AdminHandler struct {
	users    service.UserService
	visitors service.VisitorService
}

// NewAdminHandler creates a handler layer.
func NewAdminHandler(users service.UserService, visitors service.VisitorService) *AdminHandler {
	return &AdminHandler{users: users, visitors: visitors}
}

// Index shows the console home with the signed-in administrator.
func (h *AdminHandler) Index(c echo.Context) error {
	id, ok := identity(c)
	if !ok {
		return failSession(c)
	}
	user, err := h.users.GetUser(c.Request().Context(), id.UserID)
	if err != nil {
		return fail(c, err)
	}
	return render(c, "admin/index.html", echo.Map{"user": user.View()})
}

// VisitorCount shows the visit totals and the daily activity chart.
func (h *AdminHandler) VisitorCount(c echo.Context) error {
	return render(c, "admin/visitor_count.html", h.visitors.Report(c.Request().Context()))
}

// VisitorReport godoc
// @Summary Visit statistics
// @Tags visitors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.VisitorReport
// @Failure 401 {object} errors.Response
// @Router /admin/visitor_count [get]
func (h *AdminHandler) VisitorReport(c echo.Context) error {
	return c.JSON(http.StatusOK, h.visitors.Report(c.Request().Context()))
}
