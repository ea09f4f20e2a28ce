package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pawtracks/training-system/internal/core/ports"
)

// listResponse is the shared admin-listing envelope. LastID is the cursor for
// the next page and is omitted when the page is empty.
type listResponse struct {
	Data   any    `json:"data"`
	LastID string `json:"lastId,omitempty"`
}

// AdminHandler serves the cursor-paginated collection listings.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// ListUsers handles GET /api/admin/users.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        size    query     int     false  "Page size (default 10)"
// @Param        lastId  query     string  false  "Cursor: identifier of the last record of the previous page"
// @Success      200     {object}  listResponse
// @Failure      401     {object}  errorResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, err := h.service.ListUsers(c.Request().Context(), pageInput(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Data: nonNil(page.Items), LastID: page.LastID})
}

// ListAnimals handles GET /api/admin/animals.
//
// @Summary      List animals
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        size    query     int     false  "Page size (default 10)"
// @Param        lastId  query     string  false  "Cursor: identifier of the last record of the previous page"
// @Success      200     {object}  listResponse
// @Failure      401     {object}  errorResponse
// @Router       /api/admin/animals [get]
func (h *AdminHandler) ListAnimals(c echo.Context) error {
	page, err := h.service.ListAnimals(c.Request().Context(), pageInput(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Data: nonNil(page.Items), LastID: page.LastID})
}

// ListTrainingLogs handles GET /api/admin/training.
//
// @Summary      List training logs
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        size    query     int     false  "Page size (default 10)"
// @Param        lastId  query     string  false  "Cursor: identifier of the last record of the previous page"
// @Success      200     {object}  listResponse
// @Failure      401     {object}  errorResponse
// @Router       /api/admin/training [get]
func (h *AdminHandler) ListTrainingLogs(c echo.Context) error {
	page, err := h.service.ListTrainingLogs(c.Request().Context(), pageInput(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Data: nonNil(page.Items), LastID: page.LastID})
}

// pageInput parses the size/lastId query parameters. A missing or malformed
// size falls back to the service default.
func pageInput(c echo.Context) ports.PageInput {
	size, _ := strconv.ParseInt(c.QueryParam("size"), 10, 64)
	return ports.PageInput{
		Size:   size,
		LastID: c.QueryParam("lastId"),
	}
}

// nonNil keeps empty pages serializing as [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
