package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawtracks/training-system/internal/api/metrics"
	"github.com/pawtracks/training-system/internal/core/domain"
	"github.com/pawtracks/training-system/internal/core/ports"
)

type uploadRequest struct {
	Type string `form:"type" validate:"required,oneof=user animal training"`
	ID   string `form:"id"   validate:"required,objectid"`
}

// UploadHandler accepts a multipart file and relays it to the storage worker.
type UploadHandler struct {
	service ports.UploadService
}

func NewUploadHandler(service ports.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// Upload handles POST /api/file/upload.
//
// @Summary      Upload a file for a user, animal, or training log
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file    true   "File to upload"
// @Param        type  formData  string  true   "Target kind: user, animal, or training"
// @Param        id    formData  string  false  "Target identifier (ignored for type=user)"
// @Success      200
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/file/upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	caller, err := ctxUser(c)
	if err != nil {
		return err
	}

	req := uploadRequest{
		Type: c.FormValue("type"),
		ID:   c.FormValue("id"),
	}
	// A user upload can only ever target the caller's own record.
	if req.Type == string(ports.UploadKindUser) {
		req.ID = caller.ID
	}

	fileHeader, fileErr := c.FormFile("file")
	if fileErr != nil || c.Validate(&req) != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Parameters and/or file not given"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Parameters and/or file not given"})
	}
	defer file.Close()

	kind := ports.UploadKind(req.Type)
	err = h.service.Upload(c.Request().Context(), ports.UploadInput{
		CallerID: caller.ID,
		Kind:     kind,
		TargetID: req.ID,
		File:     file,
	})
	if err != nil {
		if errors.Is(err, domain.ErrOwnershipMismatch) {
			metrics.UploadErrorsTotal.WithLabelValues("ownership").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: ownershipMessage(kind)})
		}
		metrics.UploadErrorsTotal.WithLabelValues("worker").Inc()
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "An internal error occurred"})
	}

	metrics.UploadsTotal.WithLabelValues(req.Type).Inc()
	return c.NoContent(http.StatusOK)
}

func ownershipMessage(kind ports.UploadKind) string {
	if kind == ports.UploadKindTraining {
		return "The training log is not associated with the user calling the request"
	}
	return "The animal is not associated with the user calling the request"
}
