package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawtracks/training-system/internal/api/metrics"
	"github.com/pawtracks/training-system/internal/core/domain"
	"github.com/pawtracks/training-system/internal/core/ports"
)

type createTrainingLogRequest struct {
	Date        string   `json:"date"        validate:"required,dateish"`
	Description string   `json:"description" validate:"required"`
	Hours       *float64 `json:"hours"       validate:"required"`
	Animal      string   `json:"animal"      validate:"required,objectid"`
}

// TrainingHandler handles training-log creation.
type TrainingHandler struct {
	service ports.TrainingService
}

func NewTrainingHandler(service ports.TrainingService) *TrainingHandler {
	return &TrainingHandler{service: service}
}

// Create records a training session for one of the caller's animals.
//
// @Summary      Create a training log
// @Tags         training
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTrainingLogRequest  true  "Training log details"
// @Success      200   {object}  domain.TrainingLog
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/training [post]
func (h *TrainingHandler) Create(c echo.Context) error {
	caller, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createTrainingLogRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, ve)
		}
		return err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, &ValidationError{
			Fields: map[string]string{"date": "date must be a valid date"},
		})
	}

	log, err := h.service.Create(c.Request().Context(), ports.CreateTrainingLogInput{
		Date:        date,
		Description: req.Description,
		Hours:       *req.Hours,
		AnimalID:    req.Animal,
		UserID:      caller.ID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBrokenReference):
			return c.JSON(http.StatusBadRequest, errorResponse{
				Error: "The animal or user associated with the log does not exist",
			})
		case errors.Is(err, domain.ErrOwnershipMismatch):
			return c.JSON(http.StatusBadRequest, errorResponse{
				Error: "The animal is not owned by the user associated with the log",
			})
		}
		return err
	}

	metrics.TrainingLogsCreatedTotal.Inc()
	metrics.TrainingHoursTotal.Add(log.Hours)
	return c.JSON(http.StatusOK, log)
}
