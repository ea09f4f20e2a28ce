package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pawtracks/training-system/internal/api/metrics"
	"github.com/pawtracks/training-system/internal/core/ports"
)

type createAnimalRequest struct {
	Name        string `json:"name"        validate:"required"`
	DateOfBirth string `json:"dateOfBirth" validate:"omitempty,dateish"`
}

// AnimalHandler handles animal registration.
type AnimalHandler struct {
	service ports.AnimalService
}

func NewAnimalHandler(service ports.AnimalService) *AnimalHandler {
	return &AnimalHandler{service: service}
}

// Create registers a new animal owned by the caller.
//
// @Summary      Create an animal
// @Tags         animals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAnimalRequest  true  "Animal details"
// @Success      200   {object}  domain.Animal
// @Failure      400   {object}  ValidationError
// @Failure      401   {object}  errorResponse
// @Router       /api/animal [post]
func (h *AnimalHandler) Create(c echo.Context) error {
	caller, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createAnimalRequest
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

	var dateOfBirth *time.Time
	if req.DateOfBirth != "" {
		dob, err := parseDate(req.DateOfBirth)
		if err != nil {
			return c.JSON(http.StatusBadRequest, &ValidationError{
				Fields: map[string]string{"dateOfBirth": "dateOfBirth must be a valid date"},
			})
		}
		dateOfBirth = &dob
	}

	animal, err := h.service.Create(c.Request().Context(), ports.CreateAnimalInput{
		Name:        req.Name,
		DateOfBirth: dateOfBirth,
		OwnerID:     caller.ID,
	})
	if err != nil {
		return err
	}

	metrics.AnimalsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, animal)
}
