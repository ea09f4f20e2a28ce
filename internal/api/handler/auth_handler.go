package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawtracks/training-system/internal/api/metrics"
	"github.com/pawtracks/training-system/internal/core/ports"
)

// AuthHandler handles registration and the credential endpoints.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  ValidationError
// @Failure      500   {object}  errorResponse
// @Router       /api/user [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
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

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Password:       req.Password,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.Inc()
	return c.JSON(http.StatusOK, user)
}

// Login checks credentials without issuing a token.
//
// @Summary      Check credentials
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200
// @Failure      403   {object}  errorResponse
// @Router       /api/user/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	req, ok := bindCredentials(c)
	if !ok {
		return c.JSON(http.StatusForbidden, errorResponse{Error: invalidCredentialsMessage})
	}

	if err := h.authService.Login(c.Request().Context(), req.Email, req.Password); err != nil {
		return c.JSON(http.StatusForbidden, errorResponse{Error: invalidCredentialsMessage})
	}
	return c.NoContent(http.StatusOK)
}

// Verify checks credentials and returns a signed bearer token.
//
// @Summary      Issue a bearer token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  verifyResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/user/verify [post]
func (h *AuthHandler) Verify(c echo.Context) error {
	req, ok := bindCredentials(c)
	if !ok {
		return c.JSON(http.StatusForbidden, errorResponse{Error: invalidCredentialsMessage})
	}

	token, err := h.authService.Verify(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return c.JSON(http.StatusForbidden, errorResponse{Error: invalidCredentialsMessage})
	}
	return c.JSON(http.StatusOK, verifyResponse{Token: token})
}

// bindCredentials parses a login/verify body. A malformed body is reported the
// same way as bad credentials, so nothing about the account leaks.
func bindCredentials(c echo.Context) (loginRequest, bool) {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return req, false
	}
	if err := c.Validate(&req); err != nil {
		return req, false
	}
	return req, true
}
