package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"stayin/app/domain"
	"stayin/app/port"
	apperrors "stayin/app/utils/errors"
	"stayin/app/utils/validator"
)

// AuthHandler handles credential HTTP requests
type AuthHandler struct {
	accounts port.AccountUsecase
	sessions port.SessionUsecase
	validate *validator.Validator
	logger   *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accounts port.AccountUsecase, sessions port.SessionUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		sessions: sessions,
		validate: validator.New(),
		logger:   logger,
	}
}

// Login authenticates with email and password
// @Summary Log in
// @Description Authenticate against the credential provider with email and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} IdentityResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} apperrors.AppError
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind login request",
			"error", err,
			"content_type", c.Request().Header.Get("Content-Type"))
		return c.JSON(http.StatusBadRequest, apperrors.New(apperrors.ErrCodeInvalidInput, "request body could not be parsed"))
	}

	if err := h.validate.Validate(&req); err != nil {
		return h.validationError(c, err)
	}

	identity, err := h.accounts.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.Error("login failed", "email", req.Email, "error", err)
		return h.domainError(c, err)
	}

	h.logger.Info("login completed successfully",
		"identity_id", identity.ID,
		"email", req.Email)

	return c.JSON(http.StatusOK, IdentityResponse{Identity: identity})
}

// Register creates an identity and its profile document
// @Summary Register
// @Description Create a credential identity, then a profile under the same id
// @Tags authentication
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} IdentityResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} apperrors.AppError
// @Failure 502 {object} apperrors.AppError "Identity created but profile write failed"
// @Router /v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind registration request",
			"error", err,
			"content_type", c.Request().Header.Get("Content-Type"))
		return c.JSON(http.StatusBadRequest, apperrors.New(apperrors.ErrCodeInvalidInput, "request body could not be parsed"))
	}

	if err := h.validate.Validate(&req); err != nil {
		return h.validationError(c, err)
	}

	signUp := &domain.SignUpRequest{
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Role:        domain.Role(req.Role),
	}

	identity, err := h.accounts.SignUp(ctx, signUp)
	if err != nil {
		// The identity may exist without its profile document; surface
		// that distinctly so the client can retry the profile write.
		if errors.Is(err, domain.ErrProfileWriteFailed) && identity != nil {
			h.logger.Error("registration left a partial account",
				"identity_id", identity.ID,
				"email", req.Email,
				"error", err)
			return c.JSON(http.StatusBadGateway, apperrors.FromDomain(err))
		}

		h.logger.Error("registration failed", "email", req.Email, "error", err)
		return h.domainError(c, err)
	}

	h.logger.Info("registration completed successfully",
		"identity_id", identity.ID,
		"email", req.Email,
		"role", req.Role)

	return c.JSON(http.StatusCreated, IdentityResponse{Identity: identity})
}

// Logout revokes the provider session and clears the snapshot
// @Summary Log out
// @Description Revoke the provider session; the local snapshot clears immediately
// @Tags authentication
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 502 {object} apperrors.AppError
// @Router /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.sessions.SignOut(ctx); err != nil {
		// The snapshot is already cleared; report the provider failure anyway.
		h.logger.Error("provider logout failed", "error", err)
		return h.domainError(c, err)
	}

	h.logger.Info("logout completed successfully")
	return c.JSON(http.StatusOK, MessageResponse{Message: "signed out"})
}

// Recovery starts a password recovery flow
// @Summary Recover password
// @Description Send a recovery code to the given email address
// @Tags authentication
// @Accept json
// @Produce json
// @Param body body RecoveryRequest true "Recovery target"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /v1/auth/recovery [post]
func (h *AuthHandler) Recovery(c echo.Context) error {
	ctx := c.Request().Context()

	var req RecoveryRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind recovery request", "error", err)
		return c.JSON(http.StatusBadRequest, apperrors.New(apperrors.ErrCodeInvalidInput, "request body could not be parsed"))
	}

	if err := h.validate.Validate(&req); err != nil {
		return h.validationError(c, err)
	}

	if err := h.accounts.ResetPassword(ctx, req.Email); err != nil {
		h.logger.Error("recovery flow failed", "email", req.Email, "error", err)
		return h.domainError(c, err)
	}

	// Same response whether or not the address exists.
	return c.JSON(http.StatusOK, MessageResponse{Message: "if the address exists, a recovery code has been sent"})
}

func (h *AuthHandler) validationError(c echo.Context, err error) error {
	var verr validator.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Code:   string(apperrors.ErrCodeValidationFailed),
			Fields: verr.Errors,
		})
	}
	return c.JSON(http.StatusBadRequest, apperrors.New(apperrors.ErrCodeInvalidInput, err.Error()))
}

func (h *AuthHandler) domainError(c echo.Context, err error) error {
	appErr := apperrors.FromDomain(err)
	return c.JSON(appErr.StatusCode, appErr)
}

// Request types

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FullName    string `json:"full_name" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,e164"`
	Role        string `json:"role" validate:"required,role"`
}

type RecoveryRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Response types

type IdentityResponse struct {
	Identity *domain.Identity `json:"identity"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields"`
}
