package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/velofab/pallet-service/internal/domain/dto"
	"github.com/velofab/pallet-service/internal/domain/model"
	"github.com/velofab/pallet-service/internal/i18n"
	"github.com/velofab/pallet-service/internal/middleware"
	"github.com/velofab/pallet-service/internal/service"
)

// AuthHandler provides HTTP handlers for authentication routes.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// loginResponse assembles the token + user payload shared by login and
// register.
func loginResponse(tokenPair *dto.TokenPair, user *model.User) dto.LoginResponse {
	return dto.LoginResponse{
		Token:        tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User: dto.UserResponse{
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
	}
}

// bindAuthRequest binds and validates an auth request body, writing the 400
// response itself on failure.
func bindAuthRequest[T any](c *gin.Context, builder *ResponseBuilder) (*T, bool) {
	req, err := BuildRequestAndValidate[T](c)
	if err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return nil, false
	}
	return req, true
}

// Login handles POST /api/auth/login requests.
//
// @Summary      Login user
// @Description  Authenticates a warehouse user and returns a JWT token pair
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Login credentials"
// @Success      200 {object} dto.LoginResponse "Successful login"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid credentials"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	builder := NewResponseBuilder(c)
	locale := i18n.GetLocale(c)

	req, ok := bindAuthRequest[dto.LoginRequest](c, builder)
	if !ok {
		return
	}

	tokenPair, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			middleware.AuditLogError(auditLogger(c), c, "login_failed", "Failed login attempt", err, map[string]interface{}{
				"email": req.Email,
			})
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInvalidCredentials, locale)
			builder.Error(http.StatusUnauthorized, dto.ErrCodeUnauthorized, errors.New(message))
			return
		}
		middleware.AuditLogError(auditLogger(c), c, "login_error", "Login internal error", err, map[string]interface{}{
			"email": req.Email,
		})
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	// Make the identity available to the audit middleware downstream.
	c.Set("user_id", user.ID)
	c.Set("user_email", user.Email)

	middleware.AuditLog(auditLogger(c), c, "login", "User logged in successfully", map[string]interface{}{
		"email": user.Email,
	})

	builder.SuccessOK(loginResponse(tokenPair, user))
}

// Register handles POST /api/auth/register requests.
//
// @Summary      Register new user
// @Description  Creates a new warehouse user account and returns a JWT token pair
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "Registration information"
// @Success      201 {object} dto.LoginResponse "Successful registration"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      409 {object} dto.ErrorResponse "Conflict - user already exists"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	builder := NewResponseBuilder(c)
	locale := i18n.GetLocale(c)

	req, ok := bindAuthRequest[dto.RegisterRequest](c, builder)
	if !ok {
		return
	}

	tokenPair, user, err := h.authService.Register(c.Request.Context(), req.Email, req.Username, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			middleware.AuditLogError(auditLogger(c), c, "register_failed", "Registration for existing user", err, map[string]interface{}{
				"email": req.Email,
			})
			message := i18n.GetTranslator().Translate(i18n.ErrKeyConflict, locale)
			builder.Error(http.StatusConflict, dto.ErrCodeConflict, errors.New(message))
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	c.Set("user_id", user.ID)
	c.Set("user_email", user.Email)

	middleware.AuditLog(auditLogger(c), c, "register", "New user registered", map[string]interface{}{
		"email": user.Email,
		"name":  user.Name,
	})

	builder.SuccessCreated(loginResponse(tokenPair, user))
}

// RefreshToken handles POST /api/auth/refresh requests. The refresh token
// travels in the X-Refresh-Token header rather than the body so proxies and
// access logs never see it inside a JSON payload.
//
// @Summary      Refresh access token
// @Description  Generates a new access token using a refresh token from the X-Refresh-Token header
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        X-Refresh-Token header string true "Refresh token"
// @Success      200 {object} dto.LoginResponse "Successful token refresh"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing refresh token"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid refresh token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	builder := NewResponseBuilder(c)
	locale := i18n.GetLocale(c)

	refreshToken := c.GetHeader("X-Refresh-Token")
	if refreshToken == "" {
		builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, errors.New("X-Refresh-Token header is required"))
		return
	}

	tokenPair, err := h.authService.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInvalidToken, locale)
			builder.Error(http.StatusUnauthorized, dto.ErrCodeUnauthorized, errors.New(message))
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(dto.LoginResponse{
		Token:        tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
	})
}
