package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrnexus_backend/internal/dto"
	"hrnexus_backend/internal/services"
	"hrnexus_backend/internal/session"
	"hrnexus_backend/internal/validator"
)

// AuthHandler serves registration, login and logout.
type AuthHandler struct {
	*BaseHandler
	auth     services.AuthService
	sessions *session.Manager
}

func NewAuthHandler(v *validator.Validator, auth services.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(v),
		auth:        auth,
		sessions:    sessions,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/candidate/register", h.RegisterCandidate)
		auth.POST("/candidate/login", h.LoginCandidate)
		auth.POST("/admin/register", h.RegisterAdmin)
		auth.POST("/admin/login", h.LoginAdmin)
		auth.POST("/admin/demo", h.QuickLoginDemo)
		auth.POST("/logout", h.Logout)
		auth.GET("/session", h.Session)
	}
}

// RegisterCandidate godoc
// @Summary Register a candidate account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterCandidateRequest true "Registration data"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /auth/candidate/register [post]
func (h *AuthHandler) RegisterCandidate(c *gin.Context) {
	var req dto.RegisterCandidateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.auth.RegisterCandidate(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{User: user})
}

// LoginCandidate godoc
// @Summary Sign in as a candidate
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginCandidateRequest true "Login data"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /auth/candidate/login [post]
func (h *AuthHandler) LoginCandidate(c *gin.Context) {
	var req dto.LoginCandidateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.auth.LoginCandidate(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{User: user})
}

// RegisterAdmin godoc
// @Summary Register an HR admin account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterAdminRequest true "Registration data with master access code"
// @Success 201 {object} dto.AuthResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /auth/admin/register [post]
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	var req dto.RegisterAdminRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.auth.RegisterAdmin(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{User: user})
}

// LoginAdmin godoc
// @Summary Sign in as an HR admin
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginAdminRequest true "Login data"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /auth/admin/login [post]
func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	var req dto.LoginAdminRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.auth.LoginAdmin(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{User: user})
}

// QuickLoginDemo godoc
// @Summary Sign in as the built-in demo admin
// @Tags auth
// @Produce json
// @Success 200 {object} dto.AuthResponse
// @Router /auth/admin/demo [post]
func (h *AuthHandler) QuickLoginDemo(c *gin.Context) {
	user, err := h.auth.QuickLoginDemo(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{User: user})
}

// Logout godoc
// @Summary Sign out
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context()); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// Session godoc
// @Summary Return the signed-in user
// @Tags auth
// @Produce json
// @Success 200 {object} dto.AuthResponse
// @Router /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, dto.AuthResponse{User: h.sessions.Current()})
}
