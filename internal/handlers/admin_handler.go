package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrnexus_backend/internal/dto"
	"hrnexus_backend/internal/services"
	"hrnexus_backend/internal/validator"
)

// AdminHandler serves the HR dashboard: listing, triage, resume access
// and interview invitations.
type AdminHandler struct {
	*BaseHandler
	candidates services.CandidateService
	cvs        services.CVService
	invites    services.InviteService
}

func NewAdminHandler(
	v *validator.Validator,
	candidates services.CandidateService,
	cvs services.CVService,
	invites services.InviteService,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler: NewBaseHandler(v),
		candidates:  candidates,
		cvs:         cvs,
		invites:     invites,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	{
		admin.GET("/candidates", h.ListCandidates)
		admin.PATCH("/candidates/:id/status", h.UpdateStatus)
		admin.GET("/candidates/:id/cv", h.GetCandidateCV)
		admin.POST("/candidates/:id/invite/draft", h.DraftInvite)
		admin.POST("/candidates/:id/invite/send", h.SendInvite)
	}
}

// ListCandidates godoc
// @Summary List candidates with optional filters
// @Tags admin
// @Produce json
// @Param search query string false "Name or email substring, case-insensitive"
// @Param status query string false "Pipeline status" Enums(PENDING, VERIFIED, REJECTED)
// @Success 200 {object} dto.CandidateListResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /admin/candidates [get]
func (h *AdminHandler) ListCandidates(c *gin.Context) {
	search := c.Query("search")
	status := c.Query("status")

	result, err := h.candidates.List(c.Request.Context(), search, status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateStatus godoc
// @Summary Move a candidate to VERIFIED or REJECTED
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Candidate id"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} models.CandidateProfile
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /admin/candidates/{id}/status [patch]
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.candidates.UpdateStatus(c.Request.Context(), adminID, c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if profile == nil {
		// Unknown candidate id: nothing was changed.
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "No changes applied"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetCandidateCV godoc
// @Summary Get a candidate's current resume
// @Tags admin
// @Produce json
// @Param id path string true "Candidate id"
// @Success 200 {object} models.CVMetadata
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /admin/candidates/{id}/cv [get]
func (h *AdminHandler) GetCandidateCV(c *gin.Context) {
	cv, err := h.cvs.GetForCandidate(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, cv)
}

// DraftInvite godoc
// @Summary Generate an interview invitation draft
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Candidate id"
// @Param request body dto.DraftInviteRequest true "Role title, defaults to Fullstack Developer"
// @Success 200 {object} dto.DraftInviteResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /admin/candidates/{id}/invite/draft [post]
func (h *AdminHandler) DraftInvite(c *gin.Context) {
	var req dto.DraftInviteRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	draft, err := h.invites.Draft(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, draft)
}

// SendInvite godoc
// @Summary Send an interview invitation email
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Candidate id"
// @Param request body dto.SendInviteRequest true "Email subject and body"
// @Success 200 {object} models.CandidateProfile
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /admin/candidates/{id}/invite/send [post]
func (h *AdminHandler) SendInvite(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SendInviteRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.invites.Send(c.Request.Context(), adminID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
