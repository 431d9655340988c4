package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrnexus_backend/internal/dto"
	"hrnexus_backend/internal/services"
	"hrnexus_backend/internal/validator"
)

// CandidateHandler serves the candidate portal: own profile and resume.
type CandidateHandler struct {
	*BaseHandler
	candidates services.CandidateService
	cvs        services.CVService
}

func NewCandidateHandler(v *validator.Validator, candidates services.CandidateService, cvs services.CVService) *CandidateHandler {
	return &CandidateHandler{
		BaseHandler: NewBaseHandler(v),
		candidates:  candidates,
		cvs:         cvs,
	}
}

func (h *CandidateHandler) RegisterRoutes(rg *gin.RouterGroup) {
	candidate := rg.Group("/candidate")
	{
		candidate.GET("/profile", h.GetProfile)
		candidate.POST("/cv", h.UploadCV)
		candidate.GET("/cv", h.GetCV)
	}
}

// GetProfile godoc
// @Summary Get the signed-in candidate's profile
// @Tags candidate
// @Produce json
// @Success 200 {object} models.CandidateProfile
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /candidate/profile [get]
func (h *CandidateHandler) GetProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.candidates.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UploadCV godoc
// @Summary Upload a resume (PDF only)
// @Tags candidate
// @Accept json
// @Produce json
// @Param request body dto.UploadCVRequest true "Resume document as data URI"
// @Success 201 {object} models.CVMetadata
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /candidate/cv [post]
func (h *CandidateHandler) UploadCV(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UploadCVRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	cv, err := h.cvs.Upload(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cv)
}

// GetCV godoc
// @Summary Get the signed-in candidate's current resume
// @Tags candidate
// @Produce json
// @Success 200 {object} models.CVMetadata
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /candidate/cv [get]
func (h *CandidateHandler) GetCV(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	cv, err := h.cvs.GetForCandidate(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, cv)
}
