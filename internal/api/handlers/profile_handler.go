package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kherrera/devfolio/internal/models"
	"github.com/kherrera/devfolio/internal/services"
	"github.com/kherrera/devfolio/internal/utils"
)

type ProfileHandler struct {
	svc services.ProfileService
}

func NewProfileHandler(svc services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type UpdateProfileRequest struct {
	FullName     *string `json:"full_name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Headline     *string `json:"headline,omitempty"`
	Education    *string `json:"education,omitempty"`
	GithubURL    *string `json:"github_url,omitempty"`
	LinkedinURL  *string `json:"linkedin_url,omitempty"`
	PortfolioURL *string `json:"portfolio_url,omitempty"`
}

// Update applies a partial update to the singleton profile, creating it when
// none exists yet.
func (h *ProfileHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProfileHandler.Update", "invalid request body", err))
		return
	}

	existing, err := h.svc.Get(c.Request.Context())
	if err != nil {
		if utils.IsCode(err, utils.CodeNotFound) {
			existing = &models.Profile{}
		} else {
			writeError(c, err)
			return
		}
	}

	if req.FullName != nil {
		existing.FullName = *req.FullName
	}
	if req.Email != nil {
		existing.Email = *req.Email
	}
	if req.Headline != nil {
		existing.Headline = *req.Headline
	}
	if req.Education != nil {
		existing.Education = *req.Education
	}
	if req.GithubURL != nil {
		existing.GithubURL = *req.GithubURL
	}
	if req.LinkedinURL != nil {
		existing.LinkedinURL = *req.LinkedinURL
	}
	if req.PortfolioURL != nil {
		existing.PortfolioURL = *req.PortfolioURL
	}

	if err := h.svc.Upsert(c.Request.Context(), existing); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, existing)
}
