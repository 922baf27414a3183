package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"github.com/kherrera/devfolio/internal/markdown"
	"github.com/kherrera/devfolio/internal/models"
	"github.com/kherrera/devfolio/internal/services"
	"github.com/kherrera/devfolio/internal/utils"
)

type ProjectHandler struct {
	svc services.ProjectService
}

func NewProjectHandler(svc services.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

func (h *ProjectHandler) List(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type projectResponse struct {
	models.Project
	DescriptionHTML string `json:"description_html,omitempty"`
}

// Get returns the project; with ?render=html the markdown description is
// additionally rendered into description_html.
func (h *ProjectHandler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	resp := projectResponse{Project: *p}
	if c.Query("render") == "html" {
		html, err := markdown.ToHTML(p.Description)
		if err != nil {
			writeError(c, utils.E(utils.CodeInternal, "ProjectHandler.Get", "failed to render description", err))
			return
		}
		resp.DescriptionHTML = html
	}
	c.JSON(http.StatusOK, resp)
}

type ProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	RepoURL     string   `json:"repo_url"`
	DemoURL     string   `json:"demo_url"`
	Tags        []string `json:"tags"`

	// Optional: associates existing skills. On update a non-null list
	// replaces the associations wholesale.
	SkillIDs []string `json:"skill_ids"`
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProjectHandler.Create", "invalid request body", err))
		return
	}

	p := &models.Project{
		Title:       req.Title,
		Description: req.Description,
		RepoURL:     req.RepoURL,
		DemoURL:     req.DemoURL,
		Tags:        pq.StringArray(req.Tags),
	}
	if err := h.svc.Create(c.Request.Context(), p, req.SkillIDs); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProjectHandler.Update", "invalid request body", err))
		return
	}

	p := &models.Project{
		ID:          c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		RepoURL:     req.RepoURL,
		DemoURL:     req.DemoURL,
		Tags:        pq.StringArray(req.Tags),
	}
	if err := h.svc.Update(c.Request.Context(), p, req.SkillIDs); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
