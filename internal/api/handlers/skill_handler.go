package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kherrera/devfolio/internal/models"
	"github.com/kherrera/devfolio/internal/services"
	"github.com/kherrera/devfolio/internal/utils"
)

type SkillHandler struct {
	svc services.SkillService
}

func NewSkillHandler(svc services.SkillService) *SkillHandler {
	return &SkillHandler{svc: svc}
}

func (h *SkillHandler) List(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *SkillHandler) Get(c *gin.Context) {
	sk, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sk)
}

type SkillRequest struct {
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
	Category    string `json:"category"`
}

func (h *SkillHandler) Create(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SkillHandler.Create", "invalid request body", err))
		return
	}

	sk := &models.Skill{
		Name:        req.Name,
		Proficiency: req.Proficiency,
		Category:    req.Category,
	}
	if err := h.svc.Create(c.Request.Context(), sk); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sk)
}

func (h *SkillHandler) Update(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SkillHandler.Update", "invalid request body", err))
		return
	}

	sk := &models.Skill{
		ID:          c.Param("id"),
		Name:        req.Name,
		Proficiency: req.Proficiency,
		Category:    req.Category,
	}
	if err := h.svc.Update(c.Request.Context(), sk); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sk)
}

func (h *SkillHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
