package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/kherrera/devfolio/internal/models"
	"github.com/kherrera/devfolio/internal/services"
	"github.com/kherrera/devfolio/internal/utils"
)

type WorkHandler struct {
	svc services.WorkService
}

func NewWorkHandler(svc services.WorkService) *WorkHandler {
	return &WorkHandler{svc: svc}
}

func (h *WorkHandler) List(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *WorkHandler) Get(c *gin.Context) {
	w, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

type WorkRequest struct {
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Current     bool       `json:"current"`

	Highlights json.RawMessage `json:"highlights,omitempty"`
}

func (r *WorkRequest) toModel(id string) *models.WorkExperience {
	w := &models.WorkExperience{
		ID:          id,
		Company:     r.Company,
		Position:    r.Position,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Current:     r.Current,
	}
	if len(r.Highlights) > 0 {
		w.Highlights = datatypes.JSON(r.Highlights)
	}
	return w
}

func (h *WorkHandler) Create(c *gin.Context) {
	var req WorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "WorkHandler.Create", "invalid request body", err))
		return
	}

	w := req.toModel("")
	if err := h.svc.Create(c.Request.Context(), w); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, w)
}

func (h *WorkHandler) Update(c *gin.Context) {
	var req WorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "WorkHandler.Update", "invalid request body", err))
		return
	}

	w := req.toModel(c.Param("id"))
	if err := h.svc.Update(c.Request.Context(), w); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *WorkHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
