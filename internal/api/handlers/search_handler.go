package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kherrera/devfolio/internal/models"
	"github.com/kherrera/devfolio/internal/services"
	"github.com/kherrera/devfolio/internal/utils"
)

type SearchHandler struct {
	svc services.SearchService
}

func NewSearchHandler(svc services.SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

type searchResponse struct {
	Success bool                  `json:"success"`
	Query   string                `json:"query"`
	Count   int                   `json:"count"`
	Data    []models.SearchResult `json:"data"`
}

func (h *SearchHandler) Search(c *gin.Context) {
	q := c.Query("q")

	results, err := h.svc.Search(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}
	if results == nil {
		results = []models.SearchResult{}
	}

	c.JSON(http.StatusOK, searchResponse{
		Success: true,
		Query:   q,
		Count:   len(results),
		Data:    results,
	})
}

type advancedSearchResponse struct {
	Success  bool                  `json:"success"`
	Query    string                `json:"query"`
	Type     string                `json:"type"`
	Category string                `json:"category"`
	Count    int                   `json:"count"`
	Data     []models.SearchResult `json:"data"`
}

func (h *SearchHandler) AdvancedSearch(c *gin.Context) {
	q := c.Query("q")
	typ := c.Query("type")
	category := c.Query("category")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(c, utils.E(utils.CodeInvalidArgument, "SearchHandler.AdvancedSearch", "limit must be a positive integer", err))
			return
		}
		limit = n
	}

	results, err := h.svc.AdvancedSearch(c.Request.Context(), services.AdvancedParams{
		Query:    q,
		Type:     typ,
		Category: category,
		Limit:    limit,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	if results == nil {
		results = []models.SearchResult{}
	}

	c.JSON(http.StatusOK, advancedSearchResponse{
		Success:  true,
		Query:    q,
		Type:     typ,
		Category: category,
		Count:    len(results),
		Data:     results,
	})
}
