package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/propertydesk/propertydesk/internal/core/property"
)

type FilterHandler struct {
	store *property.Store
}

func NewFilterHandler(store *property.Store) *FilterHandler {
	return &FilterHandler{store: store}
}

type SetFiltersRequest struct {
	Search *string `json:"search"`
	Type   *string `json:"type"`
}

func (h *FilterHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Filters())
}

// Set merges the supplied fields into the current filters.
func (h *FilterHandler) Set(c *gin.Context) {
	var req SetFiltersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := property.FilterPatch{Search: req.Search}
	if req.Type != nil {
		t, err := property.ParseTypeFilter(*req.Type)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		patch.Type = &t
	}

	c.JSON(http.StatusOK, h.store.SetFilters(patch))
}

func (h *FilterHandler) Clear(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ClearFilters())
}
