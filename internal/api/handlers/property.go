package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/propertydesk/propertydesk/internal/core/form"
	"github.com/propertydesk/propertydesk/internal/core/property"
	"github.com/propertydesk/propertydesk/internal/core/validation"
)

type PropertyHandler struct {
	store *property.Store
	forms *form.Service
}

func NewPropertyHandler(store *property.Store, forms *form.Service) *PropertyHandler {
	return &PropertyHandler{store: store, forms: forms}
}

type ListPropertiesResponse struct {
	Properties []property.Property `json:"properties"`
	Total      int                 `json:"total"`
}

type ViewResponse struct {
	Properties []property.Property `json:"properties"`
	Filters    property.Filters    `json:"filters"`
	Total      int                 `json:"total"`
	Visible    int                 `json:"visible"`
}

func (h *PropertyHandler) List(c *gin.Context) {
	properties := h.store.Properties()
	c.JSON(http.StatusOK, ListPropertiesResponse{
		Properties: properties,
		Total:      len(properties),
	})
}

// View returns the records matching the current filters.
func (h *PropertyHandler) View(c *gin.Context) {
	visible := h.store.FilteredView()
	c.JSON(http.StatusOK, ViewResponse{
		Properties: visible,
		Filters:    h.store.Filters(),
		Total:      h.store.Count(),
		Visible:    len(visible),
	})
}

func (h *PropertyHandler) Get(c *gin.Context) {
	p, err := h.store.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, property.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *PropertyHandler) Create(c *gin.Context) {
	var req validation.FormData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.forms.Create(c.Request.Context(), req)
	if err != nil {
		if validation.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": validation.GetValidationErrors(err).Fields()})
			return
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

// Update applies an edit after the form delay. A client that disconnects
// before the delay elapses discards its edit.
func (h *PropertyHandler) Update(c *gin.Context) {
	existing, err := h.store.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, property.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		_ = c.Error(err)
		return
	}

	var req validation.FormData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := h.forms.Edit(existing)
	defer session.Close()

	p, err := session.Submit(c.Request.Context(), req)
	if err != nil {
		switch {
		case validation.IsValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": validation.GetValidationErrors(err).Fields()})
		case errors.Is(err, property.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, form.ErrSessionClosed):
			c.JSON(http.StatusRequestTimeout, gin.H{"error": "edit discarded"})
		default:
			_ = c.Error(err)
		}
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *PropertyHandler) Delete(c *gin.Context) {
	ok, err := h.store.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": property.ErrNotFound.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PropertyHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Status())
}
