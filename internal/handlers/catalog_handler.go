package handlers

import (
	"net/http"

	"tasmeem_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public browsing endpoints: software, services
// and designer listings.
type CatalogHandler struct {
	*BaseHandler
	catalogService services.CatalogService
}

func NewCatalogHandler(base *BaseHandler, catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    base,
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/software", h.ListSoftware)
	api.GET("/services", h.ListServices)
	api.GET("/services/:id", h.GetService)
	api.GET("/designers", h.ListDesigners)
	api.GET("/designers/:id", h.GetDesigner)
}

func (h *CatalogHandler) ListSoftware(c *gin.Context) {
	software, err := h.catalogService.ListSoftware(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"software": software})
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.catalogService.ListServices(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	serviceID, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	service, err := h.catalogService.GetService(h.GetDB(c), serviceID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": service})
}

func (h *CatalogHandler) ListDesigners(c *gin.Context) {
	designers, err := h.catalogService.ListDesigners(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"designers": designers})
}

func (h *CatalogHandler) GetDesigner(c *gin.Context) {
	designerID, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	designer, err := h.catalogService.GetDesigner(h.GetDB(c), designerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"designer": designer})
}
