package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"easyislanders/models"
	"easyislanders/services/catalog"
	"easyislanders/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler exposes catalog lookup and search over HTTP.
type CatalogHandler struct {
	Svc    catalog.CatalogService
	Logger *zap.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Logger: logger}
}

// GetItemHandler resolves one catalog item.
func (h *CatalogHandler) GetItemHandler(c *gin.Context) {
	item, err := h.Svc.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		if catalog.IsNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "not found", "no catalog item with id "+c.Param("id"))
			return
		}
		h.Logger.Error("catalog lookup failure", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "could not load catalog item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// SearchHandler filters the catalog. All supplied query params must hold.
func (h *CatalogHandler) SearchHandler(c *gin.Context) {
	q := models.SearchQuery{
		Domain:      c.Query("domain"),
		SubCategory: c.Query("subCategory"),
		Location:    c.Query("location"),
		Query:       c.Query("q"),
		SortBy:      c.Query("sortBy"),
	}

	if v := c.Query("minPrice"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "minPrice must be a number")
			return
		}
		q.MinPrice = &price
	}
	if v := c.Query("maxPrice"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "maxPrice must be a number")
			return
		}
		q.MaxPrice = &price
	}
	if v := c.Query("amenities"); v != "" {
		for _, a := range strings.Split(v, ",") {
			if a = strings.TrimSpace(a); a != "" {
				q.Amenities = append(q.Amenities, a)
			}
		}
	}

	items, err := h.Svc.Search(c.Request.Context(), q)
	if err != nil {
		h.Logger.Error("catalog search failure", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "could not search catalog")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}
