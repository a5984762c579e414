package api

import (
	"net/http"

	resdto "shalean-booking-api/internal/handler/dto/response"
	"shalean-booking-api/internal/handler/httperr"
	"shalean-booking-api/internal/infra"
	"shalean-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{catalogQueries: catalogQueries}
}

// @Summary List services
// @Tags catalog
// @Produce json
// @Success 200 {object} resdto.CatalogResponse
// @Router /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.catalogQueries.ListServices(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.CatalogResponse{Services: services})
}

// @Summary Get service
// @Description Fetch one active service with its extras
// @Tags catalog
// @Produce json
// @Param slug path string true "Service slug"
// @Success 200 {object} resdto.ServiceDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /services/{slug} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	service, err := h.catalogQueries.GetServiceBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	extras, err := h.catalogQueries.ListServiceExtras(c.Request.Context(), service.ID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.ServiceDetailResponse{
		Service: service,
		Extras:  extras,
	})
}

// @Summary List regions
// @Tags catalog
// @Produce json
// @Success 200 {object} resdto.RegionsResponse
// @Router /regions [get]
func (h *CatalogHandler) ListRegions(c *gin.Context) {
	regions, err := h.catalogQueries.ListRegions(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.RegionsResponse{Regions: regions})
}

// @Summary List suburbs for a region
// @Tags catalog
// @Produce json
// @Param id path string true "Region ID"
// @Success 200 {object} resdto.SuburbsResponse
// @Failure 400 {object} httperr.Response
// @Router /regions/{id}/suburbs [get]
func (h *CatalogHandler) ListSuburbs(c *gin.Context) {
	regionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid region ID", nil)
		return
	}

	suburbs, err := h.catalogQueries.ListSuburbs(c.Request.Context(), regionID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.SuburbsResponse{Suburbs: suburbs})
}

// @Summary List cleaners
// @Tags catalog
// @Produce json
// @Success 200 {object} resdto.CleanersResponse
// @Router /cleaners [get]
func (h *CatalogHandler) ListCleaners(c *gin.Context) {
	cleaners, err := h.catalogQueries.ListCleaners(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.CleanersResponse{Cleaners: cleaners})
}
