package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	serviceRepo "versatil/database/repository/service"
	workerRepo "versatil/database/repository/worker"
	"versatil/utils"
)

// CatalogHandler serves the read-only catalogue the wizard picks from.
type CatalogHandler struct {
	ServiceRepo serviceRepo.ServiceRepository
	WorkerRepo  workerRepo.WorkerRepository
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(services serviceRepo.ServiceRepository, workers workerRepo.WorkerRepository) *CatalogHandler {
	return &CatalogHandler{ServiceRepo: services, WorkerRepo: workers}
}

// ListServices handles GET /api/catalog/services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.ServiceRepo.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetService handles GET /api/catalog/services/:id.
func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.ServiceRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "service not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load service", err.Error())
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ListStylists handles GET /api/catalog/stylists. Only active stylists are
// offered for booking.
func (h *CatalogHandler) ListStylists(c *gin.Context) {
	stylists, err := h.WorkerRepo.ListActive(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load stylists", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"stylists": stylists})
}
