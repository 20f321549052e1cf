package terrain

import (
	"errors"
	"net/http"
	"strconv"

	"padelhub/internal/api"
	"padelhub/internal/facility"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListTerrains godoc
// @Summary      List active terrains
// @Tags         terrains
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Terrain
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/terrains [get]
func (h *Handler) ListTerrains(c *gin.Context) {
	terrains, err := h.service.GetActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch terrains"})
		return
	}

	c.JSON(http.StatusOK, terrains)
}

// ListAllTerrains godoc
// @Summary      List all terrains including inactive ones
// @Tags         terrains
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Terrain
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/terrains/all [get]
func (h *Handler) ListAllTerrains(c *gin.Context) {
	terrains, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch terrains"})
		return
	}

	c.JSON(http.StatusOK, terrains)
}

// GetTerrain godoc
// @Summary      Get terrain by id
// @Tags         terrains
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Terrain ID"
// @Success      200  {object}  Terrain
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/terrains/{id} [get]
func (h *Handler) GetTerrain(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid terrain ID"})
		return
	}

	t, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Terrain not found"})
		return
	}

	c.JSON(http.StatusOK, t)
}

// ListTerrainsByFacility godoc
// @Summary      List active terrains of a facility
// @Tags         terrains
// @Security     BearerAuth
// @Produce      json
// @Param        facilityId path int true "Facility ID"
// @Success      200  {array}   Terrain
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/terrains/facility/{facilityId} [get]
func (h *Handler) ListTerrainsByFacility(c *gin.Context) {
	facilityID, err := strconv.ParseInt(c.Param("facilityId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid facility ID"})
		return
	}

	terrains, err := h.service.GetActiveByFacility(c.Request.Context(), facilityID)
	if err != nil {
		if errors.Is(err, facility.ErrFacilityNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Facility not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch terrains"})
		return
	}

	c.JSON(http.StatusOK, terrains)
}

// ListAllTerrainsByFacility godoc
// @Summary      List all terrains of a facility including inactive ones
// @Tags         terrains
// @Security     BearerAuth
// @Produce      json
// @Param        facilityId path int true "Facility ID"
// @Success      200  {array}   Terrain
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/terrains/facility/{facilityId}/all [get]
func (h *Handler) ListAllTerrainsByFacility(c *gin.Context) {
	facilityID, err := strconv.ParseInt(c.Param("facilityId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid facility ID"})
		return
	}

	terrains, err := h.service.GetByFacility(c.Request.Context(), facilityID)
	if err != nil {
		if errors.Is(err, facility.ErrFacilityNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Facility not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch terrains"})
		return
	}

	c.JSON(http.StatusOK, terrains)
}

// CreateTerrain godoc
// @Summary      Create a terrain in a facility
// @Tags         terrains
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        facilityId path int true "Facility ID"
// @Param        request body CreateTerrainRequest true "Terrain payload"
// @Success      201  {object}  Terrain
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/terrains/facility/{facilityId} [post]
func (h *Handler) CreateTerrain(c *gin.Context) {
	facilityID, err := strconv.ParseInt(c.Param("facilityId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid facility ID"})
		return
	}

	var req CreateTerrainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	t, err := h.service.Create(c.Request.Context(), facilityID, req)
	if err != nil {
		if errors.Is(err, facility.ErrFacilityNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Facility not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create terrain"})
		return
	}

	c.JSON(http.StatusCreated, t)
}

// UpdateTerrain godoc
// @Summary      Update a terrain
// @Tags         terrains
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Terrain ID"
// @Param        request body UpdateTerrainRequest true "Terrain payload"
// @Success      200  {object}  Terrain
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/terrains/{id} [put]
func (h *Handler) UpdateTerrain(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid terrain ID"})
		return
	}

	var req UpdateTerrainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	t, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrTerrainNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Terrain not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update terrain"})
		return
	}

	c.JSON(http.StatusOK, t)
}

// UpdateTerrainStatus godoc
// @Summary      Activate or deactivate a terrain
// @Tags         terrains
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Terrain ID"
// @Param        active query bool true "Active flag"
// @Success      200  {object}  Terrain
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/terrains/{id}/status [put]
func (h *Handler) UpdateTerrainStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid terrain ID"})
		return
	}

	active, err := strconv.ParseBool(c.Query("active"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "active query parameter is required"})
		return
	}

	t, err := h.service.SetStatus(c.Request.Context(), id, active)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Terrain not found"})
		return
	}

	c.JSON(http.StatusOK, t)
}

// DeleteTerrain godoc
// @Summary      Delete a terrain and its reservations
// @Tags         terrains
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Terrain ID"
// @Success      200  {object}  api.MessageResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/terrains/{id} [delete]
func (h *Handler) DeleteTerrain(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid terrain ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrTerrainNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Terrain not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete terrain"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Terrain deleted successfully"})
}
