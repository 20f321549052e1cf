package facility

import (
	"errors"
	"net/http"
	"strconv"

	"padelhub/internal/api"
	"padelhub/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListFacilities godoc
// @Summary      List all facilities
// @Tags         facilities
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Facility
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/facilities [get]
func (h *Handler) ListFacilities(c *gin.Context) {
	facilities, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch facilities"})
		return
	}

	c.JSON(http.StatusOK, facilities)
}

// GetFacility godoc
// @Summary      Get facility by id
// @Tags         facilities
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Facility ID"
// @Success      200  {object}  Facility
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/facilities/{id} [get]
func (h *Handler) GetFacility(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid facility ID"})
		return
	}

	f, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Facility not found"})
		return
	}

	c.JSON(http.StatusOK, f)
}

// ListFacilitiesByCity godoc
// @Summary      List facilities in a city
// @Tags         facilities
// @Security     BearerAuth
// @Produce      json
// @Param        city path string true "City"
// @Success      200  {array}   Facility
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/facilities/city/{city} [get]
func (h *Handler) ListFacilitiesByCity(c *gin.Context) {
	facilities, err := h.service.GetByCity(c.Request.Context(), c.Param("city"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch facilities"})
		return
	}

	c.JSON(http.StatusOK, facilities)
}

// ListMyFacilities godoc
// @Summary      List facilities owned by the caller
// @Tags         facilities
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Facility
// @Failure      401  {object}  api.ErrorResponse
// @Router       /api/facilities/my-facilities [get]
func (h *Handler) ListMyFacilities(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	facilities, err := h.service.GetByOwner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch facilities"})
		return
	}

	c.JSON(http.StatusOK, facilities)
}

// CreateFacility godoc
// @Summary      Create a facility
// @Description  The caller becomes the facility owner.
// @Tags         facilities
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body CreateFacilityRequest true "Facility payload"
// @Success      201  {object}  Facility
// @Failure      400  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/facilities [post]
func (h *Handler) CreateFacility(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req CreateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	f, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create facility"})
		return
	}

	c.JSON(http.StatusCreated, f)
}

// UpdateFacility godoc
// @Summary      Update a facility
// @Tags         facilities
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Facility ID"
// @Param        request body UpdateFacilityRequest true "Facility payload"
// @Success      200  {object}  Facility
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/facilities/{id} [put]
func (h *Handler) UpdateFacility(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid facility ID"})
		return
	}

	var req UpdateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	f, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrFacilityNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Facility not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update facility"})
		return
	}

	c.JSON(http.StatusOK, f)
}

// DeleteFacility godoc
// @Summary      Delete a facility and its terrains, equipment and history
// @Tags         facilities
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Facility ID"
// @Success      200  {object}  api.MessageResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/facilities/{id} [delete]
func (h *Handler) DeleteFacility(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid facility ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrFacilityNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Facility not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete facility"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Facility deleted successfully"})
}
