package equipment

import (
	"errors"
	"fmt"
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

// ListEquipment godoc
// @Summary      List all equipment across facilities
// @Tags         equipment
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Equipment
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/equipment [get]
func (h *Handler) ListEquipment(c *gin.Context) {
	items, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch equipment"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetEquipment godoc
// @Summary      Get equipment by id
// @Tags         equipment
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Equipment ID"
// @Success      200  {object}  Equipment
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/equipment/{id} [get]
func (h *Handler) GetEquipment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid equipment ID"})
		return
	}

	e, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Equipment not found"})
		return
	}

	c.JSON(http.StatusOK, e)
}

// ListEquipmentByFacility godoc
// @Summary      List equipment of a facility
// @Tags         equipment
// @Security     BearerAuth
// @Produce      json
// @Param        facilityId path int true "Facility ID"
// @Success      200  {array}   Equipment
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/equipment/facility/{facilityId} [get]
func (h *Handler) ListEquipmentByFacility(c *gin.Context) {
	facilityID, err := strconv.ParseInt(c.Param("facilityId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid facility ID"})
		return
	}

	items, err := h.service.GetByFacility(c.Request.Context(), facilityID)
	if err != nil {
		if errors.Is(err, facility.ErrFacilityNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Facility not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch equipment"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// ListPurchasableEquipment godoc
// @Summary      List equipment of a facility available for purchase
// @Tags         equipment
// @Security     BearerAuth
// @Produce      json
// @Param        facilityId path int true "Facility ID"
// @Success      200  {array}   Equipment
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/equipment/facility/{facilityId}/purchase [get]
func (h *Handler) ListPurchasableEquipment(c *gin.Context) {
	facilityID, err := strconv.ParseInt(c.Param("facilityId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid facility ID"})
		return
	}

	items, err := h.service.GetPurchasableByFacility(c.Request.Context(), facilityID)
	if err != nil {
		if errors.Is(err, facility.ErrFacilityNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Facility not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch equipment"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// ListRentableEquipment godoc
// @Summary      List equipment of a facility available for rental
// @Tags         equipment
// @Security     BearerAuth
// @Produce      json
// @Param        facilityId path int true "Facility ID"
// @Success      200  {array}   Equipment
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/equipment/facility/{facilityId}/rental [get]
func (h *Handler) ListRentableEquipment(c *gin.Context) {
	facilityID, err := strconv.ParseInt(c.Param("facilityId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid facility ID"})
		return
	}

	items, err := h.service.GetRentableByFacility(c.Request.Context(), facilityID)
	if err != nil {
		if errors.Is(err, facility.ErrFacilityNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Facility not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch equipment"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// ListEquipmentByType godoc
// @Summary      List equipment of a facility filtered by type
// @Tags         equipment
// @Security     BearerAuth
// @Produce      json
// @Param        facilityId path int true "Facility ID"
// @Param        type path string true "Equipment type" Enums(RACKET, BALL, APPAREL, ACCESSORY, FOOD, DRINK, OTHER)
// @Success      200  {array}   Equipment
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/equipment/facility/{facilityId}/type/{type} [get]
func (h *Handler) ListEquipmentByType(c *gin.Context) {
	facilityID, err := strconv.ParseInt(c.Param("facilityId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid facility ID"})
		return
	}

	equipmentType := EquipmentType(c.Param("type"))
	if !ValidType(equipmentType) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: fmt.Sprintf("Invalid equipment type: %s", equipmentType)})
		return
	}

	items, err := h.service.GetByFacilityAndType(c.Request.Context(), facilityID, equipmentType)
	if err != nil {
		if errors.Is(err, facility.ErrFacilityNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Facility not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch equipment"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// CreateEquipment godoc
// @Summary      Add an equipment item to a facility
// @Tags         equipment
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        facilityId path int true "Facility ID"
// @Param        request body CreateEquipmentRequest true "Equipment payload"
// @Success      201  {object}  Equipment
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/equipment/facility/{facilityId} [post]
func (h *Handler) CreateEquipment(c *gin.Context) {
	facilityID, err := strconv.ParseInt(c.Param("facilityId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid facility ID"})
		return
	}

	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	e, err := h.service.Create(c.Request.Context(), facilityID, req)
	if err != nil {
		if errors.Is(err, facility.ErrFacilityNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Facility not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create equipment"})
		return
	}

	c.JSON(http.StatusCreated, e)
}

// UpdateEquipment godoc
// @Summary      Update an equipment item's catalog fields
// @Tags         equipment
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Equipment ID"
// @Param        request body UpdateEquipmentRequest true "Equipment payload"
// @Success      200  {object}  Equipment
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/equipment/{id} [put]
func (h *Handler) UpdateEquipment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid equipment ID"})
		return
	}

	var req UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	e, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Equipment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update equipment"})
		return
	}

	c.JSON(http.StatusOK, e)
}

// UpdateEquipmentStock godoc
// @Summary      Adjust an equipment item's stock by a signed quantity
// @Tags         equipment
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Equipment ID"
// @Param        quantityChange query int true "Signed stock delta"
// @Success      200  {object}  Equipment
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/equipment/{id}/stock [put]
func (h *Handler) UpdateEquipmentStock(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid equipment ID"})
		return
	}

	delta, err := strconv.Atoi(c.Query("quantityChange"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "quantityChange query parameter is required"})
		return
	}

	e, err := h.service.AdjustStock(c.Request.Context(), id, delta)
	if err != nil {
		switch {
		case errors.Is(err, ErrEquipmentNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Equipment not found"})
		case errors.Is(err, ErrNegativeStock):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update stock"})
		}
		return
	}

	c.JSON(http.StatusOK, e)
}

// DeleteEquipment godoc
// @Summary      Delete an equipment item and its transactions
// @Tags         equipment
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Equipment ID"
// @Success      200  {object}  api.MessageResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/equipment/{id} [delete]
func (h *Handler) DeleteEquipment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid equipment ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Equipment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete equipment"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Equipment deleted successfully"})
}
