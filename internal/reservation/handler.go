package reservation

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"padelhub/internal/api"
	"padelhub/internal/auth"
	"padelhub/internal/metrics"
	"padelhub/internal/terrain"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListReservations godoc
// @Summary      List all reservations
// @Tags         reservations
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Reservation
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/reservations [get]
func (h *Handler) ListReservations(c *gin.Context) {
	reservations, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch reservations"})
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// GetReservation godoc
// @Summary      Get reservation by id
// @Tags         reservations
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Reservation ID"
// @Success      200  {object}  Reservation
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/reservations/{id} [get]
func (h *Handler) GetReservation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid reservation ID"})
		return
	}

	res, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Reservation not found"})
		return
	}

	userID, _ := auth.GetUserID(c)
	role, _ := auth.GetUserRole(c)
	if res.UserID != userID && !auth.IsAdmin(role) {
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Access denied"})
		return
	}

	c.JSON(http.StatusOK, res)
}

// ListMyReservations godoc
// @Summary      List the authenticated user's reservations
// @Tags         reservations
// @Security     BearerAuth
// @Produce      json
// @Param        status query string false "Filter by status" Enums(PENDING, CONFIRMED, CANCELLED, COMPLETED)
// @Success      200  {array}   Reservation
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/reservations/my-reservations [get]
func (h *Handler) ListMyReservations(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var reservations []Reservation
	var err error
	if raw := c.Query("status"); raw != "" {
		status := Status(raw)
		if !ValidStatus(status) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: fmt.Sprintf("Invalid status: %s", status)})
			return
		}
		reservations, err = h.service.GetByUserAndStatus(c.Request.Context(), userID, status)
	} else {
		reservations, err = h.service.GetByUser(c.Request.Context(), userID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch reservations"})
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// ListMyFacilityReservations godoc
// @Summary      List reservations on facilities owned by the authenticated admin
// @Tags         reservations
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Reservation
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/reservations/my-facility-reservations [get]
func (h *Handler) ListMyFacilityReservations(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	reservations, err := h.service.GetByFacilityOwner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch reservations"})
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// ListReservationsByTerrain godoc
// @Summary      List reservations of a terrain
// @Tags         reservations
// @Security     BearerAuth
// @Produce      json
// @Param        terrainId path int true "Terrain ID"
// @Param        status query string false "Filter by status" Enums(PENDING, CONFIRMED, CANCELLED, COMPLETED)
// @Success      200  {array}   Reservation
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/reservations/terrain/{terrainId} [get]
func (h *Handler) ListReservationsByTerrain(c *gin.Context) {
	terrainID, err := strconv.ParseInt(c.Param("terrainId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid terrain ID"})
		return
	}

	var reservations []Reservation
	if raw := c.Query("status"); raw != "" {
		status := Status(raw)
		if !ValidStatus(status) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: fmt.Sprintf("Invalid status: %s", status)})
			return
		}
		reservations, err = h.service.GetByTerrainAndStatus(c.Request.Context(), terrainID, status)
	} else {
		reservations, err = h.service.GetByTerrain(c.Request.Context(), terrainID)
	}
	if err != nil {
		if errors.Is(err, terrain.ErrTerrainNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Terrain not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch reservations"})
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// ListReservationsByFacility godoc
// @Summary      List reservations across all terrains of a facility
// @Tags         reservations
// @Security     BearerAuth
// @Produce      json
// @Param        facilityId path int true "Facility ID"
// @Success      200  {array}   Reservation
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/reservations/facility/{facilityId} [get]
func (h *Handler) ListReservationsByFacility(c *gin.Context) {
	facilityID, err := strconv.ParseInt(c.Param("facilityId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid facility ID"})
		return
	}

	reservations, err := h.service.GetByFacility(c.Request.Context(), facilityID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch reservations"})
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// CheckAvailability godoc
// @Summary      Check whether a time slot is free on a terrain
// @Tags         reservations
// @Security     BearerAuth
// @Produce      json
// @Param        terrainId  query int    true "Terrain ID"
// @Param        startTime  query string true "Start time (RFC 3339)"
// @Param        endTime    query string true "End time (RFC 3339)"
// @Success      200  {object}  api.MessageResponse
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/reservations/check-availability [get]
func (h *Handler) CheckAvailability(c *gin.Context) {
	terrainID, err := strconv.ParseInt(c.Query("terrainId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid terrain ID"})
		return
	}

	start, err := time.Parse(time.RFC3339, c.Query("startTime"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid start time"})
		return
	}

	end, err := time.Parse(time.RFC3339, c.Query("endTime"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid end time"})
		return
	}

	available, err := h.service.IsTimeSlotAvailable(c.Request.Context(), terrainID, start, end)
	if err != nil {
		if errors.Is(err, terrain.ErrTerrainNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Terrain not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to check availability"})
		return
	}

	if available {
		c.JSON(http.StatusOK, api.MessageResponse{Message: "Time slot is available"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Time slot is not available"})
}

// CreateReservation godoc
// @Summary      Book a terrain for a time slot
// @Tags         reservations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        terrainId path int true "Terrain ID"
// @Param        request body CreateReservationRequest true "Reservation payload"
// @Success      201  {object}  Reservation
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Failure      409  {object}  api.ErrorResponse
// @Router       /api/reservations/terrain/{terrainId} [post]
func (h *Handler) CreateReservation(c *gin.Context) {
	terrainID, err := strconv.ParseInt(c.Param("terrainId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid terrain ID"})
		return
	}

	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.service.Create(c.Request.Context(), userID, terrainID, req)
	if err != nil {
		switch {
		case errors.Is(err, terrain.ErrTerrainNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Terrain not found"})
		case errors.Is(err, ErrInvalidTimeRange):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrSlotUnavailable):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create reservation"})
		}
		return
	}

	metrics.RecordReservation(string(res.Status))

	c.JSON(http.StatusCreated, res)
}

// UpdateReservation godoc
// @Summary      Update a reservation's times, price and notes
// @Tags         reservations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Reservation ID"
// @Param        request body UpdateReservationRequest true "Reservation payload"
// @Success      200  {object}  Reservation
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/reservations/{id} [put]
func (h *Handler) UpdateReservation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid reservation ID"})
		return
	}

	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update reservation"})
		return
	}

	c.JSON(http.StatusOK, res)
}

// UpdateReservationStatus godoc
// @Summary      Change a reservation's status
// @Description  The reservation owner may only cancel; admins may set any status.
// @Tags         reservations
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Reservation ID"
// @Param        status query string true "New status" Enums(PENDING, CONFIRMED, CANCELLED, COMPLETED)
// @Success      200  {object}  Reservation
// @Failure      400  {object}  api.ErrorResponse
// @Failure      403  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/reservations/{id}/status [put]
func (h *Handler) UpdateReservationStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid reservation ID"})
		return
	}

	status := Status(c.Query("status"))
	if !ValidStatus(status) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: fmt.Sprintf("Invalid status: %s", status)})
		return
	}

	existing, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Reservation not found"})
		return
	}

	userID, _ := auth.GetUserID(c)
	role, _ := auth.GetUserRole(c)
	if !auth.IsAdmin(role) {
		if existing.UserID != userID || status != StatusCancelled {
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Access denied"})
			return
		}
	}

	res, err := h.service.ChangeStatus(c.Request.Context(), id, status)
	if err != nil {
		if errors.Is(err, ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update reservation status"})
		return
	}

	if status == StatusCancelled {
		metrics.RecordReservationCancellation()
	}

	c.JSON(http.StatusOK, res)
}

// DeleteReservation godoc
// @Summary      Delete a reservation
// @Tags         reservations
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Reservation ID"
// @Success      200  {object}  api.MessageResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/reservations/{id} [delete]
func (h *Handler) DeleteReservation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid reservation ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete reservation"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Reservation deleted successfully"})
}
