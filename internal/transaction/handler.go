package transaction

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"padelhub/internal/api"
	"padelhub/internal/auth"
	"padelhub/internal/equipment"
	"padelhub/internal/facility"
	"padelhub/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListTransactions godoc
// @Summary      List all equipment transactions
// @Tags         transactions
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Transaction
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/equipment-transactions [get]
func (h *Handler) ListTransactions(c *gin.Context) {
	transactions, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch transactions"})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// GetTransaction godoc
// @Summary      Get transaction by id
// @Tags         transactions
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Transaction ID"
// @Success      200  {object}  Transaction
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/equipment-transactions/{id} [get]
func (h *Handler) GetTransaction(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid transaction ID"})
		return
	}

	t, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Transaction not found"})
		return
	}

	userID, _ := auth.GetUserID(c)
	role, _ := auth.GetUserRole(c)
	if t.UserID != userID && !auth.IsAdmin(role) {
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Access denied"})
		return
	}

	c.JSON(http.StatusOK, t)
}

// ListMyTransactions godoc
// @Summary      List the authenticated user's transactions
// @Tags         transactions
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Transaction
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/equipment-transactions/my-transactions [get]
func (h *Handler) ListMyTransactions(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	transactions, err := h.service.GetByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch transactions"})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// ListMyActiveRentals godoc
// @Summary      List the authenticated user's rentals not yet returned
// @Tags         transactions
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Transaction
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/equipment-transactions/my-rentals [get]
func (h *Handler) ListMyActiveRentals(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	transactions, err := h.service.GetActiveRentalsByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch rentals"})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// ListTransactionsByEquipment godoc
// @Summary      List transactions of an equipment item
// @Tags         transactions
// @Security     BearerAuth
// @Produce      json
// @Param        equipmentId path int true "Equipment ID"
// @Success      200  {array}   Transaction
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/equipment-transactions/equipment/{equipmentId} [get]
func (h *Handler) ListTransactionsByEquipment(c *gin.Context) {
	equipmentID, err := strconv.ParseInt(c.Param("equipmentId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid equipment ID"})
		return
	}

	transactions, err := h.service.GetByEquipment(c.Request.Context(), equipmentID)
	if err != nil {
		if errors.Is(err, equipment.ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Equipment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch transactions"})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// ListTransactionsByFacility godoc
// @Summary      List transactions across all equipment of a facility
// @Tags         transactions
// @Security     BearerAuth
// @Produce      json
// @Param        facilityId path int true "Facility ID"
// @Success      200  {array}   Transaction
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/equipment-transactions/facility/{facilityId} [get]
func (h *Handler) ListTransactionsByFacility(c *gin.Context) {
	facilityID, err := strconv.ParseInt(c.Param("facilityId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid facility ID"})
		return
	}

	transactions, err := h.service.GetByFacility(c.Request.Context(), facilityID)
	if err != nil {
		if errors.Is(err, facility.ErrFacilityNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Facility not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch transactions"})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// ListTransactionsByDateRange godoc
// @Summary      List transactions between two dates
// @Tags         transactions
// @Security     BearerAuth
// @Produce      json
// @Param        from query string true "Start of range (RFC 3339)"
// @Param        to   query string true "End of range (RFC 3339)"
// @Success      200  {array}   Transaction
// @Failure      400  {object}  api.ErrorResponse
// @Router       /api/equipment-transactions/date-range [get]
func (h *Handler) ListTransactionsByDateRange(c *gin.Context) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid from date"})
		return
	}

	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid to date"})
		return
	}

	transactions, err := h.service.GetByDateRange(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch transactions"})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// PurchaseEquipment godoc
// @Summary      Buy a quantity of an equipment item
// @Tags         transactions
// @Security     BearerAuth
// @Produce      json
// @Param        equipmentId path int true "Equipment ID"
// @Param        quantity query int false "Quantity (default 1)"
// @Success      201  {object}  Transaction
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Failure      409  {object}  api.ErrorResponse
// @Router       /api/equipment-transactions/purchase/{equipmentId} [post]
func (h *Handler) PurchaseEquipment(c *gin.Context) {
	equipmentID, err := strconv.ParseInt(c.Param("equipmentId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid equipment ID"})
		return
	}

	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	quantity := 1
	if q := c.Query("quantity"); q != "" {
		quantity, err = strconv.Atoi(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid quantity"})
			return
		}
	}

	t, err := h.service.Purchase(c.Request.Context(), userID, equipmentID, quantity)
	if err != nil {
		switch {
		case errors.Is(err, equipment.ErrEquipmentNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Equipment not found"})
		case errors.Is(err, ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrNotPurchasable), errors.Is(err, ErrInsufficientStock):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to complete purchase"})
		}
		return
	}

	metrics.RecordEquipmentTransaction(string(t.Type), string(t.Status))

	c.JSON(http.StatusCreated, t)
}

// RentEquipment godoc
// @Summary      Rent a quantity of an equipment item
// @Tags         transactions
// @Security     BearerAuth
// @Produce      json
// @Param        equipmentId path int true "Equipment ID"
// @Param        quantity   query int    false "Quantity (default 1)"
// @Param        returnDate query string false "Expected return date (RFC 3339)"
// @Success      201  {object}  Transaction
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Failure      409  {object}  api.ErrorResponse
// @Router       /api/equipment-transactions/rent/{equipmentId} [post]
func (h *Handler) RentEquipment(c *gin.Context) {
	equipmentID, err := strconv.ParseInt(c.Param("equipmentId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid equipment ID"})
		return
	}

	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	quantity := 1
	if q := c.Query("quantity"); q != "" {
		quantity, err = strconv.Atoi(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid quantity"})
			return
		}
	}

	var returnDate *time.Time
	if rd := c.Query("returnDate"); rd != "" {
		parsed, err := time.Parse(time.RFC3339, rd)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid return date"})
			return
		}
		returnDate = &parsed
	}

	t, err := h.service.Rent(c.Request.Context(), userID, equipmentID, quantity, returnDate)
	if err != nil {
		switch {
		case errors.Is(err, equipment.ErrEquipmentNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Equipment not found"})
		case errors.Is(err, ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrNotRentable), errors.Is(err, ErrInsufficientStock):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to complete rental"})
		}
		return
	}

	metrics.RecordEquipmentTransaction(string(t.Type), string(t.Status))

	c.JSON(http.StatusCreated, t)
}

// ReturnEquipment godoc
// @Summary      Return a rented equipment item
// @Tags         transactions
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Transaction ID"
// @Success      200  {object}  Transaction
// @Failure      400  {object}  api.ErrorResponse
// @Failure      403  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/equipment-transactions/{id}/return [put]
func (h *Handler) ReturnEquipment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid transaction ID"})
		return
	}

	existing, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Transaction not found"})
		return
	}

	userID, _ := auth.GetUserID(c)
	role, _ := auth.GetUserRole(c)
	if existing.UserID != userID && !auth.IsAdmin(role) {
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Access denied"})
		return
	}

	t, err := h.service.Return(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrTransactionNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Transaction not found"})
		case errors.Is(err, ErrNotRental), errors.Is(err, ErrAlreadyProcessed):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to return equipment"})
		}
		return
	}

	metrics.RecordEquipmentTransaction(string(t.Type), string(t.Status))

	c.JSON(http.StatusOK, t)
}

// CancelTransaction godoc
// @Summary      Cancel a pending transaction
// @Tags         transactions
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Transaction ID"
// @Success      200  {object}  Transaction
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/equipment-transactions/{id}/cancel [put]
func (h *Handler) CancelTransaction(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid transaction ID"})
		return
	}

	t, err := h.service.Cancel(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrTransactionNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Transaction not found"})
		case errors.Is(err, ErrNotCancellable):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to cancel transaction"})
		}
		return
	}

	metrics.RecordEquipmentTransaction(string(t.Type), string(t.Status))

	c.JSON(http.StatusOK, t)
}
