package token

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"padelhub/internal/api"
	"padelhub/internal/auth"
	"padelhub/internal/metrics"
	"padelhub/internal/tokenpack"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListMyTokens godoc
// @Summary      List the authenticated user's token batches
// @Tags         tokens
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   UserToken
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/user-tokens/my-tokens [get]
func (h *Handler) ListMyTokens(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	tokens, err := h.service.GetByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch tokens"})
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// ListMyValidTokens godoc
// @Summary      List the authenticated user's spendable token batches
// @Tags         tokens
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   UserToken
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/user-tokens/my-valid-tokens [get]
func (h *Handler) ListMyValidTokens(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	tokens, err := h.service.GetValidByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch tokens"})
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// GetMyTokenCount godoc
// @Summary      Get the authenticated user's spendable token balance
// @Tags         tokens
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  TokenBalanceResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/user-tokens/my-token-count [get]
func (h *Handler) GetMyTokenCount(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	balance, err := h.service.GetBalance(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch token balance"})
		return
	}

	c.JSON(http.StatusOK, TokenBalanceResponse{Tokens: balance})
}

// ListUserTokens godoc
// @Summary      List a user's token batches
// @Tags         tokens
// @Security     BearerAuth
// @Produce      json
// @Param        userId path int true "User ID"
// @Success      200  {array}   UserToken
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/user-tokens/user/{userId} [get]
func (h *Handler) ListUserTokens(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid user ID"})
		return
	}

	tokens, err := h.service.GetByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch tokens"})
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// GetUserTokenCount godoc
// @Summary      Get a user's spendable token balance
// @Tags         tokens
// @Security     BearerAuth
// @Produce      json
// @Param        userId path int true "User ID"
// @Success      200  {object}  TokenBalanceResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/user-tokens/user/{userId}/count [get]
func (h *Handler) GetUserTokenCount(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid user ID"})
		return
	}

	balance, err := h.service.GetBalance(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch token balance"})
		return
	}

	c.JSON(http.StatusOK, TokenBalanceResponse{Tokens: balance})
}

// PurchaseTokenPack godoc
// @Summary      Buy a token pack and credit its tokens
// @Tags         tokens
// @Security     BearerAuth
// @Produce      json
// @Param        tokenPackId path int true "Token pack ID"
// @Success      201  {object}  UserToken
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/user-tokens/purchase/{tokenPackId} [post]
func (h *Handler) PurchaseTokenPack(c *gin.Context) {
	packID, err := strconv.ParseInt(c.Param("tokenPackId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid token pack ID"})
		return
	}

	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	ut, err := h.service.PurchasePack(c.Request.Context(), userID, packID)
	if err != nil {
		switch {
		case errors.Is(err, tokenpack.ErrTokenPackNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Token pack not found"})
		case errors.Is(err, ErrPackNotAvailable):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to purchase token pack"})
		}
		return
	}

	metrics.RecordTokenPackPurchase()

	c.JSON(http.StatusCreated, ut)
}

// UseTokens godoc
// @Summary      Spend tokens from the authenticated user's balance
// @Tags         tokens
// @Security     BearerAuth
// @Produce      json
// @Param        tokenCount query int true "Tokens to spend"
// @Success      200  {object}  api.MessageResponse
// @Failure      400  {object}  api.ErrorResponse
// @Failure      409  {object}  api.ErrorResponse
// @Router       /api/user-tokens/use-tokens [post]
func (h *Handler) UseTokens(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	amount, err := strconv.Atoi(c.Query("tokenCount"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "tokenCount query parameter is required"})
		return
	}

	if _, err := h.service.UseTokens(c.Request.Context(), userID, amount); err != nil {
		switch {
		case errors.Is(err, ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrNoValidTokens), errors.Is(err, ErrInsufficientTokens):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to use tokens"})
		}
		return
	}

	metrics.RecordTokensConsumed(amount)

	c.JSON(http.StatusOK, api.MessageResponse{Message: fmt.Sprintf("%d tokens used successfully", amount)})
}
