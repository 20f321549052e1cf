package tokenpack

import (
	"errors"
	"net/http"
	"strconv"

	"padelhub/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListTokenPacks godoc
// @Summary      List token packs on sale
// @Tags         token-packs
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   TokenPack
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/token-packs [get]
func (h *Handler) ListTokenPacks(c *gin.Context) {
	packs, err := h.service.GetActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch token packs"})
		return
	}

	c.JSON(http.StatusOK, packs)
}

// ListAllTokenPacks godoc
// @Summary      List all token packs including inactive ones
// @Tags         token-packs
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   TokenPack
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/token-packs/all [get]
func (h *Handler) ListAllTokenPacks(c *gin.Context) {
	packs, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch token packs"})
		return
	}

	c.JSON(http.StatusOK, packs)
}

// GetTokenPack godoc
// @Summary      Get token pack by id
// @Tags         token-packs
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Token pack ID"
// @Success      200  {object}  TokenPack
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/token-packs/{id} [get]
func (h *Handler) GetTokenPack(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid token pack ID"})
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Token pack not found"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// CreateTokenPack godoc
// @Summary      Create a token pack
// @Tags         token-packs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body CreateTokenPackRequest true "Token pack payload"
// @Success      201  {object}  TokenPack
// @Failure      400  {object}  api.ErrorResponse
// @Router       /api/token-packs [post]
func (h *Handler) CreateTokenPack(c *gin.Context) {
	var req CreateTokenPackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create token pack"})
		return
	}

	c.JSON(http.StatusCreated, p)
}

// UpdateTokenPack godoc
// @Summary      Update a token pack
// @Tags         token-packs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Token pack ID"
// @Param        request body UpdateTokenPackRequest true "Token pack payload"
// @Success      200  {object}  TokenPack
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/token-packs/{id} [put]
func (h *Handler) UpdateTokenPack(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid token pack ID"})
		return
	}

	var req UpdateTokenPackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrTokenPackNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Token pack not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update token pack"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// UpdateTokenPackStatus godoc
// @Summary      Activate or deactivate a token pack
// @Tags         token-packs
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Token pack ID"
// @Param        active query bool true "Active flag"
// @Success      200  {object}  TokenPack
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/token-packs/{id}/status [put]
func (h *Handler) UpdateTokenPackStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid token pack ID"})
		return
	}

	active, err := strconv.ParseBool(c.Query("active"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "active query parameter is required"})
		return
	}

	p, err := h.service.SetActive(c.Request.Context(), id, active)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Token pack not found"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// DeleteTokenPack godoc
// @Summary      Delete a token pack
// @Tags         token-packs
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Token pack ID"
// @Success      200  {object}  api.MessageResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/token-packs/{id} [delete]
func (h *Handler) DeleteTokenPack(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid token pack ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrTokenPackNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Token pack not found"})
			return
		}
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Token pack has purchases and cannot be deleted"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Token pack deleted successfully"})
}
