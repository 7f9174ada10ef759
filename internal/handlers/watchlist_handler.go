package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "papervest/internal/errors"
	"papervest/internal/services"
)

// WatchlistHandler handles watchlist requests.
type WatchlistHandler struct {
	watchlistService services.WatchlistServicer
}

// NewWatchlistHandler creates a new WatchlistHandler.
func NewWatchlistHandler(watchlistService services.WatchlistServicer) *WatchlistHandler {
	return &WatchlistHandler{watchlistService: watchlistService}
}

// AddWatchlistRequest represents the request payload for watching a product.
type AddWatchlistRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// GetWatchlist handles listing the user's watchlist.
func (h *WatchlistHandler) GetWatchlist(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	items, err := h.watchlistService.GetWatchlist(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"watchlist": items})
}

// AddToWatchlist handles adding a product to the user's watchlist.
func (h *WatchlistHandler) AddToWatchlist(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	entry, err := h.watchlistService.AddToWatchlist(userID, req.ProductID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg":   "Product added to watchlist",
		"entry": entry,
	})
}

// RemoveFromWatchlist handles removing a product from the user's watchlist.
func (h *WatchlistHandler) RemoveFromWatchlist(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	productID, err := parsePathID(c, "productId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.watchlistService.RemoveFromWatchlist(userID, productID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Product removed from watchlist"})
}
