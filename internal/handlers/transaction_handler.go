package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "papervest/internal/errors"
	"papervest/internal/pagination"
	"papervest/internal/services"
)

// TransactionHandler handles buy requests and purchase history.
type TransactionHandler struct {
	purchaseService services.PurchaseServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(purchaseService services.PurchaseServicer) *TransactionHandler {
	return &TransactionHandler{purchaseService: purchaseService}
}

// FlexInt accepts a JSON number or a numeric string and coerces it to an
// integer, truncating any fractional part. Clients send units from form
// inputs, which arrive as strings as often as numbers.
type FlexInt int64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		return fmt.Errorf("value is required")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("value must be numeric")
	}
	*f = FlexInt(int64(v))
	return nil
}

// BuyRequest represents the request payload for buying product units.
type BuyRequest struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Units     FlexInt `json:"units" binding:"required,gt=0"`
}

// Buy handles purchasing units of a product against the user's wallet.
// Responds with the post-debit wallet balance so the client can update its
// view of funds without a second read.
func (h *TransactionHandler) Buy(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	receipt, err := h.purchaseService.Buy(userID, req.ProductID, int64(req.Units))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg":                "Purchase successful",
		"new_wallet_balance": receipt.NewWalletBalance,
		"transaction":        receipt.Transaction,
	})
}

// GetTransactions handles listing the user's purchase history.
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.purchaseService.GetUserTransactions(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
