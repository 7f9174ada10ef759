package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "papervest/internal/errors"
	"papervest/internal/models"
	"papervest/internal/pagination"
	"papervest/internal/services"
)

// ProductHandler handles catalog browsing requests.
type ProductHandler struct {
	productService services.ProductServicer
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService services.ProductServicer) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ProductListQuery holds the catalog listing parameters. Category is an
// optional filter restricted to the known product categories.
type ProductListQuery struct {
	pagination.PageRequest
	Category models.ProductCategory `form:"category" binding:"omitempty,product_category"`
}

// GetProducts handles listing catalog products.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	var query ProductListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.productService.GetProducts(query.PageRequest, query.Category)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetProductDetail handles retrieving a single product with its simulated
// price history and display data.
func (h *ProductHandler) GetProductDetail(c *gin.Context) {
	productID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	detail, err := h.productService.GetProductDetail(productID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": detail})
}
