// internal/handlers/product.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/doceviva/doceria-backend/internal/i18n"
	"github.com/doceviva/doceria-backend/internal/services"
	"github.com/doceviva/doceria-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
	costingService *services.CostingService
}

func NewProductHandler(productService *services.ProductService, costingService *services.CostingService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		costingService: costingService,
	}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	products, total, err := h.productService.List(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	result := utils.CreatePaginationResult(products, total, params)
	utils.PaginatedResponse(c, result)
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.Create(req)
	if err != nil {
		if err == services.ErrNotFound {
			utils.NotFoundResponse(c, i18n.KeyRecipeNotFound)
			return
		}
		respondServiceError(c, err, i18n.KeyProductNotFound, i18n.KeyProductExists, i18n.KeyProductExists)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductCreated),
		"product": product,
	})
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	product, err := h.productService.Get(id)
	if err != nil {
		respondServiceError(c, err, i18n.KeyProductNotFound, i18n.KeyProductExists, i18n.KeyProductExists)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// GET /products/:id/cost
func (h *ProductHandler) GetProductCost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	breakdown, err := h.costingService.ProductCost(id)
	if err != nil {
		respondServiceError(c, err, i18n.KeyProductNotFound, i18n.KeyProductExists, i18n.KeyProductExists)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"cost": breakdown,
	})
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.productService.Delete(id); err != nil {
		respondServiceError(c, err, i18n.KeyProductNotFound, i18n.KeyProductExists, i18n.KeyProductExists)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductDeleted),
	})
}
