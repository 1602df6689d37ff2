// internal/handlers/sales.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/doceviva/doceria-backend/internal/i18n"
	"github.com/doceviva/doceria-backend/internal/services"
	"github.com/doceviva/doceria-backend/internal/utils"
)

type SalesHandler struct {
	salesService *services.SalesService
}

func NewSalesHandler(salesService *services.SalesService) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

// GET /sales
func (h *SalesHandler) GetSales(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	sales, total, err := h.salesService.ListSales(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	result := utils.CreatePaginationResult(sales, total, params)
	utils.PaginatedResponse(c, result)
}

// POST /sales
func (h *SalesHandler) RecordSale(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	sale, err := h.salesService.RecordSale(req)
	if err != nil {
		if err == services.ErrNotFound {
			utils.NotFoundResponse(c, i18n.KeyProductNotFound)
			return
		}
		respondServiceError(c, err, i18n.KeySaleNotFound, i18n.KeySaleNotFound, i18n.KeySaleNotFound)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeySaleRecorded),
		"sale":    sale,
	})
}

// GET /sales/:id
func (h *SalesHandler) GetSale(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	sale, err := h.salesService.GetSale(id)
	if err != nil {
		respondServiceError(c, err, i18n.KeySaleNotFound, i18n.KeySaleNotFound, i18n.KeySaleNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"sale": sale,
	})
}

// DELETE /sales/:id
func (h *SalesHandler) DeleteSale(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.salesService.DeleteSale(id); err != nil {
		respondServiceError(c, err, i18n.KeySaleNotFound, i18n.KeySaleNotFound, i18n.KeySaleNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeySaleDeleted),
	})
}

// GET /expenses
func (h *SalesHandler) GetExpenses(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	expenses, total, err := h.salesService.ListExpenses(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	result := utils.CreatePaginationResult(expenses, total, params)
	utils.PaginatedResponse(c, result)
}

// POST /expenses
func (h *SalesHandler) RecordExpense(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.RecordExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	expense, err := h.salesService.RecordExpense(req)
	if err != nil {
		respondServiceError(c, err, i18n.KeyExpenseNotFound, i18n.KeyExpenseNotFound, i18n.KeyExpenseNotFound)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyExpenseRecorded),
		"expense": expense,
	})
}

// DELETE /expenses/:id
func (h *SalesHandler) DeleteExpense(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.salesService.DeleteExpense(id); err != nil {
		respondServiceError(c, err, i18n.KeyExpenseNotFound, i18n.KeyExpenseNotFound, i18n.KeyExpenseNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyExpenseDeleted),
	})
}
