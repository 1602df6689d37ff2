// internal/handlers/additional_cost.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/doceviva/doceria-backend/internal/i18n"
	"github.com/doceviva/doceria-backend/internal/services"
	"github.com/doceviva/doceria-backend/internal/utils"
)

type AdditionalCostHandler struct {
	additionalCostService *services.AdditionalCostService
}

func NewAdditionalCostHandler(additionalCostService *services.AdditionalCostService) *AdditionalCostHandler {
	return &AdditionalCostHandler{additionalCostService: additionalCostService}
}

// GET /additional-costs
func (h *AdditionalCostHandler) GetAdditionalCosts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	costs, total, err := h.additionalCostService.List(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	result := utils.CreatePaginationResult(costs, total, params)
	utils.PaginatedResponse(c, result)
}

// POST /additional-costs
func (h *AdditionalCostHandler) CreateAdditionalCost(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateAdditionalCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	cost, err := h.additionalCostService.Create(req)
	if err != nil {
		respondServiceError(c, err, i18n.KeyAdditionalCostNotFound, i18n.KeyAdditionalCostExists, i18n.KeyAdditionalCostInUse)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":         i18n.T(lang, i18n.KeyAdditionalCostCreated),
		"additional_cost": cost,
	})
}

// GET /additional-costs/:id
func (h *AdditionalCostHandler) GetAdditionalCost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	cost, err := h.additionalCostService.Get(id)
	if err != nil {
		respondServiceError(c, err, i18n.KeyAdditionalCostNotFound, i18n.KeyAdditionalCostExists, i18n.KeyAdditionalCostInUse)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"additional_cost": cost,
	})
}

// PUT /additional-costs/:id
func (h *AdditionalCostHandler) UpdateAdditionalCost(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.UpdateAdditionalCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	cost, err := h.additionalCostService.Update(id, req)
	if err != nil {
		respondServiceError(c, err, i18n.KeyAdditionalCostNotFound, i18n.KeyAdditionalCostExists, i18n.KeyAdditionalCostInUse)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":         i18n.T(lang, i18n.KeyAdditionalCostUpdated),
		"additional_cost": cost,
	})
}

// DELETE /additional-costs/:id
func (h *AdditionalCostHandler) DeleteAdditionalCost(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.additionalCostService.Delete(id); err != nil {
		respondServiceError(c, err, i18n.KeyAdditionalCostNotFound, i18n.KeyAdditionalCostExists, i18n.KeyAdditionalCostInUse)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAdditionalCostDeleted),
	})
}
