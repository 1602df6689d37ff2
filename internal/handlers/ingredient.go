// internal/handlers/ingredient.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/doceviva/doceria-backend/internal/i18n"
	"github.com/doceviva/doceria-backend/internal/services"
	"github.com/doceviva/doceria-backend/internal/utils"
)

type IngredientHandler struct {
	ingredientService *services.IngredientService
}

func NewIngredientHandler(ingredientService *services.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredientService: ingredientService}
}

// GET /ingredients
func (h *IngredientHandler) GetIngredients(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	ingredients, total, err := h.ingredientService.List(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	result := utils.CreatePaginationResult(ingredients, total, params)
	utils.PaginatedResponse(c, result)
}

// POST /ingredients
func (h *IngredientHandler) CreateIngredient(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	ingredient, err := h.ingredientService.Create(req)
	if err != nil {
		respondServiceError(c, err, i18n.KeyIngredientNotFound, i18n.KeyIngredientExists, i18n.KeyIngredientInUse)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeyIngredientCreated),
		"ingredient": ingredient,
	})
}

// GET /ingredients/:id
func (h *IngredientHandler) GetIngredient(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ingredient, err := h.ingredientService.Get(id)
	if err != nil {
		respondServiceError(c, err, i18n.KeyIngredientNotFound, i18n.KeyIngredientExists, i18n.KeyIngredientInUse)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"ingredient": ingredient,
	})
}

// PUT /ingredients/:id
func (h *IngredientHandler) UpdateIngredient(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.UpdateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	ingredient, err := h.ingredientService.Update(id, req)
	if err != nil {
		respondServiceError(c, err, i18n.KeyIngredientNotFound, i18n.KeyIngredientExists, i18n.KeyIngredientInUse)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeyIngredientUpdated),
		"ingredient": ingredient,
	})
}

// DELETE /ingredients/:id
func (h *IngredientHandler) DeleteIngredient(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.ingredientService.Delete(id); err != nil {
		respondServiceError(c, err, i18n.KeyIngredientNotFound, i18n.KeyIngredientExists, i18n.KeyIngredientInUse)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyIngredientDeleted),
	})
}
