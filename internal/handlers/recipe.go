// internal/handlers/recipe.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/doceviva/doceria-backend/internal/i18n"
	"github.com/doceviva/doceria-backend/internal/services"
	"github.com/doceviva/doceria-backend/internal/utils"
)

type RecipeHandler struct {
	recipeService  *services.RecipeService
	costingService *services.CostingService
}

func NewRecipeHandler(recipeService *services.RecipeService, costingService *services.CostingService) *RecipeHandler {
	return &RecipeHandler{
		recipeService:  recipeService,
		costingService: costingService,
	}
}

// GET /recipes
func (h *RecipeHandler) GetRecipes(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	recipes, total, err := h.recipeService.List(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	result := utils.CreatePaginationResult(recipes, total, params)
	utils.PaginatedResponse(c, result)
}

// POST /recipes
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	recipe, err := h.recipeService.Create(req)
	if err != nil {
		respondServiceError(c, err, i18n.KeyRecipeNotFound, i18n.KeyRecipeExists, i18n.KeyRecipeInUse)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyRecipeCreated),
		"recipe":  recipe,
	})
}

// GET /recipes/:id
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	recipe, err := h.recipeService.Get(id)
	if err != nil {
		respondServiceError(c, err, i18n.KeyRecipeNotFound, i18n.KeyRecipeExists, i18n.KeyRecipeInUse)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"recipe": recipe,
	})
}

// GET /recipes/:id/cost
func (h *RecipeHandler) GetRecipeCost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	breakdown, err := h.costingService.RecipeCost(id)
	if err != nil {
		respondServiceError(c, err, i18n.KeyRecipeNotFound, i18n.KeyRecipeExists, i18n.KeyRecipeInUse)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"cost": breakdown,
	})
}

// PUT /recipes/:id
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	recipe, err := h.recipeService.Update(id, req)
	if err != nil {
		respondServiceError(c, err, i18n.KeyRecipeNotFound, i18n.KeyRecipeExists, i18n.KeyRecipeInUse)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyRecipeUpdated),
		"recipe":  recipe,
	})
}

// DELETE /recipes/:id
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.recipeService.Delete(id); err != nil {
		respondServiceError(c, err, i18n.KeyRecipeNotFound, i18n.KeyRecipeExists, i18n.KeyRecipeInUse)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyRecipeDeleted),
	})
}

// POST /recipes/:id/ingredients
func (h *RecipeHandler) AddRecipeIngredient(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.AddRecipeIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	link, err := h.recipeService.AddIngredient(id, req)
	if err != nil {
		respondServiceError(c, err, i18n.KeyRecipeNotFound, i18n.KeyRecipeExists, i18n.KeyRecipeInUse)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"recipe_ingredient": link,
	})
}

// PUT /recipe-ingredients/:id
func (h *RecipeHandler) UpdateRecipeIngredient(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.UpdateRecipeIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	link, err := h.recipeService.UpdateIngredient(id, req)
	if err != nil {
		respondServiceError(c, err, i18n.KeyRecipeNotFound, i18n.KeyRecipeExists, i18n.KeyRecipeInUse)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"recipe_ingredient": link,
	})
}

// DELETE /recipe-ingredients/:id
func (h *RecipeHandler) RemoveRecipeIngredient(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.recipeService.RemoveIngredient(id); err != nil {
		respondServiceError(c, err, i18n.KeyRecipeNotFound, i18n.KeyRecipeExists, i18n.KeyRecipeInUse)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"deleted": true,
	})
}

// POST /recipes/:id/additional-costs
func (h *RecipeHandler) AddRecipeAdditionalCost(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.AddRecipeAdditionalCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	link, err := h.recipeService.AddAdditionalCost(id, req)
	if err != nil {
		respondServiceError(c, err, i18n.KeyAdditionalCostNotFound, i18n.KeyAdditionalCostExists, i18n.KeyAdditionalCostInUse)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"recipe_additional_cost": link,
	})
}

// DELETE /recipe-additional-costs/:id
func (h *RecipeHandler) RemoveRecipeAdditionalCost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.recipeService.RemoveAdditionalCost(id); err != nil {
		respondServiceError(c, err, i18n.KeyAdditionalCostNotFound, i18n.KeyAdditionalCostExists, i18n.KeyAdditionalCostInUse)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"deleted": true,
	})
}
