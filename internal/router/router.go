// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/doceviva/doceria-backend/internal/config"
	"github.com/doceviva/doceria-backend/internal/handlers"
	"github.com/doceviva/doceria-backend/internal/middleware"
	"github.com/doceviva/doceria-backend/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	costingService := services.NewCostingService(db)
	ingredientService := services.NewIngredientService(db)
	recipeService := services.NewRecipeService(db)
	additionalCostService := services.NewAdditionalCostService(db)
	productService := services.NewProductService(db)
	salesService := services.NewSalesService(db)
	reportService := services.NewReportService(db, cfg.Report)

	// Initialize handlers
	ingredientHandler := handlers.NewIngredientHandler(ingredientService)
	recipeHandler := handlers.NewRecipeHandler(recipeService, costingService)
	additionalCostHandler := handlers.NewAdditionalCostHandler(additionalCostService)
	productHandler := handlers.NewProductHandler(productService, costingService)
	salesHandler := handlers.NewSalesHandler(salesService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Ingredient routes
		ingredients := v1.Group("/ingredients")
		{
			ingredients.GET("", ingredientHandler.GetIngredients)
			ingredients.POST("", ingredientHandler.CreateIngredient)
			ingredients.GET("/:id", ingredientHandler.GetIngredient)
			ingredients.PUT("/:id", ingredientHandler.UpdateIngredient)
			ingredients.DELETE("/:id", ingredientHandler.DeleteIngredient)
		}

		// Recipe routes
		recipes := v1.Group("/recipes")
		{
			recipes.GET("", recipeHandler.GetRecipes)
			recipes.POST("", recipeHandler.CreateRecipe)
			recipes.GET("/:id", recipeHandler.GetRecipe)
			recipes.GET("/:id/cost", recipeHandler.GetRecipeCost)
			recipes.PUT("/:id", recipeHandler.UpdateRecipe)
			recipes.DELETE("/:id", recipeHandler.DeleteRecipe)
			recipes.POST("/:id/ingredients", recipeHandler.AddRecipeIngredient)
			recipes.POST("/:id/additional-costs", recipeHandler.AddRecipeAdditionalCost)
		}

		// Recipe link routes, addressed by link id
		recipeIngredients := v1.Group("/recipe-ingredients")
		{
			recipeIngredients.PUT("/:id", recipeHandler.UpdateRecipeIngredient)
			recipeIngredients.DELETE("/:id", recipeHandler.RemoveRecipeIngredient)
		}

		recipeAdditionalCosts := v1.Group("/recipe-additional-costs")
		{
			recipeAdditionalCosts.DELETE("/:id", recipeHandler.RemoveRecipeAdditionalCost)
		}

		// Additional cost routes
		additionalCosts := v1.Group("/additional-costs")
		{
			additionalCosts.GET("", additionalCostHandler.GetAdditionalCosts)
			additionalCosts.POST("", additionalCostHandler.CreateAdditionalCost)
			additionalCosts.GET("/:id", additionalCostHandler.GetAdditionalCost)
			additionalCosts.PUT("/:id", additionalCostHandler.UpdateAdditionalCost)
			additionalCosts.DELETE("/:id", additionalCostHandler.DeleteAdditionalCost)
		}

		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.POST("", productHandler.CreateProduct)
			products.GET("/:id", productHandler.GetProduct)
			products.GET("/:id/cost", productHandler.GetProductCost)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}

		// Sales ledger routes
		sales := v1.Group("/sales")
		{
			sales.GET("", salesHandler.GetSales)
			sales.POST("", salesHandler.RecordSale)
			sales.GET("/:id", salesHandler.GetSale)
			sales.DELETE("/:id", salesHandler.DeleteSale)
		}

		// Expense ledger routes
		expenses := v1.Group("/expenses")
		{
			expenses.GET("", salesHandler.GetExpenses)
			expenses.POST("", salesHandler.RecordExpense)
			expenses.DELETE("/:id", salesHandler.DeleteExpense)
		}

		// Report routes
		reports := v1.Group("/reports")
		reports.Use(middleware.ReportRateLimit())
		{
			reports.GET("/dashboard", reportHandler.GetDashboard)
		}
	}

	return r
}
