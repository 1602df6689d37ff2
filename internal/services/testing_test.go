// internal/services/testing_test.go
package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/doceviva/doceria-backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.AdditionalCost{},
		&models.RecipeAdditionalCost{},
		&models.Product{},
		&models.ProductComposition{},
		&models.Sale{},
		&models.SaleItem{},
		&models.Expense{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// seedDoughRecipe creates the flour ingredient (10.00 per 1000 g) and a
// dough recipe using 500 g of it with a yield of 2 units.
func seedDoughRecipe(t *testing.T, db *gorm.DB) (*models.Ingredient, *models.Recipe) {
	t.Helper()

	flour := models.Ingredient{
		Name:            "farinha de trigo",
		PackagePrice:    10.00,
		PackageQuantity: 1000,
		Density:         1.0,
	}
	if err := db.Create(&flour).Error; err != nil {
		t.Fatalf("failed to seed ingredient: %v", err)
	}

	dough := models.Recipe{Name: "massa base", Yield: 2}
	if err := db.Create(&dough).Error; err != nil {
		t.Fatalf("failed to seed recipe: %v", err)
	}

	link := models.RecipeIngredient{
		RecipeID:     dough.ID,
		IngredientID: flour.ID,
		Quantity:     500,
		Unit:         "g",
	}
	if err := db.Create(&link).Error; err != nil {
		t.Fatalf("failed to seed recipe ingredient: %v", err)
	}

	return &flour, &dough
}
