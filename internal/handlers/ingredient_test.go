// internal/handlers/ingredient_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/doceviva/doceria-backend/internal/models"
	"github.com/doceviva/doceria-backend/internal/services"
)

type IngredientHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (suite *IngredientHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(db.AutoMigrate(
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
	))
	suite.db = db

	handler := NewIngredientHandler(services.NewIngredientService(db))

	suite.router = gin.New()
	ingredients := suite.router.Group("/v1/ingredients")
	{
		ingredients.GET("", handler.GetIngredients)
		ingredients.POST("", handler.CreateIngredient)
		ingredients.GET("/:id", handler.GetIngredient)
		ingredients.DELETE("/:id", handler.DeleteIngredient)
	}
}

func (suite *IngredientHandlerTestSuite) postJSON(path string, body interface{}) *httptest.ResponseRecorder {
	jsonData, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *IngredientHandlerTestSuite) TestCreateIngredient() {
	w := suite.postJSON("/v1/ingredients", map[string]interface{}{
		"name":             "leite integral",
		"package_price":    5.50,
		"package_quantity": 1000,
		"density":          1.03,
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var count int64
	suite.db.Model(&models.Ingredient{}).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *IngredientHandlerTestSuite) TestCreateIngredientValidation() {
	// package_quantity must be positive
	w := suite.postJSON("/v1/ingredients", map[string]interface{}{
		"name":             "leite integral",
		"package_price":    5.50,
		"package_quantity": 0,
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *IngredientHandlerTestSuite) TestCreateIngredientDuplicate() {
	body := map[string]interface{}{
		"name":             "leite integral",
		"package_price":    5.50,
		"package_quantity": 1000,
	}
	assert.Equal(suite.T(), http.StatusCreated, suite.postJSON("/v1/ingredients", body).Code)
	assert.Equal(suite.T(), http.StatusConflict, suite.postJSON("/v1/ingredients", body).Code)
}

func (suite *IngredientHandlerTestSuite) TestGetIngredientNotFound() {
	req, _ := http.NewRequest("GET", "/v1/ingredients/42", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *IngredientHandlerTestSuite) TestDeleteIngredientInUse() {
	ingredient := models.Ingredient{Name: "farinha", PackagePrice: 10, PackageQuantity: 1000, Density: 1}
	suite.Require().NoError(suite.db.Create(&ingredient).Error)
	recipe := models.Recipe{Name: "massa", Yield: 1}
	suite.Require().NoError(suite.db.Create(&recipe).Error)
	suite.Require().NoError(suite.db.Create(&models.RecipeIngredient{
		RecipeID:     recipe.ID,
		IngredientID: ingredient.ID,
		Quantity:     100,
		Unit:         "g",
	}).Error)

	req, _ := http.NewRequest("DELETE", "/v1/ingredients/1", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func TestIngredientHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(IngredientHandlerTestSuite))
}
