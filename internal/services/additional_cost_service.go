// internal/services/additional_cost_service.go
package services

import (
	"github.com/doceviva/doceria-backend/internal/models"
	"github.com/doceviva/doceria-backend/internal/utils"

	"gorm.io/gorm"
)

type AdditionalCostService struct {
	db *gorm.DB
}

func NewAdditionalCostService(db *gorm.DB) *AdditionalCostService {
	return &AdditionalCostService{db: db}
}

type CreateAdditionalCostRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Category    string  `json:"category" validate:"required,oneof=embalagem equipamento mao_de_obra outro"`
	UnitCost    float64 `json:"unit_cost" validate:"gte=0"`
	Unit        string  `json:"unit" validate:"max=30"`
	UsefulLife  int     `json:"useful_life" validate:"gte=0"`
	Description string  `json:"description" validate:"max=2000"`
}

type UpdateAdditionalCostRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Category    *string  `json:"category" validate:"omitempty,oneof=embalagem equipamento mao_de_obra outro"`
	UnitCost    *float64 `json:"unit_cost" validate:"omitempty,gte=0"`
	Unit        *string  `json:"unit" validate:"omitempty,max=30"`
	UsefulLife  *int     `json:"useful_life" validate:"omitempty,gte=0"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
}

func (s *AdditionalCostService) Create(req CreateAdditionalCostRequest) (*models.AdditionalCost, error) {
	var count int64
	s.db.Model(&models.AdditionalCost{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		return nil, ErrDuplicateName
	}

	cost := models.AdditionalCost{
		Name:        req.Name,
		Category:    models.CostCategory(req.Category),
		UnitCost:    req.UnitCost,
		Unit:        req.Unit,
		UsefulLife:  req.UsefulLife,
		Description: req.Description,
	}

	if err := s.db.Create(&cost).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}

	return &cost, nil
}

func (s *AdditionalCostService) List(params utils.PaginationParams) ([]models.AdditionalCost, int64, error) {
	var costs []models.AdditionalCost
	var total int64

	query := s.db.Model(&models.AdditionalCost{})
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = utils.ApplySort(query, params, []string{"name", "unit_cost", "created_at"})
	query = utils.ApplyPagination(query, params)
	if err := query.Find(&costs).Error; err != nil {
		return nil, 0, err
	}

	return costs, total, nil
}

func (s *AdditionalCostService) Get(id uint) (*models.AdditionalCost, error) {
	var cost models.AdditionalCost
	if err := s.db.First(&cost, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cost, nil
}

func (s *AdditionalCostService) Update(id uint, req UpdateAdditionalCostRequest) (*models.AdditionalCost, error) {
	cost, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != cost.Name {
		var count int64
		s.db.Model(&models.AdditionalCost{}).Where("name = ? AND id <> ?", *req.Name, id).Count(&count)
		if count > 0 {
			return nil, ErrDuplicateName
		}
		cost.Name = *req.Name
	}
	if req.Category != nil {
		cost.Category = models.CostCategory(*req.Category)
	}
	if req.UnitCost != nil {
		cost.UnitCost = *req.UnitCost
	}
	if req.Unit != nil {
		cost.Unit = *req.Unit
	}
	if req.UsefulLife != nil {
		cost.UsefulLife = *req.UsefulLife
	}
	if req.Description != nil {
		cost.Description = *req.Description
	}

	if err := s.db.Save(cost).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}

	return cost, nil
}

// Delete refuses to remove a cost that any recipe still charges.
func (s *AdditionalCostService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	var refs int64
	s.db.Model(&models.RecipeAdditionalCost{}).Where("additional_cost_id = ?", id).Count(&refs)
	if refs > 0 {
		return ErrInUse
	}

	return s.db.Delete(&models.AdditionalCost{}, id).Error
}
