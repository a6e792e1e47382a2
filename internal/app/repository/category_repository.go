package repository

import (
	"github.com/cafe120/cafe120-backend/internal/app/model"
	"github.com/cafe120/cafe120-backend/pkg/logger"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.IngredientCategory) error
	FindAll() ([]model.IngredientCategory, error)
	FindByID(id uint) (*model.IngredientCategory, error)
	Update(category *model.IngredientCategory) error
	Delete(id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *model.IngredientCategory) error {
	if err := r.db.Create(category).Error; err != nil {
		logger.Error("Failed to create ingredient category in database", err, map[string]interface{}{
			"name": category.Name,
		})
		return err
	}
	return nil
}

func (r *categoryRepository) FindAll() ([]model.IngredientCategory, error) {
	var categories []model.IngredientCategory
	if err := r.db.Order("sort_order ASC").Find(&categories).Error; err != nil {
		logger.Error("Failed to list ingredient categories from database", err, nil)
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) FindByID(id uint) (*model.IngredientCategory, error) {
	var category model.IngredientCategory
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Update(category *model.IngredientCategory) error {
	if err := r.db.Save(category).Error; err != nil {
		logger.Error("Failed to update ingredient category in database", err, map[string]interface{}{
			"category_id": category.ID,
		})
		return err
	}
	return nil
}

// Delete 카테고리 삭제
// 해당 카테고리를 참조하는 품목은 건드리지 않는다
func (r *categoryRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.IngredientCategory{}, id).Error; err != nil {
		logger.Error("Failed to delete ingredient category from database", err, map[string]interface{}{
			"category_id": id,
		})
		return err
	}
	return nil
}
