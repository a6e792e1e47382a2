package repository

import (
	"github.com/cafe120/cafe120-backend/internal/app/model"
	"github.com/cafe120/cafe120-backend/pkg/logger"
	"gorm.io/gorm"
)

// OrderUpdate 노출 순서 일괄 변경의 한 항목
type OrderUpdate struct {
	ID        uint `json:"id" binding:"required"`
	SortOrder int  `json:"order"`
}

type IngredientRepository interface {
	Create(ingredient *model.Ingredient) error
	FindAll(category string, activeOnly bool) ([]model.Ingredient, error)
	FindByID(id uint) (*model.Ingredient, error)
	FindByIDs(ids []uint) ([]model.Ingredient, error)
	Update(ingredient *model.Ingredient) error
	Delete(id uint) error
	Reorder(updates []OrderUpdate) error
}

type ingredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) Create(ingredient *model.Ingredient) error {
	logger.Debug("Creating ingredient in database", map[string]interface{}{
		"name":     ingredient.Name,
		"category": ingredient.Category,
	})

	if err := r.db.Create(ingredient).Error; err != nil {
		logger.Error("Failed to create ingredient in database", err, map[string]interface{}{
			"name": ingredient.Name,
		})
		return err
	}
	return nil
}

// FindAll 품목 목록 조회, 관리자 지정 노출 순서 오름차순
func (r *ingredientRepository) FindAll(category string, activeOnly bool) ([]model.Ingredient, error) {
	query := r.db.Order("sort_order ASC, id ASC")
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var ingredients []model.Ingredient
	if err := query.Find(&ingredients).Error; err != nil {
		logger.Error("Failed to list ingredients from database", err, map[string]interface{}{
			"category": category,
		})
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) FindByID(id uint) (*model.Ingredient, error) {
	var ingredient model.Ingredient
	if err := r.db.First(&ingredient, id).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) FindByIDs(ids []uint) ([]model.Ingredient, error) {
	var ingredients []model.Ingredient
	if err := r.db.Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
		logger.Error("Failed to find ingredients by ids", err, map[string]interface{}{
			"count": len(ids),
		})
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) Update(ingredient *model.Ingredient) error {
	logger.Debug("Updating ingredient in database", map[string]interface{}{
		"ingredient_id": ingredient.ID,
	})

	if err := r.db.Save(ingredient).Error; err != nil {
		logger.Error("Failed to update ingredient in database", err, map[string]interface{}{
			"ingredient_id": ingredient.ID,
		})
		return err
	}
	return nil
}

func (r *ingredientRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Ingredient{}, id).Error; err != nil {
		logger.Error("Failed to delete ingredient from database", err, map[string]interface{}{
			"ingredient_id": id,
		})
		return err
	}
	return nil
}

// Reorder 노출 순서 일괄 변경을 한 트랜잭션으로 적용
// 중간 실패로 순서가 섞인 채 남지 않도록 전체를 묶는다
func (r *ingredientRepository) Reorder(updates []OrderUpdate) error {
	logger.Debug("Reordering ingredients", map[string]interface{}{
		"count": len(updates),
	})

	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, update := range updates {
			if err := tx.Model(&model.Ingredient{}).
				Where("id = ?", update.ID).
				Update("sort_order", update.SortOrder).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
