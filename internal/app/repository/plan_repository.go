package repository

import (
	"github.com/cafe120/cafe120-backend/internal/app/model"
	"github.com/cafe120/cafe120-backend/pkg/logger"
	"gorm.io/gorm"
)

type PlanRepository interface {
	Create(plan *model.Plan) error
	FindAll() ([]model.Plan, error)
	FindByID(id uint) (*model.Plan, error)
	FindByCode(code string) (*model.Plan, error)
	Update(plan *model.Plan) error
	Delete(id uint) error
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Create(plan *model.Plan) error {
	logger.Debug("Creating plan in database", map[string]interface{}{
		"code": plan.Code,
		"name": plan.Name,
	})

	if err := r.db.Create(plan).Error; err != nil {
		logger.Error("Failed to create plan in database", err, map[string]interface{}{
			"code": plan.Code,
		})
		return err
	}
	return nil
}

func (r *planRepository) FindAll() ([]model.Plan, error) {
	var plans []model.Plan
	if err := r.db.Order("id ASC").Find(&plans).Error; err != nil {
		logger.Error("Failed to list plans from database", err, nil)
		return nil, err
	}
	return plans, nil
}

func (r *planRepository) FindByID(id uint) (*model.Plan, error) {
	var plan model.Plan
	if err := r.db.First(&plan, id).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) FindByCode(code string) (*model.Plan, error) {
	var plan model.Plan
	if err := r.db.Where("code = ?", code).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) Update(plan *model.Plan) error {
	logger.Debug("Updating plan in database", map[string]interface{}{
		"plan_id": plan.ID,
		"code":    plan.Code,
	})

	if err := r.db.Save(plan).Error; err != nil {
		logger.Error("Failed to update plan in database", err, map[string]interface{}{
			"plan_id": plan.ID,
		})
		return err
	}
	return nil
}

func (r *planRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Plan{}, id).Error; err != nil {
		logger.Error("Failed to delete plan from database", err, map[string]interface{}{
			"plan_id": id,
		})
		return err
	}
	return nil
}
