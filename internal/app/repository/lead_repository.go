package repository

import (
	"github.com/cafe120/cafe120-backend/internal/app/model"
	"github.com/cafe120/cafe120-backend/pkg/logger"
	"gorm.io/gorm"
)

type LeadRepository interface {
	Create(lead *model.Lead) error
	FindAll() ([]model.Lead, error)
	FindByID(id uint) (*model.Lead, error)
	Update(lead *model.Lead) error
}

type leadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Create(lead *model.Lead) error {
	logger.Debug("Creating lead in database", map[string]interface{}{
		"plan_code": lead.PlanCode,
		"name":      lead.Name,
	})

	if err := r.db.Create(lead).Error; err != nil {
		logger.Error("Failed to create lead in database", err, map[string]interface{}{
			"plan_code": lead.PlanCode,
		})
		return err
	}
	return nil
}

func (r *leadRepository) FindAll() ([]model.Lead, error) {
	var leads []model.Lead
	if err := r.db.Order("created_at DESC").Find(&leads).Error; err != nil {
		logger.Error("Failed to list leads from database", err, nil)
		return nil, err
	}
	return leads, nil
}

func (r *leadRepository) FindByID(id uint) (*model.Lead, error) {
	var lead model.Lead
	if err := r.db.First(&lead, id).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *leadRepository) Update(lead *model.Lead) error {
	if err := r.db.Save(lead).Error; err != nil {
		logger.Error("Failed to update lead in database", err, map[string]interface{}{
			"lead_id": lead.ID,
		})
		return err
	}
	return nil
}
