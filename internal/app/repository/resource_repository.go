package repository

import (
	"github.com/cafe120/cafe120-backend/internal/app/model"
	"github.com/cafe120/cafe120-backend/pkg/logger"
	"gorm.io/gorm"
)

type ResourceRepository interface {
	Create(resource *model.Resource) error
	FindAll(resourceType string) ([]model.Resource, error)
	FindByID(id uint) (*model.Resource, error)
	Update(resource *model.Resource) error
	Delete(id uint) error
}

type resourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) Create(resource *model.Resource) error {
	logger.Debug("Creating resource in database", map[string]interface{}{
		"title": resource.Title,
		"type":  resource.Type,
	})

	if err := r.db.Create(resource).Error; err != nil {
		logger.Error("Failed to create resource in database", err, map[string]interface{}{
			"title": resource.Title,
		})
		return err
	}
	return nil
}

// FindAll resourceType이 비어있거나 "all"이면 전체 조회
func (r *resourceRepository) FindAll(resourceType string) ([]model.Resource, error) {
	query := r.db.Order("created_at DESC")
	if resourceType != "" && resourceType != "all" {
		query = query.Where("type = ?", resourceType)
	}

	var resources []model.Resource
	if err := query.Find(&resources).Error; err != nil {
		logger.Error("Failed to list resources from database", err, map[string]interface{}{
			"type": resourceType,
		})
		return nil, err
	}
	return resources, nil
}

func (r *resourceRepository) FindByID(id uint) (*model.Resource, error) {
	var resource model.Resource
	if err := r.db.First(&resource, id).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

func (r *resourceRepository) Update(resource *model.Resource) error {
	logger.Debug("Updating resource in database", map[string]interface{}{
		"resource_id": resource.ID,
	})

	if err := r.db.Save(resource).Error; err != nil {
		logger.Error("Failed to update resource in database", err, map[string]interface{}{
			"resource_id": resource.ID,
		})
		return err
	}
	return nil
}

func (r *resourceRepository) Delete(id uint) error {
	logger.Debug("Deleting resource from database", map[string]interface{}{
		"resource_id": id,
	})

	if err := r.db.Delete(&model.Resource{}, id).Error; err != nil {
		logger.Error("Failed to delete resource from database", err, map[string]interface{}{
			"resource_id": id,
		})
		return err
	}
	return nil
}
