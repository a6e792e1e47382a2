package repository

import (
	"errors"

	"github.com/cafe120/cafe120-backend/internal/app/model"
	"github.com/cafe120/cafe120-backend/pkg/logger"
	"gorm.io/gorm"
)

type ConfigRepository interface {
	FindAll() ([]model.Config, error)
	FindByKey(key string) (*model.Config, error)
	Upsert(key, value string) error
	Delete(key string) error
}

type configRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) ConfigRepository {
	return &configRepository{db: db}
}

func (r *configRepository) FindAll() ([]model.Config, error) {
	var configs []model.Config
	if err := r.db.Order("key ASC").Find(&configs).Error; err != nil {
		logger.Error("Failed to list configs from database", err, nil)
		return nil, err
	}
	return configs, nil
}

func (r *configRepository) FindByKey(key string) (*model.Config, error) {
	var config model.Config
	if err := r.db.Where("key = ?", key).First(&config).Error; err != nil {
		return nil, err
	}
	return &config, nil
}

// Upsert key가 있으면 value 갱신, 없으면 새 행 생성
func (r *configRepository) Upsert(key, value string) error {
	logger.Debug("Upserting config in database", map[string]interface{}{
		"key": key,
	})

	var config model.Config
	err := r.db.Where("key = ?", key).First(&config).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(&model.Config{Key: key, Value: value}).Error
	}
	if err != nil {
		return err
	}

	config.Value = value
	return r.db.Save(&config).Error
}

func (r *configRepository) Delete(key string) error {
	logger.Debug("Deleting config from database", map[string]interface{}{
		"key": key,
	})

	return r.db.Where("key = ?", key).Delete(&model.Config{}).Error
}
