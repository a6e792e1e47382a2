package repository

import (
	"github.com/cafe120/cafe120-backend/internal/app/model"
	"github.com/cafe120/cafe120-backend/pkg/logger"
	"gorm.io/gorm"
)

type AIHistoryRepository interface {
	Create(history *model.AIHistory) error
	FindByUser(userID uint, historyType string) ([]model.AIHistory, error)
}

type aiHistoryRepository struct {
	db *gorm.DB
}

func NewAIHistoryRepository(db *gorm.DB) AIHistoryRepository {
	return &aiHistoryRepository{db: db}
}

func (r *aiHistoryRepository) Create(history *model.AIHistory) error {
	if err := r.db.Create(history).Error; err != nil {
		logger.Error("Failed to create AI history in database", err, map[string]interface{}{
			"user_id": history.UserID,
			"type":    history.Type,
		})
		return err
	}
	return nil
}

// FindByUser historyType이 비어있으면 전체 유형 조회
func (r *aiHistoryRepository) FindByUser(userID uint, historyType string) ([]model.AIHistory, error) {
	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if historyType != "" {
		query = query.Where("type = ?", historyType)
	}

	var histories []model.AIHistory
	if err := query.Find(&histories).Error; err != nil {
		logger.Error("Failed to list AI histories from database", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	return histories, nil
}
