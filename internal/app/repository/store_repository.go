package repository

import (
	"github.com/cafe120/cafe120-backend/internal/app/model"
	"github.com/cafe120/cafe120-backend/pkg/logger"
	"gorm.io/gorm"
)

type StoreRepository interface {
	Create(store *model.Store) error
	BulkCreate(stores []model.Store) error
	FindAll() ([]model.Store, error)
	FindByID(id uint) (*model.Store, error)
	Update(store *model.Store) error
	DeleteMany(ids []uint) error
}

type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(store *model.Store) error {
	logger.Debug("Creating store in database", map[string]interface{}{
		"store_name": store.StoreName,
	})

	if err := r.db.Create(store).Error; err != nil {
		logger.Error("Failed to create store in database", err, map[string]interface{}{
			"store_name": store.StoreName,
		})
		return err
	}
	return nil
}

// BulkCreate 전체를 한 트랜잭션으로 삽입
// 중간 실패 시 일부만 들어간 상태를 남기지 않는다
func (r *storeRepository) BulkCreate(stores []model.Store) error {
	logger.Debug("Bulk creating stores in database", map[string]interface{}{
		"count": len(stores),
	})

	if len(stores) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range stores {
			if err := tx.Create(&stores[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindAll 등록일 내림차순, 같은 날짜는 등록 시각 내림차순
// registration_date는 zero-pad된 YYYY-MM-DD라 문자열 비교가 날짜 비교와 일치한다
func (r *storeRepository) FindAll() ([]model.Store, error) {
	var stores []model.Store
	if err := r.db.Order("registration_date DESC, created_at DESC").
		Find(&stores).Error; err != nil {
		logger.Error("Failed to list stores from database", err, nil)
		return nil, err
	}
	return stores, nil
}

func (r *storeRepository) FindByID(id uint) (*model.Store, error) {
	var store model.Store
	if err := r.db.First(&store, id).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) Update(store *model.Store) error {
	logger.Debug("Updating store in database", map[string]interface{}{
		"store_id": store.ID,
	})

	if err := r.db.Save(store).Error; err != nil {
		logger.Error("Failed to update store in database", err, map[string]interface{}{
			"store_id": store.ID,
		})
		return err
	}
	return nil
}

// DeleteMany id 목록을 한 트랜잭션으로 삭제
// 존재하지 않는 id는 조용히 건너뛴다 (멱등)
func (r *storeRepository) DeleteMany(ids []uint) error {
	logger.Debug("Deleting stores from database", map[string]interface{}{
		"count": len(ids),
	})

	if len(ids) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Where("id IN ?", ids).Delete(&model.Store{}).Error
	})
}
