package service

import (
	"errors"
	"io"

	"github.com/cafe120/cafe120-backend/internal/app/model"
	"github.com/cafe120/cafe120-backend/internal/app/repository"
	"github.com/cafe120/cafe120-backend/internal/importer"
	"github.com/cafe120/cafe120-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrStoreNotFound     = errors.New("store not found")
	ErrStoreNameRequired = errors.New("store name is required")
)

// StoreUpdate 수정 가능한 필드 (nil이면 변경 없음)
type StoreUpdate struct {
	RegistrationDate *string
	StoreName        *string
	OwnerName        *string
	MobilePhone      *string
	StorePhone       *string
	Email            *string
	Status           *string
	Address          *string
	DetailAddress    *string
	Remarks          *string
}

// ImportSummary 스프레드시트 가져오기 결과 건수
type ImportSummary struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type StoreService interface {
	ListStores() ([]model.Store, error)
	CreateStore(store *model.Store) error
	UpdateStore(id uint, update StoreUpdate) (*model.Store, error)
	ImportStores(r io.Reader) (*ImportSummary, error)
	DeleteStores(ids []uint) error
}

type storeService struct {
	storeRepo repository.StoreRepository
}

func NewStoreService(storeRepo repository.StoreRepository) StoreService {
	return &storeService{storeRepo: storeRepo}
}

func (s *storeService) ListStores() ([]model.Store, error) {
	return s.storeRepo.FindAll()
}

func (s *storeService) CreateStore(store *model.Store) error {
	if store.StoreName == "" {
		return ErrStoreNameRequired
	}
	store.Status = model.ParseStoreStatus(string(store.Status))
	return s.storeRepo.Create(store)
}

func (s *storeService) UpdateStore(id uint, update StoreUpdate) (*model.Store, error) {
	store, err := s.storeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	if update.RegistrationDate != nil {
		store.RegistrationDate = *update.RegistrationDate
	}
	if update.StoreName != nil {
		store.StoreName = *update.StoreName
	}
	if update.OwnerName != nil {
		store.OwnerName = *update.OwnerName
	}
	if update.MobilePhone != nil {
		store.MobilePhone = *update.MobilePhone
	}
	if update.StorePhone != nil {
		store.StorePhone = *update.StorePhone
	}
	if update.Email != nil {
		store.Email = *update.Email
	}
	if update.Status != nil {
		store.Status = model.ParseStoreStatus(*update.Status)
	}
	if update.Address != nil {
		store.Address = *update.Address
	}
	if update.DetailAddress != nil {
		store.DetailAddress = *update.DetailAddress
	}
	if update.Remarks != nil {
		store.Remarks = *update.Remarks
	}

	if err := s.storeRepo.Update(store); err != nil {
		return nil, err
	}
	return store, nil
}

// ImportStores 파싱에 성공한 행 전체를 한 트랜잭션으로 삽입한다.
// 삽입이 실패하면 아무 행도 남지 않는다.
func (s *storeService) ImportStores(r io.Reader) (*ImportSummary, error) {
	result, err := importer.ParseStores(r)
	if err != nil {
		return nil, err
	}

	if err := s.storeRepo.BulkCreate(result.Stores); err != nil {
		logger.Error("Failed to persist imported stores", err, map[string]interface{}{
			"count": len(result.Stores),
		})
		return nil, err
	}

	logger.Info("Store import completed", map[string]interface{}{
		"imported": result.Imported,
		"skipped":  result.Skipped,
	})

	return &ImportSummary{Imported: result.Imported, Skipped: result.Skipped}, nil
}

// DeleteStores 존재하지 않는 id가 섞여 있어도 나머지는 정상 삭제된다
func (s *storeService) DeleteStores(ids []uint) error {
	return s.storeRepo.DeleteMany(ids)
}
