package service

import (
	"errors"

	"github.com/cafe120/cafe120-backend/internal/app/model"
	"github.com/cafe120/cafe120-backend/internal/app/repository"
	"github.com/cafe120/cafe120-backend/internal/storage"
	"github.com/cafe120/cafe120-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrResourceNotFound    = errors.New("resource not found")
	ErrInvalidResourceType = errors.New("invalid resource type")
	ErrResourceIncomplete  = errors.New("resource title and file are required")
)

// ResourceUpdate 수정 가능한 필드 (nil이면 변경 없음)
type ResourceUpdate struct {
	Title               *string
	Description         *string
	Type                *model.ResourceType
	FileURL             *string
	FileStorageKey      *string
	ThumbnailURL        *string
	ThumbnailStorageKey *string
}

type ResourceService interface {
	ListResources(resourceType string) ([]model.Resource, error)
	CreateResource(resource *model.Resource) error
	UpdateResource(id uint, update ResourceUpdate) (*model.Resource, error)
	DeleteResource(id uint) error
}

type resourceService struct {
	resourceRepo repository.ResourceRepository
	blobs        storage.BlobStorage
}

func NewResourceService(resourceRepo repository.ResourceRepository, blobs storage.BlobStorage) ResourceService {
	return &resourceService{resourceRepo: resourceRepo, blobs: blobs}
}

func (s *resourceService) ListResources(resourceType string) ([]model.Resource, error) {
	if resourceType != "" && resourceType != "all" && !model.ValidResourceType(model.ResourceType(resourceType)) {
		return nil, ErrInvalidResourceType
	}

	resources, err := s.resourceRepo.FindAll(resourceType)
	if err != nil {
		return nil, err
	}
	for i := range resources {
		s.resolveURLs(&resources[i])
	}
	return resources, nil
}

func (s *resourceService) CreateResource(resource *model.Resource) error {
	if !model.ValidResourceType(resource.Type) {
		return ErrInvalidResourceType
	}
	if resource.Title == "" || (resource.FileURL == "" && resource.FileStorageKey == "") {
		return ErrResourceIncomplete
	}

	if err := s.resourceRepo.Create(resource); err != nil {
		return err
	}

	logger.Info("Resource created", map[string]interface{}{
		"resource_id": resource.ID,
		"type":        resource.Type,
	})
	return nil
}

func (s *resourceService) UpdateResource(id uint, update ResourceUpdate) (*model.Resource, error) {
	resource, err := s.resourceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}

	if update.Type != nil {
		if !model.ValidResourceType(*update.Type) {
			return nil, ErrInvalidResourceType
		}
		resource.Type = *update.Type
	}
	if update.Title != nil {
		resource.Title = *update.Title
	}
	if update.Description != nil {
		resource.Description = *update.Description
	}
	if update.FileURL != nil {
		resource.FileURL = *update.FileURL
	}
	if update.FileStorageKey != nil {
		resource.FileStorageKey = *update.FileStorageKey
	}
	if update.ThumbnailURL != nil {
		resource.ThumbnailURL = *update.ThumbnailURL
	}
	if update.ThumbnailStorageKey != nil {
		resource.ThumbnailStorageKey = *update.ThumbnailStorageKey
	}

	if err := s.resourceRepo.Update(resource); err != nil {
		return nil, err
	}

	s.resolveURLs(resource)
	return resource, nil
}

// DeleteResource 스토리지 키가 있으면 블롭을 먼저 지우고 행을 삭제한다.
// 블롭 삭제가 실패하면 행을 남겨서 고아 블롭이 생기지 않게 한다.
func (s *resourceService) DeleteResource(id uint) error {
	resource, err := s.resourceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrResourceNotFound
		}
		return err
	}

	if s.blobs != nil {
		for _, key := range []string{resource.FileStorageKey, resource.ThumbnailStorageKey} {
			if key == "" {
				continue
			}
			if err := s.blobs.Delete(key); err != nil {
				logger.Error("Failed to delete resource blob", err, map[string]interface{}{
					"resource_id": id,
					"key":         key,
				})
				return err
			}
		}
	}

	if err := s.resourceRepo.Delete(id); err != nil {
		return err
	}

	logger.Info("Resource deleted", map[string]interface{}{
		"resource_id": id,
	})
	return nil
}

func (s *resourceService) resolveURLs(resource *model.Resource) {
	if s.blobs == nil {
		return
	}
	if resource.FileStorageKey != "" {
		resource.FileURL = s.blobs.URL(resource.FileStorageKey)
	}
	if resource.ThumbnailStorageKey != "" {
		resource.ThumbnailURL = s.blobs.URL(resource.ThumbnailStorageKey)
	}
}
