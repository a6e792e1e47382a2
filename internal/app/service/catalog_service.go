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
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrCategoryNotFound   = errors.New("ingredient category not found")
	ErrInvalidIngredient  = errors.New("invalid ingredient data")
)

// IngredientUpdate 수정 가능한 필드 (nil이면 변경 없음)
type IngredientUpdate struct {
	Category    *string
	Name        *string
	Price       *int
	Thumbnail   *string
	DetailImage *string
	Unit        *string
	MinQuantity *int
	ShippingFee *int
	Active      *bool
	SortOrder   *int
	StorageKey  *string
}

type CatalogService interface {
	ListIngredients(category string, includeInactive bool) ([]model.Ingredient, error)
	GetIngredientByID(id uint) (*model.Ingredient, error)
	CreateIngredient(ingredient *model.Ingredient) error
	UpdateIngredient(id uint, update IngredientUpdate) (*model.Ingredient, error)
	DeleteIngredient(id uint) error
	ReorderIngredients(updates []repository.OrderUpdate) error

	ListCategories() ([]model.IngredientCategory, error)
	CreateCategory(category *model.IngredientCategory) error
	UpdateCategory(id uint, name *string, sortOrder *int) (*model.IngredientCategory, error)
	DeleteCategory(id uint) error
}

type catalogService struct {
	ingredientRepo repository.IngredientRepository
	categoryRepo   repository.CategoryRepository
	blobs          storage.BlobStorage
}

func NewCatalogService(
	ingredientRepo repository.IngredientRepository,
	categoryRepo repository.CategoryRepository,
	blobs storage.BlobStorage,
) CatalogService {
	return &catalogService{
		ingredientRepo: ingredientRepo,
		categoryRepo:   categoryRepo,
		blobs:          blobs,
	}
}

func (s *catalogService) ListIngredients(category string, includeInactive bool) ([]model.Ingredient, error) {
	ingredients, err := s.ingredientRepo.FindAll(category, !includeInactive)
	if err != nil {
		return nil, err
	}
	for i := range ingredients {
		s.resolveThumbnail(&ingredients[i])
	}
	return ingredients, nil
}

func (s *catalogService) GetIngredientByID(id uint) (*model.Ingredient, error) {
	ingredient, err := s.ingredientRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}
	s.resolveThumbnail(ingredient)
	return ingredient, nil
}

func (s *catalogService) CreateIngredient(ingredient *model.Ingredient) error {
	if ingredient.Name == "" || ingredient.Category == "" || ingredient.Price < 0 {
		return ErrInvalidIngredient
	}
	if ingredient.MinQuantity <= 0 {
		ingredient.MinQuantity = 1
	}
	// 순서를 지정하지 않은 신규 품목은 목록 맨 뒤로 보낸다
	if ingredient.SortOrder == 0 {
		ingredient.SortOrder = model.DefaultIngredientOrder
	}

	if err := s.ingredientRepo.Create(ingredient); err != nil {
		return err
	}

	logger.Info("Ingredient created", map[string]interface{}{
		"ingredient_id": ingredient.ID,
		"name":          ingredient.Name,
		"category":      ingredient.Category,
	})
	return nil
}

func (s *catalogService) UpdateIngredient(id uint, update IngredientUpdate) (*model.Ingredient, error) {
	ingredient, err := s.ingredientRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}

	if update.Category != nil {
		ingredient.Category = *update.Category
	}
	if update.Name != nil {
		ingredient.Name = *update.Name
	}
	if update.Price != nil {
		ingredient.Price = *update.Price
	}
	if update.Thumbnail != nil {
		ingredient.Thumbnail = *update.Thumbnail
	}
	if update.DetailImage != nil {
		ingredient.DetailImage = *update.DetailImage
	}
	if update.Unit != nil {
		ingredient.Unit = *update.Unit
	}
	if update.MinQuantity != nil {
		ingredient.MinQuantity = *update.MinQuantity
	}
	if update.ShippingFee != nil {
		ingredient.ShippingFee = *update.ShippingFee
	}
	if update.Active != nil {
		ingredient.Active = *update.Active
	}
	if update.SortOrder != nil {
		ingredient.SortOrder = *update.SortOrder
	}
	if update.StorageKey != nil {
		ingredient.StorageKey = *update.StorageKey
	}

	if err := s.ingredientRepo.Update(ingredient); err != nil {
		return nil, err
	}

	s.resolveThumbnail(ingredient)
	return ingredient, nil
}

// DeleteIngredient 과거 발주의 스냅샷은 건드리지 않는다
func (s *catalogService) DeleteIngredient(id uint) error {
	_, err := s.ingredientRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrIngredientNotFound
		}
		return err
	}
	return s.ingredientRepo.Delete(id)
}

// ReorderIngredients 배치 전체를 하나의 트랜잭션으로 반영한다
func (s *catalogService) ReorderIngredients(updates []repository.OrderUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	logger.Info("Reordering ingredients", map[string]interface{}{
		"count": len(updates),
	})
	return s.ingredientRepo.Reorder(updates)
}

func (s *catalogService) ListCategories() ([]model.IngredientCategory, error) {
	return s.categoryRepo.FindAll()
}

func (s *catalogService) CreateCategory(category *model.IngredientCategory) error {
	if category.Name == "" {
		return ErrInvalidIngredient
	}
	return s.categoryRepo.Create(category)
}

func (s *catalogService) UpdateCategory(id uint, name *string, sortOrder *int) (*model.IngredientCategory, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	if name != nil {
		category.Name = *name
	}
	if sortOrder != nil {
		category.SortOrder = *sortOrder
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory 해당 카테고리를 참조하는 품목은 남긴다
func (s *catalogService) DeleteCategory(id uint) error {
	_, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return s.categoryRepo.Delete(id)
}

func (s *catalogService) resolveThumbnail(ingredient *model.Ingredient) {
	if ingredient.StorageKey != "" && s.blobs != nil {
		ingredient.Thumbnail = s.blobs.URL(ingredient.StorageKey)
	}
}
