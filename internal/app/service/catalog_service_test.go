package service

import (
	"testing"

	"github.com/cafe120/cafe120-backend/internal/app/model"
	"github.com/cafe120/cafe120-backend/internal/app/repository"
	"github.com/cafe120/cafe120-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCatalogServiceTest(t *testing.T) (CatalogService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	ingredientRepo := repository.NewIngredientRepository(testDB)
	categoryRepo := repository.NewCategoryRepository(testDB)
	return NewCatalogService(ingredientRepo, categoryRepo, &fakeBlobStorage{}), testDB
}

func TestCatalogService_CreateIngredient_Defaults(t *testing.T) {
	catalogService, _ := setupCatalogServiceTest(t)

	ing := &model.Ingredient{
		Category: "원두", Name: "블렌드 원두 1kg", Price: 25000, Unit: "kg", Active: true,
	}
	require.NoError(t, catalogService.CreateIngredient(ing))

	// 최소 수량과 노출 순서는 기본값으로 채운다
	assert.Equal(t, 1, ing.MinQuantity)
	assert.Equal(t, model.DefaultIngredientOrder, ing.SortOrder)
}

func TestCatalogService_CreateIngredient_InactivePersisted(t *testing.T) {
	catalogService, testDB := setupCatalogServiceTest(t)

	ing := &model.Ingredient{
		Category: "원두", Name: "준비 중 원두", Price: 25000, Unit: "kg", Active: false,
	}
	require.NoError(t, catalogService.CreateIngredient(ing))

	// active=false가 DB까지 그대로 내려가야 한다
	var stored model.Ingredient
	require.NoError(t, testDB.First(&stored, ing.ID).Error)
	assert.False(t, stored.Active)
}

func TestCatalogService_CreateIngredient_Invalid(t *testing.T) {
	catalogService, _ := setupCatalogServiceTest(t)

	tests := []struct {
		name string
		ing  model.Ingredient
	}{
		{"Missing name", model.Ingredient{Category: "원두", Price: 1000, Unit: "kg"}},
		{"Missing category", model.Ingredient{Name: "원두", Price: 1000, Unit: "kg"}},
		{"Negative price", model.Ingredient{Category: "원두", Name: "원두", Price: -1, Unit: "kg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := catalogService.CreateIngredient(&tt.ing)
			assert.ErrorIs(t, err, ErrInvalidIngredient)
		})
	}
}

func TestCatalogService_ListIngredients_Visibility(t *testing.T) {
	catalogService, testDB := setupCatalogServiceTest(t)

	seedIngredient(t, testDB, model.Ingredient{
		Category: "원두", Name: "판매 중", Price: 1000, Unit: "kg", MinQuantity: 1, Active: true, SortOrder: 1,
	})
	seedIngredient(t, testDB, model.Ingredient{
		Category: "원두", Name: "판매 중지", Price: 1000, Unit: "kg", MinQuantity: 1, Active: false, SortOrder: 2,
	})
	seedIngredient(t, testDB, model.Ingredient{
		Category: "시럽", Name: "바닐라 시럽", Price: 1000, Unit: "ea", MinQuantity: 1, Active: true, SortOrder: 3,
	})

	// 점주 화면: 판매 중인 품목만
	visible, err := catalogService.ListIngredients("", false)
	require.NoError(t, err)
	assert.Len(t, visible, 2)

	// 관리자 화면: 중지 품목 포함
	all, err := catalogService.ListIngredients("", true)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// 카테고리 필터
	beans, err := catalogService.ListIngredients("원두", false)
	require.NoError(t, err)
	require.Len(t, beans, 1)
	assert.Equal(t, "판매 중", beans[0].Name)
}

func TestCatalogService_ListIngredients_SortOrder(t *testing.T) {
	catalogService, testDB := setupCatalogServiceTest(t)

	seedIngredient(t, testDB, model.Ingredient{
		Category: "원두", Name: "뒤", Price: 1000, Unit: "kg", MinQuantity: 1, Active: true, SortOrder: 20,
	})
	seedIngredient(t, testDB, model.Ingredient{
		Category: "원두", Name: "앞", Price: 1000, Unit: "kg", MinQuantity: 1, Active: true, SortOrder: 5,
	})

	ingredients, err := catalogService.ListIngredients("", false)
	require.NoError(t, err)
	require.Len(t, ingredients, 2)
	assert.Equal(t, "앞", ingredients[0].Name)
	assert.Equal(t, "뒤", ingredients[1].Name)
}

func TestCatalogService_ReorderIngredients(t *testing.T) {
	catalogService, testDB := setupCatalogServiceTest(t)

	first := seedIngredient(t, testDB, model.Ingredient{
		Category: "원두", Name: "품목1", Price: 1000, Unit: "kg", MinQuantity: 1, Active: true, SortOrder: 1,
	})
	second := seedIngredient(t, testDB, model.Ingredient{
		Category: "원두", Name: "품목2", Price: 1000, Unit: "kg", MinQuantity: 1, Active: true, SortOrder: 2,
	})

	err := catalogService.ReorderIngredients([]repository.OrderUpdate{
		{ID: first.ID, SortOrder: 2},
		{ID: second.ID, SortOrder: 1},
	})
	require.NoError(t, err)

	ingredients, err := catalogService.ListIngredients("", false)
	require.NoError(t, err)
	require.Len(t, ingredients, 2)
	assert.Equal(t, "품목2", ingredients[0].Name)
	assert.Equal(t, "품목1", ingredients[1].Name)
}

func TestCatalogService_UpdateIngredient_Partial(t *testing.T) {
	catalogService, testDB := setupCatalogServiceTest(t)

	ing := seedIngredient(t, testDB, model.Ingredient{
		Category: "원두", Name: "블렌드 원두", Price: 25000, Unit: "kg", MinQuantity: 1, Active: true,
	})

	newPrice := 27000
	updated, err := catalogService.UpdateIngredient(ing.ID, IngredientUpdate{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 27000, updated.Price)
	assert.Equal(t, "블렌드 원두", updated.Name)

	_, err = catalogService.UpdateIngredient(9999, IngredientUpdate{Price: &newPrice})
	assert.ErrorIs(t, err, ErrIngredientNotFound)
}

func TestCatalogService_ThumbnailFromStorageKey(t *testing.T) {
	catalogService, testDB := setupCatalogServiceTest(t)

	ing := seedIngredient(t, testDB, model.Ingredient{
		Category: "원두", Name: "원두", Price: 1000, Unit: "kg", MinQuantity: 1,
		Active: true, StorageKey: "ingredients/abc.png",
	})

	fetched, err := catalogService.GetIngredientByID(ing.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/ingredients/abc.png", fetched.Thumbnail)
}

func TestCatalogService_DeleteIngredient(t *testing.T) {
	catalogService, testDB := setupCatalogServiceTest(t)

	ing := seedIngredient(t, testDB, model.Ingredient{
		Category: "원두", Name: "원두", Price: 1000, Unit: "kg", MinQuantity: 1, Active: true,
	})

	require.NoError(t, catalogService.DeleteIngredient(ing.ID))
	assert.ErrorIs(t, catalogService.DeleteIngredient(ing.ID), ErrIngredientNotFound)
}

func TestCatalogService_Categories(t *testing.T) {
	catalogService, _ := setupCatalogServiceTest(t)

	require.NoError(t, catalogService.CreateCategory(&model.IngredientCategory{Name: "원두", SortOrder: 1}))
	require.NoError(t, catalogService.CreateCategory(&model.IngredientCategory{Name: "시럽", SortOrder: 2}))
	assert.ErrorIs(t, catalogService.CreateCategory(&model.IngredientCategory{}), ErrInvalidIngredient)

	categories, err := catalogService.ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "원두", categories[0].Name)

	newName := "스페셜티 원두"
	updated, err := catalogService.UpdateCategory(categories[0].ID, &newName, nil)
	require.NoError(t, err)
	assert.Equal(t, "스페셜티 원두", updated.Name)
	assert.Equal(t, 1, updated.SortOrder)

	require.NoError(t, catalogService.DeleteCategory(categories[0].ID))
	assert.ErrorIs(t, catalogService.DeleteCategory(categories[0].ID), ErrCategoryNotFound)
}

// 카테고리를 지워도 그 카테고리를 참조하는 품목은 남는다
func TestCatalogService_DeleteCategory_KeepsIngredients(t *testing.T) {
	catalogService, testDB := setupCatalogServiceTest(t)

	require.NoError(t, catalogService.CreateCategory(&model.IngredientCategory{Name: "원두", SortOrder: 1}))
	seedIngredient(t, testDB, model.Ingredient{
		Category: "원두", Name: "블렌드 원두", Price: 1000, Unit: "kg", MinQuantity: 1, Active: true,
	})

	categories, err := catalogService.ListCategories()
	require.NoError(t, err)
	require.NoError(t, catalogService.DeleteCategory(categories[0].ID))

	ingredients, err := catalogService.ListIngredients("원두", false)
	require.NoError(t, err)
	assert.Len(t, ingredients, 1)
}
