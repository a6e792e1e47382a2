package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cafe120/cafe120-backend/internal/app/model"
	"github.com/cafe120/cafe120-backend/internal/app/repository"
	"github.com/cafe120/cafe120-backend/internal/app/service"
	apperrors "github.com/cafe120/cafe120-backend/internal/errors"
	"github.com/cafe120/cafe120-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CatalogController 식자재 품목/카테고리 API
type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

type CreateIngredientRequest struct {
	Category    string `json:"category" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Price       int    `json:"price" binding:"required,min=0"`
	Thumbnail   string `json:"thumbnail"`
	DetailImage string `json:"detail_image"`
	Unit        string `json:"unit" binding:"required"`
	MinQuantity int    `json:"min_quantity"`
	ShippingFee int    `json:"shipping_fee"`
	SortOrder   int    `json:"order"`
	StorageKey  string `json:"storage_key"`
	Active      *bool  `json:"active"` // 생략 시 판매 중으로 등록
}

type UpdateIngredientRequest struct {
	Category    *string `json:"category"`
	Name        *string `json:"name"`
	Price       *int    `json:"price"`
	Thumbnail   *string `json:"thumbnail"`
	DetailImage *string `json:"detail_image"`
	Unit        *string `json:"unit"`
	MinQuantity *int    `json:"min_quantity"`
	ShippingFee *int    `json:"shipping_fee"`
	Active      *bool   `json:"active"`
	SortOrder   *int    `json:"order"`
	StorageKey  *string `json:"storage_key"`
}

type ReorderRequest struct {
	Items []repository.OrderUpdate `json:"items" binding:"required"`
}

type CreateCategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"order"`
}

type UpdateCategoryRequest struct {
	Name      *string `json:"name"`
	SortOrder *int    `json:"order"`
}

// ListIngredients returns the storefront catalog sorted by display order
// GET /api/v1/ingredients?category=
// 관리자는 판매 중지 품목까지 본다
func (ctrl *CatalogController) ListIngredients(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	category := c.Query("category")
	includeInactive := middleware.IsAdmin(c)

	ingredients, err := ctrl.catalogService.ListIngredients(category, includeInactive)
	if err != nil {
		log.Error("Failed to list ingredients", err, map[string]interface{}{
			"category": category,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "ingredient")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ingredients": ingredients,
		"count":       len(ingredients),
	})
}

// GetIngredient returns one catalog item
// GET /api/v1/ingredients/:id
func (ctrl *CatalogController) GetIngredient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 품목 ID입니다")
		return
	}

	ingredient, err := ctrl.catalogService.GetIngredientByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrIngredientNotFound) {
			apperrors.NotFound(c, apperrors.IngredientNotFound, "품목을 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "ingredient")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ingredient": ingredient,
	})
}

// CreateIngredient adds a catalog item
// POST /api/v1/ingredients
func (ctrl *CatalogController) CreateIngredient(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid ingredient creation request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	ingredient := &model.Ingredient{
		Category:    req.Category,
		Name:        req.Name,
		Price:       req.Price,
		Thumbnail:   req.Thumbnail,
		DetailImage: req.DetailImage,
		Unit:        req.Unit,
		MinQuantity: req.MinQuantity,
		ShippingFee: req.ShippingFee,
		SortOrder:   req.SortOrder,
		StorageKey:  req.StorageKey,
		Active:      req.Active == nil || *req.Active,
	}

	if err := ctrl.catalogService.CreateIngredient(ingredient); err != nil {
		if errors.Is(err, service.ErrInvalidIngredient) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "품목 정보가 올바르지 않습니다")
			return
		}
		log.Error("Failed to create ingredient", err, map[string]interface{}{
			"name": req.Name,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "ingredient")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Ingredient created successfully",
		"ingredient": ingredient,
	})
}

// UpdateIngredient edits a catalog item
// PATCH /api/v1/ingredients/:id
func (ctrl *CatalogController) UpdateIngredient(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 품목 ID입니다")
		return
	}

	var req UpdateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	ingredient, err := ctrl.catalogService.UpdateIngredient(uint(id), service.IngredientUpdate{
		Category:    req.Category,
		Name:        req.Name,
		Price:       req.Price,
		Thumbnail:   req.Thumbnail,
		DetailImage: req.DetailImage,
		Unit:        req.Unit,
		MinQuantity: req.MinQuantity,
		ShippingFee: req.ShippingFee,
		Active:      req.Active,
		SortOrder:   req.SortOrder,
		StorageKey:  req.StorageKey,
	})
	if err != nil {
		if errors.Is(err, service.ErrIngredientNotFound) {
			apperrors.NotFound(c, apperrors.IngredientNotFound, "품목을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to update ingredient", err, map[string]interface{}{
			"ingredient_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "ingredient")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Ingredient updated successfully",
		"ingredient": ingredient,
	})
}

// DeleteIngredient removes a catalog item. 과거 발주 스냅샷은 그대로 남는다.
// DELETE /api/v1/ingredients/:id
func (ctrl *CatalogController) DeleteIngredient(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 품목 ID입니다")
		return
	}

	if err := ctrl.catalogService.DeleteIngredient(uint(id)); err != nil {
		if errors.Is(err, service.ErrIngredientNotFound) {
			apperrors.NotFound(c, apperrors.IngredientNotFound, "품목을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to delete ingredient", err, map[string]interface{}{
			"ingredient_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "ingredient")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ingredient deleted successfully",
	})
}

// ReorderIngredients applies a batch of display-order changes atomically
// PUT /api/v1/ingredients/reorder
func (ctrl *CatalogController) ReorderIngredients(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	if err := ctrl.catalogService.ReorderIngredients(req.Items); err != nil {
		log.Error("Failed to reorder ingredients", err, map[string]interface{}{
			"count": len(req.Items),
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "ingredient")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ingredients reordered successfully",
	})
}

// ListCategories returns ingredient categories by display order
// GET /api/v1/ingredient-categories
func (ctrl *CatalogController) ListCategories(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	categories, err := ctrl.catalogService.ListCategories()
	if err != nil {
		log.Error("Failed to list categories", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"count":      len(categories),
	})
}

// CreateCategory adds an ingredient category
// POST /api/v1/ingredient-categories
func (ctrl *CatalogController) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	category := &model.IngredientCategory{
		Name:      req.Name,
		SortOrder: req.SortOrder,
	}
	if err := ctrl.catalogService.CreateCategory(category); err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Category created successfully",
		"category": category,
	})
}

// UpdateCategory edits an ingredient category
// PATCH /api/v1/ingredient-categories/:id
func (ctrl *CatalogController) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 카테고리 ID입니다")
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	category, err := ctrl.catalogService.UpdateCategory(uint(id), req.Name, req.SortOrder)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.NotFound(c, apperrors.CategoryNotFound, "카테고리를 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Category updated successfully",
		"category": category,
	})
}

// DeleteCategory removes a category; items referencing it are kept
// DELETE /api/v1/ingredient-categories/:id
func (ctrl *CatalogController) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 카테고리 ID입니다")
		return
	}

	if err := ctrl.catalogService.DeleteCategory(uint(id)); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.NotFound(c, apperrors.CategoryNotFound, "카테고리를 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Category deleted successfully",
	})
}
