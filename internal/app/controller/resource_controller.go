package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cafe120/cafe120-backend/internal/app/model"
	"github.com/cafe120/cafe120-backend/internal/app/service"
	apperrors "github.com/cafe120/cafe120-backend/internal/errors"
	"github.com/cafe120/cafe120-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ResourceController 가맹점 자료실 API
type ResourceController struct {
	resourceService service.ResourceService
}

func NewResourceController(resourceService service.ResourceService) *ResourceController {
	return &ResourceController{
		resourceService: resourceService,
	}
}

type CreateResourceRequest struct {
	Title               string `json:"title" binding:"required"`
	Description         string `json:"description"`
	Type                string `json:"type" binding:"required"`
	FileURL             string `json:"file_url"`
	FileStorageKey      string `json:"file_storage_key"`
	ThumbnailURL        string `json:"thumbnail_url"`
	ThumbnailStorageKey string `json:"thumbnail_storage_key"`
}

type UpdateResourceRequest struct {
	Title               *string `json:"title"`
	Description         *string `json:"description"`
	Type                *string `json:"type"`
	FileURL             *string `json:"file_url"`
	FileStorageKey      *string `json:"file_storage_key"`
	ThumbnailURL        *string `json:"thumbnail_url"`
	ThumbnailStorageKey *string `json:"thumbnail_storage_key"`
}

// ListResources returns library items, newest first
// GET /api/v1/resources?type=
func (ctrl *ResourceController) ListResources(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	resourceType := c.Query("type")
	resources, err := ctrl.resourceService.ListResources(resourceType)
	if err != nil {
		if errors.Is(err, service.ErrInvalidResourceType) {
			apperrors.BadRequest(c, apperrors.LibraryInvalidType, "잘못된 자료 유형입니다")
			return
		}
		log.Error("Failed to list resources", err, map[string]interface{}{
			"type": resourceType,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "resource")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"resources": resources,
		"count":     len(resources),
	})
}

// CreateResource adds a library item
// POST /api/v1/resources
func (ctrl *ResourceController) CreateResource(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid resource creation request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	resource := &model.Resource{
		Title:               req.Title,
		Description:         req.Description,
		Type:                model.ResourceType(req.Type),
		FileURL:             req.FileURL,
		FileStorageKey:      req.FileStorageKey,
		ThumbnailURL:        req.ThumbnailURL,
		ThumbnailStorageKey: req.ThumbnailStorageKey,
	}

	if err := ctrl.resourceService.CreateResource(resource); err != nil {
		if errors.Is(err, service.ErrInvalidResourceType) {
			apperrors.BadRequest(c, apperrors.LibraryInvalidType, "잘못된 자료 유형입니다")
			return
		}
		if errors.Is(err, service.ErrResourceIncomplete) {
			apperrors.BadRequest(c, apperrors.ValidationRequired, "제목과 파일은 필수입니다")
			return
		}
		log.Error("Failed to create resource", err, map[string]interface{}{
			"title": req.Title,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "resource")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Resource created successfully",
		"resource": resource,
	})
}

// UpdateResource edits a library item
// PATCH /api/v1/resources/:id
func (ctrl *ResourceController) UpdateResource(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 자료 ID입니다")
		return
	}

	var req UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	update := service.ResourceUpdate{
		Title:               req.Title,
		Description:         req.Description,
		FileURL:             req.FileURL,
		FileStorageKey:      req.FileStorageKey,
		ThumbnailURL:        req.ThumbnailURL,
		ThumbnailStorageKey: req.ThumbnailStorageKey,
	}
	if req.Type != nil {
		resourceType := model.ResourceType(*req.Type)
		update.Type = &resourceType
	}

	resource, err := ctrl.resourceService.UpdateResource(uint(id), update)
	if err != nil {
		if errors.Is(err, service.ErrResourceNotFound) {
			apperrors.NotFound(c, apperrors.LibraryNotFound, "자료를 찾을 수 없습니다")
			return
		}
		if errors.Is(err, service.ErrInvalidResourceType) {
			apperrors.BadRequest(c, apperrors.LibraryInvalidType, "잘못된 자료 유형입니다")
			return
		}
		log.Error("Failed to update resource", err, map[string]interface{}{
			"resource_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "resource")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Resource updated successfully",
		"resource": resource,
	})
}

// DeleteResource removes a library item and its stored blobs
// DELETE /api/v1/resources/:id
func (ctrl *ResourceController) DeleteResource(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 자료 ID입니다")
		return
	}

	if err := ctrl.resourceService.DeleteResource(uint(id)); err != nil {
		if errors.Is(err, service.ErrResourceNotFound) {
			apperrors.NotFound(c, apperrors.LibraryNotFound, "자료를 찾을 수 없습니다")
			return
		}
		log.Error("Failed to delete resource", err, map[string]interface{}{
			"resource_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "resource")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Resource deleted successfully",
	})
}
