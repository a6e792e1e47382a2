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

type StoreController struct {
	storeService service.StoreService
}

func NewStoreController(storeService service.StoreService) *StoreController {
	return &StoreController{
		storeService: storeService,
	}
}

type CreateStoreRequest struct {
	RegistrationDate string `json:"registration_date" binding:"required"`
	StoreName        string `json:"store_name" binding:"required"`
	OwnerName        string `json:"owner_name" binding:"required"`
	MobilePhone      string `json:"mobile_phone"`
	StorePhone       string `json:"store_phone"`
	Email            string `json:"email"`
	Status           string `json:"status"`
	Address          string `json:"address"`
	DetailAddress    string `json:"detail_address"`
	Remarks          string `json:"remarks"`
}

type UpdateStoreRequest struct {
	RegistrationDate *string `json:"registration_date"`
	StoreName        *string `json:"store_name"`
	OwnerName        *string `json:"owner_name"`
	MobilePhone      *string `json:"mobile_phone"`
	StorePhone       *string `json:"store_phone"`
	Email            *string `json:"email"`
	Status           *string `json:"status"`
	Address          *string `json:"address"`
	DetailAddress    *string `json:"detail_address"`
	Remarks          *string `json:"remarks"`
}

type DeleteStoresRequest struct {
	IDs []uint `json:"ids" binding:"required"`
}

// ListStores returns the store roster, newest registration first
// GET /api/v1/stores
func (ctrl *StoreController) ListStores(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	stores, err := ctrl.storeService.ListStores()
	if err != nil {
		log.Error("Failed to list stores", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "store")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stores": stores,
		"count":  len(stores),
	})
}

// CreateStore registers a single store
// POST /api/v1/stores
func (ctrl *StoreController) CreateStore(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid store creation request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	store := &model.Store{
		RegistrationDate: req.RegistrationDate,
		StoreName:        req.StoreName,
		OwnerName:        req.OwnerName,
		MobilePhone:      req.MobilePhone,
		StorePhone:       req.StorePhone,
		Email:            req.Email,
		Status:           model.StoreStatus(req.Status),
		Address:          req.Address,
		DetailAddress:    req.DetailAddress,
		Remarks:          req.Remarks,
	}

	if err := ctrl.storeService.CreateStore(store); err != nil {
		if errors.Is(err, service.ErrStoreNameRequired) {
			apperrors.BadRequest(c, apperrors.ValidationRequired, "매장명은 필수입니다")
			return
		}
		log.Error("Failed to create store", err, map[string]interface{}{
			"store_name": req.StoreName,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "store")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Store created successfully",
		"store":   store,
	})
}

// UpdateStore edits a store record
// PATCH /api/v1/stores/:id
func (ctrl *StoreController) UpdateStore(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 가맹점 ID입니다")
		return
	}

	var req UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	store, err := ctrl.storeService.UpdateStore(uint(id), service.StoreUpdate{
		RegistrationDate: req.RegistrationDate,
		StoreName:        req.StoreName,
		OwnerName:        req.OwnerName,
		MobilePhone:      req.MobilePhone,
		StorePhone:       req.StorePhone,
		Email:            req.Email,
		Status:           req.Status,
		Address:          req.Address,
		DetailAddress:    req.DetailAddress,
		Remarks:          req.Remarks,
	})
	if err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			apperrors.NotFound(c, apperrors.StoreNotFound, "가맹점을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to update store", err, map[string]interface{}{
			"store_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "store")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Store updated successfully",
		"store":   store,
	})
}

// ImportStores bulk-registers stores from an uploaded xlsx roster
// POST /api/v1/stores/import (multipart field: file)
func (ctrl *StoreController) ImportStores(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		log.Warn("Store import without file", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationRequired, "업로드할 파일이 필요합니다")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error("Failed to open uploaded file", err, map[string]interface{}{
			"filename": fileHeader.Filename,
		})
		apperrors.InternalError(c, "파일을 읽을 수 없습니다")
		return
	}
	defer file.Close()

	summary, err := ctrl.storeService.ImportStores(file)
	if err != nil {
		log.Error("Store import failed", err, map[string]interface{}{
			"filename": fileHeader.Filename,
		})
		apperrors.BadRequest(c, apperrors.StoreInvalidSheet, "스프레드시트를 처리할 수 없습니다")
		return
	}

	log.Info("Store import completed", map[string]interface{}{
		"filename": fileHeader.Filename,
		"imported": summary.Imported,
		"skipped":  summary.Skipped,
	})

	c.JSON(http.StatusOK, gin.H{
		"message":  "Store import completed",
		"imported": summary.Imported,
		"skipped":  summary.Skipped,
	})
}

// DeleteStores removes stores by id list; missing ids are ignored
// DELETE /api/v1/stores
func (ctrl *StoreController) DeleteStores(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req DeleteStoresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	if err := ctrl.storeService.DeleteStores(req.IDs); err != nil {
		log.Error("Failed to delete stores", err, map[string]interface{}{
			"count": len(req.IDs),
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "store")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Stores deleted successfully",
	})
}
