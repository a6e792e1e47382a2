package controller

import (
	"net/http"

	"github.com/cafe120/cafe120-backend/internal/app/service"
	apperrors "github.com/cafe120/cafe120-backend/internal/errors"
	"github.com/cafe120/cafe120-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ConfigController 관리자 설정 API
type ConfigController struct {
	configService service.ConfigService
}

func NewConfigController(configService service.ConfigService) *ConfigController {
	return &ConfigController{
		configService: configService,
	}
}

type SetConfigRequest struct {
	Value string `json:"value"`
}

// ListConfigs returns all config entries
// GET /api/v1/admin/configs
func (ctrl *ConfigController) ListConfigs(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	configs, err := ctrl.configService.List()
	if err != nil {
		log.Error("Failed to list configs", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"configs": configs,
		"count":   len(configs),
	})
}

// GetConfig returns one config value from the cache
// GET /api/v1/admin/configs/:key
func (ctrl *ConfigController) GetConfig(c *gin.Context) {
	key := c.Param("key")

	value, ok := ctrl.configService.Lookup(key)
	if !ok {
		apperrors.NotFound(c, apperrors.ConfigNotFound, "설정을 찾을 수 없습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"key":   key,
		"value": value,
	})
}

// SetConfig upserts one config entry and writes through the cache
// PUT /api/v1/admin/configs/:key
func (ctrl *ConfigController) SetConfig(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	key := c.Param("key")

	var req SetConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	if err := ctrl.configService.Set(key, req.Value); err != nil {
		log.Error("Failed to set config", err, map[string]interface{}{
			"key": key,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Config updated successfully",
		"key":     key,
		"value":   req.Value,
	})
}
