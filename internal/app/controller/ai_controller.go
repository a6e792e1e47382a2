package controller

import (
	"errors"
	"net/http"

	"github.com/cafe120/cafe120-backend/internal/app/service"
	apperrors "github.com/cafe120/cafe120-backend/internal/errors"
	"github.com/cafe120/cafe120-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AIController 가맹점주용 AI 콘텐츠 생성 API
type AIController struct {
	aiService service.AIService
}

func NewAIController(aiService service.AIService) *AIController {
	return &AIController{
		aiService: aiService,
	}
}

type GenerateSNSRequest struct {
	StoreName string   `json:"store_name"`
	Product   string   `json:"product" binding:"required"`
	Tone      string   `json:"tone"`
	Keywords  []string `json:"keywords"`
}

type ConsultRequest struct {
	Topic    string `json:"topic" binding:"required"` // tax | labor | legal
	Question string `json:"question" binding:"required"`
}

type GenerateImageRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type GenerateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

func (ctrl *AIController) respondAIError(c *gin.Context, err error) {
	log := middleware.GetLoggerFromContext(c)

	switch {
	case errors.Is(err, service.ErrMissingAPIKey):
		apperrors.RespondWithError(c, http.StatusServiceUnavailable, apperrors.AIMissingCredential, "AI API 키가 설정되지 않았습니다. 관리자에게 문의하세요")
	case errors.Is(err, service.ErrInvalidProvider):
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.AIInvalidProvider, "알 수 없는 AI 제공자입니다")
	case errors.Is(err, service.ErrInvalidConsultTopic):
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "상담 주제는 tax, labor, legal 중 하나여야 합니다")
	case errors.Is(err, service.ErrEmptyPrompt):
		apperrors.BadRequest(c, apperrors.ValidationRequired, "생성할 내용을 입력해주세요")
	default:
		// 외부 API 오류 메시지는 그대로 노출 (관리자가 원인을 파악할 수 있게)
		log.Error("AI generation failed", err, nil)
		apperrors.RespondWithError(c, http.StatusBadGateway, apperrors.AIProviderError, err.Error())
	}
}

// GenerateSNS creates marketing copy for the owner's store
// POST /api/v1/ai/sns
func (ctrl *AIController) GenerateSNS(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	var req GenerateSNSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	output, err := ctrl.aiService.GenerateSNS(userID, service.SNSInput{
		StoreName: req.StoreName,
		Product:   req.Product,
		Tone:      req.Tone,
		Keywords:  req.Keywords,
	})
	if err != nil {
		ctrl.respondAIError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": output,
	})
}

// Consult answers tax, labor or legal questions
// POST /api/v1/ai/consult
func (ctrl *AIController) Consult(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	var req ConsultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	output, err := ctrl.aiService.Consult(userID, req.Topic, req.Question)
	if err != nil {
		ctrl.respondAIError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": output,
	})
}

// GenerateImage creates a promotional image, returned as URL or data URL
// POST /api/v1/ai/image
func (ctrl *AIController) GenerateImage(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	var req GenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	output, err := ctrl.aiService.GenerateImage(userID, req.Prompt)
	if err != nil {
		ctrl.respondAIError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": output,
	})
}

// Generate runs a free-form generation request
// POST /api/v1/ai/generate
func (ctrl *AIController) Generate(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	output, err := ctrl.aiService.Generate(userID, req.Prompt)
	if err != nil {
		ctrl.respondAIError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": output,
	})
}

// History returns the caller's generation history, newest first
// GET /api/v1/ai/history?type=
func (ctrl *AIController) History(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	histories, err := ctrl.aiService.History(userID, c.Query("type"))
	if err != nil {
		log.Error("Failed to list AI history", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"history": histories,
		"count":   len(histories),
	})
}
