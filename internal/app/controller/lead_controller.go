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

type LeadController struct {
	leadService service.LeadService
}

func NewLeadController(leadService service.LeadService) *LeadController {
	return &LeadController{
		leadService: leadService,
	}
}

type SubmitLeadRequest struct {
	PlanCode     string `json:"plan_code" binding:"required"`
	PlanName     string `json:"plan_name"` // 클라이언트 표시용 스냅샷, 플랜 미조회 시 대체값
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email"`
	BusinessName string `json:"business_name"`
	Message      string `json:"message"`
}

type UpdateLeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SubmitLead accepts a consultation request from the landing page
// POST /api/v1/leads
func (ctrl *LeadController) SubmitLead(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req SubmitLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid lead submission", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	lead, err := ctrl.leadService.SubmitLead(service.LeadInput{
		PlanCode:     req.PlanCode,
		PlanName:     req.PlanName,
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		BusinessName: req.BusinessName,
		Message:      req.Message,
	})
	if err != nil {
		log.Error("Failed to submit lead", err, map[string]interface{}{
			"plan_code": req.PlanCode,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "plan")
		return
	}

	log.Info("Lead submitted", map[string]interface{}{
		"lead_id":   lead.ID,
		"plan_code": lead.PlanCode,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "상담 신청이 접수되었습니다",
		"lead":    lead,
	})
}

// ListLeads returns all consultation requests, newest first
// GET /api/v1/leads
func (ctrl *LeadController) ListLeads(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	leads, err := ctrl.leadService.ListLeads()
	if err != nil {
		log.Error("Failed to list leads", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leads": leads,
		"count": len(leads),
	})
}

// UpdateLeadStatus changes the handling status of a lead
// PATCH /api/v1/leads/:id/status
func (ctrl *LeadController) UpdateLeadStatus(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 문의 ID입니다")
		return
	}

	var req UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	lead, err := ctrl.leadService.UpdateLeadStatus(uint(id), model.LeadStatus(req.Status))
	if err != nil {
		if errors.Is(err, service.ErrLeadNotFound) {
			apperrors.NotFound(c, apperrors.LeadNotFound, "문의를 찾을 수 없습니다")
			return
		}
		if errors.Is(err, service.ErrInvalidLeadStatus) {
			apperrors.BadRequest(c, apperrors.LeadInvalidStatus, "잘못된 처리 상태입니다")
			return
		}
		log.Error("Failed to update lead status", err, map[string]interface{}{
			"lead_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Lead status updated successfully",
		"lead":    lead,
	})
}
