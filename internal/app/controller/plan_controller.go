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

type PlanController struct {
	planService service.PlanService
}

func NewPlanController(planService service.PlanService) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

type CreatePlanRequest struct {
	Code         string   `json:"code" binding:"required"`
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Commitment   string   `json:"commitment"`
	Price        string   `json:"price" binding:"required"`
	Installments string   `json:"installments"`
	Initial      string   `json:"initial"`
	Image        string   `json:"image"`
	StorageKey   string   `json:"storage_key"`
	Color        string   `json:"color"`
	IsPremium    bool     `json:"is_premium"`
	Active       *bool    `json:"active"` // 생략 시 노출로 등록
}

type UpdatePlanRequest struct {
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	Features     *[]string `json:"features"`
	Commitment   *string   `json:"commitment"`
	Price        *string   `json:"price"`
	Installments *string   `json:"installments"`
	Initial      *string   `json:"initial"`
	Image        *string   `json:"image"`
	StorageKey   *string   `json:"storage_key"`
	Color        *string   `json:"color"`
	IsPremium    *bool     `json:"is_premium"`
	Active       *bool     `json:"active"`
}

// ListPlans returns the membership plan catalog
// GET /api/v1/plans
// 관리자는 비노출 플랜까지 본다
func (ctrl *PlanController) ListPlans(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	activeOnly := !middleware.IsAdmin(c)
	plans, err := ctrl.planService.ListPlans(activeOnly)
	if err != nil {
		log.Error("Failed to list plans", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "plan")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"plans": plans,
		"count": len(plans),
	})
}

// CreatePlan adds a membership plan
// POST /api/v1/plans
func (ctrl *PlanController) CreatePlan(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid plan creation request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	plan := &model.Plan{
		Code:         req.Code,
		Name:         req.Name,
		Description:  req.Description,
		Features:     model.StringList(req.Features),
		Commitment:   req.Commitment,
		Price:        req.Price,
		Installments: req.Installments,
		Initial:      req.Initial,
		Image:        req.Image,
		StorageKey:   req.StorageKey,
		Color:        req.Color,
		IsPremium:    req.IsPremium,
		Active:       req.Active == nil || *req.Active,
	}

	if err := ctrl.planService.CreatePlan(plan); err != nil {
		if errors.Is(err, service.ErrPlanCodeExists) {
			apperrors.Conflict(c, apperrors.PlanCodeExists, "이미 사용 중인 플랜 코드입니다")
			return
		}
		if errors.Is(err, service.ErrPlanCodeRequired) ||
			errors.Is(err, service.ErrPlanNameRequired) ||
			errors.Is(err, service.ErrPlanPriceRequired) {
			apperrors.BadRequest(c, apperrors.ValidationRequired, "플랜 코드, 이름, 가격은 필수입니다")
			return
		}
		log.Error("Failed to create plan", err, map[string]interface{}{
			"code": req.Code,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "plan")
		return
	}

	log.Info("Plan created", map[string]interface{}{
		"plan_id": plan.ID,
		"code":    plan.Code,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Plan created successfully",
		"plan":    plan,
	})
}

// UpdatePlan edits a membership plan by row id
// PATCH /api/v1/plans/:id
func (ctrl *PlanController) UpdatePlan(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 플랜 ID입니다")
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid plan update request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	update := service.PlanUpdate{
		Name:         req.Name,
		Description:  req.Description,
		Commitment:   req.Commitment,
		Price:        req.Price,
		Installments: req.Installments,
		Initial:      req.Initial,
		Image:        req.Image,
		StorageKey:   req.StorageKey,
		Color:        req.Color,
		IsPremium:    req.IsPremium,
		Active:       req.Active,
	}
	if req.Features != nil {
		features := model.StringList(*req.Features)
		update.Features = &features
	}

	plan, err := ctrl.planService.UpdatePlan(uint(id), update)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			apperrors.NotFound(c, apperrors.PlanNotFound, "플랜을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to update plan", err, map[string]interface{}{
			"plan_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "plan")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Plan updated successfully",
		"plan":    plan,
	})
}

// DeletePlan removes a plan; deleting a missing plan is a no-op
// DELETE /api/v1/plans/:id
func (ctrl *PlanController) DeletePlan(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 플랜 ID입니다")
		return
	}

	if err := ctrl.planService.DeletePlan(uint(id)); err != nil {
		log.Error("Failed to delete plan", err, map[string]interface{}{
			"plan_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "plan")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Plan deleted successfully",
	})
}
