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
	ErrPlanNotFound      = errors.New("plan not found")
	ErrPlanCodeExists    = errors.New("plan code already exists")
	ErrPlanCodeRequired  = errors.New("plan code is required")
	ErrPlanNameRequired  = errors.New("plan name is required")
	ErrPlanPriceRequired = errors.New("plan price is required")
)

// PlanUpdate 수정 가능한 필드 (nil이면 변경 없음)
type PlanUpdate struct {
	Name         *string
	Description  *string
	Features     *model.StringList
	Commitment   *string
	Price        *string
	Installments *string
	Initial      *string
	Image        *string
	StorageKey   *string
	Color        *string
	IsPremium    *bool
	Active       *bool
}

type PlanService interface {
	ListPlans(activeOnly bool) ([]model.Plan, error)
	GetPlanByID(id uint) (*model.Plan, error)
	CreatePlan(plan *model.Plan) error
	UpdatePlan(id uint, update PlanUpdate) (*model.Plan, error)
	DeletePlan(id uint) error
}

type planService struct {
	planRepo repository.PlanRepository
	blobs    storage.BlobStorage
}

func NewPlanService(planRepo repository.PlanRepository, blobs storage.BlobStorage) PlanService {
	return &planService{planRepo: planRepo, blobs: blobs}
}

// ListPlans 스토리지 키가 있는 플랜은 이미지 URL을 키에서 다시 계산해 돌려준다
func (s *planService) ListPlans(activeOnly bool) ([]model.Plan, error) {
	plans, err := s.planRepo.FindAll()
	if err != nil {
		return nil, err
	}

	result := make([]model.Plan, 0, len(plans))
	for _, plan := range plans {
		if activeOnly && !plan.Active {
			continue
		}
		s.resolveImage(&plan)
		result = append(result, plan)
	}
	return result, nil
}

func (s *planService) GetPlanByID(id uint) (*model.Plan, error) {
	plan, err := s.planRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	s.resolveImage(plan)
	return plan, nil
}

func (s *planService) CreatePlan(plan *model.Plan) error {
	if plan.Code == "" {
		return ErrPlanCodeRequired
	}
	if plan.Name == "" {
		return ErrPlanNameRequired
	}
	if plan.Price == "" {
		return ErrPlanPriceRequired
	}

	existing, err := s.planRepo.FindByCode(plan.Code)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		logger.Warn("Plan creation failed: code already exists", map[string]interface{}{
			"code": plan.Code,
		})
		return ErrPlanCodeExists
	}

	return s.planRepo.Create(plan)
}

// UpdatePlan 존재하지 않는 id 수정은 에러
func (s *planService) UpdatePlan(id uint, update PlanUpdate) (*model.Plan, error) {
	plan, err := s.planRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	if update.Name != nil {
		plan.Name = *update.Name
	}
	if update.Description != nil {
		plan.Description = *update.Description
	}
	if update.Features != nil {
		plan.Features = *update.Features
	}
	if update.Commitment != nil {
		plan.Commitment = *update.Commitment
	}
	if update.Price != nil {
		plan.Price = *update.Price
	}
	if update.Installments != nil {
		plan.Installments = *update.Installments
	}
	if update.Initial != nil {
		plan.Initial = *update.Initial
	}
	if update.Image != nil {
		plan.Image = *update.Image
	}
	if update.StorageKey != nil {
		plan.StorageKey = *update.StorageKey
	}
	if update.Color != nil {
		plan.Color = *update.Color
	}
	if update.IsPremium != nil {
		plan.IsPremium = *update.IsPremium
	}
	if update.Active != nil {
		plan.Active = *update.Active
	}

	if err := s.planRepo.Update(plan); err != nil {
		return nil, err
	}

	logger.Info("Plan updated successfully", map[string]interface{}{
		"plan_id": plan.ID,
		"code":    plan.Code,
	})

	s.resolveImage(plan)
	return plan, nil
}

// DeletePlan 존재하지 않는 id 삭제는 no-op
func (s *planService) DeletePlan(id uint) error {
	_, err := s.planRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return s.planRepo.Delete(id)
}

func (s *planService) resolveImage(plan *model.Plan) {
	if plan.StorageKey != "" && s.blobs != nil {
		plan.Image = s.blobs.URL(plan.StorageKey)
	}
}
