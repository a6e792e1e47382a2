package service

import (
	"errors"

	"github.com/cafe120/cafe120-backend/internal/app/model"
	"github.com/cafe120/cafe120-backend/internal/app/repository"
	"github.com/cafe120/cafe120-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrLeadNameRequired  = errors.New("lead name is required")
	ErrLeadPhoneRequired = errors.New("lead phone is required")
	ErrInvalidLeadStatus = errors.New("invalid lead status")
)

type LeadInput struct {
	PlanCode     string
	PlanName     string // 플랜이 카탈로그에서 사라진 경우에만 스냅샷으로 쓰인다
	Name         string
	Phone        string
	Email        string
	BusinessName string
	Message      string
}

type LeadService interface {
	SubmitLead(input LeadInput) (*model.Lead, error)
	ListLeads() ([]model.Lead, error)
	UpdateLeadStatus(id uint, status model.LeadStatus) (*model.Lead, error)
}

type leadService struct {
	leadRepo repository.LeadRepository
	planRepo repository.PlanRepository
}

func NewLeadService(leadRepo repository.LeadRepository, planRepo repository.PlanRepository) LeadService {
	return &leadService{leadRepo: leadRepo, planRepo: planRepo}
}

// SubmitLead 접수 시점의 플랜명을 스냅샷으로 기록한다
// 이후 플랜이 수정되거나 삭제돼도 문의 기록은 그대로 남는다
// 플랜 코드가 더 이상 조회되지 않아도 접수 자체는 거절하지 않는다 (랜딩페이지 유입은 버리지 않는다)
func (s *leadService) SubmitLead(input LeadInput) (*model.Lead, error) {
	if input.Name == "" {
		return nil, ErrLeadNameRequired
	}
	if input.Phone == "" {
		return nil, ErrLeadPhoneRequired
	}

	planName := input.PlanName
	plan, err := s.planRepo.FindByCode(input.PlanCode)
	switch {
	case err == nil:
		planName = plan.Name
	case errors.Is(err, gorm.ErrRecordNotFound):
		logger.Warn("Lead submission for unknown plan, keeping submitted snapshot", map[string]interface{}{
			"plan_code": input.PlanCode,
		})
		if planName == "" {
			planName = input.PlanCode
		}
	default:
		return nil, err
	}

	lead := &model.Lead{
		PlanCode:     input.PlanCode,
		PlanName:     planName,
		Name:         input.Name,
		Phone:        input.Phone,
		Email:        input.Email,
		BusinessName: input.BusinessName,
		Message:      input.Message,
		Status:       model.LeadStatusPending,
	}

	if err := s.leadRepo.Create(lead); err != nil {
		return nil, err
	}

	logger.Info("Lead submitted", map[string]interface{}{
		"lead_id":   lead.ID,
		"plan_code": lead.PlanCode,
	})

	return lead, nil
}

func (s *leadService) ListLeads() ([]model.Lead, error) {
	return s.leadRepo.FindAll()
}

func (s *leadService) UpdateLeadStatus(id uint, status model.LeadStatus) (*model.Lead, error) {
	switch status {
	case model.LeadStatusPending, model.LeadStatusContacted, model.LeadStatusResolved:
	default:
		return nil, ErrInvalidLeadStatus
	}

	lead, err := s.leadRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}

	lead.Status = status
	if err := s.leadRepo.Update(lead); err != nil {
		return nil, err
	}

	logger.Info("Lead status updated", map[string]interface{}{
		"lead_id": lead.ID,
		"status":  lead.Status,
	})

	return lead, nil
}
