package model

import (
	"time"
)

type LeadStatus string // 상담 문의 처리 상태

const (
	LeadStatusPending   LeadStatus = "pending"   // 접수
	LeadStatusContacted LeadStatus = "contacted" // 연락 완료
	LeadStatusResolved  LeadStatus = "resolved"  // 처리 완료
)

// Lead 랜딩페이지 상담 신청
// PlanCode/PlanName은 접수 시점 스냅샷이며, 이후 플랜이 바뀌거나 삭제돼도 다시 조회하지 않는다
type Lead struct {
	ID           uint       `gorm:"primarykey" json:"id"`                              // 문의 ID
	PlanCode     string     `gorm:"not null;index" json:"plan_code"`                   // 신청 플랜 코드 (스냅샷)
	PlanName     string     `gorm:"not null" json:"plan_name"`                         // 신청 플랜명 (스냅샷)
	Name         string     `gorm:"not null" json:"name"`                              // 신청자 이름
	Phone        string     `gorm:"not null" json:"phone"`                             // 연락처
	Email        string     `json:"email"`                                             // 이메일
	BusinessName string     `json:"business_name"`                                     // 상호명
	Message      string     `gorm:"type:text" json:"message"`                          // 문의 내용
	Status       LeadStatus `gorm:"type:varchar(20);default:'pending'" json:"status"` // 처리 상태
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`                           // 접수 시각
}

func (Lead) TableName() string {
	return "leads"
}
