package model

import (
	"time"
)

type AIHistoryType string // AI 생성 기록 구분

const (
	AITypeSNS   AIHistoryType = "sns"   // SNS 홍보 문구
	AITypeImage AIHistoryType = "image" // 이미지 생성
	AITypeTax   AIHistoryType = "tax"   // 세무 상담
	AITypeLabor AIHistoryType = "labor" // 노무 상담
	AITypeLegal AIHistoryType = "legal" // 법무 상담
)

// AIHistory AI 호출 감사 로그 (append-only)
type AIHistory struct {
	ID        uint          `gorm:"primarykey" json:"id"`                  // 기록 ID
	UserID    uint          `gorm:"not null;index" json:"user_id"`         // 요청 사용자 ID
	Type      AIHistoryType `gorm:"type:varchar(20);not null" json:"type"` // 구분
	Input     string        `gorm:"type:text" json:"input"`                // 입력 내용
	Output    string        `gorm:"type:text" json:"output"`               // 생성 결과
	CreatedAt time.Time     `gorm:"index" json:"created_at"`               // 기록 시각
}

func (AIHistory) TableName() string {
	return "ai_history"
}
