package model

import (
	"time"
)

// 관리자 화면에서 편집하는 설정 키
const (
	ConfigKeyAIProvider   = "ai_provider"    // "google" | "openai"
	ConfigKeyOpenAIAPIKey = "openai_api_key" // OpenAI API 키
	ConfigKeyGeminiAPIKey = "gemini_api_key" // Gemini API 키
)

// Config 관리자 설정 키-값 저장소
type Config struct {
	ID        uint      `gorm:"primarykey" json:"id"`            // 설정 ID
	Key       string    `gorm:"uniqueIndex;not null" json:"key"` // 설정 키
	Value     string    `gorm:"type:text" json:"value"`          // 설정 값
	UpdatedAt time.Time `json:"updated_at"`                      // 수정 시각
}

func (Config) TableName() string {
	return "configs"
}
