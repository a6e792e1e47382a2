package model

import (
	"time"
)

type ResourceType string // 자료 유형

const (
	ResourceTypeImage ResourceType = "image" // 이미지
	ResourceTypeVideo ResourceType = "video" // 영상
	ResourceTypeFile  ResourceType = "file"  // 일반 파일
)

// ValidResourceType reports whether t is a known resource type.
func ValidResourceType(t ResourceType) bool {
	switch t {
	case ResourceTypeImage, ResourceTypeVideo, ResourceTypeFile:
		return true
	}
	return false
}

// Resource 가맹점용 자료실 항목
// 스토리지 키가 있으면 삭제 시 블롭도 함께 지워야 한다
type Resource struct {
	ID                  uint         `gorm:"primarykey" json:"id"`                   // 자료 ID
	Title               string       `gorm:"not null" json:"title"`                  // 제목
	Description         string       `gorm:"type:text" json:"description"`           // 설명
	Type                ResourceType `gorm:"type:varchar(20);not null" json:"type"`  // 유형
	FileURL             string       `gorm:"not null" json:"file_url"`               // 파일 URL
	FileStorageKey      string       `json:"file_storage_key,omitempty"`             // 파일 스토리지 키
	ThumbnailURL        string       `json:"thumbnail_url"`                          // 썸네일 URL
	ThumbnailStorageKey string       `json:"thumbnail_storage_key,omitempty"`        // 썸네일 스토리지 키
	CreatedAt           time.Time    `gorm:"index" json:"created_at"`                // 등록 시각
}

func (Resource) TableName() string {
	return "resources"
}
