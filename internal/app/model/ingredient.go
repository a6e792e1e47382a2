package model

import (
	"time"
)

// DefaultIngredientOrder 신규 품목의 노출 순서 기본값 (목록 맨 뒤로 보냄)
const DefaultIngredientOrder = 9999

// Ingredient 식자재 발주 품목
type Ingredient struct {
	ID          uint      `gorm:"primarykey" json:"id"`             // 품목 ID
	Category    string    `gorm:"not null;index" json:"category"`   // 카테고리명
	Name        string    `gorm:"not null" json:"name"`             // 품목명
	Price       int       `gorm:"not null" json:"price"`            // 단가 (원)
	Thumbnail   string    `json:"thumbnail"`                        // 썸네일 URL
	DetailImage string    `json:"detail_image"`                     // 상세 이미지 URL
	Unit        string    `gorm:"not null" json:"unit"`             // 단위 (kg, Box, ea)
	MinQuantity int       `gorm:"default:1" json:"min_quantity"`    // 최소 주문 수량
	ShippingFee int       `gorm:"default:0" json:"shipping_fee"`    // 배송비 (원)
	// gorm은 default 태그가 붙은 bool의 false를 INSERT에서 생략하므로 태그를 두지 않는다
	Active      bool      `gorm:"index" json:"active"`              // 판매 여부
	SortOrder   int       `gorm:"default:9999" json:"order"`        // 관리자 지정 노출 순서
	StorageKey  string    `json:"storage_key,omitempty"`            // 업로드 썸네일 스토리지 키
	CreatedAt   time.Time `json:"created_at"`                       // 생성 시각
	UpdatedAt   time.Time `json:"updated_at"`                       // 수정 시각
}

func (Ingredient) TableName() string {
	return "ingredients"
}

// IngredientCategory 식자재 카테고리
// 삭제해도 해당 카테고리를 참조하는 품목은 남는다 (원본 동작)
type IngredientCategory struct {
	ID        uint      `gorm:"primarykey" json:"id"` // 카테고리 ID
	Name      string    `gorm:"not null" json:"name"` // 카테고리명
	SortOrder int       `gorm:"not null" json:"order"` // 노출 순서
	CreatedAt time.Time `json:"created_at"`           // 생성 시각
}

func (IngredientCategory) TableName() string {
	return "ingredient_categories"
}
