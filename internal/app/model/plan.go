package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList JSON 배열로 직렬화되는 문자열 목록 컬럼
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
}

// Plan 멤버십 상품 (가맹 플랜)
// Code는 랜딩페이지에서 쓰는 사람이 읽는 식별자 ('egg120' 등), PK와 별개의 유니크 속성
type Plan struct {
	ID           uint       `gorm:"primarykey" json:"id"`                    // 플랜 ID
	Code         string     `gorm:"uniqueIndex;not null" json:"code"`        // 플랜 코드 (예: egg120)
	Name         string     `gorm:"not null" json:"name"`                    // 플랜명
	Description  string     `gorm:"type:text" json:"description"`            // 설명
	Features     StringList `gorm:"type:text" json:"features"`               // 제공 기능 목록
	Commitment   string     `json:"commitment"`                              // 약정 기간 (예: 2년 약정)
	Price        string     `gorm:"not null" json:"price"`                   // 표시 가격
	Installments string     `json:"installments"`                            // 할부 안내
	Initial      string     `json:"initial"`                                 // 초기 비용 안내
	Image        string     `json:"image"`                                   // 이미지 URL
	StorageKey   string     `json:"storage_key,omitempty"`                   // 업로드 이미지 스토리지 키
	Color        string     `json:"color"`                                   // 테마 색상
	IsPremium    bool       `gorm:"default:false" json:"is_premium"`         // 프리미엄 여부
	// default:true를 붙이면 gorm이 false 생성을 INSERT에서 생략하므로 태그를 두지 않는다
	Active       bool       `gorm:"index" json:"active"`                     // 노출 여부
	CreatedAt    time.Time  `json:"created_at"`                              // 생성 시각
	UpdatedAt    time.Time  `json:"updated_at"`                              // 수정 시각
}

func (Plan) TableName() string {
	return "plans"
}
