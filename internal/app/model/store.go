package model

import (
	"time"
)

type StoreStatus string // 가맹점 운영 상태

const (
	StoreStatusOperating  StoreStatus = "영업중"  // 영업중
	StoreStatusClosed     StoreStatus = "폐업"   // 폐업
	StoreStatusTerminated StoreStatus = "계약종료" // 계약종료
)

// ParseStoreStatus 자유 입력 문자열을 운영 상태로 매핑
// 인식할 수 없는 값은 영업중으로 처리한다 (스프레드시트 가져오기 기본값)
func ParseStoreStatus(s string) StoreStatus {
	switch StoreStatus(s) {
	case StoreStatusClosed:
		return StoreStatusClosed
	case StoreStatusTerminated:
		return StoreStatusTerminated
	}
	return StoreStatusOperating
}

// Store 가맹점 대장
// RegistrationDate는 zero-pad된 YYYY-MM-DD 문자열이라 사전순 비교가 날짜순과 일치한다
type Store struct {
	ID               uint        `gorm:"primarykey" json:"id"`                               // 가맹점 ID
	RegistrationDate string      `gorm:"not null;index" json:"registration_date"`            // 등록일 (YYYY-MM-DD)
	StoreName        string      `gorm:"not null" json:"store_name"`                         // 매장명
	OwnerName        string      `gorm:"not null" json:"owner_name"`                         // 점주명
	MobilePhone      string      `json:"mobile_phone"`                                       // 핸드폰
	StorePhone       string      `json:"store_phone"`                                        // 매장 전화
	Email            string      `json:"email"`                                              // 이메일
	Status           StoreStatus `gorm:"type:varchar(20);default:'영업중'" json:"status"`       // 운영 상태
	Address          string      `json:"address"`                                            // 주소
	DetailAddress    string      `json:"detail_address"`                                     // 상세주소
	Remarks          string      `gorm:"type:text" json:"remarks"`                           // 비고
	CreatedAt        time.Time   `json:"created_at"`                                         // 등록 시각 (2차 정렬 키)
}

func (Store) TableName() string {
	return "stores"
}
