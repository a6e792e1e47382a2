package model

import (
	"time"
)

type OrderStatus string // 발주 상태 코드

const (
	OrderStatusOrdered   OrderStatus = "ordered"   // 발주 접수
	OrderStatusShipping  OrderStatus = "shipping"  // 배송 중
	OrderStatusCompleted OrderStatus = "completed" // 배송 완료
	OrderStatusCancelled OrderStatus = "cancelled" // 발주 취소
)

// ValidOrderStatus reports whether s is one of the four persistable states.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusOrdered, OrderStatusShipping, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransition 허용되는 상태 전이 여부
// ordered→shipping|cancelled, shipping→completed|cancelled, 종결 상태는 변경 불가
// shipping→shipping 제자리 갱신은 배송 시작 후 운송장 번호를 붙이는 용도로 허용한다
func CanTransition(from, to OrderStatus) bool {
	switch from {
	case OrderStatusOrdered:
		return to == OrderStatusShipping || to == OrderStatusCancelled
	case OrderStatusShipping:
		return to == OrderStatusShipping || to == OrderStatusCompleted || to == OrderStatusCancelled
	}
	return false
}

// Order 식자재 발주
// Items는 주문 시점 장바구니의 JSON 스냅샷이며 생성 이후 서버가 다시 해석하지 않는다
type Order struct {
	ID             uint        `gorm:"primarykey" json:"id"`                              // 발주 ID
	UserID         uint        `gorm:"not null;index" json:"user_id"`                     // 발주자 ID
	Items          string      `gorm:"type:text;not null" json:"items"`                   // 품목 스냅샷 (JSON)
	TotalAmount    int         `gorm:"not null" json:"total_amount"`                      // 총 결제 금액 (배송비 포함)
	ShippingFee    int         `gorm:"not null" json:"shipping_fee"`                      // 배송비
	Status         OrderStatus `gorm:"type:varchar(20);default:'ordered'" json:"status"`  // 발주 상태
	TrackingNumber string      `json:"tracking_number"`                                   // 운송장 번호
	Recipient      string      `gorm:"not null" json:"recipient"`                         // 수령인
	Address        string      `gorm:"not null" json:"address"`                           // 배송지 주소
	Phone          string      `gorm:"not null" json:"phone"`                             // 연락처
	Message        string      `json:"message"`                                           // 배송 요청사항
	CreatedAt      time.Time   `gorm:"index" json:"created_at"`                           // 발주 시각
	UpdatedAt      time.Time   `json:"updated_at"`                                        // 수정 시각

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"` // 발주자 정보
}

func (Order) TableName() string {
	return "orders"
}

// OrderItemSnapshot 발주 생성 시 서버가 기록하는 품목 한 줄
// Order.Items에 직렬화되는 형태이며, 이후 카탈로그가 바뀌어도 갱신되지 않는다
type OrderItemSnapshot struct {
	IngredientID uint   `json:"id"`       // 품목 ID (참조용, 역참조 보장 없음)
	Name         string `json:"name"`     // 품목명
	Quantity     int    `json:"quantity"` // 수량
	Price        int    `json:"price"`    // 주문 시점 단가
	Unit         string `json:"unit"`     // 단위
}
