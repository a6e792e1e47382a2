package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cafe120/cafe120-backend/internal/app/model"
	"github.com/cafe120/cafe120-backend/internal/app/repository"
	"github.com/cafe120/cafe120-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrEmptyCart              = errors.New("cart is empty")
	ErrInvalidOrderStatus     = errors.New("invalid order status")
	ErrInvalidTransition      = errors.New("order status transition not allowed")
	ErrTrackingNumberTooEarly = errors.New("tracking number requires shipping status")
	ErrOrderForbidden         = errors.New("order belongs to another user")
	ErrBelowMinQuantity       = errors.New("quantity below minimum")
)

// CartLine 발주 요청의 품목 한 줄. 수량만 받고 가격은 서버가 결정한다.
type CartLine struct {
	IngredientID uint `json:"ingredient_id" binding:"required"`
	Quantity     int  `json:"quantity" binding:"required,min=1"`
}

type OrderInput struct {
	Lines     []CartLine
	Recipient string
	Address   string
	Phone     string
	Message   string
}

type OrderService interface {
	CreateOrder(userID uint, input OrderInput) (*model.Order, error)
	ListMyOrders(userID uint) ([]model.Order, error)
	ListAllOrders() ([]model.Order, error)
	GetOrder(id, requesterID uint, isAdmin bool) (*model.Order, error)
	UpdateOrderStatus(id uint, status model.OrderStatus, trackingNumber string) (*model.Order, error)
}

type orderService struct {
	orderRepo      repository.OrderRepository
	ingredientRepo repository.IngredientRepository
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	ingredientRepo repository.IngredientRepository,
) OrderService {
	return &orderService{
		orderRepo:      orderRepo,
		ingredientRepo: ingredientRepo,
	}
}

// CreateOrder 금액은 전부 서버가 카탈로그 행 기준으로 계산한다.
// 클라이언트가 보낸 합계는 무시하고, 배송비는 품목별 배송비의 최댓값 하나만 부과한다.
func (s *orderService) CreateOrder(userID uint, input OrderInput) (*model.Order, error) {
	if len(input.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	ids := make([]uint, 0, len(input.Lines))
	for _, line := range input.Lines {
		ids = append(ids, line.IngredientID)
	}

	ingredients, err := s.ingredientRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]model.Ingredient, len(ingredients))
	for _, ing := range ingredients {
		byID[ing.ID] = ing
	}

	var (
		total       int
		shippingFee int
		snapshots   []model.OrderItemSnapshot
	)

	for _, line := range input.Lines {
		ing, ok := byID[line.IngredientID]
		if !ok || !ing.Active {
			return nil, fmt.Errorf("%w: id %d", ErrIngredientNotFound, line.IngredientID)
		}
		if line.Quantity < ing.MinQuantity {
			return nil, fmt.Errorf("%w: %s 최소 주문 수량은 %d입니다 (요청 %d)",
				ErrBelowMinQuantity, ing.Name, ing.MinQuantity, line.Quantity)
		}

		total += ing.Price * line.Quantity
		if ing.ShippingFee > shippingFee {
			shippingFee = ing.ShippingFee
		}

		snapshots = append(snapshots, model.OrderItemSnapshot{
			IngredientID: ing.ID,
			Name:         ing.Name,
			Quantity:     line.Quantity,
			Price:        ing.Price,
			Unit:         ing.Unit,
		})
	}

	itemsJSON, err := json.Marshal(snapshots)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		UserID:      userID,
		Items:       string(itemsJSON),
		TotalAmount: total + shippingFee,
		ShippingFee: shippingFee,
		Status:      model.OrderStatusOrdered,
		Recipient:   input.Recipient,
		Address:     input.Address,
		Phone:       input.Phone,
		Message:     input.Message,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	logger.Info("Order created", map[string]interface{}{
		"order_id":     order.ID,
		"user_id":      userID,
		"total_amount": order.TotalAmount,
		"shipping_fee": order.ShippingFee,
		"items":        len(snapshots),
	})

	return order, nil
}

func (s *orderService) ListMyOrders(userID uint) ([]model.Order, error) {
	return s.orderRepo.FindByUserID(userID)
}

func (s *orderService) ListAllOrders() ([]model.Order, error) {
	return s.orderRepo.FindAll()
}

func (s *orderService) GetOrder(id, requesterID uint, isAdmin bool) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if !isAdmin && order.UserID != requesterID {
		return nil, ErrOrderForbidden
	}
	return order, nil
}

// UpdateOrderStatus 전이 테이블을 강제한다. 운송장 번호는 배송 시작 이후에만 받는다.
func (s *orderService) UpdateOrderStatus(id uint, status model.OrderStatus, trackingNumber string) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}

	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if !model.CanTransition(order.Status, status) {
		logger.Warn("Order status transition rejected", map[string]interface{}{
			"order_id": order.ID,
			"from":     order.Status,
			"to":       status,
		})
		return nil, ErrInvalidTransition
	}

	if trackingNumber != "" {
		if status != model.OrderStatusShipping && status != model.OrderStatusCompleted {
			return nil, ErrTrackingNumberTooEarly
		}
		order.TrackingNumber = trackingNumber
	}

	order.Status = status
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	logger.Info("Order status updated", map[string]interface{}{
		"order_id": order.ID,
		"status":   order.Status,
	})

	return order, nil
}
