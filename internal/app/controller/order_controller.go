package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cafe120/cafe120-backend/internal/app/model"
	"github.com/cafe120/cafe120-backend/internal/app/service"
	apperrors "github.com/cafe120/cafe120-backend/internal/errors"
	"github.com/cafe120/cafe120-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderService service.OrderService
}

func NewOrderController(orderService service.OrderService) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

// CreateOrderRequest 금액 필드는 받지 않는다. 합계는 서버가 계산한다.
type CreateOrderRequest struct {
	Items     []service.CartLine `json:"items" binding:"required"`
	Recipient string             `json:"recipient" binding:"required"`
	Address   string             `json:"address" binding:"required"`
	Phone     string             `json:"phone" binding:"required"`
	Message   string             `json:"message"`
}

type UpdateOrderStatusRequest struct {
	Status         string `json:"status" binding:"required"`
	TrackingNumber string `json:"tracking_number"`
}

// CreateOrder places an ingredient order for the signed-in franchise owner
// POST /api/v1/orders
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid order request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	order, err := ctrl.orderService.CreateOrder(userID, service.OrderInput{
		Lines:     req.Items,
		Recipient: req.Recipient,
		Address:   req.Address,
		Phone:     req.Phone,
		Message:   req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			apperrors.BadRequest(c, apperrors.OrderEmptyCart, "장바구니가 비어 있습니다")
		case errors.Is(err, service.ErrIngredientNotFound):
			apperrors.BadRequest(c, apperrors.IngredientNotFound, "주문할 수 없는 품목이 포함되어 있습니다")
		case errors.Is(err, service.ErrBelowMinQuantity):
			apperrors.BadRequest(c, apperrors.OrderBelowMinQuantity, err.Error())
		default:
			log.Error("Failed to create order", err, map[string]interface{}{
				"user_id": userID,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "order")
		}
		return
	}

	log.Info("Order created", map[string]interface{}{
		"order_id":     order.ID,
		"user_id":      userID,
		"total_amount": order.TotalAmount,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "발주가 접수되었습니다",
		"order":   order,
	})
}

// ListMyOrders returns the signed-in user's orders, newest first
// GET /api/v1/orders
func (ctrl *OrderController) ListMyOrders(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	orders, err := ctrl.orderService.ListMyOrders(userID)
	if err != nil {
		log.Error("Failed to list user orders", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "order")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

// ListAllOrders returns every order with orderer info, newest first
// GET /api/v1/admin/orders
func (ctrl *OrderController) ListAllOrders(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	orders, err := ctrl.orderService.ListAllOrders()
	if err != nil {
		log.Error("Failed to list all orders", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "order")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

// GetOrder returns one order. 일반 사용자는 자기 발주만 볼 수 있다.
// GET /api/v1/orders/:id
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 발주 ID입니다")
		return
	}

	order, err := ctrl.orderService.GetOrder(uint(id), userID, middleware.IsAdmin(c))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			apperrors.NotFound(c, apperrors.OrderNotFound, "발주 내역을 찾을 수 없습니다")
			return
		}
		if errors.Is(err, service.ErrOrderForbidden) {
			apperrors.Forbidden(c, "접근 권한이 없습니다")
			return
		}
		log.Error("Failed to get order", err, map[string]interface{}{
			"order_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "order")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order": order,
	})
}

// UpdateOrderStatus moves an order through the shipping workflow
// PATCH /api/v1/admin/orders/:id/status
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 발주 ID입니다")
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	order, err := ctrl.orderService.UpdateOrderStatus(uint(id), model.OrderStatus(req.Status), req.TrackingNumber)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			apperrors.NotFound(c, apperrors.OrderNotFound, "발주 내역을 찾을 수 없습니다")
		case errors.Is(err, service.ErrInvalidOrderStatus):
			apperrors.BadRequest(c, apperrors.OrderInvalidStatus, "잘못된 발주 상태입니다")
		case errors.Is(err, service.ErrInvalidTransition):
			apperrors.BadRequest(c, apperrors.OrderInvalidTransition, "허용되지 않는 상태 변경입니다")
		case errors.Is(err, service.ErrTrackingNumberTooEarly):
			apperrors.BadRequest(c, apperrors.OrderTrackingTooEarly, "운송장 번호는 배송 시작 후 입력할 수 있습니다")
		default:
			log.Error("Failed to update order status", err, map[string]interface{}{
				"order_id": id,
				"status":   req.Status,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "order")
		}
		return
	}

	log.Info("Order status updated", map[string]interface{}{
		"order_id": order.ID,
		"status":   order.Status,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully",
		"order":   order,
	})
}
