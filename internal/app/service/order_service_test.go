package service

import (
	"encoding/json"
	"testing"

	"github.com/cafe120/cafe120-backend/internal/app/model"
	"github.com/cafe120/cafe120-backend/internal/app/repository"
	"github.com/cafe120/cafe120-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (OrderService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	orderRepo := repository.NewOrderRepository(testDB)
	ingredientRepo := repository.NewIngredientRepository(testDB)
	return NewOrderService(orderRepo, ingredientRepo), testDB
}

func seedIngredient(t *testing.T, testDB *gorm.DB, ing model.Ingredient) model.Ingredient {
	require.NoError(t, testDB.Create(&ing).Error)
	return ing
}

func TestOrderService_CreateOrder_ServerComputesTotals(t *testing.T) {
	orderService, testDB := setupOrderServiceTest(t)

	beans := seedIngredient(t, testDB, model.Ingredient{
		Category: "원두", Name: "블렌드 원두 1kg", Price: 25000,
		Unit: "kg", MinQuantity: 1, ShippingFee: 3000, Active: true,
	})
	syrup := seedIngredient(t, testDB, model.Ingredient{
		Category: "시럽", Name: "바닐라 시럽", Price: 8000,
		Unit: "ea", MinQuantity: 2, ShippingFee: 5000, Active: true,
	})

	order, err := orderService.CreateOrder(1, OrderInput{
		Lines: []CartLine{
			{IngredientID: beans.ID, Quantity: 2},
			{IngredientID: syrup.ID, Quantity: 3},
		},
		Recipient: "김점주",
		Address:   "서울시 강남구",
		Phone:     "010-1234-5678",
	})
	require.NoError(t, err)

	// 배송비는 합산하지 않고 품목별 배송비의 최댓값 하나만 부과
	assert.Equal(t, 5000, order.ShippingFee)
	assert.Equal(t, 25000*2+8000*3+5000, order.TotalAmount)
	assert.Equal(t, model.OrderStatusOrdered, order.Status)

	var snapshots []model.OrderItemSnapshot
	require.NoError(t, json.Unmarshal([]byte(order.Items), &snapshots))
	require.Len(t, snapshots, 2)
	assert.Equal(t, "블렌드 원두 1kg", snapshots[0].Name)
	assert.Equal(t, 25000, snapshots[0].Price)
}

func TestOrderService_CreateOrder_SnapshotSurvivesPriceChange(t *testing.T) {
	orderService, testDB := setupOrderServiceTest(t)

	beans := seedIngredient(t, testDB, model.Ingredient{
		Category: "원두", Name: "블렌드 원두 1kg", Price: 25000,
		Unit: "kg", MinQuantity: 1, Active: true,
	})

	order, err := orderService.CreateOrder(1, OrderInput{
		Lines:     []CartLine{{IngredientID: beans.ID, Quantity: 1}},
		Recipient: "김점주", Address: "서울", Phone: "010-0000-0000",
	})
	require.NoError(t, err)

	// 이후 단가가 바뀌어도 기존 발주의 스냅샷은 그대로
	require.NoError(t, testDB.Model(&model.Ingredient{}).
		Where("id = ?", beans.ID).Update("price", 99000).Error)

	fetched, err := orderService.GetOrder(order.ID, 1, false)
	require.NoError(t, err)

	var snapshots []model.OrderItemSnapshot
	require.NoError(t, json.Unmarshal([]byte(fetched.Items), &snapshots))
	assert.Equal(t, 25000, snapshots[0].Price)
	assert.Equal(t, 25000, fetched.TotalAmount)
}

func TestOrderService_CreateOrder_EmptyCart(t *testing.T) {
	orderService, _ := setupOrderServiceTest(t)

	_, err := orderService.CreateOrder(1, OrderInput{})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestOrderService_CreateOrder_InactiveIngredient(t *testing.T) {
	orderService, testDB := setupOrderServiceTest(t)

	retired := seedIngredient(t, testDB, model.Ingredient{
		Category: "원두", Name: "단종 원두", Price: 10000,
		Unit: "kg", MinQuantity: 1, Active: false,
	})

	_, err := orderService.CreateOrder(1, OrderInput{
		Lines: []CartLine{{IngredientID: retired.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrIngredientNotFound)
}

func TestOrderService_CreateOrder_UnknownIngredient(t *testing.T) {
	orderService, _ := setupOrderServiceTest(t)

	_, err := orderService.CreateOrder(1, OrderInput{
		Lines: []CartLine{{IngredientID: 9999, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrIngredientNotFound)
}

func TestOrderService_CreateOrder_BelowMinQuantity(t *testing.T) {
	orderService, testDB := setupOrderServiceTest(t)

	syrup := seedIngredient(t, testDB, model.Ingredient{
		Category: "시럽", Name: "바닐라 시럽", Price: 8000,
		Unit: "ea", MinQuantity: 5, Active: true,
	})

	_, err := orderService.CreateOrder(1, OrderInput{
		Lines: []CartLine{{IngredientID: syrup.ID, Quantity: 2}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "최소 주문 수량")
}

func TestOrderService_GetOrder_Ownership(t *testing.T) {
	orderService, testDB := setupOrderServiceTest(t)

	beans := seedIngredient(t, testDB, model.Ingredient{
		Category: "원두", Name: "원두", Price: 10000,
		Unit: "kg", MinQuantity: 1, Active: true,
	})
	order, err := orderService.CreateOrder(7, OrderInput{
		Lines:     []CartLine{{IngredientID: beans.ID, Quantity: 1}},
		Recipient: "김점주", Address: "서울", Phone: "010-0000-0000",
	})
	require.NoError(t, err)

	// 본인은 조회 가능
	_, err = orderService.GetOrder(order.ID, 7, false)
	assert.NoError(t, err)

	// 타인은 거부, 관리자는 허용
	_, err = orderService.GetOrder(order.ID, 8, false)
	assert.ErrorIs(t, err, ErrOrderForbidden)

	_, err = orderService.GetOrder(order.ID, 8, true)
	assert.NoError(t, err)
}

func TestOrderService_UpdateOrderStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    model.OrderStatus
		to      model.OrderStatus
		wantErr error
	}{
		{"Ordered to shipping", model.OrderStatusOrdered, model.OrderStatusShipping, nil},
		{"Ordered to cancelled", model.OrderStatusOrdered, model.OrderStatusCancelled, nil},
		{"Ordered to completed skips shipping", model.OrderStatusOrdered, model.OrderStatusCompleted, ErrInvalidTransition},
		{"Shipping to completed", model.OrderStatusShipping, model.OrderStatusCompleted, nil},
		{"Shipping stays shipping", model.OrderStatusShipping, model.OrderStatusShipping, nil},
		{"Shipping to cancelled", model.OrderStatusShipping, model.OrderStatusCancelled, nil},
		{"Shipping back to ordered", model.OrderStatusShipping, model.OrderStatusOrdered, ErrInvalidTransition},
		{"Completed is terminal", model.OrderStatusCompleted, model.OrderStatusCancelled, ErrInvalidTransition},
		{"Cancelled is terminal", model.OrderStatusCancelled, model.OrderStatusShipping, ErrInvalidTransition},
		{"Unknown status", model.OrderStatusOrdered, model.OrderStatus("returned"), ErrInvalidOrderStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderService, testDB := setupOrderServiceTest(t)

			order := model.Order{
				UserID: 1, Items: "[]", TotalAmount: 10000,
				Status: tt.from, Recipient: "김점주", Address: "서울", Phone: "010-0000-0000",
			}
			require.NoError(t, testDB.Create(&order).Error)

			updated, err := orderService.UpdateOrderStatus(order.ID, tt.to, "")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.to, updated.Status)
			}
		})
	}
}

func TestOrderService_UpdateOrderStatus_TrackingNumber(t *testing.T) {
	orderService, testDB := setupOrderServiceTest(t)

	order := model.Order{
		UserID: 1, Items: "[]", TotalAmount: 10000,
		Status: model.OrderStatusOrdered, Recipient: "김점주", Address: "서울", Phone: "010-0000-0000",
	}
	require.NoError(t, testDB.Create(&order).Error)

	// 접수 취소에 운송장 번호를 실을 수 없다
	_, err := orderService.UpdateOrderStatus(order.ID, model.OrderStatusCancelled, "CJ1234567890")
	assert.ErrorIs(t, err, ErrTrackingNumberTooEarly)

	updated, err := orderService.UpdateOrderStatus(order.ID, model.OrderStatusShipping, "CJ1234567890")
	require.NoError(t, err)
	assert.Equal(t, "CJ1234567890", updated.TrackingNumber)
}

// 운송장 없이 배송을 시작한 뒤에도 같은 상태로 번호만 나중에 붙일 수 있다
func TestOrderService_UpdateOrderStatus_TrackingNumberAfterShipping(t *testing.T) {
	orderService, testDB := setupOrderServiceTest(t)

	order := model.Order{
		UserID: 1, Items: "[]", TotalAmount: 10000,
		Status: model.OrderStatusOrdered, Recipient: "김점주", Address: "서울", Phone: "010-0000-0000",
	}
	require.NoError(t, testDB.Create(&order).Error)

	_, err := orderService.UpdateOrderStatus(order.ID, model.OrderStatusShipping, "")
	require.NoError(t, err)

	updated, err := orderService.UpdateOrderStatus(order.ID, model.OrderStatusShipping, "CJ1234567890")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusShipping, updated.Status)
	assert.Equal(t, "CJ1234567890", updated.TrackingNumber)
}

func TestOrderService_UpdateOrderStatus_NotFound(t *testing.T) {
	orderService, _ := setupOrderServiceTest(t)

	_, err := orderService.UpdateOrderStatus(9999, model.OrderStatusShipping, "")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_ListMyOrders(t *testing.T) {
	orderService, testDB := setupOrderServiceTest(t)

	beans := seedIngredient(t, testDB, model.Ingredient{
		Category: "원두", Name: "원두", Price: 10000,
		Unit: "kg", MinQuantity: 1, Active: true,
	})

	for _, userID := range []uint{1, 1, 2} {
		_, err := orderService.CreateOrder(userID, OrderInput{
			Lines:     []CartLine{{IngredientID: beans.ID, Quantity: 1}},
			Recipient: "김점주", Address: "서울", Phone: "010-0000-0000",
		})
		require.NoError(t, err)
	}

	mine, err := orderService.ListMyOrders(1)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := orderService.ListAllOrders()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
