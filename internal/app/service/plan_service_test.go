package service

import (
	"testing"

	"github.com/cafe120/cafe120-backend/internal/app/model"
	"github.com/cafe120/cafe120-backend/internal/app/repository"
	"github.com/cafe120/cafe120-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupPlanServiceTest(t *testing.T) (PlanService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	return NewPlanService(repository.NewPlanRepository(testDB), &fakeBlobStorage{}), testDB
}

func TestPlanService_CreatePlan(t *testing.T) {
	planService, _ := setupPlanServiceTest(t)

	plan := &model.Plan{
		Code:     "egg120",
		Name:     "에그120",
		Price:    "월 99,000원",
		Features: model.StringList{"POS 지원", "원두 할인"},
		Active:   true,
	}
	require.NoError(t, planService.CreatePlan(plan))
	assert.NotZero(t, plan.ID)

	// 같은 코드 재사용 불가
	err := planService.CreatePlan(&model.Plan{Code: "egg120", Name: "다른 플랜", Price: "월 10,000원"})
	assert.ErrorIs(t, err, ErrPlanCodeExists)
}

func TestPlanService_CreatePlan_Validation(t *testing.T) {
	planService, _ := setupPlanServiceTest(t)

	tests := []struct {
		name    string
		plan    model.Plan
		wantErr error
	}{
		{"Missing code", model.Plan{Name: "에그120", Price: "월 99,000원"}, ErrPlanCodeRequired},
		{"Missing name", model.Plan{Code: "egg120", Price: "월 99,000원"}, ErrPlanNameRequired},
		{"Missing price", model.Plan{Code: "egg120", Name: "에그120"}, ErrPlanPriceRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, planService.CreatePlan(&tt.plan), tt.wantErr)
		})
	}
}

func TestPlanService_CreatePlan_InactivePersisted(t *testing.T) {
	planService, testDB := setupPlanServiceTest(t)

	plan := &model.Plan{Code: "pie120", Name: "파이120", Price: "월 149,000원", Active: false}
	require.NoError(t, planService.CreatePlan(plan))

	// active=false가 DB까지 그대로 내려가야 한다
	var stored model.Plan
	require.NoError(t, testDB.First(&stored, plan.ID).Error)
	assert.False(t, stored.Active)
}

func TestPlanService_ListPlans_ActiveFilter(t *testing.T) {
	planService, _ := setupPlanServiceTest(t)

	require.NoError(t, planService.CreatePlan(&model.Plan{
		Code: "egg120", Name: "에그120", Price: "월 99,000원", Active: true,
	}))
	require.NoError(t, planService.CreatePlan(&model.Plan{
		Code: "pie120", Name: "파이120", Price: "월 149,000원", Active: false,
	}))

	// 랜딩페이지: 노출 플랜만
	visible, err := planService.ListPlans(true)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "egg120", visible[0].Code)

	// 관리자: 전체
	all, err := planService.ListPlans(false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPlanService_ImageFromStorageKey(t *testing.T) {
	planService, _ := setupPlanServiceTest(t)

	require.NoError(t, planService.CreatePlan(&model.Plan{
		Code: "egg120", Name: "에그120", Price: "월 99,000원",
		StorageKey: "plans/egg.png", Active: true,
	}))

	plans, err := planService.ListPlans(true)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "https://cdn.example.com/plans/egg.png", plans[0].Image)
}

func TestPlanService_UpdatePlan(t *testing.T) {
	planService, _ := setupPlanServiceTest(t)

	plan := &model.Plan{Code: "egg120", Name: "에그120", Price: "월 99,000원", Active: true}
	require.NoError(t, planService.CreatePlan(plan))

	newFeatures := model.StringList{"POS 지원", "원두 할인", "월 1회 컨설팅"}
	inactive := false
	updated, err := planService.UpdatePlan(plan.ID, PlanUpdate{
		Features: &newFeatures,
		Active:   &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, newFeatures, updated.Features)
	assert.False(t, updated.Active)
	assert.Equal(t, "에그120", updated.Name)

	_, err = planService.UpdatePlan(9999, PlanUpdate{Active: &inactive})
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestPlanService_DeletePlan(t *testing.T) {
	planService, _ := setupPlanServiceTest(t)

	plan := &model.Plan{Code: "egg120", Name: "에그120", Price: "월 99,000원"}
	require.NoError(t, planService.CreatePlan(plan))

	require.NoError(t, planService.DeletePlan(plan.ID))

	_, err := planService.GetPlanByID(plan.ID)
	assert.ErrorIs(t, err, ErrPlanNotFound)

	// 없는 id 삭제는 no-op
	assert.NoError(t, planService.DeletePlan(plan.ID))
}
