package service

import (
	"bytes"
	"testing"

	"github.com/cafe120/cafe120-backend/internal/app/model"
	"github.com/cafe120/cafe120-backend/internal/app/repository"
	"github.com/cafe120/cafe120-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func setupStoreServiceTest(t *testing.T) (StoreService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	return NewStoreService(repository.NewStoreRepository(testDB)), testDB
}

func storeRoster(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	header := []interface{}{
		"등록일", "매장명", "점주명", "핸드폰", "매장전화", "이메일", "상태", "주소", "상세주소", "비고",
	}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestStoreService_CreateStore(t *testing.T) {
	storeService, _ := setupStoreServiceTest(t)

	store := &model.Store{
		RegistrationDate: "2024-03-15",
		StoreName:        "카페120 강남점",
		OwnerName:        "김점주",
		Status:           "오픈예정", // 인식할 수 없는 상태
	}
	require.NoError(t, storeService.CreateStore(store))
	assert.Equal(t, model.StoreStatusOperating, store.Status)

	err := storeService.CreateStore(&model.Store{OwnerName: "이점주"})
	assert.ErrorIs(t, err, ErrStoreNameRequired)
}

func TestStoreService_ListStores_SortedByRegistrationDate(t *testing.T) {
	storeService, _ := setupStoreServiceTest(t)

	for _, s := range []model.Store{
		{RegistrationDate: "2023-12-01", StoreName: "옛 매장", OwnerName: "김점주"},
		{RegistrationDate: "2024-03-15", StoreName: "새 매장", OwnerName: "이점주"},
		{RegistrationDate: "2024-01-02", StoreName: "중간 매장", OwnerName: "박점주"},
	} {
		store := s
		require.NoError(t, storeService.CreateStore(&store))
	}

	stores, err := storeService.ListStores()
	require.NoError(t, err)
	require.Len(t, stores, 3)
	assert.Equal(t, "새 매장", stores[0].StoreName)
	assert.Equal(t, "중간 매장", stores[1].StoreName)
	assert.Equal(t, "옛 매장", stores[2].StoreName)
}

func TestStoreService_UpdateStore(t *testing.T) {
	storeService, _ := setupStoreServiceTest(t)

	store := &model.Store{RegistrationDate: "2024-03-15", StoreName: "카페120 강남점", OwnerName: "김점주"}
	require.NoError(t, storeService.CreateStore(store))

	status := "폐업"
	remarks := "2024년 8월 폐업"
	updated, err := storeService.UpdateStore(store.ID, StoreUpdate{Status: &status, Remarks: &remarks})
	require.NoError(t, err)
	assert.Equal(t, model.StoreStatusClosed, updated.Status)
	assert.Equal(t, remarks, updated.Remarks)
	assert.Equal(t, "카페120 강남점", updated.StoreName)

	_, err = storeService.UpdateStore(9999, StoreUpdate{Status: &status})
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestStoreService_ImportStores(t *testing.T) {
	storeService, _ := setupStoreServiceTest(t)

	buf := storeRoster(t, [][]interface{}{
		{"2024-03-15", "카페120 강남점", "김점주", "010-1234-5678", "", "", "영업중", "서울", "", ""},
		{"2024-01-02", "카페120 부산점", "이점주", "010-8765-4321", "", "", "폐업", "부산", "", ""},
		{"2024-04-01", "불완전 행"},
	})

	summary, err := storeService.ImportStores(buf)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Imported)
	assert.Equal(t, 1, summary.Skipped)

	stores, err := storeService.ListStores()
	require.NoError(t, err)
	assert.Len(t, stores, 2)
}

func TestStoreService_ImportStores_BadFile(t *testing.T) {
	storeService, _ := setupStoreServiceTest(t)

	_, err := storeService.ImportStores(bytes.NewBufferString("깨진 파일"))
	assert.Error(t, err)

	stores, err := storeService.ListStores()
	require.NoError(t, err)
	assert.Empty(t, stores)
}

func TestStoreService_DeleteStores(t *testing.T) {
	storeService, _ := setupStoreServiceTest(t)

	first := &model.Store{RegistrationDate: "2024-03-15", StoreName: "강남점", OwnerName: "김점주"}
	second := &model.Store{RegistrationDate: "2024-03-16", StoreName: "홍대점", OwnerName: "박점주"}
	require.NoError(t, storeService.CreateStore(first))
	require.NoError(t, storeService.CreateStore(second))

	// 존재하지 않는 id가 섞여도 나머지는 삭제된다
	require.NoError(t, storeService.DeleteStores([]uint{first.ID, 9999}))

	stores, err := storeService.ListStores()
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, "홍대점", stores[0].StoreName)

	// 빈 목록은 그대로
	require.NoError(t, storeService.DeleteStores(nil))
}
