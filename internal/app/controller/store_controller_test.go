package controller

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cafe120/cafe120-backend/internal/app/model"
	"github.com/cafe120/cafe120-backend/internal/app/repository"
	"github.com/cafe120/cafe120-backend/internal/app/service"
	"github.com/cafe120/cafe120-backend/internal/db"
	"github.com/cafe120/cafe120-backend/internal/middleware"
	"github.com/cafe120/cafe120-backend/pkg/util"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const storeTestSecret = "test-secret"

func setupStoreControllerTest(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	storeService := service.NewStoreService(repository.NewStoreRepository(testDB))
	ctrl := NewStoreController(storeService)
	authMiddleware := middleware.NewAuthMiddleware(storeTestSecret)

	router := gin.New()
	admin := router.Group("/stores", authMiddleware.Authenticate(), authMiddleware.RequireRole("admin"))
	admin.GET("", ctrl.ListStores)
	admin.POST("", ctrl.CreateStore)
	admin.POST("/import", ctrl.ImportStores)
	admin.PATCH("/:id", ctrl.UpdateStore)
	admin.DELETE("", ctrl.DeleteStores)

	return router
}

func storeAdminToken(t *testing.T) string {
	tokens, err := util.GenerateTokenPair(
		1, "admin@cafe120.com", "admin", storeTestSecret, 15*time.Minute, time.Hour,
	)
	require.NoError(t, err)
	return tokens.AccessToken
}

func rosterUpload(t *testing.T, rows [][]interface{}) (*bytes.Buffer, string) {
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

	var sheetBuf bytes.Buffer
	require.NoError(t, f.Write(&sheetBuf))

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "roster.xlsx")
	require.NoError(t, err)
	_, err = part.Write(sheetBuf.Bytes())
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestStoreController_ImportStores(t *testing.T) {
	router := setupStoreControllerTest(t)
	token := storeAdminToken(t)

	body, contentType := rosterUpload(t, [][]interface{}{
		{"2024-03-15", "카페120 강남점", "김점주", "010-1234-5678", "", "", "영업중", "서울", "", ""},
		{"2024-01-02", "카페120 부산점", "이점주", "010-8765-4321", "", "", "폐업", "부산", "", ""},
		{"2024-04-01", "불완전 행"},
	})

	req := httptest.NewRequest("POST", "/stores/import", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.EqualValues(t, 2, response["imported"])
	assert.EqualValues(t, 1, response["skipped"])

	// 등록일 내림차순으로 목록에 반영된다
	listReq := httptest.NewRequest("GET", "/stores", nil)
	listReq.Header.Set("Authorization", "Bearer "+token)
	list := httptest.NewRecorder()
	router.ServeHTTP(list, listReq)

	require.Equal(t, http.StatusOK, list.Code)

	var listResponse struct {
		Stores []model.Store `json:"stores"`
	}
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &listResponse))
	require.Len(t, listResponse.Stores, 2)
	assert.Equal(t, "카페120 강남점", listResponse.Stores[0].StoreName)
}

func TestStoreController_ImportStores_MissingFile(t *testing.T) {
	router := setupStoreControllerTest(t)
	token := storeAdminToken(t)

	req := httptest.NewRequest("POST", "/stores/import", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStoreController_ImportStores_BadSheet(t *testing.T) {
	router := setupStoreControllerTest(t)
	token := storeAdminToken(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "roster.xlsx")
	require.NoError(t, err)
	_, err = part.Write([]byte("xlsx 아님"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/stores/import", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "STORE_INVALID_SHEET")
}

func TestStoreController_AdminOnly(t *testing.T) {
	router := setupStoreControllerTest(t)

	userTokens, err := util.GenerateTokenPair(
		2, "owner@example.com", "user", storeTestSecret, 15*time.Minute, time.Hour,
	)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/stores", nil)
	req.Header.Set("Authorization", "Bearer "+userTokens.AccessToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestStoreController_CreateAndDelete(t *testing.T) {
	router := setupStoreControllerTest(t)
	token := storeAdminToken(t)

	payload, err := json.Marshal(CreateStoreRequest{
		RegistrationDate: "2024-03-15",
		StoreName:        "카페120 강남점",
		OwnerName:        "김점주",
		Status:           "영업중",
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/stores", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	deleteBody, err := json.Marshal(DeleteStoresRequest{IDs: []uint{1, 9999}})
	require.NoError(t, err)

	req = httptest.NewRequest("DELETE", "/stores", bytes.NewBuffer(deleteBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	listReq := httptest.NewRequest("GET", "/stores", nil)
	listReq.Header.Set("Authorization", "Bearer "+token)
	list := httptest.NewRecorder()
	router.ServeHTTP(list, listReq)
	assert.Contains(t, list.Body.String(), `"count":0`)
}
