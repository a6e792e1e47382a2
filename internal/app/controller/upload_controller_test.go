package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cafe120/cafe120-backend/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBlobStorage struct {
	fail bool
}

func (s *stubBlobStorage) Presign(filename, contentType, folder string) (*storage.PresignedURLResponse, error) {
	if s.fail {
		return nil, errors.New("storage unavailable")
	}
	key := folder + "/" + filename
	return &storage.PresignedURLResponse{
		UploadURL: "https://bucket.s3.ap-northeast-2.amazonaws.com/" + key + "?X-Amz-Signature=abc",
		FileURL:   "https://cdn.example.com/" + key,
		Key:       key,
	}, nil
}

func (s *stubBlobStorage) Delete(key string) error { return nil }

func (s *stubBlobStorage) URL(key string) string { return "https://cdn.example.com/" + key }

func setupUploadControllerTest(blobs storage.BlobStorage) *gin.Engine {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.POST("/upload/presigned-url", NewUploadController(blobs).GeneratePresignedURL)
	return engine
}

func requestPresignedURL(t *testing.T, engine *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/upload/presigned-url", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestUploadController_GeneratePresignedURL_Success(t *testing.T) {
	engine := setupUploadControllerTest(&stubBlobStorage{})

	w := requestPresignedURL(t, engine, map[string]interface{}{
		"filename":     "menu.png",
		"content_type": "image/png",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "uploads/menu.png", response["key"]) // folder 생략 시 uploads
	assert.Contains(t, response["upload_url"], "X-Amz-Signature")
	assert.Equal(t, "https://cdn.example.com/uploads/menu.png", response["file_url"])
}

func TestUploadController_GeneratePresignedURL_CustomFolder(t *testing.T) {
	engine := setupUploadControllerTest(&stubBlobStorage{})

	w := requestPresignedURL(t, engine, map[string]interface{}{
		"filename":     "guide.pdf",
		"content_type": "application/pdf",
		"folder":       "resources",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "resources/guide.pdf", response["key"])
}

func TestUploadController_GeneratePresignedURL_Validation(t *testing.T) {
	engine := setupUploadControllerTest(&stubBlobStorage{})

	tests := []struct {
		name         string
		body         map[string]interface{}
		expectedCode string
	}{
		{
			name: "Executable rejected",
			body: map[string]interface{}{
				"filename":     "setup.exe",
				"content_type": "application/x-msdownload",
			},
			expectedCode: "UPLOAD_INVALID_FILE_TYPE",
		},
		{
			name: "HTML rejected",
			body: map[string]interface{}{
				"filename":     "page.html",
				"content_type": "text/html",
			},
			expectedCode: "UPLOAD_INVALID_FILE_TYPE",
		},
		{
			name: "Missing filename",
			body: map[string]interface{}{
				"content_type": "image/png",
			},
			expectedCode: "VALIDATION_INVALID_INPUT",
		},
		{
			name: "Missing content type",
			body: map[string]interface{}{
				"filename": "menu.png",
			},
			expectedCode: "VALIDATION_INVALID_INPUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := requestPresignedURL(t, engine, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedCode, response["error"])
		})
	}
}

func TestUploadController_GeneratePresignedURL_StorageFailure(t *testing.T) {
	engine := setupUploadControllerTest(&stubBlobStorage{fail: true})

	w := requestPresignedURL(t, engine, map[string]interface{}{
		"filename":     "menu.png",
		"content_type": "image/png",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
