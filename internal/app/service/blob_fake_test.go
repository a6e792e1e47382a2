package service

import (
	"errors"
	"fmt"

	"github.com/cafe120/cafe120-backend/internal/storage"
)

// fakeBlobStorage 테스트용 스토리지. 삭제 호출을 기록하고 고정 URL을 돌려준다.
type fakeBlobStorage struct {
	deleted    []string
	failDelete bool
}

func (f *fakeBlobStorage) Presign(filename, contentType, folder string) (*storage.PresignedURLResponse, error) {
	key := fmt.Sprintf("%s/%s", folder, filename)
	return &storage.PresignedURLResponse{
		UploadURL: "https://upload.example.com/" + key,
		FileURL:   f.URL(key),
		Key:       key,
	}, nil
}

func (f *fakeBlobStorage) Delete(key string) error {
	if f.failDelete {
		return errors.New("storage unavailable")
	}
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeBlobStorage) URL(key string) string {
	if key == "" {
		return ""
	}
	return "https://cdn.example.com/" + key
}
