package main

import (
	"fmt"
	"log"
	"os"

	"github.com/cafe120/cafe120-backend/config"
	"github.com/cafe120/cafe120-backend/internal/app/repository"
	"github.com/cafe120/cafe120-backend/internal/db"
	"github.com/cafe120/cafe120-backend/internal/importer"
)

// 가맹점 목록 xlsx 파일을 읽어 stores 테이블에 일괄 등록한다.
// 관리자 화면의 엑셀 업로드와 동일한 파서를 쓴다.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatal("Failed to open xlsx file:", err)
	}
	defer f.Close()

	result, err := importer.ParseStores(f)
	if err != nil {
		log.Fatal("Failed to parse xlsx file:", err)
	}

	storeRepo := repository.NewStoreRepository(db.GetDB())
	if err := storeRepo.BulkCreate(result.Stores); err != nil {
		log.Fatal("Failed to insert stores:", err)
	}

	fmt.Printf("가맹점 등록 완료: %d건 등록, %d건 건너뜀\n", result.Imported, result.Skipped)
}
