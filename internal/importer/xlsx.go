// Package importer parses store roster spreadsheets into model rows.
// The same parser serves the admin upload endpoint and cmd/seed.
package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/cafe120/cafe120-backend/internal/app/model"
	"github.com/cafe120/cafe120-backend/pkg/logger"
	"github.com/xuri/excelize/v2"
)

// 시트의 고정 열 순서 (첫 행은 머리글)
const (
	colRegistrationDate = iota
	colStoreName
	colOwnerName
	colMobilePhone
	colStorePhone
	colEmail
	colStatus
	colAddress
	colDetailAddress
	colRemarks

	columnCount
)

// Result 파싱 결과와 건수 집계
type Result struct {
	Stores   []model.Store
	Imported int
	Skipped  int
}

// ParseStores reads the first sheet of an xlsx store roster.
// The header row is skipped, and rows with fewer than three populated
// cells are dropped rather than failing the whole file.
func ParseStores(r io.Reader) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	result := &Result{}
	for i, row := range rows {
		// 머리글 행
		if i == 0 {
			continue
		}

		if populatedCells(row) < 3 {
			result.Skipped++
			continue
		}

		result.Stores = append(result.Stores, rowToStore(row))
		result.Imported++
	}

	logger.Info("Parsed store spreadsheet", map[string]interface{}{
		"sheet":    sheets[0],
		"imported": result.Imported,
		"skipped":  result.Skipped,
	})

	return result, nil
}

func rowToStore(row []string) model.Store {
	return model.Store{
		RegistrationDate: cell(row, colRegistrationDate),
		StoreName:        cell(row, colStoreName),
		OwnerName:        cell(row, colOwnerName),
		MobilePhone:      cell(row, colMobilePhone),
		StorePhone:       cell(row, colStorePhone),
		Email:            cell(row, colEmail),
		Status:           model.ParseStoreStatus(cell(row, colStatus)),
		Address:          cell(row, colAddress),
		DetailAddress:    cell(row, colDetailAddress),
		Remarks:          cell(row, colRemarks),
	}
}

// cell 열이 모자라는 행은 빈 문자열로 채운다
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func populatedCells(row []string) int {
	n := 0
	for i := 0; i < columnCount; i++ {
		if cell(row, i) != "" {
			n++
		}
	}
	return n
}
