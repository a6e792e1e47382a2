package errors

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ErrorInfo 에러 정보 구조
type ErrorInfo struct {
	Code    string // 에러 코드 (codes.go 참조)
	Message string // 사용자 친화적 메시지
}

// ParseError 에러를 파싱하여 사용자 친화적인 메시지와 코드로 변환
// 보안상 민감한 정보는 숨기되, 사용자가 문제를 해결할 수 있는 정보 제공
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "서버 오류가 발생했습니다",
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: notFoundMessage(context),
		}
	}

	// PostgreSQL 에러는 드라이버 타입으로 판별
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			return duplicateKeyInfo(pqErr.Constraint, context)
		case "23503": // foreign_key_violation
			return ErrorInfo{
				Code:    ResourceConflict,
				Message: "연결된 데이터가 있어 처리할 수 없습니다",
			}
		case "23502": // not_null_violation
			return ErrorInfo{
				Code:    ValidationRequired,
				Message: "필수 항목이 누락되었습니다",
			}
		}
	}

	// sqlite(테스트) 등 드라이버 타입이 없는 경우 문자열로 판별
	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "duplicate key") || strings.Contains(errStr, "unique constraint") {
		return duplicateKeyInfo(errStr, context)
	}

	return ErrorInfo{
		Code:    InternalServerError,
		Message: "요청 처리 중 오류가 발생했습니다",
	}
}

func duplicateKeyInfo(detail, context string) ErrorInfo {
	detail = strings.ToLower(detail)
	switch {
	case strings.Contains(detail, "email"):
		return ErrorInfo{Code: AuthEmailAlreadyExists, Message: "이미 가입된 이메일입니다"}
	case strings.Contains(detail, "code"):
		return ErrorInfo{Code: PlanCodeExists, Message: "이미 사용 중인 플랜 코드입니다"}
	case strings.Contains(detail, "key"):
		return ErrorInfo{Code: ResourceAlreadyExists, Message: "이미 존재하는 설정입니다"}
	}
	return ErrorInfo{Code: ResourceAlreadyExists, Message: "이미 존재하는 데이터입니다"}
}

func notFoundMessage(context string) string {
	switch context {
	case "user":
		return "사용자를 찾을 수 없습니다"
	case "plan":
		return "플랜을 찾을 수 없습니다"
	case "ingredient":
		return "품목을 찾을 수 없습니다"
	case "order":
		return "발주 내역을 찾을 수 없습니다"
	case "store":
		return "가맹점을 찾을 수 없습니다"
	case "resource":
		return "자료를 찾을 수 없습니다"
	}
	return "요청한 데이터를 찾을 수 없습니다"
}

// ParseAndRespond 에러를 파싱해 적절한 상태 코드와 함께 응답
// fallbackStatus는 매핑되는 코드가 없을 때 사용할 HTTP 상태
func ParseAndRespond(c *gin.Context, fallbackStatus int, err error, context string) {
	info := ParseError(err, context)

	status := fallbackStatus
	switch info.Code {
	case ResourceNotFound:
		status = 404
	case AuthEmailAlreadyExists, PlanCodeExists, ResourceAlreadyExists, ResourceConflict:
		status = 409
	case ValidationRequired:
		status = 400
	}

	RespondWithError(c, status, info.Code, info.Message)
}
