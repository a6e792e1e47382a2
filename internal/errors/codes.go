package errors

// 에러 코드 상수 정의
// 형식: CATEGORY_SPECIFIC_DETAIL
// 프론트엔드에서 이 코드를 기반으로 메시지를 매핑함

const (
	// ==================== 인증 (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"       // 로그인 필요
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // 잘못된 이메일/비밀번호
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"      // 토큰 만료
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"      // 잘못된 토큰
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"      // 토큰 폐기됨
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"       // 이메일 중복
	AuthAccountPending     = "AUTH_ACCOUNT_PENDING"    // 승인 대기 중 계정
	AuthAccountSuspended   = "AUTH_ACCOUNT_SUSPENDED"  // 정지된 계정

	// ==================== 인가/권한 (AUTHZ_) ====================
	AuthzForbidden    = "AUTHZ_FORBIDDEN"      // 접근 권한 없음
	AuthzRoleNotFound = "AUTHZ_ROLE_NOT_FOUND" // 권한 정보 없음
	AuthzAdminOnly    = "AUTHZ_ADMIN_ONLY"     // 관리자만 가능

	// ==================== 검증 (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"  // 잘못된 입력
	ValidationInvalidID     = "VALIDATION_INVALID_ID"     // 잘못된 ID
	ValidationInvalidFormat = "VALIDATION_INVALID_FORMAT" // 잘못된 형식
	ValidationRequired      = "VALIDATION_REQUIRED"       // 필수 항목

	// ==================== 리소스 공통 (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"      // 리소스 없음
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS" // 이미 존재
	ResourceConflict      = "RESOURCE_CONFLICT"       // 충돌

	// ==================== 멤버십 플랜 (PLAN_) ====================
	PlanNotFound   = "PLAN_NOT_FOUND"    // 플랜 없음
	PlanCodeExists = "PLAN_CODE_EXISTS"  // 플랜 코드 중복

	// ==================== 상담 문의 (LEAD_) ====================
	LeadNotFound      = "LEAD_NOT_FOUND"      // 문의 없음
	LeadInvalidStatus = "LEAD_INVALID_STATUS" // 잘못된 처리 상태

	// ==================== 식자재 카탈로그 (CATALOG_) ====================
	IngredientNotFound = "CATALOG_INGREDIENT_NOT_FOUND" // 품목 없음
	CategoryNotFound   = "CATALOG_CATEGORY_NOT_FOUND"   // 카테고리 없음
	IngredientInactive = "CATALOG_INGREDIENT_INACTIVE"  // 판매 중지 품목

	// ==================== 발주 (ORDER_) ====================
	OrderNotFound          = "ORDER_NOT_FOUND"           // 발주 없음
	OrderEmptyCart         = "ORDER_EMPTY_CART"          // 빈 장바구니
	OrderInvalidStatus     = "ORDER_INVALID_STATUS"      // 잘못된 상태값
	OrderInvalidTransition = "ORDER_INVALID_TRANSITION"  // 허용되지 않는 상태 전이
	OrderBelowMinQuantity  = "ORDER_BELOW_MIN_QUANTITY"  // 최소 수량 미달
	OrderTrackingTooEarly  = "ORDER_TRACKING_TOO_EARLY"  // 배송 전 운송장 입력

	// ==================== 가맹점 대장 (STORE_) ====================
	StoreNotFound      = "STORE_NOT_FOUND"       // 가맹점 없음
	StoreImportFailed  = "STORE_IMPORT_FAILED"   // 가져오기 실패
	StoreInvalidSheet  = "STORE_INVALID_SHEET"   // 잘못된 스프레드시트

	// ==================== 자료실 (LIBRARY_) ====================
	LibraryNotFound    = "LIBRARY_NOT_FOUND"     // 자료 없음
	LibraryInvalidType = "LIBRARY_INVALID_TYPE"  // 잘못된 자료 유형

	// ==================== 업로드 (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE" // 잘못된 파일 형식
	UploadFailed          = "UPLOAD_FAILED"            // 업로드 실패

	// ==================== AI 생성 (AI_) ====================
	AIMissingCredential = "AI_MISSING_CREDENTIAL" // API 키 미설정
	AIProviderError     = "AI_PROVIDER_ERROR"     // 외부 API 오류
	AIInvalidProvider   = "AI_INVALID_PROVIDER"   // 알 수 없는 제공자

	// ==================== 설정 (CONFIG_) ====================
	ConfigNotFound = "CONFIG_NOT_FOUND" // 설정 없음

	// ==================== 내부 오류 (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"   // 서버 오류
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR" // DB 오류
	InternalExternalAPI   = "INTERNAL_EXTERNAL_API"   // 외부 API 오류
)
