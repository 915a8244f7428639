package errors

// 에러 코드 상수 정의
// 형식: CATEGORY_SPECIFIC_DETAIL
// 프론트엔드에서 이 코드를 기반으로 메시지를 매핑함

const (
	// ==================== 리소스 (RESOURCE_) ====================
	ResourceNotFound    = "RESOURCE_NOT_FOUND"    // 리소스 없음
	ForeignKeyViolation = "FOREIGN_KEY_VIOLATION" // 참조 무결성 위반
	ResourceConflict    = "RESOURCE_CONFLICT"     // 충돌

	// ==================== 업체 (BUSINESS_) ====================
	BusinessNotFound = "BUSINESS_NOT_FOUND" // 업체 없음

	// ==================== 사용자 (USER_) ====================
	UserNotFound    = "USER_NOT_FOUND"    // 사용자 없음
	UserEmailExists = "USER_EMAIL_EXISTS" // 이메일 중복

	// ==================== 리뷰 (REVIEW_) ====================
	ReviewInvalidRating = "REVIEW_INVALID_RATING" // 잘못된 평점 (1-5)
	ReviewTooShort      = "REVIEW_TOO_SHORT"      // 리뷰 너무 짧음 (최소 10자)

	// ==================== 프로모션 (DEAL_) ====================
	DealNotFound      = "DEAL_NOT_FOUND"       // 프로모션 없음
	DealInvalidWindow = "DEAL_INVALID_WINDOW"  // 종료일이 시작일보다 빠름

	// ==================== 챌린지 (CHALLENGE_) ====================
	ChallengeFailed = "CHALLENGE_FAILED" // 자동화 방지 질문 오답 또는 미발급

	// ==================== 검증 (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // 잘못된 입력
	ValidationRequired     = "VALIDATION_REQUIRED"      // 필수 항목

	// ==================== 내부 오류 (INTERNAL_) ====================
	StorageIOError      = "STORAGE_IO_ERROR"      // 저장소 오류 (재시도 가능)
	InternalServerError = "INTERNAL_SERVER_ERROR" // 서버 오류
)
