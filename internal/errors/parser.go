package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo 에러 정보 구조
type ErrorInfo struct {
	Code    string // 에러 코드 (codes.go 참조)
	Message string // 사용자 친화적 메시지
}

// ParseError maps a storage-layer error to an error code and a message the
// presentation layer can render. StorageIOError is the only class a caller
// may treat as transient and retry.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "an internal error occurred",
		}
	}

	errStrLower := strings.ToLower(err.Error())

	// GORM record lookups
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: getNotFoundMessage(context),
		}
	}

	// SQLite constraint failures. The sqlite driver reports these as
	// "UNIQUE constraint failed: ..." / "FOREIGN KEY constraint failed".
	if strings.Contains(errStrLower, "unique constraint") {
		return parseDuplicateKeyError(errStrLower)
	}
	if strings.Contains(errStrLower, "foreign key constraint") {
		return ErrorInfo{
			Code:    ForeignKeyViolation,
			Message: "the referenced record does not exist",
		}
	}
	if strings.Contains(errStrLower, "not null constraint") ||
		(strings.Contains(errStrLower, "null value") && strings.Contains(errStrLower, "constraint")) {
		return ErrorInfo{
			Code:    ValidationRequired,
			Message: "a required field is missing",
		}
	}

	// Anything else from the storage layer is an I/O class failure:
	// locked database, disk full, corrupted file.
	return ErrorInfo{
		Code:    StorageIOError,
		Message: "storage operation failed, please try again",
	}
}

func parseDuplicateKeyError(errLower string) ErrorInfo {
	if strings.Contains(errLower, "users.email") {
		return ErrorInfo{
			Code:    UserEmailExists,
			Message: "this email is already registered",
		}
	}
	if strings.Contains(errLower, "idx_user_business_favorite") {
		// Duplicate favorite; callers treat add_favorite as idempotent so
		// this normally never reaches the surface.
		return ErrorInfo{
			Code:    ResourceConflict,
			Message: "this business is already in your favorites",
		}
	}
	return ErrorInfo{
		Code:    ResourceConflict,
		Message: "the record already exists",
	}
}

func getNotFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "business") {
		return "business not found"
	}
	if strings.Contains(contextLower, "user") {
		return "user not found"
	}
	if strings.Contains(contextLower, "review") {
		return "review not found"
	}
	if strings.Contains(contextLower, "deal") {
		return "deal not found"
	}
	if strings.Contains(contextLower, "favorite") {
		return "favorite not found"
	}

	return "requested record not found"
}
