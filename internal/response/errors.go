package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrSessionNotFound ErrCode = "SESSION_NOT_FOUND"
	ErrResultNotFound  ErrCode = "RESULT_NOT_FOUND"
	ErrNotFound        ErrCode = "NOT_FOUND"

	// ─── Session lifecycle ─────────────────────────────────────────────
	ErrSessionCompleted ErrCode = "SESSION_COMPLETED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Invalid session data"
	case ErrInvalidID:
		return "Invalid identifier format"
	case ErrInvalidPayload:
		return "Invalid request payload"
	case ErrSessionNotFound:
		return "Quiz session not found"
	case ErrResultNotFound:
		return "Quiz result not found"
	case ErrNotFound:
		return "Resource not found"
	case ErrSessionCompleted:
		return "Quiz session is already completed"
	case ErrInternal:
		return "An internal server error occurred"
	default:
		return "An unexpected error occurred"
	}
}
