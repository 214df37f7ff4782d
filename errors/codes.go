package errors

// ErrorCode identifies the machine-readable class of an AppError
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS   ErrorCode = 1003
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1004

	// Validation
	ErrorCode_VALIDATION_FAILED ErrorCode = 2000

	// Database
	ErrorCode_DB_QUERY_FAILED         ErrorCode = 3000
	ErrorCode_DB_TRANSACTION_FAILED   ErrorCode = 3001
	ErrorCode_DB_CONSTRAINT_VIOLATION ErrorCode = 3002
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                 "OK",
	ErrorCode_INTERNAL:                "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:        "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:               "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:          "ALREADY_EXISTS",
	ErrorCode_INVALID_PAYLOAD:         "INVALID_PAYLOAD",
	ErrorCode_VALIDATION_FAILED:       "VALIDATION_FAILED",
	ErrorCode_DB_QUERY_FAILED:         "DB_QUERY_FAILED",
	ErrorCode_DB_TRANSACTION_FAILED:   "DB_TRANSACTION_FAILED",
	ErrorCode_DB_CONSTRAINT_VIOLATION: "DB_CONSTRAINT_VIOLATION",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
