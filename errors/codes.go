package errors

// ErrorCode identifies an application error class
type ErrorCode int32

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND
	ErrorCode_ALREADY_EXISTS
	ErrorCode_PERMISSION_DENIED
	ErrorCode_UNAUTHENTICATED
	ErrorCode_VALIDATION_FAILED
	ErrorCode_INVALID_IDENTIFIER
	ErrorCode_INVALID_PAYLOAD
	ErrorCode_COMPLETION_FAILED
	ErrorCode_TRANSCRIPTION_FAILED
	ErrorCode_EXTRACTION_FAILED
	ErrorCode_STORE_FAILED
	ErrorCode_STORE_PERMISSION_DENIED
	ErrorCode_HTTP_OK
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:                 "UNKNOWN",
	ErrorCode_INTERNAL:                "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:        "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:               "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:          "ALREADY_EXISTS",
	ErrorCode_PERMISSION_DENIED:       "PERMISSION_DENIED",
	ErrorCode_UNAUTHENTICATED:         "UNAUTHENTICATED",
	ErrorCode_VALIDATION_FAILED:       "VALIDATION_FAILED",
	ErrorCode_INVALID_IDENTIFIER:      "INVALID_IDENTIFIER",
	ErrorCode_INVALID_PAYLOAD:         "INVALID_PAYLOAD",
	ErrorCode_COMPLETION_FAILED:       "COMPLETION_FAILED",
	ErrorCode_TRANSCRIPTION_FAILED:    "TRANSCRIPTION_FAILED",
	ErrorCode_EXTRACTION_FAILED:       "EXTRACTION_FAILED",
	ErrorCode_STORE_FAILED:            "STORE_FAILED",
	ErrorCode_STORE_PERMISSION_DENIED: "STORE_PERMISSION_DENIED",
	ErrorCode_HTTP_OK:                 "OK",
}

// String returns the symbolic name of the error code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
