package errors

// ErrorCode identifies an application error category
type ErrorCode int

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_HTTP_OK
	ErrorCode_INTERNAL
	ErrorCode_VALIDATION
	ErrorCode_INVALID_CREDENTIAL
	ErrorCode_FORBIDDEN
	ErrorCode_NOT_FOUND
	ErrorCode_UPSTREAM
	ErrorCode_NETWORK
)

var codeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:            "UNKNOWN",
	ErrorCode_HTTP_OK:            "OK",
	ErrorCode_INTERNAL:           "INTERNAL",
	ErrorCode_VALIDATION:         "VALIDATION",
	ErrorCode_INVALID_CREDENTIAL: "INVALID_CREDENTIAL",
	ErrorCode_FORBIDDEN:          "FORBIDDEN",
	ErrorCode_NOT_FOUND:          "NOT_FOUND",
	ErrorCode_UPSTREAM:           "UPSTREAM",
	ErrorCode_NETWORK:            "NETWORK",
}

// String returns the symbolic name for the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
