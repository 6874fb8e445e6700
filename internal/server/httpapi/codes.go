package httpapi

// Numeric error codes carried in the "error" field of every JSON error
// response. These are the API contract; the HTTP status code is advisory.
const (
	codeUnknown      = 100
	codeKeyNotExist  = 200
	codeBadRequest   = 300
	codeUnauthorized = 400
	codeTokenExpired = 500
	codeKeyExists    = 600
)
