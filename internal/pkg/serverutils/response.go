// FILE: internal/pkg/serverutils/response.go
package serverutils

// Response is the JSON shape for error replies. Success replies carry
// their payload directly, matching the public API contract.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func ErrorResponse(message string) Response {
	return Response{
		Success: false,
		Message: message,
	}
}
