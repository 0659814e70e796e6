package model

// SuccessResponse wraps every successful reply.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ErrorResponse wraps every failed reply. Code mirrors the HTTP status.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewSuccessResponse(message string, data any) SuccessResponse {
	return SuccessResponse{Success: true, Message: message, Data: data}
}

func NewErrorResponse(code int, message string) ErrorResponse {
	return ErrorResponse{Error: true, Code: code, Message: message}
}
