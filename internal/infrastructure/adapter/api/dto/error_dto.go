package dto

// ErrorResponse represents the standardized failure envelope
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse builds a failure envelope
func NewErrorResponse(code int, message string) ErrorResponse {
	return ErrorResponse{Code: code, Message: message}
}

// DataResponse represents the success envelope of single-resource endpoints
type DataResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// NewDataResponse builds a success envelope around data
func NewDataResponse(data any) DataResponse {
	return DataResponse{Success: true, Data: data}
}
