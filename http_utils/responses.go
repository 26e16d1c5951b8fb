package http_utils

// BaseResponse is the envelope every HTTP reply shares: whether the request
// succeeded and a human-readable message.
type BaseResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DataResponse carries a payload alongside the base envelope, e.g. room
// probe results or health stats.
type DataResponse struct {
	BaseResponse
	Data interface{} `json:"data"`
}

// ValidationErrorResponse lists the individual field failures from a
// rejected request.
type ValidationErrorResponse struct {
	BaseResponse
	Errors []string `json:"errors"`
}

func NewBaseResponse(success bool, msg string) BaseResponse {
	return BaseResponse{
		Success: success,
		Message: msg,
	}
}
