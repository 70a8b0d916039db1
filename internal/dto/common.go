package dto

// DeletedMessage is the body of a successful delete.
const DeletedMessage = "DELETED!"

// ErrorBody is the inner object of every error response.
type ErrorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ErrorResponse is the error envelope returned by every route.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// DeletedResponse acknowledges a delete.
type DeletedResponse struct {
	Msg string `json:"msg" example:"DELETED!"`
}

// NewErrorResponse builds the error envelope.
func NewErrorResponse(status int, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorBody{Message: message, Status: status}}
}
