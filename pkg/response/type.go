package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Response codes and messages.
const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Sorry, something went wrong. Please try again."
	InternalServerErrorCode = 500
	TooManyRequestsCode     = 429
	BadRequestCode          = 1
)
