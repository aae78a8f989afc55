package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

const (
	CodeBadRequest   = "BAD_REQUEST"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeTransfer     = "TRANSFER_FAILED"
	CodeInternal     = "INTERNAL_SERVER_ERROR"
)

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Code    string      `json:"code,omitempty"`    // stable error category for clients
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}

type PrivateResponse struct {
	Message string      `json:"message"`
	User    PrivateUser `json:"user"`
}

type PrivateUser struct {
	ID string `json:"id"`
}
