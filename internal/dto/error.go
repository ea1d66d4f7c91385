package dto

// MessageResponse is the success envelope for mutations that return no
// resource body, such as deletes.
type MessageResponse struct {
	Message string `json:"message"`
}

// FieldError is a single validation violation, with the dotted location
// of the offending field in the input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the uniform error envelope returned by every failure.
// Stack is populated only outside production.
type ErrorResponse struct {
	Error      string       `json:"error"`
	Message    string       `json:"message"`
	StatusCode int          `json:"statusCode"`
	Errors     []FieldError `json:"errors,omitempty"`
	Stack      string       `json:"stack,omitempty"`
}
