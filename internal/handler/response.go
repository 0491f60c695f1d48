package handler

// Response is the uniform JSON envelope returned by every endpoint. Clients
// branch on Success to extract either Data/Message or Error.
type Response struct {
	Success bool              `json:"success"`
	Data    interface{}       `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Count   *int              `json:"count,omitempty"`
}

// DataResponse wraps a payload in a success envelope.
func DataResponse(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// ListResponse wraps a collection payload with its count.
func ListResponse(data interface{}, count int) Response {
	return Response{Success: true, Data: data, Count: &count}
}

// MessageResponse wraps an acknowledgment message.
func MessageResponse(message string) Response {
	return Response{Success: true, Message: message}
}

// ErrorResponse wraps a failure message.
func ErrorResponse(message string) Response {
	return Response{Success: false, Error: message}
}
