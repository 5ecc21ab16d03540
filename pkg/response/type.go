package response

// Resp is the standard JSON response body for the task API.
type Resp struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// DefaultErrorMessage is shown to clients when detail must stay server-side.
const DefaultErrorMessage = "Internal Server Error"
