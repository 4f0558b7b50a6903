package dto

// MessageResponse is a standard success payload carrying only a message
type MessageResponse struct {
	Message string `json:"message"`
}
