package response

type ErrorResponse struct {
	Error string `json:"error"`
}

func Error(msg any) *ErrorResponse {
	switch message := msg.(type) {
	case string:
		return &ErrorResponse{Error: message}
	case error:
		return &ErrorResponse{Error: message.Error()}
	}
	return &ErrorResponse{Error: "Unknown Error"}
}
