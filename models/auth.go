package models

// LoginRequest is the JSON body of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// ChatRequest is the JSON body of POST /chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the assistant reply back to the browser.
type ChatResponse struct {
	Response string `json:"response"`
}

// ErrorResponse is the uniform error body for every non-2xx answer.
type ErrorResponse struct {
	Msg string `json:"msg"`
}
