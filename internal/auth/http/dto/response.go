package dto

// LoginResponse is returned on a successful login. The token carries the
// "Bearer " prefix so clients can place it in the Authorization header as is.
type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// LogoutResponse is returned on a successful logout.
type LogoutResponse struct {
	Message string `json:"message"`
}
