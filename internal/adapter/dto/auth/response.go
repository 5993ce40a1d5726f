package auth

// LoginResponse confirms a validated API key
type LoginResponse struct {
	Success bool `json:"success"`
}

// LogoutResponse confirms stored credentials were cleared
type LogoutResponse struct {
	Success bool `json:"success"`
}
