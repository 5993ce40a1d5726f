package auth

// LoginRequest carries the transcript-source API key to validate
type LoginRequest struct {
	APIKey string `json:"apiKey" validate:"required"`
}
