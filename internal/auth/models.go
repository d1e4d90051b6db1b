package auth

// DevAuthRequest selects the identity and role for a locally issued token.
type DevAuthRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// DevAuthResponse carries a locally issued access token.
type DevAuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
