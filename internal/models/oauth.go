package models

const ClientCredentialsGrant = "client_credentials"

// MaxTokenLifetime caps expires_in, in seconds. App tokens live about 60 days.
const MaxTokenLifetime int64 = 365 * 24 * 60 * 60

type TwitchOAuthGetTokenResponse struct {
	AccessToken string   `json:"access_token"`
	ExpiresIn   int64    `json:"expires_in"` // seconds
	Scope       []string `json:"scope"`
	TokenType   string   `json:"token_type"`
}
