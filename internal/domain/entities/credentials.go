package entities

import "strings"

// WordPressCredentials is the CMS credential bundle. Password is expected to
// be a WordPress application password, not the account password.
type WordPressCredentials struct {
	URL      string `json:"url"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// HasMinimum reports whether the bundle can back a publish attempt
func (c WordPressCredentials) HasMinimum() bool {
	return c.URL != "" && c.Username != "" && c.Password != ""
}

// HasValidURL performs the syntactic scheme check applied before any CMS call
func (c WordPressCredentials) HasValidURL() bool {
	return strings.HasPrefix(c.URL, "http://") || strings.HasPrefix(c.URL, "https://")
}

// TwitterCredentials holds the four OAuth 1.0a fields; all are required
type TwitterCredentials struct {
	APIKey            string `json:"apiKey"`
	APISecret         string `json:"apiSecret"`
	AccessToken       string `json:"accessToken"`
	AccessTokenSecret string `json:"accessTokenSecret"`
}

// Complete reports whether every required field is present
func (c TwitterCredentials) Complete() bool {
	return c.APIKey != "" && c.APISecret != "" && c.AccessToken != "" && c.AccessTokenSecret != ""
}

// LinkedInCredentials holds the LinkedIn OAuth bundle; publish calls only
// need the access token.
type LinkedInCredentials struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	AccessToken  string `json:"accessToken"`
}

// SocialCredentials groups the per-network bundles, stored as one record
type SocialCredentials struct {
	Twitter  TwitterCredentials  `json:"twitter"`
	LinkedIn LinkedInCredentials `json:"linkedin"`
}
