package linkedin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	apperrors "github.com/meetingflow-team/meeting-publisher/errors"
	"github.com/meetingflow-team/meeting-publisher/internal/domain/entities"
	"github.com/meetingflow-team/meeting-publisher/pkg/config"
)

const serviceName = "LinkedIn"

const restliProtocolHeader = "X-Restli-Protocol-Version"

// Client talks to the LinkedIn REST API. Requests are authenticated with the
// caller's access token via an oauth2 bearer transport built per call.
type Client struct {
	baseURL string
	timeout time.Duration
}

// NewClient creates a LinkedIn client using the provided config
func NewClient(cfg *config.LinkedInConfig) *Client {
	base := "https://api.linkedin.com"
	var timeout time.Duration
	if cfg != nil {
		timeout = cfg.Timeout
		if cfg.BaseURL != "" {
			base = cfg.BaseURL
		}
	}
	return &Client{baseURL: base, timeout: timeout}
}

// PostResult is the client-facing outcome of a successful create
type PostResult struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

// DeleteResult is the soft result of a successful delete
type DeleteResult struct {
	Deleted bool   `json:"deleted"`
	PostID  string `json:"postId"`
}

type shareCommentary struct {
	Text string `json:"text"`
}

type shareContent struct {
	ShareCommentary    shareCommentary `json:"shareCommentary"`
	ShareMediaCategory string          `json:"shareMediaCategory"`
}

type ugcPost struct {
	Author          string                  `json:"author"`
	LifecycleState  string                  `json:"lifecycleState"`
	SpecificContent map[string]shareContent `json:"specificContent"`
	Visibility      map[string]string       `json:"visibility"`
}

// CreatePost resolves the caller's member id from the access token and then
// publishes a public text post authored by that member. A failed profile
// lookup is treated as an invalid credential.
func (c *Client) CreatePost(ctx context.Context, creds entities.LinkedInCredentials, content string) (*PostResult, error) {
	httpClient := c.authClient(ctx, creds)

	personID, err := c.resolveProfile(ctx, httpClient)
	if err != nil {
		return nil, err
	}

	post := ugcPost{
		Author:         fmt.Sprintf("urn:li:person:%s", personID),
		LifecycleState: "PUBLISHED",
		SpecificContent: map[string]shareContent{
			"com.linkedin.ugc.ShareContent": {
				ShareCommentary:    shareCommentary{Text: content},
				ShareMediaCategory: "NONE",
			},
		},
		Visibility: map[string]string{
			"com.linkedin.ugc.MemberNetworkVisibility": "PUBLIC",
		},
	}

	body, err := json.Marshal(post)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/ugcPosts", bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(restliProtocolHeader, "2.0.0")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, apperrors.ErrNetwork(serviceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, apperrors.ErrUpstream(resp.StatusCode, extractMessage(resp, "Failed to post to LinkedIn"))
	}

	var data struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, apperrors.ErrUpstream(http.StatusBadGateway, "Malformed response from LinkedIn")
	}

	return &PostResult{
		ID:      data.ID,
		Message: "Posted to LinkedIn successfully",
		URL:     fmt.Sprintf("https://www.linkedin.com/feed/update/%s", data.ID),
	}, nil
}

// DeletePost deletes a post by id using the stored access token
func (c *Client) DeletePost(ctx context.Context, creds entities.LinkedInCredentials, postID string) (*DeleteResult, error) {
	httpClient := c.authClient(ctx, creds)

	url := fmt.Sprintf("%s/v2/ugcPosts/%s", c.baseURL, postID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	req.Header.Set(restliProtocolHeader, "2.0.0")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, apperrors.ErrNetwork(serviceName, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, apperrors.ErrInvalidCredential(serviceName)
	case resp.StatusCode == http.StatusForbidden:
		return nil, apperrors.ErrForbidden("Insufficient permissions to delete post")
	case resp.StatusCode == http.StatusNotFound:
		return nil, apperrors.ErrNotFound("Post")
	case resp.StatusCode >= 400:
		fallback := fmt.Sprintf("LinkedIn API error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		return nil, apperrors.ErrUpstream(resp.StatusCode, extractMessage(resp, fallback))
	}

	// LinkedIn deletes typically return 204 No Content
	return &DeleteResult{Deleted: true, PostID: postID}, nil
}

// resolveProfile returns the member id behind the access token
func (c *Client) resolveProfile(ctx context.Context, httpClient *http.Client) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v2/people/~", nil)
	if err != nil {
		return "", apperrors.ErrInternal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", apperrors.ErrNetwork(serviceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", apperrors.ErrInvalidCredential(serviceName)
	}

	var profile struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return "", apperrors.ErrInvalidCredential(serviceName)
	}
	return profile.ID, nil
}

// authClient builds an HTTP client whose transport injects the bearer token
func (c *Client) authClient(ctx context.Context, creds entities.LinkedInCredentials) *http.Client {
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: creds.AccessToken})
	httpClient := oauth2.NewClient(ctx, source)
	if c.timeout > 0 {
		httpClient.Timeout = c.timeout
	}
	return httpClient
}

func extractMessage(resp *http.Response, fallback string) string {
	var data struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err == nil && data.Message != "" {
		return data.Message
	}
	return fallback
}
