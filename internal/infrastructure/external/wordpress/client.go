package wordpress

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	apperrors "github.com/meetingflow-team/meeting-publisher/errors"
	"github.com/meetingflow-team/meeting-publisher/internal/domain/entities"
	"github.com/meetingflow-team/meeting-publisher/pkg/config"
)

const serviceName = "WordPress"

// Post statuses accepted by the CMS create call
const (
	StatusPublish = "publish"
	StatusDraft   = "draft"
	StatusFuture  = "future"
)

// Client talks to a WordPress site's REST API. The site URL and credentials
// travel with every call; the client only owns transport tuning.
type Client struct {
	client *http.Client
}

// NewClient creates a WordPress client using the provided config
func NewClient(cfg *config.WordPressConfig) *Client {
	httpClient := &http.Client{}
	if cfg != nil && cfg.Timeout > 0 {
		httpClient.Timeout = cfg.Timeout
	}
	return &Client{client: httpClient}
}

// PostRequest carries the fields for a CMS create call
type PostRequest struct {
	Title         string
	Content       string
	Status        string
	ScheduledDate string
}

// PostResult is the client-facing outcome of a successful create
type PostResult struct {
	ID      int    `json:"id"`
	Status  string `json:"status"`
	Link    string `json:"link"`
	Message string `json:"message"`
}

// DeleteResult is the soft result of a successful delete
type DeleteResult struct {
	Deleted bool                   `json:"deleted"`
	Data    map[string]interface{} `json:"data,omitempty"`
}

type createPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Status  string `json:"status"`
	Date    string `json:"date,omitempty"`
}

// CreatePost publishes a post to the site identified by creds.URL.
// The scheduled date is sent only when status is "future".
func (c *Client) CreatePost(ctx context.Context, creds entities.WordPressCredentials, post PostRequest) (*PostResult, error) {
	status := post.Status
	if status == "" {
		status = StatusPublish
	}

	payload := createPayload{
		Title:   post.Title,
		Content: post.Content,
		Status:  status,
	}
	if status == StatusFuture && post.ScheduledDate != "" {
		payload.Date = post.ScheduledDate
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, postsEndpoint(creds.URL), bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	setAuth(req, creds)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperrors.ErrNetwork(serviceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, mapError(resp)
	}

	var data struct {
		ID     int    `json:"id"`
		Status string `json:"status"`
		Link   string `json:"link"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, apperrors.ErrUpstream(http.StatusInternalServerError,
			"Invalid response from WordPress API. The post may have been created but we couldn't confirm it.")
	}

	return &PostResult{
		ID:      data.ID,
		Status:  data.Status,
		Link:    data.Link,
		Message: successMessage(status),
	}, nil
}

// DeletePost deletes a post by id. An empty success body still counts as a
// successful delete.
func (c *Client) DeletePost(ctx context.Context, creds entities.WordPressCredentials, postID string) (*DeleteResult, error) {
	url := fmt.Sprintf("%s/%s", postsEndpoint(creds.URL), postID)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	setAuth(req, creds)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperrors.ErrNetwork(serviceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, mapDeleteError(resp)
	}

	result := &DeleteResult{Deleted: true}
	body, err := io.ReadAll(resp.Body)
	if err != nil || len(strings.TrimSpace(string(body))) == 0 {
		return result, nil
	}
	var data map[string]interface{}
	if err := json.Unmarshal(body, &data); err == nil {
		result.Data = data
	}
	return result, nil
}

func postsEndpoint(siteURL string) string {
	return strings.TrimSuffix(siteURL, "/") + "/wp-json/wp/v2/posts"
}

func setAuth(req *http.Request, creds entities.WordPressCredentials) {
	token := base64.StdEncoding.EncodeToString([]byte(creds.Username + ":" + creds.Password))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+token)
}

func successMessage(status string) string {
	switch status {
	case StatusDraft:
		return "Post saved as draft successfully"
	case StatusFuture:
		return "Post scheduled successfully"
	default:
		return "Post published successfully"
	}
}

func mapError(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return apperrors.ErrInvalidCredential(serviceName)
	case http.StatusForbidden:
		return apperrors.ErrForbidden("Insufficient permissions. Make sure you're using an Application Password.")
	case http.StatusNotFound:
		return apperrors.ErrNotFound("WordPress site")
	default:
		return apperrors.ErrUpstream(resp.StatusCode, extractMessage(resp))
	}
}

func mapDeleteError(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return apperrors.ErrInvalidCredential(serviceName)
	case http.StatusForbidden:
		return apperrors.ErrForbidden("Insufficient permissions to delete post")
	case http.StatusNotFound:
		return apperrors.ErrNotFound("Post")
	default:
		return apperrors.ErrUpstream(resp.StatusCode, extractMessage(resp))
	}
}

// extractMessage pulls the best-effort error text from a WordPress response:
// the JSON "message" or "error" field when the body is JSON, the raw body
// when it is not, and the status line as a last resort.
func extractMessage(resp *http.Response) string {
	fallback := fmt.Sprintf("WordPress API error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fallback
	}
	text := strings.TrimSpace(string(body))
	if text == "" {
		return fallback
	}
	if strings.HasPrefix(text, "{") || strings.HasPrefix(text, "[") {
		var data struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if err := json.Unmarshal(body, &data); err == nil {
			if data.Message != "" {
				return data.Message
			}
			if data.Error != "" {
				return data.Error
			}
		}
		return fallback
	}
	return text
}
