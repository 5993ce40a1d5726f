package fireflies

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "github.com/meetingflow-team/meeting-publisher/errors"
	"github.com/meetingflow-team/meeting-publisher/internal/domain/entities"
	"github.com/meetingflow-team/meeting-publisher/pkg/config"
)

const serviceName = "Fireflies"

// listPageSize caps transcript listing to the first page
const listPageSize = 50

// Client is a minimal GraphQL client for the Fireflies transcript API.
// API keys are per-user and supplied on every call rather than held on the
// client.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Fireflies client using the provided config
func NewClient(cfg *config.FirefliesConfig) *Client {
	base := "https://api.fireflies.ai/graphql"
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	}
	httpClient := &http.Client{}
	if cfg != nil && cfg.Timeout > 0 {
		httpClient.Timeout = cfg.Timeout
	}
	return &Client{
		baseURL: base,
		client:  httpClient,
	}
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// ValidateAPIKey issues a minimal read query to verify the key works.
// Any non-success status or application-level error payload is reported as
// an invalid credential.
func (c *Client) ValidateAPIKey(ctx context.Context, apiKey string) error {
	const query = `query { transcripts(limit: 1) { id } }`

	resp, err := c.do(ctx, apiKey, graphQLRequest{Query: query})
	if err != nil {
		return err
	}
	if len(resp.Errors) > 0 {
		return apperrors.ErrInvalidCredential(serviceName)
	}
	return nil
}

// ListTranscripts fetches up to one page of meetings in [from, to], in the
// remote source's default order. No pagination beyond the first page.
func (c *Client) ListTranscripts(ctx context.Context, apiKey, fromInstant, toInstant string) ([]entities.Meeting, error) {
	const query = `
      query Transcripts($limit: Int, $skip: Int, $fromDate: DateTime, $toDate: DateTime) {
        transcripts(limit: $limit, skip: $skip, fromDate: $fromDate, toDate: $toDate) {
          id
          title
          transcript_url
          dateString
          audio_url
          video_url
          sentences {
            raw_text
            speaker_name
            speaker_id
          }
        }
      }
    `

	resp, err := c.do(ctx, apiKey, graphQLRequest{
		Query: query,
		Variables: map[string]interface{}{
			"limit":    listPageSize,
			"skip":     0,
			"fromDate": fromInstant,
			"toDate":   toInstant,
		},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Errors) > 0 {
		return nil, apperrors.ErrUpstream(http.StatusBadRequest, resp.Errors[0].Message)
	}

	var data struct {
		Transcripts []entities.Meeting `json:"transcripts"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, apperrors.ErrUpstream(http.StatusBadGateway, "Malformed transcript list payload")
	}
	if data.Transcripts == nil {
		return []entities.Meeting{}, nil
	}
	return data.Transcripts, nil
}

// GetSummary fetches the structured summary for one meeting. A payload that
// omits the summary yields an empty Summary rather than an error.
func (c *Client) GetSummary(ctx context.Context, apiKey, meetingID string) (entities.Summary, error) {
	const query = `
      query Transcript($transcriptId: String!) {
        transcript(id: $transcriptId) {
          summary {
            keywords
            action_items
            outline
            shorthand_bullet
            overview
            bullet_gist
            gist
            short_summary
          }
        }
      }
    `

	resp, err := c.do(ctx, apiKey, graphQLRequest{
		Query:     query,
		Variables: map[string]interface{}{"transcriptId": meetingID},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Errors) > 0 {
		return nil, apperrors.ErrUpstream(http.StatusBadRequest, resp.Errors[0].Message)
	}

	var data struct {
		Transcript struct {
			Summary entities.Summary `json:"summary"`
		} `json:"transcript"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, apperrors.ErrUpstream(http.StatusBadGateway, "Malformed summary payload")
	}
	if data.Transcript.Summary == nil {
		return entities.Summary{}, nil
	}
	return data.Transcript.Summary, nil
}

func (c *Client) do(ctx context.Context, apiKey string, gql graphQLRequest) (*graphQLResponse, error) {
	body, err := json.Marshal(gql)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", apiKey))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperrors.ErrNetwork(serviceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, apperrors.ErrInvalidCredential(serviceName)
	}
	if resp.StatusCode >= 400 {
		return nil, apperrors.ErrUpstream(resp.StatusCode, fmt.Sprintf("%s returned status %d", serviceName, resp.StatusCode))
	}

	var gqlResp graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return nil, apperrors.ErrUpstream(http.StatusBadGateway, "Malformed response from "+serviceName)
	}
	return &gqlResp, nil
}
