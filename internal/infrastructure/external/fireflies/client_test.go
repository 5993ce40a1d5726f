package fireflies

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/meetingflow-team/meeting-publisher/errors"
	"github.com/meetingflow-team/meeting-publisher/pkg/config"
)

func newTestClient(url string) *Client {
	return NewClient(&config.FirefliesConfig{BaseURL: url})
}

func TestValidateAPIKey_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer key-123" {
			t.Fatalf("unexpected auth header %q", got)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{"transcripts": []map[string]string{{"id": "t1"}}},
		})
	}))
	defer ts.Close()

	if err := newTestClient(ts.URL).ValidateAPIKey(context.Background(), "key-123"); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
}

func TestValidateAPIKey_GraphQLError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"errors": []map[string]string{{"message": "invalid key"}},
		})
	}))
	defer ts.Close()

	err := newTestClient(ts.URL).ValidateAPIKey(context.Background(), "bad")
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_INVALID_CREDENTIAL {
		t.Fatalf("expected invalid credential, got %v", err)
	}
}

func TestValidateAPIKey_Unauthorized(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	err := newTestClient(ts.URL).ValidateAPIKey(context.Background(), "bad")
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_INVALID_CREDENTIAL {
		t.Fatalf("expected invalid credential, got %v", err)
	}
}

func TestListTranscripts(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req graphQLRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if req.Variables["limit"].(float64) != listPageSize {
			t.Fatalf("unexpected limit %v", req.Variables["limit"])
		}
		if req.Variables["fromDate"] != "2024-03-01T00:00:00Z" {
			t.Fatalf("unexpected fromDate %v", req.Variables["fromDate"])
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"transcripts": []map[string]interface{}{
					{
						"id":         "t1",
						"title":      "Standup",
						"dateString": "2024-03-01T09:00:00.000Z",
						"sentences": []map[string]interface{}{
							{"raw_text": "hello", "speaker_name": "Ana", "speaker_id": 1},
						},
					},
				},
			},
		})
	}))
	defer ts.Close()

	meetings, err := newTestClient(ts.URL).ListTranscripts(context.Background(), "key", "2024-03-01T00:00:00Z", "2024-03-05T23:59:59Z")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(meetings) != 1 || meetings[0].ID != "t1" || meetings[0].Title != "Standup" {
		t.Fatalf("unexpected meetings: %+v", meetings)
	}
	if len(meetings[0].Sentences) != 1 || meetings[0].Sentences[0].SpeakerName != "Ana" || meetings[0].Sentences[0].SpeakerID != 1 {
		t.Fatalf("sentences not decoded: %+v", meetings[0].Sentences)
	}
}

func TestListTranscripts_NullList(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{"transcripts": nil},
		})
	}))
	defer ts.Close()

	meetings, err := newTestClient(ts.URL).ListTranscripts(context.Background(), "key", "a", "b")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if meetings == nil || len(meetings) != 0 {
		t.Fatalf("null list should decode to empty slice, got %v", meetings)
	}
}

func TestGetSummary(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req graphQLRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if req.Variables["transcriptId"] != "t1" {
			t.Fatalf("unexpected transcript id %v", req.Variables["transcriptId"])
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"transcript": map[string]interface{}{
					"summary": map[string]interface{}{
						"overview": "Short.",
						"keywords": []string{"a", "b"},
					},
				},
			},
		})
	}))
	defer ts.Close()

	summary, err := newTestClient(ts.URL).GetSummary(context.Background(), "key", "t1")
	if err != nil {
		t.Fatalf("get summary failed: %v", err)
	}
	if v, ok := summary.Text("overview"); !ok || v != "Short." {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestGetSummary_Missing(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{"transcript": map[string]interface{}{"summary": nil}},
		})
	}))
	defer ts.Close()

	summary, err := newTestClient(ts.URL).GetSummary(context.Background(), "key", "t1")
	if err != nil {
		t.Fatalf("get summary failed: %v", err)
	}
	if summary == nil || len(summary) != 0 {
		t.Fatalf("missing summary should decode to empty map, got %v", summary)
	}
}

func TestUpstreamStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).ListTranscripts(context.Background(), "key", "a", "b")
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_UPSTREAM {
		t.Fatalf("expected upstream error, got %v", err)
	}
}
