package twitter

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/meetingflow-team/meeting-publisher/errors"
	"github.com/meetingflow-team/meeting-publisher/internal/domain/entities"
	"github.com/meetingflow-team/meeting-publisher/pkg/config"
)

// SimulatedClient satisfies Gateway without touching the real API. It
// validates the credential bundle, waits a fixed artificial delay and
// returns a synthetic success, so the publish/delete flow can be exercised
// end to end before a signed integration exists.
type SimulatedClient struct {
	delay time.Duration
	now   func() time.Time
}

// NewSimulatedClient creates a simulated Twitter gateway using the provided
// config.
func NewSimulatedClient(cfg *config.TwitterConfig) *SimulatedClient {
	delay := time.Second
	if cfg != nil && cfg.SimulatedDelay >= 0 {
		delay = cfg.SimulatedDelay
	}
	return &SimulatedClient{
		delay: delay,
		now:   time.Now,
	}
}

// PostTweet returns a synthetic tweet id after the artificial delay. Content
// is truncated to the platform character limit, matching what a real client
// would submit.
func (sc *SimulatedClient) PostTweet(ctx context.Context, creds entities.TwitterCredentials, content string) (*PostResult, error) {
	if content == "" || !creds.Complete() {
		return nil, apperrors.ErrValidation("Content and all Twitter credentials are required")
	}

	if err := sc.wait(ctx); err != nil {
		return nil, err
	}

	text := []rune(content)
	if len(text) > characterLimit {
		text = text[:characterLimit]
	}

	id := fmt.Sprintf("tweet_%d", sc.now().UnixMilli())
	return &PostResult{
		ID:      id,
		Text:    string(text),
		Message: "Tweet posted successfully (Demo Mode)",
		URL:     fmt.Sprintf("https://twitter.com/user/status/%s", id),
	}, nil
}

// DeleteTweet reports a synthetic successful delete after the delay
func (sc *SimulatedClient) DeleteTweet(ctx context.Context, creds entities.TwitterCredentials, tweetID string) (*DeleteResult, error) {
	if tweetID == "" || !creds.Complete() {
		return nil, apperrors.ErrValidation("Tweet ID and all Twitter credentials are required")
	}

	if err := sc.wait(ctx); err != nil {
		return nil, err
	}

	return &DeleteResult{Deleted: true, TweetID: tweetID}, nil
}

func (sc *SimulatedClient) wait(ctx context.Context) error {
	if sc.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(sc.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return apperrors.ErrNetwork("Twitter", ctx.Err())
	case <-timer.C:
		return nil
	}
}
