package twitter

import (
	"context"

	"github.com/meetingflow-team/meeting-publisher/internal/domain/entities"
)

// characterLimit is the platform's per-post character limit
const characterLimit = 280

// PostResult is the client-facing outcome of a successful create
type PostResult struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

// DeleteResult is the soft result of a successful delete
type DeleteResult struct {
	Deleted bool   `json:"deleted"`
	TweetID string `json:"tweetId"`
}

// Gateway is the Twitter publish contract. The shipped implementation is
// SimulatedClient; a real OAuth 1.0a signed client is a drop-in replacement
// as long as it keeps the same inputs (all four credential fields required,
// content truncated to the character limit) and error kinds.
type Gateway interface {
	PostTweet(ctx context.Context, creds entities.TwitterCredentials, content string) (*PostResult, error)
	DeleteTweet(ctx context.Context, creds entities.TwitterCredentials, tweetID string) (*DeleteResult, error)
}
