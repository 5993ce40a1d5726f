package publish

import (
	"github.com/meetingflow-team/meeting-publisher/internal/domain/entities"
	"github.com/meetingflow-team/meeting-publisher/internal/usecase/publisher"
)

// WordPressPostRequest is the per-platform CMS create body
type WordPressPostRequest struct {
	WPURL         string `json:"wpUrl" validate:"required"`
	WPUsername    string `json:"wpUsername" validate:"required"`
	WPPassword    string `json:"wpPassword" validate:"required"`
	Title         string `json:"title" validate:"required"`
	Content       string `json:"content" validate:"required"`
	Status        string `json:"status" validate:"omitempty,oneof=publish draft future"`
	ScheduledDate string `json:"scheduledDate"`
}

// Credentials assembles the entity bundle from the request fields
func (r WordPressPostRequest) Credentials() entities.WordPressCredentials {
	return entities.WordPressCredentials{URL: r.WPURL, Username: r.WPUsername, Password: r.WPPassword}
}

// WordPressDeleteRequest is the per-platform CMS delete body
type WordPressDeleteRequest struct {
	WPURL      string `json:"wpUrl" validate:"required"`
	WPUsername string `json:"wpUsername" validate:"required"`
	WPPassword string `json:"wpPassword" validate:"required"`
	PostID     string `json:"postId" validate:"required"`
}

// Credentials assembles the entity bundle from the request fields
func (r WordPressDeleteRequest) Credentials() entities.WordPressCredentials {
	return entities.WordPressCredentials{URL: r.WPURL, Username: r.WPUsername, Password: r.WPPassword}
}

// LinkedInPostRequest is the per-platform LinkedIn create body
type LinkedInPostRequest struct {
	Content     string                       `json:"content" validate:"required"`
	Credentials entities.LinkedInCredentials `json:"credentials"`
}

// LinkedInDeleteRequest is the per-platform LinkedIn delete body
type LinkedInDeleteRequest struct {
	PostID      string                       `json:"postId" validate:"required"`
	Credentials entities.LinkedInCredentials `json:"credentials"`
}

// TwitterPostRequest is the per-platform Twitter create body
type TwitterPostRequest struct {
	Content     string                      `json:"content" validate:"required"`
	Credentials entities.TwitterCredentials `json:"credentials"`
}

// TwitterDeleteRequest is the per-platform Twitter delete body
type TwitterDeleteRequest struct {
	TweetID     string                      `json:"tweetId" validate:"required"`
	Credentials entities.TwitterCredentials `json:"credentials"`
}

// BatchRequest drives one publish fan-out for a processed meeting
type BatchRequest struct {
	MeetingID       string                        `json:"meetingId" validate:"required"`
	Platforms       publisher.PlatformSelection   `json:"platforms"`
	WordPress       entities.WordPressCredentials `json:"wordpress"`
	Social          entities.SocialCredentials    `json:"social"`
	PostStatus      string                        `json:"postStatus" validate:"omitempty,oneof=publish draft future"`
	ScheduledDate   string                        `json:"scheduledDate"`
	TwitterContent  string                        `json:"twitterContent"`
	LinkedInContent string                        `json:"linkedinContent"`
}

// DeletePostRequest targets one platform's post on one processed meeting
type DeletePostRequest struct {
	MeetingID string                        `json:"meetingId" validate:"required"`
	Platform  string                        `json:"platform" validate:"required,oneof=wordpress twitter linkedin"`
	WordPress entities.WordPressCredentials `json:"wordpress"`
	Social    entities.SocialCredentials    `json:"social"`
}

// CredentialsPayload is the stored-bundle shape for GET/PUT
type CredentialsPayload struct {
	WordPress entities.WordPressCredentials `json:"wordpress"`
	Social    entities.SocialCredentials    `json:"social"`
}
