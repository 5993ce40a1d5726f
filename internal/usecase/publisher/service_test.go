package publisher

import (
	"context"
	stdErrors "errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	apperrors "github.com/meetingflow-team/meeting-publisher/errors"
	"github.com/meetingflow-team/meeting-publisher/internal/domain/entities"
	"github.com/meetingflow-team/meeting-publisher/internal/infrastructure/external/linkedin"
	"github.com/meetingflow-team/meeting-publisher/internal/infrastructure/external/twitter"
	"github.com/meetingflow-team/meeting-publisher/internal/infrastructure/external/wordpress"
	"github.com/meetingflow-team/meeting-publisher/internal/infrastructure/keyvalue"
	"github.com/meetingflow-team/meeting-publisher/internal/usecase/credentials"
)

type fakeTranscripts struct {
	meetings []entities.Meeting
	summary  entities.Summary
	listErr  error
	sumErr   error
}

func (f *fakeTranscripts) ValidateAPIKey(ctx context.Context, apiKey string) error { return nil }

func (f *fakeTranscripts) ListTranscripts(ctx context.Context, apiKey, from, to string) ([]entities.Meeting, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.meetings, nil
}

func (f *fakeTranscripts) GetSummary(ctx context.Context, apiKey, meetingID string) (entities.Summary, error) {
	if f.sumErr != nil {
		return nil, f.sumErr
	}
	return f.summary, nil
}

type fakeCMS struct {
	createErr error
	deleteErr error
	deleted   []string
}

func (f *fakeCMS) CreatePost(ctx context.Context, creds entities.WordPressCredentials, post wordpress.PostRequest) (*wordpress.PostResult, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &wordpress.PostResult{ID: 42, Status: "publish", Message: "Post published successfully"}, nil
}

func (f *fakeCMS) DeletePost(ctx context.Context, creds entities.WordPressCredentials, postID string) (*wordpress.DeleteResult, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	f.deleted = append(f.deleted, postID)
	return &wordpress.DeleteResult{Deleted: true}, nil
}

type fakeLinkedIn struct {
	createErr error
	deleteErr error
}

func (f *fakeLinkedIn) CreatePost(ctx context.Context, creds entities.LinkedInCredentials, content string) (*linkedin.PostResult, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &linkedin.PostResult{ID: "urn:li:share:1", Message: "Posted to LinkedIn successfully"}, nil
}

func (f *fakeLinkedIn) DeletePost(ctx context.Context, creds entities.LinkedInCredentials, postID string) (*linkedin.DeleteResult, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return &linkedin.DeleteResult{Deleted: true, PostID: postID}, nil
}

type fakeTwitter struct {
	postErr   error
	deleteErr error
}

func (f *fakeTwitter) PostTweet(ctx context.Context, creds entities.TwitterCredentials, content string) (*twitter.PostResult, error) {
	if f.postErr != nil {
		return nil, f.postErr
	}
	return &twitter.PostResult{ID: "tweet_1", Text: content, Message: "Tweet posted successfully (Demo Mode)"}, nil
}

func (f *fakeTwitter) DeleteTweet(ctx context.Context, creds entities.TwitterCredentials, tweetID string) (*twitter.DeleteResult, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return &twitter.DeleteResult{Deleted: true, TweetID: tweetID}, nil
}

type fixture struct {
	svc       *fakeTranscripts
	cms       *fakeCMS
	linkedIn  *fakeLinkedIn
	twitter   *fakeTwitter
	credStore *credentials.Store
	service   *Service
}

func newFixture() *fixture {
	f := &fixture{
		svc: &fakeTranscripts{
			summary: entities.Summary{
				"overview":     "Overview text.",
				"action_items": []interface{}{"Do a thing"},
			},
		},
		cms:       &fakeCMS{},
		linkedIn:  &fakeLinkedIn{},
		twitter:   &fakeTwitter{},
		credStore: credentials.NewStore(keyvalue.NewMemoryStore()),
	}
	f.service = NewService(f.svc, f.cms, f.linkedIn, f.twitter, f.credStore, zap.NewNop())
	return f
}

func (f *fixture) process(t *testing.T, id, title string) {
	t.Helper()
	_, err := f.service.ProcessMeeting(context.Background(), "key", entities.Meeting{ID: id, Title: title, DateString: "2024-03-01T09:00:00.000Z"})
	if err != nil {
		t.Fatalf("process %s failed: %v", id, err)
	}
}

func fullPublishRequest(meetingID string) PublishRequest {
	return PublishRequest{
		MeetingID: meetingID,
		Platforms: PlatformSelection{WordPress: true, Twitter: true, LinkedIn: true},
		WordPress: entities.WordPressCredentials{URL: "https://blog.example.com", Username: "admin", Password: "pass"},
		Social: entities.SocialCredentials{
			Twitter:  entities.TwitterCredentials{APIKey: "k", APISecret: "s", AccessToken: "t", AccessTokenSecret: "ts"},
			LinkedIn: entities.LinkedInCredentials{AccessToken: "li"},
		},
		TwitterContent:  "tweet text",
		LinkedInContent: "linkedin text",
	}
}

func TestFetchMeetingsValidation(t *testing.T) {
	f := newFixture()
	_, err := f.service.FetchMeetings(context.Background(), "", "2024-03-01", "2024-03-05")
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_VALIDATION {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestFetchMeetingsReplacesListOnlyOnSuccess(t *testing.T) {
	f := newFixture()
	f.svc.meetings = []entities.Meeting{{ID: "m1", Title: "First"}}

	meetings, err := f.service.FetchMeetings(context.Background(), "key", "2024-03-01", "2024-03-05")
	if err != nil || len(meetings) != 1 {
		t.Fatalf("fetch failed: %v %v", meetings, err)
	}

	f.svc.listErr = apperrors.ErrUpstream(500, "boom")
	if _, err := f.service.FetchMeetings(context.Background(), "key", "2024-03-01", "2024-03-05"); err == nil {
		t.Fatalf("expected upstream error")
	}
	if got := f.service.Meetings(); len(got) != 1 || got[0].ID != "m1" {
		t.Fatalf("failed fetch must not clobber prior list: %v", got)
	}
}

func TestProcessMeetingReplacesByID(t *testing.T) {
	f := newFixture()
	f.process(t, "m1", "First Title")
	f.process(t, "m2", "Other")
	f.process(t, "m1", "Renamed Title")

	processed := f.service.Processed()
	if len(processed) != 2 {
		t.Fatalf("reprocessing must replace, not append: %d records", len(processed))
	}
	if processed[0].MeetingID != "m1" || processed[0].MeetingTitle != "Renamed Title" {
		t.Fatalf("record not replaced in place: %+v", processed[0])
	}
}

func TestProcessMeetingRendersBlogPost(t *testing.T) {
	f := newFixture()
	record, err := f.service.ProcessMeeting(context.Background(), "key", entities.Meeting{ID: "m1", Title: "Standup"})
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if !strings.Contains(record.BlogPost, "# Standup") || !strings.Contains(record.BlogPost, "## Overview") {
		t.Fatalf("blog post not rendered:\n%s", record.BlogPost)
	}

	title, blogPost, err := f.service.BlogPost("m1")
	if err != nil || title != "Standup" || blogPost != record.BlogPost {
		t.Fatalf("blog post lookup mismatch: %v", err)
	}
}

func TestBlogPostUnknownMeeting(t *testing.T) {
	f := newFixture()
	_, _, err := f.service.BlogPost("ghost")
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_NOT_FOUND {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPublishAllPlatforms(t *testing.T) {
	f := newFixture()
	f.process(t, "m1", "Standup")

	outcome, err := f.service.Publish(context.Background(), fullPublishRequest("m1"))
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if !outcome.Success || len(outcome.Results) != 3 {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
	if outcome.Meeting.WordPressPostID == nil || *outcome.Meeting.WordPressPostID != 42 {
		t.Fatalf("wordpress state not merged: %+v", outcome.Meeting)
	}
	if outcome.Meeting.SocialPosts["twitter"].ID != "tweet_1" || outcome.Meeting.SocialPosts["linkedin"].ID != "urn:li:share:1" {
		t.Fatalf("social state not merged: %+v", outcome.Meeting.SocialPosts)
	}
}

func TestPublishPartialFailure(t *testing.T) {
	f := newFixture()
	f.process(t, "m1", "Standup")
	f.twitter.postErr = apperrors.ErrUpstream(500, "twitter down")

	outcome, err := f.service.Publish(context.Background(), fullPublishRequest("m1"))
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if outcome.Success {
		t.Fatalf("any failed platform must fail the batch: %+v", outcome)
	}
	if len(outcome.Results) != 3 {
		t.Fatalf("every attempted platform reports a line: %v", outcome.Results)
	}
	var twitterLine string
	for _, line := range outcome.Results {
		if strings.HasPrefix(line, "Twitter:") {
			twitterLine = line
		}
	}
	if !strings.Contains(twitterLine, "twitter down") {
		t.Fatalf("failure line should carry the error message: %q", twitterLine)
	}
	// Successful platforms keep their merged state despite the batch failing
	if outcome.Meeting.WordPressPostID == nil {
		t.Fatalf("wordpress success should persist: %+v", outcome.Meeting)
	}
	if _, tracked := outcome.Meeting.SocialPosts["twitter"]; tracked {
		t.Fatalf("failed platform must not be tracked: %+v", outcome.Meeting.SocialPosts)
	}
}

func TestPublishInvalidWordPressURL(t *testing.T) {
	f := newFixture()
	f.process(t, "m1", "Standup")

	req := fullPublishRequest("m1")
	req.Platforms = PlatformSelection{WordPress: true}
	req.WordPress.URL = "blog.example.com"

	outcome, err := f.service.Publish(context.Background(), req)
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if outcome.Success || len(outcome.Results) != 1 || outcome.Results[0] != "WordPress: Invalid URL format" {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
}

func TestPublishNothingConfigured(t *testing.T) {
	f := newFixture()
	f.process(t, "m1", "Standup")

	req := PublishRequest{MeetingID: "m1", Platforms: PlatformSelection{Twitter: true}}
	_, err := f.service.Publish(context.Background(), req)
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_VALIDATION {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPublishUnknownMeeting(t *testing.T) {
	f := newFixture()
	_, err := f.service.Publish(context.Background(), fullPublishRequest("ghost"))
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_NOT_FOUND {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPublishSavesCredentialsEvenOnFailure(t *testing.T) {
	f := newFixture()
	f.process(t, "m1", "Standup")
	f.cms.createErr = apperrors.ErrInvalidCredential("WordPress")

	req := fullPublishRequest("m1")
	if _, err := f.service.Publish(context.Background(), req); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	wp, err := f.credStore.LoadWordPress(context.Background())
	if err != nil || wp != req.WordPress {
		t.Fatalf("credentials not saved: %+v %v", wp, err)
	}
	social, err := f.credStore.LoadSocial(context.Background())
	if err != nil || social != req.Social {
		t.Fatalf("social credentials not saved: %+v %v", social, err)
	}
}

func TestDeletePostClearsOnlyTargetPlatform(t *testing.T) {
	f := newFixture()
	f.process(t, "m1", "Standup")
	if _, err := f.service.Publish(context.Background(), fullPublishRequest("m1")); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	outcome, err := f.service.DeletePost(context.Background(), DeleteRequest{
		MeetingID: "m1",
		Platform:  "twitter",
		Social:    fullPublishRequest("m1").Social,
	})
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if outcome.Message != "Twitter post deleted successfully" {
		t.Fatalf("unexpected message %q", outcome.Message)
	}
	if _, tracked := outcome.Meeting.SocialPosts["twitter"]; tracked {
		t.Fatalf("twitter entry should be gone: %+v", outcome.Meeting.SocialPosts)
	}
	if outcome.Meeting.SocialPosts["linkedin"].ID == "" || outcome.Meeting.WordPressPostID == nil {
		t.Fatalf("other platforms must be untouched: %+v", outcome.Meeting)
	}
}

func TestDeletePostDropsEmptySocialMap(t *testing.T) {
	f := newFixture()
	f.process(t, "m1", "Standup")

	req := fullPublishRequest("m1")
	req.Platforms = PlatformSelection{LinkedIn: true}
	if _, err := f.service.Publish(context.Background(), req); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	outcome, err := f.service.DeletePost(context.Background(), DeleteRequest{
		MeetingID: "m1",
		Platform:  "linkedin",
		Social:    req.Social,
	})
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if outcome.Meeting.SocialPosts != nil {
		t.Fatalf("empty social map should be dropped, got %+v", outcome.Meeting.SocialPosts)
	}
}

func TestDeletePostUsesTrackedWordPressID(t *testing.T) {
	f := newFixture()
	f.process(t, "m1", "Standup")
	if _, err := f.service.Publish(context.Background(), fullPublishRequest("m1")); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	outcome, err := f.service.DeletePost(context.Background(), DeleteRequest{
		MeetingID: "m1",
		Platform:  "wordpress",
		WordPress: fullPublishRequest("m1").WordPress,
	})
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(f.cms.deleted) != 1 || f.cms.deleted[0] != "42" {
		t.Fatalf("delete must target the tracked post id: %v", f.cms.deleted)
	}
	if outcome.Meeting.WordPressPostID != nil || outcome.Meeting.WordPressStatus != "" {
		t.Fatalf("wordpress state should be cleared: %+v", outcome.Meeting)
	}
}

func TestDeletePostUntracked(t *testing.T) {
	f := newFixture()
	f.process(t, "m1", "Standup")

	_, err := f.service.DeletePost(context.Background(), DeleteRequest{MeetingID: "m1", Platform: "twitter"})
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_NOT_FOUND {
		t.Fatalf("expected not found for untracked post, got %v", err)
	}
}

func TestDeletePostFailureLeavesStateIntact(t *testing.T) {
	f := newFixture()
	f.process(t, "m1", "Standup")
	if _, err := f.service.Publish(context.Background(), fullPublishRequest("m1")); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	f.cms.deleteErr = apperrors.ErrForbidden("Insufficient permissions to delete post")

	_, err := f.service.DeletePost(context.Background(), DeleteRequest{
		MeetingID: "m1",
		Platform:  "wordpress",
		WordPress: fullPublishRequest("m1").WordPress,
	})
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_FORBIDDEN {
		t.Fatalf("expected forbidden, got %v", err)
	}

	processed := f.service.Processed()
	if processed[0].WordPressPostID == nil {
		t.Fatalf("failed delete must not clear state: %+v", processed[0])
	}
}
