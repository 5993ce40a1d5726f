package publisher

import (
	"context"
	stdErrors "errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/meetingflow-team/meeting-publisher/errors"
	"github.com/meetingflow-team/meeting-publisher/internal/domain/entities"
	"github.com/meetingflow-team/meeting-publisher/internal/infrastructure/external/wordpress"
)

// PlatformSelection flags which publish targets a batch should attempt
type PlatformSelection struct {
	WordPress bool `json:"wordpress"`
	Twitter   bool `json:"twitter"`
	LinkedIn  bool `json:"linkedin"`
}

// PublishRequest drives one publish fan-out for a processed meeting.
// WordPress publishes the rendered blog post; the social platforms publish
// the caller-supplied short-form content.
type PublishRequest struct {
	MeetingID       string
	Platforms       PlatformSelection
	WordPress       entities.WordPressCredentials
	Social          entities.SocialCredentials
	PostStatus      string
	ScheduledDate   string
	TwitterContent  string
	LinkedInContent string
}

// PublishOutcome aggregates the independent per-platform results of a batch.
// Success is false when any attempted platform failed, even though the
// platforms that succeeded have already been merged into the meeting's
// record: partial success stays visible in Meeting.
type PublishOutcome struct {
	Success bool                      `json:"success"`
	Results []string                  `json:"results"`
	Meeting entities.ProcessedMeeting `json:"meeting"`
}

// Publish fans out to each selected platform in turn. Outcomes are
// independent: each platform's result line is appended regardless of the
// others, and each individual success mutates the meeting's record
// immediately. A platform is attempted only when it is selected, its minimum
// credential is present and, for the CMS, the site URL passes the scheme
// check. The submitted credential bundles are persisted wholesale at the end
// of every batch.
func (s *Service) Publish(ctx context.Context, req PublishRequest) (*PublishOutcome, error) {
	s.mu.Lock()
	record := s.find(req.MeetingID)
	var title, blogPost string
	if record != nil {
		title = record.MeetingTitle
		blogPost = record.BlogPost
	}
	s.mu.Unlock()

	if record == nil {
		return nil, apperrors.ErrNotFound("Processed meeting")
	}

	batchID := uuid.New().String()
	var results []string
	var failed bool

	if req.Platforms.WordPress && req.WordPress.HasMinimum() {
		result, err := s.publishWordPress(ctx, req, title, blogPost)
		results = append(results, result)
		failed = failed || err != nil
	}

	if req.Platforms.Twitter && req.TwitterContent != "" && req.Social.Twitter.APIKey != "" {
		result, err := s.publishTwitter(ctx, req)
		results = append(results, result)
		failed = failed || err != nil
	}

	if req.Platforms.LinkedIn && req.LinkedInContent != "" && req.Social.LinkedIn.AccessToken != "" {
		result, err := s.publishLinkedIn(ctx, req)
		results = append(results, result)
		failed = failed || err != nil
	}

	// Credentials are saved wholesale on every publish action, success or not
	if err := s.credStore.SaveWordPress(ctx, req.WordPress); err != nil {
		s.logger.Warn("credentials.save_failed", zap.String("bundle", "wordpress"), zap.Error(err))
	}
	if err := s.credStore.SaveSocial(ctx, req.Social); err != nil {
		s.logger.Warn("credentials.save_failed", zap.String("bundle", "social"), zap.Error(err))
	}

	if len(results) == 0 {
		return nil, apperrors.ErrValidation("No platforms selected or configured")
	}

	outcome := &PublishOutcome{
		Success: !failed,
		Results: results,
		Meeting: s.snapshot(req.MeetingID),
	}
	s.logger.Info("publish.batch_done",
		zap.String("batch_id", batchID),
		zap.String("meeting_id", req.MeetingID),
		zap.Bool("success", outcome.Success),
		zap.Strings("results", results),
	)
	return outcome, nil
}

func (s *Service) publishWordPress(ctx context.Context, req PublishRequest, title, blogPost string) (string, error) {
	if !req.WordPress.HasValidURL() {
		err := apperrors.ErrValidation("Invalid URL format")
		return "WordPress: Invalid URL format", err
	}

	post := wordpress.PostRequest{
		Title:   title,
		Content: blogPost,
		Status:  req.PostStatus,
	}
	if req.PostStatus == wordpress.StatusFuture {
		post.ScheduledDate = req.ScheduledDate
	}

	result, err := s.cms.CreatePost(ctx, req.WordPress, post)
	if err != nil {
		s.logger.Error("publish.wordpress_failed", zap.String("meeting_id", req.MeetingID), zap.Error(err))
		return fmt.Sprintf("WordPress: %s", errorMessage(err)), err
	}

	s.mergeWordPress(req.MeetingID, result.ID, result.Status)
	return fmt.Sprintf("WordPress: %s", result.Message), nil
}

func (s *Service) publishTwitter(ctx context.Context, req PublishRequest) (string, error) {
	result, err := s.twitter.PostTweet(ctx, req.Social.Twitter, req.TwitterContent)
	if err != nil {
		s.logger.Error("publish.twitter_failed", zap.String("meeting_id", req.MeetingID), zap.Error(err))
		return fmt.Sprintf("Twitter: %s", errorMessage(err)), err
	}

	s.mergeSocial(req.MeetingID, entities.PlatformTwitter, result.ID)
	return "Twitter: Posted successfully", nil
}

func (s *Service) publishLinkedIn(ctx context.Context, req PublishRequest) (string, error) {
	result, err := s.linkedIn.CreatePost(ctx, req.Social.LinkedIn, req.LinkedInContent)
	if err != nil {
		s.logger.Error("publish.linkedin_failed", zap.String("meeting_id", req.MeetingID), zap.Error(err))
		return fmt.Sprintf("LinkedIn: %s", errorMessage(err)), err
	}

	s.mergeSocial(req.MeetingID, entities.PlatformLinkedIn, result.ID)
	return "LinkedIn: Posted successfully", nil
}

// errorMessage keeps result lines human-readable rather than exposing the
// wrapped error chain
func errorMessage(err error) string {
	var appErr apperrors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
