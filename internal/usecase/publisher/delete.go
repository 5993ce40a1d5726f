package publisher

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	apperrors "github.com/meetingflow-team/meeting-publisher/errors"
	"github.com/meetingflow-team/meeting-publisher/internal/domain/entities"
)

// DeleteRequest targets one platform's post on one processed meeting
type DeleteRequest struct {
	MeetingID string
	Platform  string
	WordPress entities.WordPressCredentials
	Social    entities.SocialCredentials
}

// DeleteOutcome reports a completed delete and the reconciled record
type DeleteOutcome struct {
	Message string                    `json:"message"`
	Meeting entities.ProcessedMeeting `json:"meeting"`
}

// DeletePost issues a single delete against the target platform. On success
// exactly that platform's publish state is stripped from the meeting's
// record; on failure the record is left untouched and the gateway error is
// surfaced as-is.
func (s *Service) DeletePost(ctx context.Context, req DeleteRequest) (*DeleteOutcome, error) {
	s.mu.Lock()
	record := s.find(req.MeetingID)
	var postID string
	var tracked bool
	if record != nil {
		postID, tracked = record.PostID(req.Platform)
	}
	s.mu.Unlock()

	if record == nil {
		return nil, apperrors.ErrNotFound("Processed meeting")
	}
	if !tracked {
		return nil, apperrors.ErrNotFound(fmt.Sprintf("%s post for this meeting", req.Platform))
	}

	var message string
	switch req.Platform {
	case entities.PlatformWordPress:
		if _, err := s.cms.DeletePost(ctx, req.WordPress, postID); err != nil {
			return nil, err
		}
		message = "WordPress post deleted successfully"
	case entities.PlatformTwitter:
		if _, err := s.twitter.DeleteTweet(ctx, req.Social.Twitter, postID); err != nil {
			return nil, err
		}
		message = "Twitter post deleted successfully"
	case entities.PlatformLinkedIn:
		if _, err := s.linkedIn.DeletePost(ctx, req.Social.LinkedIn, postID); err != nil {
			return nil, err
		}
		message = "LinkedIn post deleted successfully"
	default:
		return nil, apperrors.ErrValidation("Unknown platform: " + req.Platform)
	}

	s.mu.Lock()
	if record := s.find(req.MeetingID); record != nil {
		if req.Platform == entities.PlatformWordPress {
			record.ClearWordPress()
		} else {
			record.ClearSocialPost(req.Platform)
		}
	}
	s.mu.Unlock()

	s.logger.Info("delete.post_done",
		zap.String("meeting_id", req.MeetingID),
		zap.String("platform", req.Platform),
		zap.String("post_id", postID),
	)

	return &DeleteOutcome{
		Message: message,
		Meeting: s.snapshot(req.MeetingID),
	}, nil
}
