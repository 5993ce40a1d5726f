package publisher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/meetingflow-team/meeting-publisher/errors"
	"github.com/meetingflow-team/meeting-publisher/internal/domain/entities"
	"github.com/meetingflow-team/meeting-publisher/internal/infrastructure/external/fireflies"
	"github.com/meetingflow-team/meeting-publisher/internal/infrastructure/external/linkedin"
	"github.com/meetingflow-team/meeting-publisher/internal/infrastructure/external/twitter"
	"github.com/meetingflow-team/meeting-publisher/internal/infrastructure/external/wordpress"
	"github.com/meetingflow-team/meeting-publisher/internal/usecase/content"
	"github.com/meetingflow-team/meeting-publisher/internal/usecase/credentials"
)

// TranscriptGateway is the transcript-source contract used by the service
type TranscriptGateway interface {
	ValidateAPIKey(ctx context.Context, apiKey string) error
	ListTranscripts(ctx context.Context, apiKey, fromInstant, toInstant string) ([]entities.Meeting, error)
	GetSummary(ctx context.Context, apiKey, meetingID string) (entities.Summary, error)
}

// CMSGateway is the WordPress publish contract used by the service
type CMSGateway interface {
	CreatePost(ctx context.Context, creds entities.WordPressCredentials, post wordpress.PostRequest) (*wordpress.PostResult, error)
	DeletePost(ctx context.Context, creds entities.WordPressCredentials, postID string) (*wordpress.DeleteResult, error)
}

// LinkedInGateway is the LinkedIn publish contract used by the service
type LinkedInGateway interface {
	CreatePost(ctx context.Context, creds entities.LinkedInCredentials, content string) (*linkedin.PostResult, error)
	DeletePost(ctx context.Context, creds entities.LinkedInCredentials, postID string) (*linkedin.DeleteResult, error)
}

// Service orchestrates the transcript source, the artifact generator and the
// three publish gateways, and owns the session's processed-meeting state.
//
// The state lives only in memory: a restart loses the publish tracking but
// not the remote posts. All mutations go through the mutex so concurrent
// requests cannot interleave updates to one meeting's record.
type Service struct {
	transcripts TranscriptGateway
	cms         CMSGateway
	linkedIn    LinkedInGateway
	twitter     twitter.Gateway
	credStore   *credentials.Store
	logger      *zap.Logger
	now         func() time.Time

	mu        sync.Mutex
	meetings  []entities.Meeting
	processed []*entities.ProcessedMeeting
}

// NewService creates the publisher service
func NewService(
	transcripts TranscriptGateway,
	cms CMSGateway,
	linkedIn LinkedInGateway,
	tw twitter.Gateway,
	credStore *credentials.Store,
	logger *zap.Logger,
) *Service {
	return &Service{
		transcripts: transcripts,
		cms:         cms,
		linkedIn:    linkedIn,
		twitter:     tw,
		credStore:   credStore,
		logger:      logger,
		now:         time.Now,
	}
}

// FetchMeetings lists meetings in the given range. Both endpoints are
// required; date-only values widen to the whole day. On success the session
// meeting list is replaced; on failure it is left untouched.
func (s *Service) FetchMeetings(ctx context.Context, apiKey, fromDate, toDate string) ([]entities.Meeting, error) {
	if apiKey == "" || fromDate == "" || toDate == "" {
		return nil, apperrors.ErrValidation("API key, fromDate, and toDate are required")
	}

	fromInstant, toInstant, err := fireflies.NormalizeRange(fromDate, toDate)
	if err != nil {
		return nil, err
	}

	meetings, err := s.transcripts.ListTranscripts(ctx, apiKey, fromInstant, toInstant)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.meetings = meetings
	s.mu.Unlock()

	s.logger.Info("meetings.fetched",
		zap.Int("count", len(meetings)),
		zap.String("from", fromInstant),
		zap.String("to", toInstant),
	)
	return meetings, nil
}

// Meetings returns the last successfully fetched meeting list
func (s *Service) Meetings() []entities.Meeting {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Meeting, len(s.meetings))
	copy(out, s.meetings)
	return out
}

// ProcessMeeting fetches the meeting's summary, renders the blog post and
// records the result. Reprocessing a meeting id replaces the prior record
// rather than appending a duplicate.
func (s *Service) ProcessMeeting(ctx context.Context, apiKey string, meeting entities.Meeting) (entities.ProcessedMeeting, error) {
	if apiKey == "" || meeting.ID == "" {
		return entities.ProcessedMeeting{}, apperrors.ErrValidation("API key, meetingId, and meetingData are required")
	}

	summary, err := s.transcripts.GetSummary(ctx, apiKey, meeting.ID)
	if err != nil {
		return entities.ProcessedMeeting{}, err
	}

	record := &entities.ProcessedMeeting{
		MeetingTitle: meeting.Title,
		MeetingTime:  meeting.DateString,
		MeetingID:    meeting.ID,
		Summary:      summary,
		BlogPost:     content.Generate(meeting.Title, summary, s.now()),
	}

	s.mu.Lock()
	replaced := false
	for i, existing := range s.processed {
		if existing.MeetingID == meeting.ID {
			s.processed[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		s.processed = append(s.processed, record)
	}
	snapshot := *record
	s.mu.Unlock()

	s.logger.Info("meeting.processed",
		zap.String("meeting_id", meeting.ID),
		zap.Bool("replaced", replaced),
	)
	return snapshot, nil
}

// Processed returns a snapshot of the session's processed meetings
func (s *Service) Processed() []entities.ProcessedMeeting {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.ProcessedMeeting, 0, len(s.processed))
	for _, record := range s.processed {
		out = append(out, *record)
	}
	return out
}

// BlogPost returns the rendered artifact for a processed meeting
func (s *Service) BlogPost(meetingID string) (title, blogPost string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record := s.find(meetingID)
	if record == nil || record.BlogPost == "" {
		return "", "", apperrors.ErrNotFound("Processed meeting")
	}
	return record.MeetingTitle, record.BlogPost, nil
}

// find locates a record by meeting id. Caller must hold s.mu.
func (s *Service) find(meetingID string) *entities.ProcessedMeeting {
	for _, record := range s.processed {
		if record.MeetingID == meetingID {
			return record
		}
	}
	return nil
}

func (s *Service) mergeWordPress(meetingID string, postID int, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if record := s.find(meetingID); record != nil {
		record.SetWordPress(postID, status)
	}
}

func (s *Service) mergeSocial(meetingID, platform, postID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if record := s.find(meetingID); record != nil {
		record.SetSocialPost(platform, entities.SocialPost{ID: postID, Status: "posted"})
	}
}

func (s *Service) snapshot(meetingID string) entities.ProcessedMeeting {
	s.mu.Lock()
	defer s.mu.Unlock()
	if record := s.find(meetingID); record != nil {
		return *record
	}
	return entities.ProcessedMeeting{}
}
