package meeting

import "github.com/meetingflow-team/meeting-publisher/internal/domain/entities"

// ListResponse wraps the fetched meetings
type ListResponse struct {
	Meetings []entities.Meeting `json:"meetings"`
}

// ProcessedListResponse wraps the session's processed-meeting snapshot
type ProcessedListResponse struct {
	Processed []entities.ProcessedMeeting `json:"processed"`
}
