package meeting

import "github.com/meetingflow-team/meeting-publisher/internal/domain/entities"

// ListRequest fetches meetings in a date/time range. Date-only endpoints
// widen to start-of-day / end-of-day in UTC.
type ListRequest struct {
	APIKey   string `json:"apiKey" validate:"required"`
	FromDate string `json:"fromDate" validate:"required"`
	ToDate   string `json:"toDate" validate:"required"`
}

// ProcessRequest triggers summary fetch + blog-post generation for one
// meeting. MeetingData is the listed meeting as previously returned, echoed
// back so the title and timestamp survive without refetching.
type ProcessRequest struct {
	APIKey      string           `json:"apiKey" validate:"required"`
	MeetingID   string           `json:"meetingId" validate:"required"`
	MeetingData entities.Meeting `json:"meetingData" validate:"required"`
}
