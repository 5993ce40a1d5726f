package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	meetingdto "github.com/meetingflow-team/meeting-publisher/internal/adapter/dto/meeting"
	"github.com/meetingflow-team/meeting-publisher/internal/usecase/publisher"
)

// Meetings drives transcript listing, per-meeting processing and access to
// the session's processed records.
type Meetings struct {
	svc    *publisher.Service
	logger *zap.Logger
}

// NewMeetings creates the meetings handler
func NewMeetings(svc *publisher.Service, logger *zap.Logger) *Meetings {
	return &Meetings{svc: svc, logger: logger}
}

// List fetches meetings in the requested range
func (h *Meetings) List(c echo.Context) error {
	var req meetingdto.ListRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	meetings, err := h.svc.FetchMeetings(c.Request().Context(), req.APIKey, req.FromDate, req.ToDate)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, meetingdto.ListResponse{Meetings: meetings})
}

// Process fetches one meeting's summary, renders the blog post and returns
// the processed record.
func (h *Meetings) Process(c echo.Context) error {
	var req meetingdto.ProcessRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	// The echoed meeting must match the id being processed
	req.MeetingData.ID = req.MeetingID

	record, err := h.svc.ProcessMeeting(c.Request().Context(), req.APIKey, req.MeetingData)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, record)
}

// Processed returns the session's processed-meeting snapshot
func (h *Meetings) Processed(c echo.Context) error {
	return HandleSuccess(h.logger, c, http.StatusOK, meetingdto.ProcessedListResponse{
		Processed: h.svc.Processed(),
	})
}

// DownloadBlogPost serves the rendered artifact as a markdown attachment
func (h *Meetings) DownloadBlogPost(c echo.Context) error {
	meetingID := c.Param("id")

	title, blogPost, err := h.svc.BlogPost(meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	filename := strings.ReplaceAll(strings.ToLower(title), " ", "-")
	if filename == "" {
		filename = meetingID
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s.md"`, filename))
	return c.Blob(http.StatusOK, "text/markdown; charset=utf-8", []byte(blogPost))
}
