package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	publishdto "github.com/meetingflow-team/meeting-publisher/internal/adapter/dto/publish"
	"github.com/meetingflow-team/meeting-publisher/internal/usecase/credentials"
	"github.com/meetingflow-team/meeting-publisher/internal/usecase/publisher"
)

// Publisher drives the publish batch, the reconciling delete and the stored
// credential bundle
type Publisher struct {
	svc       *publisher.Service
	credStore *credentials.Store
	logger    *zap.Logger
}

// NewPublisher creates the publisher handler
func NewPublisher(svc *publisher.Service, credStore *credentials.Store, logger *zap.Logger) *Publisher {
	return &Publisher{svc: svc, credStore: credStore, logger: logger}
}

// Publish fans a processed meeting out to the selected platforms
func (h *Publisher) Publish(c echo.Context) error {
	var req publishdto.BatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	outcome, err := h.svc.Publish(c.Request().Context(), publisher.PublishRequest{
		MeetingID:       req.MeetingID,
		Platforms:       req.Platforms,
		WordPress:       req.WordPress,
		Social:          req.Social,
		PostStatus:      req.PostStatus,
		ScheduledDate:   req.ScheduledDate,
		TwitterContent:  req.TwitterContent,
		LinkedInContent: req.LinkedInContent,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, outcome)
}

// DeletePost removes one platform's post and clears its tracking state
func (h *Publisher) DeletePost(c echo.Context) error {
	var req publishdto.DeletePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	outcome, err := h.svc.DeletePost(c.Request().Context(), publisher.DeleteRequest{
		MeetingID: req.MeetingID,
		Platform:  req.Platform,
		WordPress: req.WordPress,
		Social:    req.Social,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, outcome)
}

// GetCredentials returns the stored bundles, zero-valued when nothing has
// been saved yet
func (h *Publisher) GetCredentials(c echo.Context) error {
	ctx := c.Request().Context()

	wp, err := h.credStore.LoadWordPress(ctx)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	social, err := h.credStore.LoadSocial(ctx)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, publishdto.CredentialsPayload{
		WordPress: wp,
		Social:    social,
	})
}

// SaveCredentials replaces both stored bundles with the submitted ones
func (h *Publisher) SaveCredentials(c echo.Context) error {
	var req publishdto.CredentialsPayload
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	ctx := c.Request().Context()
	if err := h.credStore.SaveWordPress(ctx, req.WordPress); err != nil {
		return HandleError(h.logger, c, err)
	}
	if err := h.credStore.SaveSocial(ctx, req.Social); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, map[string]interface{}{"success": true})
}
