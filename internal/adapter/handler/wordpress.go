package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/meetingflow-team/meeting-publisher/errors"
	publishdto "github.com/meetingflow-team/meeting-publisher/internal/adapter/dto/publish"
	"github.com/meetingflow-team/meeting-publisher/internal/infrastructure/external/wordpress"
	"github.com/meetingflow-team/meeting-publisher/internal/usecase/publisher"
)

// WordPress exposes the raw CMS create/delete calls. These routes mirror the
// gateway contract one to one; state reconciliation happens on the publish
// batch routes instead.
type WordPress struct {
	gateway publisher.CMSGateway
	logger  *zap.Logger
}

// NewWordPress creates the WordPress handler
func NewWordPress(gateway publisher.CMSGateway, logger *zap.Logger) *WordPress {
	return &WordPress{gateway: gateway, logger: logger}
}

// Create publishes a post to the caller's WordPress site
func (h *WordPress) Create(c echo.Context) error {
	var req publishdto.WordPressPostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	creds := req.Credentials()
	if !creds.HasValidURL() {
		return HandleError(h.logger, c, apperrors.ErrValidation("WordPress URL must start with http:// or https://"))
	}

	result, err := h.gateway.CreatePost(c.Request().Context(), creds, wordpress.PostRequest{
		Title:         req.Title,
		Content:       req.Content,
		Status:        req.Status,
		ScheduledDate: req.ScheduledDate,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, result)
}

// Delete removes a post by id
func (h *WordPress) Delete(c echo.Context) error {
	var req publishdto.WordPressDeleteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.gateway.DeletePost(c.Request().Context(), req.Credentials(), req.PostID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, map[string]interface{}{
		"message": "Post deleted successfully from WordPress",
		"deleted": result.Deleted,
		"data":    result.Data,
	})
}
