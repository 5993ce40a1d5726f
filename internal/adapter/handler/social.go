package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/meetingflow-team/meeting-publisher/errors"
	publishdto "github.com/meetingflow-team/meeting-publisher/internal/adapter/dto/publish"
	"github.com/meetingflow-team/meeting-publisher/internal/infrastructure/external/twitter"
	"github.com/meetingflow-team/meeting-publisher/internal/usecase/publisher"
)

// Social exposes the raw social-network create/delete calls
type Social struct {
	linkedIn publisher.LinkedInGateway
	twitter  twitter.Gateway
	logger   *zap.Logger
}

// NewSocial creates the social handler
func NewSocial(linkedIn publisher.LinkedInGateway, tw twitter.Gateway, logger *zap.Logger) *Social {
	return &Social{linkedIn: linkedIn, twitter: tw, logger: logger}
}

// LinkedInPost publishes a public post authored by the token's member
func (h *Social) LinkedInPost(c echo.Context) error {
	var req publishdto.LinkedInPostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	if req.Credentials.AccessToken == "" {
		return HandleError(h.logger, c, apperrors.ErrValidation("Content and LinkedIn access token are required"))
	}

	result, err := h.linkedIn.CreatePost(c.Request().Context(), req.Credentials, req.Content)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, result)
}

// LinkedInDelete removes a post by id
func (h *Social) LinkedInDelete(c echo.Context) error {
	var req publishdto.LinkedInDeleteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	if req.Credentials.AccessToken == "" {
		return HandleError(h.logger, c, apperrors.ErrValidation("Post ID and LinkedIn access token are required"))
	}

	result, err := h.linkedIn.DeletePost(c.Request().Context(), req.Credentials, req.PostID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, map[string]interface{}{
		"message": "Post deleted successfully from LinkedIn",
		"deleted": result.Deleted,
		"postId":  result.PostID,
	})
}

// TwitterPost submits a tweet through the configured gateway (simulated by
// default)
func (h *Social) TwitterPost(c echo.Context) error {
	var req publishdto.TwitterPostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.twitter.PostTweet(c.Request().Context(), req.Credentials, req.Content)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, result)
}

// TwitterDelete removes a tweet by id
func (h *Social) TwitterDelete(c echo.Context) error {
	var req publishdto.TwitterDeleteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.twitter.DeleteTweet(c.Request().Context(), req.Credentials, req.TweetID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, map[string]interface{}{
		"message": "Tweet deleted successfully (Demo Mode)",
		"deleted": result.Deleted,
		"tweetId": result.TweetID,
	})
}
