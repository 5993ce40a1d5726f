package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	authdto "github.com/meetingflow-team/meeting-publisher/internal/adapter/dto/auth"
	"github.com/meetingflow-team/meeting-publisher/internal/usecase/credentials"
	"github.com/meetingflow-team/meeting-publisher/internal/usecase/publisher"
)

// Auth validates transcript-source API keys and clears stored credentials on
// logout. There is no session state: the key travels with every subsequent
// request.
type Auth struct {
	transcripts publisher.TranscriptGateway
	credStore   *credentials.Store
	logger      *zap.Logger
}

// NewAuth creates the auth handler
func NewAuth(transcripts publisher.TranscriptGateway, credStore *credentials.Store, logger *zap.Logger) *Auth {
	return &Auth{transcripts: transcripts, credStore: credStore, logger: logger}
}

// Login checks the API key against the transcript source with a minimal read
// query and reports success or an invalid-credential error.
func (h *Auth) Login(c echo.Context) error {
	var req authdto.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.transcripts.ValidateAPIKey(c.Request().Context(), req.APIKey); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, authdto.LoginResponse{Success: true})
}

// Logout removes both stored credential bundles
func (h *Auth) Logout(c echo.Context) error {
	if err := h.credStore.Clear(c.Request().Context()); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, authdto.LogoutResponse{Success: true})
}
