package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/zaryabali001/roommate/internal/auth"
	"github.com/zaryabali001/roommate/internal/models"
	"github.com/zaryabali001/roommate/internal/store"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

type LogoutRequest struct{}

type LogoutResponse struct{}

type GetSessionRequest struct{}

type GetSessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *models.User `json:"user,omitempty"`
}

type UpdatePresenceRequest struct {
	Status string `json:"status"`
}

type UpdatePresenceResponse struct {
	User  *models.User  `json:"user,omitempty"`
	Users []models.User `json:"users"`
}

// SessionService handles login, logout and the current user's presence.
type SessionService struct {
	store         *store.Store
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewSessionService creates a new session service.
func NewSessionService(st *store.Store, authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *SessionService {
	return &SessionService{
		store:         st,
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// NewSessionServiceHandler builds the HTTP handler serving SessionService.
func NewSessionServiceHandler(svc *SessionService, opts ...connect.HandlerOption) (string, http.Handler) {
	h := newServiceHandler(SessionServiceName, opts)
	handle(h, "Login", svc.Login)
	handle(h, "Logout", svc.Logout)
	handle(h, "GetSession", svc.GetSession)
	handle(h, "UpdatePresence", svc.UpdatePresence)
	return h.path, h
}

// Login attaches the household's designated user and returns a session token.
func (s *SessionService) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error) {
	s.logger.Info("Login request received", "email", req.Msg.Email)

	creds := models.Credentials{Email: req.Msg.Email, Password: req.Msg.Password}
	if err := s.authenticator.ValidateCredential(creds); err != nil {
		return nil, invalidArgument(err)
	}

	user, err := s.authenticator.Authenticate(ctx, creds)
	if err != nil {
		s.logger.Warn("Login failed", "email", req.Msg.Email, "error", err)
		if errors.Is(err, auth.ErrNoSessionUser) {
			return nil, connect.NewError(connect.CodeFailedPrecondition, err)
		}
		return nil, connect.NewError(connect.CodeUnauthenticated, err)
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("User logged in successfully", "user_id", user.ID)
	return connect.NewResponse(&LoginResponse{User: user, Token: token}), nil
}

// Logout clears the session. Tokens already issued stay valid until they expire.
func (s *SessionService) Logout(ctx context.Context, req *connect.Request[LogoutRequest]) (*connect.Response[LogoutResponse], error) {
	s.logger.Info("Logout request received")
	s.store.Logout(ctx)
	return connect.NewResponse(&LogoutResponse{}), nil
}

// GetSession reports whether someone is logged in and who.
func (s *SessionService) GetSession(ctx context.Context, req *connect.Request[GetSessionRequest]) (*connect.Response[GetSessionResponse], error) {
	resp := &GetSessionResponse{Authenticated: s.store.Authenticated()}
	if u, ok := s.store.CurrentUser(); ok {
		resp.User = &u
	}
	return connect.NewResponse(resp), nil
}

// UpdatePresence sets the current user's presence status.
func (s *SessionService) UpdatePresence(ctx context.Context, req *connect.Request[UpdatePresenceRequest]) (*connect.Response[UpdatePresenceResponse], error) {
	s.logger.Info("UpdatePresence request received", "status", req.Msg.Status)

	status, err := models.ParsePresenceStatus(req.Msg.Status)
	if err != nil {
		return nil, invalidField("status", err)
	}

	s.store.UpdateUserPresence(ctx, status)

	snap := s.store.Snapshot()
	return connect.NewResponse(&UpdatePresenceResponse{User: snap.CurrentUser, Users: snap.Users}), nil
}
