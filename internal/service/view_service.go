package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/zaryabali001/roommate/internal/store"
	"github.com/zaryabali001/roommate/internal/views"
)

type RenderPageRequest struct {
	// Page is a page identifier; empty renders the dashboard.
	Page string `json:"page"`
}

// ViewService renders page view models from the current state.
type ViewService struct {
	store  *store.Store
	router *views.Router
	logger *slog.Logger
}

// NewViewService creates a new ViewService.
func NewViewService(st *store.Store, router *views.Router, logger *slog.Logger) *ViewService {
	return &ViewService{store: st, router: router, logger: logger}
}

// NewViewServiceHandler builds the HTTP handler serving ViewService.
func NewViewServiceHandler(svc *ViewService, opts ...connect.HandlerOption) (string, http.Handler) {
	h := newServiceHandler(ViewServiceName, opts)
	handle(h, "RenderPage", svc.RenderPage)
	return h.path, h
}

// RenderPage renders one page. Logged-out sessions get the login page.
func (s *ViewService) RenderPage(ctx context.Context, req *connect.Request[RenderPageRequest]) (*connect.Response[views.Rendered], error) {
	s.logger.Info("RenderPage request received", "page", req.Msg.Page)

	rendered, err := s.Render(req.Msg.Page)
	if err != nil {
		s.logger.Warn("RenderPage failed", "page", req.Msg.Page, "error", err)
		if errors.Is(err, views.ErrUnknownPage) {
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&rendered), nil
}

// Render parses page and renders it from a fresh snapshot.
func (s *ViewService) Render(page string) (views.Rendered, error) {
	p, err := views.ParsePage(page)
	if err != nil {
		return views.Rendered{}, err
	}
	return s.router.Render(p, s.store.Snapshot(), s.store.Now())
}
