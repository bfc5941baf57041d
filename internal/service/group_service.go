package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/zaryabali001/roommate/internal/models"
	"github.com/zaryabali001/roommate/internal/notify"
	"github.com/zaryabali001/roommate/internal/store"
	"github.com/zaryabali001/roommate/internal/views"
)

type GetGroupRequest struct{}

type GroupResponse struct {
	Group      *models.Group `json:"group,omitempty"`
	Users      []models.User `json:"users"`
	InviteLink string        `json:"inviteLink,omitempty"`
}

type SendInviteRequest struct {
	Email string `json:"email"`
}

type SendInviteResponse struct {
	Email      string `json:"email"`
	InviteLink string `json:"inviteLink"`
	Message    string `json:"message"`
}

// GroupService reads the household group and sends invitations to join it.
type GroupService struct {
	store   *store.Store
	router  *views.Router
	inviter notify.Inviter
	logger  *slog.Logger
}

// NewGroupService creates a new GroupService. Invitations go to inviter.
func NewGroupService(st *store.Store, router *views.Router, inviter notify.Inviter, logger *slog.Logger) *GroupService {
	return &GroupService{store: st, router: router, inviter: inviter, logger: logger}
}

// NewGroupServiceHandler builds the HTTP handler serving GroupService.
func NewGroupServiceHandler(svc *GroupService, opts ...connect.HandlerOption) (string, http.Handler) {
	h := newServiceHandler(GroupServiceName, opts)
	handle(h, "GetGroup", svc.GetGroup)
	handle(h, "SendInvite", svc.SendInvite)
	return h.path, h
}

// GetGroup returns the group, the roommates and the join link.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[GetGroupRequest]) (*connect.Response[GroupResponse], error) {
	snap := s.store.Snapshot()
	resp := &GroupResponse{Group: snap.Group, Users: snap.Users}
	if snap.Group != nil {
		resp.InviteLink = s.router.InviteLink(snap.Group.InviteCode)
	}
	return connect.NewResponse(resp), nil
}

// SendInvite hands an invitation for email to the notifier. The store is not
// touched and delivery is not confirmed.
func (s *GroupService) SendInvite(ctx context.Context, req *connect.Request[SendInviteRequest]) (*connect.Response[SendInviteResponse], error) {
	s.logger.Info("SendInvite request received", "email", req.Msg.Email)

	email := strings.TrimSpace(req.Msg.Email)
	if email == "" {
		return nil, invalidField("email", ErrEmailRequired)
	}

	snap := s.store.Snapshot()
	if snap.Group == nil {
		return nil, connect.NewError(connect.CodeFailedPrecondition, ErrNoGroup)
	}

	inv := notify.Invite{
		Email:      email,
		GroupID:    snap.Group.ID,
		GroupName:  snap.Group.Name,
		InviteCode: snap.Group.InviteCode,
		InviteLink: s.router.InviteLink(snap.Group.InviteCode),
		InvitedBy:  snap.CurrentUserID(),
		At:         s.store.Now(),
	}
	s.inviter.SendInvite(ctx, inv)

	s.logger.Info("Invitation queued", "email", email, "group_id", inv.GroupID)
	return connect.NewResponse(&SendInviteResponse{
		Email:      email,
		InviteLink: inv.InviteLink,
		Message:    fmt.Sprintf("Invitation sent to %s", email),
	}), nil
}
