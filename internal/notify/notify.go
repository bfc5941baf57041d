// Package notify fans store mutations out to interested parties.
//
// Notifications are fire-and-forget: a failed publish is logged and
// otherwise ignored, so the store never observes a notifier error.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/zaryabali001/roommate/internal/store"
)

const (
	// SubjectPrefix is prepended to the mutation op to form the NATS subject.
	SubjectPrefix = "roommate.events."
	// InviteSubject carries group invitations for the mailer.
	InviteSubject = "roommate.invites"
)

// Invite asks for an invitation email to be sent to a prospective roommate.
type Invite struct {
	Email      string    `json:"email"`
	GroupID    string    `json:"groupId"`
	GroupName  string    `json:"groupName"`
	InviteCode string    `json:"inviteCode"`
	InviteLink string    `json:"inviteLink"`
	InvitedBy  string    `json:"invitedBy,omitempty"`
	At         time.Time `json:"at"`
}

// Inviter hands invitations to whatever delivers them. Delivery is not confirmed.
type Inviter interface {
	SendInvite(ctx context.Context, inv Invite)
}

// Notifier receives applied store mutations and outgoing invitations.
type Notifier interface {
	store.Observer
	Inviter
	Close() error
}

// NoopNotifier drops every event.
type NoopNotifier struct{}

func (NoopNotifier) Mutated(context.Context, store.Event) {}
func (NoopNotifier) SendInvite(context.Context, Invite)   {}
func (NoopNotifier) Close() error                         { return nil }

// Publisher is the subset of *nats.Conn the notifier needs.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSNotifier publishes each applied mutation as JSON on roommate.events.<op>.
type NATSNotifier struct {
	pub    Publisher
	conn   *nats.Conn
	logger *slog.Logger
}

// Connect dials url and returns a notifier that owns the connection.
func Connect(url string, logger *slog.Logger) (*NATSNotifier, error) {
	conn, err := nats.Connect(url,
		nats.Name("roommate"),
		nats.MaxReconnects(5),
		nats.ReconnectWait(time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	n := NewNATSNotifier(conn, logger)
	n.conn = conn
	return n, nil
}

// NewNATSNotifier wraps an existing publisher. The caller keeps ownership of it.
func NewNATSNotifier(pub Publisher, logger *slog.Logger) *NATSNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &NATSNotifier{pub: pub, logger: logger}
}

// Subject returns the subject an event is published on.
func Subject(op store.Op) string {
	return SubjectPrefix + string(op)
}

// Mutated publishes ev. Skipped mutations are not published.
func (n *NATSNotifier) Mutated(ctx context.Context, ev store.Event) {
	if !ev.Applied {
		return
	}
	n.publish(ctx, Subject(ev.Op), ev)
}

// SendInvite publishes inv on InviteSubject.
func (n *NATSNotifier) SendInvite(ctx context.Context, inv Invite) {
	n.publish(ctx, InviteSubject, inv)
}

func (n *NATSNotifier) publish(ctx context.Context, subject string, payload any) {
	if err := ctx.Err(); err != nil {
		n.logger.Warn("Notification dropped", "subject", subject, "error", err)
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		n.logger.Error("Notification encoding failed", "subject", subject, "error", err)
		return
	}
	if err := n.pub.Publish(subject, data); err != nil {
		n.logger.Error("Notification publish failed", "subject", subject, "error", err)
		return
	}
	n.logger.Debug("Notification published", "subject", subject)
}

// Close drains the connection when the notifier owns one.
func (n *NATSNotifier) Close() error {
	if n.conn == nil {
		return nil
	}
	if err := n.conn.Drain(); err != nil {
		return fmt.Errorf("failed to drain NATS connection: %w", err)
	}
	return nil
}
