package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaryabali001/roommate/internal/models"
	"github.com/zaryabali001/roommate/internal/store"
)

type message struct {
	subject string
	data    []byte
}

type fakePublisher struct {
	mu   sync.Mutex
	msgs []message
	err  error
}

func (p *fakePublisher) Publish(subject string, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.msgs = append(p.msgs, message{subject: subject, data: data})
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNATSNotifierPublishesAppliedEvents(t *testing.T) {
	pub := &fakePublisher{}
	n := NewNATSNotifier(pub, quietLogger())
	at := time.Date(2024, 12, 21, 10, 0, 0, 0, time.UTC)

	n.Mutated(context.Background(), store.Event{Op: store.OpAddNotice, Applied: true, EntityID: "notice-9", UserID: "user-1", At: at})
	n.Mutated(context.Background(), store.Event{Op: store.OpRemoveNotice, Applied: false, EntityID: "missing"})

	require.Len(t, pub.msgs, 1)
	assert.Equal(t, "roommate.events.add_notice", pub.msgs[0].subject)

	var got store.Event
	require.NoError(t, json.Unmarshal(pub.msgs[0].data, &got))
	assert.Equal(t, "notice-9", got.EntityID)
	assert.Equal(t, "user-1", got.UserID)
	assert.True(t, got.At.Equal(at))
}

func TestNATSNotifierSwallowsErrors(t *testing.T) {
	pub := &fakePublisher{err: errors.New("connection closed")}
	n := NewNATSNotifier(pub, quietLogger())

	assert.NotPanics(t, func() {
		n.Mutated(context.Background(), store.Event{Op: store.OpAddTodo, Applied: true})
	})
	assert.Empty(t, pub.msgs)
}

func TestNATSNotifierDropsOnCancelledContext(t *testing.T) {
	pub := &fakePublisher{}
	n := NewNATSNotifier(pub, quietLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n.Mutated(ctx, store.Event{Op: store.OpAddTodo, Applied: true})
	assert.Empty(t, pub.msgs)
}

func TestNotifierAsStoreObserver(t *testing.T) {
	pub := &fakePublisher{}
	n := NewNATSNotifier(pub, quietLogger())
	s := store.New(&models.Seed{}, store.WithObserver(n))

	s.AddShoppingItem(context.Background(), "Bread")
	s.ToggleShoppingItem(context.Background(), "does-not-exist")

	require.Len(t, pub.msgs, 1)
	assert.Equal(t, Subject(store.OpAddShoppingItem), pub.msgs[0].subject)
	assert.NoError(t, n.Close())
}

func TestNATSNotifierSendInvite(t *testing.T) {
	pub := &fakePublisher{}
	n := NewNATSNotifier(pub, quietLogger())

	n.SendInvite(context.Background(), Invite{
		Email:      "new@example.com",
		GroupID:    "group-1",
		InviteCode: "ROOM204",
		InviteLink: "https://roommateapp.com/join/ROOM204",
	})

	require.Len(t, pub.msgs, 1)
	assert.Equal(t, InviteSubject, pub.msgs[0].subject)
	var got Invite
	require.NoError(t, json.Unmarshal(pub.msgs[0].data, &got))
	assert.Equal(t, "new@example.com", got.Email)
	assert.Equal(t, "https://roommateapp.com/join/ROOM204", got.InviteLink)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n.SendInvite(ctx, Invite{Email: "late@example.com"})
	assert.Len(t, pub.msgs, 1)
}

func TestNoopNotifier(t *testing.T) {
	var n Notifier = NoopNotifier{}
	n.Mutated(context.Background(), store.Event{Op: store.OpLogin, Applied: true})
	n.SendInvite(context.Background(), Invite{Email: "x@example.com"})
	assert.NoError(t, n.Close())
}
