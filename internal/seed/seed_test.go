package seed

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaryabali001/roommate/internal/models"
)

func TestDemoIsValid(t *testing.T) {
	demo := Demo()
	require.NoError(t, Validate(demo))
	assert.Equal(t, DemoCurrentUserID, demo.CurrentUserID)
	assert.Len(t, demo.Users, 4)
	assert.Equal(t, "user-1", demo.CleaningDuty.CurrentTurn)

	// Fresh values on every call.
	demo.Users[0].Name = "changed"
	assert.Equal(t, "Ali Ahmed", Demo().Users[0].Name)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *models.Seed)
		wantMsg string
	}{
		{
			name:    "unknown current user",
			mutate:  func(s *models.Seed) { s.CurrentUserID = "ghost" },
			wantMsg: `current user "ghost"`,
		},
		{
			name:    "current turn outside the ring",
			mutate:  func(s *models.Seed) { s.CleaningDuty.CurrentTurn = "user-4" },
			wantMsg: "is not a member",
		},
		{
			name:    "splits do not sum to amount",
			mutate:  func(s *models.Seed) { s.Expenses[0].Amount = 4000 },
			wantMsg: "splits sum to",
		},
		{
			name:    "settled flag inconsistent",
			mutate:  func(s *models.Seed) { s.Expenses[1].Settled = true },
			wantMsg: "settled flag",
		},
		{
			name:    "duplicate todo id",
			mutate:  func(s *models.Seed) { s.Todos[1].ID = s.Todos[0].ID },
			wantMsg: `duplicate todo id "todo-1"`,
		},
		{
			name: "purchase details on unpurchased item",
			mutate: func(s *models.Seed) {
				s.ShoppingItems[0].PurchasedBy = "user-2"
			},
			wantMsg: "unpurchased",
		},
		{
			name:    "unknown presence status",
			mutate:  func(s *models.Seed) { s.Users[1].PresenceStatus = "Asleep" },
			wantMsg: "presence status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Demo()
			tt.mutate(s)
			err := Validate(s)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSeed)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}

	t.Run("nil seed", func(t *testing.T) {
		assert.ErrorIs(t, Validate(nil), ErrInvalidSeed)
	})

	t.Run("empty seed is valid", func(t *testing.T) {
		assert.NoError(t, Validate(&models.Seed{}))
	})
}

func TestYAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeYAML(&buf, Demo()))

	decoded, err := DecodeYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, Demo(), decoded)
}

func TestDecodeYAMLRejectsUnknownFields(t *testing.T) {
	_, err := DecodeYAML(strings.NewReader("currentUserId: u1\nflatmates: []\n"))
	require.Error(t, err)
}

func TestDecodeYAMLEmpty(t *testing.T) {
	_, err := DecodeYAML(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrInvalidSeed)
}

func TestYAMLSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	writeSeed(t, path, Demo())

	src := NewYAMLSource(path)
	defer src.Close()

	seed, err := src.LoadSeed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Room 101 - Hostel A", seed.Group.Name)

	_, err = NewYAMLSource(filepath.Join(t.TempDir(), "missing.yaml")).LoadSeed(context.Background())
	assert.Error(t, err)
}

type recordingResetter struct {
	mu    sync.Mutex
	seeds []*models.Seed
}

func (r *recordingResetter) Reset(_ context.Context, seed *models.Seed) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seeds = append(r.seeds, seed)
}

func (r *recordingResetter) last() *models.Seed {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.seeds) == 0 {
		return nil
	}
	return r.seeds[len(r.seeds)-1]
}

func TestWatcherReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	writeSeed(t, path, Demo())

	target := &recordingResetter{}
	w, err := NewWatcher(WatcherConfig{Path: path, DebounceDelay: 20 * time.Millisecond}, target)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	changed := Demo()
	changed.Group.Name = "Room 202 - Hostel B"
	writeSeed(t, path, changed)

	require.Eventually(t, func() bool {
		s := target.last()
		return s != nil && s.Group.Name == "Room 202 - Hostel B"
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatcherIgnoresInvalidSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	writeSeed(t, path, Demo())

	target := &recordingResetter{}
	w, err := NewWatcher(WatcherConfig{Path: path, DebounceDelay: 20 * time.Millisecond}, target)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))

	require.NoError(t, os.WriteFile(path, []byte("currentUserId: ghost\n"), 0o644))
	time.Sleep(200 * time.Millisecond)
	assert.Nil(t, target.last())

	cancel()
	select {
	case <-w.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
	require.NoError(t, w.Stop())
}

func TestWatcherStartFailureReleasesWatcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "seed.yaml")

	w, err := NewWatcher(WatcherConfig{Path: path}, &recordingResetter{})
	require.NoError(t, err)

	err = w.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")

	select {
	case <-w.Done():
	case <-time.After(time.Second):
		t.Fatal("failed start left the watcher running")
	}
	assert.NoError(t, w.Stop(), "stopping after a failed start is safe")
}

func writeSeed(t *testing.T, path string, seed *models.Seed) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, EncodeYAML(&buf, seed))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}
