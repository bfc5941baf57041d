package metrics

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaryabali001/roommate/internal/store"
)

func TestRecorder(t *testing.T) {
	r := New()

	r.ObserveRPC("/roommate.v1.TaskService/AddTodo", "ok", 15*time.Millisecond)
	r.ObserveRPC("/roommate.v1.TaskService/AddTodo", "ok", 5*time.Millisecond)
	r.ObserveRPC("/roommate.v1.TaskService/AddTodo", "invalid_argument", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.rpcRequests.WithLabelValues("/roommate.v1.TaskService/AddTodo", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.rpcRequests.WithLabelValues("/roommate.v1.TaskService/AddTodo", "invalid_argument")))

	ctx := context.Background()
	r.Mutated(ctx, store.Event{Op: store.OpToggleTodo, Applied: true})
	r.Mutated(ctx, store.Event{Op: store.OpToggleTodo, Applied: false})
	r.Mutated(ctx, store.Event{Op: store.OpToggleTodo, Applied: false})

	assert.Equal(t, 1.0, testutil.ToFloat64(r.mutations.WithLabelValues("toggle_todo", "true")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.mutations.WithLabelValues("toggle_todo", "false")))
}

func TestRecorderObservesStore(t *testing.T) {
	r := New()
	s := store.New(nil, store.WithObserver(r))
	s.AddShoppingItem(context.Background(), "Milk")

	assert.Equal(t, 1.0, testutil.ToFloat64(r.mutations.WithLabelValues("add_shopping_item", "true")))
}

func TestHandler(t *testing.T) {
	r := New()
	r.ObserveRPC("/roommate.v1.ViewService/RenderPage", "ok", time.Millisecond)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "roommate_rpc_requests_total")
	assert.Contains(t, string(body), "go_goroutines")
}
