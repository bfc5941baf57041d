package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaryabali001/roommate/internal/auth"
	"github.com/zaryabali001/roommate/internal/metrics"
	"github.com/zaryabali001/roommate/internal/models"
	"github.com/zaryabali001/roommate/internal/seed"
	"github.com/zaryabali001/roommate/internal/service"
	"github.com/zaryabali001/roommate/internal/store"
	"github.com/zaryabali001/roommate/internal/views"
)

func newTestServer(t *testing.T) (*Server, *store.Store, *metrics.Recorder) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	recorder := metrics.New()
	st := store.New(seed.Demo(), store.WithObserver(recorder), store.WithLogger(logger))
	tokens := auth.NewJWTManager("test-secret", time.Hour)
	svcs := service.NewServices(st, tokens, views.NewRouter(views.Options{}), nil, logger)

	srv := New(Config{Addr: "127.0.0.1:0", CORSOrigins: []string{"http://localhost:3000"}}, st, svcs, tokens, recorder, logger)
	return srv, st, recorder
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestRESTEndpoints(t *testing.T) {
	srv, st, _ := newTestServer(t)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	var health map[string]any
	assert.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/healthz", &health))
	assert.Equal(t, "ok", health["status"])
	assert.Equal(t, true, health["authenticated"])

	var snap models.Snapshot
	assert.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/snapshot", &snap))
	assert.Len(t, snap.Users, 4)
	assert.Len(t, snap.Expenses, 3)
	require.NotNil(t, snap.CurrentUser)
	assert.Equal(t, "user-1", snap.CurrentUser.ID)

	var page struct {
		Page       views.Page      `json:"page"`
		Navigation []views.NavItem `json:"navigation"`
	}
	assert.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/pages/expenses", &page))
	assert.Equal(t, views.PageExpenses, page.Page)
	assert.Len(t, page.Navigation, len(views.Pages))

	assert.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/pages", &page))
	assert.Equal(t, views.PageDashboard, page.Page)

	var errBody map[string]string
	assert.Equal(t, http.StatusNotFound, getJSON(t, ts.URL+"/api/pages/settings", &errBody))
	assert.Contains(t, errBody["error"], "unknown page")

	st.Logout(context.Background())
	assert.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/pages/group", &page))
	assert.Equal(t, views.PageLogin, page.Page)
}

func TestConnectRoutesAndMetrics(t *testing.T) {
	srv, _, _ := newTestServer(t)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	login := service.NewClient[service.LoginRequest, service.LoginResponse](http.DefaultClient, ts.URL, service.SessionServiceName, "Login")
	resp, err := login.CallUnary(context.Background(), connect.NewRequest(&service.LoginRequest{Email: "ali@example.com"}))
	require.NoError(t, err)
	require.NotEmpty(t, resp.Msg.Token)

	addItem := service.NewClient[service.AddItemRequest, service.ShoppingItemsResponse](http.DefaultClient, ts.URL, service.ShoppingServiceName, "AddItem")
	req := connect.NewRequest(&service.AddItemRequest{Name: "Tea"})
	req.Header().Set("Authorization", "Bearer "+resp.Msg.Token)
	items, err := addItem.CallUnary(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, items.Msg.Items, 5)

	_, err = addItem.CallUnary(context.Background(), connect.NewRequest(&service.AddItemRequest{}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	metricsResp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer metricsResp.Body.Close()
	body, err := io.ReadAll(metricsResp.Body)
	require.NoError(t, err)

	text := string(body)
	assert.Contains(t, text, `roommate_rpc_requests_total{code="ok",procedure="/roommate.v1.ShoppingService/AddItem"} 1`)
	assert.Contains(t, text, `roommate_rpc_requests_total{code="invalid_argument",procedure="/roommate.v1.ShoppingService/AddItem"} 1`)
	assert.Contains(t, text, `roommate_store_mutations_total{applied="true",op="add_shopping_item"} 1`)
}

func TestCORSPreflight(t *testing.T) {
	srv, _, _ := newTestServer(t)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	req, err := http.NewRequest(http.MethodOptions, ts.URL+service.Procedure(service.TaskServiceName, "AddTodo"), nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestServeShutsDownOnCancel(t *testing.T) {
	srv, _, _ := newTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
