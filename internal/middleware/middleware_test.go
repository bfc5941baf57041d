package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaryabali001/roommate/internal/auth"
	"github.com/zaryabali001/roommate/internal/models"
)

type ping struct{}

func call(t *testing.T, interceptor connect.UnaryInterceptorFunc, header string, next connect.UnaryFunc) error {
	t.Helper()
	req := connect.NewRequest(&ping{})
	if header != "" {
		req.Header().Set("Authorization", header)
	}
	_, err := interceptor(next)(context.Background(), req)
	return err
}

func TestOptionalAuth(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", time.Hour)
	token, err := manager.Generate(models.User{ID: "user-1", Email: "user1@example.com"})
	require.NoError(t, err)

	tests := []struct {
		name      string
		header    string
		wantUser  string
		wantEmail string
	}{
		{name: "valid token", header: "Bearer " + token, wantUser: "user-1", wantEmail: "user1@example.com"},
		{name: "no header"},
		{name: "wrong scheme", header: "Basic " + token},
		{name: "garbage token", header: "Bearer not-a-jwt"},
		{name: "empty token", header: "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser, gotEmail string
			err := call(t, OptionalAuth(manager), tt.header, func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
				gotUser = GetUserID(ctx)
				gotEmail = GetEmail(ctx)
				return nil, nil
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, gotUser)
			assert.Equal(t, tt.wantEmail, gotEmail)
		})
	}
}

func TestOptionalAuthRejectsForeignSecret(t *testing.T) {
	other := auth.NewJWTManager("other-secret", time.Hour)
	token, err := other.Generate(models.User{ID: "user-1"})
	require.NoError(t, err)

	var gotUser string
	err = call(t, OptionalAuth(auth.NewJWTManager("test-secret", time.Hour)), "Bearer "+token,
		func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			gotUser = GetUserID(ctx)
			return nil, nil
		})
	require.NoError(t, err)
	assert.Empty(t, gotUser)
}

func TestLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	err := call(t, LoggingInterceptor(logger), "", func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, nil
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "RPC ok")

	buf.Reset()
	err = call(t, LoggingInterceptor(logger), "", func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("title is required"))
	})
	require.Error(t, err)
	assert.Contains(t, buf.String(), "RPC error")
	assert.Contains(t, buf.String(), "invalid_argument")
	assert.Contains(t, buf.String(), "level=WARN")

	buf.Reset()
	err = call(t, LoggingInterceptor(logger), "", func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, errors.New("boom")
	})
	require.Error(t, err)
	assert.Contains(t, buf.String(), "level=ERROR")
}

func TestErrorLevel(t *testing.T) {
	tests := []struct {
		code connect.Code
		want slog.Level
	}{
		{connect.CodeInvalidArgument, slog.LevelWarn},
		{connect.CodeNotFound, slog.LevelWarn},
		{connect.CodeFailedPrecondition, slog.LevelWarn},
		{connect.CodeUnauthenticated, slog.LevelWarn},
		{connect.CodeUnknown, slog.LevelError},
		{connect.CodeInternal, slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, errorLevel(tt.code))
		})
	}
}

type recordedRPC struct {
	procedure string
	code      string
}

type fakeObserver struct {
	mu    sync.Mutex
	calls []recordedRPC
}

func (o *fakeObserver) ObserveRPC(procedure, code string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, recordedRPC{procedure: procedure, code: code})
}

func TestMetricsInterceptor(t *testing.T) {
	obs := &fakeObserver{}
	interceptor := MetricsInterceptor(obs)

	require.NoError(t, call(t, interceptor, "", func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, nil
	}))
	require.Error(t, call(t, interceptor, "", func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("unknown page"))
	}))
	require.Error(t, call(t, interceptor, "", func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, errors.New("boom")
	}))

	require.Len(t, obs.calls, 3)
	assert.Equal(t, "ok", obs.calls[0].code)
	assert.Equal(t, "not_found", obs.calls[1].code)
	assert.Equal(t, "unknown", obs.calls[2].code)
}
