package http

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

type mockPinger struct {
	err error
}

func (m *mockPinger) PingContext(context.Context) error {
	return m.err
}

type mockPublisher struct {
	healthy bool
}

func (m *mockPublisher) Healthy() bool {
	return m.healthy
}

type mockIndex struct {
	err error
}

func (m *mockIndex) Count() (uint64, error) {
	return 3, m.err
}

func serve(t *testing.T, h *HealthHandler) (int, HealthResponse) {
	t.Helper()
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	ctx.Request.SetRequestURI("/health")

	h.Handle(ctx)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	return ctx.Response.StatusCode(), resp
}

func TestHealthHandler_AllHealthy(t *testing.T) {
	h := NewHealthHandler("announcement-service", &mockPinger{}, &mockPublisher{healthy: true}, &mockIndex{}, zerolog.Nop())

	status, resp := serve(t, h)
	require.Equal(t, fasthttp.StatusOK, status)
	require.Equal(t, HealthStatusHealthy, resp.Status)
	require.Equal(t, "announcement-service", resp.Service)
	require.Len(t, resp.Components, 3)
}

func TestHealthHandler_Degraded(t *testing.T) {
	h := NewHealthHandler("announcement-service", &mockPinger{}, &mockPublisher{healthy: false}, &mockIndex{}, zerolog.Nop())

	status, resp := serve(t, h)
	require.Equal(t, fasthttp.StatusOK, status)
	require.Equal(t, HealthStatusDegraded, resp.Status)
	require.Equal(t, "kafka_producer", resp.Components[1].Name)
	require.False(t, resp.Components[1].Healthy)
}

func TestHealthHandler_DatabaseDown(t *testing.T) {
	h := NewHealthHandler("announcement-service", &mockPinger{err: errors.New("connection refused")}, &mockPublisher{healthy: true}, &mockIndex{err: errors.New("closed")}, zerolog.Nop())

	status, resp := serve(t, h)
	require.Equal(t, fasthttp.StatusServiceUnavailable, status)
	require.Equal(t, HealthStatusUnhealthy, resp.Status)
	require.Equal(t, "connection refused", resp.Components[0].Message)
}
