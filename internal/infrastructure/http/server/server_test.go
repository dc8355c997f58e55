package server

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/Conte777/NewsFlow/services/announcement-service/internal/infrastructure/metrics"
	"github.com/Conte777/NewsFlow/services/announcement-service/pkg/httputil"
)

func TestServer_HandlerRoutesAndTagsRequests(t *testing.T) {
	srv := NewServer("test", "0", metrics.NewMetrics(prometheus.NewRegistry()), zerolog.Nop())
	srv.Router.GET("/ping/{name}", func(ctx *fasthttp.RequestCtx) {
		httputil.WriteResponse(ctx, ctx.UserValue("name"))
	})

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	ctx.Request.SetRequestURI("/ping/bob")

	srv.Handler()(ctx)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	require.Contains(t, string(ctx.Response.Body()), `"data":"bob"`)
	require.NotEmpty(t, ctx.Response.Header.Peek(httputil.HeaderRequestID))
}

func TestServer_UnknownRoute(t *testing.T) {
	srv := NewServer("test", "0", metrics.NewMetrics(prometheus.NewRegistry()), zerolog.Nop())

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	ctx.Request.SetRequestURI("/missing")

	srv.Handler()(ctx)
	require.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}
