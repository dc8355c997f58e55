package httputil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func TestKeyedLimiter_PerKeyBuckets(t *testing.T) {
	l := NewKeyedLimiter(1, 2, time.Minute)
	fixed := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	require.True(t, l.Allow("user-1"))
	require.True(t, l.Allow("user-1"))
	require.False(t, l.Allow("user-1"))

	require.True(t, l.Allow("user-2"))
	require.Equal(t, 2, l.Size())
}

func TestKeyedLimiter_SweepsIdleBuckets(t *testing.T) {
	l := NewKeyedLimiter(1, 1, time.Minute)
	current := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return current }

	require.True(t, l.Allow("a"))
	current = current.Add(2 * time.Minute)
	require.True(t, l.Allow("b"))
	require.Equal(t, 1, l.Size())
}

func TestKeyedLimiter_Middleware(t *testing.T) {
	l := NewKeyedLimiter(0.001, 1, 0)
	calls := 0
	handler := l.Middleware(func(ctx *fasthttp.RequestCtx) string { return "same" })(func(ctx *fasthttp.RequestCtx) {
		calls++
		ctx.SetStatusCode(fasthttp.StatusOK)
	})

	first := &fasthttp.RequestCtx{}
	handler(first)
	require.Equal(t, fasthttp.StatusOK, first.Response.StatusCode())

	second := &fasthttp.RequestCtx{}
	handler(second)
	require.Equal(t, fasthttp.StatusTooManyRequests, second.Response.StatusCode())
	require.Equal(t, 1, calls)
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	handler := RequestIDMiddleware(func(ctx *fasthttp.RequestCtx) {
		seen = RequestID(ctx)
		WriteResponse(ctx, map[string]string{"ok": "yes"})
	})

	ctx := &fasthttp.RequestCtx{}
	handler(ctx)
	require.NotEmpty(t, seen)
	require.Equal(t, seen, string(ctx.Response.Header.Peek(HeaderRequestID)))

	var resp Response
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, seen, resp.RequestID)

	inbound := &fasthttp.RequestCtx{}
	inbound.Request.Header.Set(HeaderRequestID, "abc-123")
	handler(inbound)
	require.Equal(t, "abc-123", seen)
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
			return func(ctx *fasthttp.RequestCtx) {
				order = append(order, name)
				next(ctx)
			}
		}
	}

	h := Chain(func(ctx *fasthttp.RequestCtx) { order = append(order, "handler") }, mw("outer"), mw("inner"))
	h(&fasthttp.RequestCtx{})
	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestWriteErrorResponse(t *testing.T) {
	ctx := &fasthttp.RequestCtx{}
	WriteErrorResponse(ctx, "announcement does not exist", fasthttp.StatusNotFound)

	require.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
	var resp Response
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	require.False(t, resp.Success)
	require.Equal(t, "announcement does not exist", resp.Error)
}
