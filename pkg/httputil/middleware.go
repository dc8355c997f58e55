package httputil

import (
	"github.com/fasthttp/router"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

const (
	// HeaderRequestID carries the request correlation id in both directions
	HeaderRequestID = "X-Request-ID"

	requestIDKey = "request_id"
)

// Middleware is a function that wraps a handler
type Middleware func(fasthttp.RequestHandler) fasthttp.RequestHandler

// Chain applies middleware so that the first one is outermost
func Chain(handler fasthttp.RequestHandler, middleware ...Middleware) fasthttp.RequestHandler {
	for i := len(middleware) - 1; i >= 0; i-- {
		handler = middleware[i](handler)
	}
	return handler
}

// MiddlewareGroup wraps a router group with middleware support
type MiddlewareGroup struct {
	group      *router.Group
	middleware []Middleware
}

// NewMiddlewareGroup creates a new middleware group
func NewMiddlewareGroup(group *router.Group, middleware ...Middleware) *MiddlewareGroup {
	return &MiddlewareGroup{
		group:      group,
		middleware: append([]Middleware{}, middleware...),
	}
}

// Use adds middleware to the group
func (g *MiddlewareGroup) Use(m ...Middleware) *MiddlewareGroup {
	g.middleware = append(g.middleware, m...)
	return g
}

// With returns a sibling group sharing the path prefix with extra middleware
func (g *MiddlewareGroup) With(m ...Middleware) *MiddlewareGroup {
	combined := make([]Middleware, 0, len(g.middleware)+len(m))
	combined = append(combined, g.middleware...)
	combined = append(combined, m...)
	return &MiddlewareGroup{group: g.group, middleware: combined}
}

// Handle registers a handler for method and path with the group's middleware applied
func (g *MiddlewareGroup) Handle(method, path string, handler fasthttp.RequestHandler) {
	g.group.Handle(method, path, Chain(handler, g.middleware...))
}

func (g *MiddlewareGroup) GET(path string, handler fasthttp.RequestHandler) {
	g.Handle(fasthttp.MethodGet, path, handler)
}

func (g *MiddlewareGroup) POST(path string, handler fasthttp.RequestHandler) {
	g.Handle(fasthttp.MethodPost, path, handler)
}

func (g *MiddlewareGroup) PUT(path string, handler fasthttp.RequestHandler) {
	g.Handle(fasthttp.MethodPut, path, handler)
}

func (g *MiddlewareGroup) DELETE(path string, handler fasthttp.RequestHandler) {
	g.Handle(fasthttp.MethodDelete, path, handler)
}

// RequestIDMiddleware reuses an inbound X-Request-ID or generates one
func RequestIDMiddleware(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		id := string(ctx.Request.Header.Peek(HeaderRequestID))
		if id == "" {
			id = uuid.NewString()
		}
		ctx.SetUserValue(requestIDKey, id)
		ctx.Response.Header.Set(HeaderRequestID, id)
		next(ctx)
	}
}

// RequestID returns the id assigned by RequestIDMiddleware, if any
func RequestID(ctx *fasthttp.RequestCtx) string {
	id, _ := ctx.UserValue(requestIDKey).(string)
	return id
}
