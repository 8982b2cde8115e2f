package xcontext

import (
	"context"
	"net/http"

	"github.com/onepiece-lab/backend/config"
	"github.com/onepiece-lab/backend/internal/model"
	"github.com/onepiece-lab/backend/pkg/authenticator"
	"github.com/onepiece-lab/backend/pkg/logger"
	"gorm.io/gorm"
)

// Context is an extension of the context.Context carrying the request-scoped
// collaborators. It is created by the router; everything below the router
// receives it as a plain context.Context and reads values through the
// package-level accessors.
type Context interface {
	context.Context

	// Request returns the *http.Request.
	Request() *http.Request

	// Writer returns the http.ResponseWriter.
	Writer() http.ResponseWriter

	// Set is another implementation of context.WithValue. The new value is
	// visible to everyone holding this Context.
	Set(key, value any)

	// Get returns the value corresponding to the given key which is stored by
	// the Set method or the context.WithValue function.
	Get(key any) any
}

type defaultContext struct {
	context.Context

	r *http.Request
	w http.ResponseWriter
}

func NewContext(
	ctx context.Context,
	r *http.Request,
	w http.ResponseWriter,
	cfg config.Configs,
	logger logger.Logger,
	db *gorm.DB,
	engine authenticator.TokenEngine[model.AccessToken],
) Context {
	ctx = WithConfigs(ctx, cfg)
	ctx = WithLogger(ctx, logger)
	ctx = WithDB(ctx, db)
	ctx = WithTokenEngine(ctx, engine)

	return &defaultContext{Context: ctx, r: r, w: w}
}

func (ctx *defaultContext) Set(key, value any) {
	ctx.Context = context.WithValue(ctx.Context, key, value)
}

func (ctx *defaultContext) Get(key any) any {
	return ctx.Context.Value(key)
}

func (ctx *defaultContext) Request() *http.Request {
	return ctx.r
}

func (ctx *defaultContext) Writer() http.ResponseWriter {
	return ctx.w
}
