package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/onepiece-lab/backend/config"
	"github.com/onepiece-lab/backend/internal/model"
	"github.com/onepiece-lab/backend/pkg/authenticator"
	"github.com/onepiece-lab/backend/pkg/logger"
	"gorm.io/gorm"
)

// Router registers typed endpoints on a shared mux. Branches share the mux but
// carry their own middleware chains, so a group of routes can be guarded
// without affecting the rest.
type Router struct {
	mux    *mux.Router
	cfg    config.Configs
	logger logger.Logger
	db     *gorm.DB

	accessTokenEngine authenticator.TokenEngine[model.AccessToken]

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, logger logger.Logger) *Router {
	return &Router{
		mux:    mux.NewRouter(),
		cfg:    cfg,
		logger: logger,
		db:     db,
		accessTokenEngine: authenticator.NewTokenEngine[model.AccessToken](
			cfg.Auth.TokenSecret, cfg.Auth.AccessToken.Expiration),
	}
}

func (r *Router) Branch() *Router {
	clone := *r
	clone.befores = append([]MiddlewareFunc{}, r.befores...)
	clone.afters = append([]MiddlewareFunc{}, r.afters...)
	clone.closers = append([]CloserFunc{}, r.closers...)
	return &clone
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) After(middleware MiddlewareFunc) {
	r.afters = append(r.afters, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.Handle(pattern, wrapHandler(r, handler)).Methods(http.MethodGet)
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.Handle(pattern, wrapHandler(r, handler)).Methods(http.MethodPost)
}

func PATCH[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.Handle(pattern, wrapHandler(r, handler)).Methods(http.MethodPatch)
}

func DELETE[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.Handle(pattern, wrapHandler(r, handler)).Methods(http.MethodDelete)
}

func (r *Router) Handler() http.Handler {
	return r.mux
}
