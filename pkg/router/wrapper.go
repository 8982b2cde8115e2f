package router

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/onepiece-lab/backend/pkg/errorx"
	"github.com/onepiece-lab/backend/pkg/xcontext"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)
type MiddlewareFunc func(ctx xcontext.Context) error
type CloserFunc func(ctx xcontext.Context)

func wrapHandler[Request, Response any](
	router *Router,
	handler HandlerFunc[Request, Response],
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := xcontext.NewContext(
			r.Context(), r, w,
			router.cfg, router.logger, router.db, router.accessTokenEngine,
		)
		xcontext.SetRequestID(ctx, uuid.NewString())

		func() {
			for _, middleware := range router.befores {
				if err := middleware(ctx); err != nil {
					xcontext.SetError(ctx, err)
					return
				}
			}

			req := new(Request)
			if err := bind(r, mux.Vars(r), req); err != nil {
				xcontext.SetError(ctx, errorx.New(errorx.BadRequest, "Cannot parse the request"))
				return
			}

			resp, err := handler(ctx, req)
			if err != nil {
				xcontext.SetError(ctx, err)
				return
			}

			if resp != nil {
				xcontext.SetResponse(ctx, resp)
			}

			for _, middleware := range router.afters {
				if err := middleware(ctx); err != nil {
					xcontext.SetError(ctx, err)
					return
				}
			}
		}()

		writeResponse(ctx)

		for _, closer := range router.closers {
			closer(ctx)
		}
	})
}
