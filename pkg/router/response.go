package router

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/onepiece-lab/backend/pkg/errorx"
	"github.com/onepiece-lab/backend/pkg/xcontext"
)

// statusCodeResponse lets a response pick its own success status, e.g. 201
// for creations or 204 for empty collections.
type statusCodeResponse interface {
	HTTPStatusCode() int
}

type errorResponse struct {
	Error string `json:"error"`
}

func httpStatus(code errorx.Code) int {
	switch code {
	case errorx.BadRequest:
		return http.StatusBadRequest
	case errorx.Unauthenticated:
		return http.StatusUnauthorized
	case errorx.PermissionDenied:
		return http.StatusForbidden
	case errorx.NotFound:
		return http.StatusNotFound
	case errorx.AlreadyExists:
		return http.StatusConflict
	}

	return http.StatusInternalServerError
}

func writeResponse(ctx xcontext.Context) {
	if err := xcontext.GetError(ctx); err != nil {
		errx := errorx.Error{}
		if !errors.As(err, &errx) {
			errx = errorx.Unknown
		}

		writeJSON(ctx, httpStatus(errx.Code), errorResponse{Error: errx.Message})
		return
	}

	resp := xcontext.GetResponse(ctx)
	if resp == nil {
		ctx.Writer().WriteHeader(http.StatusOK)
		return
	}

	status := http.StatusOK
	if coder, ok := resp.(statusCodeResponse); ok {
		status = coder.HTTPStatusCode()
	}

	if status == http.StatusNoContent {
		ctx.Writer().WriteHeader(status)
		return
	}

	writeJSON(ctx, status, resp)
}

func writeJSON(ctx xcontext.Context, status int, body any) {
	b, err := json.Marshal(body)
	if err != nil {
		xcontext.Logger(ctx).Errorf("cannot marshal the response: %v", err)
		ctx.Writer().WriteHeader(http.StatusInternalServerError)
		return
	}

	ctx.Writer().Header().Set("Content-Type", "application/json")
	ctx.Writer().WriteHeader(status)
	if _, err := ctx.Writer().Write(b); err != nil {
		xcontext.Logger(ctx).Errorf("cannot write the response: %v", err)
	}
}
