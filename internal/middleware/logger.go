package middleware

import (
	"errors"
	"fmt"

	"github.com/onepiece-lab/backend/pkg/errorx"
	"github.com/onepiece-lab/backend/pkg/router"
	"github.com/onepiece-lab/backend/pkg/xcontext"
)

func Logger() router.CloserFunc {
	return func(ctx xcontext.Context) {
		info := fmt.Sprintf("%s | %s | %s",
			ctx.Request().Method, ctx.Request().URL.Path, xcontext.RequestID(ctx))

		if err := xcontext.GetError(ctx); err != nil {
			var errx errorx.Error
			if errors.As(err, &errx) {
				xcontext.Logger(ctx).Warnf("%s | %d", info, errx.Code)
			} else {
				xcontext.Logger(ctx).Errorf("%s | %v", info, err)
			}
		} else {
			xcontext.Logger(ctx).Infof("%s", info)
		}
	}
}
