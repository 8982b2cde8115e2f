package middleware

import (
	"strings"

	"github.com/onepiece-lab/backend/pkg/errorx"
	"github.com/onepiece-lab/backend/pkg/router"
	"github.com/onepiece-lab/backend/pkg/xcontext"
)

// AuthVerifier rejects requests without a verifiable identity. A failed
// verification never escapes as anything but a 401; the decoded caller id is
// stored under a private context key the client cannot reach.
type AuthVerifier struct {
	useAccessToken bool
}

func NewAuthVerifier() *AuthVerifier {
	return &AuthVerifier{}
}

func (verifier *AuthVerifier) WithAccessToken() *AuthVerifier {
	verifier.useAccessToken = true
	return verifier
}

func (verifier *AuthVerifier) Middleware() router.MiddlewareFunc {
	return func(ctx xcontext.Context) error {
		if !verifier.useAccessToken {
			return errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		authorization := ctx.Request().Header.Get("Authorization")
		if authorization == "" {
			return errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		scheme, token, found := strings.Cut(authorization, " ")
		if !found || scheme != "Bearer" || token == "" {
			return errorx.New(errorx.Unauthenticated, "Invalid authorization header")
		}

		accessToken, err := xcontext.TokenEngine(ctx).Verify(token)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot verify access token: %v", err)
			return errorx.New(errorx.Unauthenticated, "Invalid or expired token")
		}

		xcontext.SetRequestUserID(ctx, accessToken.ID)
		return nil
	}
}
