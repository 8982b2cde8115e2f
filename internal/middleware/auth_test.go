package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/onepiece-lab/backend/internal/model"
	"github.com/onepiece-lab/backend/pkg/authenticator"
	"github.com/onepiece-lab/backend/pkg/errorx"
	"github.com/onepiece-lab/backend/pkg/testutil"
	"github.com/onepiece-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newAuthContext(t *testing.T, authorization string) xcontext.Context {
	t.Helper()

	base := testutil.MockContext()
	req := httptest.NewRequest(http.MethodPost, "/characters", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	return xcontext.NewContext(
		base, req, httptest.NewRecorder(),
		xcontext.Configs(base),
		xcontext.Logger(base),
		xcontext.DB(base),
		xcontext.TokenEngine(base),
	)
}

func requireUnauthenticated(t *testing.T, err error, message string) {
	t.Helper()
	require.Error(t, err)

	errx, ok := err.(errorx.Error)
	require.True(t, ok, "expected an errorx.Error, got %v", err)
	require.Equal(t, errorx.Unauthenticated, errx.Code)
	require.Equal(t, message, errx.Message)
}

func TestAuthVerifier_validToken(t *testing.T) {
	ctx := newAuthContext(t, "")
	token, err := xcontext.TokenEngine(ctx).Generate("7", model.AccessToken{
		ID:    7,
		Email: "admin@gmail.com",
	})
	require.NoError(t, err)
	ctx.Request().Header.Set("Authorization", "Bearer "+token)

	middleware := NewAuthVerifier().WithAccessToken().Middleware()
	require.NoError(t, middleware(ctx))
	require.Equal(t, int64(7), xcontext.RequestUserID(ctx))
}

func TestAuthVerifier_missingHeader(t *testing.T) {
	ctx := newAuthContext(t, "")
	middleware := NewAuthVerifier().WithAccessToken().Middleware()

	err := middleware(ctx)
	requireUnauthenticated(t, err, "You need to authenticate before")
	require.Zero(t, xcontext.RequestUserID(ctx))
}

func TestAuthVerifier_invalidHeader(t *testing.T) {
	middleware := NewAuthVerifier().WithAccessToken().Middleware()

	for _, authorization := range []string{"Basic abc", "Bearer", "Bearer "} {
		ctx := newAuthContext(t, authorization)
		requireUnauthenticated(t, middleware(ctx), "Invalid authorization header")
	}
}

func TestAuthVerifier_invalidToken(t *testing.T) {
	ctx := newAuthContext(t, "Bearer not-a-token")
	middleware := NewAuthVerifier().WithAccessToken().Middleware()

	requireUnauthenticated(t, middleware(ctx), "Invalid or expired token")
}

func TestAuthVerifier_expiredToken(t *testing.T) {
	expiredEngine := authenticator.NewTokenEngine[model.AccessToken]("secret", -time.Minute)
	token, err := expiredEngine.Generate("7", model.AccessToken{ID: 7})
	require.NoError(t, err)

	ctx := newAuthContext(t, "Bearer "+token)
	middleware := NewAuthVerifier().WithAccessToken().Middleware()

	requireUnauthenticated(t, middleware(ctx), "Invalid or expired token")
}
