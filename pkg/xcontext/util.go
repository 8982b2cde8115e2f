package xcontext

import (
	"context"

	"github.com/onepiece-lab/backend/config"
	"github.com/onepiece-lab/backend/internal/model"
	"github.com/onepiece-lab/backend/pkg/authenticator"
	"github.com/onepiece-lab/backend/pkg/logger"
	"gorm.io/gorm"
)

type (
	dbKey          struct{}
	loggerKey      struct{}
	configsKey     struct{}
	tokenEngineKey struct{}
	userIDKey      struct{}
	requestIDKey   struct{}
	responseKey    struct{}
	errorKey       struct{}
)

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the gorm client carried by the context. It panics if the context
// was not prepared by the router or the testutil package.
func DB(ctx context.Context) *gorm.DB {
	return ctx.Value(dbKey{}).(*gorm.DB)
}

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func Logger(ctx context.Context) logger.Logger {
	if l, ok := ctx.Value(loggerKey{}).(logger.Logger); ok {
		return l
	}

	return logger.NewLogger(logger.ERROR)
}

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	return ctx.Value(configsKey{}).(config.Configs)
}

func WithTokenEngine(ctx context.Context, engine authenticator.TokenEngine[model.AccessToken]) context.Context {
	return context.WithValue(ctx, tokenEngineKey{}, engine)
}

func TokenEngine(ctx context.Context) authenticator.TokenEngine[model.AccessToken] {
	return ctx.Value(tokenEngineKey{}).(authenticator.TokenEngine[model.AccessToken])
}

func WithRequestUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// SetRequestUserID records the authenticated caller. The value lives under a
// private key, so it can never collide with anything bound from client input.
func SetRequestUserID(ctx Context, id int64) {
	ctx.Set(userIDKey{}, id)
}

// RequestUserID returns the authenticated caller id, or zero if the request
// did not pass the authentication middleware.
func RequestUserID(ctx context.Context) int64 {
	if id, ok := ctx.Value(userIDKey{}).(int64); ok {
		return id
	}

	return 0
}

func SetRequestID(ctx Context, id string) {
	ctx.Set(requestIDKey{}, id)
}

func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}

	return ""
}

func SetError(ctx Context, err error) {
	ctx.Set(errorKey{}, err)
}

func GetError(ctx context.Context) error {
	err := ctx.Value(errorKey{})
	if err == nil {
		return nil
	}

	return err.(error)
}

func SetResponse(ctx Context, resp any) {
	ctx.Set(responseKey{}, resp)
}

func GetResponse(ctx context.Context) any {
	return ctx.Value(responseKey{})
}
