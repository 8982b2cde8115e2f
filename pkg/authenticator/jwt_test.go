package authenticator_test

import (
	"testing"
	"time"

	"github.com/onepiece-lab/backend/pkg/authenticator"
	"github.com/stretchr/testify/require"
)

type payload struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

func TestJWT(t *testing.T) {
	engine := authenticator.NewTokenEngine[payload]("secret", time.Minute)
	token, err := engine.Generate("1", payload{ID: 1, Email: "admin@gmail.com"})
	require.NoError(t, err)

	obj, err := engine.Verify(token)
	require.NoError(t, err)
	require.Equal(t, int64(1), obj.ID)
	require.Equal(t, "admin@gmail.com", obj.Email)
}

func TestJWTExpiration(t *testing.T) {
	engine := authenticator.NewTokenEngine[payload]("secret", -time.Minute)
	token, err := engine.Generate("1", payload{ID: 1})
	require.NoError(t, err)

	_, err = engine.Verify(token)
	require.Error(t, err)
}

func TestJWTWrongSecret(t *testing.T) {
	engine := authenticator.NewTokenEngine[payload]("secret", time.Minute)
	token, err := engine.Generate("1", payload{ID: 1})
	require.NoError(t, err)

	other := authenticator.NewTokenEngine[payload]("another-secret", time.Minute)
	_, err = other.Verify(token)
	require.Error(t, err)
}
