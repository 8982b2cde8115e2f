package domain

import (
	"testing"

	"github.com/onepiece-lab/backend/internal/model"
	"github.com/onepiece-lab/backend/internal/repository"
	"github.com/onepiece-lab/backend/pkg/errorx"
	"github.com/onepiece-lab/backend/pkg/testutil"
	"github.com/onepiece-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newUserDomain() UserDomain {
	return NewUserDomain(repository.NewUserRepository())
}

func Test_userDomain_Register(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newUserDomain()

	resp, err := domain.Register(ctx, &model.RegisterRequest{
		Email:    "zoro@gmail.com",
		Password: "santoryu",
	})
	require.NoError(t, err)
	require.Equal(t, "User created successfully", resp.Message)

	// The stored password is a hash, never the plaintext.
	user, err := repository.NewUserRepository().GetByEmail(ctx, "zoro@gmail.com")
	require.NoError(t, err)
	require.NotEqual(t, "santoryu", user.Password)
	require.NotEmpty(t, user.Password)
}

func Test_userDomain_Register_validation(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newUserDomain()

	_, err := domain.Register(ctx, &model.RegisterRequest{Email: "zoro@gmail.com"})
	requireErrorCode(t, err, errorx.BadRequest)

	_, err = domain.Register(ctx, &model.RegisterRequest{Password: "santoryu"})
	requireErrorCode(t, err, errorx.BadRequest)

	_, err = domain.Register(ctx, &model.RegisterRequest{
		Email:    testutil.User1.Email,
		Password: "whatever",
	})
	requireErrorCode(t, err, errorx.AlreadyExists)
}

func Test_userDomain_Login(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newUserDomain()

	resp, err := domain.Login(ctx, &model.LoginRequest{
		Email:    testutil.User1.Email,
		Password: testutil.User1Password,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	accessToken, err := xcontext.TokenEngine(ctx).Verify(resp.Token)
	require.NoError(t, err)
	require.Equal(t, testutil.User1.ID, accessToken.ID)
	require.Equal(t, testutil.User1.Email, accessToken.Email)
}

func Test_userDomain_Login_invalidCredentials(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newUserDomain()

	// Unknown email and wrong password answer identically.
	_, unknownEmailErr := domain.Login(ctx, &model.LoginRequest{
		Email:    "nobody@gmail.com",
		Password: testutil.User1Password,
	})
	requireErrorCode(t, unknownEmailErr, errorx.Unauthenticated)

	_, wrongPasswordErr := domain.Login(ctx, &model.LoginRequest{
		Email:    testutil.User1.Email,
		Password: "wrong",
	})
	requireErrorCode(t, wrongPasswordErr, errorx.Unauthenticated)

	require.Equal(t, unknownEmailErr.Error(), wrongPasswordErr.Error())
}

func Test_userDomain_UpdateByID(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newUserDomain()

	email := "captain@gmail.com"
	resp, err := domain.UpdateByID(ctx, &model.UpdateUserRequest{ID: "1", Email: &email})
	require.NoError(t, err)
	require.Equal(t, "captain@gmail.com", resp.Email)

	password := "newpassword"
	_, err = domain.UpdateByID(ctx, &model.UpdateUserRequest{ID: "1", Password: &password})
	require.NoError(t, err)

	_, err = domain.Login(ctx, &model.LoginRequest{Email: email, Password: password})
	require.NoError(t, err)
}

func Test_userDomain_UpdateByID_selfOnly(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newUserDomain()

	email := "captain@gmail.com"
	_, err := domain.UpdateByID(ctx, &model.UpdateUserRequest{ID: "2", Email: &email})
	requireErrorCode(t, err, errorx.PermissionDenied)

	_, err = domain.UpdateByID(ctx, &model.UpdateUserRequest{ID: "1"})
	requireErrorCode(t, err, errorx.BadRequest)
}

func Test_userDomain_DeleteByID(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newUserDomain()

	_, err := domain.DeleteByID(ctx, &model.DeleteUserRequest{ID: "2"})
	requireErrorCode(t, err, errorx.PermissionDenied)

	resp, err := domain.DeleteByID(ctx, &model.DeleteUserRequest{ID: "1"})
	require.NoError(t, err)
	require.Equal(t, testutil.User1.Email, resp.Email)

	_, err = domain.Login(ctx, &model.LoginRequest{
		Email:    testutil.User1.Email,
		Password: testutil.User1Password,
	})
	requireErrorCode(t, err, errorx.Unauthenticated)
}
