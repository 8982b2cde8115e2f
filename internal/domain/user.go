package domain

import (
	"context"
	"errors"
	"strconv"

	"github.com/onepiece-lab/backend/internal/entity"
	"github.com/onepiece-lab/backend/internal/model"
	"github.com/onepiece-lab/backend/internal/repository"
	"github.com/onepiece-lab/backend/pkg/crypto"
	"github.com/onepiece-lab/backend/pkg/errorx"
	"github.com/onepiece-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserDomain interface {
	Register(context.Context, *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(context.Context, *model.LoginRequest) (*model.LoginResponse, error)
	UpdateByID(context.Context, *model.UpdateUserRequest) (*model.UpdateUserResponse, error)
	DeleteByID(context.Context, *model.DeleteUserRequest) (*model.DeleteUserResponse, error)
}

type userDomain struct {
	userRepo repository.UserRepository
}

func NewUserDomain(userRepo repository.UserRepository) UserDomain {
	return &userDomain{userRepo: userRepo}
}

func (d *userDomain) Register(
	ctx context.Context, req *model.RegisterRequest,
) (*model.RegisterResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, errorx.New(errorx.BadRequest, "Please enter all required information")
	}

	_, err := d.userRepo.GetByEmail(ctx, req.Email)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get user by email: %v", err)
			return nil, errorx.Unknown
		}

		return nil, errorx.New(errorx.AlreadyExists, "Email already exists")
	}

	hashed, err := crypto.HashPassword(req.Password)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot hash password: %v", err)
		return nil, errorx.Unknown
	}

	user := &entity.User{Email: req.Email, Password: hashed}
	if err := d.userRepo.Create(ctx, user); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RegisterResponse{Message: "User created successfully"}, nil
}

func (d *userDomain) Login(
	ctx context.Context, req *model.LoginRequest,
) (*model.LoginResponse, error) {
	// An unknown email and a wrong password must be indistinguishable to the
	// caller.
	user, err := d.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unauthenticated, "Invalid credentials")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user by email: %v", err)
		return nil, errorx.Unknown
	}

	if err := crypto.VerifyPassword(user.Password, req.Password); err != nil {
		return nil, errorx.New(errorx.Unauthenticated, "Invalid credentials")
	}

	token, err := xcontext.TokenEngine(ctx).Generate(
		strconv.FormatInt(user.ID, 10),
		model.AccessToken{ID: user.ID, Email: user.Email},
	)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.LoginResponse{Token: token}, nil
}

func (d *userDomain) UpdateByID(
	ctx context.Context, req *model.UpdateUserRequest,
) (*model.UpdateUserResponse, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	if xcontext.RequestUserID(ctx) != id {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if _, err := d.userRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "User not found.")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	updates := map[string]any{}
	if req.Email != nil && *req.Email != "" {
		existing, err := d.userRepo.GetByEmail(ctx, *req.Email)
		if err == nil && existing.ID != id {
			return nil, errorx.New(errorx.AlreadyExists, "Email already exists")
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get user by email: %v", err)
			return nil, errorx.Unknown
		}

		updates["email"] = *req.Email
	}

	if req.Password != nil && *req.Password != "" {
		hashed, err := crypto.HashPassword(*req.Password)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot hash password: %v", err)
			return nil, errorx.Unknown
		}

		updates["password"] = hashed
	}

	if len(updates) == 0 {
		return nil, errorx.New(errorx.BadRequest, "No data provided to update or invalid.")
	}

	if err := d.userRepo.UpdateByID(ctx, id, updates); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update user: %v", err)
		return nil, errorx.Unknown
	}

	user, err := d.userRepo.GetByID(ctx, id)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot reload user: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.UpdateUserResponse(convertUser(user))
	return &resp, nil
}

func (d *userDomain) DeleteByID(
	ctx context.Context, req *model.DeleteUserRequest,
) (*model.DeleteUserResponse, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	if xcontext.RequestUserID(ctx) != id {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	user, err := d.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "User not found.")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.userRepo.DeleteByID(ctx, id); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete user: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.DeleteUserResponse(convertUser(user))
	return &resp, nil
}
