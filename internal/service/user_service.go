package service

import (
	"context"

	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/infra/gateway"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/validation"
)

const msgCreateUserFault = "user creation failed"

type IUserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, userID int64) (*model.User, error)
	CreateUser(ctx context.Context, req model.UserRequest) (*model.User, apperr.FieldErrorMap)
}

type UserService struct {
	users gateway.IUserGateway
}

func NewUserService(users gateway.IUserGateway) *UserService {
	if users == nil {
		panic("users gateway cannot be nil")
	}
	return &UserService{users: users}
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.ListUsers(ctx)
}

func (s *UserService) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	return s.users.GetUser(ctx, userID)
}

func (s *UserService) CreateUser(ctx context.Context, req model.UserRequest) (*model.User, apperr.FieldErrorMap) {
	if errs := validation.ValidateUserRequest(req); errs.HasErrors() {
		return nil, errs
	}

	user, err := s.users.CreateUser(ctx, req)
	if err != nil {
		return nil, apperr.Normalize(err, msgCreateUserFault)
	}
	return user, nil
}

var _ IUserService = (*UserService)(nil)
