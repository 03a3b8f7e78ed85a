package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/model"
)

type IUserGateway interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, userID int64) (*model.User, error)
	CreateUser(ctx context.Context, req model.UserRequest) (*model.User, error)
}

type UserGateway struct {
	client
}

func NewUserGateway(baseURL string, timeout time.Duration) *UserGateway {
	return &UserGateway{client: newClient(baseURL, timeout)}
}

func (g *UserGateway) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := g.do(ctx, http.MethodGet, "", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (g *UserGateway) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	var user model.User
	if err := g.do(ctx, http.MethodGet, fmt.Sprintf("/%d", userID), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *UserGateway) CreateUser(ctx context.Context, req model.UserRequest) (*model.User, error) {
	var user model.User
	if err := g.do(ctx, http.MethodPost, "", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

var _ IUserGateway = (*UserGateway)(nil)
