package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/autogirlng/muvment-customer-sub002/pkg/model"
)

type AccountClient struct {
	gw *Client
}

func NewAccountClient(gw *Client) *AccountClient {
	return &AccountClient{gw: gw}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User         *model.User `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

func (c *AccountClient) Login(ctx context.Context, req LoginRequest) (*Result, error) {
	return c.gw.Post(ctx, "/api/v1/auth/login", req, "")
}

func (c *AccountClient) Refresh(ctx context.Context, refreshToken string) (*Result, error) {
	body := map[string]string{"refreshToken": refreshToken}
	return c.gw.Post(ctx, "/api/v1/auth/refresh", body, "")
}

func (c *AccountClient) GetProfile(ctx context.Context, token string) (*Result, error) {
	return c.gw.Get(ctx, "/api/v1/account/profile", token)
}

func (c *AccountClient) UpdateProfile(ctx context.Context, update *model.ProfileUpdate, token string) (*Result, error) {
	return c.gw.Put(ctx, "/api/v1/account/profile", update, token)
}

func (c *AccountClient) ListFavourites(ctx context.Context, token string, page, size int) (*Result, error) {
	path := fmt.Sprintf("/api/v1/account/favourites?page=%d&size=%d", page, size)
	return c.gw.Get(ctx, path, token)
}

func (c *AccountClient) AddFavourite(ctx context.Context, vehicleID, token string) (*Result, error) {
	body := map[string]string{"vehicleId": vehicleID}
	return c.gw.Post(ctx, "/api/v1/account/favourites", body, token)
}

func (c *AccountClient) RemoveFavourite(ctx context.Context, vehicleID, token string) (*Result, error) {
	return c.gw.Delete(ctx, "/api/v1/account/favourites/"+url.PathEscape(vehicleID), token)
}

func (c *AccountClient) DecodeLogin(res *Result) (*LoginResponse, error) {
	var login LoginResponse
	if err := res.Decode(&login); err != nil {
		return nil, fmt.Errorf("could not decode login response: %w", err)
	}
	return &login, nil
}

func (c *AccountClient) DecodeUser(res *Result) (*model.User, error) {
	var user model.User
	if err := res.Decode(&user); err != nil {
		return nil, fmt.Errorf("could not decode user: %w", err)
	}
	return &user, nil
}
