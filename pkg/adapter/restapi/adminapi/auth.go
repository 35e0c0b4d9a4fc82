package adminapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/momeni/autorent/pkg/core/model"
)

// Login posts cred and stores the returned token for the next
// requests.
func (c *Client) Login(ctx context.Context, cred model.Credentials) (*model.Session, error) {
	s := &model.Session{}
	err := c.do(ctx, request{
		method: http.MethodPost, path: "/auth/login", body: cred,
	}, s)
	if err != nil {
		return nil, err
	}
	if err := c.tokens.Set(ctx, TokenKey, s.Token); err != nil {
		return nil, fmt.Errorf("storing token: %w", err)
	}
	return s, nil
}

// Logout drops the stored token without contacting the server.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.tokens.Delete(ctx, TokenKey); err != nil {
		return fmt.Errorf("deleting token: %w", err)
	}
	return nil
}

func (c *Client) CurrentUser(ctx context.Context) (*model.User, error) {
	u := &model.User{}
	err := c.do(ctx, request{method: http.MethodGet, path: "/auth/me"}, u)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (c *Client) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	ds := &model.DashboardStats{}
	err := c.do(ctx, request{
		method: http.MethodGet, path: "/dashboard/stats",
	}, ds)
	if err != nil {
		return nil, err
	}
	return ds, nil
}
