package jmapi

import (
	"context"
	"net/url"

	"github.com/jakartamandarin/console/core/user"
)

func (c *Client) ListUsers(ctx context.Context, activeOnly bool) ([]user.Record, error) {
	var query url.Values
	if activeOnly {
		query = url.Values{"isActive": []string{"true"}}
	}
	var out []user.Record
	if err := c.get(ctx, "/user", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateUser(ctx context.Context, nu user.NewUser) (user.Record, error) {
	var out user.Record
	if err := c.post(ctx, "/user", nu, &out); err != nil {
		return user.Record{}, err
	}
	return out, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, uu user.UpdateUser) (user.Record, error) {
	var out user.Record
	if err := c.patch(ctx, "/user/"+url.PathEscape(id), uu, &out); err != nil {
		return user.Record{}, err
	}
	return out, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.del(ctx, "/user/"+url.PathEscape(id))
}
