package jmapi

import (
	"context"

	"github.com/jakartamandarin/console/core/settings"
)

func (c *Client) Settings(ctx context.Context) ([]settings.Setting, error) {
	var out []settings.Setting
	if err := c.get(ctx, "/settings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SaveSettings(ctx context.Context, batch []settings.Setting) error {
	return c.post(ctx, "/settings/bulk", batch, nil)
}

func (c *Client) TestEmail(ctx context.Context) error {
	return c.post(ctx, "/settings/test-email", nil, nil)
}

func (c *Client) Backup(ctx context.Context) error {
	return c.post(ctx, "/settings/backup", nil, nil)
}
