package jmapi

import (
	"context"

	"github.com/jakartamandarin/console/core/dashboard"
)

func (c *Client) ListInvoices(ctx context.Context) ([]dashboard.Invoice, error) {
	var out []dashboard.Invoice
	if err := c.get(ctx, "/invoice", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SSCStats(ctx context.Context) (dashboard.SSCStats, error) {
	var out dashboard.SSCStats
	if err := c.get(ctx, "/ssc/stats", nil, &out); err != nil {
		return dashboard.SSCStats{}, err
	}
	return out, nil
}
