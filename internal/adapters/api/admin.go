package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bnema/chesswager-cli/internal/domain"
)

func (c *Client) Dashboard(ctx context.Context) (domain.Dashboard, error) {
	var response dashboardResponse
	if err := c.do(ctx, "fetch admin dashboard", http.MethodGet, "/admin/dashboard", nil, &response); err != nil {
		return domain.Dashboard{}, err
	}
	return response.toDomain(), nil
}

func (c *Client) Mint(ctx context.Context, mint domain.Mint) error {
	body := map[string]any{"address": mint.Address, "amount": mint.Amount}
	return c.do(ctx, "mint tokens", http.MethodPost, "/tokens/mint", body, nil)
}

func (c *Client) Transfer(ctx context.Context, transfer domain.Transfer) error {
	body := map[string]any{"to": transfer.To, "amount": transfer.Amount}
	return c.do(ctx, "transfer tokens", http.MethodPost, "/tokens/transfer", body, nil)
}

func (c *Client) BalanceOf(ctx context.Context, address string) (float64, error) {
	var response amountResponse
	if err := c.do(ctx, "fetch balance", http.MethodGet, "/tokens/balance/"+url.PathEscape(address), nil, &response); err != nil {
		return 0, err
	}
	return *response.Balance, nil
}
