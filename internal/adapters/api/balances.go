package api

import (
	"context"
	"net/http"

	"github.com/bnema/chesswager-cli/internal/domain"
)

func (c *Client) Balances(ctx context.Context) (domain.BalanceSnapshot, error) {
	var response balancesResponse
	if err := c.do(ctx, "fetch balances", http.MethodGet, "/balances", nil, &response); err != nil {
		return domain.BalanceSnapshot{}, err
	}
	return response.toDomain(), nil
}

func (c *Client) TokenBalance(ctx context.Context) (float64, error) {
	var response amountResponse
	if err := c.do(ctx, "fetch token balance", http.MethodGet, "/tokens/balance/user", nil, &response); err != nil {
		return 0, err
	}
	return *response.Balance, nil
}
