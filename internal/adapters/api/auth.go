package api

import (
	"context"
	"net/http"

	"github.com/bnema/chesswager-cli/internal/domain"
)

func (c *Client) Register(ctx context.Context, registration domain.Registration) (string, error) {
	body := map[string]string{
		"username": registration.Username,
		"email":    registration.Email,
		"password": registration.Password,
	}

	var response tokenResponse
	if err := c.do(ctx, "register", http.MethodPost, "/auth/register", body, &response); err != nil {
		return "", err
	}
	return response.credential(), nil
}

func (c *Client) Login(ctx context.Context, credentials domain.LoginCredentials) (string, error) {
	body := map[string]string{
		"email":    credentials.Email,
		"password": credentials.Password,
	}

	var response tokenResponse
	if err := c.do(ctx, "login", http.MethodPost, "/auth/login", body, &response); err != nil {
		return "", err
	}
	return response.credential(), nil
}

func (c *Client) Profile(ctx context.Context) (domain.Profile, error) {
	var response profileResponse
	if err := c.do(ctx, "fetch profile", http.MethodGet, "/auth/profile", nil, &response); err != nil {
		return domain.Profile{}, err
	}
	return response.toDomain(), nil
}
